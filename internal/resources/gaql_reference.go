package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const gaqlReferenceURI = "gaql://reference"

const gaqlReference = `# Google Ads Query Language (GAQL) Reference

## Basic Syntax
` + "```sql" + `
SELECT
  field1,
  field2
FROM resource
WHERE condition
ORDER BY field
LIMIT n
` + "```" + `

## Common Resources
- campaign
- ad_group
- ad_group_ad
- ad_group_criterion
- customer
- asset
- campaign_budget

## Common Fields
- campaign.name
- campaign.status
- metrics.impressions
- metrics.clicks
- metrics.cost_micros
- metrics.conversions

## Example Queries

### Get Campaign Performance
` + "```sql" + `
SELECT
  campaign.name,
  metrics.impressions,
  metrics.clicks,
  metrics.cost_micros
FROM campaign
WHERE segments.date DURING LAST_30_DAYS
` + "```" + `

### Get Keywords
` + "```sql" + `
SELECT
  ad_group_criterion.keyword.text,
  ad_group_criterion.keyword.match_type,
  metrics.impressions
FROM ad_group_criterion
WHERE ad_group_criterion.type = 'KEYWORD'
` + "```" + `
`

// RegisterGAQLResources registers the static GAQL reference resource
func RegisterGAQLResources(s *mcpserver.MCPServer) error {
	reference := mcp.NewResource(
		gaqlReferenceURI,
		"GAQL Reference",
		mcp.WithResourceDescription("Google Ads Query Language reference and examples"),
		mcp.WithMIMEType("text/markdown"),
	)

	s.AddResource(reference, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			&mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/markdown",
				Text:     gaqlReference,
			},
		}, nil
	})

	return nil
}
