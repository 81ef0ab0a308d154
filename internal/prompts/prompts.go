// Package prompts provides MCP prompts that guide clients through common
// Google Ads workflows such as campaign analysis and GAQL authoring.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterPrompts registers the campaign analysis and GAQL help prompts
func RegisterPrompts(s *mcpserver.MCPServer) error {
	analyzePrompt := mcp.NewPrompt("analyze_campaign",
		mcp.WithPromptDescription("Analyze campaign performance and provide recommendations"),
		mcp.WithArgument("customerId",
			mcp.ArgumentDescription("Google Ads customer ID"),
			mcp.RequiredArgument(),
		),
	)

	s.AddPrompt(analyzePrompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		customerID := request.Params.Arguments["customerId"]
		if customerID == "" {
			return nil, fmt.Errorf("'customerId' argument is required")
		}
		return mcp.NewGetPromptResult(
			"Analyze campaign performance",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(
					mcp.RoleUser,
					mcp.NewTextContent(fmt.Sprintf(
						"Analyze the Google Ads campaigns for customer %s and provide recommendations for improvement.",
						customerID,
					)),
				),
			},
		), nil
	})

	gaqlPrompt := mcp.NewPrompt("gaql_help",
		mcp.WithPromptDescription("Get help with writing GAQL queries"),
		mcp.WithArgument("objective",
			mcp.ArgumentDescription("What you want to query"),
			mcp.RequiredArgument(),
		),
	)

	s.AddPrompt(gaqlPrompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		objective := request.Params.Arguments["objective"]
		if objective == "" {
			return nil, fmt.Errorf("'objective' argument is required")
		}
		return mcp.NewGetPromptResult(
			"Help with GAQL queries",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(
					mcp.RoleUser,
					mcp.NewTextContent(fmt.Sprintf("Help me write a GAQL query to: %s", objective)),
				),
			},
		), nil
	})

	return nil
}
