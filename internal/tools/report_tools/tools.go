package report_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/googleads-mcp/internal/ads"
	"github.com/teemow/googleads-mcp/internal/instrumentation"
	"github.com/teemow/googleads-mcp/internal/server"
	"github.com/teemow/googleads-mcp/internal/tools/common"
)

// reportFetch runs one report query and returns raw result rows.
type reportFetch func(ctx context.Context, client *ads.Client, customerID string, opts ads.ReportOptions) ([]map[string]any, error)

// RegisterReportTools registers reporting tools with the MCP server.
// All reporting tools are read-only and ignore the readOnly flag.
func RegisterReportTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	searchTermTool := mcp.NewTool("get_search_term_report",
		mcp.WithDescription("Search terms that triggered ads, with performance metrics"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("dateRange",
			mcp.Description("GAQL date range (default: LAST_30_DAYS)"),
		),
		mcp.WithString("campaignId",
			mcp.Description("Restrict to a single campaign ID"),
		),
		mcp.WithNumber("minImpressions",
			mcp.Description("Only include terms with at least this many impressions"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of rows to return"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(searchTermTool, common.InstrumentedToolHandlerWithService(
		"get_search_term_report", instrumentation.ServiceReports, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReport(ctx, request, sc, "search term report",
				func(ctx context.Context, client *ads.Client, customerID string, opts ads.ReportOptions) ([]map[string]any, error) {
					args, _ := request.Params.Arguments.(map[string]interface{})
					minImpressions := int64(common.OptionalNumber(args, "minImpressions", 0))
					return client.GetSearchTermReport(ctx, customerID, opts, minImpressions)
				})
		}))

	registerRowReport(s, sc, "get_demographic_report",
		"Performance broken down by age range and gender", "demographic report",
		func(ctx context.Context, client *ads.Client, customerID string, opts ads.ReportOptions) ([]map[string]any, error) {
			return client.GetDemographicReport(ctx, customerID, opts)
		})

	registerRowReport(s, sc, "get_geographic_report",
		"Performance broken down by geographic location", "geographic report",
		func(ctx context.Context, client *ads.Client, customerID string, opts ads.ReportOptions) ([]map[string]any, error) {
			return client.GetGeographicReport(ctx, customerID, opts)
		})

	registerRowReport(s, sc, "get_auction_insights",
		"Auction insight metrics against competing domains", "auction insights",
		func(ctx context.Context, client *ads.Client, customerID string, opts ads.ReportOptions) ([]map[string]any, error) {
			return client.GetAuctionInsights(ctx, customerID, opts)
		})

	registerRowReport(s, sc, "get_change_history",
		"Recent account changes with who changed what and when", "change history",
		func(ctx context.Context, client *ads.Client, customerID string, opts ads.ReportOptions) ([]map[string]any, error) {
			return client.GetChangeHistory(ctx, customerID, opts)
		})

	registerRowReport(s, sc, "get_video_report",
		"Video campaign performance with view and engagement metrics", "video report",
		func(ctx context.Context, client *ads.Client, customerID string, opts ads.ReportOptions) ([]map[string]any, error) {
			return client.GetVideoReport(ctx, customerID, opts)
		})

	clickViewTool := mcp.NewTool("get_click_view_report",
		mcp.WithDescription("Click-level data (GCLIDs) for a single day within the last 90 days"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("The day to report on, YYYY-MM-DD"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of rows to return (default: 100)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(clickViewTool, common.InstrumentedToolHandlerWithService(
		"get_click_view_report", instrumentation.ServiceReports, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			date, err := common.RequireString(args, "date")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			limit := int(common.OptionalNumber(args, "limit", 100))
			format := common.OptionalString(args, "format", "table")

			rows, err := sc.AdsClient().GetClickViewReport(ctx, customerID, date, limit)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get click view report: %v", err)), nil
			}
			formatted, err := ads.FormatResults(rows, format)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
			}
			return mcp.NewToolResultText(formatted), nil
		}))

	return nil
}

// registerRowReport wires a report tool that takes the shared
// customerId/dateRange/campaignId/limit/format argument set.
func registerRowReport(s *mcpserver.MCPServer, sc *server.ServerContext, name, description, what string, fetch reportFetch) {
	tool := mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("dateRange",
			mcp.Description("GAQL date range (default: LAST_30_DAYS)"),
		),
		mcp.WithString("campaignId",
			mcp.Description("Restrict to a single campaign ID"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of rows to return"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandlerWithService(
		name, instrumentation.ServiceReports, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReport(ctx, request, sc, what, fetch)
		}))
}

func handleReport(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, what string, fetch reportFetch) (*mcp.CallToolResult, error) {
	args, errResult := common.RequireArgs(request)
	if errResult != nil {
		return errResult, nil
	}
	customerID, err := common.RequireCustomer(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := ads.ReportOptions{
		DateRange:  common.OptionalString(args, "dateRange", ""),
		CampaignID: common.OptionalString(args, "campaignId", ""),
		Limit:      int(common.OptionalNumber(args, "limit", 0)),
	}
	format := common.OptionalString(args, "format", "table")

	rows, err := fetch(ctx, sc.AdsClient(), customerID, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get %s: %v", what, err)), nil
	}
	formatted, err := ads.FormatResults(rows, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
	}
	return mcp.NewToolResultText(formatted), nil
}
