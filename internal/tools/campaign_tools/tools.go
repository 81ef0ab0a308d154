package campaign_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/googleads-mcp/internal/ads"
	"github.com/teemow/googleads-mcp/internal/instrumentation"
	"github.com/teemow/googleads-mcp/internal/server"
	"github.com/teemow/googleads-mcp/internal/tools/common"
)

// RegisterCampaignTools registers campaign-related tools with the MCP server
func RegisterCampaignTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	registerReadTools(s, sc)
	if !readOnly {
		registerWriteTools(s, sc)
	}
	return nil
}

func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	getCampaignsTool := mcp.NewTool("get_campaigns",
		mcp.WithDescription("List all campaigns in an account with status, type, and budget"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID (e.g., '123-456-7890' or '1234567890')"),
		),
	)

	s.AddTool(getCampaignsTool, common.InstrumentedToolHandlerWithService(
		"get_campaigns", instrumentation.ServiceCampaigns, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			campaigns, err := sc.AdsClient().GetCampaigns(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get campaigns: %v", err)), nil
			}
			if len(campaigns) == 0 {
				return mcp.NewToolResultText("No campaigns found"), nil
			}
			result, _ := json.MarshalIndent(campaigns, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	performanceTool := mcp.NewTool("get_campaign_performance",
		mcp.WithDescription("Get campaign performance metrics (impressions, clicks, cost, conversions) for a date range"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Description("Restrict to a single campaign ID"),
		),
		mcp.WithString("dateRange",
			mcp.Description("GAQL date range (e.g., 'LAST_7_DAYS', 'LAST_30_DAYS', 'THIS_MONTH'). Default: LAST_30_DAYS"),
		),
	)

	s.AddTool(performanceTool, common.InstrumentedToolHandlerWithService(
		"get_campaign_performance", instrumentation.ServiceCampaigns, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			campaignID := common.OptionalString(args, "campaignId", "")
			dateRange := common.OptionalString(args, "dateRange", "")

			performance, err := sc.AdsClient().GetCampaignPerformance(ctx, customerID, campaignID, dateRange)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get campaign performance: %v", err)), nil
			}
			if len(performance) == 0 {
				return mcp.NewToolResultText("No performance data found for the given date range"), nil
			}
			result, _ := json.MarshalIndent(performance, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	experimentsTool := mcp.NewTool("get_campaign_experiments",
		mcp.WithDescription("List campaign experiments with status and date range"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	)

	s.AddTool(experimentsTool, common.InstrumentedToolHandlerWithService(
		"get_campaign_experiments", instrumentation.ServiceCampaigns, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			experiments, err := sc.AdsClient().GetCampaignExperiments(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get campaign experiments: %v", err)), nil
			}
			if len(experiments) == 0 {
				return mcp.NewToolResultText("No experiments found"), nil
			}
			result, _ := json.MarshalIndent(experiments, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))
}

func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createCampaignTool := mcp.NewTool("create_campaign",
		mcp.WithDescription("Create a new campaign (paused by default) with a dedicated budget"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Campaign name"),
		),
		mcp.WithNumber("budgetAmount",
			mcp.Description("Daily budget in account currency units (default: 10)"),
		),
		mcp.WithString("advertisingChannelType",
			mcp.Description("Channel type: SEARCH (default), DISPLAY, SHOPPING, VIDEO"),
		),
		mcp.WithString("startDate",
			mcp.Description("Start date in YYYY-MM-DD format"),
		),
		mcp.WithString("endDate",
			mcp.Description("End date in YYYY-MM-DD format"),
		),
	)

	s.AddTool(createCampaignTool, common.InstrumentedToolHandlerWithService(
		"create_campaign", instrumentation.ServiceCampaigns, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			name, err := common.RequireString(args, "name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			input := ads.CampaignInput{
				Name:                   name,
				BudgetAmount:           common.OptionalNumber(args, "budgetAmount", 0),
				AdvertisingChannelType: common.OptionalString(args, "advertisingChannelType", ""),
				StartDate:              common.OptionalString(args, "startDate", ""),
				EndDate:                common.OptionalString(args, "endDate", ""),
			}

			campaignID, err := sc.AdsClient().CreateCampaign(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create campaign: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Campaign created successfully. ID: %s", campaignID)), nil
		}))

	updateStatusTool := mcp.NewTool("update_campaign_status",
		mcp.WithDescription("Update the status of a campaign (ENABLED, PAUSED, or REMOVED)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign ID to update"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("New status: ENABLED, PAUSED, or REMOVED"),
		),
	)

	s.AddTool(updateStatusTool, common.InstrumentedToolHandlerWithService(
		"update_campaign_status", instrumentation.ServiceCampaigns, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			campaignID, err := common.RequireString(args, "campaignId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			status, err := common.RequireString(args, "status")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.AdsClient().UpdateCampaignStatus(ctx, customerID, campaignID, status); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update campaign status: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Campaign %s status updated to %s", campaignID, status)), nil
		}))

	registerSpecialCampaignTools(s, sc)
	registerExperimentTools(s, sc)
}
