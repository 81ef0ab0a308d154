package campaign_tools

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

// registerSpecialCampaignTools registers the non-search campaign type
// creation tools (Performance Max, Demand Gen, App, Smart).
func registerSpecialCampaignTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	pmaxTool := mcp.NewTool("create_performance_max_campaign",
		mcp.WithDescription("Create a Performance Max campaign (paused by default)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Campaign name"),
		),
		mcp.WithNumber("budgetAmount",
			mcp.Required(),
			mcp.Description("Daily budget in account currency units"),
		),
		mcp.WithString("biddingStrategyType",
			mcp.Description("MAXIMIZE_CONVERSIONS (default) or MAXIMIZE_CONVERSION_VALUE"),
		),
		mcp.WithNumber("targetCpa",
			mcp.Description("Target cost per acquisition in currency units"),
		),
		mcp.WithNumber("targetRoas",
			mcp.Description("Target return on ad spend (e.g., 3.5 for 350%)"),
		),
		mcp.WithBoolean("finalUrlExpansion",
			mcp.Description("Allow final URL expansion (default: false)"),
		),
	)

	s.AddTool(pmaxTool, common.InstrumentedToolHandlerWithService(
		"create_performance_max_campaign", instrumentation.ServiceCampaigns, instrumentation.OperationCreate, sc,
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
			budget := common.OptionalNumber(args, "budgetAmount", 0)
			if budget <= 0 {
				return mcp.NewToolResultError("'budgetAmount' field is required"), nil
			}

			input := ads.PerformanceMaxCampaignInput{
				Name:                name,
				BudgetAmountMicros:  ads.UnitsToMicros(budget),
				BiddingStrategyType: common.OptionalString(args, "biddingStrategyType", ""),
				TargetCpaMicros:     ads.UnitsToMicros(common.OptionalNumber(args, "targetCpa", 0)),
				TargetRoas:          common.OptionalNumber(args, "targetRoas", 0),
				FinalURLExpansion:   common.OptionalBool(args, "finalUrlExpansion", false),
			}

			campaignID, err := sc.AdsClient().CreatePerformanceMaxCampaign(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create Performance Max campaign: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Performance Max campaign created successfully. ID: %s", campaignID)), nil
		}))

	demandGenTool := mcp.NewTool("create_demand_gen_campaign",
		mcp.WithDescription("Create a Demand Gen campaign (paused by default)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Campaign name"),
		),
		mcp.WithNumber("budgetAmount",
			mcp.Required(),
			mcp.Description("Daily budget in account currency units"),
		),
		mcp.WithString("biddingStrategyType",
			mcp.Description("MAXIMIZE_CONVERSIONS (default) or TARGET_CPA"),
		),
		mcp.WithNumber("targetCpa",
			mcp.Description("Target cost per acquisition in currency units"),
		),
	)

	s.AddTool(demandGenTool, common.InstrumentedToolHandlerWithService(
		"create_demand_gen_campaign", instrumentation.ServiceCampaigns, instrumentation.OperationCreate, sc,
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
			budget := common.OptionalNumber(args, "budgetAmount", 0)
			if budget <= 0 {
				return mcp.NewToolResultError("'budgetAmount' field is required"), nil
			}

			input := ads.DemandGenCampaignInput{
				Name:                name,
				BudgetAmountMicros:  ads.UnitsToMicros(budget),
				BiddingStrategyType: common.OptionalString(args, "biddingStrategyType", ""),
				TargetCpaMicros:     ads.UnitsToMicros(common.OptionalNumber(args, "targetCpa", 0)),
			}

			campaignID, err := sc.AdsClient().CreateDemandGenCampaign(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create Demand Gen campaign: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Demand Gen campaign created successfully. ID: %s", campaignID)), nil
		}))

	appTool := mcp.NewTool("create_app_campaign",
		mcp.WithDescription("Create an App campaign for app install promotion (paused by default)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Campaign name"),
		),
		mcp.WithString("appId",
			mcp.Required(),
			mcp.Description("The app store ID of the promoted app"),
		),
		mcp.WithString("appStore",
			mcp.Description("App store: GOOGLE_APP_STORE (default) or APPLE_APP_STORE"),
		),
		mcp.WithNumber("budgetAmount",
			mcp.Required(),
			mcp.Description("Daily budget in account currency units"),
		),
		mcp.WithNumber("targetCpa",
			mcp.Description("Target cost per install in currency units"),
		),
		mcp.WithString("startDate",
			mcp.Description("Start date in YYYY-MM-DD format"),
		),
		mcp.WithString("endDate",
			mcp.Description("End date in YYYY-MM-DD format"),
		),
	)

	s.AddTool(appTool, common.InstrumentedToolHandlerWithService(
		"create_app_campaign", instrumentation.ServiceCampaigns, instrumentation.OperationCreate, sc,
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
			appID, err := common.RequireString(args, "appId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			budget := common.OptionalNumber(args, "budgetAmount", 0)
			if budget <= 0 {
				return mcp.NewToolResultError("'budgetAmount' field is required"), nil
			}

			input := ads.AppCampaignInput{
				Name:               name,
				AppID:              appID,
				AppStore:           common.OptionalString(args, "appStore", ""),
				BudgetAmountMicros: ads.UnitsToMicros(budget),
				TargetCpaMicros:    ads.UnitsToMicros(common.OptionalNumber(args, "targetCpa", 0)),
				StartDate:          common.OptionalString(args, "startDate", ""),
				EndDate:            common.OptionalString(args, "endDate", ""),
			}

			campaignID, err := sc.AdsClient().CreateAppCampaign(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create App campaign: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("App campaign created successfully. ID: %s", campaignID)), nil
		}))

	smartTool := mcp.NewTool("create_smart_campaign",
		mcp.WithDescription("Create a Smart campaign (paused by default)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Campaign name"),
		),
		mcp.WithNumber("budgetAmount",
			mcp.Required(),
			mcp.Description("Daily budget in account currency units"),
		),
	)

	s.AddTool(smartTool, common.InstrumentedToolHandlerWithService(
		"create_smart_campaign", instrumentation.ServiceCampaigns, instrumentation.OperationCreate, sc,
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
			budget := common.OptionalNumber(args, "budgetAmount", 0)
			if budget <= 0 {
				return mcp.NewToolResultError("'budgetAmount' field is required"), nil
			}

			input := ads.SmartCampaignInput{
				Name:               name,
				BudgetAmountMicros: ads.UnitsToMicros(budget),
			}

			campaignID, err := sc.AdsClient().CreateSmartCampaign(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create Smart campaign: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Smart campaign created successfully. ID: %s", campaignID)), nil
		}))
}

// registerExperimentTools registers the campaign experiment creation tool.
func registerExperimentTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createExperimentTool := mcp.NewTool("create_campaign_experiment",
		mcp.WithDescription("Create a campaign experiment for A/B testing"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Experiment name"),
		),
		mcp.WithString("description",
			mcp.Description("Experiment description"),
		),
		mcp.WithString("type",
			mcp.Description("Experiment type (default: SEARCH_CUSTOM)"),
		),
		mcp.WithString("startDate",
			mcp.Description("Start date in YYYY-MM-DD format"),
		),
		mcp.WithString("endDate",
			mcp.Description("End date in YYYY-MM-DD format"),
		),
	)

	s.AddTool(createExperimentTool, common.InstrumentedToolHandlerWithService(
		"create_campaign_experiment", instrumentation.ServiceCampaigns, instrumentation.OperationCreate, sc,
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

			input := ads.ExperimentInput{
				Name:        name,
				Description: common.OptionalString(args, "description", ""),
				Type:        common.OptionalString(args, "type", ""),
				StartDate:   common.OptionalString(args, "startDate", ""),
				EndDate:     common.OptionalString(args, "endDate", ""),
			}

			experimentID, err := sc.AdsClient().CreateCampaignExperiment(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create campaign experiment: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Campaign experiment created successfully. ID: %s", experimentID)), nil
		}))
}
