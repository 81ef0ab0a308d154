package budget_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/googleads-mcp/internal/ads"
	"github.com/teemow/googleads-mcp/internal/server"
	"github.com/teemow/googleads-mcp/internal/tools/common"
)

const serviceBudgets = "budgets"

// RegisterBudgetTools registers budget and bidding tools with the MCP server
func RegisterBudgetTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	getBudgetsTool := mcp.NewTool("get_shared_budgets",
		mcp.WithDescription("List shared campaign budgets with amounts and utilization"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	)

	s.AddTool(getBudgetsTool, common.InstrumentedToolHandlerWithService(
		"get_shared_budgets", serviceBudgets, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			budgets, err := sc.AdsClient().GetSharedBudgets(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get shared budgets: %v", err)), nil
			}
			if len(budgets) == 0 {
				return mcp.NewToolResultText("No shared budgets found"), nil
			}
			result, _ := json.MarshalIndent(budgets, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	getStrategiesTool := mcp.NewTool("get_bidding_strategies",
		mcp.WithDescription("List portfolio bidding strategies with type and targets"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	)

	s.AddTool(getStrategiesTool, common.InstrumentedToolHandlerWithService(
		"get_bidding_strategies", serviceBudgets, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			strategies, err := sc.AdsClient().GetBiddingStrategies(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get bidding strategies: %v", err)), nil
			}
			if len(strategies) == 0 {
				return mcp.NewToolResultText("No bidding strategies found"), nil
			}
			result, _ := json.MarshalIndent(strategies, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	simulationsTool := mcp.NewTool("get_bid_simulations",
		mcp.WithDescription("Bid simulation points showing projected metrics at different bid levels"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Description("Restrict to a single campaign ID"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(simulationsTool, common.InstrumentedToolHandlerWithService(
		"get_bid_simulations", serviceBudgets, "search", sc,
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
			format := common.OptionalString(args, "format", "table")

			rows, err := sc.AdsClient().GetBidSimulations(ctx, customerID, campaignID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get bid simulations: %v", err)), nil
			}
			formatted, err := ads.FormatResults(rows, format)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
			}
			return mcp.NewToolResultText(formatted), nil
		}))

	budgetRecsTool := mcp.NewTool("get_budget_recommendations",
		mcp.WithDescription("Budget recommendations for budget-constrained campaigns"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(budgetRecsTool, common.InstrumentedToolHandlerWithService(
		"get_budget_recommendations", serviceBudgets, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			format := common.OptionalString(args, "format", "table")

			rows, err := sc.AdsClient().GetBudgetRecommendations(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get budget recommendations: %v", err)), nil
			}
			formatted, err := ads.FormatResults(rows, format)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
			}
			return mcp.NewToolResultText(formatted), nil
		}))

	if readOnly {
		return nil
	}

	createBudgetTool := mcp.NewTool("create_shared_budget",
		mcp.WithDescription("Create a shared budget usable by multiple campaigns"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Budget name"),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Daily budget amount in account currency units"),
		),
		mcp.WithString("deliveryMethod",
			mcp.Description("STANDARD (default) or ACCELERATED"),
		),
	)

	s.AddTool(createBudgetTool, common.InstrumentedToolHandlerWithService(
		"create_shared_budget", serviceBudgets, "create", sc,
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
			amount := common.OptionalNumber(args, "amount", 0)
			if amount <= 0 {
				return mcp.NewToolResultError("'amount' field is required"), nil
			}
			deliveryMethod := common.OptionalString(args, "deliveryMethod", "")

			budgetID, err := sc.AdsClient().CreateSharedBudget(ctx, customerID, name, amount, deliveryMethod)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create shared budget: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Shared budget created successfully. ID: %s", budgetID)), nil
		}))

	createStrategyTool := mcp.NewTool("create_bidding_strategy",
		mcp.WithDescription("Create a portfolio bidding strategy (TARGET_CPA, TARGET_ROAS, MAXIMIZE_CONVERSIONS, or MAXIMIZE_CONVERSION_VALUE)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Strategy name"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Strategy type"),
		),
		mcp.WithNumber("targetCpa",
			mcp.Description("Target cost per acquisition in account currency units"),
		),
		mcp.WithNumber("targetRoas",
			mcp.Description("Target return on ad spend, e.g. 4.0 for 400%"),
		),
	)

	s.AddTool(createStrategyTool, common.InstrumentedToolHandlerWithService(
		"create_bidding_strategy", serviceBudgets, "create", sc,
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
			strategyType, err := common.RequireString(args, "type")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			input := ads.BiddingStrategyInput{
				Name:       name,
				Type:       strategyType,
				TargetCpa:  common.OptionalNumber(args, "targetCpa", 0),
				TargetRoas: common.OptionalNumber(args, "targetRoas", 0),
			}

			strategyID, err := sc.AdsClient().CreateBiddingStrategy(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create bidding strategy: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Bidding strategy created successfully. ID: %s", strategyID)), nil
		}))

	bidAdjustmentsTool := mcp.NewTool("update_bid_adjustments",
		mcp.WithDescription("Set device bid adjustments on campaigns"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("adjustments",
			mcp.Required(),
			mcp.Description("Adjustments to apply, each {campaignId, device, bidModifier}"),
		),
	)

	s.AddTool(bidAdjustmentsTool, common.InstrumentedToolHandlerWithService(
		"update_bid_adjustments", serviceBudgets, "mutate", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			adjustments := bidAdjustments(common.MapSlice(args, "adjustments"))
			if len(adjustments) == 0 {
				return mcp.NewToolResultError("'adjustments' field is required"), nil
			}

			items, err := sc.AdsClient().UpdateBidAdjustments(ctx, customerID, adjustments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update bid adjustments: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Updated", "bid adjustments", items)), nil
		}))

	return nil
}

func bidAdjustments(raw []map[string]interface{}) []ads.BidAdjustmentInput {
	adjustments := make([]ads.BidAdjustmentInput, 0, len(raw))
	for _, item := range raw {
		campaignID, _ := item["campaignId"].(string)
		device, _ := item["device"].(string)
		bidModifier, _ := item["bidModifier"].(float64)
		if campaignID == "" || device == "" {
			continue
		}
		adjustments = append(adjustments, ads.BidAdjustmentInput{
			CampaignID:  campaignID,
			Device:      device,
			BidModifier: bidModifier,
		})
	}
	return adjustments
}
