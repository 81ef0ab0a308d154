package recommendation_tools

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

const serviceRecommendations = "recommendations"

// RegisterRecommendationTools registers recommendation and extension tools
// with the MCP server
func RegisterRecommendationTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	getRecsTool := mcp.NewTool("get_recommendations",
		mcp.WithDescription("List optimization recommendations with estimated impact"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	)

	s.AddTool(getRecsTool, common.InstrumentedToolHandlerWithService(
		"get_recommendations", serviceRecommendations, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			recs, err := sc.AdsClient().GetRecommendations(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get recommendations: %v", err)), nil
			}
			if len(recs) == 0 {
				return mcp.NewToolResultText("No recommendations found"), nil
			}
			result, _ := json.MarshalIndent(recs, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	extensionPerfTool := mcp.NewTool("get_extension_performance",
		mcp.WithDescription("Performance metrics for campaign assets (sitelinks, callouts, calls)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("dateRange",
			mcp.Description("GAQL date range (default: LAST_30_DAYS)"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(extensionPerfTool, common.InstrumentedToolHandlerWithService(
		"get_extension_performance", serviceRecommendations, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			dateRange := common.OptionalString(args, "dateRange", "")
			format := common.OptionalString(args, "format", "table")

			rows, err := sc.AdsClient().GetExtensionPerformance(ctx, customerID, dateRange)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get extension performance: %v", err)), nil
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

	applyTool := mcp.NewTool("apply_recommendation",
		mcp.WithDescription("Apply a recommendation with its default parameters"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("recommendationId",
			mcp.Required(),
			mcp.Description("The recommendation ID to apply"),
		),
	)

	s.AddTool(applyTool, common.InstrumentedToolHandlerWithService(
		"apply_recommendation", serviceRecommendations, "apply", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			recommendationID, err := common.RequireString(args, "recommendationId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.AdsClient().ApplyRecommendation(ctx, customerID, recommendationID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to apply recommendation: %v", err)), nil
			}
			return mcp.NewToolResultText("Recommendation applied successfully"), nil
		}))

	dismissTool := mcp.NewTool("dismiss_recommendation",
		mcp.WithDescription("Dismiss a recommendation so it no longer appears"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("recommendationId",
			mcp.Required(),
			mcp.Description("The recommendation ID to dismiss"),
		),
	)

	s.AddTool(dismissTool, common.InstrumentedToolHandlerWithService(
		"dismiss_recommendation", serviceRecommendations, "apply", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			recommendationID, err := common.RequireString(args, "recommendationId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.AdsClient().DismissRecommendation(ctx, customerID, recommendationID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to dismiss recommendation: %v", err)), nil
			}
			return mcp.NewToolResultText("Recommendation dismissed successfully"), nil
		}))

	callExtensionTool := mcp.NewTool("create_call_extensions",
		mcp.WithDescription("Create a call asset and attach it to a campaign"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign to attach the call asset to"),
		),
		mcp.WithString("phoneNumber",
			mcp.Required(),
			mcp.Description("Phone number, e.g. '+1 650 555 0100'"),
		),
		mcp.WithString("countryCode",
			mcp.Description("Two-letter country code (default: US)"),
		),
	)

	s.AddTool(callExtensionTool, common.InstrumentedToolHandlerWithService(
		"create_call_extensions", serviceRecommendations, "create", sc,
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
			phoneNumber, err := common.RequireString(args, "phoneNumber")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			input := ads.CallExtensionInput{
				CountryCode: common.OptionalString(args, "countryCode", ""),
				PhoneNumber: phoneNumber,
			}

			resourceName, err := sc.AdsClient().CreateCallExtension(ctx, customerID, campaignID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create call extension: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Call extension created successfully. Asset: %s", resourceName)), nil
		}))

	sitelinkExtensionTool := mcp.NewTool("create_sitelink_extensions",
		mcp.WithDescription("Create sitelink assets and attach them to a campaign"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign to attach the sitelinks to"),
		),
		mcp.WithArray("sitelinks",
			mcp.Required(),
			mcp.Description("Sitelinks to create, each {linkText, finalUrls, description1, description2}"),
		),
	)

	s.AddTool(sitelinkExtensionTool, common.InstrumentedToolHandlerWithService(
		"create_sitelink_extensions", serviceRecommendations, "create", sc,
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
			sitelinks := sitelinkInputs(common.MapSlice(args, "sitelinks"))
			if len(sitelinks) == 0 {
				return mcp.NewToolResultError("'sitelinks' field is required"), nil
			}

			items, err := sc.AdsClient().CreateSitelinkAssets(ctx, customerID, campaignID, sitelinks)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create sitelink extensions: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Created", "sitelink extensions", items)), nil
		}))

	calloutExtensionTool := mcp.NewTool("create_callout_extensions",
		mcp.WithDescription("Create callout assets and attach them to a campaign"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign to attach the callouts to"),
		),
		mcp.WithArray("callouts",
			mcp.Required(),
			mcp.Description("Callout texts (max 25 characters each)"),
		),
	)

	s.AddTool(calloutExtensionTool, common.InstrumentedToolHandlerWithService(
		"create_callout_extensions", serviceRecommendations, "create", sc,
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
			callouts := common.StringSlice(args, "callouts")
			if len(callouts) == 0 {
				return mcp.NewToolResultError("'callouts' field is required"), nil
			}

			items, err := sc.AdsClient().CreateCalloutAssets(ctx, customerID, campaignID, callouts)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create callout extensions: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Created", "callout extensions", items)), nil
		}))

	return nil
}

func sitelinkInputs(raw []map[string]interface{}) []ads.SitelinkInput {
	sitelinks := make([]ads.SitelinkInput, 0, len(raw))
	for _, item := range raw {
		linkText, _ := item["linkText"].(string)
		if linkText == "" {
			continue
		}
		sitelink := ads.SitelinkInput{LinkText: linkText}
		sitelink.Description1, _ = item["description1"].(string)
		sitelink.Description2, _ = item["description2"].(string)
		if urls, ok := item["finalUrls"].([]interface{}); ok {
			for _, u := range urls {
				if s, ok := u.(string); ok && s != "" {
					sitelink.FinalURLs = append(sitelink.FinalURLs, s)
				}
			}
		} else if u, ok := item["finalUrl"].(string); ok && u != "" {
			sitelink.FinalURLs = []string{u}
		}
		sitelinks = append(sitelinks, sitelink)
	}
	return sitelinks
}
