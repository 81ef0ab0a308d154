package conversion_tools

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

const serviceConversions = "conversions"

// RegisterConversionTools registers conversion tracking tools with the MCP server
func RegisterConversionTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	getConversionsTool := mcp.NewTool("get_conversions",
		mcp.WithDescription("List conversion actions with conversion counts and values"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("dateRange",
			mcp.Description("GAQL date range for the metrics (default: LAST_30_DAYS)"),
		),
	)

	s.AddTool(getConversionsTool, common.InstrumentedToolHandlerWithService(
		"get_conversions", serviceConversions, "search", sc,
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

			conversions, err := sc.AdsClient().GetConversions(ctx, customerID, dateRange)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get conversions: %v", err)), nil
			}
			if len(conversions) == 0 {
				return mcp.NewToolResultText("No conversion actions found"), nil
			}
			result, _ := json.MarshalIndent(conversions, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	attributionTool := mcp.NewTool("get_conversion_attribution",
		mcp.WithDescription("Get conversion attribution broken down by conversion action, device, and network"),
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

	s.AddTool(attributionTool, common.InstrumentedToolHandlerWithService(
		"get_conversion_attribution", serviceConversions, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRowReport(ctx, request, sc, "conversion attribution",
				func(ctx context.Context, customerID, dateRange string) ([]map[string]any, error) {
					return sc.AdsClient().GetConversionAttribution(ctx, customerID, dateRange)
				})
		}))

	pathDataTool := mcp.NewTool("get_conversion_path_data",
		mcp.WithDescription("Get conversion lag data showing how long users take to convert"),
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

	s.AddTool(pathDataTool, common.InstrumentedToolHandlerWithService(
		"get_conversion_path_data", serviceConversions, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRowReport(ctx, request, sc, "conversion path data",
				func(ctx context.Context, customerID, dateRange string) ([]map[string]any, error) {
					return sc.AdsClient().GetConversionPathData(ctx, customerID, dateRange)
				})
		}))

	if readOnly {
		return nil
	}

	createActionTool := mcp.NewTool("create_conversion_action",
		mcp.WithDescription("Create a new conversion action for tracking"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Conversion action name"),
		),
		mcp.WithString("category",
			mcp.Description("Category (e.g., PURCHASE, SIGNUP, LEAD, PAGE_VIEW)"),
		),
		mcp.WithString("type",
			mcp.Description("Type (default: WEBPAGE)"),
		),
		mcp.WithString("countingType",
			mcp.Description("ONE_PER_CLICK or MANY_PER_CLICK"),
		),
		mcp.WithNumber("defaultValue",
			mcp.Description("Default value assigned to each conversion"),
		),
		mcp.WithBoolean("alwaysUseDefaultValue",
			mcp.Description("Always use the default value instead of transaction values"),
		),
		mcp.WithString("attributionModel",
			mcp.Description("Attribution model (e.g., DATA_DRIVEN, LAST_CLICK)"),
		),
	)

	s.AddTool(createActionTool, common.InstrumentedToolHandlerWithService(
		"create_conversion_action", serviceConversions, "create", sc,
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

			input := ads.ConversionActionInput{
				Name:                  name,
				Category:              common.OptionalString(args, "category", ""),
				Type:                  common.OptionalString(args, "type", ""),
				CountingType:          common.OptionalString(args, "countingType", ""),
				DefaultValue:          common.OptionalNumber(args, "defaultValue", 0),
				AlwaysUseDefaultValue: common.OptionalBool(args, "alwaysUseDefaultValue", false),
				AttributionModel:      common.OptionalString(args, "attributionModel", ""),
			}

			actionID, err := sc.AdsClient().CreateConversionAction(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create conversion action: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Conversion action created successfully. ID: %s", actionID)), nil
		}))

	updateActionTool := mcp.NewTool("update_conversion_action",
		mcp.WithDescription("Update an existing conversion action's status or name"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("conversionActionId",
			mcp.Required(),
			mcp.Description("The conversion action ID to update"),
		),
		mcp.WithString("name",
			mcp.Description("New name"),
		),
		mcp.WithString("status",
			mcp.Description("New status: ENABLED, REMOVED, or HIDDEN"),
		),
	)

	s.AddTool(updateActionTool, common.InstrumentedToolHandlerWithService(
		"update_conversion_action", serviceConversions, "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			actionID, err := common.RequireString(args, "conversionActionId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			action := &ads.ConversionAction{}
			var mask []string
			if name := common.OptionalString(args, "name", ""); name != "" {
				action.Name = name
				mask = append(mask, "name")
			}
			if status := common.OptionalString(args, "status", ""); status != "" {
				action.Status = status
				mask = append(mask, "status")
			}
			if len(mask) == 0 {
				return mcp.NewToolResultError("at least one of 'name' or 'status' must be provided"), nil
			}

			updateMask := mask[0]
			for _, field := range mask[1:] {
				updateMask += "," + field
			}
			if err := sc.AdsClient().UpdateConversionAction(ctx, customerID, actionID, action, updateMask); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update conversion action: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Conversion action %s updated successfully", actionID)), nil
		}))

	importTool := mcp.NewTool("import_offline_conversions",
		mcp.WithDescription("Import offline click conversions (by GCLID, GBRAID, or WBRAID) with partial failure handling"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("conversions",
			mcp.Required(),
			mcp.Description("Conversions to import, each {gclid, conversionActionId, conversionDateTime, conversionValue, currencyCode, orderId}"),
		),
	)

	s.AddTool(importTool, common.InstrumentedToolHandlerWithService(
		"import_offline_conversions", serviceConversions, "upload", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			conversions := clickConversions(customerID, common.MapSlice(args, "conversions"))
			if len(conversions) == 0 {
				return mcp.NewToolResultError("'conversions' field is required"), nil
			}

			result, err := sc.AdsClient().ImportOfflineConversions(ctx, customerID, conversions)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to import offline conversions: %v", err)), nil
			}
			summary := fmt.Sprintf("Imported %d offline conversions successfully", result.Uploaded)
			if result.PartialFailure != "" {
				summary += fmt.Sprintf("\nPartial failures: %s", result.PartialFailure)
			}
			return mcp.NewToolResultText(summary), nil
		}))

	return nil
}

// handleRowReport runs a date-range report and renders it per the
// format argument.
func handleRowReport(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, what string,
	fetch func(ctx context.Context, customerID, dateRange string) ([]map[string]any, error),
) (*mcp.CallToolResult, error) {
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

	rows, err := fetch(ctx, customerID, dateRange)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get %s: %v", what, err)), nil
	}
	formatted, err := ads.FormatResults(rows, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
	}
	return mcp.NewToolResultText(formatted), nil
}

// clickConversions converts raw conversion objects into ClickConversion
// values, resolving conversionActionId into a full resource name.
func clickConversions(customerID string, raw []map[string]interface{}) []ads.ClickConversion {
	conversions := make([]ads.ClickConversion, 0, len(raw))
	for _, item := range raw {
		conv := ads.ClickConversion{}
		conv.Gclid, _ = item["gclid"].(string)
		conv.Gbraid, _ = item["gbraid"].(string)
		conv.Wbraid, _ = item["wbraid"].(string)
		conv.ConversionDateTime, _ = item["conversionDateTime"].(string)
		conv.ConversionValue, _ = item["conversionValue"].(float64)
		conv.CurrencyCode, _ = item["currencyCode"].(string)
		conv.OrderID, _ = item["orderId"].(string)
		if actionID, ok := item["conversionActionId"].(string); ok && actionID != "" {
			conv.ConversionAction = ads.ConversionActionResourceName(customerID, actionID)
		}
		if conv.ConversionAction == "" || conv.ConversionDateTime == "" {
			continue
		}
		if conv.Gclid == "" && conv.Gbraid == "" && conv.Wbraid == "" {
			continue
		}
		conversions = append(conversions, conv)
	}
	return conversions
}
