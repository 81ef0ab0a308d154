package label_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/googleads-mcp/internal/ads"
	"github.com/teemow/googleads-mcp/internal/server"
	"github.com/teemow/googleads-mcp/internal/tools/common"
)

const serviceLabels = "labels"

// RegisterLabelTools registers label and bulk edit tools with the MCP server
func RegisterLabelTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	labeledTool := mcp.NewTool("get_labeled_resources",
		mcp.WithDescription("List campaigns carrying a given label"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("labelId",
			mcp.Required(),
			mcp.Description("The label ID"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(labeledTool, common.InstrumentedToolHandlerWithService(
		"get_labeled_resources", serviceLabels, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			labelID, err := common.RequireString(args, "labelId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			format := common.OptionalString(args, "format", "table")

			rows, err := sc.AdsClient().GetLabeledResources(ctx, customerID, labelID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get labeled resources: %v", err)), nil
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

	createLabelsTool := mcp.NewTool("create_labels",
		mcp.WithDescription("Create account labels for organizing campaigns and ad groups"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("labels",
			mcp.Required(),
			mcp.Description("Labels to create, each {name, description, backgroundColor}"),
		),
	)

	s.AddTool(createLabelsTool, common.InstrumentedToolHandlerWithService(
		"create_labels", serviceLabels, "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			labels := labelInputs(common.MapSlice(args, "labels"))
			if len(labels) == 0 {
				return mcp.NewToolResultError("'labels' field is required"), nil
			}

			items, err := sc.AdsClient().CreateLabels(ctx, customerID, labels)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create labels: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Created", "labels", items)), nil
		}))

	applyLabelsTool := mcp.NewTool("apply_labels",
		mcp.WithDescription("Apply a label to campaigns or ad groups"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("labelId",
			mcp.Required(),
			mcp.Description("The label to apply"),
		),
		mcp.WithString("resourceType",
			mcp.Required(),
			mcp.Description("'campaign' or 'ad_group'"),
		),
		mcp.WithArray("resourceIds",
			mcp.Required(),
			mcp.Description("IDs of the resources to label"),
		),
	)

	s.AddTool(applyLabelsTool, common.InstrumentedToolHandlerWithService(
		"apply_labels", serviceLabels, "apply", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			labelID, err := common.RequireString(args, "labelId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			resourceType, err := common.RequireString(args, "resourceType")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			resourceIDs := common.StringSlice(args, "resourceIds")
			if len(resourceIDs) == 0 {
				return mcp.NewToolResultError("'resourceIds' field is required"), nil
			}

			items, err := sc.AdsClient().ApplyLabels(ctx, customerID, labelID, resourceType, resourceIDs)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to apply labels: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Labeled", "resources", items)), nil
		}))

	bulkEditTool := mcp.NewTool("bulk_edit_operations",
		mcp.WithDescription("Set the status of many campaigns, ad groups, or ads at once"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("resourceType",
			mcp.Required(),
			mcp.Description("'campaign', 'ad_group', or 'ad'"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("ENABLED, PAUSED, or REMOVED"),
		),
		mcp.WithArray("resourceIds",
			mcp.Required(),
			mcp.Description("IDs of the resources to edit"),
		),
	)

	s.AddTool(bulkEditTool, common.InstrumentedToolHandlerWithService(
		"bulk_edit_operations", serviceLabels, "mutate", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			resourceType, err := common.RequireString(args, "resourceType")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			status, err := common.RequireString(args, "status")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			resourceIDs := common.StringSlice(args, "resourceIds")
			if len(resourceIDs) == 0 {
				return mcp.NewToolResultError("'resourceIds' field is required"), nil
			}

			items, err := sc.AdsClient().BulkStatusEdit(ctx, customerID, resourceType, status, resourceIDs)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to bulk edit: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Updated", "resources", items)), nil
		}))

	return nil
}

func labelInputs(raw []map[string]interface{}) []ads.LabelInput {
	labels := make([]ads.LabelInput, 0, len(raw))
	for _, item := range raw {
		name, _ := item["name"].(string)
		if name == "" {
			continue
		}
		label := ads.LabelInput{Name: name}
		label.Description, _ = item["description"].(string)
		label.BackgroundColor, _ = item["backgroundColor"].(string)
		labels = append(labels, label)
	}
	return labels
}
