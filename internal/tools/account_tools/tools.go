package account_tools

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

// RegisterAccountTools registers account and raw-query tools with the MCP server
func RegisterAccountTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List accounts tool (read-only, always available)
	listAccountsTool := mcp.NewTool("list_accounts",
		mcp.WithDescription("List all Google Ads accounts accessible with the configured credentials"),
	)

	s.AddTool(listAccountsTool, common.InstrumentedToolHandlerWithService(
		"list_accounts", instrumentation.ServiceAccounts, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListAccounts(ctx, sc)
		}))

	// Account hierarchy tool
	hierarchyTool := mcp.NewTool("get_account_hierarchy",
		mcp.WithDescription("Get the manager/client account hierarchy starting from a root account"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The root customer ID (e.g., '123-456-7890' or '1234567890')"),
		),
		mcp.WithNumber("depth",
			mcp.Description("Maximum hierarchy depth to traverse (default: 3)"),
		),
	)

	s.AddTool(hierarchyTool, common.InstrumentedToolHandlerWithService(
		"get_account_hierarchy", instrumentation.ServiceAccounts, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetAccountHierarchy(ctx, request, sc)
		}))

	// Manager link invitation tool. Listing is a read; accept/decline are
	// writes and are rejected in read-only mode.
	linkTool := mcp.NewTool("manage_link_invitations",
		mcp.WithDescription("List, accept, or decline manager account link invitations"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The client customer ID"),
		),
		mcp.WithString("action",
			mcp.Description("Action to perform: 'list' (default), 'accept', or 'decline'"),
		),
		mcp.WithString("linkResourceName",
			mcp.Description("Resource name of the manager link (required for accept/decline)"),
		),
	)

	s.AddTool(linkTool, common.InstrumentedToolHandlerWithService(
		"manage_link_invitations", instrumentation.ServiceAccounts, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleManageLinkInvitations(ctx, request, sc, readOnly)
		}))

	// Raw GAQL query tool (read-only, always available)
	gaqlTool := mcp.NewTool("execute_gaql_query",
		mcp.WithDescription("Execute a raw GAQL (Google Ads Query Language) query against an account"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID to query"),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The GAQL query to execute (e.g., 'SELECT campaign.name FROM campaign')"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(gaqlTool, common.InstrumentedToolHandlerWithService(
		"execute_gaql_query", instrumentation.ServiceAccounts, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleExecuteGaqlQuery(ctx, request, sc)
		}))

	return nil
}

func handleListAccounts(ctx context.Context, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	accounts, err := sc.AdsClient().ListAccounts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list accounts: %v", err)), nil
	}
	if len(accounts) == 0 {
		return mcp.NewToolResultText("No accessible accounts found"), nil
	}

	result, _ := json.MarshalIndent(accounts, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleGetAccountHierarchy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, errResult := common.RequireArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	customerID, err := common.RequireCustomer(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	depth := int(common.OptionalNumber(args, "depth", 3))

	hierarchy, err := sc.AdsClient().GetAccountHierarchy(ctx, customerID, depth)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get account hierarchy: %v", err)), nil
	}

	result, _ := json.MarshalIndent(hierarchy, "", "  ")
	return mcp.NewToolResultText(string(result)), nil
}

func handleManageLinkInvitations(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, readOnly bool) (*mcp.CallToolResult, error) {
	args, errResult := common.RequireArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	customerID, err := common.RequireCustomer(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	action := common.OptionalString(args, "action", "list")

	switch action {
	case "list":
		invitations, err := sc.AdsClient().ListManagerLinkInvitations(ctx, customerID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list link invitations: %v", err)), nil
		}
		if len(invitations) == 0 {
			return mcp.NewToolResultText("No pending link invitations found"), nil
		}
		result, _ := json.MarshalIndent(invitations, "", "  ")
		return mcp.NewToolResultText(string(result)), nil

	case "accept", "decline":
		if readOnly {
			return mcp.NewToolResultError("Link invitation changes are not available in read-only mode. Restart with --yolo to enable writes."), nil
		}
		linkResourceName, err := common.RequireString(args, "linkResourceName")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		status := "ACTIVE"
		if action == "decline" {
			status = "REFUSED"
		}
		if err := sc.AdsClient().UpdateManagerLinkStatus(ctx, customerID, linkResourceName, status); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to %s link invitation: %v", action, err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Link invitation %sed successfully", action)), nil

	default:
		return mcp.NewToolResultError("'action' must be 'list', 'accept', or 'decline'"), nil
	}
}

func handleExecuteGaqlQuery(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, errResult := common.RequireArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	customerID, err := common.RequireCustomer(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	query, err := common.RequireString(args, "query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := common.OptionalString(args, "format", "table")

	results, err := sc.AdsClient().SearchStream(ctx, customerID, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Query failed: %v", err)), nil
	}

	formatted, err := ads.FormatResults(results, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
	}
	return mcp.NewToolResultText(formatted), nil
}
