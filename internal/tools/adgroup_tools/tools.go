package adgroup_tools

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

// RegisterAdGroupTools registers ad group and ad tools with the MCP server
func RegisterAdGroupTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	getAdGroupsTool := mcp.NewTool("get_ad_groups",
		mcp.WithDescription("List ad groups in an account, optionally filtered by campaign"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Description("Restrict to a single campaign ID"),
		),
	)

	s.AddTool(getAdGroupsTool, common.InstrumentedToolHandlerWithService(
		"get_ad_groups", instrumentation.ServiceAdGroups, instrumentation.OperationSearch, sc,
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

			adGroups, err := sc.AdsClient().GetAdGroups(ctx, customerID, campaignID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get ad groups: %v", err)), nil
			}
			if len(adGroups) == 0 {
				return mcp.NewToolResultText("No ad groups found"), nil
			}
			result, _ := json.MarshalIndent(adGroups, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	getAdsTool := mcp.NewTool("get_ads",
		mcp.WithDescription("List ads in an account, optionally filtered by ad group"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("adGroupId",
			mcp.Description("Restrict to a single ad group ID"),
		),
	)

	s.AddTool(getAdsTool, common.InstrumentedToolHandlerWithService(
		"get_ads", instrumentation.ServiceAdGroups, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			adGroupID := common.OptionalString(args, "adGroupId", "")

			adsList, err := sc.AdsClient().GetAds(ctx, customerID, adGroupID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get ads: %v", err)), nil
			}
			if len(adsList) == 0 {
				return mcp.NewToolResultText("No ads found"), nil
			}
			result, _ := json.MarshalIndent(adsList, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	if readOnly {
		return nil
	}

	createAdGroupTool := mcp.NewTool("create_ad_group",
		mcp.WithDescription("Create a new ad group in a campaign (paused by default)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign to create the ad group in"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Ad group name"),
		),
		mcp.WithNumber("cpcBid",
			mcp.Description("Max CPC bid in account currency units"),
		),
	)

	s.AddTool(createAdGroupTool, common.InstrumentedToolHandlerWithService(
		"create_ad_group", instrumentation.ServiceAdGroups, instrumentation.OperationCreate, sc,
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
			name, err := common.RequireString(args, "name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			input := ads.AdGroupInput{
				Name:         name,
				CampaignID:   campaignID,
				CpcBidMicros: ads.UnitsToMicros(common.OptionalNumber(args, "cpcBid", 0)),
			}

			adGroupID, err := sc.AdsClient().CreateAdGroup(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create ad group: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Ad group created successfully. ID: %s", adGroupID)), nil
		}))

	createRSATool := mcp.NewTool("create_responsive_search_ad",
		mcp.WithDescription("Create a responsive search ad in an ad group (paused by default)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("adGroupId",
			mcp.Required(),
			mcp.Description("The ad group to create the ad in"),
		),
		mcp.WithArray("headlines",
			mcp.Required(),
			mcp.Description("Headlines (3-15, max 30 characters each)"),
		),
		mcp.WithArray("descriptions",
			mcp.Required(),
			mcp.Description("Descriptions (2-4, max 90 characters each)"),
		),
		mcp.WithArray("finalUrls",
			mcp.Required(),
			mcp.Description("Landing page URLs"),
		),
	)

	s.AddTool(createRSATool, common.InstrumentedToolHandlerWithService(
		"create_responsive_search_ad", instrumentation.ServiceAdGroups, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			adGroupID, err := common.RequireString(args, "adGroupId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			headlines := common.StringSlice(args, "headlines")
			if len(headlines) < 3 {
				return mcp.NewToolResultError("'headlines' requires at least 3 entries"), nil
			}
			descriptions := common.StringSlice(args, "descriptions")
			if len(descriptions) < 2 {
				return mcp.NewToolResultError("'descriptions' requires at least 2 entries"), nil
			}
			finalURLs := common.StringSlice(args, "finalUrls")
			if len(finalURLs) == 0 {
				return mcp.NewToolResultError("'finalUrls' field is required"), nil
			}

			adID, err := sc.AdsClient().CreateResponsiveSearchAd(ctx, customerID, adGroupID, headlines, descriptions, finalURLs)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create responsive search ad: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Responsive search ad created successfully. ID: %s", adID)), nil
		}))

	return nil
}
