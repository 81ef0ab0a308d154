package asset_tools

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

const serviceAssets = "assets"

// RegisterAssetTools registers asset management tools with the MCP server
func RegisterAssetTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	getImagesTool := mcp.NewTool("get_image_assets",
		mcp.WithDescription("List image assets with dimensions and URLs"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	)

	s.AddTool(getImagesTool, common.InstrumentedToolHandlerWithService(
		"get_image_assets", serviceAssets, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			assets, err := sc.AdsClient().GetImageAssets(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get image assets: %v", err)), nil
			}
			if len(assets) == 0 {
				return mcp.NewToolResultText("No image assets found"), nil
			}
			result, _ := json.MarshalIndent(assets, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	getVideosTool := mcp.NewTool("get_video_assets",
		mcp.WithDescription("List YouTube video assets"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	)

	s.AddTool(getVideosTool, common.InstrumentedToolHandlerWithService(
		"get_video_assets", serviceAssets, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			assets, err := sc.AdsClient().GetVideoAssets(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get video assets: %v", err)), nil
			}
			if len(assets) == 0 {
				return mcp.NewToolResultText("No video assets found"), nil
			}
			result, _ := json.MarshalIndent(assets, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	performanceTool := mcp.NewTool("get_asset_performance",
		mcp.WithDescription("Asset-level performance metrics across campaigns"),
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

	s.AddTool(performanceTool, common.InstrumentedToolHandlerWithService(
		"get_asset_performance", serviceAssets, "search", sc,
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

			rows, err := sc.AdsClient().GetAssetPerformance(ctx, customerID, dateRange)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get asset performance: %v", err)), nil
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

	uploadImageTool := mcp.NewTool("upload_image_asset",
		mcp.WithDescription("Upload an image asset from base64-encoded data"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Asset name"),
		),
		mcp.WithString("imageData",
			mcp.Required(),
			mcp.Description("Base64-encoded image bytes"),
		),
	)

	s.AddTool(uploadImageTool, common.InstrumentedToolHandlerWithService(
		"upload_image_asset", serviceAssets, "upload", sc,
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
			imageData, err := common.RequireString(args, "imageData")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			assetID, err := sc.AdsClient().UploadImageAsset(ctx, customerID, name, imageData)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to upload image asset: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Image asset uploaded successfully. ID: %s", assetID)), nil
		}))

	assetGroupTool := mcp.NewTool("create_asset_group",
		mcp.WithDescription("Create an asset group in a Performance Max campaign"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The Performance Max campaign"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Asset group name"),
		),
		mcp.WithArray("finalUrls",
			mcp.Required(),
			mcp.Description("Landing page URLs"),
		),
		mcp.WithString("status",
			mcp.Description("PAUSED (default) or ENABLED"),
		),
	)

	s.AddTool(assetGroupTool, common.InstrumentedToolHandlerWithService(
		"create_asset_group", serviceAssets, "create", sc,
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
			finalURLs := common.StringSlice(args, "finalUrls")
			if len(finalURLs) == 0 {
				return mcp.NewToolResultError("'finalUrls' field is required"), nil
			}

			input := ads.AssetGroupInput{
				CampaignID: campaignID,
				Name:       name,
				FinalURLs:  finalURLs,
				Status:     common.OptionalString(args, "status", ""),
			}

			groupID, err := sc.AdsClient().CreateAssetGroup(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create asset group: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Asset group created successfully. ID: %s", groupID)), nil
		}))

	sitelinksTool := mcp.NewTool("create_sitelink_assets",
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

	s.AddTool(sitelinksTool, common.InstrumentedToolHandlerWithService(
		"create_sitelink_assets", serviceAssets, "create", sc,
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
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create sitelink assets: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Created", "sitelink assets", items)), nil
		}))

	calloutsTool := mcp.NewTool("create_callout_assets",
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

	s.AddTool(calloutsTool, common.InstrumentedToolHandlerWithService(
		"create_callout_assets", serviceAssets, "create", sc,
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
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create callout assets: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Created", "callout assets", items)), nil
		}))

	snippetsTool := mcp.NewTool("create_structured_snippet_assets",
		mcp.WithDescription("Create a structured snippet asset and attach it to a campaign"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign to attach the snippet to"),
		),
		mcp.WithString("header",
			mcp.Required(),
			mcp.Description("Snippet header, e.g. 'Brands' or 'Services'"),
		),
		mcp.WithArray("values",
			mcp.Required(),
			mcp.Description("Snippet values (at least 3)"),
		),
	)

	s.AddTool(snippetsTool, common.InstrumentedToolHandlerWithService(
		"create_structured_snippet_assets", serviceAssets, "create", sc,
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
			header, err := common.RequireString(args, "header")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			values := common.StringSlice(args, "values")
			if len(values) < 3 {
				return mcp.NewToolResultError("'values' requires at least 3 entries"), nil
			}

			resourceName, err := sc.AdsClient().CreateStructuredSnippetAssets(ctx, customerID, campaignID, header, values)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create structured snippet assets: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Structured snippet created successfully. Asset: %s", resourceName)), nil
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
