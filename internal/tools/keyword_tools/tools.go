package keyword_tools

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

// RegisterKeywordTools registers keyword and keyword planning tools with the MCP server
func RegisterKeywordTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	getKeywordsTool := mcp.NewTool("get_keywords",
		mcp.WithDescription("List keywords in an account, optionally filtered by ad group"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("adGroupId",
			mcp.Description("Restrict to a single ad group ID"),
		),
	)

	s.AddTool(getKeywordsTool, common.InstrumentedToolHandlerWithService(
		"get_keywords", instrumentation.ServiceKeywords, instrumentation.OperationSearch, sc,
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

			keywords, err := sc.AdsClient().GetKeywords(ctx, customerID, adGroupID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get keywords: %v", err)), nil
			}
			if len(keywords) == 0 {
				return mcp.NewToolResultText("No keywords found"), nil
			}
			result, _ := json.MarshalIndent(keywords, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	ideasTool := mcp.NewTool("get_keyword_ideas",
		mcp.WithDescription("Generate keyword ideas with search volume from seed keywords or a page URL"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("seedKeywords",
			mcp.Description("Seed keywords to expand from"),
		),
		mcp.WithString("pageUrl",
			mcp.Description("A landing page URL to extract keyword ideas from"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of ideas to return (default: 50)"),
		),
	)

	s.AddTool(ideasTool, common.InstrumentedToolHandlerWithService(
		"get_keyword_ideas", instrumentation.ServiceKeywords, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			seedKeywords := common.StringSlice(args, "seedKeywords")
			pageURL := common.OptionalString(args, "pageUrl", "")
			if len(seedKeywords) == 0 && pageURL == "" {
				return mcp.NewToolResultError("either 'seedKeywords' or 'pageUrl' must be provided"), nil
			}
			limit := int(common.OptionalNumber(args, "limit", 50))

			ideas, err := sc.AdsClient().GenerateKeywordIdeas(ctx, customerID, seedKeywords, pageURL, limit)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to generate keyword ideas: %v", err)), nil
			}
			if len(ideas) == 0 {
				return mcp.NewToolResultText("No keyword ideas found"), nil
			}
			result, _ := json.MarshalIndent(ideas, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	forecastTool := mcp.NewTool("generate_forecast_metrics",
		mcp.WithDescription("Generate traffic forecast metrics for a set of keywords"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("keywords",
			mcp.Required(),
			mcp.Description("Keywords to forecast, each {text, matchType}"),
		),
	)

	s.AddTool(forecastTool, common.InstrumentedToolHandlerWithService(
		"generate_forecast_metrics", instrumentation.ServiceKeywords, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			keywords := keywordInputs(args)
			if len(keywords) == 0 {
				return mcp.NewToolResultError("'keywords' field is required"), nil
			}

			forecast, err := sc.AdsClient().GenerateForecastMetrics(ctx, customerID, keywords)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to generate forecast metrics: %v", err)), nil
			}
			result, _ := json.MarshalIndent(forecast, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	if readOnly {
		return nil
	}

	addKeywordsTool := mcp.NewTool("add_keywords",
		mcp.WithDescription("Add keywords to an ad group (paused by default)"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("adGroupId",
			mcp.Required(),
			mcp.Description("The ad group to add keywords to"),
		),
		mcp.WithArray("keywords",
			mcp.Required(),
			mcp.Description("Keywords to add, each {text, matchType, cpcBid}"),
		),
	)

	s.AddTool(addKeywordsTool, common.InstrumentedToolHandlerWithService(
		"add_keywords", instrumentation.ServiceKeywords, instrumentation.OperationMutate, sc,
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
			keywords := keywordInputs(args)
			if len(keywords) == 0 {
				return mcp.NewToolResultError("'keywords' field is required"), nil
			}

			items, err := sc.AdsClient().AddKeywords(ctx, customerID, adGroupID, keywords)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to add keywords: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Added", "keywords", items)), nil
		}))

	addNegativesTool := mcp.NewTool("add_negative_keywords",
		mcp.WithDescription("Add negative keywords to an ad group"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("adGroupId",
			mcp.Required(),
			mcp.Description("The ad group to add negative keywords to"),
		),
		mcp.WithArray("keywords",
			mcp.Required(),
			mcp.Description("Negative keyword texts"),
		),
	)

	s.AddTool(addNegativesTool, common.InstrumentedToolHandlerWithService(
		"add_negative_keywords", instrumentation.ServiceKeywords, instrumentation.OperationMutate, sc,
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
			texts := common.StringSlice(args, "keywords")
			if len(texts) == 0 {
				return mcp.NewToolResultError("'keywords' field is required"), nil
			}

			items, err := sc.AdsClient().AddNegativeKeywords(ctx, customerID, adGroupID, texts)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to add negative keywords: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Added", "negative keywords", items)), nil
		}))

	return nil
}

// keywordInputs converts the keywords argument into KeywordInput values.
// Plain strings become BROAD match keywords without a bid.
func keywordInputs(args map[string]interface{}) []ads.KeywordInput {
	items, ok := args["keywords"].([]interface{})
	if !ok {
		return nil
	}
	keywords := make([]ads.KeywordInput, 0, len(items))
	for _, item := range items {
		switch kw := item.(type) {
		case string:
			if kw != "" {
				keywords = append(keywords, ads.KeywordInput{Text: kw})
			}
		case map[string]interface{}:
			text, _ := kw["text"].(string)
			if text == "" {
				continue
			}
			matchType, _ := kw["matchType"].(string)
			cpcBid, _ := kw["cpcBid"].(float64)
			keywords = append(keywords, ads.KeywordInput{
				Text:         text,
				MatchType:    matchType,
				CpcBidMicros: ads.UnitsToMicros(cpcBid),
			})
		}
	}
	return keywords
}
