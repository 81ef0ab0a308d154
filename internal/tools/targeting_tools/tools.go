package targeting_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/googleads-mcp/internal/ads"
	"github.com/teemow/googleads-mcp/internal/server"
	"github.com/teemow/googleads-mcp/internal/tools/common"
)

const serviceTargeting = "targeting"

// RegisterTargetingTools registers geographic, demographic and language
// targeting tools with the MCP server
func RegisterTargetingTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	geoPerfTool := mcp.NewTool("get_geographic_performance",
		mcp.WithDescription("Campaign performance broken down by targeted location"),
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

	s.AddTool(geoPerfTool, common.InstrumentedToolHandlerWithService(
		"get_geographic_performance", serviceTargeting, "search", sc,
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

			rows, err := sc.AdsClient().GetGeographicPerformance(ctx, customerID, dateRange)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get geographic performance: %v", err)), nil
			}
			formatted, err := ads.FormatResults(rows, format)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
			}
			return mcp.NewToolResultText(formatted), nil
		}))

	locationInsightsTool := mcp.NewTool("get_location_insights",
		mcp.WithDescription("Look up geo target constants by location name"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("locationName",
			mcp.Required(),
			mcp.Description("Location name to search for, e.g. 'Berlin'"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' (default), 'csv', or 'json'"),
		),
	)

	s.AddTool(locationInsightsTool, common.InstrumentedToolHandlerWithService(
		"get_location_insights", serviceTargeting, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			locationName, err := common.RequireString(args, "locationName")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			format := common.OptionalString(args, "format", "table")

			rows, err := sc.AdsClient().GetLocationInsights(ctx, customerID, locationName)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get location insights: %v", err)), nil
			}
			formatted, err := ads.FormatResults(rows, format)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
			}
			return mcp.NewToolResultText(formatted), nil
		}))

	languageTool := mcp.NewTool("manage_language_targets",
		mcp.WithDescription("List, add, or remove campaign language targets. Action 'list' shows current targets, 'add' attaches language constant IDs, 'remove' detaches one criterion."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign ID"),
		),
		mcp.WithString("action",
			mcp.Description("'list' (default), 'add', or 'remove'"),
		),
		mcp.WithArray("languageIds",
			mcp.Description("Language constant IDs for 'add', e.g. 1000 for English, 1001 for German"),
		),
		mcp.WithString("criterionId",
			mcp.Description("Criterion ID to detach for 'remove'"),
		),
	)

	s.AddTool(languageTool, common.InstrumentedToolHandlerWithService(
		"manage_language_targets", serviceTargeting, "mutate", sc,
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
			action := common.OptionalString(args, "action", "list")

			switch action {
			case "list":
				rows, err := sc.AdsClient().GetLanguageTargets(ctx, customerID, campaignID)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to get language targets: %v", err)), nil
				}
				formatted, err := ads.FormatResults(rows, common.OptionalString(args, "format", "table"))
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to format results: %v", err)), nil
				}
				return mcp.NewToolResultText(formatted), nil
			case "add":
				if readOnly {
					return mcp.NewToolResultError("Server is in read-only mode. Restart with --yolo to enable writes."), nil
				}
				languageIDs := common.StringSlice(args, "languageIds")
				if len(languageIDs) == 0 {
					return mcp.NewToolResultError("'languageIds' field is required for action 'add'"), nil
				}
				items, err := sc.AdsClient().AddLanguageTargets(ctx, customerID, campaignID, languageIDs)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to add language targets: %v", err)), nil
				}
				return mcp.NewToolResultText(common.BatchSummary("Added", "language targets", items)), nil
			case "remove":
				if readOnly {
					return mcp.NewToolResultError("Server is in read-only mode. Restart with --yolo to enable writes."), nil
				}
				criterionID, err := common.RequireString(args, "criterionId")
				if err != nil {
					return mcp.NewToolResultError("'criterionId' field is required for action 'remove'"), nil
				}
				if err := sc.AdsClient().RemoveLanguageTarget(ctx, customerID, campaignID, criterionID); err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to remove language target: %v", err)), nil
				}
				return mcp.NewToolResultText("Language target removed successfully"), nil
			default:
				return mcp.NewToolResultError(fmt.Sprintf("unknown action %q, expected 'list', 'add', or 'remove'", action)), nil
			}
		}))

	if readOnly {
		return nil
	}

	locationTargetsTool := mcp.NewTool("add_location_targets",
		mcp.WithDescription("Add location targeting criteria to a campaign"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign to target"),
		),
		mcp.WithArray("locations",
			mcp.Required(),
			mcp.Description("Locations to target, each {locationId, bidModifier, negative}"),
		),
	)

	s.AddTool(locationTargetsTool, common.InstrumentedToolHandlerWithService(
		"add_location_targets", serviceTargeting, "mutate", sc,
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
			targets := locationTargets(common.MapSlice(args, "locations"))
			if len(targets) == 0 {
				return mcp.NewToolResultError("'locations' field is required"), nil
			}

			items, err := sc.AdsClient().AddLocationTargets(ctx, customerID, campaignID, targets)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to add location targets: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Added", "location targets", items)), nil
		}))

	demographicTool := mcp.NewTool("add_demographic_targets",
		mcp.WithDescription("Add age, gender, or income targeting criteria to an ad group"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("adGroupId",
			mcp.Required(),
			mcp.Description("The ad group to target"),
		),
		mcp.WithArray("targets",
			mcp.Required(),
			mcp.Description("Criteria to add, each {ageRange, gender, incomeRange, bidModifier, negative}"),
		),
	)

	s.AddTool(demographicTool, common.InstrumentedToolHandlerWithService(
		"add_demographic_targets", serviceTargeting, "mutate", sc,
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
			targets := demographicTargets(common.MapSlice(args, "targets"))
			if len(targets) == 0 {
				return mcp.NewToolResultError("'targets' field is required"), nil
			}

			items, err := sc.AdsClient().AddDemographicTargets(ctx, customerID, adGroupID, targets)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to add demographic targets: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Added", "demographic targets", items)), nil
		}))

	locationBidsTool := mcp.NewTool("set_location_bid_adjustments",
		mcp.WithDescription("Set bid adjustments on existing campaign location targets"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithArray("adjustments",
			mcp.Required(),
			mcp.Description("Adjustments to apply, each {campaignId, locationId, bidModifier}"),
		),
	)

	s.AddTool(locationBidsTool, common.InstrumentedToolHandlerWithService(
		"set_location_bid_adjustments", serviceTargeting, "mutate", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			adjustments := locationBidAdjustments(common.MapSlice(args, "adjustments"))
			if len(adjustments) == 0 {
				return mcp.NewToolResultError("'adjustments' field is required"), nil
			}

			items, err := sc.AdsClient().SetLocationBidAdjustments(ctx, customerID, adjustments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to set location bid adjustments: %v", err)), nil
			}
			return mcp.NewToolResultText(common.BatchSummary("Updated", "location bid adjustments", items)), nil
		}))

	return nil
}

func locationTargets(raw []map[string]interface{}) []ads.LocationTargetInput {
	targets := make([]ads.LocationTargetInput, 0, len(raw))
	for _, item := range raw {
		locationID, _ := item["locationId"].(string)
		if locationID == "" {
			continue
		}
		bidModifier, _ := item["bidModifier"].(float64)
		negative, _ := item["negative"].(bool)
		targets = append(targets, ads.LocationTargetInput{
			LocationID:  locationID,
			BidModifier: bidModifier,
			Negative:    negative,
		})
	}
	return targets
}

func demographicTargets(raw []map[string]interface{}) []ads.DemographicTargetInput {
	targets := make([]ads.DemographicTargetInput, 0, len(raw))
	for _, item := range raw {
		target := ads.DemographicTargetInput{}
		target.AgeRange, _ = item["ageRange"].(string)
		target.Gender, _ = item["gender"].(string)
		target.IncomeRange, _ = item["incomeRange"].(string)
		target.BidModifier, _ = item["bidModifier"].(float64)
		target.Negative, _ = item["negative"].(bool)
		if target.AgeRange == "" && target.Gender == "" && target.IncomeRange == "" {
			continue
		}
		targets = append(targets, target)
	}
	return targets
}

func locationBidAdjustments(raw []map[string]interface{}) []ads.LocationBidAdjustmentInput {
	adjustments := make([]ads.LocationBidAdjustmentInput, 0, len(raw))
	for _, item := range raw {
		campaignID, _ := item["campaignId"].(string)
		locationID, _ := item["locationId"].(string)
		if campaignID == "" || locationID == "" {
			continue
		}
		bidModifier, _ := item["bidModifier"].(float64)
		adjustments = append(adjustments, ads.LocationBidAdjustmentInput{
			CampaignID:  campaignID,
			LocationID:  locationID,
			BidModifier: bidModifier,
		})
	}
	return adjustments
}
