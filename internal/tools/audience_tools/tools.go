package audience_tools

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

const serviceAudiences = "audiences"

// RegisterAudienceTools registers audience and user list tools with the MCP server
func RegisterAudienceTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	getAudiencesTool := mcp.NewTool("get_audiences",
		mcp.WithDescription("List user lists (audiences) with membership status and sizes"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
	)

	s.AddTool(getAudiencesTool, common.InstrumentedToolHandlerWithService(
		"get_audiences", serviceAudiences, "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			audiences, err := sc.AdsClient().GetAudiences(ctx, customerID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get audiences: %v", err)), nil
			}
			if len(audiences) == 0 {
				return mcp.NewToolResultText("No audiences found"), nil
			}
			result, _ := json.MarshalIndent(audiences, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	insightsTool := mcp.NewTool("get_audience_insights",
		mcp.WithDescription("Get audience performance across campaigns"),
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

	s.AddTool(insightsTool, common.InstrumentedToolHandlerWithService(
		"get_audience_insights", serviceAudiences, "search", sc,
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

			rows, err := sc.AdsClient().GetAudienceInsights(ctx, customerID, dateRange)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get audience insights: %v", err)), nil
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

	createCustomTool := mcp.NewTool("create_custom_audience",
		mcp.WithDescription("Create a rule-based custom audience user list"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Audience name"),
		),
		mcp.WithString("description",
			mcp.Description("Audience description"),
		),
		mcp.WithNumber("membershipLifeSpan",
			mcp.Description("Days a user stays in the list (default: 30)"),
		),
	)

	s.AddTool(createCustomTool, common.InstrumentedToolHandlerWithService(
		"create_custom_audience", serviceAudiences, "create", sc,
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

			input := ads.CustomAudienceInput{
				Name:               name,
				Description:        common.OptionalString(args, "description", ""),
				MembershipLifeSpan: int64(common.OptionalNumber(args, "membershipLifeSpan", 0)),
			}

			listID, err := sc.AdsClient().CreateCustomAudience(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create custom audience: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Custom audience created successfully. ID: %s", listID)), nil
		}))

	createMatchListTool := mcp.NewTool("create_customer_match_list",
		mcp.WithDescription("Create a Customer Match user list for first-party data uploads"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("List name"),
		),
		mcp.WithString("description",
			mcp.Description("List description"),
		),
		mcp.WithNumber("membershipLifeSpan",
			mcp.Description("Days a user stays in the list (default: 30)"),
		),
		mcp.WithString("uploadKeyType",
			mcp.Description("CONTACT_INFO (default), CRM_ID, or MOBILE_ADVERTISING_ID"),
		),
	)

	s.AddTool(createMatchListTool, common.InstrumentedToolHandlerWithService(
		"create_customer_match_list", serviceAudiences, "create", sc,
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

			input := ads.CustomerMatchListInput{
				Name:               name,
				Description:        common.OptionalString(args, "description", ""),
				MembershipLifeSpan: int64(common.OptionalNumber(args, "membershipLifeSpan", 0)),
				UploadKeyType:      common.OptionalString(args, "uploadKeyType", ""),
			}

			listID, err := sc.AdsClient().CreateCustomerMatchList(ctx, customerID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create customer match list: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Customer match list created successfully. ID: %s", listID)), nil
		}))

	uploadDataTool := mcp.NewTool("upload_customer_match_data",
		mcp.WithDescription("Upload hashed customer data to a Customer Match list. Emails and phone numbers must be SHA-256 hashed."),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("userListId",
			mcp.Required(),
			mcp.Description("The Customer Match user list ID"),
		),
		mcp.WithArray("members",
			mcp.Required(),
			mcp.Description("Members to add, each {hashedEmail, hashedPhoneNumber, mobileId, thirdPartyUserId}"),
		),
	)

	s.AddTool(uploadDataTool, common.InstrumentedToolHandlerWithService(
		"upload_customer_match_data", serviceAudiences, "upload", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			userListID, err := common.RequireString(args, "userListId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			members := matchMembers(common.MapSlice(args, "members"))
			if len(members) == 0 {
				return mcp.NewToolResultError("'members' field is required"), nil
			}

			received, err := sc.AdsClient().UploadCustomerMatchData(ctx, customerID, userListID, members)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to upload customer match data: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Uploaded %d customer match members successfully (%d received by the API)", len(members), received)), nil
		}))

	createLookalikeTool := mcp.NewTool("create_lookalike_audience",
		mcp.WithDescription("Create a similar-users audience seeded from an existing user list"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("seedUserListId",
			mcp.Required(),
			mcp.Description("The user list to seed the lookalike from"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Audience name"),
		),
		mcp.WithString("description",
			mcp.Description("Audience description"),
		),
	)

	s.AddTool(createLookalikeTool, common.InstrumentedToolHandlerWithService(
		"create_lookalike_audience", serviceAudiences, "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, errResult := common.RequireArgs(request)
			if errResult != nil {
				return errResult, nil
			}
			customerID, err := common.RequireCustomer(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			seedUserListID, err := common.RequireString(args, "seedUserListId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			name, err := common.RequireString(args, "name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			description := common.OptionalString(args, "description", "")

			listID, err := sc.AdsClient().CreateLookalikeAudience(ctx, customerID, seedUserListID, name, description)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create lookalike audience: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Lookalike audience created successfully. ID: %s", listID)), nil
		}))

	addToCampaignTool := mcp.NewTool("add_audience_to_campaign",
		mcp.WithDescription("Attach a user list to a campaign as a targeting criterion"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign to target"),
		),
		mcp.WithString("userListId",
			mcp.Required(),
			mcp.Description("The user list to attach"),
		),
		mcp.WithNumber("bidModifier",
			mcp.Description("Bid modifier for the audience (e.g., 1.2 for +20%)"),
		),
	)

	s.AddTool(addToCampaignTool, common.InstrumentedToolHandlerWithService(
		"add_audience_to_campaign", serviceAudiences, "mutate", sc,
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
			userListID, err := common.RequireString(args, "userListId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			bidModifier := common.OptionalNumber(args, "bidModifier", 0)

			resourceName, err := sc.AdsClient().AddAudienceToCampaign(ctx, customerID, campaignID, userListID, bidModifier)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to add audience to campaign: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Audience added to campaign successfully. Criterion: %s", resourceName)), nil
		}))

	removeFromCampaignTool := mcp.NewTool("remove_audience_from_campaign",
		mcp.WithDescription("Detach a user list targeting criterion from a campaign"),
		mcp.WithString("customerId",
			mcp.Required(),
			mcp.Description("The customer ID"),
		),
		mcp.WithString("campaignId",
			mcp.Required(),
			mcp.Description("The campaign to remove the audience from"),
		),
		mcp.WithString("userListId",
			mcp.Required(),
			mcp.Description("The user list to detach"),
		),
	)

	s.AddTool(removeFromCampaignTool, common.InstrumentedToolHandlerWithService(
		"remove_audience_from_campaign", serviceAudiences, "mutate", sc,
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
			userListID, err := common.RequireString(args, "userListId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.AdsClient().RemoveAudienceFromCampaign(ctx, customerID, campaignID, userListID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to remove audience from campaign: %v", err)), nil
			}
			return mcp.NewToolResultText("Audience removed from campaign successfully"), nil
		}))

	return nil
}

// matchMembers converts raw member objects into CustomerMatchMember
// values, skipping entries with no identifier at all.
func matchMembers(raw []map[string]interface{}) []ads.CustomerMatchMember {
	members := make([]ads.CustomerMatchMember, 0, len(raw))
	for _, item := range raw {
		member := ads.CustomerMatchMember{}
		member.HashedEmail, _ = item["hashedEmail"].(string)
		member.HashedPhoneNumber, _ = item["hashedPhoneNumber"].(string)
		member.MobileID, _ = item["mobileId"].(string)
		member.ThirdPartyUserID, _ = item["thirdPartyUserId"].(string)
		if member.HashedEmail == "" && member.HashedPhoneNumber == "" &&
			member.MobileID == "" && member.ThirdPartyUserID == "" {
			continue
		}
		members = append(members, member)
	}
	return members
}
