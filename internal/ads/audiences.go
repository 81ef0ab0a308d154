package ads

import "context"

// AudienceInfo is the user list projection returned by GetAudiences.
type AudienceInfo struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	MembershipStatus string `json:"membershipStatus"`
	SizeForSearch    int64  `json:"sizeForSearch"`
	SizeForDisplay   int64  `json:"sizeForDisplay"`
}

// GetAudiences lists the account's user lists.
func (c *Client) GetAudiences(ctx context.Context, customerID string) ([]AudienceInfo, error) {
	query := NewQuery("user_list",
		"user_list.id",
		"user_list.name",
		"user_list.description",
		"user_list.type",
		"user_list.membership_status",
		"user_list.size_for_search",
		"user_list.size_for_display",
	).OrderBy("user_list.name")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	audiences := make([]AudienceInfo, 0, len(rows))
	for _, row := range rows {
		list := rowMap(row, "userList")
		audiences = append(audiences, AudienceInfo{
			ID:               rowString(list, "id"),
			Name:             rowString(list, "name"),
			Description:      rowString(list, "description"),
			Type:             rowString(list, "type"),
			MembershipStatus: rowString(list, "membershipStatus"),
			SizeForSearch:    rowInt64(list, "sizeForSearch"),
			SizeForDisplay:   rowInt64(list, "sizeForDisplay"),
		})
	}
	return audiences, nil
}

// CustomAudienceInput describes a rule based user list to create.
type CustomAudienceInput struct {
	Name               string
	Description        string
	MembershipLifeSpan int64
}

// CreateCustomAudience creates a rule based user list and returns its
// ID.
func (c *Client) CreateCustomAudience(ctx context.Context, customerID string, input CustomAudienceInput) (string, error) {
	list := &UserList{
		Name:               input.Name,
		Description:        input.Description,
		MembershipLifeSpan: input.MembershipLifeSpan,
		RuleBasedUserList:  &RuleBasedUserList{PrepopulationStatus: "REQUESTED"},
	}

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		UserList: Create(list),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].UserListResult == nil ||
		response.MutateOperationResponses[0].UserListResult.ResourceName == "" {
		return "", &DependencyError{Resource: "custom audience", Op: "createCustomAudience"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].UserListResult.ResourceName), nil
}

// CustomerMatchListInput describes a customer match list to create.
// UploadKeyType defaults to CONTACT_INFO.
type CustomerMatchListInput struct {
	Name               string
	Description        string
	MembershipLifeSpan int64
	UploadKeyType      string
}

// CreateCustomerMatchList creates a CRM based user list and returns its
// ID.
func (c *Client) CreateCustomerMatchList(ctx context.Context, customerID string, input CustomerMatchListInput) (string, error) {
	uploadKeyType := input.UploadKeyType
	if uploadKeyType == "" {
		uploadKeyType = "CONTACT_INFO"
	}

	list := &UserList{
		Name:               input.Name,
		Description:        input.Description,
		MembershipLifeSpan: input.MembershipLifeSpan,
		CrmBasedUserList: &CrmBasedUserList{
			UploadKeyType:  uploadKeyType,
			DataSourceType: "FIRST_PARTY",
		},
	}

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		UserList: Create(list),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].UserListResult == nil ||
		response.MutateOperationResponses[0].UserListResult.ResourceName == "" {
		return "", &DependencyError{Resource: "customer match list", Op: "createCustomerMatchList"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].UserListResult.ResourceName), nil
}

// CreateLookalikeAudience creates a similar user list seeded from an
// existing list and returns its ID.
func (c *Client) CreateLookalikeAudience(ctx context.Context, customerID, seedUserListID, name, description string) (string, error) {
	list := &UserList{
		Name:        name,
		Description: description,
		SimilarUserList: &SimilarUserList{
			SeedUserList: UserListResourceName(customerID, seedUserListID),
		},
	}

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		UserList: Create(list),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].UserListResult == nil ||
		response.MutateOperationResponses[0].UserListResult.ResourceName == "" {
		return "", &DependencyError{Resource: "lookalike audience", Op: "createLookalikeAudience"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].UserListResult.ResourceName), nil
}

// AddAudienceToCampaign attaches a user list criterion to a campaign.
// TargetingType OBSERVATION maps to a positive criterion with a bid
// modifier only; TARGETING additionally restricts serving.
func (c *Client) AddAudienceToCampaign(ctx context.Context, customerID, campaignID, userListID string, bidModifier float64) (string, error) {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		CampaignCriterion: Create(&CampaignCriterion{
			Campaign:    CampaignResourceName(customerID, campaignID),
			BidModifier: bidModifier,
			UserList: &UserListRef{
				UserList: UserListResourceName(customerID, userListID),
			},
		}),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].CampaignCriterionResult == nil ||
		response.MutateOperationResponses[0].CampaignCriterionResult.ResourceName == "" {
		return "", &DependencyError{Resource: "audience criterion", Op: "addAudienceToCampaign"}
	}
	return response.MutateOperationResponses[0].CampaignCriterionResult.ResourceName, nil
}

// RemoveAudienceFromCampaign looks up the user list criterion attached
// to the campaign and removes it.
func (c *Client) RemoveAudienceFromCampaign(ctx context.Context, customerID, campaignID, userListID string) error {
	query := NewQuery("campaign_criterion",
		"campaign_criterion.criterion_id",
		"campaign_criterion.user_list.user_list",
	).Wheref("campaign_criterion.campaign = '%s'", CampaignResourceName(customerID, campaignID)).
		Where("campaign_criterion.type = 'USER_LIST'")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return err
	}

	wanted := UserListResourceName(customerID, userListID)
	for _, row := range rows {
		criterion := rowMap(row, "campaignCriterion")
		userList := rowMap(criterion, "userList")
		if rowString(userList, "userList") != wanted {
			continue
		}
		_, err := c.Mutate(ctx, customerID, []MutateOperation{{
			CampaignCriterion: Remove[CampaignCriterion](
				CampaignCriterionResourceName(customerID, campaignID, rowString(criterion, "criterionId"))),
		}})
		return err
	}
	return &DependencyError{Resource: "audience criterion", Op: "removeAudienceFromCampaign"}
}

// GetAudienceInsights returns audience performance segmented per
// campaign user list criterion.
func (c *Client) GetAudienceInsights(ctx context.Context, customerID, dateRange string) ([]map[string]any, error) {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	query := NewQuery("campaign_audience_view",
		"campaign.id",
		"campaign.name",
		"campaign_criterion.criterion_id",
		"campaign_criterion.user_list.user_list",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
		"metrics.conversions",
	).During(dateRange).
		OrderBy("metrics.impressions DESC")

	return c.SearchStream(ctx, customerID, query.String())
}

// CustomerMatchMember identifies one customer for list membership.
// Hashes are SHA-256 of the normalized value, hex encoded.
type CustomerMatchMember struct {
	HashedEmail       string `json:"hashedEmail,omitempty"`
	HashedPhoneNumber string `json:"hashedPhoneNumber,omitempty"`
	MobileID          string `json:"mobileId,omitempty"`
	ThirdPartyUserID  string `json:"thirdPartyUserId,omitempty"`
}

type userDataOperation struct {
	Create *userData `json:"create,omitempty"`
	Remove *userData `json:"remove,omitempty"`
}

type userData struct {
	UserIdentifiers []CustomerMatchMember `json:"userIdentifiers"`
}

type uploadUserDataRequest struct {
	Operations                    []userDataOperation `json:"operations"`
	CustomerMatchUserListMetadata *userListMetadata   `json:"customerMatchUserListMetadata,omitempty"`
}

type userListMetadata struct {
	UserList string `json:"userList"`
}

type uploadUserDataResponse struct {
	ReceivedOperationsCount int64 `json:"receivedOperationsCount,string"`
}

// UploadCustomerMatchData adds members to a customer match list and
// returns the number of operations the API accepted.
func (c *Client) UploadCustomerMatchData(ctx context.Context, customerID, userListID string, members []CustomerMatchMember) (int64, error) {
	digits, err := customerDigitsChecked(customerID)
	if err != nil {
		return 0, err
	}
	if err := c.requireLoginCustomerID(); err != nil {
		return 0, err
	}

	operations := make([]userDataOperation, len(members))
	for i, member := range members {
		operations[i] = userDataOperation{
			Create: &userData{UserIdentifiers: []CustomerMatchMember{member}},
		}
	}

	request := uploadUserDataRequest{
		Operations: operations,
		CustomerMatchUserListMetadata: &userListMetadata{
			UserList: UserListResourceName(customerID, userListID),
		},
	}

	var response uploadUserDataResponse
	path := "/customers/" + digits + ":uploadUserData"
	if err := c.post(ctx, "uploadCustomerMatchData", path, request, &response); err != nil {
		return 0, err
	}
	return response.ReceivedOperationsCount, nil
}
