package ads

import "context"

// RecommendationInfo is the recommendation projection returned by
// GetRecommendations.
type RecommendationInfo struct {
	ResourceName string `json:"resourceName"`
	Type         string `json:"type"`
	Campaign     string `json:"campaign"`
	Dismissed    bool   `json:"dismissed"`
}

// GetRecommendations lists pending recommendations for the account.
func (c *Client) GetRecommendations(ctx context.Context, customerID string) ([]RecommendationInfo, error) {
	query := NewQuery("recommendation",
		"recommendation.resource_name",
		"recommendation.type",
		"recommendation.campaign",
		"recommendation.dismissed",
	).Where("recommendation.dismissed = false")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	recommendations := make([]RecommendationInfo, 0, len(rows))
	for _, row := range rows {
		rec := rowMap(row, "recommendation")
		recommendations = append(recommendations, RecommendationInfo{
			ResourceName: rowString(rec, "resourceName"),
			Type:         rowString(rec, "type"),
			Campaign:     rowString(rec, "campaign"),
			Dismissed:    rowBool(rec, "dismissed"),
		})
	}
	return recommendations, nil
}

type applyRecommendationRequest struct {
	Operations []recommendationOperation `json:"operations"`
}

type recommendationOperation struct {
	ResourceName string `json:"resourceName"`
}

type applyRecommendationResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

// ApplyRecommendation applies a recommendation with its default
// parameters.
func (c *Client) ApplyRecommendation(ctx context.Context, customerID, recommendationID string) error {
	digits, err := customerDigitsChecked(customerID)
	if err != nil {
		return err
	}
	if err := c.requireLoginCustomerID(); err != nil {
		return err
	}

	request := applyRecommendationRequest{
		Operations: []recommendationOperation{{
			ResourceName: RecommendationResourceName(customerID, recommendationID),
		}},
	}

	var response applyRecommendationResponse
	path := "/customers/" + digits + "/recommendations:apply"
	if err := c.post(ctx, "applyRecommendation", path, request, &response); err != nil {
		return err
	}
	if len(response.Results) == 0 || response.Results[0].ResourceName == "" {
		return &DependencyError{Resource: "recommendation", Op: "applyRecommendation"}
	}
	return nil
}

// DismissRecommendation dismisses a recommendation so it no longer
// appears in listings.
func (c *Client) DismissRecommendation(ctx context.Context, customerID, recommendationID string) error {
	digits, err := customerDigitsChecked(customerID)
	if err != nil {
		return err
	}
	if err := c.requireLoginCustomerID(); err != nil {
		return err
	}

	request := applyRecommendationRequest{
		Operations: []recommendationOperation{{
			ResourceName: RecommendationResourceName(customerID, recommendationID),
		}},
	}

	var response applyRecommendationResponse
	path := "/customers/" + digits + "/recommendations:dismiss"
	return c.post(ctx, "dismissRecommendation", path, request, &response)
}

// CallExtensionInput describes a call asset to create and link to a
// campaign.
type CallExtensionInput struct {
	CountryCode string
	PhoneNumber string
}

// CreateCallExtension creates a call asset and links it to the campaign
// as a CALL extension.
func (c *Client) CreateCallExtension(ctx context.Context, customerID, campaignID string, input CallExtensionInput) (string, error) {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		Asset: Create(&Asset{
			CallAsset: &CallAsset{
				CountryCode: input.CountryCode,
				PhoneNumber: input.PhoneNumber,
			},
		}),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].AssetResult == nil ||
		response.MutateOperationResponses[0].AssetResult.ResourceName == "" {
		return "", &DependencyError{Resource: "call asset", Op: "createCallExtension"}
	}

	resourceName := response.MutateOperationResponses[0].AssetResult.ResourceName
	if err := c.linkCampaignAsset(ctx, customerID, campaignID, resourceName, "CALL"); err != nil {
		return "", err
	}
	return lastPathSegment(resourceName), nil
}

// GetExtensionPerformance returns per-extension performance for assets
// linked at the campaign level.
func (c *Client) GetExtensionPerformance(ctx context.Context, customerID, dateRange string) ([]map[string]any, error) {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	query := NewQuery("campaign_asset",
		"campaign_asset.asset",
		"campaign_asset.field_type",
		"campaign_asset.status",
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
		"metrics.conversions",
	).Where("campaign_asset.status != 'REMOVED'").
		During(dateRange).
		OrderBy("metrics.impressions DESC")

	return c.SearchStream(ctx, customerID, query.String())
}
