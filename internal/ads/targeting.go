package ads

import "context"

// GetGeographicPerformance returns performance per user location with
// the resolved geo target constant.
func (c *Client) GetGeographicPerformance(ctx context.Context, customerID, dateRange string) ([]map[string]any, error) {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	query := NewQuery("user_location_view",
		"user_location_view.country_criterion_id",
		"user_location_view.targeting_location",
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
		"metrics.conversions",
		"metrics.conversions_value",
	).During(dateRange).
		OrderBy("metrics.impressions DESC")

	return c.SearchStream(ctx, customerID, query.String())
}

// LocationTargetInput describes one geo target to attach to a campaign.
// LocationID is the geo target constant criterion ID.
type LocationTargetInput struct {
	LocationID  string
	BidModifier float64
	Negative    bool
}

// AddLocationTargets attaches location criteria to a campaign in one
// mutate batch and reports per-item outcomes.
func (c *Client) AddLocationTargets(ctx context.Context, customerID, campaignID string, targets []LocationTargetInput) ([]BatchItem, error) {
	campaignResource := CampaignResourceName(customerID, campaignID)

	operations := make([]MutateOperation, len(targets))
	for i, target := range targets {
		operations[i] = MutateOperation{
			CampaignCriterion: Create(&CampaignCriterion{
				Campaign:    campaignResource,
				Negative:    target.Negative,
				BidModifier: target.BidModifier,
				Location: &Location{
					GeoTargetConstant: GeoTargetConstantResourceName(target.LocationID),
				},
			}),
		}
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}

// DemographicTargetInput describes one demographic criterion to attach
// to an ad group. Exactly one of AgeRange, Gender or IncomeRange is
// set.
type DemographicTargetInput struct {
	AgeRange    string
	Gender      string
	IncomeRange string
	BidModifier float64
	Negative    bool
}

// AddDemographicTargets attaches demographic criteria to an ad group in
// one mutate batch and reports per-item outcomes.
func (c *Client) AddDemographicTargets(ctx context.Context, customerID, adGroupID string, targets []DemographicTargetInput) ([]BatchItem, error) {
	adGroupResource := AdGroupResourceName(customerID, adGroupID)

	operations := make([]MutateOperation, len(targets))
	for i, target := range targets {
		criterion := &AdGroupCriterion{
			AdGroup:     adGroupResource,
			Negative:    target.Negative,
			BidModifier: target.BidModifier,
		}
		switch {
		case target.AgeRange != "":
			criterion.AgeRange = &AgeRange{Type: target.AgeRange}
		case target.Gender != "":
			criterion.Gender = &Gender{Type: target.Gender}
		case target.IncomeRange != "":
			criterion.IncomeRange = &IncomeRange{Type: target.IncomeRange}
		default:
			return nil, &DependencyError{Resource: "demographic criterion", Op: "addDemographicTargets"}
		}
		operations[i] = MutateOperation{AdGroupCriterion: Create(criterion)}
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}

// GetLocationInsights resolves geo target constants by name so callers
// can find criterion IDs for targeting.
func (c *Client) GetLocationInsights(ctx context.Context, customerID, locationName string) ([]map[string]any, error) {
	query := NewQuery("geo_target_constant",
		"geo_target_constant.id",
		"geo_target_constant.name",
		"geo_target_constant.canonical_name",
		"geo_target_constant.country_code",
		"geo_target_constant.target_type",
		"geo_target_constant.status",
	).Where("geo_target_constant.status = 'ENABLED'").
		Limit(50)

	if locationName != "" {
		query.Wheref("geo_target_constant.name = %s", QuoteLiteral(locationName))
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// LocationBidAdjustmentInput sets a bid modifier on an existing
// campaign location criterion.
type LocationBidAdjustmentInput struct {
	CampaignID  string
	LocationID  string
	BidModifier float64
}

// SetLocationBidAdjustments updates bid modifiers on campaign location
// criteria in one mutate batch and reports per-item outcomes.
func (c *Client) SetLocationBidAdjustments(ctx context.Context, customerID string, adjustments []LocationBidAdjustmentInput) ([]BatchItem, error) {
	operations := make([]MutateOperation, len(adjustments))
	for i, adjustment := range adjustments {
		operations[i] = MutateOperation{
			CampaignCriterion: Update(&CampaignCriterion{
				ResourceName: CampaignCriterionResourceName(customerID, adjustment.CampaignID, adjustment.LocationID),
				BidModifier:  adjustment.BidModifier,
			}, "bid_modifier"),
		}
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}

// GetLanguageTargets lists the language criteria attached to a
// campaign.
func (c *Client) GetLanguageTargets(ctx context.Context, customerID, campaignID string) ([]map[string]any, error) {
	query := NewQuery("campaign_criterion",
		"campaign_criterion.criterion_id",
		"campaign_criterion.language.language_constant",
		"campaign.id",
		"campaign.name",
	).Where("campaign_criterion.type = 'LANGUAGE'")

	if campaignID != "" {
		query.Wheref("campaign_criterion.campaign = '%s'", CampaignResourceName(customerID, campaignID))
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// AddLanguageTargets attaches language criteria to a campaign.
// LanguageIDs are language constant criterion IDs, e.g. 1000 for
// English.
func (c *Client) AddLanguageTargets(ctx context.Context, customerID, campaignID string, languageIDs []string) ([]BatchItem, error) {
	campaignResource := CampaignResourceName(customerID, campaignID)

	operations := make([]MutateOperation, len(languageIDs))
	for i, languageID := range languageIDs {
		operations[i] = MutateOperation{
			CampaignCriterion: Create(&CampaignCriterion{
				Campaign: campaignResource,
				Language: &Language{
					LanguageConstant: LanguageConstantResourceName(languageID),
				},
			}),
		}
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}

// RemoveLanguageTarget removes a language criterion from a campaign by
// its criterion ID.
func (c *Client) RemoveLanguageTarget(ctx context.Context, customerID, campaignID, criterionID string) error {
	_, err := c.Mutate(ctx, customerID, []MutateOperation{{
		CampaignCriterion: Remove[CampaignCriterion](
			CampaignCriterionResourceName(customerID, campaignID, criterionID)),
	}})
	return err
}
