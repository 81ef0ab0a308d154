package ads

import (
	"context"
	"fmt"
)

// CampaignInput describes a campaign to create. BudgetAmount is in
// currency units and defaults to 10; it is converted to micros exactly
// once, here at the API boundary.
type CampaignInput struct {
	Name                   string
	BudgetAmount           float64
	AdvertisingChannelType string
	StartDate              string
	EndDate                string
}

// GetCampaigns lists all non-removed campaigns. Budget comes back in
// currency units.
func (c *Client) GetCampaigns(ctx context.Context, customerID string) ([]CampaignInfo, error) {
	query := NewQuery("campaign",
		"campaign.id",
		"campaign.name",
		"campaign.status",
		"campaign.advertising_channel_type",
		"campaign.bidding_strategy_type",
		"campaign_budget.amount_micros",
		"campaign.start_date",
		"campaign.end_date",
	).Where("campaign.status != 'REMOVED'").
		OrderBy("campaign.name")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	campaigns := make([]CampaignInfo, 0, len(rows))
	for _, row := range rows {
		campaign := rowMap(row, "campaign")
		budget := rowMap(row, "campaignBudget")
		campaigns = append(campaigns, CampaignInfo{
			ID:                     rowString(campaign, "id"),
			Name:                   rowString(campaign, "name"),
			Status:                 rowString(campaign, "status"),
			AdvertisingChannelType: rowString(campaign, "advertisingChannelType"),
			BiddingStrategyType:    rowString(campaign, "biddingStrategyType"),
			Budget:                 MicrosToUnits(rowFloat(budget, "amountMicros")),
			StartDate:              rowString(campaign, "startDate"),
			EndDate:                rowString(campaign, "endDate"),
		})
	}
	return campaigns, nil
}

// GetCampaignPerformance returns campaign metrics for a date range
// (default LAST_30_DAYS), optionally restricted to one campaign.
func (c *Client) GetCampaignPerformance(ctx context.Context, customerID, campaignID, dateRange string) ([]CampaignPerformance, error) {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	query := NewQuery("campaign",
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.ctr",
		"metrics.average_cpc",
		"metrics.cost_micros",
		"metrics.conversions",
		"metrics.conversions_from_interactions_rate",
		"metrics.conversions_value",
	).During(dateRange)

	if campaignID != "" {
		query.Wheref("campaign.id = %s", DigitsOnly(campaignID))
	}

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	performance := make([]CampaignPerformance, 0, len(rows))
	for _, row := range rows {
		campaign := rowMap(row, "campaign")
		metrics := rowMap(row, "metrics")
		performance = append(performance, CampaignPerformance{
			CampaignID:   rowString(campaign, "id"),
			CampaignName: rowString(campaign, "name"),
			Metrics: PerformanceMetrics{
				Impressions:     rowFloat(metrics, "impressions"),
				Clicks:          rowFloat(metrics, "clicks"),
				Ctr:             rowFloat(metrics, "ctr"),
				AverageCpc:      MicrosToUnits(rowFloat(metrics, "averageCpc")),
				CostMicros:      rowFloat(metrics, "costMicros"),
				Conversions:     rowFloat(metrics, "conversions"),
				ConversionRate:  rowFloat(metrics, "conversionsFromInteractionsRate"),
				ConversionValue: rowFloat(metrics, "conversionsValue"),
			},
		})
	}
	return performance, nil
}

// CreateCampaign creates a campaign budget and then the campaign
// referencing it. New campaigns always start PAUSED; the channel type
// defaults to SEARCH. When the budget step yields no resource name the
// campaign step is not attempted.
func (c *Client) CreateCampaign(ctx context.Context, customerID string, input CampaignInput) (string, error) {
	budgetAmount := input.BudgetAmount
	if budgetAmount <= 0 {
		budgetAmount = 10
	}
	channelType := input.AdvertisingChannelType
	if channelType == "" {
		channelType = "SEARCH"
	}

	budgetResourceName, err := c.createBudget(ctx, customerID, "createCampaign", &CampaignBudget{
		Name:           input.Name + " Budget",
		AmountMicros:   UnitsToMicros(budgetAmount),
		DeliveryMethod: "STANDARD",
	})
	if err != nil {
		return "", err
	}

	return c.createCampaignWithBudget(ctx, customerID, "createCampaign", &Campaign{
		Name:                   input.Name,
		Status:                 "PAUSED",
		AdvertisingChannelType: channelType,
		CampaignBudget:         budgetResourceName,
		StartDate:              input.StartDate,
		EndDate:                input.EndDate,
	})
}

// createBudget runs the first step of a dependent campaign creation.
func (c *Client) createBudget(ctx context.Context, customerID, op string, budget *CampaignBudget) (string, error) {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		CampaignBudget: Create(budget),
	}})
	if err != nil {
		return "", err
	}

	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].CampaignBudgetResult == nil ||
		response.MutateOperationResponses[0].CampaignBudgetResult.ResourceName == "" {
		return "", &DependencyError{Resource: "campaign budget", Op: op}
	}
	return response.MutateOperationResponses[0].CampaignBudgetResult.ResourceName, nil
}

// createCampaignWithBudget runs the second step and returns the new
// campaign ID.
func (c *Client) createCampaignWithBudget(ctx context.Context, customerID, op string, campaign *Campaign) (string, error) {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		Campaign: Create(campaign),
	}})
	if err != nil {
		return "", err
	}

	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].CampaignResult == nil ||
		response.MutateOperationResponses[0].CampaignResult.ResourceName == "" {
		return "", fmt.Errorf("%s: failed to create campaign", op)
	}
	return lastPathSegment(response.MutateOperationResponses[0].CampaignResult.ResourceName), nil
}

// UpdateCampaignStatus sets the status of an existing campaign
// (ENABLED, PAUSED or REMOVED).
func (c *Client) UpdateCampaignStatus(ctx context.Context, customerID, campaignID, status string) error {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		Campaign: Update(&Campaign{
			ResourceName: CampaignResourceName(customerID, campaignID),
			Status:       status,
		}, "status"),
	}})
	if err != nil {
		return err
	}

	if len(response.MutateOperationResponses) == 0 || response.MutateOperationResponses[0].CampaignResult == nil {
		return fmt.Errorf("updateCampaignStatus: failed to update campaign status")
	}
	return nil
}
