package ads

import "context"

// SharedBudgetInfo is the shared budget projection returned by
// GetSharedBudgets. Amount is in currency units.
type SharedBudgetInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	DeliveryMethod string  `json:"deliveryMethod"`
	ReferenceCount int64   `json:"referenceCount"`
	Status         string  `json:"status"`
}

// GetSharedBudgets lists explicitly shared campaign budgets.
func (c *Client) GetSharedBudgets(ctx context.Context, customerID string) ([]SharedBudgetInfo, error) {
	query := NewQuery("campaign_budget",
		"campaign_budget.id",
		"campaign_budget.name",
		"campaign_budget.amount_micros",
		"campaign_budget.delivery_method",
		"campaign_budget.reference_count",
		"campaign_budget.status",
	).Where("campaign_budget.explicitly_shared = true").
		Where("campaign_budget.status != 'REMOVED'").
		OrderBy("campaign_budget.name")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	budgets := make([]SharedBudgetInfo, 0, len(rows))
	for _, row := range rows {
		budget := rowMap(row, "campaignBudget")
		budgets = append(budgets, SharedBudgetInfo{
			ID:             rowString(budget, "id"),
			Name:           rowString(budget, "name"),
			Amount:         MicrosToUnits(rowFloat(budget, "amountMicros")),
			DeliveryMethod: rowString(budget, "deliveryMethod"),
			ReferenceCount: rowInt64(budget, "referenceCount"),
			Status:         rowString(budget, "status"),
		})
	}
	return budgets, nil
}

// CreateSharedBudget creates an explicitly shared budget. Amount is in
// currency units and converted to micros here.
func (c *Client) CreateSharedBudget(ctx context.Context, customerID, name string, amount float64, deliveryMethod string) (string, error) {
	if deliveryMethod == "" {
		deliveryMethod = "STANDARD"
	}
	shared := true

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		CampaignBudget: Create(&CampaignBudget{
			Name:             name,
			AmountMicros:     UnitsToMicros(amount),
			DeliveryMethod:   deliveryMethod,
			ExplicitlyShared: &shared,
		}),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].CampaignBudgetResult == nil ||
		response.MutateOperationResponses[0].CampaignBudgetResult.ResourceName == "" {
		return "", &DependencyError{Resource: "shared budget", Op: "createSharedBudget"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].CampaignBudgetResult.ResourceName), nil
}

// BiddingStrategyInfo is the portfolio strategy projection returned by
// GetBiddingStrategies.
type BiddingStrategyInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	CampaignCount int64  `json:"campaignCount"`
}

// GetBiddingStrategies lists portfolio bidding strategies.
func (c *Client) GetBiddingStrategies(ctx context.Context, customerID string) ([]BiddingStrategyInfo, error) {
	query := NewQuery("bidding_strategy",
		"bidding_strategy.id",
		"bidding_strategy.name",
		"bidding_strategy.type",
		"bidding_strategy.status",
		"bidding_strategy.campaign_count",
	).Where("bidding_strategy.status != 'REMOVED'").
		OrderBy("bidding_strategy.name")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	strategies := make([]BiddingStrategyInfo, 0, len(rows))
	for _, row := range rows {
		strategy := rowMap(row, "biddingStrategy")
		strategies = append(strategies, BiddingStrategyInfo{
			ID:            rowString(strategy, "id"),
			Name:          rowString(strategy, "name"),
			Type:          rowString(strategy, "type"),
			Status:        rowString(strategy, "status"),
			CampaignCount: rowInt64(strategy, "campaignCount"),
		})
	}
	return strategies, nil
}

// BiddingStrategyInput describes a portfolio strategy to create.
// Exactly one target applies depending on Type; TargetCpa is in
// currency units, TargetRoas is a ratio.
type BiddingStrategyInput struct {
	Name       string
	Type       string
	TargetCpa  float64
	TargetRoas float64
}

// CreateBiddingStrategy creates a portfolio bidding strategy and
// returns its ID.
func (c *Client) CreateBiddingStrategy(ctx context.Context, customerID string, input BiddingStrategyInput) (string, error) {
	strategy := &BiddingStrategy{Name: input.Name}
	switch input.Type {
	case "TARGET_CPA":
		strategy.TargetCpa = &TargetCpa{TargetCpaMicros: UnitsToMicros(input.TargetCpa)}
	case "TARGET_ROAS":
		strategy.TargetRoas = &TargetRoas{TargetRoas: input.TargetRoas}
	case "MAXIMIZE_CONVERSIONS":
		strategy.MaximizeConversions = &MaximizeConversions{}
		if input.TargetCpa > 0 {
			strategy.MaximizeConversions.TargetCpaMicros = UnitsToMicros(input.TargetCpa)
		}
	case "MAXIMIZE_CONVERSION_VALUE":
		strategy.MaximizeConversionValue = &MaximizeConversionValue{TargetRoas: input.TargetRoas}
	default:
		return "", &DependencyError{Resource: "bidding strategy", Op: "createBiddingStrategy"}
	}

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		BiddingStrategy: Create(strategy),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].BiddingStrategyResult == nil ||
		response.MutateOperationResponses[0].BiddingStrategyResult.ResourceName == "" {
		return "", &DependencyError{Resource: "bidding strategy", Op: "createBiddingStrategy"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].BiddingStrategyResult.ResourceName), nil
}

// GetBidSimulations returns CPC bid simulation points for ad group
// criteria, optionally restricted to one campaign.
func (c *Client) GetBidSimulations(ctx context.Context, customerID, campaignID string) ([]map[string]any, error) {
	query := NewQuery("ad_group_criterion_simulation",
		"ad_group_criterion_simulation.ad_group_id",
		"ad_group_criterion_simulation.criterion_id",
		"ad_group_criterion_simulation.type",
		"ad_group_criterion_simulation.start_date",
		"ad_group_criterion_simulation.end_date",
		"ad_group_criterion_simulation.cpc_bid_point_list.points",
	).Where("ad_group_criterion_simulation.type = 'CPC_BID'")

	if campaignID != "" {
		query.Wheref("campaign.id = %s", DigitsOnly(campaignID))
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// BidAdjustmentInput sets a device bid modifier on a campaign.
type BidAdjustmentInput struct {
	CampaignID  string
	Device      string
	BidModifier float64
}

// deviceCriterionIDs maps device enums to the fixed platform criterion
// IDs used in campaign criterion resource names.
var deviceCriterionIDs = map[string]string{
	"MOBILE":  "30001",
	"DESKTOP": "30000",
	"TABLET":  "30002",
}

// UpdateBidAdjustments sets device bid modifiers on campaigns in one
// mutate batch and reports per-item outcomes.
func (c *Client) UpdateBidAdjustments(ctx context.Context, customerID string, adjustments []BidAdjustmentInput) ([]BatchItem, error) {
	operations := make([]MutateOperation, 0, len(adjustments))
	for _, adjustment := range adjustments {
		criterionID, ok := deviceCriterionIDs[adjustment.Device]
		if !ok {
			return nil, &DependencyError{Resource: "device criterion", Op: "updateBidAdjustments"}
		}
		operations = append(operations, MutateOperation{
			CampaignCriterion: Update(&CampaignCriterion{
				ResourceName: CampaignCriterionResourceName(customerID, adjustment.CampaignID, criterionID),
				BidModifier:  adjustment.BidModifier,
			}, "bid_modifier"),
		})
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}

// GetBudgetRecommendations returns pending campaign budget
// recommendations with current and suggested amounts.
func (c *Client) GetBudgetRecommendations(ctx context.Context, customerID string) ([]map[string]any, error) {
	query := NewQuery("recommendation",
		"recommendation.resource_name",
		"recommendation.type",
		"recommendation.campaign",
		"recommendation.campaign_budget_recommendation.current_budget_amount_micros",
		"recommendation.campaign_budget_recommendation.recommended_budget_amount_micros",
		"recommendation.impact.base_metrics.clicks",
		"recommendation.impact.potential_metrics.clicks",
	).Where("recommendation.type = 'CAMPAIGN_BUDGET'").
		Where("recommendation.dismissed = false")

	return c.SearchStream(ctx, customerID, query.String())
}
