package ads

import "context"

// PerformanceMaxCampaignInput describes a Performance Max campaign.
// BudgetAmountMicros and TargetCpaMicros are already in micros and pass
// through unconverted; TargetRoas is a plain ratio.
type PerformanceMaxCampaignInput struct {
	Name                string
	BudgetAmountMicros  int64
	BiddingStrategyType string
	TargetCpaMicros     int64
	TargetRoas          float64
	Status              string
	FinalURLExpansion   bool
}

// CreatePerformanceMaxCampaign creates a budget and a PERFORMANCE_MAX
// campaign. The same two-step dependency rules as CreateCampaign apply.
func (c *Client) CreatePerformanceMaxCampaign(ctx context.Context, customerID string, input PerformanceMaxCampaignInput) (string, error) {
	const op = "createPerformanceMaxCampaign"

	budgetResourceName, err := c.createBudget(ctx, customerID, op, &CampaignBudget{
		Name:         input.Name + " Budget",
		AmountMicros: input.BudgetAmountMicros,
	})
	if err != nil {
		return "", err
	}

	campaign := &Campaign{
		Name:                   input.Name,
		Status:                 defaultStatus(input.Status),
		AdvertisingChannelType: "PERFORMANCE_MAX",
		CampaignBudget:         budgetResourceName,
	}
	if !input.FinalURLExpansion {
		optOut := true
		campaign.URLExpansionOptOut = &optOut
	}
	applyBiddingStrategy(campaign, input.BiddingStrategyType, input.TargetCpaMicros, input.TargetRoas)

	return c.createCampaignWithBudget(ctx, customerID, op, campaign)
}

// DemandGenCampaignInput describes a Demand Gen campaign.
type DemandGenCampaignInput struct {
	Name                string
	BudgetAmountMicros  int64
	BiddingStrategyType string
	TargetCpaMicros     int64
	Status              string
}

// CreateDemandGenCampaign creates a budget and a DEMAND_GEN campaign.
func (c *Client) CreateDemandGenCampaign(ctx context.Context, customerID string, input DemandGenCampaignInput) (string, error) {
	const op = "createDemandGenCampaign"

	budgetResourceName, err := c.createBudget(ctx, customerID, op, &CampaignBudget{
		Name:         input.Name + " Budget",
		AmountMicros: input.BudgetAmountMicros,
	})
	if err != nil {
		return "", err
	}

	campaign := &Campaign{
		Name:                   input.Name,
		Status:                 defaultStatus(input.Status),
		AdvertisingChannelType: "DEMAND_GEN",
		CampaignBudget:         budgetResourceName,
	}
	applyBiddingStrategy(campaign, input.BiddingStrategyType, input.TargetCpaMicros, 0)

	return c.createCampaignWithBudget(ctx, customerID, op, campaign)
}

// AppCampaignInput describes an app promotion campaign.
type AppCampaignInput struct {
	Name               string
	AppID              string
	AppStore           string
	BudgetAmountMicros int64
	TargetCpaMicros    int64
	Status             string
	StartDate          string
	EndDate            string
}

// CreateAppCampaign creates a budget and a MULTI_CHANNEL app campaign.
func (c *Client) CreateAppCampaign(ctx context.Context, customerID string, input AppCampaignInput) (string, error) {
	const op = "createAppCampaign"

	budgetResourceName, err := c.createBudget(ctx, customerID, op, &CampaignBudget{
		Name:         input.Name + " Budget",
		AmountMicros: input.BudgetAmountMicros,
	})
	if err != nil {
		return "", err
	}

	campaign := &Campaign{
		Name:                      input.Name,
		Status:                    defaultStatus(input.Status),
		AdvertisingChannelType:    "MULTI_CHANNEL",
		AdvertisingChannelSubType: "APP_CAMPAIGN",
		CampaignBudget:            budgetResourceName,
		StartDate:                 input.StartDate,
		EndDate:                   input.EndDate,
		AppCampaignSetting: &AppCampaignSetting{
			AppID:                   input.AppID,
			AppStore:                input.AppStore,
			BiddingStrategyGoalType: "OPTIMIZE_INSTALLS_TARGET_INSTALL_COST",
		},
	}
	if input.TargetCpaMicros > 0 {
		campaign.MaximizeConversions = &MaximizeConversions{TargetCpaMicros: input.TargetCpaMicros}
	}

	return c.createCampaignWithBudget(ctx, customerID, op, campaign)
}

// SmartCampaignInput describes a Smart campaign.
type SmartCampaignInput struct {
	Name               string
	BudgetAmountMicros int64
	Status             string
}

// CreateSmartCampaign creates a budget and a SMART campaign bidding via
// target spend.
func (c *Client) CreateSmartCampaign(ctx context.Context, customerID string, input SmartCampaignInput) (string, error) {
	const op = "createSmartCampaign"

	budgetResourceName, err := c.createBudget(ctx, customerID, op, &CampaignBudget{
		Name:         input.Name + " Budget",
		AmountMicros: input.BudgetAmountMicros,
	})
	if err != nil {
		return "", err
	}

	return c.createCampaignWithBudget(ctx, customerID, op, &Campaign{
		Name:                      input.Name,
		Status:                    defaultStatus(input.Status),
		AdvertisingChannelType:    "SMART",
		AdvertisingChannelSubType: "SMART_CAMPAIGN",
		CampaignBudget:            budgetResourceName,
		TargetSpend:               &TargetSpend{},
	})
}

// ExperimentInfo is the experiment projection returned by
// GetCampaignExperiments.
type ExperimentInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// GetCampaignExperiments lists campaign experiments.
func (c *Client) GetCampaignExperiments(ctx context.Context, customerID string) ([]ExperimentInfo, error) {
	query := NewQuery("experiment",
		"experiment.experiment_id",
		"experiment.name",
		"experiment.description",
		"experiment.type",
		"experiment.status",
		"experiment.start_date",
		"experiment.end_date",
	).Where("experiment.status != 'REMOVED'").
		OrderBy("experiment.name")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	experiments := make([]ExperimentInfo, 0, len(rows))
	for _, row := range rows {
		experiment := rowMap(row, "experiment")
		experiments = append(experiments, ExperimentInfo{
			ID:          rowString(experiment, "experimentId"),
			Name:        rowString(experiment, "name"),
			Description: rowString(experiment, "description"),
			Type:        rowString(experiment, "type"),
			Status:      rowString(experiment, "status"),
			StartDate:   rowString(experiment, "startDate"),
			EndDate:     rowString(experiment, "endDate"),
		})
	}
	return experiments, nil
}

// ExperimentInput describes a campaign experiment to create.
type ExperimentInput struct {
	Name        string
	Description string
	Type        string
	StartDate   string
	EndDate     string
}

// CreateCampaignExperiment creates a campaign experiment shell.
func (c *Client) CreateCampaignExperiment(ctx context.Context, customerID string, input ExperimentInput) (string, error) {
	experimentType := input.Type
	if experimentType == "" {
		experimentType = "SEARCH_CUSTOM"
	}

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		Experiment: Create(&Experiment{
			Name:        input.Name,
			Description: input.Description,
			Suffix:      "[experiment]",
			Type:        experimentType,
			Status:      "SETUP",
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
		}),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 || response.MutateOperationResponses[0].ExperimentResult == nil {
		return "", &DependencyError{Resource: "experiment", Op: "createCampaignExperiment"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].ExperimentResult.ResourceName), nil
}

// defaultStatus applies the paused-by-default policy for created
// campaign resources.
func defaultStatus(status string) string {
	if status == "" {
		return "PAUSED"
	}
	return status
}

// applyBiddingStrategy sets the campaign-level bidding field matching
// the requested strategy type.
func applyBiddingStrategy(campaign *Campaign, strategyType string, targetCpaMicros int64, targetRoas float64) {
	switch strategyType {
	case "MAXIMIZE_CONVERSION_VALUE", "TARGET_ROAS":
		campaign.MaximizeConversionValue = &MaximizeConversionValue{TargetRoas: targetRoas}
	default:
		campaign.MaximizeConversions = &MaximizeConversions{TargetCpaMicros: targetCpaMicros}
	}
}
