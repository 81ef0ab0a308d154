package ads

import (
	"context"
	"fmt"
)

// ConversionActionInfo is the conversion action projection returned by
// GetConversions.
type ConversionActionInfo struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Type             string  `json:"type"`
	Status           string  `json:"status"`
	CountingType     string  `json:"countingType"`
	AllConversions   float64 `json:"allConversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

// GetConversions lists conversion actions with their totals for a date
// range.
func (c *Client) GetConversions(ctx context.Context, customerID, dateRange string) ([]ConversionActionInfo, error) {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	query := NewQuery("conversion_action",
		"conversion_action.id",
		"conversion_action.name",
		"conversion_action.category",
		"conversion_action.type",
		"conversion_action.status",
		"conversion_action.counting_type",
		"metrics.all_conversions",
		"metrics.conversions_value",
	).Where("conversion_action.status != 'REMOVED'").
		During(dateRange).
		OrderBy("conversion_action.name")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	actions := make([]ConversionActionInfo, 0, len(rows))
	for _, row := range rows {
		action := rowMap(row, "conversionAction")
		metrics := rowMap(row, "metrics")
		actions = append(actions, ConversionActionInfo{
			ID:               rowString(action, "id"),
			Name:             rowString(action, "name"),
			Category:         rowString(action, "category"),
			Type:             rowString(action, "type"),
			Status:           rowString(action, "status"),
			CountingType:     rowString(action, "countingType"),
			AllConversions:   rowFloat(metrics, "allConversions"),
			ConversionsValue: rowFloat(metrics, "conversionsValue"),
		})
	}
	return actions, nil
}

// ConversionActionInput describes a conversion action to create or
// update. DefaultValue is in currency units.
type ConversionActionInput struct {
	Name                  string
	Category              string
	Type                  string
	Status                string
	CountingType          string
	DefaultValue          float64
	AlwaysUseDefaultValue bool
	AttributionModel      string
}

// CreateConversionAction creates a conversion action and returns its ID.
func (c *Client) CreateConversionAction(ctx context.Context, customerID string, input ConversionActionInput) (string, error) {
	action := &ConversionAction{
		Name:         input.Name,
		Category:     input.Category,
		Type:         input.Type,
		Status:       input.Status,
		CountingType: input.CountingType,
	}
	if action.Status == "" {
		action.Status = "ENABLED"
	}
	if input.DefaultValue != 0 || input.AlwaysUseDefaultValue {
		always := input.AlwaysUseDefaultValue
		action.ValueSettings = &ValueSettings{
			DefaultValue:          input.DefaultValue,
			AlwaysUseDefaultValue: &always,
		}
	}
	if input.AttributionModel != "" {
		action.AttributionModelSettings = &AttributionModelSettings{AttributionModel: input.AttributionModel}
	}

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		ConversionAction: Create(action),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].ConversionActionResult == nil ||
		response.MutateOperationResponses[0].ConversionActionResult.ResourceName == "" {
		return "", &DependencyError{Resource: "conversion action", Op: "createConversionAction"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].ConversionActionResult.ResourceName), nil
}

// UpdateConversionAction updates the given fields of an existing
// conversion action. The update mask lists exactly the fields set on
// the payload.
func (c *Client) UpdateConversionAction(ctx context.Context, customerID, conversionActionID string, action *ConversionAction, updateMask string) error {
	action.ResourceName = ConversionActionResourceName(customerID, conversionActionID)

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		ConversionAction: Update(action, updateMask),
	}})
	if err != nil {
		return err
	}
	if len(response.MutateOperationResponses) == 0 || response.MutateOperationResponses[0].ConversionActionResult == nil {
		return fmt.Errorf("updateConversionAction: failed to update conversion action")
	}
	return nil
}

// GetConversionAttribution returns conversions segmented by device and
// ad network for attribution analysis.
func (c *Client) GetConversionAttribution(ctx context.Context, customerID, dateRange string) ([]map[string]any, error) {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	query := NewQuery("campaign",
		"campaign.id",
		"campaign.name",
		"segments.conversion_action_name",
		"segments.device",
		"segments.ad_network_type",
		"metrics.conversions",
		"metrics.conversions_value",
	).During(dateRange).
		Where("metrics.conversions > 0").
		OrderBy("metrics.conversions DESC")

	return c.SearchStream(ctx, customerID, query.String())
}

// GetConversionPathData returns conversion lag distribution, the
// closest path-level view GAQL exposes.
func (c *Client) GetConversionPathData(ctx context.Context, customerID, dateRange string) ([]map[string]any, error) {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	query := NewQuery("campaign",
		"campaign.id",
		"campaign.name",
		"segments.conversion_lag_bucket",
		"metrics.all_conversions",
	).During(dateRange).
		Where("metrics.all_conversions > 0").
		OrderBy("campaign.name")

	return c.SearchStream(ctx, customerID, query.String())
}

// ClickConversion is one offline conversion keyed by click identifier.
// Exactly one of Gclid, Gbraid or Wbraid identifies the click;
// ConversionValue is in currency units.
type ClickConversion struct {
	Gclid              string  `json:"gclid,omitempty"`
	Gbraid             string  `json:"gbraid,omitempty"`
	Wbraid             string  `json:"wbraid,omitempty"`
	ConversionAction   string  `json:"conversionAction"`
	ConversionDateTime string  `json:"conversionDateTime"`
	ConversionValue    float64 `json:"conversionValue,omitempty"`
	CurrencyCode       string  `json:"currencyCode,omitempty"`
	OrderID            string  `json:"orderId,omitempty"`
}

type uploadClickConversionsRequest struct {
	Conversions    []ClickConversion `json:"conversions"`
	PartialFailure bool              `json:"partialFailure"`
}

type uploadClickConversionsResponse struct {
	Results []struct {
		Gclid              string `json:"gclid"`
		ConversionDateTime string `json:"conversionDateTime"`
	} `json:"results"`
	PartialFailureError *struct {
		Message string `json:"message"`
	} `json:"partialFailureError"`
}

// UploadResult summarizes an offline conversion import.
type UploadResult struct {
	Uploaded       int
	PartialFailure string
}

// ImportOfflineConversions uploads click conversions with partial
// failure enabled, so valid rows land even when some are rejected.
func (c *Client) ImportOfflineConversions(ctx context.Context, customerID string, conversions []ClickConversion) (*UploadResult, error) {
	digits, err := customerDigitsChecked(customerID)
	if err != nil {
		return nil, err
	}
	if err := c.requireLoginCustomerID(); err != nil {
		return nil, err
	}

	var response uploadClickConversionsResponse
	path := "/customers/" + digits + ":uploadClickConversions"
	request := uploadClickConversionsRequest{Conversions: conversions, PartialFailure: true}
	if err := c.post(ctx, "importOfflineConversions", path, request, &response); err != nil {
		return nil, err
	}

	result := &UploadResult{Uploaded: len(response.Results)}
	if response.PartialFailureError != nil {
		result.PartialFailure = response.PartialFailureError.Message
	}
	return result, nil
}
