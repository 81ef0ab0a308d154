package ads

import "context"

// LabelInput describes a label to create. Colors are hex codes.
type LabelInput struct {
	Name            string
	Description     string
	BackgroundColor string
}

// CreateLabels creates labels in one mutate batch and reports per-item
// outcomes.
func (c *Client) CreateLabels(ctx context.Context, customerID string, labels []LabelInput) ([]BatchItem, error) {
	operations := make([]MutateOperation, len(labels))
	for i, label := range labels {
		wire := &Label{Name: label.Name}
		if label.Description != "" || label.BackgroundColor != "" {
			wire.TextLabel = &TextLabel{
				BackgroundColor: label.BackgroundColor,
				Description:     label.Description,
			}
		}
		operations[i] = MutateOperation{Label: Create(wire)}
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}

// ApplyLabels attaches a label to campaigns or ad groups in one mutate
// batch. ResourceType is CAMPAIGN or AD_GROUP.
func (c *Client) ApplyLabels(ctx context.Context, customerID, labelID, resourceType string, resourceIDs []string) ([]BatchItem, error) {
	labelResource := LabelResourceName(customerID, labelID)

	operations := make([]MutateOperation, len(resourceIDs))
	for i, resourceID := range resourceIDs {
		switch resourceType {
		case "CAMPAIGN":
			operations[i] = MutateOperation{
				CampaignLabel: Create(&CampaignLabel{
					Campaign: CampaignResourceName(customerID, resourceID),
					Label:    labelResource,
				}),
			}
		case "AD_GROUP":
			operations[i] = MutateOperation{
				AdGroupLabel: Create(&AdGroupLabel{
					AdGroup: AdGroupResourceName(customerID, resourceID),
					Label:   labelResource,
				}),
			}
		default:
			return nil, &DependencyError{Resource: "label assignment", Op: "applyLabels"}
		}
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}

// GetLabeledResources lists the campaigns carrying a label, or all
// campaign label assignments when labelID is empty.
func (c *Client) GetLabeledResources(ctx context.Context, customerID, labelID string) ([]map[string]any, error) {
	query := NewQuery("campaign_label",
		"campaign_label.campaign",
		"campaign_label.label",
		"campaign.id",
		"campaign.name",
		"label.id",
		"label.name",
	)

	if labelID != "" {
		query.Wheref("campaign_label.label = '%s'", LabelResourceName(customerID, labelID))
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// BulkStatusEdit updates the status of many campaigns or ad groups in
// one mutate batch. ResourceType is CAMPAIGN or AD_GROUP.
func (c *Client) BulkStatusEdit(ctx context.Context, customerID, resourceType, status string, resourceIDs []string) ([]BatchItem, error) {
	operations := make([]MutateOperation, len(resourceIDs))
	for i, resourceID := range resourceIDs {
		switch resourceType {
		case "CAMPAIGN":
			operations[i] = MutateOperation{
				Campaign: Update(&Campaign{
					ResourceName: CampaignResourceName(customerID, resourceID),
					Status:       status,
				}, "status"),
			}
		case "AD_GROUP":
			operations[i] = MutateOperation{
				AdGroup: Update(&AdGroup{
					ResourceName: AdGroupResourceName(customerID, resourceID),
					Status:       status,
				}, "status"),
			}
		default:
			return nil, &DependencyError{Resource: "bulk edit", Op: "bulkStatusEdit"}
		}
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}
