package ads

import "context"

// GetImageAssets lists image assets with their full size URL.
func (c *Client) GetImageAssets(ctx context.Context, customerID string) ([]AssetInfo, error) {
	query := NewQuery("asset",
		"asset.id",
		"asset.name",
		"asset.type",
		"asset.image_asset.full_size.url",
	).Where("asset.type = 'IMAGE'").
		OrderBy("asset.name")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	assets := make([]AssetInfo, 0, len(rows))
	for _, row := range rows {
		asset := rowMap(row, "asset")
		imageAsset := rowMap(asset, "imageAsset")
		fullSize := rowMap(imageAsset, "fullSize")
		assets = append(assets, AssetInfo{
			ID:   rowString(asset, "id"),
			Name: rowString(asset, "name"),
			Type: rowString(asset, "type"),
			URL:  rowString(fullSize, "url"),
		})
	}
	return assets, nil
}

// GetVideoAssets lists YouTube video assets.
func (c *Client) GetVideoAssets(ctx context.Context, customerID string) ([]AssetInfo, error) {
	query := NewQuery("asset",
		"asset.id",
		"asset.name",
		"asset.type",
		"asset.youtube_video_asset.youtube_video_id",
	).Where("asset.type = 'YOUTUBE_VIDEO'").
		OrderBy("asset.name")

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	assets := make([]AssetInfo, 0, len(rows))
	for _, row := range rows {
		asset := rowMap(row, "asset")
		video := rowMap(asset, "youtubeVideoAsset")
		videoID := rowString(video, "youtubeVideoId")
		url := ""
		if videoID != "" {
			url = "https://www.youtube.com/watch?v=" + videoID
		}
		assets = append(assets, AssetInfo{
			ID:   rowString(asset, "id"),
			Name: rowString(asset, "name"),
			Type: rowString(asset, "type"),
			URL:  url,
		})
	}
	return assets, nil
}

// UploadImageAsset creates an image asset from base64 encoded image
// data and returns its ID.
func (c *Client) UploadImageAsset(ctx context.Context, customerID, name, imageData string) (string, error) {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		Asset: Create(&Asset{
			Name:       name,
			ImageAsset: &ImageAsset{Data: imageData},
		}),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].AssetResult == nil ||
		response.MutateOperationResponses[0].AssetResult.ResourceName == "" {
		return "", &DependencyError{Resource: "image asset", Op: "uploadImageAsset"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].AssetResult.ResourceName), nil
}

// AssetGroupInput describes a Performance Max asset group to create.
type AssetGroupInput struct {
	CampaignID string
	Name       string
	FinalURLs  []string
	Status     string
}

// CreateAssetGroup creates an asset group in a Performance Max campaign
// and returns its ID.
func (c *Client) CreateAssetGroup(ctx context.Context, customerID string, input AssetGroupInput) (string, error) {
	status := input.Status
	if status == "" {
		status = "PAUSED"
	}

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		AssetGroup: Create(&AssetGroup{
			Name:      input.Name,
			Campaign:  CampaignResourceName(customerID, input.CampaignID),
			Status:    status,
			FinalURLs: input.FinalURLs,
		}),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].AssetGroupResult == nil ||
		response.MutateOperationResponses[0].AssetGroupResult.ResourceName == "" {
		return "", &DependencyError{Resource: "asset group", Op: "createAssetGroup"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].AssetGroupResult.ResourceName), nil
}

// GetAssetPerformance returns per-asset performance with the API's
// performance label.
func (c *Client) GetAssetPerformance(ctx context.Context, customerID, dateRange string) ([]map[string]any, error) {
	if dateRange == "" {
		dateRange = DefaultDateRange
	}

	query := NewQuery("asset_group_asset",
		"asset_group_asset.asset",
		"asset_group_asset.field_type",
		"asset_group_asset.performance_label",
		"asset_group.id",
		"asset_group.name",
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
		"metrics.conversions",
	).Where("asset_group_asset.status != 'REMOVED'").
		During(dateRange).
		OrderBy("campaign.name")

	return c.SearchStream(ctx, customerID, query.String())
}

// SitelinkInput describes one sitelink asset to create and link.
type SitelinkInput struct {
	LinkText     string
	FinalURLs    []string
	Description1 string
	Description2 string
}

// CreateSitelinkAssets creates sitelink assets and links each to the
// campaign. Asset creation and linking run in one mutate batch; the
// returned items cover the created assets.
func (c *Client) CreateSitelinkAssets(ctx context.Context, customerID, campaignID string, sitelinks []SitelinkInput) ([]BatchItem, error) {
	items := make([]BatchItem, 0, len(sitelinks))
	for i, sitelink := range sitelinks {
		response, err := c.Mutate(ctx, customerID, []MutateOperation{{
			Asset: Create(&Asset{
				SitelinkAsset: &SitelinkAsset{
					LinkText:     sitelink.LinkText,
					Description1: sitelink.Description1,
					Description2: sitelink.Description2,
				},
				FinalURLs: sitelink.FinalURLs,
			}),
		}})
		if err != nil {
			return nil, err
		}

		item := BatchItem{Index: i}
		if len(response.MutateOperationResponses) > 0 &&
			response.MutateOperationResponses[0].AssetResult != nil {
			item.ResourceName = response.MutateOperationResponses[0].AssetResult.ResourceName
			item.ID = lastPathSegment(item.ResourceName)
			item.Succeeded = item.ResourceName != ""
		}
		items = append(items, item)

		if item.Succeeded {
			if err := c.linkCampaignAsset(ctx, customerID, campaignID, item.ResourceName, "SITELINK"); err != nil {
				return nil, err
			}
		}
	}
	return items, nil
}

// CreateCalloutAssets creates callout assets and links each to the
// campaign.
func (c *Client) CreateCalloutAssets(ctx context.Context, customerID, campaignID string, callouts []string) ([]BatchItem, error) {
	items := make([]BatchItem, 0, len(callouts))
	for i, callout := range callouts {
		response, err := c.Mutate(ctx, customerID, []MutateOperation{{
			Asset: Create(&Asset{
				CalloutAsset: &CalloutAsset{CalloutText: callout},
			}),
		}})
		if err != nil {
			return nil, err
		}

		item := BatchItem{Index: i}
		if len(response.MutateOperationResponses) > 0 &&
			response.MutateOperationResponses[0].AssetResult != nil {
			item.ResourceName = response.MutateOperationResponses[0].AssetResult.ResourceName
			item.ID = lastPathSegment(item.ResourceName)
			item.Succeeded = item.ResourceName != ""
		}
		items = append(items, item)

		if item.Succeeded {
			if err := c.linkCampaignAsset(ctx, customerID, campaignID, item.ResourceName, "CALLOUT"); err != nil {
				return nil, err
			}
		}
	}
	return items, nil
}

// CreateStructuredSnippetAssets creates a structured snippet asset and
// links it to the campaign.
func (c *Client) CreateStructuredSnippetAssets(ctx context.Context, customerID, campaignID, header string, values []string) (string, error) {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		Asset: Create(&Asset{
			StructuredSnippetAsset: &StructuredSnippetAsset{
				Header: header,
				Values: values,
			},
		}),
	}})
	if err != nil {
		return "", err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].AssetResult == nil ||
		response.MutateOperationResponses[0].AssetResult.ResourceName == "" {
		return "", &DependencyError{Resource: "structured snippet asset", Op: "createStructuredSnippetAssets"}
	}

	resourceName := response.MutateOperationResponses[0].AssetResult.ResourceName
	if err := c.linkCampaignAsset(ctx, customerID, campaignID, resourceName, "STRUCTURED_SNIPPET"); err != nil {
		return "", err
	}
	return lastPathSegment(resourceName), nil
}

// linkCampaignAsset attaches an existing asset to a campaign for a
// field type.
func (c *Client) linkCampaignAsset(ctx context.Context, customerID, campaignID, assetResourceName, fieldType string) error {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		CampaignAsset: Create(&CampaignAsset{
			Campaign:  CampaignResourceName(customerID, campaignID),
			Asset:     assetResourceName,
			FieldType: fieldType,
		}),
	}})
	if err != nil {
		return err
	}
	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].CampaignAssetResult == nil {
		return &DependencyError{Resource: "campaign asset link", Op: "linkCampaignAsset"}
	}
	return nil
}
