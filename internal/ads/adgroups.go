package ads

import (
	"context"
)

// GetAdGroups lists non-removed ad groups, optionally restricted to one
// campaign.
func (c *Client) GetAdGroups(ctx context.Context, customerID, campaignID string) ([]AdGroupInfo, error) {
	query := NewQuery("ad_group",
		"ad_group.id",
		"ad_group.name",
		"ad_group.campaign",
		"ad_group.status",
		"ad_group.cpc_bid_micros",
	).Where("ad_group.status != 'REMOVED'")

	if campaignID != "" {
		query.Wheref("ad_group.campaign = '%s'", CampaignResourceName(customerID, campaignID))
	}

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	adGroups := make([]AdGroupInfo, 0, len(rows))
	for _, row := range rows {
		adGroup := rowMap(row, "adGroup")
		adGroups = append(adGroups, AdGroupInfo{
			ID:           rowString(adGroup, "id"),
			Name:         rowString(adGroup, "name"),
			CampaignID:   lastPathSegment(rowString(adGroup, "campaign")),
			Status:       rowString(adGroup, "status"),
			CpcBidMicros: rowInt64(adGroup, "cpcBidMicros"),
		})
	}
	return adGroups, nil
}

// AdGroupInput describes an ad group to create. CpcBidMicros is already
// in micros; zero defaults to 1,000,000 (one currency unit).
type AdGroupInput struct {
	Name         string
	CampaignID   string
	CpcBidMicros int64
}

// CreateAdGroup creates a PAUSED ad group in the given campaign and
// returns its ID.
func (c *Client) CreateAdGroup(ctx context.Context, customerID string, input AdGroupInput) (string, error) {
	cpcBidMicros := input.CpcBidMicros
	if cpcBidMicros <= 0 {
		cpcBidMicros = MicrosPerUnit
	}

	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		AdGroup: Create(&AdGroup{
			Name:         input.Name,
			Campaign:     CampaignResourceName(customerID, input.CampaignID),
			Status:       "PAUSED",
			CpcBidMicros: cpcBidMicros,
		}),
	}})
	if err != nil {
		return "", err
	}

	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].AdGroupResult == nil ||
		response.MutateOperationResponses[0].AdGroupResult.ResourceName == "" {
		return "", &DependencyError{Resource: "ad group", Op: "createAdGroup"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].AdGroupResult.ResourceName), nil
}

// GetAds lists non-removed ads, optionally restricted to one ad group.
func (c *Client) GetAds(ctx context.Context, customerID, adGroupID string) ([]AdInfo, error) {
	query := NewQuery("ad_group_ad",
		"ad_group_ad.ad.id",
		"ad_group_ad.ad_group",
		"ad_group_ad.ad.type",
		"ad_group_ad.ad.final_urls",
		"ad_group_ad.status",
		"ad_group_ad.ad.responsive_search_ad.headlines",
		"ad_group_ad.ad.responsive_search_ad.descriptions",
	).Where("ad_group_ad.status != 'REMOVED'")

	if adGroupID != "" {
		query.Wheref("ad_group_ad.ad_group = '%s'", AdGroupResourceName(customerID, adGroupID))
	}

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	ads := make([]AdInfo, 0, len(rows))
	for _, row := range rows {
		adGroupAd := rowMap(row, "adGroupAd")
		ad := rowMap(adGroupAd, "ad")
		rsa := rowMap(ad, "responsiveSearchAd")
		ads = append(ads, AdInfo{
			ID:           rowString(ad, "id"),
			AdGroupID:    lastPathSegment(rowString(adGroupAd, "adGroup")),
			Type:         rowString(ad, "type"),
			FinalURLs:    rowStringSlice(ad, "finalUrls"),
			Headlines:    rowTextSlice(rsa, "headlines"),
			Descriptions: rowTextSlice(rsa, "descriptions"),
			Status:       rowString(adGroupAd, "status"),
		})
	}
	return ads, nil
}

// CreateResponsiveSearchAd creates a PAUSED responsive search ad and
// returns its ID.
func (c *Client) CreateResponsiveSearchAd(ctx context.Context, customerID, adGroupID string, headlines, descriptions, finalURLs []string) (string, error) {
	response, err := c.Mutate(ctx, customerID, []MutateOperation{{
		AdGroupAd: Create(&AdGroupAd{
			AdGroup: AdGroupResourceName(customerID, adGroupID),
			Status:  "PAUSED",
			Ad: &Ad{
				ResponsiveSearchAd: &ResponsiveSearchAd{
					Headlines:    TextAssets(headlines),
					Descriptions: TextAssets(descriptions),
				},
				FinalURLs: finalURLs,
			},
		}),
	}})
	if err != nil {
		return "", err
	}

	if len(response.MutateOperationResponses) == 0 ||
		response.MutateOperationResponses[0].AdGroupAdResult == nil ||
		response.MutateOperationResponses[0].AdGroupAdResult.ResourceName == "" {
		return "", &DependencyError{Resource: "responsive search ad", Op: "createResponsiveSearchAd"}
	}
	return lastPathSegment(response.MutateOperationResponses[0].AdGroupAdResult.ResourceName), nil
}
