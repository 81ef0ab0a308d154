package ads

// CustomerInfo describes an accessible customer account.
type CustomerInfo struct {
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
	Manager         bool   `json:"manager"`
}

// CampaignInfo is the campaign projection returned by GetCampaigns.
// Budget is in currency units, already converted from micros.
type CampaignInfo struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Status                 string  `json:"status"`
	AdvertisingChannelType string  `json:"advertisingChannelType"`
	BiddingStrategyType    string  `json:"biddingStrategyType"`
	Budget                 float64 `json:"budget"`
	StartDate              string  `json:"startDate"`
	EndDate                string  `json:"endDate"`
}

// PerformanceMetrics aggregates the core campaign metrics. AverageCpc is
// in currency units; CostMicros stays in micros as delivered by the API.
type PerformanceMetrics struct {
	Impressions     float64 `json:"impressions"`
	Clicks          float64 `json:"clicks"`
	Ctr             float64 `json:"ctr"`
	AverageCpc      float64 `json:"averageCpc"`
	CostMicros      float64 `json:"costMicros"`
	Conversions     float64 `json:"conversions"`
	ConversionRate  float64 `json:"conversionRate"`
	ConversionValue float64 `json:"conversionValue"`
}

// CampaignPerformance pairs a campaign with its metrics for a date range.
type CampaignPerformance struct {
	CampaignID   string             `json:"campaignId"`
	CampaignName string             `json:"campaignName"`
	Metrics      PerformanceMetrics `json:"metrics"`
}

// AdGroupInfo is the ad group projection returned by GetAdGroups.
type AdGroupInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CampaignID   string `json:"campaignId"`
	Status       string `json:"status"`
	CpcBidMicros int64  `json:"cpcBidMicros"`
}

// AdInfo is the ad projection returned by GetAds.
type AdInfo struct {
	ID           string   `json:"id"`
	AdGroupID    string   `json:"adGroupId"`
	Type         string   `json:"type"`
	FinalURLs    []string `json:"finalUrls"`
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	Status       string   `json:"status"`
}

// KeywordInfo is the keyword projection returned by GetKeywords.
type KeywordInfo struct {
	ID           string `json:"id"`
	AdGroupID    string `json:"adGroupId"`
	Text         string `json:"text"`
	MatchType    string `json:"matchType"`
	CpcBidMicros int64  `json:"cpcBidMicros"`
	Status       string `json:"status"`
}

// AssetInfo is the asset projection returned by GetImageAssets and
// GetVideoAssets.
type AssetInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// AccountNode is one account in the manager hierarchy.
type AccountNode struct {
	CustomerID      string        `json:"customerId"`
	DescriptiveName string        `json:"descriptiveName"`
	Manager         bool          `json:"manager"`
	Level           int           `json:"level"`
	Children        []AccountNode `json:"children,omitempty"`
}
