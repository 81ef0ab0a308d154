package ads

import "context"

// GetKeywords lists non-removed keyword criteria, optionally restricted
// to one ad group.
func (c *Client) GetKeywords(ctx context.Context, customerID, adGroupID string) ([]KeywordInfo, error) {
	query := NewQuery("ad_group_criterion",
		"ad_group_criterion.criterion_id",
		"ad_group_criterion.ad_group",
		"ad_group_criterion.keyword.text",
		"ad_group_criterion.keyword.match_type",
		"ad_group_criterion.cpc_bid_micros",
		"ad_group_criterion.status",
	).Where("ad_group_criterion.type = 'KEYWORD'").
		Where("ad_group_criterion.status != 'REMOVED'")

	if adGroupID != "" {
		query.Wheref("ad_group_criterion.ad_group = '%s'", AdGroupResourceName(customerID, adGroupID))
	}

	rows, err := c.SearchStream(ctx, customerID, query.String())
	if err != nil {
		return nil, err
	}

	keywords := make([]KeywordInfo, 0, len(rows))
	for _, row := range rows {
		criterion := rowMap(row, "adGroupCriterion")
		keyword := rowMap(criterion, "keyword")
		keywords = append(keywords, KeywordInfo{
			ID:           rowString(criterion, "criterionId"),
			AdGroupID:    lastPathSegment(rowString(criterion, "adGroup")),
			Text:         rowString(keyword, "text"),
			MatchType:    rowString(keyword, "matchType"),
			CpcBidMicros: rowInt64(criterion, "cpcBidMicros"),
			Status:       rowString(criterion, "status"),
		})
	}
	return keywords, nil
}

// KeywordInput describes one keyword to add. MatchType defaults to
// BROAD; CpcBidMicros is already in micros and optional.
type KeywordInput struct {
	Text         string
	MatchType    string
	CpcBidMicros int64
}

// AddKeywords adds ENABLED keyword criteria to an ad group in a single
// mutate batch. The returned slice has one item per submitted keyword;
// entries without a resource name are reported as failed rather than
// dropped.
func (c *Client) AddKeywords(ctx context.Context, customerID, adGroupID string, keywords []KeywordInput) ([]BatchItem, error) {
	adGroupResource := AdGroupResourceName(customerID, adGroupID)

	operations := make([]MutateOperation, len(keywords))
	for i, keyword := range keywords {
		matchType := keyword.MatchType
		if matchType == "" {
			matchType = "BROAD"
		}
		operations[i] = MutateOperation{
			AdGroupCriterion: Create(&AdGroupCriterion{
				AdGroup: adGroupResource,
				Status:  "ENABLED",
				Keyword: &Keyword{
					Text:      keyword.Text,
					MatchType: matchType,
				},
				CpcBidMicros: keyword.CpcBidMicros,
			}),
		}
	}

	response, err := c.Mutate(ctx, customerID, operations)
	if err != nil {
		return nil, err
	}
	return batchItems(response.MutateOperationResponses), nil
}

// AddNegativeKeywords adds negative BROAD keyword criteria to an ad
// group, with the same per-item result reporting as AddKeywords.
func (c *Client) AddNegativeKeywords(ctx context.Context, customerID, adGroupID string, texts []string) ([]BatchItem, error) {
	adGroupResource := AdGroupResourceName(customerID, adGroupID)

	operations := make([]MutateOperation, len(texts))
	for i, text := range texts {
		operations[i] = MutateOperation{
			AdGroupCriterion: Create(&AdGroupCriterion{
				AdGroup:  adGroupResource,
				Negative: true,
				Keyword: &Keyword{
					Text:      text,
					MatchType: "BROAD",
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

// KeywordIdea is one result of keyword idea generation.
type KeywordIdea struct {
	Text                   string `json:"text"`
	AvgMonthlySearches     int64  `json:"avgMonthlySearches"`
	Competition            string `json:"competition"`
	LowTopOfPageBidMicros  int64  `json:"lowTopOfPageBidMicros"`
	HighTopOfPageBidMicros int64  `json:"highTopOfPageBidMicros"`
}

type generateKeywordIdeasRequest struct {
	Language    string       `json:"language,omitempty"`
	KeywordSeed *keywordSeed `json:"keywordSeed,omitempty"`
	URLSeed     *urlSeed     `json:"urlSeed,omitempty"`
	PageSize    int          `json:"pageSize,omitempty"`
}

type keywordSeed struct {
	Keywords []string `json:"keywords"`
}

type urlSeed struct {
	URL string `json:"url"`
}

type generateKeywordIdeasResponse struct {
	Results []struct {
		Text               string `json:"text"`
		KeywordIdeaMetrics struct {
			AvgMonthlySearches     string `json:"avgMonthlySearches"`
			Competition            string `json:"competition"`
			LowTopOfPageBidMicros  string `json:"lowTopOfPageBidMicros"`
			HighTopOfPageBidMicros string `json:"highTopOfPageBidMicros"`
		} `json:"keywordIdeaMetrics"`
	} `json:"results"`
}

// GenerateKeywordIdeas requests keyword ideas seeded from keywords, a
// URL, or both.
func (c *Client) GenerateKeywordIdeas(ctx context.Context, customerID string, seedKeywords []string, pageURL string, limit int) ([]KeywordIdea, error) {
	digits, err := customerDigitsChecked(customerID)
	if err != nil {
		return nil, err
	}
	if err := c.requireLoginCustomerID(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	request := generateKeywordIdeasRequest{PageSize: limit}
	if len(seedKeywords) > 0 {
		request.KeywordSeed = &keywordSeed{Keywords: seedKeywords}
	}
	if pageURL != "" {
		request.URLSeed = &urlSeed{URL: pageURL}
	}

	var response generateKeywordIdeasResponse
	path := "/customers/" + digits + ":generateKeywordIdeas"
	if err := c.post(ctx, "generateKeywordIdeas", path, request, &response); err != nil {
		return nil, err
	}

	ideas := make([]KeywordIdea, 0, len(response.Results))
	for _, result := range response.Results {
		metrics := result.KeywordIdeaMetrics
		ideas = append(ideas, KeywordIdea{
			Text:                   result.Text,
			AvgMonthlySearches:     parseInt64(metrics.AvgMonthlySearches),
			Competition:            metrics.Competition,
			LowTopOfPageBidMicros:  parseInt64(metrics.LowTopOfPageBidMicros),
			HighTopOfPageBidMicros: parseInt64(metrics.HighTopOfPageBidMicros),
		})
	}
	return ideas, nil
}

// ForecastMetrics are projected campaign metrics for a keyword set.
type ForecastMetrics struct {
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	CostMicros  int64   `json:"costMicros"`
	Conversions float64 `json:"conversions"`
}

type forecastRequest struct {
	Campaign forecastCampaign `json:"campaign"`
}

type forecastCampaign struct {
	KeywordForecasts []forecastKeyword `json:"keywordForecasts"`
	BiddableKeywords []biddableKeyword `json:"biddableKeywords"`
}

type forecastKeyword struct {
	Keyword Keyword `json:"keyword"`
}

type biddableKeyword struct {
	Keyword         Keyword `json:"keyword"`
	MaxCpcBidMicros int64   `json:"maxCpcBidMicros,omitempty"`
}

type forecastResponse struct {
	CampaignForecastMetrics struct {
		Impressions string `json:"impressions"`
		Clicks      string `json:"clicks"`
		CostMicros  string `json:"costMicros"`
		Conversions string `json:"conversions"`
	} `json:"campaignForecastMetrics"`
}

// GenerateForecastMetrics projects traffic for a set of keywords.
func (c *Client) GenerateForecastMetrics(ctx context.Context, customerID string, keywords []KeywordInput) (*ForecastMetrics, error) {
	digits, err := customerDigitsChecked(customerID)
	if err != nil {
		return nil, err
	}
	if err := c.requireLoginCustomerID(); err != nil {
		return nil, err
	}

	request := forecastRequest{}
	for _, keyword := range keywords {
		matchType := keyword.MatchType
		if matchType == "" {
			matchType = "BROAD"
		}
		request.Campaign.BiddableKeywords = append(request.Campaign.BiddableKeywords, biddableKeyword{
			Keyword:         Keyword{Text: keyword.Text, MatchType: matchType},
			MaxCpcBidMicros: keyword.CpcBidMicros,
		})
	}

	var response forecastResponse
	path := "/customers/" + digits + ":generateKeywordForecastMetrics"
	if err := c.post(ctx, "generateForecastMetrics", path, request, &response); err != nil {
		return nil, err
	}

	metrics := response.CampaignForecastMetrics
	return &ForecastMetrics{
		Impressions: parseFloat(metrics.Impressions),
		Clicks:      parseFloat(metrics.Clicks),
		CostMicros:  parseInt64(metrics.CostMicros),
		Conversions: parseFloat(metrics.Conversions),
	}, nil
}
