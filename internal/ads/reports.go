package ads

import "context"

// ReportOptions are the shared filters for the reporting queries. Zero
// values mean no filter; DateRange defaults to LAST_30_DAYS.
type ReportOptions struct {
	DateRange  string
	CampaignID string
	Limit      int
}

func (o ReportOptions) dateRange() string {
	if o.DateRange == "" {
		return DefaultDateRange
	}
	return o.DateRange
}

// GetSearchTermReport returns search terms with their performance,
// optionally filtered to one campaign and a minimum impression count.
func (c *Client) GetSearchTermReport(ctx context.Context, customerID string, opts ReportOptions, minImpressions int64) ([]map[string]any, error) {
	query := NewQuery("search_term_view",
		"search_term_view.search_term",
		"search_term_view.status",
		"campaign.id",
		"campaign.name",
		"ad_group.id",
		"segments.keyword.info.text",
		"segments.keyword.info.match_type",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
		"metrics.conversions",
		"metrics.ctr",
	).During(opts.dateRange()).
		OrderBy("metrics.impressions DESC")

	if opts.CampaignID != "" {
		query.Wheref("campaign.id = %s", DigitsOnly(opts.CampaignID))
	}
	if minImpressions > 0 {
		query.Wheref("metrics.impressions >= %d", minImpressions)
	}
	if opts.Limit > 0 {
		query.Limit(opts.Limit)
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// GetDemographicReport returns performance segmented by age range and
// gender.
func (c *Client) GetDemographicReport(ctx context.Context, customerID string, opts ReportOptions) ([]map[string]any, error) {
	query := NewQuery("age_range_view",
		"campaign.id",
		"campaign.name",
		"ad_group.id",
		"ad_group.name",
		"ad_group_criterion.age_range.type",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
		"metrics.conversions",
	).During(opts.dateRange()).
		OrderBy("metrics.impressions DESC")

	if opts.CampaignID != "" {
		query.Wheref("campaign.id = %s", DigitsOnly(opts.CampaignID))
	}
	if opts.Limit > 0 {
		query.Limit(opts.Limit)
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// GetGeographicReport returns performance segmented by user location.
func (c *Client) GetGeographicReport(ctx context.Context, customerID string, opts ReportOptions) ([]map[string]any, error) {
	query := NewQuery("geographic_view",
		"geographic_view.country_criterion_id",
		"geographic_view.location_type",
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.clicks",
		"metrics.cost_micros",
		"metrics.conversions",
		"metrics.conversions_value",
	).During(opts.dateRange()).
		OrderBy("metrics.impressions DESC")

	if opts.CampaignID != "" {
		query.Wheref("campaign.id = %s", DigitsOnly(opts.CampaignID))
	}
	if opts.Limit > 0 {
		query.Limit(opts.Limit)
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// GetAuctionInsights returns impression share metrics against
// competitors per campaign. GAQL exposes these as campaign metrics
// rather than a per-domain competitor table.
func (c *Client) GetAuctionInsights(ctx context.Context, customerID string, opts ReportOptions) ([]map[string]any, error) {
	query := NewQuery("campaign",
		"campaign.id",
		"campaign.name",
		"metrics.search_impression_share",
		"metrics.search_top_impression_share",
		"metrics.search_absolute_top_impression_share",
		"metrics.search_rank_lost_impression_share",
		"metrics.search_budget_lost_impression_share",
	).During(opts.dateRange()).
		Where("campaign.status = 'ENABLED'").
		OrderBy("metrics.search_impression_share DESC")

	if opts.CampaignID != "" {
		query.Wheref("campaign.id = %s", DigitsOnly(opts.CampaignID))
	}
	if opts.Limit > 0 {
		query.Limit(opts.Limit)
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// GetChangeHistory returns recent change events with the changed
// resource and the user who made the change. The change_event resource
// requires an explicit date window and a LIMIT.
func (c *Client) GetChangeHistory(ctx context.Context, customerID string, opts ReportOptions) ([]map[string]any, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}

	query := NewQuery("change_event",
		"change_event.change_date_time",
		"change_event.change_resource_type",
		"change_event.resource_change_operation",
		"change_event.user_email",
		"change_event.campaign",
		"change_event.ad_group",
		"change_event.changed_fields",
	).During(opts.dateRange()).
		OrderBy("change_event.change_date_time DESC").
		Limit(limit)

	if opts.CampaignID != "" {
		query.Wheref("change_event.campaign = '%s'", CampaignResourceName(customerID, opts.CampaignID))
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// GetClickViewReport returns per-click data including the GCLID. The
// click_view resource only accepts single-day ranges, so callers pass a
// date instead of a range.
func (c *Client) GetClickViewReport(ctx context.Context, customerID, date string, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 100
	}

	query := NewQuery("click_view",
		"click_view.gclid",
		"click_view.ad_group_ad",
		"click_view.keyword",
		"click_view.keyword_info.text",
		"campaign.id",
		"campaign.name",
		"segments.date",
		"metrics.clicks",
	).OrderBy("segments.date DESC").
		Limit(limit)

	if date != "" {
		query.Wheref("segments.date = '%s'", SanitizeDate(date))
	} else {
		query.Where("segments.date DURING YESTERDAY")
	}

	return c.SearchStream(ctx, customerID, query.String())
}

// GetVideoReport returns video campaign performance including view
// metrics.
func (c *Client) GetVideoReport(ctx context.Context, customerID string, opts ReportOptions) ([]map[string]any, error) {
	query := NewQuery("video",
		"video.id",
		"video.title",
		"video.duration_millis",
		"campaign.id",
		"campaign.name",
		"metrics.impressions",
		"metrics.video_views",
		"metrics.video_view_rate",
		"metrics.cost_micros",
	).During(opts.dateRange()).
		OrderBy("metrics.video_views DESC")

	if opts.CampaignID != "" {
		query.Wheref("campaign.id = %s", DigitsOnly(opts.CampaignID))
	}
	if opts.Limit > 0 {
		query.Limit(opts.Limit)
	}

	return c.SearchStream(ctx, customerID, query.String())
}
