// Package ads implements a client for the Google Ads REST API (v19).
//
// The API surface is intentionally small: GAQL reads go through
// googleAds:searchStream, writes go through googleAds:mutate, and account
// discovery uses customers:listAccessibleCustomers. A handful of
// planning/upload endpoints (keyword ideas, forecasts, click conversions)
// share the same request plumbing. Typed helpers per resource family
// build queries and mutate operation batches on top of these calls, and
// the response normalizer flattens result rows for table or CSV output.
package ads
