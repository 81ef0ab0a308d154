// Package auth resolves Google Ads API credentials and issues access
// tokens for outgoing requests.
//
// Credentials are resolved with a fixed precedence: explicitly supplied
// values win over environment variables, which win over well-known config
// files. A Provider created from the resolved config hands out OAuth
// access tokens (refresh-token or service-account flow), the developer
// token, and the normalized login customer ID.
package auth
