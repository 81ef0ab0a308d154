// Package resources provides MCP resources for exposing reference data.
// Resources are read-only data sources that MCP clients can fetch, such as
// the GAQL quick reference served at gaql://reference.
package resources
