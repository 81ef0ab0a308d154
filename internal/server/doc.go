// Package server provides the MCP server context, health probes, and
// the dedicated Prometheus metrics server for the googleads-mcp
// application.
//
// # Key Components
//
// ServerContext holds the resolved Google Ads credential provider and
// the lazily created Ads API client shared by all tool handlers.
//
// HealthChecker serves /healthz and /readyz endpoints for Kubernetes
// probes. Readiness reflects whether a credential method is configured;
// it never performs token I/O.
//
// MetricsServer serves Prometheus metrics on a dedicated port,
// isolating metrics from the main application traffic.
package server
