package instrumentation

import (
	"crypto/sha256"
	"encoding/hex"
)

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with account identifiers.

// AnonymizeCustomer reduces a customer ID to a short hash.
// This keeps per-account correlation possible without recording the raw
// account identifier in metrics or general logs.
//
// Example:
//
//	AnonymizeCustomer("1234567890")  // "customer:a1b2c3d4e5f60708"
//	AnonymizeCustomer("")            // "unknown"
func AnonymizeCustomer(customerID string) string {
	if customerID == "" {
		return "unknown"
	}

	hash := sha256.Sum256([]byte(customerID))
	return "customer:" + hex.EncodeToString(hash[:8])
}

// Common operation types for Google Ads API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationSearch = "search"
	OperationMutate = "mutate"
	OperationList   = "list"
	OperationGet    = "get"
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationUpload = "upload"
	OperationApply  = "apply"
)
