package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation    = "operation"
	KeyCustomerHash = "customer_hash"
	KeyError        = "error"
)

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// AnonymizeCustomerID returns a hashed representation of a customer ID
// for logging purposes. This allows correlation of log entries without
// exposing account identifiers.
func AnonymizeCustomerID(customerID string) string {
	if customerID == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(customerID))
	return "customer:" + hex.EncodeToString(hash[:8])
}

// CustomerHash returns a slog attribute with the anonymized customer ID.
// This is a convenience function to reduce repetition in logging calls and ensure
// consistent attribute naming across the codebase.
//
// Usage:
//
//	logger.Info("operation completed", logging.CustomerHash(customerID))
func CustomerHash(customerID string) slog.Attr {
	return slog.String(KeyCustomerHash, AnonymizeCustomerID(customerID))
}
