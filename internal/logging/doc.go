// Package logging provides structured logging utilities for the googleads-mcp application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Account identifier sanitization (customer ID anonymization)
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Log with standard attributes:
//
//	logger.Debug("executing query",
//	    logging.Operation("searchStream"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("account operation",
//	    logging.CustomerHash(customerID))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - Customer IDs are hashed to prevent account enumeration while allowing correlation
//   - Tokens are never logged directly
package logging
