package auth

import "fmt"

// ConfigurationError indicates missing or unusable Google Ads credentials.
// It is returned before any network call is attempted.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth configuration error: %s: %v", e.Reason, e.Err)
	}
	return "auth configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError indicates a caller-supplied value that failed validation
// before any request was built.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
