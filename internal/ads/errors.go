package ads

import "fmt"

// APIError describes a non-2xx response from the Google Ads API.
// HeaderDiagnostics records which auth headers were attached to the
// failed request as presence booleans only; secret values are never
// included.
type APIError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string

	DeveloperTokenPresent bool
	AuthorizationPresent  bool
	LoginCustomerID       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads api error: %s: %s: developer-token=%s authorization=%s login-customer-id=%s: %s",
		e.Op, e.Status,
		presence(e.DeveloperTokenPresent),
		presence(e.AuthorizationPresent),
		loginCustomerIDDiagnostic(e.LoginCustomerID),
		e.Body)
}

func presence(p bool) string {
	if p {
		return "[PRESENT]"
	}
	return "[MISSING]"
}

func loginCustomerIDDiagnostic(id string) string {
	if id == "" {
		return "[MISSING]"
	}
	return id
}

// DependencyError indicates that the first step of a dependent creation
// chain did not yield a resource name, so the second step was not
// attempted.
type DependencyError struct {
	Resource string
	Op       string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: failed to create %s", e.Op, e.Resource)
}
