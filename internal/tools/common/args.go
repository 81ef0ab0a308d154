package common

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/googleads-mcp/internal/auth"
)

// Tool arguments arrive as map[string]interface{} decoded from JSON, so
// numbers are float64 and arrays are []interface{}. These helpers
// normalize that shape for handlers.

// RequireArgs extracts the arguments object from a tool request. When
// the arguments are missing or not a JSON object, the second return
// value carries the tool-result error to hand back to the client.
func RequireArgs(request mcp.CallToolRequest) (map[string]interface{}, *mcp.CallToolResult) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok || args == nil {
		return nil, mcp.NewToolResultError("arguments are required for this tool")
	}
	return args, nil
}

// RequireCustomer extracts and validates the customerId argument,
// returning it in the canonical XXX-XXX-XXXX form.
func RequireCustomer(args map[string]interface{}) (string, error) {
	raw, ok := args["customerId"].(string)
	if !ok || raw == "" {
		return "", fmt.Errorf("'customerId' field is required")
	}
	return auth.FormatCustomerID(raw)
}

// GetCustomerFromArgs extracts the customer ID from request arguments.
// Returns an empty string when no customerId argument is present.
func GetCustomerFromArgs(args map[string]interface{}) string {
	if customerVal, ok := args["customerId"].(string); ok {
		return customerVal
	}
	return ""
}

// RequireString returns the string value for key, or an error when the
// argument is missing, empty, or not a string.
func RequireString(args map[string]interface{}, key string) (string, error) {
	val, ok := args[key].(string)
	if !ok || val == "" {
		return "", fmt.Errorf("'%s' field is required", key)
	}
	return val, nil
}

// OptionalString returns the string value for key, or def when the
// argument is missing or not a string.
func OptionalString(args map[string]interface{}, key, def string) string {
	if val, ok := args[key].(string); ok && val != "" {
		return val
	}
	return def
}

// OptionalNumber returns the numeric value for key, or def when the
// argument is missing or not a number.
func OptionalNumber(args map[string]interface{}, key string, def float64) float64 {
	if val, ok := args[key].(float64); ok {
		return val
	}
	return def
}

// OptionalBool returns the boolean value for key, or def when the
// argument is missing or not a boolean.
func OptionalBool(args map[string]interface{}, key string, def bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return def
}

// StringSlice returns the string array value for key. A single string
// value is wrapped into a one-element slice. Non-string elements are
// skipped.
func StringSlice(args map[string]interface{}, key string) []string {
	switch val := args[key].(type) {
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// MapSlice returns the object array value for key. Non-object elements
// are skipped.
func MapSlice(args map[string]interface{}, key string) []map[string]interface{} {
	items, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
