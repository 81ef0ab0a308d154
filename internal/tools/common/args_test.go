package common

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestRequireArgs(t *testing.T) {
	var req mcp.CallToolRequest
	req.Params.Arguments = map[string]interface{}{"customerId": "1234567890"}

	args, errResult := RequireArgs(req)
	if errResult != nil {
		t.Fatalf("expected args, got error result")
	}
	if args["customerId"] != "1234567890" {
		t.Errorf("args = %v", args)
	}

	var empty mcp.CallToolRequest
	if _, errResult := RequireArgs(empty); errResult == nil {
		t.Error("expected error result for missing arguments")
	}

	var scalar mcp.CallToolRequest
	scalar.Params.Arguments = "not an object"
	if _, errResult := RequireArgs(scalar); errResult == nil {
		t.Error("expected error result for non-object arguments")
	}
}

func TestRequireCustomer(t *testing.T) {
	formatted, err := RequireCustomer(map[string]interface{}{"customerId": "1234567890"})
	if err != nil || formatted != "123-456-7890" {
		t.Errorf("RequireCustomer() = %q, %v", formatted, err)
	}

	if _, err := RequireCustomer(map[string]interface{}{}); err == nil {
		t.Error("expected error for missing customerId")
	}
	if _, err := RequireCustomer(map[string]interface{}{"customerId": "123"}); err == nil {
		t.Error("expected error for short customerId")
	}
}

func TestGetCustomerFromArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "no customer specified returns empty",
			args:     map[string]interface{}{},
			expected: "",
		},
		{
			name: "customer specified returns customer",
			args: map[string]interface{}{
				"customerId": "123-456-7890",
			},
			expected: "123-456-7890",
		},
		{
			name: "customer with other params",
			args: map[string]interface{}{
				"customerId": "1234567890",
				"other":      "value",
			},
			expected: "1234567890",
		},
		{
			name:     "nil args returns empty",
			args:     nil,
			expected: "",
		},
		{
			name: "non-string customer type returns empty",
			args: map[string]interface{}{
				"customerId": 123,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetCustomerFromArgs(tt.args)
			if result != tt.expected {
				t.Errorf("GetCustomerFromArgs() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestRequireString(t *testing.T) {
	args := map[string]interface{}{
		"name":  "Summer Sale",
		"empty": "",
		"count": 5.0,
	}

	if val, err := RequireString(args, "name"); err != nil || val != "Summer Sale" {
		t.Errorf("RequireString(name) = %q, %v", val, err)
	}
	if _, err := RequireString(args, "empty"); err == nil {
		t.Error("expected error for empty string")
	}
	if _, err := RequireString(args, "missing"); err == nil {
		t.Error("expected error for missing key")
	}
	if _, err := RequireString(args, "count"); err == nil {
		t.Error("expected error for non-string value")
	}
}

func TestOptionalString(t *testing.T) {
	args := map[string]interface{}{
		"format": "csv",
		"empty":  "",
	}

	if val := OptionalString(args, "format", "table"); val != "csv" {
		t.Errorf("OptionalString(format) = %q, want csv", val)
	}
	if val := OptionalString(args, "empty", "table"); val != "table" {
		t.Errorf("OptionalString(empty) = %q, want default", val)
	}
	if val := OptionalString(args, "missing", "table"); val != "table" {
		t.Errorf("OptionalString(missing) = %q, want default", val)
	}
}

func TestOptionalNumber(t *testing.T) {
	args := map[string]interface{}{
		"limit": 50.0,
		"name":  "not a number",
	}

	if val := OptionalNumber(args, "limit", 10); val != 50 {
		t.Errorf("OptionalNumber(limit) = %v, want 50", val)
	}
	if val := OptionalNumber(args, "missing", 10); val != 10 {
		t.Errorf("OptionalNumber(missing) = %v, want default", val)
	}
	if val := OptionalNumber(args, "name", 10); val != 10 {
		t.Errorf("OptionalNumber(name) = %v, want default for non-number", val)
	}
}

func TestOptionalBool(t *testing.T) {
	args := map[string]interface{}{
		"enabled": true,
		"name":    "not a bool",
	}

	if val := OptionalBool(args, "enabled", false); !val {
		t.Error("OptionalBool(enabled) = false, want true")
	}
	if val := OptionalBool(args, "missing", true); !val {
		t.Error("OptionalBool(missing) should return default")
	}
	if val := OptionalBool(args, "name", false); val {
		t.Error("OptionalBool(name) should return default for non-bool")
	}
}

func TestStringSlice(t *testing.T) {
	args := map[string]interface{}{
		"single": "shoes",
		"list":   []interface{}{"shoes", "running shoes", ""},
		"mixed":  []interface{}{"keyword", 42, true},
		"number": 5.0,
	}

	if got := StringSlice(args, "single"); len(got) != 1 || got[0] != "shoes" {
		t.Errorf("StringSlice(single) = %v", got)
	}
	if got := StringSlice(args, "list"); len(got) != 2 {
		t.Errorf("StringSlice(list) = %v, want 2 non-empty elements", got)
	}
	if got := StringSlice(args, "mixed"); len(got) != 1 || got[0] != "keyword" {
		t.Errorf("StringSlice(mixed) = %v", got)
	}
	if got := StringSlice(args, "number"); got != nil {
		t.Errorf("StringSlice(number) = %v, want nil", got)
	}
	if got := StringSlice(args, "missing"); got != nil {
		t.Errorf("StringSlice(missing) = %v, want nil", got)
	}
}

func TestMapSlice(t *testing.T) {
	args := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"text": "sitelink one"},
			"not an object",
			map[string]interface{}{"text": "sitelink two"},
		},
		"scalar": "value",
	}

	if got := MapSlice(args, "items"); len(got) != 2 {
		t.Errorf("MapSlice(items) = %v, want 2 objects", got)
	}
	if got := MapSlice(args, "scalar"); got != nil {
		t.Errorf("MapSlice(scalar) = %v, want nil", got)
	}
	if got := MapSlice(args, "missing"); got != nil {
		t.Errorf("MapSlice(missing) = %v, want nil", got)
	}
}
