package instrumentation

import "testing"

func TestAnonymizeCustomer(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		wantPrefix string
	}{
		{"plain digits", "1234567890", "customer:"},
		{"formatted", "123-456-7890", "customer:"},
		{"empty", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnonymizeCustomer(tt.customerID)
			if len(result) < len(tt.wantPrefix) || result[:len(tt.wantPrefix)] != tt.wantPrefix {
				t.Errorf("AnonymizeCustomer(%q) = %q, want prefix %q", tt.customerID, result, tt.wantPrefix)
			}
			if tt.customerID != "" && result == tt.customerID {
				t.Errorf("AnonymizeCustomer(%q) should not return the raw ID", tt.customerID)
			}
		})
	}

	// Deterministic and collision-free for different inputs
	if AnonymizeCustomer("1234567890") != AnonymizeCustomer("1234567890") {
		t.Error("AnonymizeCustomer should be deterministic")
	}
	if AnonymizeCustomer("1234567890") == AnonymizeCustomer("0987654321") {
		t.Error("Different customer IDs should produce different hashes")
	}
}

func TestOperationConstants(t *testing.T) {
	operations := map[string]string{
		OperationSearch: "search",
		OperationMutate: "mutate",
		OperationList:   "list",
		OperationGet:    "get",
		OperationCreate: "create",
		OperationUpdate: "update",
		OperationUpload: "upload",
		OperationApply:  "apply",
	}

	for constant, expected := range operations {
		if constant != expected {
			t.Errorf("Operation constant = %q, want %q", constant, expected)
		}
	}
}
