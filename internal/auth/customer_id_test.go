package auth

import (
	"errors"
	"testing"
)

func TestFormatCustomerID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain digits", input: "1234567890", want: "123-456-7890"},
		{name: "already formatted", input: "123-456-7890", want: "123-456-7890"},
		{name: "mixed separators", input: "123 456.7890", want: "123-456-7890"},
		{name: "too short", input: "123456789", wantErr: true},
		{name: "too long", input: "12345678901", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "letters only", input: "customer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatCustomerID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FormatCustomerID(%q) expected error, got %q", tt.input, got)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("FormatCustomerID(%q) error = %T, want *ValidationError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatCustomerID(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FormatCustomerID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatCustomerIDRoundTrip(t *testing.T) {
	// Formatting an already formatted ID must be a fixed point.
	first, err := FormatCustomerID("9876543210")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := FormatCustomerID(first)
	if err != nil {
		t.Fatalf("unexpected error on round trip: %v", err)
	}
	if first != second {
		t.Errorf("round trip changed value: %q != %q", first, second)
	}
}

func TestCustomerIDDigits(t *testing.T) {
	got, err := CustomerIDDigits("123-456-7890")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1234567890" {
		t.Errorf("CustomerIDDigits = %q, want %q", got, "1234567890")
	}

	if _, err := CustomerIDDigits("12-34"); err == nil {
		t.Error("expected error for short ID")
	}
}
