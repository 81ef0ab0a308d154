package auth

import "strings"

// customerIDLength is the number of digits in a Google Ads customer ID.
const customerIDLength = 10

// FormatCustomerID normalizes a customer ID into the canonical
// XXX-XXX-XXXX display form. Any non-digit characters in the input are
// stripped first, so both "1234567890" and "123-456-7890" are accepted.
func FormatCustomerID(raw string) (string, error) {
	digits := stripNonDigits(raw)
	if len(digits) != customerIDLength {
		return "", &ValidationError{
			Field:  "customerId",
			Value:  raw,
			Reason: "customer ID must contain exactly 10 digits",
		}
	}
	return digits[0:3] + "-" + digits[3:6] + "-" + digits[6:10], nil
}

// CustomerIDDigits normalizes a customer ID into the digits-only form
// used in request URLs and the login-customer-id header.
func CustomerIDDigits(raw string) (string, error) {
	formatted, err := FormatCustomerID(raw)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(formatted, "-", ""), nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
