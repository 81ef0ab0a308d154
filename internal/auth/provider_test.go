package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenNoMethodConfigured(t *testing.T) {
	p := NewProvider(&Config{DeveloperToken: "tok", LoginCustomerID: "1234567890"})

	_, err := p.AccessToken(context.Background())
	if err == nil {
		t.Fatal("expected error when no auth method is configured")
	}

	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T, want *ConfigurationError", err)
	}
	assert.Contains(t, cerr.Error(), "no valid authentication method configured")
}

func TestDeveloperToken(t *testing.T) {
	p := NewProvider(&Config{DeveloperToken: "dev-token"})
	tok, err := p.DeveloperToken()
	assert.NoError(t, err)
	assert.Equal(t, "dev-token", tok)

	empty := NewProvider(&Config{})
	_, err = empty.DeveloperToken()
	var cerr *ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

func TestLoginCustomerIDNormalized(t *testing.T) {
	p := NewProvider(&Config{LoginCustomerID: "123-456-7890"})
	assert.Equal(t, "1234567890", p.LoginCustomerID())

	unset := NewProvider(&Config{})
	assert.Empty(t, unset.LoginCustomerID())

	invalid := NewProvider(&Config{LoginCustomerID: "12345"})
	assert.Empty(t, invalid.LoginCustomerID(), "unusable value behaves like unset")
}

func TestHasAuthMethod(t *testing.T) {
	assert.False(t, NewProvider(&Config{}).HasAuthMethod())
	assert.False(t, NewProvider(&Config{ClientID: "id", ClientSecret: "secret"}).HasAuthMethod(),
		"refresh token flow needs all three values")
	assert.True(t, NewProvider(&Config{
		ClientID: "id", ClientSecret: "secret", RefreshToken: "refresh",
	}).HasAuthMethod())
	assert.True(t, NewProvider(&Config{ServiceAccountKeyPath: "/key.json"}).HasAuthMethod())
}

func TestServiceAccountKeyInvalid(t *testing.T) {
	p := NewProvider(&Config{ServiceAccountKey: "{not a key}"})
	_, err := p.AccessToken(context.Background())

	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %T, want *ConfigurationError", err)
	}
}
