package auth

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AdWordsScope is the OAuth scope required for all Google Ads API calls.
const AdWordsScope = "https://www.googleapis.com/auth/adwords"

// Provider issues access tokens and exposes the non-token credential
// pieces (developer token, login customer ID) for request headers.
//
// The token source is created lazily on first use and cached; the
// underlying oauth2 machinery handles token refresh transparently.
type Provider struct {
	cfg *Config

	mu          sync.Mutex
	tokenSource oauth2.TokenSource
}

// NewProvider creates a credential provider for the given resolved config.
func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Provider{cfg: cfg}
}

// AccessToken returns a valid OAuth access token. The service account
// flow is preferred when key material is configured; otherwise the
// refresh-token flow is used.
func (p *Provider) AccessToken(ctx context.Context) (string, error) {
	ts, err := p.source(ctx)
	if err != nil {
		return "", err
	}
	token, err := ts.Token()
	if err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}
	return token.AccessToken, nil
}

func (p *Provider) source(ctx context.Context) (oauth2.TokenSource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tokenSource != nil {
		return p.tokenSource, nil
	}

	switch {
	case p.cfg.ServiceAccountKey != "" || p.cfg.ServiceAccountKeyPath != "":
		ts, err := p.serviceAccountSource(ctx)
		if err != nil {
			return nil, err
		}
		p.tokenSource = ts

	case p.cfg.ClientID != "" && p.cfg.ClientSecret != "" && p.cfg.RefreshToken != "":
		conf := &oauth2.Config{
			ClientID:     p.cfg.ClientID,
			ClientSecret: p.cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{AdWordsScope},
		}
		base := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: p.cfg.RefreshToken})
		p.tokenSource = oauth2.ReuseTokenSource(nil, base)

	default:
		return nil, &ConfigurationError{Reason: "no valid authentication method configured"}
	}

	return p.tokenSource, nil
}

func (p *Provider) serviceAccountSource(ctx context.Context) (oauth2.TokenSource, error) {
	keyData := []byte(p.cfg.ServiceAccountKey)
	if len(keyData) == 0 {
		data, err := os.ReadFile(p.cfg.ServiceAccountKeyPath)
		if err != nil {
			return nil, &ConfigurationError{
				Reason: "failed to read service account key file",
				Err:    err,
			}
		}
		keyData = data
	}

	conf, err := google.JWTConfigFromJSON(keyData, AdWordsScope)
	if err != nil {
		return nil, &ConfigurationError{
			Reason: "failed to parse service account key",
			Err:    err,
		}
	}
	return conf.TokenSource(ctx), nil
}

// DeveloperToken returns the configured developer token, or a
// ConfigurationError when unset.
func (p *Provider) DeveloperToken() (string, error) {
	if p.cfg.DeveloperToken == "" {
		return "", &ConfigurationError{Reason: "developer token not configured"}
	}
	return p.cfg.DeveloperToken, nil
}

// LoginCustomerID returns the configured manager account ID in
// digits-only form. An empty string means no login customer ID is
// configured; validation failures are reported like the unset case since
// the value is unusable either way.
func (p *Provider) LoginCustomerID() string {
	if p.cfg.LoginCustomerID == "" {
		return ""
	}
	digits, err := CustomerIDDigits(p.cfg.LoginCustomerID)
	if err != nil {
		return ""
	}
	return digits
}

// HasAuthMethod reports whether some token issuance path is configured.
// Used by health probes to answer readiness without performing I/O.
func (p *Provider) HasAuthMethod() bool {
	return p.cfg.ServiceAccountKey != "" || p.cfg.ServiceAccountKeyPath != "" ||
		(p.cfg.ClientID != "" && p.cfg.ClientSecret != "" && p.cfg.RefreshToken != "")
}
