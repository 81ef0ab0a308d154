package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Environment variable names recognized during credential resolution.
const (
	EnvClientID              = "GOOGLE_ADS_CLIENT_ID"
	EnvClientSecret          = "GOOGLE_ADS_CLIENT_SECRET"
	EnvRefreshToken          = "GOOGLE_ADS_REFRESH_TOKEN"
	EnvDeveloperToken        = "GOOGLE_ADS_DEVELOPER_TOKEN"
	EnvLoginCustomerID       = "GOOGLE_ADS_LOGIN_CUSTOMER_ID"
	EnvServiceAccountKey     = "GOOGLE_ADS_SERVICE_ACCOUNT_KEY"
	EnvServiceAccountKeyPath = "GOOGLE_ADS_SERVICE_ACCOUNT_KEY_PATH"
)

// Config holds the credential material needed to call the Google Ads API.
// Either the OAuth fields (ClientID/ClientSecret/RefreshToken) or one of
// the service account fields must be set for token issuance to work.
type Config struct {
	ClientID        string `json:"clientId,omitempty"`
	ClientSecret    string `json:"clientSecret,omitempty"`
	RefreshToken    string `json:"refreshToken,omitempty"`
	DeveloperToken  string `json:"developerToken,omitempty"`
	LoginCustomerID string `json:"loginCustomerId,omitempty"`

	// ServiceAccountKey is the inline JSON key for a service account.
	// ServiceAccountKeyPath points at a key file instead.
	ServiceAccountKey     string `json:"serviceAccountKey,omitempty"`
	ServiceAccountKeyPath string `json:"serviceAccountKeyPath,omitempty"`
}

// wellKnownConfigPaths returns the config file locations probed during
// resolution, in order.
func wellKnownConfigPaths() []string {
	paths := []string{
		"google-ads-config.json",
		filepath.Join(".google-ads", "credentials.json"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".google-ads", "credentials.json"))
	}
	return paths
}

// LoadConfigFile reads a credential config file. Unlike the well-known
// file probing in Resolve, a missing or malformed explicit file is an
// error.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve builds the effective credential config. Precedence per field:
// explicit values, then environment variables, then the first readable
// well-known config file. The file is only consulted when neither an
// OAuth client ID nor a service account key is configured yet, so a
// stale file never overrides a chosen auth method. File loading is
// best-effort: unreadable or malformed files are logged and skipped.
func Resolve(explicit *Config, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := &Config{}
	if explicit != nil {
		*cfg = *explicit
	}

	fillFromEnv(cfg)

	if cfg.hasPrimaryCredential() {
		return cfg
	}

	for _, path := range wellKnownConfigPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fileCfg Config
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			logger.Warn("skipping malformed credentials file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		logger.Debug("loaded credentials file", slog.String("path", path))
		fillFrom(cfg, &fileCfg)
		break
	}

	return cfg
}

// hasPrimaryCredential reports whether an auth method has already been
// chosen, making the well-known config files moot.
func (c *Config) hasPrimaryCredential() bool {
	return c.ClientID != "" || c.ServiceAccountKey != "" || c.ServiceAccountKeyPath != ""
}

func fillFromEnv(cfg *Config) {
	fillFrom(cfg, &Config{
		ClientID:              os.Getenv(EnvClientID),
		ClientSecret:          os.Getenv(EnvClientSecret),
		RefreshToken:          os.Getenv(EnvRefreshToken),
		DeveloperToken:        os.Getenv(EnvDeveloperToken),
		LoginCustomerID:       os.Getenv(EnvLoginCustomerID),
		ServiceAccountKey:     os.Getenv(EnvServiceAccountKey),
		ServiceAccountKeyPath: os.Getenv(EnvServiceAccountKeyPath),
	})
}

// fillFrom copies src fields into dst for every field dst has not set yet.
func fillFrom(dst, src *Config) {
	if dst.ClientID == "" {
		dst.ClientID = src.ClientID
	}
	if dst.ClientSecret == "" {
		dst.ClientSecret = src.ClientSecret
	}
	if dst.RefreshToken == "" {
		dst.RefreshToken = src.RefreshToken
	}
	if dst.DeveloperToken == "" {
		dst.DeveloperToken = src.DeveloperToken
	}
	if dst.LoginCustomerID == "" {
		dst.LoginCustomerID = src.LoginCustomerID
	}
	if dst.ServiceAccountKey == "" {
		dst.ServiceAccountKey = src.ServiceAccountKey
	}
	if dst.ServiceAccountKeyPath == "" {
		dst.ServiceAccountKeyPath = src.ServiceAccountKeyPath
	}
}
