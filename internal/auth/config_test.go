package auth

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func clearAdsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvClientID, EnvClientSecret, EnvRefreshToken, EnvDeveloperToken,
		EnvLoginCustomerID, EnvServiceAccountKey, EnvServiceAccountKeyPath,
	} {
		t.Setenv(key, "")
	}
}

func TestResolveExplicitWinsOverEnv(t *testing.T) {
	clearAdsEnv(t)
	t.Setenv(EnvClientID, "env-client-id")
	t.Setenv(EnvDeveloperToken, "env-dev-token")

	cfg := Resolve(&Config{ClientID: "explicit-client-id"}, discardLogger())

	assert.Equal(t, "explicit-client-id", cfg.ClientID, "explicit value must win")
	assert.Equal(t, "env-dev-token", cfg.DeveloperToken, "env fills unset fields")
}

func TestResolveEnvOnly(t *testing.T) {
	clearAdsEnv(t)
	t.Setenv(EnvRefreshToken, "env-refresh")
	t.Setenv(EnvLoginCustomerID, "123-456-7890")

	cfg := Resolve(nil, discardLogger())

	assert.Equal(t, "env-refresh", cfg.RefreshToken)
	assert.Equal(t, "123-456-7890", cfg.LoginCustomerID)
}

func TestResolveWellKnownFile(t *testing.T) {
	clearAdsEnv(t)

	dir := t.TempDir()
	content := `{
		"clientId": "file-client-id",
		"clientSecret": "file-secret",
		"refreshToken": "file-refresh",
		"developerToken": "file-dev-token",
		"loginCustomerId": "1234567890"
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "google-ads-config.json"), []byte(content), 0600))
	t.Chdir(dir)

	cfg := Resolve(nil, discardLogger())

	assert.Equal(t, "file-client-id", cfg.ClientID)
	assert.Equal(t, "file-dev-token", cfg.DeveloperToken)
}

func TestResolveFileSkippedWhenAuthMethodChosen(t *testing.T) {
	clearAdsEnv(t)

	dir := t.TempDir()
	content := `{"clientId": "file-client-id", "developerToken": "file-dev-token"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "google-ads-config.json"), []byte(content), 0600))
	t.Chdir(dir)
	t.Setenv(EnvClientID, "env-client-id")

	cfg := Resolve(nil, discardLogger())

	assert.Equal(t, "env-client-id", cfg.ClientID)
	assert.Empty(t, cfg.DeveloperToken, "file must not be read once an auth method is set")
}

func TestResolveStaleFileKeyDoesNotOverrideOAuth(t *testing.T) {
	clearAdsEnv(t)

	dir := t.TempDir()
	content := `{"serviceAccountKey": "{\"type\":\"service_account\"}"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "google-ads-config.json"), []byte(content), 0600))
	t.Chdir(dir)

	cfg := Resolve(&Config{
		ClientID:     "explicit-client-id",
		ClientSecret: "explicit-secret",
		RefreshToken: "explicit-refresh",
	}, discardLogger())

	assert.Empty(t, cfg.ServiceAccountKey,
		"a configured refresh-token flow must not pick up a service account key from disk")
	assert.Equal(t, "explicit-refresh", cfg.RefreshToken)
}

func TestResolveMalformedFileIsSkipped(t *testing.T) {
	clearAdsEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "google-ads-config.json"), []byte("{not json"), 0600))
	t.Chdir(dir)

	// Must not fail; the malformed file is logged and skipped.
	cfg := Resolve(nil, discardLogger())
	assert.Empty(t, cfg.ClientID)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ads.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"developerToken": "tok"}`), 0600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.DeveloperToken)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err, "explicit config file must exist")
}
