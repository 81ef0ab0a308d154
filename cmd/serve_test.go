package cmd

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/googleads-mcp/internal/auth"
	"github.com/teemow/googleads-mcp/internal/server"
)

func TestMergeConfig(t *testing.T) {
	tests := []struct {
		name     string
		dst      *auth.Config
		src      *auth.Config
		expected *auth.Config
	}{
		{
			name: "flags win over file values",
			dst:  &auth.Config{ClientID: "flag-id", DeveloperToken: "flag-token"},
			src:  &auth.Config{ClientID: "file-id", ClientSecret: "file-secret"},
			expected: &auth.Config{
				ClientID:       "flag-id",
				ClientSecret:   "file-secret",
				DeveloperToken: "flag-token",
			},
		},
		{
			name:     "empty flags take everything from file",
			dst:      &auth.Config{},
			src:      &auth.Config{RefreshToken: "file-refresh", LoginCustomerID: "1234567890"},
			expected: &auth.Config{RefreshToken: "file-refresh", LoginCustomerID: "1234567890"},
		},
		{
			name:     "empty file changes nothing",
			dst:      &auth.Config{ServiceAccountKeyPath: "/keys/sa.json"},
			src:      &auth.Config{},
			expected: &auth.Config{ServiceAccountKeyPath: "/keys/sa.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mergeConfig(tt.dst, tt.src)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoadMetricsEnvVars(t *testing.T) {
	parse := func(t *testing.T, args ...string) *cobra.Command {
		t.Helper()
		cmd := newServeCmd()
		require.NoError(t, cmd.ParseFlags(args))
		return cmd
	}

	t.Run("env disables metrics when flag not set", func(t *testing.T) {
		t.Setenv("METRICS_ENABLED", "false")
		t.Setenv("METRICS_ADDR", "")

		config := MetricsConfig{Enabled: true, Addr: ":9090"}
		loadMetricsEnvVars(parse(t), &config)

		assert.False(t, config.Enabled)
	})

	t.Run("explicit flag beats env", func(t *testing.T) {
		t.Setenv("METRICS_ENABLED", "false")
		t.Setenv("METRICS_ADDR", ":7070")

		config := MetricsConfig{Enabled: true, Addr: ":9090"}
		loadMetricsEnvVars(parse(t, "--metrics-enabled=true", "--metrics-addr", ":9090"), &config)

		assert.True(t, config.Enabled, "explicitly enabled metrics must stay enabled")
		assert.Equal(t, ":9090", config.Addr, "explicit addr must not be overridden")
	})

	t.Run("env addr fills in for default flag", func(t *testing.T) {
		t.Setenv("METRICS_ENABLED", "")
		t.Setenv("METRICS_ADDR", ":7070")

		config := MetricsConfig{Enabled: true, Addr: ":9090"}
		loadMetricsEnvVars(parse(t), &config)

		assert.True(t, config.Enabled)
		assert.Equal(t, ":7070", config.Addr)
	})
}

func TestRegisterAllTools(t *testing.T) {
	ctx := context.Background()
	serverContext, err := server.NewServerContext(ctx, auth.NewProvider(nil))
	require.NoError(t, err)
	defer func() {
		_ = serverContext.Shutdown()
	}()

	t.Run("read-only mode registers only read tools", func(t *testing.T) {
		mcpSrv := mcpserver.NewMCPServer("test", "dev",
			mcpserver.WithToolCapabilities(true),
			mcpserver.WithResourceCapabilities(false, false),
			mcpserver.WithPromptCapabilities(true),
		)
		require.NoError(t, registerAllTools(mcpSrv, serverContext, true))

		names := toolNames(mcpSrv)
		assert.Contains(t, names, "get_campaigns")
		assert.Contains(t, names, "execute_gaql_query")
		assert.Contains(t, names, "get_search_term_report")
		assert.NotContains(t, names, "create_campaign")
		assert.NotContains(t, names, "add_keywords")
		assert.NotContains(t, names, "upload_customer_match_data")
	})

	t.Run("write mode registers write tools", func(t *testing.T) {
		mcpSrv := mcpserver.NewMCPServer("test", "dev",
			mcpserver.WithToolCapabilities(true),
			mcpserver.WithResourceCapabilities(false, false),
			mcpserver.WithPromptCapabilities(true),
		)
		require.NoError(t, registerAllTools(mcpSrv, serverContext, false))

		names := toolNames(mcpSrv)
		assert.Contains(t, names, "create_campaign")
		assert.Contains(t, names, "create_performance_max_campaign")
		assert.Contains(t, names, "add_keywords")
		assert.Contains(t, names, "import_offline_conversions")
		assert.Contains(t, names, "bulk_edit_operations")
	})
}

func toolNames(mcpSrv *mcpserver.MCPServer) []string {
	serverTools := mcpSrv.ListTools()
	names := make([]string, 0, len(serverTools))
	for _, st := range serverTools {
		names = append(names, st.Tool.Name)
	}
	return names
}
