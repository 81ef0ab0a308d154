package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/googleads-mcp/internal/auth"
	"github.com/teemow/googleads-mcp/internal/instrumentation"
	"github.com/teemow/googleads-mcp/internal/prompts"
	"github.com/teemow/googleads-mcp/internal/resources"
	"github.com/teemow/googleads-mcp/internal/server"
	"github.com/teemow/googleads-mcp/internal/tools/account_tools"
	"github.com/teemow/googleads-mcp/internal/tools/adgroup_tools"
	"github.com/teemow/googleads-mcp/internal/tools/asset_tools"
	"github.com/teemow/googleads-mcp/internal/tools/audience_tools"
	"github.com/teemow/googleads-mcp/internal/tools/budget_tools"
	"github.com/teemow/googleads-mcp/internal/tools/campaign_tools"
	"github.com/teemow/googleads-mcp/internal/tools/conversion_tools"
	"github.com/teemow/googleads-mcp/internal/tools/keyword_tools"
	"github.com/teemow/googleads-mcp/internal/tools/label_tools"
	"github.com/teemow/googleads-mcp/internal/tools/recommendation_tools"
	"github.com/teemow/googleads-mcp/internal/tools/report_tools"
	"github.com/teemow/googleads-mcp/internal/tools/targeting_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode             bool
		transport             string
		httpAddr              string
		yolo                  bool
		configPath            string
		clientID              string
		clientSecret          string
		refreshToken          string
		developerToken        string
		loginCustomerID       string
		serviceAccountKeyPath string
		metricsEnabled        bool
		metricsAddr           string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to provide Google Ads
tools for AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Safety Mode:
  By default, the server operates in read-only mode, providing only safe operations.
  Use --yolo to enable write operations (campaign creation, bid changes, etc.)

Credentials:
  Flags take precedence, then GOOGLE_ADS_* environment variables (a .env
  file is loaded when present), then a JSON config file: --config if given,
  otherwise google-ads-config.json, .google-ads/credentials.json, or
  ~/.google-ads/credentials.json.

  OAuth: --client-id, --client-secret, --refresh-token
  Service account: --service-account-key-path (optionally with
  GOOGLE_ADS_LOGIN_CUSTOMER_ID for domain-wide delegation)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Best-effort .env loading so GOOGLE_ADS_* and METRICS_* vars
			// can live next to the binary during development
			_ = godotenv.Load()

			explicit := &auth.Config{
				ClientID:              clientID,
				ClientSecret:          clientSecret,
				RefreshToken:          refreshToken,
				DeveloperToken:        developerToken,
				LoginCustomerID:       loginCustomerID,
				ServiceAccountKeyPath: serviceAccountKeyPath,
			}

			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			loadMetricsEnvVars(cmd, &metricsConfig)

			return runServe(transport, debugMode, httpAddr, yolo, configPath, explicit, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().BoolVar(&yolo, "yolo", false, "Enable write operations (campaign creation, bid changes, etc.). Default is read-only mode.")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a JSON credentials file. Overrides the well-known config file locations.")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth client ID. Can also use GOOGLE_ADS_CLIENT_ID env var.")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth client secret. Can also use GOOGLE_ADS_CLIENT_SECRET env var.")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "OAuth refresh token. Can also use GOOGLE_ADS_REFRESH_TOKEN env var.")
	cmd.Flags().StringVar(&developerToken, "developer-token", "", "Google Ads developer token. Can also use GOOGLE_ADS_DEVELOPER_TOKEN env var.")
	cmd.Flags().StringVar(&loginCustomerID, "login-customer-id", "", "Manager account customer ID for login-customer-id header. Can also use GOOGLE_ADS_LOGIN_CUSTOMER_ID env var.")
	cmd.Flags().StringVar(&serviceAccountKeyPath, "service-account-key-path", "", "Path to a service account JSON key file. Can also use GOOGLE_ADS_SERVICE_ACCOUNT_KEY_PATH env var.")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

// loadMetricsEnvVars loads metrics configuration from environment
// variables. Environment variables only apply when the corresponding
// flag was not explicitly set, so --metrics-enabled=false and an
// explicit --metrics-addr always win.
func loadMetricsEnvVars(cmd *cobra.Command, config *MetricsConfig) {
	if !cmd.Flags().Changed("metrics-enabled") {
		if enabled := os.Getenv("METRICS_ENABLED"); enabled != "" {
			config.Enabled = enabled == "true"
		}
	}
	if !cmd.Flags().Changed("metrics-addr") {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			config.Addr = addr
		}
	}
}

func runServe(transport string, debugMode bool, httpAddr string, yolo bool, configPath string, explicit *auth.Config, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := setupLogger(transport, debugMode)

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				log.Printf("Metrics server stopped with error: %v", err)
			}
		}()
		log.Printf("Metrics server starting on %s", metricsServer.Addr())
	}

	// Resolve credentials: explicit flags, then env, then config files.
	// An explicit --config file participates below the flags but above
	// the well-known locations.
	if configPath != "" {
		fileCfg, err := auth.LoadConfigFile(configPath)
		if err != nil {
			return err
		}
		explicit = mergeConfig(explicit, fileCfg)
	}
	credentials := auth.Resolve(explicit, logger)
	authProvider := auth.NewProvider(credentials)

	if !authProvider.HasAuthMethod() && transport != "stdio" {
		log.Println("Warning: no Google Ads credentials configured, tool calls will fail until credentials are provided")
	}

	// Create server context
	serverContext, err := server.NewServerContext(shutdownCtx, authProvider)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(nil, instrConfig.AuditLogging))
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			if transport != "stdio" {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("googleads-mcp", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false), // Subscribe and listChanged
		mcpserver.WithPromptCapabilities(true),
	)

	// readOnly is the inverse of yolo
	readOnly := !yolo

	// Log the mode for visibility (only for non-stdio transports)
	if transport != "stdio" {
		if readOnly {
			log.Println("Starting server in READ-ONLY mode (use --yolo to enable write operations)")
		} else {
			log.Println("Starting server with WRITE operations enabled (--yolo flag is set)")
		}
	}

	// Register all tools, resources and prompts
	if err := registerAllTools(mcpSrv, serverContext, readOnly); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		fmt.Printf("Starting googleads-mcp server with %s transport...\n", transport)
		return runStreamableHTTPServer(mcpSrv, serverContext, httpAddr, shutdownCtx, metricsConfig)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

// setupLogger configures the default slog logger. stdio transport logs to
// stderr so protocol traffic on stdout stays clean.
func setupLogger(transport string, debugMode bool) *slog.Logger {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if transport == "stdio" {
		log.SetOutput(os.Stderr)
	}
	return logger
}

// mergeConfig fills empty fields of dst from src. Flag values keep
// precedence over config file contents.
func mergeConfig(dst, src *auth.Config) *auth.Config {
	merged := *dst
	if merged.ClientID == "" {
		merged.ClientID = src.ClientID
	}
	if merged.ClientSecret == "" {
		merged.ClientSecret = src.ClientSecret
	}
	if merged.RefreshToken == "" {
		merged.RefreshToken = src.RefreshToken
	}
	if merged.DeveloperToken == "" {
		merged.DeveloperToken = src.DeveloperToken
	}
	if merged.LoginCustomerID == "" {
		merged.LoginCustomerID = src.LoginCustomerID
	}
	if merged.ServiceAccountKey == "" {
		merged.ServiceAccountKey = src.ServiceAccountKey
	}
	if merged.ServiceAccountKeyPath == "" {
		merged.ServiceAccountKeyPath = src.ServiceAccountKeyPath
	}
	return &merged
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAllTools registers all MCP tools, resources and prompts.
// Extracted to avoid duplication with the docs generator.
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext, readOnly bool) error {
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Accounts",
			register: func() error {
				return account_tools.RegisterAccountTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Campaigns",
			register: func() error {
				return campaign_tools.RegisterCampaignTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Ad Groups",
			register: func() error {
				return adgroup_tools.RegisterAdGroupTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Keywords",
			register: func() error {
				return keyword_tools.RegisterKeywordTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Conversions",
			register: func() error {
				return conversion_tools.RegisterConversionTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Audiences",
			register: func() error {
				return audience_tools.RegisterAudienceTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Reports",
			register: func() error {
				return report_tools.RegisterReportTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Budgets",
			register: func() error {
				return budget_tools.RegisterBudgetTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Assets",
			register: func() error {
				return asset_tools.RegisterAssetTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Targeting",
			register: func() error {
				return targeting_tools.RegisterTargetingTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Recommendations",
			register: func() error {
				return recommendation_tools.RegisterRecommendationTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Labels",
			register: func() error {
				return label_tools.RegisterLabelTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "GAQL Resources",
			register: func() error {
				return resources.RegisterGAQLResources(mcpSrv)
			},
		},
		{
			name: "Prompts",
			register: func() error {
				return prompts.RegisterPrompts(mcpSrv)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}

func runStreamableHTTPServer(mcpSrv *mcpserver.MCPServer, serverContext *server.ServerContext, addr string, ctx context.Context, metricsConfig MetricsConfig) error {
	httpServer := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath("/mcp"),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.WithHTTPMetrics(httpServer, serverContext.Metrics()))

	// Health check endpoints for load balancers and orchestrators
	healthChecker := server.NewHealthChecker(serverContext)
	healthChecker.RegisterHealthEndpoints(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	fmt.Printf("Streamable HTTP server starting on %s\n", addr)
	fmt.Printf("  HTTP endpoint: /mcp\n")
	fmt.Printf("  Health endpoints: /healthz, /readyz\n")
	if metricsConfig.Enabled {
		fmt.Printf("  Metrics endpoint: %s/metrics\n", metricsConfig.Addr)
	}

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		fmt.Println("HTTP server stopped normally")
	}

	fmt.Println("HTTP server gracefully stopped")
	return nil
}
