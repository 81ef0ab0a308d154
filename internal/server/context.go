package server

import (
	"context"
	"sync"

	"github.com/teemow/googleads-mcp/internal/ads"
	"github.com/teemow/googleads-mcp/internal/auth"
	"github.com/teemow/googleads-mcp/internal/instrumentation"
)

// ServerContext holds the shared state for the MCP server: the resolved
// credential provider and the lazily created Ads API client.
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	provider *auth.Provider

	mu          sync.RWMutex
	adsClient   *ads.Client
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	shutdown    bool
}

// NewServerContext creates a new server context around the given
// credential provider. The Ads client is not created until first use so
// the server can start (and answer health probes) before credentials
// are fully configured.
func NewServerContext(ctx context.Context, provider *auth.Provider) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		provider: provider,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Provider returns the credential provider.
func (sc *ServerContext) Provider() *auth.Provider {
	return sc.provider
}

// AdsClient returns the Google Ads API client, creating and caching it
// on first use.
func (sc *ServerContext) AdsClient() *ads.Client {
	sc.mu.RLock()
	client := sc.adsClient
	sc.mu.RUnlock()
	if client != nil {
		return client
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.adsClient == nil {
		sc.adsClient = ads.NewClient(sc.provider)
	}
	return sc.adsClient
}

// SetAdsClient sets the Ads API client. Used by tests to inject a client
// pointed at a test server.
func (sc *ServerContext) SetAdsClient(client *ads.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.adsClient = client
}

// Metrics returns the metrics recorder, or nil when instrumentation is
// not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// AuditLogger returns the audit logger, or nil when audit logging is
// not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger.
func (sc *ServerContext) SetAuditLogger(auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
