package qdrant

import (
	"context"
	"fmt"
	"net/http"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// Client is the shared backend handle. It is constructed exactly once at
// process start (the Fx container guarantees single construction) and is
// read-only afterwards, so it is safe for unbounded concurrent use. A
// construction failure fails startup; there is no lazy retry that could
// mask the error behind a retry storm.
type Client struct {
	api     API
	http    *http.Client
	cfg     *Config
	log     Logger
	started bool

	// Optimization wait timing, defaulted from the package constants.
	optimizePoll     time.Duration
	optimizeDeadline time.Duration
}

// Logger is the logging interface this package depends on. It mirrors the
// signatures of the application logger so that any compatible implementation
// can be injected.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// nopLogger discards all output. Used when no logger is injected.
type nopLogger struct{}

func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}

// listDetailConcurrency bounds the parallel per-collection detail lookups
// in listing and cluster-info aggregation.
const listDetailConcurrency = 5

// NewClient constructs the backend handle and validates connectivity with
// an immediate health check, failing fast if the backend is unreachable.
func NewClient(p Params) (*Client, error) {
	p.Logger.Info("Connecting to Qdrant", nil, map[string]interface{}{
		"endpoint": p.Config.Endpoint,
		"port":     p.Config.Port,
	})

	port := p.Config.Port
	if port == 0 {
		port = 6334
	}

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   p.Config.Endpoint,
		Port:                   port,
		APIKey:                 p.Config.ApiKey,
		SkipCompatibilityCheck: !p.Config.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize qdrant client: %w", err)
	}

	c := &Client{
		api:              newGrpcAPI(api),
		http:             &http.Client{Timeout: p.Config.Timeout},
		cfg:              p.Config,
		log:              p.Logger,
		started:          true,
		optimizePoll:     optimizePollInterval,
		optimizeDeadline: optimizeWaitDeadline,
	}

	if err := c.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant health check failed: %w", err)
	}

	p.Logger.Info("Qdrant client connected", nil, nil)
	return c, nil
}

// newClientWithAPI wires a handle around a substitute API implementation.
// Used by tests; production construction goes through NewClient.
func newClientWithAPI(api API, cfg *Config) *Client {
	return &Client{
		api:              api,
		http:             &http.Client{Timeout: cfg.Timeout},
		cfg:              cfg,
		log:              nopLogger{},
		started:          true,
		optimizePoll:     optimizePollInterval,
		optimizeDeadline: optimizeWaitDeadline,
	}
}

// DefaultCollection returns the configured fallback collection name.
func (c *Client) DefaultCollection() string {
	return c.cfg.DefaultCollection
}

// opCtx derives the per-call context carrying the uniform shared timeout.
func (c *Client) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.cfg.Timeout)
}

func (c *Client) healthCheck() error {
	if !c.started || c.api == nil {
		return fmt.Errorf("client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := c.api.HealthCheck(ctx); err != nil {
		return err
	}
	return nil
}

// Close shuts down the underlying gRPC connection when the API seam
// holds one. Idempotent.
func (c *Client) Close() error {
	if !c.started {
		return nil
	}
	c.started = false
	if closer, ok := c.api.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
