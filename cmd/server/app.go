package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/companies-api/internal/config"
	"github.com/phrazzld/companies-api/internal/platform/metrics"
	"github.com/phrazzld/companies-api/internal/store"
)

// application holds the shared dependencies of the server and ensures proper
// cleanup on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	gateway store.Gateway
	metrics *metrics.Metrics
}

// newApplication opens the database gateway. The HTTP listener is not started
// until Run, so no request can arrive before the gateway exists.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	gw, err := setupGateway(ctx, cfg.Database, logger.With("component", "database"))
	if err != nil {
		return nil, err
	}

	return &application{
		config:  cfg,
		logger:  logger,
		gateway: gw,
		metrics: metrics.New(),
	}, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.gateway == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.gateway.Close(ctx); err != nil {
		app.logger.Error("failed to close database gateway", "error", err)
		return
	}
	app.logger.Info("database gateway closed")
}
