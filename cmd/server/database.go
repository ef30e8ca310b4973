package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/companies-api/internal/config"
	"github.com/phrazzld/companies-api/internal/platform/memory"
	"github.com/phrazzld/companies-api/internal/platform/mongo"
	"github.com/phrazzld/companies-api/internal/redact"
	"github.com/phrazzld/companies-api/internal/store"
)

// setupGateway opens the configured database gateway. When the database is
// unreachable and fail-fast is off, it logs the failure and returns a gateway
// that rejects every call instead of an error.
func setupGateway(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Gateway, error) {
	gw, err := openGateway(ctx, cfg, logger)
	if err == nil {
		return gw, nil
	}
	if cfg.FailFast {
		return nil, err
	}
	logger.Error("database unavailable, serving in degraded mode",
		"driver", cfg.Driver,
		"error", redact.Error(err))
	return store.Unavailable(err), nil
}

func openGateway(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Gateway, error) {
	switch cfg.Driver {
	case "memory":
		var docs []store.Document
		if cfg.SeedFile != "" {
			var err error
			docs, err = memory.LoadFile(cfg.SeedFile)
			if err != nil {
				return nil, fmt.Errorf("failed to seed memory collection: %w", err)
			}
		}
		coll := memory.NewCollection(cfg.Collection, docs...)
		logger.Info("memory collection ready",
			"collection", cfg.Collection,
			"documents", coll.Len())
		return coll, nil

	case "mongo":
		gw, err := mongo.Connect(ctx, mongo.Options{
			URI:            cfg.URI,
			Database:       cfg.Name,
			Collection:     cfg.Collection,
			ConnectTimeout: time.Duration(cfg.ConnectTimeoutSeconds) * time.Second,
			QueryTimeout:   time.Duration(cfg.QueryTimeoutSeconds) * time.Second,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return gw, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
