package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/companies-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig writes the non-sensitive parts of cfg. The database URI may carry
// credentials and is only reported as present.
func logConfig(l *slog.Logger, cfg *config.Config) {
	l.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"static_dir", cfg.Server.StaticDir)
	l.Debug("database configuration",
		"driver", cfg.Database.Driver,
		"database", cfg.Database.Name,
		"collection", cfg.Database.Collection,
		"uri_present", cfg.Database.URI != "",
		"fail_fast", cfg.Database.FailFast)
}
