package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. COMPANIES_SERVER_PORT.
const EnvPrefix = "COMPANIES"

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.static_dir", "public")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.driver", "mongo")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "companiesDB")
	v.SetDefault("database.collection", "companies")
	v.SetDefault("database.connect_timeout_seconds", 10)
	v.SetDefault("database.query_timeout_seconds", 30)
	v.SetDefault("database.fail_fast", true)
	v.SetDefault("database.seed_file", "")
}

// bindEnv registers every key explicitly so Unmarshal sees environment
// values for keys that have no default and no config file entry.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"server.static_dir",
		"server.shutdown_timeout_seconds",
		"database.driver",
		"database.uri",
		"database.name",
		"database.collection",
		"database.connect_timeout_seconds",
		"database.query_timeout_seconds",
		"database.fail_fast",
		"database.seed_file",
	} {
		_ = v.BindEnv(key)
	}
}
