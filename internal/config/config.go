package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// StaticDir is served at the server root. Empty disables static serving.
	StaticDir              string `mapstructure:"static_dir"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the gateway implementation: "mongo" or "memory".
	Driver     string `mapstructure:"driver" validate:"required,oneof=mongo memory"`
	URI        string `mapstructure:"uri" validate:"required_if=Driver mongo"`
	Name       string `mapstructure:"name" validate:"required"`
	Collection string `mapstructure:"collection" validate:"required"`

	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" validate:"gt=0"`
	QueryTimeoutSeconds   int `mapstructure:"query_timeout_seconds" validate:"gt=0"`

	// FailFast makes startup abort when the database cannot be reached.
	// When false the server starts in degraded mode and every query route
	// answers with an error until it is restarted.
	FailFast bool `mapstructure:"fail_fast"`

	// SeedFile is a JSON array of documents loaded by the memory driver.
	SeedFile string `mapstructure:"seed_file"`
}
