package config

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	API        APIConfig        `mapstructure:"api"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains PostgreSQL settings. An empty URL selects the
// in-memory store.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"omitempty,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
}

// APIConfig shapes HTTP responses.
type APIConfig struct {
	// ValidationStatus is the status code used for validation problem responses.
	ValidationStatus int `mapstructure:"validation_status" validate:"oneof=400 422"`
}

// ValidationConfig selects validation profiles per operation.
type ValidationConfig struct {
	// PatchProfile is the profile applied to documents produced by PATCH.
	PatchProfile string `mapstructure:"patch_profile" validate:"oneof=manipulation update"`
}
