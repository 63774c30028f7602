package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	Freshness FreshnessConfig `mapstructure:"freshness"`
	Query     QueryConfig     `mapstructure:"query"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Stream    StreamConfig    `mapstructure:"stream"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatabaseConfig selects the storage engine behind the log store and the catalog.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" validate:"required,oneof=sqlite postgres"`
	DSN             string        `mapstructure:"dsn" validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0s"`
}

// AuthConfig holds the shared ingestion secret. Prefer DSTAT_AUTH_SHARED_SECRET over the file.
type AuthConfig struct {
	SharedSecret string `mapstructure:"shared_secret" validate:"required"`
}

// FreshnessConfig holds the staleness threshold used to derive liveness.
type FreshnessConfig struct {
	StaleThreshold time.Duration `mapstructure:"stale_threshold" validate:"gte=0s"`
}

// QueryConfig bounds the recent window read for a server.
type QueryConfig struct {
	WindowLimit int `mapstructure:"window_limit" validate:"min=1,max=1000"`
}

// CatalogConfig points at an optional YAML file used to seed the servers table on startup.
type CatalogConfig struct {
	SeedFile string `mapstructure:"seed_file"`
}

// StreamConfig sizes the report stream queue.
type StreamConfig struct {
	Partitions int `mapstructure:"partitions" validate:"min=1,max=256"`
	Buffer     int `mapstructure:"buffer" validate:"min=1"`
}
