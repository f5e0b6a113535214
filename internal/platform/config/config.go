// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
// A .env file in the working directory, when present, is loaded into the
// process environment before the env layer is read.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Storage   StorageConfig   `koanf:"storage"`
	Display   DisplayConfig   `koanf:"display"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string          `koanf:"host"`
	Port           int             `koanf:"port"`
	ReadTimeout    time.Duration   `koanf:"read_timeout"`
	WriteTimeout   time.Duration   `koanf:"write_timeout"`
	IdleTimeout    time.Duration   `koanf:"idle_timeout"`
	RequestTimeout time.Duration   `koanf:"request_timeout"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig holds the inbound token-bucket settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StorageConfig holds repository settings. Driver is "sqlite" or "pgx".
type StorageConfig struct {
	Driver         string               `koanf:"driver"`
	DSN            string               `koanf:"dsn"`
	MaxOpenConns   int                  `koanf:"max_open_conns"`
	Cache          CacheConfig          `koanf:"cache"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CacheConfig holds the snapshot cache settings. A zero Size disables it.
type CacheConfig struct {
	Size int `koanf:"size"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// DisplayConfig holds the default orderings used when a request does not
// name one.
type DisplayConfig struct {
	DefaultItemSort      string `koanf:"default_item_sort"`
	DefaultListSort      string `koanf:"default_list_sort"`
	DefaultBlueprintSort string `koanf:"default_blueprint_sort"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
