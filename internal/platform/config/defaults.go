package config

import "time"

const (
	defaultServerPort = 8080

	defaultStorageDriver = "sqlite"
	defaultCacheSize     = 256

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50
	defaultRateLimitBurst = 100
)

// defaultConfig returns the values every layer starts from. Keys missing
// from base.yaml, the profile file and the environment keep these values.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           defaultServerPort,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: defaultRateLimitRPS,
				Burst:             defaultRateLimitBurst,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Storage: StorageConfig{
			Driver:       defaultStorageDriver,
			DSN:          "file:checklists.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
			MaxOpenConns: 1,
			Cache:        CacheConfig{Size: defaultCacheSize},
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures:   defaultCircuitBreakerMaxFailures,
				Timeout:       30 * time.Second,
				HalfOpenLimit: defaultCircuitBreakerHalfOpen,
			},
		},
		Display: DisplayConfig{
			DefaultItemSort:      "todo_first",
			DefaultListSort:      "name",
			DefaultBlueprintSort: "name",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "checklist-service",
		},
	}
}
