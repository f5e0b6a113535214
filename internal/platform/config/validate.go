package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Storage.validate(),
		c.Display.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit.requests_per_second must be >= 0, got %v",
			s.RateLimit.RequestsPerSecond))
	}
	if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("server.rate_limit.burst must be >= 1 when limiting, got %d", s.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StorageConfig) validate() error {
	var errs []error

	switch st.Driver {
	case "sqlite", "pgx":
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: sqlite, pgx; got %q", st.Driver))
	}
	if st.DSN == "" {
		errs = append(errs, errors.New("storage.dsn must not be empty"))
	}
	if st.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("storage.max_open_conns must be >= 1, got %d", st.MaxOpenConns))
	}
	if st.Driver == "sqlite" && st.MaxOpenConns != 1 {
		errs = append(errs, fmt.Errorf("storage.max_open_conns must be 1 for sqlite, got %d", st.MaxOpenConns))
	}
	if st.Cache.Size < 0 {
		errs = append(errs, fmt.Errorf("storage.cache.size must be >= 0, got %d", st.Cache.Size))
	}
	if st.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("storage.circuit_breaker.max_failures must be >= 1, got %d",
			st.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (d *DisplayConfig) validate() error {
	var errs []error

	switch d.DefaultItemSort {
	case "done_first", "todo_first", "done_last", "alphabetic", "priority":
		// Valid item strategies.
	default:
		errs = append(errs, fmt.Errorf(
			"display.default_item_sort must be one of: done_first, todo_first, done_last, alphabetic, priority; got %q",
			d.DefaultItemSort))
	}

	switch d.DefaultListSort {
	case "name", "created":
		// Valid list orderings.
	default:
		errs = append(errs, fmt.Errorf("display.default_list_sort must be one of: name, created; got %q", d.DefaultListSort))
	}

	switch d.DefaultBlueprintSort {
	case "name", "usage":
		// Valid blueprint orderings.
	default:
		errs = append(errs, fmt.Errorf("display.default_blueprint_sort must be one of: name, usage; got %q",
			d.DefaultBlueprintSort))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
