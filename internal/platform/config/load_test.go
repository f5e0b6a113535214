package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-checklist-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Storage.Driver != "pgx" {
		t.Errorf("Storage.Driver = %q, want \"pgx\"", cfg.Storage.Driver)
	}
	if cfg.Storage.MaxOpenConns != 10 {
		t.Errorf("Storage.MaxOpenConns = %d, want 10", cfg.Storage.MaxOpenConns)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("Storage.Driver = %q, want \"sqlite\" (from base)", cfg.Storage.Driver)
	}
	if cfg.Storage.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Storage.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Storage.CircuitBreaker.MaxFailures)
	}
	if cfg.Display.DefaultItemSort != "todo_first" {
		t.Errorf("Display.DefaultItemSort = %q, want \"todo_first\" (from base)", cfg.Display.DefaultItemSort)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORAGE_CIRCUIT_BREAKER_MAX_FAILURES", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.CircuitBreaker.MaxFailures != 7 {
		t.Errorf("Storage.CircuitBreaker.MaxFailures = %d, want 7 (env override)",
			cfg.Storage.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvFileFillsUnsetVariables(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte("APP_DISPLAY_DEFAULT_ITEM_SORT=priority\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	t.Chdir("../../..")
	// Registers cleanup that restores the variable after godotenv sets it.
	t.Setenv("APP_DISPLAY_DEFAULT_ITEM_SORT", "")
	if err := os.Unsetenv("APP_DISPLAY_DEFAULT_ITEM_SORT"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	cfg, err := config.Load("local", config.WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Display.DefaultItemSort != "priority" {
		t.Errorf("Display.DefaultItemSort = %q, want \"priority\" (from env file)", cfg.Display.DefaultItemSort)
	}
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	t.Chdir("../../..")

	if _, err := config.Load("local", config.WithEnvFile("does-not-exist.env")); err != nil {
		t.Fatalf("Load error: %v", err)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_StorageAndDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "unknown driver", mutate: func(c *config.Config) { c.Storage.Driver = "mysql" }},
		{name: "empty dsn", mutate: func(c *config.Config) { c.Storage.DSN = "" }},
		{name: "sqlite with pool", mutate: func(c *config.Config) { c.Storage.MaxOpenConns = 4 }},
		{name: "negative cache", mutate: func(c *config.Config) { c.Storage.Cache.Size = -1 }},
		{name: "unknown item sort", mutate: func(c *config.Config) { c.Display.DefaultItemSort = "random" }},
		{name: "unknown list sort", mutate: func(c *config.Config) { c.Display.DefaultListSort = "usage" }},
		{name: "burst missing", mutate: func(c *config.Config) { c.Server.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 5 * time.Second,
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 10,
				Burst:             20,
			},
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Storage: config.StorageConfig{
			Driver:       "sqlite",
			DSN:          "file::memory:",
			MaxOpenConns: 1,
			Cache:        config.CacheConfig{Size: 16},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Display: config.DisplayConfig{
			DefaultItemSort:      "todo_first",
			DefaultListSort:      "name",
			DefaultBlueprintSort: "name",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
