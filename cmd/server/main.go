// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-checklist-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/storage/cache"
	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/storage/resilient"
	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/storage/sqlstore"

	"github.com/jsamuelsen11/go-checklist-service/internal/app"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/health"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*resilient.Repository](injector)
	registry.Register(store)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then close the store.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlstore.Store, error) {
		return sqlstore.Open(ctx, sqlstore.Options{
			Driver:       cfg.Storage.Driver,
			DSN:          cfg.Storage.DSN,
			MaxOpenConns: cfg.Storage.MaxOpenConns,
			Logger:       logger,
		})
	})

	do.Provide(injector, func(i do.Injector) (*resilient.Repository, error) {
		store := do.MustInvoke[*sqlstore.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return resilient.New(store, cfg.Storage.CircuitBreaker, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ChecklistRepository, error) {
		repo := do.MustInvoke[*resilient.Repository](i)
		if cfg.Storage.Cache.Size == 0 {
			return repo, nil
		}
		return cache.New(repo, cfg.Storage.Cache.Size)
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		repo := do.MustInvoke[ports.ChecklistRepository](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewListService(repo, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BlueprintService, error) {
		repo := do.MustInvoke[ports.ChecklistRepository](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewBlueprintService(repo, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (handlers.Defaults, error) {
		itemSort, err := checklist.ParseStrategy(cfg.Display.DefaultItemSort, checklist.TodoFirst)
		if err != nil {
			return handlers.Defaults{}, fmt.Errorf("display.default_item_sort: %w", err)
		}
		return handlers.Defaults{
			ItemSort:      itemSort,
			ListSort:      cfg.Display.DefaultListSort,
			BlueprintSort: cfg.Display.DefaultBlueprintSort,
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ListHandler, error) {
		svc := do.MustInvoke[ports.ListService](i)
		return handlers.NewListHandler(svc, do.MustInvoke[handlers.Defaults](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BlueprintHandler, error) {
		svc := do.MustInvoke[ports.BlueprintService](i)
		return handlers.NewBlueprintHandler(svc, do.MustInvoke[handlers.Defaults](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, sqlstore.SchemaVersion()), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		listH := do.MustInvoke[*handlers.ListHandler](i)
		blueprintH := do.MustInvoke[*handlers.BlueprintHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(listH, blueprintH, healthH,
			middleware.Standard(middleware.Options{
				Logger:            logger,
				Metrics:           metrics,
				RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
				Burst:             cfg.Server.RateLimit.Burst,
				RequestTimeout:    cfg.Server.RequestTimeout,
			}),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		store, _ := do.MustInvoke[ports.ChecklistRepository](i).(io.Closer)
		return adapthttp.NewServer(cfg.Server, handler, store, logger), nil
	})
}
