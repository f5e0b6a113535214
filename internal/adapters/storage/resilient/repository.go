// Package resilient guards a checklist repository with a circuit breaker,
// OpenTelemetry spans and store latency metrics.
//
// The decorator never retries. A write that fails is reported once and the
// caller decides whether to resubmit the whole batch.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// Name is the health check identifier reported by Repository.
const Name = "checklist-store"

// Compile-time interface checks.
var (
	_ ports.ChecklistRepository = (*Repository)(nil)
	_ ports.HealthChecker       = (*Repository)(nil)
)

// Pinger is implemented by stores that can verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repository decorates another repository. Only persistence failures count
// toward tripping the breaker; not-found, conflict and validation results
// are normal answers.
type Repository struct {
	next    ports.ChecklistRepository
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps next. If metrics is nil, metric recording is skipped.
func New(next ports.ChecklistRepository, cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Repository {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        Name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Repository{
		next:    next,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	return !errors.Is(err, domain.ErrPersistence)
}

// QueryLists delegates through the breaker.
func (r *Repository) QueryLists(ctx context.Context, q ports.ListQuery) ([]checklist.List, error) {
	return call(ctx, r, "QueryLists", func(ctx context.Context) ([]checklist.List, error) {
		return r.next.QueryLists(ctx, q)
	})
}

// QueryBlueprints delegates through the breaker.
func (r *Repository) QueryBlueprints(ctx context.Context, q ports.BlueprintQuery) ([]checklist.Blueprint, error) {
	return call(ctx, r, "QueryBlueprints", func(ctx context.Context) ([]checklist.Blueprint, error) {
		return r.next.QueryBlueprints(ctx, q)
	})
}

// GetList delegates through the breaker.
func (r *Repository) GetList(ctx context.Context, id uuid.UUID) (*checklist.List, error) {
	return call(ctx, r, "GetList", func(ctx context.Context) (*checklist.List, error) {
		return r.next.GetList(ctx, id)
	}, attribute.String("checklist.id", id.String()))
}

// GetBlueprint delegates through the breaker.
func (r *Repository) GetBlueprint(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error) {
	return call(ctx, r, "GetBlueprint", func(ctx context.Context) (*checklist.Blueprint, error) {
		return r.next.GetBlueprint(ctx, id)
	}, attribute.String("checklist.id", id.String()))
}

// Save delegates through the breaker.
func (r *Repository) Save(ctx context.Context, b *ports.Batch) error {
	size := 0
	if b != nil {
		size = b.Len()
	}
	_, err := call(ctx, r, "Save", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.next.Save(ctx, b)
	}, attribute.Int("batch.size", size))
	return err
}

// Delete delegates through the breaker.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := call(ctx, r, "Delete", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.next.Delete(ctx, id)
	}, attribute.String("checklist.id", id.String()))
	return err
}

// Name returns the health check identifier.
func (r *Repository) Name() string { return Name }

// HealthCheck reports breaker state and, while the breaker is closed, pings
// the underlying store when it supports it.
func (r *Repository) HealthCheck(ctx context.Context) error {
	switch state := r.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", Name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", Name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", Name, state)
	}

	if p, ok := r.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close closes the underlying store when it supports it.
func (r *Repository) Close() error {
	if c, ok := r.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// call runs fn inside the breaker and a span, and records its duration.
// Breaker rejections are reported as persistence failures.
func call[T any](ctx context.Context, r *Repository, op string, fn func(context.Context) (T, error), attrs ...attribute.KeyValue) (T, error) {
	start := time.Now()

	ctx, span := otel.GetTracerProvider().Tracer("checklist-store").Start(ctx, "store "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, attribute.String("db.operation", op))...),
	)
	defer span.End()

	var out T
	_, err := r.breaker.Execute(func() (struct{}, error) {
		var callErr error
		out, callErr = fn(ctx)
		return struct{}{}, callErr
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = &domain.PersistenceError{Op: op, Err: err}
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, domain.ErrPersistence) {
			r.logger.ErrorContext(ctx, "store call failed",
				slog.String("operation", op),
				slog.Any("error", err),
			)
		}
	}
	r.metrics.RecordStoreCall(ctx, op, time.Since(start).Seconds(), err)

	return out, err
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
