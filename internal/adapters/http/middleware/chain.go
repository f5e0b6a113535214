package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-checklist-service/internal/platform/telemetry"
)

// Options configures the standard checklist API pipeline.
type Options struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics // nil disables request metrics

	// RequestsPerSecond <= 0 disables rate limiting.
	RequestsPerSecond float64
	Burst             int

	// RequestTimeout <= 0 leaves requests without a deadline.
	RequestTimeout time.Duration
}

// Standard returns the checklist API pipeline as one middleware, composed
// in the order documented on the package.
func Standard(o Options) func(http.Handler) http.Handler {
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(o.Metrics),
		Logging(logger),
		RateLimit(o.RequestsPerSecond, o.Burst),
	}
	if o.RequestTimeout > 0 {
		mws = append(mws, Timeout(o.RequestTimeout))
	}
	return Chain(mws...)
}

// Chain composes middlewares so that the first argument is outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
