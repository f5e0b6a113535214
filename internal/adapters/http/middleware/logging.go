package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-checklist-service/internal/platform/logging"
)

const blueprintRoutePrefix = "/api/v1/blueprints"

// Logging logs the start and completion of each checklist API request. The
// child logger it stores via logging.WithLogger carries the request and
// correlation IDs, so service log lines can be joined to the request.
//
// The completion line names the matched route and the resource ids taken
// from the URL. Server errors are logged at error level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", RedactHeaders(r.Header))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := append(resourceAttrs(r),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.bytesWritten),
				slog.Duration("duration", time.Since(start)),
			)
			child.LogAttrs(ctx, level, "request completed", attrs...)
		})
	}
}

// resourceAttrs describes the checklist resource a request addressed. The
// {id} parameter is logged as list_id or blueprint_id depending on the
// collection in the matched route. Outside a chi router only the method
// and path are known.
func resourceAttrs(r *http.Request) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	}

	route := routePattern(r)
	if route == "" {
		return attrs
	}
	attrs = append(attrs, slog.String("route", route))

	if id := chi.URLParam(r, "id"); id != "" {
		key := "list_id"
		if strings.HasPrefix(route, blueprintRoutePrefix) {
			key = "blueprint_id"
		}
		attrs = append(attrs, slog.String(key, id))
	}
	if id := chi.URLParam(r, "itemId"); id != "" {
		attrs = append(attrs, slog.String("item_id", id))
	}
	return attrs
}
