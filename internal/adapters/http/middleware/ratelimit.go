package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/logging"
)

// RateLimit returns middleware that admits requests through a single
// service-wide token bucket. Rejected requests get a 429 problem response.
// A non-positive rps disables the limiter.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request rate limited")
				w.Header().Set("Retry-After", "1")
				dto.WriteErrorResponse(w, r, dto.ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
