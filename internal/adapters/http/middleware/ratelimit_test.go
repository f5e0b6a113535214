package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/middleware"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rps       float64
		burst     int
		requests  int
		wantCodes []int
	}{
		{
			name:      "burst then reject",
			rps:       0.001,
			burst:     2,
			requests:  3,
			wantCodes: []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:      "disabled",
			rps:       0,
			requests:  3,
			wantCodes: []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := middleware.RateLimit(tt.rps, tt.burst)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			for i := range tt.requests {
				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", http.NoBody)
				handler.ServeHTTP(rec, req)

				if rec.Code != tt.wantCodes[i] {
					t.Errorf("request %d: status = %d, want %d", i, rec.Code, tt.wantCodes[i])
				}
			}
		})
	}
}

func TestRateLimit_ProblemResponse(t *testing.T) {
	t.Parallel()

	handler := middleware.RateLimit(0.001, 1)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", got)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
}
