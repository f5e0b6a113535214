package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		requestID     string
		correlationID string
		want          string
	}{
		{
			name:          "caller correlation id wins",
			requestID:     "req-1",
			correlationID: "corr-packing",
			want:          "corr-packing",
		},
		{
			name:      "falls back to request id",
			requestID: "req-2",
			want:      "req-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			h := checklistRouter(func(_ http.ResponseWriter, r *http.Request) {
				gotID = middleware.CorrelationIDFromContext(r.Context())
			}, middleware.RequestID(), middleware.CorrelationID())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/blueprints/"+testBpID+"/materialize", http.NoBody)
			req.Header.Set("X-Request-ID", tt.requestID)
			if tt.correlationID != "" {
				req.Header.Set("X-Correlation-ID", tt.correlationID)
			}
			h.ServeHTTP(rec, req)

			if gotID != tt.want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, tt.want)
			}
			if respID := rec.Header().Get("X-Correlation-ID"); respID != tt.want {
				t.Errorf("response X-Correlation-ID = %q, want %q", respID, tt.want)
			}
		})
	}
}

func TestCorrelationIDFromContext(t *testing.T) {
	t.Parallel()

	if got := middleware.CorrelationIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context: CorrelationIDFromContext = %q, want empty", got)
	}
	ctx := middleware.WithCorrelationID(context.Background(), "corr-7")
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-7" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "corr-7")
	}
}
