package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/logging"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mws  []string
		want []string
	}{
		{
			name: "empty",
			want: []string{"handler"},
		},
		{
			name: "outermost first",
			mws:  []string{"recovery", "request-id", "logging"},
			want: []string{
				"recovery:before", "request-id:before", "logging:before",
				"handler",
				"logging:after", "request-id:after", "recovery:after",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var order []string
			mws := make([]func(http.Handler) http.Handler, 0, len(tt.mws))
			for _, name := range tt.mws {
				mws = append(mws, func(next http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						order = append(order, name+":before")
						next.ServeHTTP(w, r)
						order = append(order, name+":after")
					})
				})
			}

			h := middleware.Chain(mws...)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusOK)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/lists", http.NoBody))

			if len(order) != len(tt.want) {
				t.Fatalf("order = %v, want %v", order, tt.want)
			}
			for i := range order {
				if order[i] != tt.want[i] {
					t.Errorf("order[%d] = %q, want %q", i, order[i], tt.want[i])
				}
			}
		})
	}
}

func TestStandard_ChecklistRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var hasDeadline, hasLogger bool
	h := checklistRouter(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		hasLogger = logging.FromContext(r.Context()) != nil
		if middleware.RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID not in context")
		}
		w.WriteHeader(http.StatusOK)
	}, middleware.Standard(middleware.Options{
		Logger:            jsonLogger(&buf),
		RequestsPerSecond: 100,
		Burst:             10,
		RequestTimeout:    5 * time.Second,
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists/"+testListID, http.NoBody)
	req.Header.Set("X-Correlation-ID", "corr-weekly-shop")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "corr-weekly-shop" {
		t.Errorf("X-Correlation-ID = %q, want %q", got, "corr-weekly-shop")
	}
	if !hasDeadline || !hasLogger {
		t.Errorf("deadline = %v, logger = %v, want both set", hasDeadline, hasLogger)
	}

	done := logEntries(t, &buf)["request completed"]
	if done["list_id"] != testListID || done["correlation_id"] != "corr-weekly-shop" {
		t.Errorf("completion entry = %v", done)
	}
}

func TestStandard_OptionalStages(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := checklistRouter(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	}, middleware.Standard(middleware.Options{}))

	for i := range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists", http.NoBody))
		if rec.Code != http.StatusOK {
			t.Errorf("request %d: status = %d, want 200 with rate limiting off", i, rec.Code)
		}
	}
	if hasDeadline {
		t.Error("request has a deadline, want none when RequestTimeout is zero")
	}
}

func TestStandard_RecoversPanics(t *testing.T) {
	t.Parallel()

	h := checklistRouter(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}, middleware.Standard(middleware.Options{Logger: discardLogger(), RequestTimeout: time.Second}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/lists", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID missing on recovered response")
	}
}
