package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/middleware"
)

func TestTimeout_FastHandlerResponsePassesThrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/lists/"+testListID)
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"name":"Groceries"}`))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"name":"Groceries"}`,
			wantHeader: "/api/v1/lists/" + testListID,
		},
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"lists":[]}`))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"lists":[]}`,
		},
		{
			name: "no content",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := middleware.Timeout(time.Second)(tt.handler)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/lists", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("Location"); got != tt.wantHeader {
				t.Errorf("Location = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestTimeout_SlowHandlerGetsProblemResponse(t *testing.T) {
	t.Parallel()

	lateWrite := make(chan error, 1)
	h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		<-r.Context().Done()
		// Give the timeout path time to expire the buffer.
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte(`{"lists":[]}`))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/lists", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body["detail"] != "request timed out" {
		t.Errorf("detail = %v, want %q", body["detail"], "request timed out")
	}

	select {
	case err := <-lateWrite:
		if !errors.Is(err, http.ErrHandlerTimeout) {
			t.Errorf("late Write() error = %v, want http.ErrHandlerTimeout", err)
		}
	case <-time.After(time.Second):
		t.Fatal("handler never attempted its late write")
	}
}

func TestTimeout_ContextCarriesDeadline(t *testing.T) {
	t.Parallel()

	var remaining time.Duration
	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if dl, ok := r.Context().Deadline(); ok {
			remaining = time.Until(dl)
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/lists/"+testListID, http.NoBody))

	if remaining <= 0 || remaining > time.Second {
		t.Errorf("remaining deadline = %v, want within (0, 1s]", remaining)
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Chain(
		middleware.Recovery(jsonLogger(&buf)),
		middleware.Timeout(time.Second),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("blueprint without items")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blueprints/"+testBpID+"/materialize", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if e := logEntries(t, &buf)["panic recovered"]; e["panic"] != "blueprint without items" {
		t.Errorf("panic log entry = %v", e)
	}
}
