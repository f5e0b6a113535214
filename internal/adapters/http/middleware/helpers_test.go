package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
)

const (
	testListID = "7a4c2d2e-3f5b-4c0e-9a51-2b8f7d9e1a01"
	testBpID   = "0c6a7e4d-91b2-4f3a-8d25-6e0f1b9c2a47"
	testItemID = "5e21b7c9-4d08-4a6f-b3e2-9f17c0d84a5b"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logEntries decodes JSON log lines keyed by message.
func logEntries(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()

	entries := make(map[string]map[string]any)
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("decoding log line %q: %v", sc.Text(), err)
		}
		msg, _ := e["msg"].(string)
		entries[msg] = e
	}
	return entries
}

// checklistRouter mounts h on a subset of the checklist API routes behind
// the given middleware.
func checklistRouter(h http.HandlerFunc, mws ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/lists", h)
		r.Post("/lists", h)
		r.Get("/lists/{id}", h)
		r.Patch("/lists/{id}/items/{itemId}", h)
		r.Post("/blueprints/{id}/materialize", h)
	})
	return r
}
