package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

const testUpdatedValue = "Updated"

var (
	testTime     = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testListID   = uuid.MustParse("7a4c2d2e-3f5b-4c0e-9a51-2b8f7d9e1a01")
	testBpID     = uuid.MustParse("7a4c2d2e-3f5b-4c0e-9a51-2b8f7d9e1a02")
	testItemID   = uuid.MustParse("7a4c2d2e-3f5b-4c0e-9a51-2b8f7d9e1a03")
	testDefaults = handlers.Defaults{
		ItemSort:      checklist.TodoFirst,
		ListSort:      string(ports.ListSortName),
		BlueprintSort: string(ports.BlueprintSortName),
	}
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validList() *checklist.List {
	return &checklist.List{
		ID:        testListID,
		Header:    checklist.Header{Name: "Groceries", Details: "weekly"},
		CreatedAt: testTime,
		Items: []checklist.ListItem{
			{ID: testItemID, Name: "milk", Done: true},
			{ID: uuid.New(), Name: "bread"},
		},
		State: checklist.StatePersisted,
	}
}

func validBlueprint() *checklist.Blueprint {
	return &checklist.Blueprint{
		ID:         testBpID,
		Header:     checklist.Header{Name: "Chores"},
		UsageCount: 2,
		Items: []checklist.BlueprintItem{
			{ID: testItemID, Name: "Vacuum"},
			{ID: uuid.New(), Name: "Dishes", Priority: true},
		},
		State: checklist.StatePersisted,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
