package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-checklist-service/internal/adapters/storage/sqlstore"
)

var fixedNow = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock() Option {
	return WithClock(func() time.Time { return fixedNow })
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func newStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	s, err := sqlstore.Open(context.Background(), sqlstore.Options{
		Driver: sqlstore.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "app.db"),
		Logger: discardLogger(),
	})
	if err != nil {
		t.Fatalf("sqlstore.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newServices(t *testing.T) (*ListService, *BlueprintService) {
	t.Helper()
	store := newStore(t)
	return NewListService(store, nil, discardLogger(), fixedClock()),
		NewBlueprintService(store, nil, discardLogger(), fixedClock())
}
