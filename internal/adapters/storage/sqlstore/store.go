// Package sqlstore implements ports.ChecklistRepository on database/sql.
//
// Two drivers are supported: "sqlite" (modernc.org/sqlite, pure Go, the
// default for local use and tests) and "pgx" (github.com/jackc/pgx/v5/stdlib
// for PostgreSQL). Queries are written once with ? placeholders and rebound
// for the active driver. Every Save runs in a single transaction.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Compile-time interface check.
var _ ports.ChecklistRepository = (*Store)(nil)

// Store is a SQL-backed checklist repository. It is safe for concurrent use.
type Store struct {
	db      *sql.DB
	dialect dialect
	logger  *slog.Logger
}

// Options configures Open.
type Options struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	Logger       *slog.Logger
}

// Open connects to the database, verifies the connection and applies all
// pending migrations.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if _, err := dialectFor(opts.Driver); err != nil {
		return nil, err
	}

	db, err := sql.Open(opts.Driver, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", opts.Driver, err)
	}

	maxOpen := opts.MaxOpenConns
	if opts.Driver == DriverSQLite || maxOpen < 1 {
		// SQLite allows a single writer; one connection also keeps an
		// in-memory database alive for the life of the pool.
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", opts.Driver, err)
	}

	s, err := New(db, opts.Driver, opts.Logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if opts.Driver == DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enabling foreign keys: %w", err)
		}
	}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection pool opened with driver. It does not run
// migrations.
func New(db *sql.DB, driver string, logger *slog.Logger) (*Store, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, dialect: d, logger: logger}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &domain.PersistenceError{Op: "Ping", Err: err}
	}
	return nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// inTx runs fn in a transaction, committing on success and rolling back on
// any error.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.ErrorContext(ctx, "rollback failed",
					slog.String("operation", "Store.inTx"),
					slog.Any("error", rbErr),
				)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
