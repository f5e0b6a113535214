package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// migration is one forward-only schema step. Steps only add tables or
// columns with defaults, so rows written by older versions load unchanged.
type migration struct {
	version     int
	description string
	statements  []string
}

var migrations = []migration{
	{
		version:     1,
		description: "base tables",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS lists (
				id         TEXT PRIMARY KEY,
				name       TEXT NOT NULL,
				name_key   TEXT NOT NULL,
				details    TEXT NOT NULL DEFAULT '',
				created_at BIGINT NOT NULL
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_lists_name_key ON lists(name_key)`,
			`CREATE TABLE IF NOT EXISTS list_items (
				id       TEXT PRIMARY KEY,
				list_id  TEXT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
				name     TEXT NOT NULL,
				name_key TEXT NOT NULL,
				done     INTEGER NOT NULL DEFAULT 0,
				position INTEGER NOT NULL
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_list_items_name_key ON list_items(list_id, name_key)`,
			`CREATE TABLE IF NOT EXISTS blueprints (
				id       TEXT PRIMARY KEY,
				name     TEXT NOT NULL,
				name_key TEXT NOT NULL,
				details  TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_blueprints_name_key ON blueprints(name_key)`,
			`CREATE TABLE IF NOT EXISTS blueprint_items (
				id           TEXT PRIMARY KEY,
				blueprint_id TEXT NOT NULL REFERENCES blueprints(id) ON DELETE CASCADE,
				name         TEXT NOT NULL,
				name_key     TEXT NOT NULL,
				position     INTEGER NOT NULL
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_blueprint_items_name_key ON blueprint_items(blueprint_id, name_key)`,
		},
	},
	{
		version:     2,
		description: "item priority",
		statements: []string{
			`ALTER TABLE list_items ADD COLUMN priority INTEGER NOT NULL DEFAULT 0`,
			`ALTER TABLE blueprint_items ADD COLUMN priority INTEGER NOT NULL DEFAULT 0`,
		},
	},
	{
		version:     3,
		description: "blueprint usage count",
		statements: []string{
			`ALTER TABLE blueprints ADD COLUMN usage_count INTEGER NOT NULL DEFAULT 0`,
		},
	},
}

// SchemaVersion is the version Migrate brings the database to.
func SchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// Migrate applies every pending migration. Each step runs in its own
// transaction together with its schema_migrations row.
func (s *Store) Migrate(ctx context.Context) error {
	return s.migrateTo(ctx, SchemaVersion())
}

func (s *Store) migrateTo(ctx context.Context, target int) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at BIGINT NOT NULL
	)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	current, err := s.currentVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current || m.version > target {
			continue
		}
		err := s.inTx(ctx, func(tx *sql.Tx) error {
			for _, stmt := range m.statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			_, err := tx.ExecContext(ctx,
				s.dialect.rebind(`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`),
				m.version, time.Now().UTC().UnixNano(),
			)
			return err
		})
		if err != nil {
			return fmt.Errorf("applying migration %d (%s): %w", m.version, m.description, err)
		}
		s.logger.InfoContext(ctx, "applied migration",
			slog.Int("version", m.version),
			slog.String("description", m.description),
		)
	}
	return nil
}

func (s *Store) currentVersion(ctx context.Context) (int, error) {
	var v sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return int(v.Int64), nil
}
