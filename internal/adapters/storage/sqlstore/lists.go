package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

const listColumns = `id, name, details, created_at`

// QueryLists returns lists matching q with their items in insertion order,
// or without items when q.HeadersOnly is set.
func (s *Store) QueryLists(ctx context.Context, q ports.ListQuery) ([]checklist.List, error) {
	where, args := nameFilter(q.NameContains)

	order := `name_key, id`
	if q.Sort == ports.ListSortCreated {
		order = `created_at DESC, name_key`
	}

	lists, err := s.scanLists(ctx, `SELECT `+listColumns+` FROM lists`+where+` ORDER BY `+order, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "QueryLists", Err: err}
	}
	if len(lists) == 0 || q.HeadersOnly {
		return lists, nil
	}

	itemQuery := `SELECT id, list_id, name, done, priority FROM list_items`
	if where != "" {
		itemQuery += ` WHERE list_id IN (SELECT id FROM lists` + where + `)`
	}
	items, err := s.scanListItems(ctx, itemQuery+` ORDER BY list_id, position`, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "QueryLists", Err: err}
	}
	for i := range lists {
		lists[i].Items = items[lists[i].ID]
	}
	return lists, nil
}

// GetList returns the list with id and its items.
func (s *Store) GetList(ctx context.Context, id uuid.UUID) (*checklist.List, error) {
	lists, err := s.scanLists(ctx, `SELECT `+listColumns+` FROM lists WHERE id = ?`, id.String())
	if err != nil {
		return nil, &domain.PersistenceError{Op: "GetList", Err: err}
	}
	if len(lists) == 0 {
		return nil, notFound("list", id)
	}

	items, err := s.scanListItems(ctx,
		`SELECT id, list_id, name, done, priority FROM list_items WHERE list_id = ? ORDER BY position`,
		id.String(),
	)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "GetList", Err: err}
	}
	l := lists[0]
	l.Items = items[l.ID]
	return &l, nil
}

func (s *Store) scanLists(ctx context.Context, query string, args ...any) ([]checklist.List, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []checklist.List
	for rows.Next() {
		var (
			rawID     string
			l         checklist.List
			createdAt int64
		)
		if err := rows.Scan(&rawID, &l.Name, &l.Details, &createdAt); err != nil {
			return nil, err
		}
		if l.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("list id %q: %w", rawID, err)
		}
		l.CreatedAt = time.Unix(0, createdAt).UTC()
		l.State = checklist.StatePersisted
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (s *Store) scanListItems(ctx context.Context, query string, args ...any) (map[uuid.UUID][]checklist.ListItem, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]checklist.ListItem)
	for rows.Next() {
		var (
			rawID, rawListID string
			it               checklist.ListItem
			done, priority   int64
		)
		if err := rows.Scan(&rawID, &rawListID, &it.Name, &done, &priority); err != nil {
			return nil, err
		}
		if it.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("list item id %q: %w", rawID, err)
		}
		listID, err := uuid.Parse(rawListID)
		if err != nil {
			return nil, fmt.Errorf("list id %q: %w", rawListID, err)
		}
		it.Done = done != 0
		it.Priority = priority != 0
		items[listID] = append(items[listID], it)
	}
	return items, rows.Err()
}

// putList upserts the list row and replaces its item set.
func (s *Store) putList(ctx context.Context, tx querier, l *checklist.List) error {
	if _, err := tx.ExecContext(ctx, s.dialect.rebind(`
		INSERT INTO lists (id, name, name_key, details, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			name_key = excluded.name_key,
			details = excluded.details`),
		l.ID.String(), l.Name, naming.Key(l.Name), l.Details, l.CreatedAt.UTC().UnixNano(),
	); err != nil {
		return s.writeError(domain.ScopeList, l.Name, err)
	}

	if _, err := tx.ExecContext(ctx, s.dialect.rebind(`DELETE FROM list_items WHERE list_id = ?`), l.ID.String()); err != nil {
		return err
	}

	insert := s.dialect.rebind(`
		INSERT INTO list_items (id, list_id, name, name_key, done, priority, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	for pos, it := range l.Items {
		if _, err := tx.ExecContext(ctx, insert,
			it.ID.String(), l.ID.String(), it.Name, naming.Key(it.Name),
			boolToInt(it.Done), boolToInt(it.Priority), pos,
		); err != nil {
			return s.writeError(domain.ScopeListItem, it.Name, err)
		}
	}
	return nil
}

// writeError maps a unique violation to a name conflict.
func (s *Store) writeError(scope domain.NameScope, name string, err error) error {
	if isUniqueViolation(err) {
		return &domain.NameUnavailableError{Scope: scope, Name: name}
	}
	return err
}

// nameFilter returns a WHERE clause for a case-insensitive substring match.
func nameFilter(contains string) (string, []any) {
	key := naming.Key(contains)
	if key == "" {
		return "", nil
	}
	return ` WHERE name_key LIKE ? ESCAPE '\'`, []any{likePattern(key)}
}

func notFound(kind string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}
