package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

const blueprintColumns = `id, name, details, usage_count`

// QueryBlueprints returns blueprints matching q with their items in
// insertion order.
func (s *Store) QueryBlueprints(ctx context.Context, q ports.BlueprintQuery) ([]checklist.Blueprint, error) {
	where, args := nameFilter(q.NameContains)

	order := `name_key, id`
	if q.Sort == ports.BlueprintSortUsage {
		order = `usage_count DESC, name_key`
	}

	bps, err := s.scanBlueprints(ctx, `SELECT `+blueprintColumns+` FROM blueprints`+where+` ORDER BY `+order, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "QueryBlueprints", Err: err}
	}
	if len(bps) == 0 || q.HeadersOnly {
		return bps, nil
	}

	itemQuery := `SELECT id, blueprint_id, name, priority FROM blueprint_items`
	if where != "" {
		itemQuery += ` WHERE blueprint_id IN (SELECT id FROM blueprints` + where + `)`
	}
	items, err := s.scanBlueprintItems(ctx, itemQuery+` ORDER BY blueprint_id, position`, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "QueryBlueprints", Err: err}
	}
	for i := range bps {
		bps[i].Items = items[bps[i].ID]
	}
	return bps, nil
}

// GetBlueprint returns the blueprint with id and its items.
func (s *Store) GetBlueprint(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error) {
	bps, err := s.scanBlueprints(ctx, `SELECT `+blueprintColumns+` FROM blueprints WHERE id = ?`, id.String())
	if err != nil {
		return nil, &domain.PersistenceError{Op: "GetBlueprint", Err: err}
	}
	if len(bps) == 0 {
		return nil, notFound("blueprint", id)
	}

	items, err := s.scanBlueprintItems(ctx,
		`SELECT id, blueprint_id, name, priority FROM blueprint_items WHERE blueprint_id = ? ORDER BY position`,
		id.String(),
	)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "GetBlueprint", Err: err}
	}
	bp := bps[0]
	bp.Items = items[bp.ID]
	return &bp, nil
}

func (s *Store) scanBlueprints(ctx context.Context, query string, args ...any) ([]checklist.Blueprint, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bps []checklist.Blueprint
	for rows.Next() {
		var (
			rawID string
			bp    checklist.Blueprint
			usage int64
		)
		if err := rows.Scan(&rawID, &bp.Name, &bp.Details, &usage); err != nil {
			return nil, err
		}
		if bp.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("blueprint id %q: %w", rawID, err)
		}
		bp.UsageCount = int(usage)
		bp.State = checklist.StatePersisted
		bps = append(bps, bp)
	}
	return bps, rows.Err()
}

func (s *Store) scanBlueprintItems(ctx context.Context, query string, args ...any) (map[uuid.UUID][]checklist.BlueprintItem, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]checklist.BlueprintItem)
	for rows.Next() {
		var (
			rawID, rawBlueprintID string
			it                    checklist.BlueprintItem
			priority              int64
		)
		if err := rows.Scan(&rawID, &rawBlueprintID, &it.Name, &priority); err != nil {
			return nil, err
		}
		if it.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("blueprint item id %q: %w", rawID, err)
		}
		bpID, err := uuid.Parse(rawBlueprintID)
		if err != nil {
			return nil, fmt.Errorf("blueprint id %q: %w", rawBlueprintID, err)
		}
		it.Priority = priority != 0
		items[bpID] = append(items[bpID], it)
	}
	return items, rows.Err()
}

// putBlueprint upserts the blueprint row and replaces its item set.
func (s *Store) putBlueprint(ctx context.Context, tx querier, bp *checklist.Blueprint) error {
	if _, err := tx.ExecContext(ctx, s.dialect.rebind(`
		INSERT INTO blueprints (id, name, name_key, details, usage_count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			name_key = excluded.name_key,
			details = excluded.details,
			usage_count = excluded.usage_count`),
		bp.ID.String(), bp.Name, naming.Key(bp.Name), bp.Details, bp.UsageCount,
	); err != nil {
		return s.writeError(domain.ScopeBlueprint, bp.Name, err)
	}

	if _, err := tx.ExecContext(ctx, s.dialect.rebind(`DELETE FROM blueprint_items WHERE blueprint_id = ?`), bp.ID.String()); err != nil {
		return err
	}

	insert := s.dialect.rebind(`
		INSERT INTO blueprint_items (id, blueprint_id, name, name_key, priority, position)
		VALUES (?, ?, ?, ?, ?, ?)`)
	for pos, it := range bp.Items {
		if _, err := tx.ExecContext(ctx, insert,
			it.ID.String(), bp.ID.String(), it.Name, naming.Key(it.Name), boolToInt(it.Priority), pos,
		); err != nil {
			return s.writeError(domain.ScopeBlueprintItem, it.Name, err)
		}
	}
	return nil
}
