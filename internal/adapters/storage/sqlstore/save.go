package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// Save applies every mutation of b in one transaction.
func (s *Store) Save(ctx context.Context, b *ports.Batch) error {
	if b == nil || b.Len() == 0 {
		return nil
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		for i, m := range b.Mutations {
			if err := s.apply(ctx, tx, m); err != nil {
				return fmt.Errorf("mutation %d: %w", i, err)
			}
		}
		return nil
	})
	return s.classify("Save", err)
}

// Delete removes a list or blueprint with all of its items, or a single
// item of either kind.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		return s.deleteByID(ctx, tx, id)
	})
	return s.classify("Delete", err)
}

func (s *Store) apply(ctx context.Context, tx querier, m ports.Mutation) error {
	switch m.Kind {
	case ports.MutationPutList:
		if m.List == nil {
			return errors.New("put list without a list")
		}
		return s.putList(ctx, tx, m.List)
	case ports.MutationPutBlueprint:
		if m.Blueprint == nil {
			return errors.New("put blueprint without a blueprint")
		}
		return s.putBlueprint(ctx, tx, m.Blueprint)
	case ports.MutationDelete:
		return s.deleteByID(ctx, tx, m.ID)
	default:
		return fmt.Errorf("unknown mutation kind %d", m.Kind)
	}
}

// deleteByID tries containers first, then items. Children are removed
// explicitly so the cascade does not depend on foreign key enforcement.
func (s *Store) deleteByID(ctx context.Context, tx querier, id uuid.UUID) error {
	steps := [][]string{
		{`DELETE FROM list_items WHERE list_id = ?`, `DELETE FROM lists WHERE id = ?`},
		{`DELETE FROM blueprint_items WHERE blueprint_id = ?`, `DELETE FROM blueprints WHERE id = ?`},
		{`DELETE FROM list_items WHERE id = ?`},
		{`DELETE FROM blueprint_items WHERE id = ?`},
	}

	for _, step := range steps {
		var affected int64
		for _, stmt := range step {
			res, err := tx.ExecContext(ctx, s.dialect.rebind(stmt), id.String())
			if err != nil {
				return err
			}
			// Only the last statement of a step decides whether id matched.
			if affected, err = res.RowsAffected(); err != nil {
				return err
			}
		}
		if affected > 0 {
			return nil
		}
	}
	return notFound("entity", id)
}

// classify leaves domain conflicts and not-found errors untouched and wraps
// everything else as a persistence failure.
func (s *Store) classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrNotFound):
		return err
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	default:
		return &domain.PersistenceError{Op: op, Err: err}
	}
}
