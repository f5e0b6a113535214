package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/go-checklist-service/internal/app/context"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// Compile-time check that BlueprintService implements ports.BlueprintService.
var _ ports.BlueprintService = (*BlueprintService)(nil)

// BlueprintService implements ports.BlueprintService.
type BlueprintService struct {
	core
}

// NewBlueprintService creates a BlueprintService. If metrics is nil, metric
// recording is skipped. A nil logger discards output.
func NewBlueprintService(repo ports.ChecklistRepository, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *BlueprintService {
	return &BlueprintService{core: newCore(repo, metrics, logger, opts)}
}

// QueryBlueprints returns blueprints ordered by the query's sort hint.
func (s *BlueprintService) QueryBlueprints(ctx context.Context, q ports.BlueprintQuery) ([]checklist.Blueprint, error) {
	s.logger.InfoContext(ctx, "querying blueprints", slog.String("sort", string(q.Sort)))

	bps, err := s.repo.QueryBlueprints(ctx, q)
	if err := s.finish(ctx, "QueryBlueprints", "failed to query blueprints", err); err != nil {
		return nil, err
	}
	return bps, nil
}

// GetBlueprint returns a single blueprint.
func (s *BlueprintService) GetBlueprint(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error) {
	s.logger.InfoContext(ctx, "fetching blueprint", slog.String("blueprint_id", id.String()))

	bp, err := s.repo.GetBlueprint(ctx, id)
	if err := s.finish(ctx, "GetBlueprint", "failed to fetch blueprint", err, slog.String("blueprint_id", id.String())); err != nil {
		return nil, err
	}
	return bp, nil
}

// CreateBlueprint validates and commits a new, empty blueprint.
func (s *BlueprintService) CreateBlueprint(ctx context.Context, name, details string) (*checklist.Blueprint, error) {
	s.logger.InfoContext(ctx, "creating blueprint", slog.String("name", name))

	bp, err := s.createBlueprint(ctx, name, details)
	if err := s.finish(ctx, "CreateBlueprint", "failed to create blueprint", err, slog.String("name", name)); err != nil {
		return nil, err
	}
	return bp, nil
}

func (s *BlueprintService) createBlueprint(ctx context.Context, name, details string) (*checklist.Blueprint, error) {
	if err := validatePatch(ports.HeaderPatch{Name: &name, Details: &details}); err != nil {
		return nil, err
	}

	uow := appctx.New(ctx)
	names, err := s.blueprintNames.Get(uow)
	if err != nil {
		return nil, err
	}
	bp, err := checklist.NewBlueprint(name, details, names)
	if err != nil {
		return nil, err
	}
	if err := s.commitBlueprint(uow, bp); err != nil {
		return nil, err
	}
	return bp, nil
}

// UpdateBlueprint applies a partial header update.
func (s *BlueprintService) UpdateBlueprint(ctx context.Context, id uuid.UUID, patch ports.HeaderPatch) (*checklist.Blueprint, error) {
	s.logger.InfoContext(ctx, "updating blueprint", slog.String("blueprint_id", id.String()))

	bp, err := s.updateBlueprint(ctx, id, patch)
	if err := s.finish(ctx, "UpdateBlueprint", "failed to update blueprint", err, slog.String("blueprint_id", id.String())); err != nil {
		return nil, err
	}
	return bp, nil
}

func (s *BlueprintService) updateBlueprint(ctx context.Context, id uuid.UUID, patch ports.HeaderPatch) (*checklist.Blueprint, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, nil, func(uow *appctx.UnitOfWork, bp *checklist.Blueprint) (bool, error) {
		if patch.Name != nil {
			names, err := s.blueprintNames.Get(uow)
			if err != nil {
				return false, err
			}
			if err := bp.Rename(*patch.Name, names); err != nil {
				return false, err
			}
		}
		if patch.Details != nil {
			if err := bp.SetDetails(*patch.Details); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

// DeleteBlueprint deletes a blueprint and all of its items. Lists created
// from it are unaffected.
func (s *BlueprintService) DeleteBlueprint(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting blueprint", slog.String("blueprint_id", id.String()))

	err := s.deleteBlueprint(ctx, id)
	return s.finish(ctx, "DeleteBlueprint", "failed to delete blueprint", err, slog.String("blueprint_id", id.String()))
}

func (s *BlueprintService) deleteBlueprint(ctx context.Context, id uuid.UUID) error {
	uow := appctx.New(ctx)
	bp, err := s.blueprint(uow, id)
	if err != nil {
		return err
	}
	if err := uow.Stage(blueprintKey(id), bp, func(b *ports.Batch) { b.Delete(id) }); err != nil {
		return err
	}
	if err := uow.Commit(uow, s.repo); err != nil {
		return err
	}
	return bp.MarkDeleted()
}

// AddItem appends a new item to the blueprint.
func (s *BlueprintService) AddItem(ctx context.Context, blueprintID uuid.UUID, name string, priority bool) (*checklist.BlueprintItem, error) {
	s.logger.InfoContext(ctx, "adding blueprint item", slog.String("blueprint_id", blueprintID.String()))

	var itemID uuid.UUID
	bp, err := s.mutate(ctx, blueprintID, &name, func(_ *appctx.UnitOfWork, bp *checklist.Blueprint) (bool, error) {
		id, err := bp.AddItem(name, priority)
		itemID = id
		return err == nil, err
	})
	if err := s.finish(ctx, "AddBlueprintItem", "failed to add blueprint item", err, slog.String("blueprint_id", blueprintID.String())); err != nil {
		return nil, err
	}
	item, _ := bp.Item(itemID)
	return &item, nil
}

// UpdateItem applies a partial item update. Done is ignored because
// blueprint items have no completion state.
func (s *BlueprintService) UpdateItem(ctx context.Context, blueprintID, itemID uuid.UUID, patch ports.ItemPatch) (*checklist.BlueprintItem, error) {
	s.logger.InfoContext(ctx, "updating blueprint item",
		slog.String("blueprint_id", blueprintID.String()),
		slog.String("item_id", itemID.String()),
	)

	bp, err := s.mutate(ctx, blueprintID, patch.Name, func(_ *appctx.UnitOfWork, bp *checklist.Blueprint) (bool, error) {
		if _, ok := bp.Item(itemID); !ok {
			return false, itemNotFound("blueprint item", itemID)
		}
		if patch.Name != nil {
			if err := bp.RenameItem(itemID, *patch.Name); err != nil {
				return false, err
			}
		}
		if patch.Priority != nil {
			if err := bp.SetItemPriority(itemID, *patch.Priority); err != nil {
				return false, err
			}
		}
		return true, nil
	})
	if err := s.finish(ctx, "UpdateBlueprintItem", "failed to update blueprint item", err,
		slog.String("blueprint_id", blueprintID.String()),
		slog.String("item_id", itemID.String()),
	); err != nil {
		return nil, err
	}
	item, _ := bp.Item(itemID)
	return &item, nil
}

// RemoveItem deletes an item. An absent item is not an error.
func (s *BlueprintService) RemoveItem(ctx context.Context, blueprintID, itemID uuid.UUID) error {
	s.logger.InfoContext(ctx, "removing blueprint item",
		slog.String("blueprint_id", blueprintID.String()),
		slog.String("item_id", itemID.String()),
	)

	_, err := s.mutate(ctx, blueprintID, nil, func(_ *appctx.UnitOfWork, bp *checklist.Blueprint) (bool, error) {
		return bp.RemoveItem(itemID)
	})
	return s.finish(ctx, "RemoveBlueprintItem", "failed to remove blueprint item", err,
		slog.String("blueprint_id", blueprintID.String()),
		slog.String("item_id", itemID.String()),
	)
}

// mutate validates name when present, loads the blueprint, applies fn and
// commits when fn reports a change.
func (s *BlueprintService) mutate(ctx context.Context, id uuid.UUID, name *string, fn func(*appctx.UnitOfWork, *checklist.Blueprint) (bool, error)) (*checklist.Blueprint, error) {
	if err := validateItemPatch(ports.ItemPatch{Name: name}); err != nil {
		return nil, err
	}

	uow := appctx.New(ctx)
	bp, err := s.blueprint(uow, id)
	if err != nil {
		return nil, err
	}
	changed, err := fn(uow, bp)
	if err != nil {
		return nil, err
	}
	if !changed {
		return bp, nil
	}
	if err := s.commitBlueprint(uow, bp); err != nil {
		return nil, err
	}
	return bp, nil
}

// Materialize creates a list from the blueprint. The new list and the
// blueprint's incremented usage count are committed together.
func (s *BlueprintService) Materialize(ctx context.Context, id uuid.UUID) (*checklist.List, error) {
	s.logger.InfoContext(ctx, "materializing blueprint", slog.String("blueprint_id", id.String()))

	l, err := s.materialize(ctx, id)
	if err := s.finish(ctx, "Materialize", "failed to materialize blueprint", err, slog.String("blueprint_id", id.String())); err != nil {
		return nil, err
	}
	s.metrics.RecordMaterialization(ctx)
	return l, nil
}

func (s *BlueprintService) materialize(ctx context.Context, id uuid.UUID) (*checklist.List, error) {
	uow := appctx.New(ctx)
	bp, err := s.blueprint(uow, id)
	if err != nil {
		return nil, err
	}
	names, err := s.listNames.Get(uow)
	if err != nil {
		return nil, err
	}
	l, err := checklist.Materialize(bp, names, s.now())
	if err != nil {
		return nil, err
	}

	if err := uow.Stage(listKey(l.ID), l, func(b *ports.Batch) { b.PutList(l) }); err != nil {
		return nil, err
	}
	if err := uow.Stage(blueprintKey(bp.ID), bp, func(b *ports.Batch) { b.PutBlueprint(bp) }); err != nil {
		return nil, err
	}
	if err := uow.Commit(uow, s.repo); err != nil {
		return nil, err
	}
	if err := l.MarkPersisted(); err != nil {
		return nil, err
	}
	if err := bp.MarkPersisted(); err != nil {
		return nil, err
	}
	return l, nil
}
