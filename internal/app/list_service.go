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

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService on top of the checklist
// repository. Uniqueness and validation rules live in the domain package;
// the service loads the sibling names they need and commits the result.
type ListService struct {
	core
}

// NewListService creates a ListService. If metrics is nil, metric recording
// is skipped. A nil logger discards output.
func NewListService(repo ports.ChecklistRepository, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *ListService {
	return &ListService{core: newCore(repo, metrics, logger, opts)}
}

// QueryLists returns lists ordered by the query's sort hint.
func (s *ListService) QueryLists(ctx context.Context, q ports.ListQuery) ([]checklist.List, error) {
	s.logger.InfoContext(ctx, "querying lists", slog.String("sort", string(q.Sort)))

	lists, err := s.repo.QueryLists(ctx, q)
	if err := s.finish(ctx, "QueryLists", "failed to query lists", err); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetList returns a single list.
func (s *ListService) GetList(ctx context.Context, id uuid.UUID) (*checklist.List, error) {
	s.logger.InfoContext(ctx, "fetching list", slog.String("list_id", id.String()))

	l, err := s.repo.GetList(ctx, id)
	if err := s.finish(ctx, "GetList", "failed to fetch list", err, slog.String("list_id", id.String())); err != nil {
		return nil, err
	}
	return l, nil
}

// CreateList validates and commits a new, empty list.
func (s *ListService) CreateList(ctx context.Context, name, details string) (*checklist.List, error) {
	s.logger.InfoContext(ctx, "creating list", slog.String("name", name))

	l, err := s.createList(ctx, name, details)
	if err := s.finish(ctx, "CreateList", "failed to create list", err, slog.String("name", name)); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ListService) createList(ctx context.Context, name, details string) (*checklist.List, error) {
	if err := validatePatch(ports.HeaderPatch{Name: &name, Details: &details}); err != nil {
		return nil, err
	}

	uow := appctx.New(ctx)
	names, err := s.listNames.Get(uow)
	if err != nil {
		return nil, err
	}
	l, err := checklist.NewList(name, details, s.now(), names)
	if err != nil {
		return nil, err
	}
	if err := s.commitList(uow, l); err != nil {
		return nil, err
	}
	return l, nil
}

// UpdateList applies a partial header update.
func (s *ListService) UpdateList(ctx context.Context, id uuid.UUID, patch ports.HeaderPatch) (*checklist.List, error) {
	s.logger.InfoContext(ctx, "updating list", slog.String("list_id", id.String()))

	l, err := s.updateList(ctx, id, patch)
	if err := s.finish(ctx, "UpdateList", "failed to update list", err, slog.String("list_id", id.String())); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ListService) updateList(ctx context.Context, id uuid.UUID, patch ports.HeaderPatch) (*checklist.List, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	uow := appctx.New(ctx)
	l, err := s.list(uow, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		names, err := s.listNames.Get(uow)
		if err != nil {
			return nil, err
		}
		if err := l.Rename(*patch.Name, names); err != nil {
			return nil, err
		}
	}
	if patch.Details != nil {
		if err := l.SetDetails(*patch.Details); err != nil {
			return nil, err
		}
	}
	if err := s.commitList(uow, l); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteList deletes a list and all of its items.
func (s *ListService) DeleteList(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting list", slog.String("list_id", id.String()))

	err := s.deleteList(ctx, id)
	return s.finish(ctx, "DeleteList", "failed to delete list", err, slog.String("list_id", id.String()))
}

func (s *ListService) deleteList(ctx context.Context, id uuid.UUID) error {
	uow := appctx.New(ctx)
	l, err := s.list(uow, id)
	if err != nil {
		return err
	}
	if err := uow.Stage(listKey(id), l, func(b *ports.Batch) { b.Delete(id) }); err != nil {
		return err
	}
	if err := uow.Commit(uow, s.repo); err != nil {
		return err
	}
	return l.MarkDeleted()
}

// AddItem appends a new item to the list.
func (s *ListService) AddItem(ctx context.Context, listID uuid.UUID, name string, priority bool) (*checklist.ListItem, error) {
	s.logger.InfoContext(ctx, "adding list item", slog.String("list_id", listID.String()))

	item, err := s.mutateItem(ctx, listID, func(l *checklist.List) (uuid.UUID, error) {
		return l.AddItem(name, priority)
	}, &name)
	if err := s.finish(ctx, "AddListItem", "failed to add list item", err, slog.String("list_id", listID.String())); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem applies a partial item update.
func (s *ListService) UpdateItem(ctx context.Context, listID, itemID uuid.UUID, patch ports.ItemPatch) (*checklist.ListItem, error) {
	s.logger.InfoContext(ctx, "updating list item",
		slog.String("list_id", listID.String()),
		slog.String("item_id", itemID.String()),
	)

	item, err := s.mutateItem(ctx, listID, func(l *checklist.List) (uuid.UUID, error) {
		if _, ok := l.Item(itemID); !ok {
			return uuid.Nil, itemNotFound("list item", itemID)
		}
		if patch.Name != nil {
			if err := l.RenameItem(itemID, *patch.Name); err != nil {
				return uuid.Nil, err
			}
		}
		if patch.Done != nil {
			if err := l.SetItemDone(itemID, *patch.Done); err != nil {
				return uuid.Nil, err
			}
		}
		if patch.Priority != nil {
			if err := l.SetItemPriority(itemID, *patch.Priority); err != nil {
				return uuid.Nil, err
			}
		}
		return itemID, nil
	}, patch.Name)
	if err := s.finish(ctx, "UpdateListItem", "failed to update list item", err,
		slog.String("list_id", listID.String()),
		slog.String("item_id", itemID.String()),
	); err != nil {
		return nil, err
	}
	return item, nil
}

// mutateItem validates name when present, applies fn to the list and
// commits. fn returns the id of the item to report back.
func (s *ListService) mutateItem(ctx context.Context, listID uuid.UUID, fn func(*checklist.List) (uuid.UUID, error), name *string) (*checklist.ListItem, error) {
	if err := validateItemPatch(ports.ItemPatch{Name: name}); err != nil {
		return nil, err
	}

	uow := appctx.New(ctx)
	l, err := s.list(uow, listID)
	if err != nil {
		return nil, err
	}
	itemID, err := fn(l)
	if err != nil {
		return nil, err
	}
	if err := s.commitList(uow, l); err != nil {
		return nil, err
	}
	item, _ := l.Item(itemID)
	return &item, nil
}

// RemoveItem deletes an item. An absent item is not an error.
func (s *ListService) RemoveItem(ctx context.Context, listID, itemID uuid.UUID) error {
	s.logger.InfoContext(ctx, "removing list item",
		slog.String("list_id", listID.String()),
		slog.String("item_id", itemID.String()),
	)

	_, err := s.mutateList(ctx, listID, func(l *checklist.List) (bool, error) {
		return l.RemoveItem(itemID)
	})
	return s.finish(ctx, "RemoveListItem", "failed to remove list item", err,
		slog.String("list_id", listID.String()),
		slog.String("item_id", itemID.String()),
	)
}

// SetAllDone marks every item done or not done.
func (s *ListService) SetAllDone(ctx context.Context, id uuid.UUID, done bool) (*checklist.List, error) {
	s.logger.InfoContext(ctx, "setting all items", slog.String("list_id", id.String()), slog.Bool("done", done))

	l, err := s.mutateList(ctx, id, func(l *checklist.List) (bool, error) {
		return len(l.Items) > 0, l.SetAllDone(done)
	})
	if err := s.finish(ctx, "SetAllDone", "failed to set all items", err, slog.String("list_id", id.String())); err != nil {
		return nil, err
	}
	return l, nil
}

// RemoveDoneItems deletes the completed items of the list.
func (s *ListService) RemoveDoneItems(ctx context.Context, id uuid.UUID) (*checklist.List, error) {
	s.logger.InfoContext(ctx, "removing done items", slog.String("list_id", id.String()))

	l, err := s.mutateList(ctx, id, func(l *checklist.List) (bool, error) {
		n, err := l.RemoveDoneItems()
		return n > 0, err
	})
	if err := s.finish(ctx, "RemoveDoneItems", "failed to remove done items", err, slog.String("list_id", id.String())); err != nil {
		return nil, err
	}
	return l, nil
}

// mutateList applies fn and commits when fn reports a change.
func (s *ListService) mutateList(ctx context.Context, id uuid.UUID, fn func(*checklist.List) (bool, error)) (*checklist.List, error) {
	uow := appctx.New(ctx)
	l, err := s.list(uow, id)
	if err != nil {
		return nil, err
	}
	changed, err := fn(l)
	if err != nil {
		return nil, err
	}
	if !changed {
		return l, nil
	}
	if err := s.commitList(uow, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Capture creates a new blueprint from the list's items.
func (s *ListService) Capture(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error) {
	s.logger.InfoContext(ctx, "capturing list as blueprint", slog.String("list_id", id.String()))

	bp, err := s.capture(ctx, id)
	if err := s.finish(ctx, "Capture", "failed to capture list", err, slog.String("list_id", id.String())); err != nil {
		return nil, err
	}
	s.metrics.RecordCapture(ctx)
	return bp, nil
}

func (s *ListService) capture(ctx context.Context, id uuid.UUID) (*checklist.Blueprint, error) {
	uow := appctx.New(ctx)
	l, err := s.list(uow, id)
	if err != nil {
		return nil, err
	}
	names, err := s.blueprintNames.Get(uow)
	if err != nil {
		return nil, err
	}
	bp, err := checklist.Capture(l, names)
	if err != nil {
		return nil, err
	}
	if err := s.commitBlueprint(uow, bp); err != nil {
		return nil, err
	}
	return bp, nil
}
