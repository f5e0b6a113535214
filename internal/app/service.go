// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every operation follows the same shape: validate input, read snapshots
// through a fresh appctx.UnitOfWork, apply domain mutations, stage the
// resulting writes and commit them in one repository batch. Entities are
// marked persisted only after the commit succeeds.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/go-checklist-service/internal/app/context"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/checklist"
	"github.com/jsamuelsen11/go-checklist-service/internal/domain/naming"
	"github.com/jsamuelsen11/go-checklist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-checklist-service/internal/ports"
)

// Option configures a service.
type Option func(*core)

// WithClock overrides the time source used for list creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *core) {
		if now != nil {
			c.now = now
		}
	}
}

// core holds the dependencies shared by ListService and BlueprintService.
type core struct {
	repo    ports.ChecklistRepository
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time

	// Name sets for uniqueness checks, memoized per unit of work.
	listNames      *appctx.DataProvider[[]naming.Entry]
	blueprintNames *appctx.DataProvider[[]naming.Entry]
}

func newCore(repo ports.ChecklistRepository, metrics *telemetry.Metrics, logger *slog.Logger, opts []Option) core {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := core{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&c)
	}
	c.listNames = appctx.NewDataProvider(listNamesKey, func(ctx context.Context) ([]naming.Entry, error) {
		lists, err := repo.QueryLists(ctx, ports.ListQuery{HeadersOnly: true})
		if err != nil {
			return nil, err
		}
		return checklist.ListEntries(lists), nil
	})
	c.blueprintNames = appctx.NewDataProvider(blueprintNamesKey, func(ctx context.Context) ([]naming.Entry, error) {
		bps, err := repo.QueryBlueprints(ctx, ports.BlueprintQuery{HeadersOnly: true})
		if err != nil {
			return nil, err
		}
		return checklist.BlueprintEntries(bps), nil
	})
	return c
}

// Unit of work cache keys.
const (
	listNamesKey      = "lists:names"
	blueprintNamesKey = "blueprints:names"
)

func listKey(id uuid.UUID) string      { return "list:" + id.String() }
func blueprintKey(id uuid.UUID) string { return "blueprint:" + id.String() }

func (c core) list(uow *appctx.UnitOfWork, id uuid.UUID) (*checklist.List, error) {
	return appctx.GetOrFetch(uow, listKey(id), func(ctx context.Context) (*checklist.List, error) {
		return c.repo.GetList(ctx, id)
	})
}

func (c core) blueprint(uow *appctx.UnitOfWork, id uuid.UUID) (*checklist.Blueprint, error) {
	return appctx.GetOrFetch(uow, blueprintKey(id), func(ctx context.Context) (*checklist.Blueprint, error) {
		return c.repo.GetBlueprint(ctx, id)
	})
}

// commitList stages an upsert of l and commits the unit of work.
func (c core) commitList(uow *appctx.UnitOfWork, l *checklist.List) error {
	if err := uow.Stage(listKey(l.ID), l, func(b *ports.Batch) { b.PutList(l) }); err != nil {
		return err
	}
	uow.Forget(listNamesKey)
	if err := uow.Commit(uow, c.repo); err != nil {
		return err
	}
	return l.MarkPersisted()
}

func (c core) commitBlueprint(uow *appctx.UnitOfWork, bp *checklist.Blueprint) error {
	if err := uow.Stage(blueprintKey(bp.ID), bp, func(b *ports.Batch) { b.PutBlueprint(bp) }); err != nil {
		return err
	}
	uow.Forget(blueprintNamesKey)
	if err := uow.Commit(uow, c.repo); err != nil {
		return err
	}
	return bp.MarkPersisted()
}

// finish records the operation outcome and logs failures. Expected domain
// outcomes are logged at warn, everything else at error.
func (c core) finish(ctx context.Context, op, msg string, err error, attrs ...any) error {
	c.metrics.RecordOperation(ctx, op, err)
	if err == nil {
		return nil
	}

	args := append([]any{slog.String("operation", op)}, attrs...)
	args = append(args, slog.Any("error", err))
	if isExpected(err) {
		c.logger.WarnContext(ctx, msg, args...)
	} else {
		c.logger.ErrorContext(ctx, msg, args...)
	}
	return err
}

func isExpected(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrInvalidState)
}

// validatePatch rejects a malformed header patch before any repository call.
func validatePatch(p ports.HeaderPatch) error {
	if p.Name != nil {
		if _, err := naming.Validate("name", *p.Name); err != nil {
			return err
		}
	}
	if p.Details != nil {
		if _, err := naming.ValidateDetails("details", *p.Details); err != nil {
			return err
		}
	}
	return nil
}

func validateItemPatch(p ports.ItemPatch) error {
	if p.Name != nil {
		if _, err := naming.Validate("name", *p.Name); err != nil {
			return err
		}
	}
	return nil
}

func itemNotFound(kind string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}
