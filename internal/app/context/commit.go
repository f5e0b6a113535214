package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-checklist-service/internal/platform/logging"
)

// Commit hands every staged mutation to c in a single Save call. An empty
// batch commits without calling c.
//
// After Commit returns, whether it failed or not, the UnitOfWork is marked
// committed and no further writes can be staged. A failed commit leaves no
// partial state because Save is atomic, so callers may retry the whole
// operation with a fresh UnitOfWork.
func (u *UnitOfWork) Commit(ctx context.Context, c Committer) error {
	if u.committed {
		return ErrAlreadyCommitted
	}
	u.committed = true

	n := u.Pending()
	if n == 0 {
		return nil
	}

	logger := logging.FromContext(ctx)
	logger.DebugContext(ctx, "committing batch",
		slog.String("operation", "UnitOfWork.Commit"),
		slog.Int("mutations", n),
	)

	if err := c.Save(ctx, &u.batch); err != nil {
		logger.ErrorContext(ctx, "batch commit failed",
			slog.String("operation", "UnitOfWork.Commit"),
			slog.Int("mutations", n),
			slog.Any("error", err),
		)
		return fmt.Errorf("committing %d mutations: %w", n, err)
	}
	return nil
}
