package service

import (
	"context"
	"errors"
	"time"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

// DefaultStoreTimeout bounds a single repository call when no timeout is configured.
const DefaultStoreTimeout = 5 * time.Second

// storeContext derives the context for one repository call.
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// internalStoreError wraps a failure from a repository call that has no
// not-found outcome, such as a list or an insert.
func internalStoreError(err error) error {
	if err == nil {
		return nil
	}
	return model.NewInternalError("internal server error", err)
}

// translateStoreError maps repository errors onto AppErrors. Errors that are
// already AppErrors pass through untouched.
func translateStoreError(err error, notFoundMsg string) error {
	var appErr *model.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return model.NewNotFoundError(notFoundMsg)
	default:
		return model.NewInternalError("internal server error", err)
	}
}
