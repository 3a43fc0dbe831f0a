package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that is intentionally not propagated to the caller
func Handle(ctx context.Context, err error, args ...any) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)
	logger.Error("application error", append([]any{"error", err}, args...)...)
}
