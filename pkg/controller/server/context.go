package server

import (
	"context"

	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

// DetachContext creates a new context.Background() based context that
// inherits logger, request ID, and time function from the original context.
// Useful for work that must outlive the HTTP request that triggered it.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := context.Background()

	bgCtx = logging.With(bgCtx, logging.From(ctx))
	bgCtx = logging.InheritContextValues(bgCtx, ctx)

	return bgCtx
}
