package data

import (
	"context"
	"fmt"
	"log/slog"
)

// AddDataToContextHelper stores extents through provider and logs the
// outcome. A nil logger uses slog.Default.
func AddDataToContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...map[string]any,
) (context.Context, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if provider == nil {
		logger.WarnContext(ctx, "no data provider available for context preparation")
		return ctx, fmt.Errorf("no data provider available")
	}

	enrichedCtx, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		return ctx, fmt.Errorf("failed to prepare context: %w", err)
	}
	logger.DebugContext(ctx, "launch extents added to context", "maps", len(d))

	return enrichedCtx, nil
}
