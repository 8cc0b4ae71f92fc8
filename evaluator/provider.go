package evaluator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/robbyt/go-scalareval/platform/data"
)

// BindFromProvider binds every entry returned by the provider as a named
// scalar. All entries are attempted; the failures are joined.
func (e *Evaluator) BindFromProvider(ctx context.Context, provider data.Getter) error {
	logger := e.logger.WithGroup("BindFromProvider")
	if provider == nil {
		return fmt.Errorf("no data provider available")
	}

	extents, err := provider.GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get launch extents from provider", "error", err)
		return fmt.Errorf("failed to get launch extents: %w", err)
	}
	if len(extents) == 0 {
		logger.WarnContext(ctx, "empty launch extents returned from provider")
	}

	var errz []error
	for _, name := range slices.Sorted(maps.Keys(extents)) {
		extent, err := data.ToExtent(extents[name])
		if err != nil {
			errz = append(errz, fmt.Errorf("binding '%s': %w", name, err))
			continue
		}
		if err := e.BindNamedScalar(name, extent); err != nil {
			errz = append(errz, fmt.Errorf("binding '%s': %w", name, err))
			continue
		}
		logger.DebugContext(ctx, "bound launch extent", "name", name, "extent", extent)
	}
	return errors.Join(errz...)
}
