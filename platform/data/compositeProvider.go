package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider combines multiple providers, with later providers
// overriding values from earlier ones in the chain.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a provider that queries given providers in order.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData retrieves extents from all providers and merges them into a single
// map. Returns error on first provider failure.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		data, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}
		maps.Copy(result, data)
	}

	return result, nil
}

// AddDataToContext distributes extents to all providers in the chain.
// StaticProvider refusals are ignored as long as some other provider accepts
// the data.
//
// Example:
//
//	defaults := NewStaticProvider(map[string]any{"blockDim.y": 1})
//	runtime := NewContextProvider(constants.LaunchParams)
//	composite := NewCompositeProvider(defaults, runtime)
//	ctx, err := composite.AddDataToContext(ctx, map[string]any{"blockDim.x": 128})
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	finalCtx := ctx

	var errs []error
	var staticErrs []error
	successCount := 0
	totalCount := 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		_, isStaticProvider := provider.(*StaticProvider)
		if !isStaticProvider {
			totalCount++
		}

		nextCtx, err := provider.AddDataToContext(finalCtx, data...)
		if err != nil {
			if isStaticProvider && errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
				staticErrs = append(staticErrs, fmt.Errorf("error from provider %d: %w", i, err))
				continue
			}
			errs = append(errs, fmt.Errorf("error from provider %d: %w", i, err))
			// partial writes from a ContextProvider are still kept
			if nextCtx != nil {
				finalCtx = nextCtx
			}
			continue
		}

		finalCtx = nextCtx
		successCount++
	}

	// Only static providers: nothing could accept runtime data.
	if totalCount == 0 && len(staticErrs) > 0 {
		return ctx, errors.Join(staticErrs...)
	}

	if totalCount > 0 && successCount == 0 && len(errs) > 0 {
		return ctx, errors.Join(errs...)
	}

	return finalCtx, errors.Join(errs...)
}
