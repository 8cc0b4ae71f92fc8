package data

import (
	"context"
)

// Getter retrieves name-keyed launch extents, such as "blockDim.x", from a context.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter prepares launch extents for evaluation by enriching a context.
// This lets the caller that knows the launch configuration differ from the
// caller that evaluates kernel expressions.
type Setter interface {
	// AddDataToContext stores extents in the context. Each map is keyed by the
	// named scalar it binds, and values must be integral numbers.
	//
	// Example:
	//  extents := map[string]any{"blockDim.x": 128, "gridDim.x": 4}
	//  enrichedCtx, err := provider.AddDataToContext(ctx, extents)
	//  if err != nil {
	//      return err
	//  }
	//  err = ev.BindFromProvider(enrichedCtx, provider)
	AddDataToContext(ctx context.Context, data ...map[string]any) (context.Context, error)
}

// Provider both reads and stores launch extents.
type Provider interface {
	Getter
	Setter
}
