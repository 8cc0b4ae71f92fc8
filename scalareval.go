// Package scalareval evaluates scalar expressions of a kernel IR on demand.
//
// Build the expressions with an ir.Container, bind concrete values for the
// free inputs and launch extents, then ask an evaluator for any node:
//
//	c := ir.NewContainer()
//	n := c.NewInt()
//	blocks := c.CeilDiv(n, c.ParallelDim(ir.TIDx))
//
//	ev, _ := scalareval.New()
//	_ = ev.Bind(n, value.Int(1000))
//	_ = ev.BindParallelType(ir.TIDx, 128)
//	x, ok, err := ev.Evaluate(blocks) // 8, true, nil
package scalareval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-scalareval/evaluator"
	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/platform/data"
	"github.com/robbyt/go-scalareval/precomputed"
)

// New creates an evaluator with an empty environment.
func New(opts ...evaluator.FunctionalOption) (*evaluator.Evaluator, error) {
	ev, err := evaluator.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("error applying option: %w", err)
	}
	return ev, nil
}

// NewWithProvider creates an evaluator and binds every launch extent the
// provider returns as a named scalar.
func NewWithProvider(
	ctx context.Context,
	provider data.Getter,
	opts ...evaluator.FunctionalOption,
) (*evaluator.Evaluator, error) {
	ev, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := ev.BindFromProvider(ctx, provider); err != nil {
		return nil, fmt.Errorf("error binding launch parameters: %w", err)
	}
	return ev, nil
}

// NewPrecomputed flattens outputs into a precomputed cache and attaches it to
// a new evaluator. Free inputs are bound on the returned cache; named extents
// may be bound through either.
func NewPrecomputed(
	handler slog.Handler,
	outputs ...*ir.Val,
) (*evaluator.Evaluator, *precomputed.Values, error) {
	cache, err := precomputed.New(handler, outputs...)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating precomputed values: %w", err)
	}

	opts := []evaluator.FunctionalOption{evaluator.WithPrecomputed(cache)}
	if handler != nil {
		opts = append(opts, evaluator.WithLogHandler(handler))
	}
	ev, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return ev, cache, nil
}
