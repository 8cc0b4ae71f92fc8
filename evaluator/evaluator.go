// Package evaluator resolves scalar kernel IR nodes to concrete values on
// demand. Results of evaluated definitions are memoized in the Environment,
// so each definition is executed at most once per session.
package evaluator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/value"
)

// Stats counts evaluator work for the current session.
type Stats struct {
	// CacheHits is the number of Evaluate calls answered by the precomputed cache.
	CacheHits int
	// Dispatches is the number of definitions executed.
	Dispatches int
	// Unresolved is the number of dispatches that left their output unknown.
	Unresolved int
}

// Evaluator computes the value of scalar nodes from the bindings in its
// Environment. It is not safe for concurrent use; give each session its own.
type Evaluator struct {
	env         *Environment
	precomputed PrecomputedCache
	stats       Stats

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator with an empty Environment.
func New(opts ...FunctionalOption) (*Evaluator, error) {
	e := &Evaluator{}
	e.applyDefaults()

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("error applying evaluator option: %w", err)
		}
	}

	if err := e.validate(); err != nil {
		return nil, fmt.Errorf("invalid evaluator configuration: %w", err)
	}
	e.setupLogger()

	e.env = NewEnvironment(e.precomputed)
	return e, nil
}

func (e *Evaluator) String() string {
	return "scalareval.Evaluator"
}

// Env returns the environment owned by e.
func (e *Evaluator) Env() *Environment {
	return e.env
}

// Stats returns a snapshot of the work counters.
func (e *Evaluator) Stats() Stats {
	return e.stats
}

// Bind sets the value of a free scalar node. See Environment.Bind.
func (e *Evaluator) Bind(v *ir.Val, x value.Value) error {
	if err := e.env.Bind(v, x); err != nil {
		e.logger.Error("bind failed", "error", err)
		return err
	}
	return nil
}

// BindNamedScalar sets a named runtime extent. See Environment.BindNamedScalar.
func (e *Evaluator) BindNamedScalar(name string, extent int64) error {
	if err := e.env.BindNamedScalar(name, extent); err != nil {
		e.logger.Error("bind named scalar failed", "name", name, "error", err)
		return err
	}
	return nil
}

// BindParallelType sets the extent of a grid or block dimension.
func (e *Evaluator) BindParallelType(pt ir.ParallelType, extent int64) error {
	if err := e.env.BindParallelType(pt, extent); err != nil {
		e.logger.Error("bind parallel type failed", "parallelType", pt.String(), "error", err)
		return err
	}
	return nil
}

// Lookup returns the value of v if it is already known, without evaluating
// its definition.
func (e *Evaluator) Lookup(v *ir.Val) (value.Value, bool, error) {
	return e.env.Lookup(v)
}

// Dump writes the environment and cache listing to w.
func (e *Evaluator) Dump(w io.Writer) {
	e.env.Dump(w)
}

// Evaluate returns the concrete value of v. The bool is false, with a nil
// error, when v depends on a node that has no binding yet. A non-nil error is
// a hard failure: the IR or the bindings are malformed.
func (e *Evaluator) Evaluate(v *ir.Val) (value.Value, bool, error) {
	if v == nil {
		return value.Value{}, false, ErrNilNode
	}

	if pc := e.env.precomputed; pc != nil && pc.Ready() {
		if x, ok := pc.GetMaybeValueFor(v); ok {
			e.stats.CacheHits++
			e.logger.Debug("precomputed value", "val", v.String(), "value", x.String())
			return x, true, nil
		}
	}

	x, ok, err := e.env.Lookup(v)
	if err != nil {
		e.logger.Error("lookup failed", "val", v.String(), "error", err)
		return value.Value{}, false, err
	}
	if ok {
		return x, true, nil
	}

	def := v.Definition()
	if def == nil {
		return value.Value{}, false, nil
	}
	if err := e.dispatch(def); err != nil {
		return value.Value{}, false, err
	}
	return e.env.Lookup(v)
}

func (e *Evaluator) dispatch(def ir.Expr) error {
	e.stats.Dispatches++
	switch op := def.(type) {
	case *ir.UnaryOp:
		return e.handleUnary(op)
	case *ir.BinaryOp:
		return e.handleBinary(op)
	default:
		return e.fail(def, fmt.Errorf("%w: expression %T", ErrUnsupportedOp, def))
	}
}

func (e *Evaluator) fail(def ir.Expr, err error) error {
	err = fmt.Errorf("evaluating %s: %w", def.InlineString(), err)
	e.logger.Error("evaluation failed", "expr", def.String(), "error", err)
	return err
}

func (e *Evaluator) unresolved(def ir.Expr) {
	e.stats.Unresolved++
	e.logger.Debug("operands not yet known", "expr", def.String())
}
