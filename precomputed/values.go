// Package precomputed evaluates a fixed set of scalar expressions in one
// linear pass. It implements evaluator.PrecomputedCache.
//
// New flattens the definition graph reachable from the requested outputs into
// topological order once. Each launch then binds its inputs and extents and
// calls Evaluate; until the next binding the results are served from a flat
// slice without recursion.
package precomputed

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/robbyt/go-scalareval/internal/helpers"
	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/ops"
	"github.com/robbyt/go-scalareval/value"
)

// Values holds the flattened expressions and their last computed results.
// It is not safe for concurrent use.
type Values struct {
	order []*ir.Val
	index map[*ir.Val]int

	values  []value.Value
	defined []bool

	inputs map[*ir.Val]value.Value
	named  map[string]int64
	ready  bool

	logHandler slog.Handler
	logger     *slog.Logger
}

// New collects every node reachable from outputs. All of them must be
// scalars of a supported dtype.
func New(handler slog.Handler, outputs ...*ir.Val) (*Values, error) {
	handler, logger := helpers.SetupLogger(handler, "scalareval", "Precomputed")

	p := &Values{
		index:      make(map[*ir.Val]int),
		inputs:     make(map[*ir.Val]value.Value),
		named:      make(map[string]int64),
		logHandler: handler,
		logger:     logger,
	}
	for _, out := range outputs {
		if out == nil {
			return nil, ErrNilNode
		}
		if err := p.collect(out); err != nil {
			return nil, err
		}
	}
	p.values = make([]value.Value, len(p.order))
	p.defined = make([]bool, len(p.order))

	logger.Debug("flattened expressions", "outputs", len(outputs), "nodes", len(p.order))
	return p, nil
}

// collect appends v after its operands.
func (p *Values) collect(v *ir.Val) error {
	if _, seen := p.index[v]; seen {
		return nil
	}
	if !v.IsScalar() {
		return fmt.Errorf("%w: %s", ErrNotScalar, v)
	}
	if !ops.SupportedDType(v.DType()) {
		return fmt.Errorf("%w: %s is %s", ops.ErrUnsupportedDType, v, v.DType())
	}
	if def := v.Definition(); def != nil {
		for _, in := range def.Inputs() {
			if err := p.collect(in); err != nil {
				return err
			}
		}
	}
	p.index[v] = len(p.order)
	p.order = append(p.order, v)
	return nil
}

func (p *Values) String() string {
	return "precomputed.Values"
}

// Len returns the number of flattened nodes.
func (p *Values) Len() int {
	return len(p.order)
}

// Ready reports whether Evaluate ran since the last binding.
func (p *Values) Ready() bool {
	return p.ready
}

// Invalidate drops the computed results but keeps the bindings.
func (p *Values) Invalidate() {
	p.ready = false
	clear(p.defined)
}

// BindValue binds a free input node. The node must be part of the flattened
// graph and must not be a constant or computed.
func (p *Values) BindValue(v *ir.Val, x value.Value) error {
	if v == nil {
		return ErrNilNode
	}
	if _, ok := p.index[v]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, v)
	}
	if v.IsConst() {
		return fmt.Errorf("%w: %s", ErrBindConstant, v)
	}
	if v.Definition() != nil {
		return fmt.Errorf("%w: %s with %s", ErrBindComputed, v.InlineString(), x)
	}
	if !ops.MatchesDType(v.DType(), x) {
		return fmt.Errorf("%w: %s is %s, got %s", value.ErrKindMismatch, v, v.DType(), x.KindName())
	}
	p.inputs[v] = x
	p.Invalidate()
	return nil
}

// BindConcreteParallelTypeValue binds a named runtime extent.
func (p *Values) BindConcreteParallelTypeValue(name string, extent int64) error {
	if name == "" {
		return ErrEmptyName
	}
	p.named[name] = extent
	p.Invalidate()
	return nil
}

// Evaluate computes every flattened node in order. Nodes whose operands are
// unknown stay unknown. On success the cache is ready.
func (p *Values) Evaluate() error {
	p.Invalidate()
	for i, v := range p.order {
		x, ok, err := p.compute(v)
		if err != nil {
			p.logger.Error("precompute failed", "val", v.String(), "error", err)
			return fmt.Errorf("evaluating %s: %w", v.InlineString(), err)
		}
		if ok {
			if !ops.MatchesDType(v.DType(), x) {
				return fmt.Errorf("evaluating %s: %w: %s is %s, got %s",
					v.InlineString(), value.ErrKindMismatch, v, v.DType(), x.KindName())
			}
			p.values[i] = x
			p.defined[i] = true
		}
	}
	p.ready = true
	p.logger.Debug("precomputed", "nodes", len(p.order), "known", p.known())
	return nil
}

func (p *Values) compute(v *ir.Val) (value.Value, bool, error) {
	if lit, ok := v.Literal(); ok {
		return lit, true, nil
	}

	switch def := v.Definition().(type) {
	case nil:
		if v.IsNamedScalar() {
			if extent, ok := p.named[v.Name()]; ok {
				if v.IsDouble() {
					return value.Double(float64(extent)), true, nil
				}
				return value.Int(extent), true, nil
			}
		}
		x, ok := p.inputs[v]
		return x, ok, nil

	case *ir.UnaryOp:
		if !ops.SupportedUnary(def.Op()) {
			return value.Value{}, false, fmt.Errorf("%w: %s", ops.ErrUnsupportedOp, def.Op())
		}
		in, ok := p.get(def.In())
		if !ok {
			return value.Value{}, false, nil
		}
		x, err := ops.Unary(def.Op(), v.DType(), in)
		return x, err == nil, err

	case *ir.BinaryOp:
		if !ops.SupportedBinary(def.Op()) {
			return value.Value{}, false, fmt.Errorf("%w: %s", ops.ErrUnsupportedOp, def.Op())
		}
		lhs, lhsKnown := p.get(def.Lhs())
		rhs, rhsKnown := p.get(def.Rhs())
		if rhsKnown {
			if err := ops.CheckDivisor(def.Op(), rhs); err != nil {
				return value.Value{}, false, err
			}
		}
		if !lhsKnown || !rhsKnown {
			return value.Value{}, false, nil
		}
		x, err := ops.Binary(def.Op(), lhs, rhs)
		return x, err == nil, err

	default:
		return value.Value{}, false, fmt.Errorf("%w: expression %T", ops.ErrUnsupportedOp, def)
	}
}

func (p *Values) get(v *ir.Val) (value.Value, bool) {
	i, ok := p.index[v]
	if !ok || !p.defined[i] {
		return value.Value{}, false
	}
	return p.values[i], true
}

// GetMaybeValueFor returns the computed value of v. It reports false for
// nodes outside the flattened graph, unknown nodes, and while not ready.
func (p *Values) GetMaybeValueFor(v *ir.Val) (value.Value, bool) {
	if !p.ready {
		return value.Value{}, false
	}
	return p.get(v)
}

func (p *Values) known() int {
	n := 0
	for _, d := range p.defined {
		if d {
			n++
		}
	}
	return n
}

// Dump writes one line per computed node followed by the named extents.
func (p *Values) Dump(w io.Writer) {
	fmt.Fprintf(w, "ready = %t\n", p.ready)
	for i, v := range p.order {
		if !p.defined[i] || v.IsConst() {
			continue
		}
		fmt.Fprintf(w, "%s = %s ; %s\n", v, p.values[i], v.DType())
	}
	for _, name := range slices.Sorted(maps.Keys(p.named)) {
		fmt.Fprintf(w, "%s = %d ;\n", name, p.named[name])
	}
}
