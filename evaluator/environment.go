package evaluator

import (
	"fmt"

	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/ops"
	"github.com/robbyt/go-scalareval/value"
)

// Environment holds the concrete values known during one evaluation session:
// identity-keyed values for free and computed nodes, and name-keyed extents
// for named scalars. Entries are never removed. An Environment is not safe
// for concurrent use.
type Environment struct {
	knownValues       map[*ir.Val]value.Value
	knownNamedScalars map[string]int64

	// not owned
	precomputed PrecomputedCache
}

// NewEnvironment returns an empty Environment. cache may be nil.
func NewEnvironment(cache PrecomputedCache) *Environment {
	return &Environment{
		knownValues:       make(map[*ir.Val]value.Value),
		knownNamedScalars: make(map[string]int64),
		precomputed:       cache,
	}
}

// Precomputed returns the attached cache, or nil.
func (e *Environment) Precomputed() PrecomputedCache {
	return e.precomputed
}

// Bind sets the value of a free scalar. Constants and computed nodes can't be
// bound, and the value kind must match the node dtype. A previous binding for
// v is overwritten.
func (e *Environment) Bind(v *ir.Val, x value.Value) error {
	if err := checkBindable(v, x); err != nil {
		return err
	}
	e.knownValues[v] = x
	return nil
}

func checkBindable(v *ir.Val, x value.Value) error {
	if v == nil {
		return ErrNilNode
	}
	if !v.IsScalar() {
		return fmt.Errorf("%w: %s", ErrNotScalar, v)
	}
	if !ops.SupportedDType(v.DType()) {
		return fmt.Errorf("%w: %s is %s", ErrUnsupportedDType, v, v.DType())
	}
	if v.IsConstScalar() {
		return fmt.Errorf("%w: %s", ErrBindConstant, v)
	}
	if v.Definition() != nil {
		return fmt.Errorf("%w: %s with %s", ErrBindComputed, v.InlineString(), x)
	}
	if !ops.MatchesDType(v.DType(), x) {
		return fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, v, v.DType(), x.KindName())
	}
	return nil
}

// BindNamedScalar sets a runtime extent such as "blockDim.x". With a cache
// attached the binding goes to the cache only.
func (e *Environment) BindNamedScalar(name string, extent int64) error {
	if name == "" {
		return ErrEmptyName
	}
	if e.precomputed != nil {
		return e.precomputed.BindConcreteParallelTypeValue(name, extent)
	}
	e.knownNamedScalars[name] = extent
	return nil
}

// BindParallelType sets the runtime extent of a grid or block dimension.
func (e *Environment) BindParallelType(pt ir.ParallelType, extent int64) error {
	if !pt.IsThread() {
		return fmt.Errorf("%w: %s", ErrNotThreadDim, pt)
	}
	return e.BindNamedScalar(pt.ThreadSize(), extent)
}

// Lookup returns the known value of v without evaluating its definition.
// Constants report their literal; named scalars are found by name before
// identity. The bool is false when no value is known.
func (e *Environment) Lookup(v *ir.Val) (value.Value, bool, error) {
	if v == nil {
		return value.Value{}, false, ErrNilNode
	}
	if !ops.SupportedDType(v.DType()) {
		return value.Value{}, false, fmt.Errorf(
			"%w: %s is not a supported type in expression evaluation", ErrUnsupportedDType, v)
	}

	if v.IsConstScalar() {
		lit, _ := v.Literal()
		return lit, true, nil
	}

	if v.IsNamedScalar() {
		if extent, ok := e.knownNamedScalars[v.Name()]; ok {
			if v.IsDouble() {
				return value.Double(float64(extent)), true, nil
			}
			return value.Int(extent), true, nil
		}
	}

	x, ok := e.knownValues[v]
	return x, ok, nil
}

// Len returns the number of identity-keyed entries.
func (e *Environment) Len() int {
	return len(e.knownValues)
}

// NamedLen returns the number of name-keyed entries held locally.
func (e *Environment) NamedLen() int {
	return len(e.knownNamedScalars)
}

// store records a computed result, skipping the bind guards.
func (e *Environment) store(v *ir.Val, x value.Value) {
	e.knownValues[v] = x
}
