package evaluator

import (
	"io"

	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/value"
)

// PrecomputedCache is a fast-path value source computed ahead of the
// recursive evaluator, such as precomputed.Values.
type PrecomputedCache interface {
	// Ready reports whether the cache finished its pass and can be trusted.
	Ready() bool

	// GetMaybeValueFor returns the cached value of v, if any.
	GetMaybeValueFor(v *ir.Val) (value.Value, bool)

	// BindConcreteParallelTypeValue binds a named runtime extent inside the
	// cache. Once a cache is attached it owns every named-scalar binding.
	BindConcreteParallelTypeValue(name string, extent int64) error

	// Dump writes a human readable listing of the cache.
	Dump(w io.Writer)
}
