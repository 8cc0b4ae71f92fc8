package mocks

import (
	"fmt"
	"io"

	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/value"
	"github.com/stretchr/testify/mock"
)

// PrecomputedCache is a mock implementation of evaluator.PrecomputedCache for testing purposes.
type PrecomputedCache struct {
	mock.Mock
}

// Ready is a mock implementation of the Ready method.
func (m *PrecomputedCache) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}

// GetMaybeValueFor is a mock implementation of the GetMaybeValueFor method.
func (m *PrecomputedCache) GetMaybeValueFor(v *ir.Val) (value.Value, bool) {
	args := m.Called(v)
	x, _ := args.Get(0).(value.Value)
	return x, args.Bool(1)
}

// BindConcreteParallelTypeValue is a mock implementation of the BindConcreteParallelTypeValue method.
func (m *PrecomputedCache) BindConcreteParallelTypeValue(name string, extent int64) error {
	args := m.Called(name, extent)
	return args.Error(0)
}

// Dump is a mock implementation of the Dump method. It writes a marker line
// so callers can check that the dump was forwarded.
func (m *PrecomputedCache) Dump(w io.Writer) {
	m.Called(w)
	fmt.Fprintln(w, "<mock precomputed values>")
}
