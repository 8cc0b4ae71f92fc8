package evaluator

import (
	"errors"

	"github.com/robbyt/go-scalareval/ops"
	"github.com/robbyt/go-scalareval/value"
)

// Every error below is a hard failure: an IR or caller invariant is broken
// and evaluation stops. An unresolved value is not an error.
var (
	ErrNilNode      = errors.New("node is nil")
	ErrNotScalar    = errors.New("node is not a scalar")
	ErrBindConstant = errors.New("tried to bind to a constant value")
	ErrBindComputed = errors.New("tried to bind to a value that is computed in the kernel IR")
	ErrEmptyName    = errors.New("named scalar name is empty")
	ErrNotThreadDim = errors.New("parallel type has no runtime extent")

	ErrUnsupportedDType = ops.ErrUnsupportedDType
	ErrUnsupportedOp    = ops.ErrUnsupportedOp
	ErrDivisionByZero   = value.ErrDivisionByZero
	ErrKindMismatch     = value.ErrKindMismatch
	ErrInvalidCast      = value.ErrInvalidCast
)
