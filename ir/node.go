package ir

import (
	"fmt"

	"github.com/robbyt/go-scalareval/value"
)

// Val is a node of the kernel IR. Vals are allocated by a Container and are
// read-only once created; pointer identity is node identity.
type Val struct {
	id      int
	vtype   ValType
	dtype   DataType
	literal *value.Value
	name    string
	def     Expr
}

// ID returns the identifier assigned by the owning Container.
func (v *Val) ID() int {
	return v.id
}

// ValType returns the node kind.
func (v *Val) ValType() ValType {
	return v.vtype
}

// DType returns the scalar data type.
func (v *Val) DType() DataType {
	return v.dtype
}

// IsScalar is true for plain and named scalars.
func (v *Val) IsScalar() bool {
	return v.vtype == ScalarVal || v.vtype == NamedScalarVal
}

// IsNamedScalar reports whether v is looked up by name.
func (v *Val) IsNamedScalar() bool {
	return v.vtype == NamedScalarVal
}

// IsInt reports whether v is Int typed.
func (v *Val) IsInt() bool {
	return v.dtype == Int
}

// IsDouble reports whether v is Double typed.
func (v *Val) IsDouble() bool {
	return v.dtype == Double
}

// IsConst reports whether v is a compile-time literal.
func (v *Val) IsConst() bool {
	return v.literal != nil
}

// IsConstScalar reports whether v is a scalar compile-time literal.
func (v *Val) IsConstScalar() bool {
	return v.IsScalar() && v.IsConst()
}

// Literal returns the intrinsic value of a constant.
func (v *Val) Literal() (value.Value, bool) {
	if v.literal == nil {
		return value.Value{}, false
	}
	return *v.literal, true
}

// Name returns the lookup name of a named scalar, or "".
func (v *Val) Name() string {
	return v.name
}

// Definition returns the expression that computes v, or nil.
func (v *Val) Definition() Expr {
	return v.def
}

// String returns the short name of v.
func (v *Val) String() string {
	switch {
	case v.literal != nil:
		return v.literal.String()
	case v.vtype == NamedScalarVal:
		return v.name
	case v.vtype == TensorViewVal:
		return fmt.Sprintf("T%d", v.id)
	}
	switch v.dtype {
	case Int:
		return fmt.Sprintf("i%d", v.id)
	case Double:
		return fmt.Sprintf("d%d", v.id)
	case Bool:
		return fmt.Sprintf("b%d", v.id)
	default:
		return fmt.Sprintf("f%d", v.id)
	}
}

// InlineString renders v with its full defining expression inlined.
func (v *Val) InlineString() string {
	if v.def == nil {
		return v.String()
	}
	return v.def.InlineString()
}
