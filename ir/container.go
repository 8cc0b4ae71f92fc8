// Package ir holds the scalar kernel IR consumed by the expression evaluator.
//
// A Container is the arena that allocates every Val and Expr. Operations can
// only be created over Vals that already exist, so the definition graph is
// acyclic by construction.
package ir

import (
	"fmt"

	"github.com/robbyt/go-scalareval/value"
)

// Container allocates and owns IR nodes.
type Container struct {
	vals  []*Val
	exprs []Expr
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{}
}

// Vals returns every node in allocation order.
func (c *Container) Vals() []*Val {
	return c.vals
}

// Exprs returns every operation in allocation order.
func (c *Container) Exprs() []Expr {
	return c.exprs
}

func (c *Container) register(v *Val) *Val {
	v.id = len(c.vals)
	c.vals = append(c.vals, v)
	return v
}

// NewScalar allocates a free scalar of the given type.
func (c *Container) NewScalar(dt DataType) *Val {
	return c.register(&Val{vtype: ScalarVal, dtype: dt})
}

// NewInt allocates a free Int scalar.
func (c *Container) NewInt() *Val {
	return c.NewScalar(Int)
}

// NewDouble allocates a free Double scalar.
func (c *Container) NewDouble() *Val {
	return c.NewScalar(Double)
}

// ConstInt allocates an Int literal.
func (c *Container) ConstInt(i int64) *Val {
	lit := value.Int(i)
	return c.register(&Val{vtype: ScalarVal, dtype: Int, literal: &lit})
}

// ConstDouble allocates a Double literal.
func (c *Container) ConstDouble(d float64) *Val {
	lit := value.Double(d)
	return c.register(&Val{vtype: ScalarVal, dtype: Double, literal: &lit})
}

// NewNamedScalar allocates a scalar resolved by name at evaluation time.
func (c *Container) NewNamedScalar(name string, dt DataType) *Val {
	return c.register(&Val{vtype: NamedScalarVal, dtype: dt, name: name})
}

// ParallelDim allocates the Int named scalar holding the runtime extent of a
// thread parallel type. It panics if pt is not a grid or block dimension.
func (c *Container) ParallelDim(pt ParallelType) *Val {
	if !pt.IsThread() {
		panic(fmt.Sprintf("ir: %s has no runtime extent", pt))
	}
	return c.NewNamedScalar(pt.ThreadSize(), Int)
}

// NewTensor allocates a non-scalar node.
func (c *Container) NewTensor(dt DataType) *Val {
	return c.register(&Val{vtype: TensorViewVal, dtype: dt})
}

// NewUnary creates out = op(in). The output has the dtype of in.
func (c *Container) NewUnary(op UnaryOpType, in *Val) *Val {
	return c.unary(op, in, in.dtype)
}

// NewCast creates out = cast<dt>(in).
func (c *Container) NewCast(dt DataType, in *Val) *Val {
	return c.unary(UnaryCast, in, dt)
}

func (c *Container) unary(op UnaryOpType, in *Val, dt DataType) *Val {
	if in == nil {
		panic(fmt.Sprintf("ir: nil operand to %s", op))
	}
	out := c.NewScalar(dt)
	e := &UnaryOp{op: op, in: in, out: out}
	out.def = e
	c.exprs = append(c.exprs, e)
	return out
}

// NewBinary creates out = op(lhs, rhs). Logical and comparison operators
// produce an Int; the rest produce the dtype of lhs.
func (c *Container) NewBinary(op BinaryOpType, lhs, rhs *Val) *Val {
	if lhs == nil || rhs == nil {
		panic(fmt.Sprintf("ir: nil operand to %s", op))
	}
	dt := lhs.dtype
	if op.producesInt() {
		dt = Int
	}
	out := c.NewScalar(dt)
	e := &BinaryOp{op: op, lhs: lhs, rhs: rhs, out: out}
	out.def = e
	c.exprs = append(c.exprs, e)
	return out
}

func (c *Container) Neg(in *Val) *Val { return c.NewUnary(UnaryNeg, in) }

func (c *Container) Set(in *Val) *Val { return c.NewUnary(UnarySet, in) }

func (c *Container) Abs(in *Val) *Val { return c.NewUnary(UnaryAbs, in) }

func (c *Container) Add(lhs, rhs *Val) *Val { return c.NewBinary(BinaryAdd, lhs, rhs) }

func (c *Container) Sub(lhs, rhs *Val) *Val { return c.NewBinary(BinarySub, lhs, rhs) }

func (c *Container) Mul(lhs, rhs *Val) *Val { return c.NewBinary(BinaryMul, lhs, rhs) }

func (c *Container) Div(lhs, rhs *Val) *Val { return c.NewBinary(BinaryDiv, lhs, rhs) }

func (c *Container) Mod(lhs, rhs *Val) *Val { return c.NewBinary(BinaryMod, lhs, rhs) }

func (c *Container) CeilDiv(lhs, rhs *Val) *Val { return c.NewBinary(BinaryCeilDiv, lhs, rhs) }

func (c *Container) And(lhs, rhs *Val) *Val { return c.NewBinary(BinaryAnd, lhs, rhs) }

func (c *Container) Max(lhs, rhs *Val) *Val { return c.NewBinary(BinaryMax, lhs, rhs) }

func (c *Container) Min(lhs, rhs *Val) *Val { return c.NewBinary(BinaryMin, lhs, rhs) }
