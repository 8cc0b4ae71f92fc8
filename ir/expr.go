package ir

import "fmt"

// Expr is an operation producing one output Val. The set of implementations
// is closed: *UnaryOp and *BinaryOp.
type Expr interface {
	fmt.Stringer

	// Inputs returns the operand nodes in order.
	Inputs() []*Val
	// Output returns the node this expression defines.
	Output() *Val
	// InlineString renders the expression with operands inlined.
	InlineString() string

	expr()
}

// UnaryOp applies a unary operator to one operand.
type UnaryOp struct {
	op  UnaryOpType
	in  *Val
	out *Val
}

func (u *UnaryOp) expr() {}

// Op returns the operator tag.
func (u *UnaryOp) Op() UnaryOpType { return u.op }

// In returns the operand.
func (u *UnaryOp) In() *Val { return u.in }

// Out returns the output node.
func (u *UnaryOp) Out() *Val { return u.out }

func (u *UnaryOp) Inputs() []*Val { return []*Val{u.in} }

func (u *UnaryOp) Output() *Val { return u.out }

func (u *UnaryOp) String() string {
	return fmt.Sprintf("%s = %s", u.out, u.render(u.in.String()))
}

func (u *UnaryOp) InlineString() string {
	return u.render(u.in.InlineString())
}

func (u *UnaryOp) render(in string) string {
	switch u.op {
	case UnaryNeg:
		return "-" + in
	case UnarySet:
		return in
	case UnaryCast:
		return fmt.Sprintf("cast<%s>(%s)", u.out.dtype, in)
	default:
		return fmt.Sprintf("%s(%s)", u.op, in)
	}
}

// BinaryOp applies a binary operator to two operands.
type BinaryOp struct {
	op  BinaryOpType
	lhs *Val
	rhs *Val
	out *Val
}

func (b *BinaryOp) expr() {}

// Op returns the operator tag.
func (b *BinaryOp) Op() BinaryOpType { return b.op }

// Lhs returns the left operand.
func (b *BinaryOp) Lhs() *Val { return b.lhs }

// Rhs returns the right operand.
func (b *BinaryOp) Rhs() *Val { return b.rhs }

// Out returns the output node.
func (b *BinaryOp) Out() *Val { return b.out }

func (b *BinaryOp) Inputs() []*Val { return []*Val{b.lhs, b.rhs} }

func (b *BinaryOp) Output() *Val { return b.out }

func (b *BinaryOp) String() string {
	return fmt.Sprintf("%s = %s", b.out, b.render(b.lhs.String(), b.rhs.String()))
}

func (b *BinaryOp) InlineString() string {
	return b.render(b.lhs.InlineString(), b.rhs.InlineString())
}

func (b *BinaryOp) render(lhs, rhs string) string {
	if sym := b.op.infix(); sym != "" {
		return fmt.Sprintf("( %s %s %s )", lhs, sym, rhs)
	}
	return fmt.Sprintf("%s(%s, %s)", b.op, lhs, rhs)
}
