package ir

import "fmt"

// UnaryOpType is the operator tag of a UnaryOp.
type UnaryOpType int

const (
	UnaryNeg UnaryOpType = iota + 1
	UnarySet
	UnaryCast
	UnaryAbs
	UnaryNot
	UnarySqrt
	UnaryReciprocal
)

func (op UnaryOpType) String() string {
	switch op {
	case UnaryNeg:
		return "neg"
	case UnarySet:
		return "set"
	case UnaryCast:
		return "cast"
	case UnaryAbs:
		return "abs"
	case UnaryNot:
		return "not"
	case UnarySqrt:
		return "sqrt"
	case UnaryReciprocal:
		return "reciprocal"
	default:
		return fmt.Sprintf("UnaryOpType(%d)", int(op))
	}
}

// BinaryOpType is the operator tag of a BinaryOp.
type BinaryOpType int

const (
	BinaryAdd BinaryOpType = iota + 1
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryCeilDiv
	BinaryAnd
	BinaryMax
	BinaryMin
	BinaryOr
	BinaryPow
	BinaryLT
	BinaryEQ
)

func (op BinaryOpType) String() string {
	switch op {
	case BinaryAdd:
		return "add"
	case BinarySub:
		return "sub"
	case BinaryMul:
		return "mul"
	case BinaryDiv:
		return "div"
	case BinaryMod:
		return "mod"
	case BinaryCeilDiv:
		return "ceilDiv"
	case BinaryAnd:
		return "and"
	case BinaryMax:
		return "max"
	case BinaryMin:
		return "min"
	case BinaryOr:
		return "or"
	case BinaryPow:
		return "pow"
	case BinaryLT:
		return "lt"
	case BinaryEQ:
		return "eq"
	default:
		return fmt.Sprintf("BinaryOpType(%d)", int(op))
	}
}

// infix returns the operator symbol for infix rendering, or "" when the
// operator prints in call form.
func (op BinaryOpType) infix() string {
	switch op {
	case BinaryAdd:
		return "+"
	case BinarySub:
		return "-"
	case BinaryMul:
		return "*"
	case BinaryDiv:
		return "/"
	case BinaryMod:
		return "%"
	case BinaryAnd:
		return "&&"
	case BinaryOr:
		return "||"
	case BinaryLT:
		return "<"
	case BinaryEQ:
		return "=="
	default:
		return ""
	}
}

// producesInt reports whether op yields an Int regardless of operand dtype.
func (op BinaryOpType) producesInt() bool {
	switch op {
	case BinaryAnd, BinaryOr, BinaryLT, BinaryEQ:
		return true
	default:
		return false
	}
}
