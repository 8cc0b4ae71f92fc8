// Package ops interprets IR operator tags over concrete values.
package ops

import (
	"fmt"

	"github.com/robbyt/go-scalareval/ir"
	"github.com/robbyt/go-scalareval/value"
)

// Unary applies op to in. outType is the dtype of the operation's output and
// selects the target of a cast.
func Unary(op ir.UnaryOpType, outType ir.DataType, in value.Value) (value.Value, error) {
	switch op {
	case ir.UnaryNeg:
		return value.Neg(in), nil
	case ir.UnarySet:
		return in, nil
	case ir.UnaryCast:
		switch outType {
		case ir.Int:
			return value.ToInt(in)
		case ir.Double:
			return value.ToDouble(in), nil
		default:
			return value.Value{}, fmt.Errorf("%w: cast to %s", ErrUnsupportedDType, outType)
		}
	case ir.UnaryAbs:
		return value.Abs(in), nil
	default:
		return value.Value{}, fmt.Errorf("%w: unary %s", ErrUnsupportedOp, op)
	}
}

// Binary applies op to lhs and rhs.
func Binary(op ir.BinaryOpType, lhs, rhs value.Value) (value.Value, error) {
	switch op {
	case ir.BinaryAdd:
		return value.Add(lhs, rhs)
	case ir.BinarySub:
		return value.Sub(lhs, rhs)
	case ir.BinaryMul:
		return value.Mul(lhs, rhs)
	case ir.BinaryDiv:
		return value.Div(lhs, rhs)
	case ir.BinaryMod:
		return value.Mod(lhs, rhs)
	case ir.BinaryCeilDiv:
		return value.CeilDiv(lhs, rhs)
	case ir.BinaryAnd:
		return value.And(lhs, rhs), nil
	case ir.BinaryMax:
		return value.Max(lhs, rhs)
	case ir.BinaryMin:
		return value.Min(lhs, rhs)
	default:
		return value.Value{}, fmt.Errorf("%w: binary %s", ErrUnsupportedOp, op)
	}
}

// SupportedUnary reports whether Unary accepts op.
func SupportedUnary(op ir.UnaryOpType) bool {
	switch op {
	case ir.UnaryNeg, ir.UnarySet, ir.UnaryCast, ir.UnaryAbs:
		return true
	default:
		return false
	}
}

// SupportedBinary reports whether Binary accepts op.
func SupportedBinary(op ir.BinaryOpType) bool {
	switch op {
	case ir.BinaryAdd, ir.BinarySub, ir.BinaryMul, ir.BinaryDiv, ir.BinaryMod,
		ir.BinaryCeilDiv, ir.BinaryAnd, ir.BinaryMax, ir.BinaryMin:
		return true
	default:
		return false
	}
}

// MatchesDType reports whether x has the kind dt stores.
func MatchesDType(dt ir.DataType, x value.Value) bool {
	switch dt {
	case ir.Int:
		return x.IsInt()
	case ir.Double:
		return x.IsDouble()
	default:
		return false
	}
}

// IsDivision reports whether op rejects a zero right operand.
func IsDivision(op ir.BinaryOpType) bool {
	switch op {
	case ir.BinaryDiv, ir.BinaryMod, ir.BinaryCeilDiv:
		return true
	default:
		return false
	}
}

// CheckDivisor returns ErrDivisionByZero when op is a division and rhs is
// zero. It does not need the left operand.
func CheckDivisor(op ir.BinaryOpType, rhs value.Value) error {
	if IsDivision(op) && rhs.IsZero() {
		return fmt.Errorf("%w: %s with zero divisor", value.ErrDivisionByZero, op)
	}
	return nil
}

// SupportedDType reports whether values of dt can be evaluated.
func SupportedDType(dt ir.DataType) bool {
	return dt == ir.Int || dt == ir.Double
}
