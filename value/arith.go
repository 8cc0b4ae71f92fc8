package value

import (
	"fmt"
	"math"
)

// Integer operations wrap on overflow, matching Go's int64 arithmetic.
// Double operations follow IEEE 754.

func sameKind(op string, a, b Value) error {
	if !a.IsValid() || !b.IsValid() {
		panic(fmt.Sprintf("value: %s on %s and %s", op, a.KindName(), b.KindName()))
	}
	if a.k != b.k {
		return fmt.Errorf("%w: %s %s %s", ErrKindMismatch, a.KindName(), op, b.KindName())
	}
	return nil
}

// Add returns a + b.
func Add(a, b Value) (Value, error) {
	if err := sameKind("+", a, b); err != nil {
		return Value{}, err
	}
	if a.k == kindInt {
		return Int(a.i + b.i), nil
	}
	return Double(a.d + b.d), nil
}

// Sub returns a - b.
func Sub(a, b Value) (Value, error) {
	if err := sameKind("-", a, b); err != nil {
		return Value{}, err
	}
	if a.k == kindInt {
		return Int(a.i - b.i), nil
	}
	return Double(a.d - b.d), nil
}

// Mul returns a * b.
func Mul(a, b Value) (Value, error) {
	if err := sameKind("*", a, b); err != nil {
		return Value{}, err
	}
	if a.k == kindInt {
		return Int(a.i * b.i), nil
	}
	return Double(a.d * b.d), nil
}

// Div returns a / b. Integer division truncates toward zero.
func Div(a, b Value) (Value, error) {
	if err := sameKind("/", a, b); err != nil {
		return Value{}, err
	}
	if b.IsZero() {
		return Value{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, a, b)
	}
	if a.k == kindInt {
		return Int(a.i / b.i), nil
	}
	return Double(a.d / b.d), nil
}

// Mod returns the remainder of a / b with the sign of a.
func Mod(a, b Value) (Value, error) {
	if err := sameKind("%", a, b); err != nil {
		return Value{}, err
	}
	if b.IsZero() {
		return Value{}, fmt.Errorf("%w: %s %% %s", ErrDivisionByZero, a, b)
	}
	if a.k == kindInt {
		return Int(a.i % b.i), nil
	}
	return Double(math.Mod(a.d, b.d)), nil
}

// CeilDiv returns the ceiling of a / b.
func CeilDiv(a, b Value) (Value, error) {
	if err := sameKind("ceilDiv", a, b); err != nil {
		return Value{}, err
	}
	if b.IsZero() {
		return Value{}, fmt.Errorf("%w: ceilDiv(%s, %s)", ErrDivisionByZero, a, b)
	}
	if a.k == kindInt {
		q := a.i / b.i
		if a.i%b.i != 0 && (a.i < 0) == (b.i < 0) {
			q++
		}
		return Int(q), nil
	}
	return Double(math.Ceil(a.d / b.d)), nil
}

// Max returns b if a < b, else a.
func Max(a, b Value) (Value, error) {
	less, err := Less(a, b)
	if err != nil {
		return Value{}, err
	}
	if less {
		return b, nil
	}
	return a, nil
}

// Min returns b if b < a, else a.
func Min(a, b Value) (Value, error) {
	less, err := Less(b, a)
	if err != nil {
		return Value{}, err
	}
	if less {
		return b, nil
	}
	return a, nil
}

// And returns Int(1) when both operands are truthy and Int(0) otherwise.
func And(a, b Value) Value {
	if a.Truthy() && b.Truthy() {
		return Int(1)
	}
	return Int(0)
}

// Neg returns -v.
func Neg(v Value) Value {
	switch v.k {
	case kindInt:
		return Int(-v.i)
	case kindDouble:
		return Double(-v.d)
	default:
		panic(invalid(v))
	}
}

// Abs returns |v|. Abs of math.MinInt64 is math.MinInt64.
func Abs(v Value) Value {
	switch v.k {
	case kindInt:
		if v.i < 0 {
			return Int(-v.i)
		}
		return v
	case kindDouble:
		return Double(math.Abs(v.d))
	default:
		panic(invalid(v))
	}
}

// ToInt converts v to an Int, truncating doubles toward zero.
func ToInt(v Value) (Value, error) {
	switch v.k {
	case kindInt:
		return v, nil
	case kindDouble:
		if math.IsNaN(v.d) || v.d < math.MinInt64 || v.d >= math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %s to Int", ErrInvalidCast, v)
		}
		return Int(int64(v.d)), nil
	default:
		panic(invalid(v))
	}
}

// ToDouble converts v to a Double.
func ToDouble(v Value) Value {
	switch v.k {
	case kindInt:
		return Double(float64(v.i))
	case kindDouble:
		return v
	default:
		panic(invalid(v))
	}
}

// Less reports whether a < b.
func Less(a, b Value) (bool, error) {
	if err := sameKind("<", a, b); err != nil {
		return false, err
	}
	if a.k == kindInt {
		return a.i < b.i, nil
	}
	return a.d < b.d, nil
}

// Equal reports whether a and b have the same kind and payload. NaN is never
// equal to itself.
func Equal(a, b Value) bool {
	if a.k != b.k {
		return false
	}
	switch a.k {
	case kindInt:
		return a.i == b.i
	case kindDouble:
		return a.d == b.d
	default:
		return true
	}
}
