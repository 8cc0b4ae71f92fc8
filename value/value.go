// Package value implements the concrete numeric results produced by expression
// evaluation: a closed union of a 64-bit signed integer and an IEEE double.
package value

import (
	"fmt"
	"strconv"
)

// kind is unexported so no case can be added outside this package.
type kind uint8

const (
	kindInt kind = iota + 1
	kindDouble
)

// Value holds either an int64 or a float64 payload. The zero Value is invalid
// and is only returned alongside a false "known" flag.
type Value struct {
	k kind
	i int64
	d float64
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{k: kindInt, i: i}
}

// Double returns a floating-point Value.
func Double(d float64) Value {
	return Value{k: kindDouble, d: d}
}

// IsValid reports whether v was built by Int or Double.
func (v Value) IsValid() bool {
	return v.k == kindInt || v.k == kindDouble
}

// IsInt reports whether v carries an integer payload.
func (v Value) IsInt() bool {
	return v.k == kindInt
}

// IsDouble reports whether v carries a floating-point payload.
func (v Value) IsDouble() bool {
	return v.k == kindDouble
}

// AsInt returns the integer payload. It panics if v is not an Int.
func (v Value) AsInt() int64 {
	if v.k != kindInt {
		panic(fmt.Sprintf("value: AsInt called on %s", v.KindName()))
	}
	return v.i
}

// AsDouble returns the floating-point payload. It panics if v is not a Double.
func (v Value) AsDouble() float64 {
	if v.k != kindDouble {
		panic(fmt.Sprintf("value: AsDouble called on %s", v.KindName()))
	}
	return v.d
}

// KindName returns "Int", "Double" or "Invalid".
func (v Value) KindName() string {
	switch v.k {
	case kindInt:
		return "Int"
	case kindDouble:
		return "Double"
	default:
		return "Invalid"
	}
}

// Interface converts v to a native Go value (int64 or float64).
func (v Value) Interface() any {
	switch v.k {
	case kindInt:
		return v.i
	case kindDouble:
		return v.d
	default:
		return nil
	}
}

// IsZero reports whether v equals zero. Negative zero counts as zero.
func (v Value) IsZero() bool {
	switch v.k {
	case kindInt:
		return v.i == 0
	case kindDouble:
		return v.d == 0
	default:
		panic(invalid(v))
	}
}

// Truthy reports whether v counts as true in logical operators. Integers are
// true when nonzero. Every double is true.
func (v Value) Truthy() bool {
	switch v.k {
	case kindInt:
		return v.i != 0
	case kindDouble:
		return true
	default:
		panic(invalid(v))
	}
}

func (v Value) String() string {
	switch v.k {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindDouble:
		s := strconv.FormatFloat(v.d, 'g', -1, 64)
		if isIntegralText(s) {
			s += ".0"
		}
		return s
	default:
		return "<invalid>"
	}
}

func isIntegralText(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

func invalid(v Value) string {
	return fmt.Sprintf("value: operation on %s value", v.KindName())
}
