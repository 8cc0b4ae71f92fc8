package data

import (
	"fmt"
	"math"
)

// ToExtent converts a provider value to an int64 extent. Signed and unsigned
// integers within range and integral floats are accepted.
func ToExtent(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return fromUnsigned(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return fromUnsigned(n)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidExtent, v)
	}
}

func fromUnsigned(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d overflows int64", ErrInvalidExtent, u)
	}
	return int64(u), nil
}

func fromFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidExtent, f)
	}
	return int64(f), nil
}
