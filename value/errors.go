package value

import "errors"

var (
	ErrKindMismatch   = errors.New("operands have different numeric kinds")
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidCast    = errors.New("value cannot be represented in the target kind")
)
