package precomputed

import "errors"

var (
	ErrNilNode      = errors.New("node is nil")
	ErrNotScalar    = errors.New("node is not a scalar")
	ErrUnknownNode  = errors.New("node is not part of the precomputed expressions")
	ErrBindConstant = errors.New("tried to bind to a constant value")
	ErrBindComputed = errors.New("tried to bind to a value that is computed in the kernel IR")
	ErrEmptyName    = errors.New("named scalar name is empty")
)
