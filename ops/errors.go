package ops

import "errors"

var (
	ErrUnsupportedOp    = errors.New("unexpected operator type")
	ErrUnsupportedDType = errors.New("dtype not supported in evaluator")
)
