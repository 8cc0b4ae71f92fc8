package data

import "errors"

var (
	ErrStaticProviderNoRuntimeUpdates = errors.New("StaticProvider doesn't support adding data at runtime")
	ErrInvalidExtent                  = errors.New("launch extent must be an integral number")
	ErrEmptyKey                       = errors.New("empty keys are not allowed")
)
