package evaluator

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/robbyt/go-scalareval/internal/helpers"
)

// FunctionalOption is a function that configures an Evaluator instance
type FunctionalOption func(*Evaluator) error

// WithLogHandler creates an option to set the log handler for the evaluator.
// This is the preferred option for logging configuration as it provides
// more flexibility through the slog.Handler interface.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(e *Evaluator) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		e.logHandler = handler
		e.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the evaluator.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(e *Evaluator) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		e.logger = logger
		e.logHandler = nil
		return nil
	}
}

// WithPrecomputed attaches a precomputed cache. The cache is consulted before
// the environment whenever it reports ready, and receives every named-scalar
// binding.
func WithPrecomputed(cache PrecomputedCache) FunctionalOption {
	return func(e *Evaluator) error {
		if cache == nil {
			return fmt.Errorf("precomputed cache cannot be nil")
		}
		e.precomputed = cache
		return nil
	}
}

// setupLogger configures the logger and handler based on the current state.
func (e *Evaluator) setupLogger() {
	if e.logger != nil {
		e.logHandler = e.logger.Handler()
	} else {
		e.logHandler, e.logger = helpers.SetupLogger(e.logHandler, "scalareval", "Evaluator")
	}
}

// validate checks if the evaluator configuration is valid
func (e *Evaluator) validate() error {
	if e.logHandler == nil && e.logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}
	return nil
}

// applyDefaults sets the default values for an evaluator
func (e *Evaluator) applyDefaults() {
	if e.logHandler == nil && e.logger == nil {
		e.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}
}
