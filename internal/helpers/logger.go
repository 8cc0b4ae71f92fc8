package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns a handler and a logger for an evaluation component.
// A nil handler is replaced by a text handler on stdout grouped under
// component, and a warning is logged. When group is not empty the logger is
// nested one group deeper than the returned handler.
func SetupLogger(handler slog.Handler, component string, group string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, nil).WithGroup(component)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if group == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(group))
}
