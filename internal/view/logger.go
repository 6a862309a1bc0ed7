package view

import (
	"io"
	"log/slog"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger routes the package's diagnostics to l. The default logger
// discards everything.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the logger currently in use.
func Logger() *slog.Logger { return logger }
