// Package log provides the structured logger used for pipeline
// observability (dropped rows, repaired amounts, fit timing).
package log

import (
	"log/slog"
	"os"
)

// New returns a component-scoped logger writing to stderr so table
// output on stdout stays clean. Verbose enables debug-level records.
func New(component string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("component", component)
}
