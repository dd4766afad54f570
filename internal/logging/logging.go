// Package logging builds the process logger from command line flags.
package logging

import (
	"io"
	"log/slog"
)

// LevelFromFlags returns the level selected by the verbose and quiet flags.
// Verbose wins when both are set.
func LevelFromFlags(verbose, quiet bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w at the level chosen by the flags
func New(w io.Writer, verbose, quiet bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: LevelFromFlags(verbose, quiet),
	}))
}

// Setup creates a logger with New and installs it as the slog default
func Setup(w io.Writer, verbose, quiet bool) *slog.Logger {
	logger := New(w, verbose, quiet)
	slog.SetDefault(logger)
	return logger
}
