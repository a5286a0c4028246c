package engine

import (
	"io"
	"log/slog"
)

// NewLogger builds the diagnostic logger. Warnings are always shown;
// verbose adds the per-step debug trail.
func NewLogger(w io.Writer, jsonLogs, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if jsonLogs {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
