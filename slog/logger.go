package slog

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a structured text logger writing to w at the given level.
// Unknown levels log at info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})
	return slog.New(handler)
}
