// Package slog provides logging decorators for ocdsindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/open-contracting/ocdsindex"
	"golang.org/x/net/html"
)

// Ensure LoggingExtractor implements ocdsindex.Extractor.
var _ ocdsindex.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging per page.
type LoggingExtractor struct {
	next   ocdsindex.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ocdsindex.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the page.
func (e *LoggingExtractor) Extract(url string, root *html.Node) (records []ocdsindex.Record, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		e.logger.Log(context.Background(), level, "extract",
			"url", url,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(url, root)
}
