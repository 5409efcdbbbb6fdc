package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/open-contracting/ocdsindex"
)

// Ensure LoggingIndexService implements ocdsindex.IndexService.
var _ ocdsindex.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with logging.
type LoggingIndexService struct {
	next   ocdsindex.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next ocdsindex.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

// Index delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) Index(ctx context.Context, batch *ocdsindex.Batch) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("index",
			"base_url", batch.BaseURL,
			"languages", len(batch.Documents),
			"count", batch.Documents.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Index(ctx, batch)
}

// Expire delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) Expire(ctx context.Context, before time.Time, exclude []string) (deleted int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("expire",
			"before", before.UTC().Format(time.RFC3339),
			"excluded", len(exclude),
			"count", deleted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Expire(ctx, before, exclude)
}

// Copy delegates to the wrapped service and logs the operation.
func (s *LoggingIndexService) Copy(ctx context.Context, source, destination string) (copied int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("copy",
			"source", source,
			"destination", destination,
			"count", copied,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Copy(ctx, source, destination)
}

// Search delegates to the wrapped service and logs the query.
func (s *LoggingIndexService) Search(ctx context.Context, lang, query string, opts ocdsindex.SearchOptions) (results []ocdsindex.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"language", lang,
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, lang, query, opts)
}

// Languages delegates to the wrapped service.
func (s *LoggingIndexService) Languages(ctx context.Context) ([]string, error) {
	return s.next.Languages(ctx)
}
