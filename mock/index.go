package mock

import (
	"context"
	"time"

	"github.com/open-contracting/ocdsindex"
)

var _ ocdsindex.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of ocdsindex.IndexService.
type IndexService struct {
	IndexFn     func(ctx context.Context, batch *ocdsindex.Batch) error
	ExpireFn    func(ctx context.Context, before time.Time, exclude []string) (int, error)
	CopyFn      func(ctx context.Context, source, destination string) (int, error)
	SearchFn    func(ctx context.Context, lang, query string, opts ocdsindex.SearchOptions) ([]ocdsindex.SearchResult, error)
	LanguagesFn func(ctx context.Context) ([]string, error)
}

func (s *IndexService) Index(ctx context.Context, batch *ocdsindex.Batch) error {
	return s.IndexFn(ctx, batch)
}

func (s *IndexService) Expire(ctx context.Context, before time.Time, exclude []string) (int, error) {
	return s.ExpireFn(ctx, before, exclude)
}

func (s *IndexService) Copy(ctx context.Context, source, destination string) (int, error) {
	return s.CopyFn(ctx, source, destination)
}

func (s *IndexService) Search(ctx context.Context, lang, query string, opts ocdsindex.SearchOptions) ([]ocdsindex.SearchResult, error) {
	return s.SearchFn(ctx, lang, query, opts)
}

func (s *IndexService) Languages(ctx context.Context) ([]string, error) {
	return s.LanguagesFn(ctx)
}
