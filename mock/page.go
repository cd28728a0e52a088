package mock

import (
	"context"

	"github.com/sitefetch/sitefetch"
)

// Compile-time interface verification.
var (
	_ sitefetch.URLSource   = (*URLSource)(nil)
	_ sitefetch.PageFetcher = (*PageFetcher)(nil)
	_ sitefetch.PageStore   = (*PageStore)(nil)
)

// URLSource is a mock implementation of sitefetch.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, sourceURL string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	return s.DiscoverFn(ctx, sourceURL)
}

// PageFetcher is a mock implementation of sitefetch.PageFetcher.
type PageFetcher struct {
	FetchAllFn func(ctx context.Context, urls []string, progress sitefetch.FetchProgressFunc) ([]*sitefetch.Page, error)
}

func (f *PageFetcher) FetchAll(ctx context.Context, urls []string, progress sitefetch.FetchProgressFunc) ([]*sitefetch.Page, error) {
	return f.FetchAllFn(ctx, urls, progress)
}

// PageStore is a mock implementation of sitefetch.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *sitefetch.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *sitefetch.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
