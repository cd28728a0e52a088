package mock

import (
	"context"

	"github.com/sitefetch/sitefetch"
)

var _ sitefetch.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of sitefetch.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *sitefetch.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *sitefetch.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
