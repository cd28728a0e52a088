package main_test

import (
	"context"
	"testing"

	"github.com/sitefetch/sitefetch"
	main "github.com/sitefetch/sitefetch/cmd/sitefetch"
	"github.com/sitefetch/sitefetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: URL discovery tries the sitemap first, then crawls
//
// Sitemaps are cheap and authoritative when present. CompositeSource
// consults the sitemap service first and only falls back to recursive
// crawling when the sitemap yields nothing.

func TestCompositeSource_Discover(t *testing.T) {
	t.Parallel()

	t.Run("uses sitemap URLs when available", func(t *testing.T) {
		t.Parallel()

		sitemap := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, filter *sitefetch.URLFilter) ([]string, error) {
				return []string{
					"https://example.com/docs/intro",
					"https://example.com/docs/api",
				}, nil
			},
		}

		recursive := &recursiveDiscovererFunc{
			fn: func(_ context.Context, sourceURL string, filter *sitefetch.URLFilter) ([]string, error) {
				t.Error("recursive discovery should not run when the sitemap has URLs")
				return nil, nil
			},
		}

		source := main.NewCompositeSource(sitemap, recursive, nil)

		urls, err := source.Discover(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/intro",
			"https://example.com/docs/api",
		}, urls)
	})

	t.Run("falls back to recursive crawling when sitemap is empty", func(t *testing.T) {
		t.Parallel()

		sitemap := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, filter *sitefetch.URLFilter) ([]string, error) {
				return nil, nil
			},
		}

		recursive := &recursiveDiscovererFunc{
			fn: func(_ context.Context, sourceURL string, filter *sitefetch.URLFilter) ([]string, error) {
				return []string{"https://example.com/docs/found-by-crawl"}, nil
			},
		}

		source := main.NewCompositeSource(sitemap, recursive, nil)

		urls, err := source.Discover(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/found-by-crawl"}, urls)
	})

	t.Run("falls back to the seed URL when nothing is discovered", func(t *testing.T) {
		t.Parallel()

		sitemap := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, filter *sitefetch.URLFilter) ([]string, error) {
				return nil, nil
			},
		}
		recursive := &recursiveDiscovererFunc{
			fn: func(_ context.Context, sourceURL string, filter *sitefetch.URLFilter) ([]string, error) {
				return nil, nil
			},
		}

		source := main.NewCompositeSource(sitemap, recursive, nil)

		urls, err := source.Discover(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs"}, urls)
	})

	t.Run("propagates sitemap errors", func(t *testing.T) {
		t.Parallel()

		sitemap := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, filter *sitefetch.URLFilter) ([]string, error) {
				return nil, sitefetch.Errorf(sitefetch.EUNAVAILABLE, "connection refused")
			},
		}

		source := main.NewCompositeSource(sitemap, nil, nil)

		_, err := source.Discover(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		assert.Equal(t, sitefetch.EUNAVAILABLE, sitefetch.ErrorCode(err))
	})

	t.Run("passes the filter to both discovery paths", func(t *testing.T) {
		t.Parallel()

		filter, err := main.BuildFilter([]string{"/docs/"})
		require.NoError(t, err)

		var sitemapFilter, recursiveFilter *sitefetch.URLFilter
		sitemap := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, f *sitefetch.URLFilter) ([]string, error) {
				sitemapFilter = f
				return nil, nil
			},
		}
		recursive := &recursiveDiscovererFunc{
			fn: func(_ context.Context, sourceURL string, f *sitefetch.URLFilter) ([]string, error) {
				recursiveFilter = f
				return nil, nil
			},
		}

		source := main.NewCompositeSource(sitemap, recursive, filter)

		_, err = source.Discover(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Same(t, filter, sitemapFilter)
		assert.Same(t, filter, recursiveFilter)
	})
}

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for no patterns", func(t *testing.T) {
		t.Parallel()

		filter, err := main.BuildFilter(nil)

		require.NoError(t, err)
		assert.Nil(t, filter)
	})

	t.Run("compiles include and exclude patterns", func(t *testing.T) {
		t.Parallel()

		filter, err := main.BuildFilter([]string{"/docs/", "!/docs/v1/"})

		require.NoError(t, err)
		require.NotNil(t, filter)
		assert.True(t, filter.Match("https://example.com/docs/intro"))
		assert.False(t, filter.Match("https://example.com/docs/v1/intro"))
		assert.False(t, filter.Match("https://example.com/blog/post"))
	})

	t.Run("rejects invalid regex patterns", func(t *testing.T) {
		t.Parallel()

		_, err := main.BuildFilter([]string{"[unclosed"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid filter")
	})
}

// recursiveDiscovererFunc adapts a function to main.RecursiveDiscoverer.
type recursiveDiscovererFunc struct {
	fn func(ctx context.Context, sourceURL string, filter *sitefetch.URLFilter) ([]string, error)
}

func (r *recursiveDiscovererFunc) DiscoverURLs(ctx context.Context, sourceURL string, filter *sitefetch.URLFilter) ([]string, error) {
	return r.fn(ctx, sourceURL, filter)
}
