package main

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sitefetch/sitefetch"
)

// Compile-time interface verification.
var _ sitefetch.URLSource = (*CompositeSource)(nil)

// RecursiveDiscoverer discovers URLs by recursively crawling a site.
type RecursiveDiscoverer interface {
	DiscoverURLs(ctx context.Context, sourceURL string, filter *sitefetch.URLFilter) ([]string, error)
}

// CompositeSource implements sitefetch.URLSource by trying sitemap discovery
// first and falling back to recursive crawling if the sitemap is empty.
type CompositeSource struct {
	sitemap   sitefetch.SitemapService
	recursive RecursiveDiscoverer
	filter    *sitefetch.URLFilter
}

// NewCompositeSource creates a new CompositeSource.
// The sitemap parameter is used for sitemap-based discovery.
// The recursive parameter is used when sitemap returns no URLs.
// The filter, when non-nil, restricts discovered URLs on both paths.
func NewCompositeSource(sitemap sitefetch.SitemapService, recursive RecursiveDiscoverer, filter *sitefetch.URLFilter) *CompositeSource {
	return &CompositeSource{
		sitemap:   sitemap,
		recursive: recursive,
		filter:    filter,
	}
}

// Discover implements sitefetch.URLSource.
func (s *CompositeSource) Discover(ctx context.Context, sourceURL string) ([]string, error) {
	urls, err := s.sitemap.DiscoverURLs(ctx, sourceURL, s.filter)
	if err != nil {
		return nil, err
	}

	if len(urls) > 0 {
		return urls, nil
	}

	// Fallback to recursive discovery
	if s.recursive != nil {
		urls, err = s.recursive.DiscoverURLs(ctx, sourceURL, s.filter)
		if err != nil {
			return nil, err
		}
	}

	if len(urls) == 0 {
		// Nothing discovered; crawl the seed itself.
		return []string{sourceURL}, nil
	}

	return urls, nil
}

// parsedFilter builds a URL filter from repeated -F flags.
// A leading "!" marks an exclude pattern, anything else is an include.
// Returns nil when no filters were given.
func parsedFilter(cli *CLI) *sitefetch.URLFilter {
	filter, err := BuildFilter(cli.Fetch.Filter)
	if err != nil {
		// Invalid patterns surface during flag validation in FetchCmd.Run.
		return nil
	}
	return filter
}

// BuildFilter compiles filter expressions into a URLFilter.
// A leading "!" marks an exclude pattern, anything else is an include.
func BuildFilter(patterns []string) (*sitefetch.URLFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	filter := &sitefetch.URLFilter{}
	for _, p := range patterns {
		expr := p
		exclude := false
		if strings.HasPrefix(expr, "!") {
			exclude = true
			expr = expr[1:]
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", p, err)
		}

		if exclude {
			filter.Exclude = append(filter.Exclude, re)
		} else {
			filter.Include = append(filter.Include, re)
		}
	}

	return filter, nil
}
