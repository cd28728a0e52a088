// Package crawl provides crawling orchestration: concurrent fetching of
// page URLs with retry, per-domain rate limiting and robots.txt
// politeness, plus recursive URL discovery for sites without sitemaps.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/sitefetch/sitefetch"
	"golang.org/x/sync/errgroup"
)

// Ensure Crawler implements sitefetch.PageFetcher at compile time.
var _ sitefetch.PageFetcher = (*Crawler)(nil)

// Crawler fetches a list of page URLs concurrently and converts each page
// to markdown. Fetching, extraction and conversion are delegated to the
// injected dependencies; the Crawler owns concurrency, retries, rate
// limiting and robots policy.
type Crawler struct {
	Fetcher     sitefetch.Fetcher
	Extractor   sitefetch.Extractor
	Converter   sitefetch.Converter
	Robots      sitefetch.RobotsPolicy  // optional; nil allows everything
	RateLimiter sitefetch.DomainLimiter // optional; nil means unthrottled
	Concurrency int
	RetryDelays []time.Duration
}

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	position   int
	url        string
	title      string
	markdown   string
	err        error
	discovered []sitefetch.DiscoveredLink
}

// FetchAll retrieves and converts all pages at the given URLs.
// Pages are returned in input order; failed URLs are reported through the
// progress callback and skipped. The error is non-nil only when the
// context is canceled before the crawl completes.
func (c *Crawler) FetchAll(ctx context.Context, urls []string, progress sitefetch.FetchProgressFunc) ([]*sitefetch.Page, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = sitefetch.DefaultConcurrency
	}

	total := len(urls)
	resultCh := make(chan crawlResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				result := c.processURL(gctx, i, u)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order
	results := make([]crawlResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress != nil {
			progress(sitefetch.FetchProgress{
				URL:       result.url,
				Completed: int(completed.Load()),
				Total:     total,
				Error:     result.err,
			})
		}
	}

	var pages []*sitefetch.Page
	for _, result := range results {
		if result.err != nil {
			continue
		}
		pages = append(pages, &sitefetch.Page{
			URL:     result.url,
			Title:   result.title,
			Content: result.markdown,
		})
	}

	return pages, ctx.Err()
}

// processURL fetches and processes a single URL.
func (c *Crawler) processURL(ctx context.Context, position int, rawURL string) crawlResult {
	result := crawlResult{
		position: position,
		url:      rawURL,
	}

	if c.Robots != nil && !c.Robots.Allowed(ctx, rawURL) {
		result.err = sitefetch.Errorf(sitefetch.EINVALID, "disallowed by robots.txt: %s", rawURL)
		return result
	}

	if c.RateLimiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := c.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	// Fetch with retry
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return c.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, fetchFn, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	// Extract content
	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	// Convert to markdown
	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	result.title = extracted.Title
	result.markdown = markdown

	return result
}
