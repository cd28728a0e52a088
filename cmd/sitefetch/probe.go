package main

import (
	"context"
	"sync"
	"time"

	"github.com/sitefetch/sitefetch"
	"github.com/sitefetch/sitefetch/crawl"
)

// RenderDelayConfigurer can configure a render delay.
// The Rod fetcher implements this interface.
type RenderDelayConfigurer interface {
	SetRenderDelay(d time.Duration)
}

// ProbeFetcher probes a source URL to determine which fetcher to use.
// It fetches HTML using the HTTP fetcher, detects the framework,
// and returns the appropriate fetcher based on JS requirements.
//
// Decision flow:
//   - Known JS-required framework (GitBook) → Use Rod with framework-specific delay
//   - Known HTTP-only framework (Sphinx, MkDocs, etc.) → Use HTTP
//   - Unknown framework → Fetch with both, compare content
//   - HTTP fetch fails → Fall back to Rod
//
// Always returns a valid fetcher; never fails. When rodFetcher is nil
// (no browser available) the HTTP fetcher is returned regardless.
func ProbeFetcher(
	ctx context.Context,
	sourceURL string,
	httpFetcher sitefetch.Fetcher,
	rodFetcher sitefetch.Fetcher,
	prober sitefetch.Prober,
	extractor sitefetch.Extractor,
) sitefetch.Fetcher {
	if rodFetcher == nil {
		return httpFetcher
	}

	// Fetch HTML using HTTP fetcher for probing
	httpHTML, httpErr := httpFetcher.Fetch(ctx, sourceURL)
	if httpErr != nil {
		// HTTP failed, fall back to Rod
		return rodFetcher
	}

	// Detect the framework
	framework := prober.Detect(httpHTML)

	// Configure render delay for detected framework
	if delay := prober.RenderDelay(framework); delay > 0 {
		if configurer, ok := rodFetcher.(RenderDelayConfigurer); ok {
			configurer.SetRenderDelay(delay)
		}
	}

	// Check if the framework requires JavaScript
	requiresJS, known := prober.RequiresJS(framework)

	if known {
		if requiresJS {
			return rodFetcher
		}
		return httpFetcher
	}

	// Unknown framework: fetch with Rod and compare content
	rodHTML, rodErr := rodFetcher.Fetch(ctx, sourceURL)
	if rodErr != nil {
		// Rod failed, use HTTP (best effort)
		return httpFetcher
	}

	if crawl.ContentDiffers(httpHTML, rodHTML, extractor) {
		return rodFetcher
	}

	return httpFetcher
}

// LazyFetcher defers fetcher selection until the first page is fetched.
// Wiring runs before the command validates its flags, and preview mode
// never fetches pages at all, so probing the seed there would spend a
// network round trip that may never be needed.
type LazyFetcher struct {
	once   sync.Once
	probe  func(ctx context.Context) sitefetch.Fetcher
	chosen sitefetch.Fetcher
}

// NewLazyFetcher returns a fetcher that invokes probe once, on first use.
func NewLazyFetcher(probe func(ctx context.Context) sitefetch.Fetcher) *LazyFetcher {
	return &LazyFetcher{probe: probe}
}

func (f *LazyFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.once.Do(func() {
		f.chosen = f.probe(ctx)
	})
	return f.chosen.Fetch(ctx, url)
}

func (f *LazyFetcher) Close() error {
	if f.chosen == nil {
		return nil
	}
	return f.chosen.Close()
}
