package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sitefetch/sitefetch"
)

// Frontier configuration for recursive discovery.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// maxDiscoveryURLs limits the number of URLs processed to prevent runaway crawls.
	maxDiscoveryURLs = 1000
)

// Discoverer finds page URLs by recursively following links from a seed
// URL. It is the fallback used when sitemap discovery yields nothing.
//
// The Discoverer probes the seed URL to decide whether plain HTTP or a
// rendering browser is needed, then walks a priority frontier bounded to
// the seed's host and path prefix.
type Discoverer struct {
	HTTPFetcher   sitefetch.Fetcher
	RodFetcher    sitefetch.Fetcher
	Prober        sitefetch.Prober
	Extractor     sitefetch.Extractor
	LinkSelectors sitefetch.LinkSelectorRegistry
	RateLimiter   sitefetch.DomainLimiter
	Concurrency   int
	RetryDelays   []time.Duration
}

// DiscoverURLs recursively discovers URLs from a site.
// It follows links within the path prefix scope of the source URL.
//
// Discovery stops after processing maxDiscoveryURLs (1000) URLs.
func (d *Discoverer) DiscoverURLs(ctx context.Context, sourceURL string, urlFilter *sitefetch.URLFilter) ([]string, error) {
	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = 3 // lower than full crawl to avoid overwhelming browsers
	}
	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	// Probe to determine which fetcher to use
	fetcher := d.probeFetcher(ctx, sourceURL)

	// Collected URLs (handleResult is called sequentially from the coordinator)
	var urls []string

	processURL := func(ctx context.Context, link sitefetch.DiscoveredLink) crawlResult {
		result := crawlResult{url: link.URL}

		linkURL, err := url.Parse(link.URL)
		if err != nil {
			result.err = err
			return result
		}

		if d.RateLimiter != nil {
			if err := d.RateLimiter.Wait(ctx, linkURL.Host); err != nil {
				result.err = err
				return result
			}
		}

		fetchFn := func(ctx context.Context, url string) (string, error) {
			return fetcher.Fetch(ctx, url)
		}
		html, err := FetchWithRetryDelays(ctx, link.URL, fetchFn, nil, delays)
		if err != nil {
			result.err = err
			return result
		}

		// Extract links for the frontier
		selector := d.LinkSelectors.GetForHTML(html)
		links, err := selector.ExtractLinks(html, link.URL)
		if err == nil {
			result.discovered = links
		}

		return result
	}

	handleResult := func(result *crawlResult) {
		if result.err == nil {
			urls = append(urls, result.url)
		}
	}

	if err := walkFrontier(ctx, sourceURL, urlFilter, concurrency, processURL, handleResult); err != nil {
		return nil, err
	}

	return urls, nil
}

// probeFetcher determines which fetcher to use by probing the seed URL.
//
// Logic:
//  1. HTTP fetch the seed URL
//  2. Detect the framework
//  3. Known framework: use HTTP or the browser based on RequiresJS
//  4. Unknown framework: fetch with the browser too and compare content
//  5. HTTP failure: fall back to the browser
func (d *Discoverer) probeFetcher(ctx context.Context, probeURL string) sitefetch.Fetcher {
	// Without a browser the HTTP fetcher is the only option.
	if d.RodFetcher == nil {
		return d.HTTPFetcher
	}

	httpHTML, httpErr := d.HTTPFetcher.Fetch(ctx, probeURL)
	if httpErr != nil {
		return d.RodFetcher
	}

	framework := d.Prober.Detect(httpHTML)
	requiresJS, known := d.Prober.RequiresJS(framework)

	if known {
		if requiresJS {
			return d.RodFetcher
		}
		return d.HTTPFetcher
	}

	rodHTML, rodErr := d.RodFetcher.Fetch(ctx, probeURL)
	if rodErr != nil {
		return d.HTTPFetcher
	}

	if ContentDiffers(httpHTML, rodHTML, d.Extractor) {
		return d.RodFetcher
	}
	return d.HTTPFetcher
}

// walkProcessor processes a URL and returns a crawlResult.
type walkProcessor func(ctx context.Context, link sitefetch.DiscoveredLink) crawlResult

// walkResultHandler handles a completed crawlResult. It is called from the
// coordinator goroutine, so it needs no synchronization.
type walkResultHandler func(result *crawlResult)

// walkFrontier manages concurrent URL processing starting from sourceURL:
// frontier management with Bloom filter deduplication, a worker pool, and
// work dispatch with scope filtering of discovered links.
func walkFrontier(
	ctx context.Context,
	sourceURL string,
	urlFilter *sitefetch.URLFilter,
	concurrency int,
	processURL walkProcessor,
	handleResult walkResultHandler,
) error {
	// Parse source URL to get base path for scope limiting
	parsedSourceURL, err := url.Parse(sourceURL)
	if err != nil {
		return fmt.Errorf("invalid source URL: %w", err)
	}
	pathPrefix := parsedSourceURL.Path

	// Create frontier and seed with source URL
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(sitefetch.DiscoveredLink{
		URL:      sourceURL,
		Priority: sitefetch.PriorityNavigation,
	})

	// Channels for worker coordination
	workCh := make(chan sitefetch.DiscoveredLink, concurrency)
	resultCh := make(chan crawlResult)

	// Start worker pool
	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for link := range workCh {
				result := processURL(ctx, link)
				select {
				case resultCh <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Close result channel when all workers are done
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// enqueueLinks adds in-scope discovered links to the frontier.
	enqueueLinks := func(result *crawlResult) {
		for _, discovered := range result.discovered {
			discoveredURL, err := url.Parse(discovered.URL)
			if err != nil {
				continue
			}
			if discoveredURL.Host != parsedSourceURL.Host {
				continue
			}
			if !strings.HasPrefix(discoveredURL.Path, pathPrefix) {
				continue
			}
			if !urlFilter.Match(discovered.URL) {
				continue
			}
			frontier.Push(discovered)
		}
	}

	// Coordinator loop
	dispatched := 0 // URLs handed to workers
	pending := 0    // URLs currently being processed
	var nextLink *sitefetch.DiscoveredLink

	if link, ok := frontier.Pop(); ok {
		nextLink = &link
	}

coordinatorLoop:
	for {
		if nextLink == nil && pending == 0 {
			break coordinatorLoop
		}
		if ctx.Err() != nil {
			break coordinatorLoop
		}

		// Try to dispatch work or receive results
		if nextLink != nil && dispatched < maxDiscoveryURLs {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *nextLink:
				dispatched++
				pending++
				nextLink = nil
			case crawlRes := <-resultCh:
				pending--
				enqueueLinks(&crawlRes)
				handleResult(&crawlRes)
			}
		} else {
			// No more work to dispatch, just receive results
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case crawlRes, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				pending--
				enqueueLinks(&crawlRes)
				handleResult(&crawlRes)
			}
		}

		// Try to get next link if we don't have one
		if nextLink == nil && dispatched < maxDiscoveryURLs {
			if link, ok := frontier.Pop(); ok {
				nextLink = &link
			}
		}
	}

	// Signal workers to stop and drain remaining results
	close(workCh)

	drainTimeout := time.After(5 * time.Second)
drainLoop:
	for {
		select {
		case crawlRes, ok := <-resultCh:
			if !ok {
				break drainLoop
			}
			enqueueLinks(&crawlRes)
			handleResult(&crawlRes)
		case <-drainTimeout:
			break drainLoop
		}
	}

	return nil
}
