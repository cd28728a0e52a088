// Package rod provides a Fetcher that renders pages in a headless
// Chrome browser, for sites that build their content with JavaScript.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/sitefetch/sitefetch"
)

// Ensure Fetcher implements sitefetch.Fetcher at compile time.
var _ sitefetch.Fetcher = (*Fetcher)(nil)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 30 * time.Second

// serializeScript walks the DOM and inlines open shadow roots so that
// content rendered inside Web Components survives serialization.
// page.HTML() alone drops shadow DOM subtrees.
const serializeScript = `() => {
	const serialize = (node) => {
		if (node.nodeType === Node.TEXT_NODE) return node.textContent;
		if (node.nodeType !== Node.ELEMENT_NODE) return '';
		let html = '<' + node.localName;
		for (const attr of node.attributes) {
			html += ' ' + attr.name + '="' + attr.value.replace(/"/g, '&quot;') + '"';
		}
		html += '>';
		if (node.shadowRoot) {
			for (const child of node.shadowRoot.childNodes) html += serialize(child);
		}
		for (const child of node.childNodes) html += serialize(child);
		html += '</' + node.localName + '>';
		return html;
	};
	return '<!DOCTYPE html>' + serialize(document.documentElement);
}`

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// The underlying browser is recycled periodically to keep Chrome's memory
// use bounded. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager     *BrowserManager
	timeout     time.Duration
	renderDelay atomic.Int64 // nanoseconds to wait after load
	closed      atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the maximum duration for a single Fetch call.
// Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f.manager = manager
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML, including
// content inside open shadow roots.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", sitefetch.Errorf(sitefetch.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Some frameworks hydrate content after load; give them time to settle.
	if delay := time.Duration(f.renderDelay.Load()); delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	result, err := page.Eval(serializeScript)
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return result.Value.Str(), nil
}

// SetRenderDelay configures how long to wait after page load before
// serializing the DOM. Safe to call concurrently with Fetch.
func (f *Fetcher) SetRenderDelay(d time.Duration) {
	f.renderDelay.Store(int64(d))
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
