package sitefetch

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the content to render,
	// and returns the resulting HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// RobotsPolicy decides whether a URL may be fetched.
// Implementations typically consult the site's robots.txt.
type RobotsPolicy interface {
	// Allowed reports whether the URL may be crawled.
	// A missing or unreadable robots.txt defaults to allow.
	Allowed(ctx context.Context, url string) bool
}
