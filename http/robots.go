package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/sitefetch/sitefetch"
	"github.com/temoto/robotstxt"
)

// Ensure RobotsPolicy implements sitefetch.RobotsPolicy.
var _ sitefetch.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy answers robots.txt permission checks, caching the parsed
// robots.txt per host. A missing or unreadable robots.txt allows
// everything.
type RobotsPolicy struct {
	client    *http.Client
	userAgent string

	mu     sync.Mutex
	groups map[string]*robotstxt.Group // keyed by scheme://host
}

// NewRobotsPolicy creates a RobotsPolicy using the given HTTP client and
// user agent. If client is nil, http.DefaultClient is used.
func NewRobotsPolicy(client *http.Client, userAgent string) *RobotsPolicy {
	if client == nil {
		client = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = sitefetch.DefaultUserAgent
	}
	return &RobotsPolicy{
		client:    client,
		userAgent: userAgent,
		groups:    make(map[string]*robotstxt.Group),
	}
}

// Allowed reports whether the policy permits fetching targetURL.
// Unparseable URLs are allowed; robots checks are advisory and the
// fetch itself will surface real errors.
func (p *RobotsPolicy) Allowed(ctx context.Context, targetURL string) bool {
	parsed, err := url.Parse(targetURL)
	if err != nil || parsed.Host == "" {
		return true
	}

	group := p.groupFor(ctx, parsed)
	if group == nil {
		return true
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	return group.Test(path)
}

// groupFor returns the cached robots.txt group for the URL's host,
// fetching and parsing it on first use. Returns nil when robots.txt is
// missing or unreadable.
func (p *RobotsPolicy) groupFor(ctx context.Context, u *url.URL) *robotstxt.Group {
	key := u.Scheme + "://" + u.Host

	p.mu.Lock()
	defer p.mu.Unlock()

	if group, ok := p.groups[key]; ok {
		return group
	}

	group := p.fetchGroup(ctx, key)
	p.groups[key] = group
	return group
}

func (p *RobotsPolicy) fetchGroup(ctx context.Context, base string) *robotstxt.Group {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	robots, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil
	}
	return robots.FindGroup(p.userAgent)
}
