package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitefetch/sitefetch"
)

// BaseSelector implements the base link extraction logic using CSS selectors.
type BaseSelector struct{}

// NewBaseSelector creates a new BaseSelector.
func NewBaseSelector() *BaseSelector {
	return &BaseSelector{}
}

// Name returns the selector's identifier.
func (s *BaseSelector) Name() string {
	return "base"
}

// ExtractLinks parses HTML and returns discovered links with priority.
func (s *BaseSelector) ExtractLinks(html string, baseURL string) ([]sitefetch.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitefetch.Errorf(sitefetch.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitefetch.Errorf(sitefetch.EINVALID, "failed to parse HTML: %v", err)
	}

	// Use a map to deduplicate and keep highest priority
	seen := make(map[string]sitefetch.DiscoveredLink)

	extractLinks := func(selector string, priority sitefetch.LinkPriority, source string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			// Filter external links
			if !isSameHost(base, resolved) {
				return
			}

			link := sitefetch.DiscoveredLink{
				URL:      resolved,
				Priority: priority,
				Text:     strings.TrimSpace(sel.Text()),
				Source:   source,
			}

			// Keep only if not seen or this has higher priority
			if existing, ok := seen[resolved]; !ok || priority > existing.Priority {
				seen[resolved] = link
			}
		})
	}

	// Extract in priority order (highest first)
	extractLinks("nav a[href]", sitefetch.PriorityNavigation, "nav")
	extractLinks("aside a[href]", sitefetch.PriorityTOC, "sidebar")
	extractLinks("main a[href], article a[href]", sitefetch.PriorityContent, "content")
	extractLinks("footer a[href]", sitefetch.PriorityFooter, "footer")

	// Convert map to slice maintaining insertion order by re-scanning
	var links []sitefetch.DiscoveredLink
	addedURLs := make(map[string]bool)

	addFromSelector := func(selector string) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			if addedURLs[resolved] {
				return
			}

			if link, ok := seen[resolved]; ok {
				links = append(links, link)
				addedURLs[resolved] = true
			}
		})
	}

	addFromSelector("nav a[href]")
	addFromSelector("aside a[href]")
	addFromSelector("main a[href], article a[href]")
	addFromSelector("footer a[href]")

	return links, nil
}
