package readability

import (
	"strings"

	"github.com/sitefetch/sitefetch"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitefetch.Extractor at compile time.
var _ sitefetch.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*sitefetch.ExtractResult, error) {
	if rawHTML == "" {
		return nil, sitefetch.Errorf(sitefetch.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &sitefetch.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
