package mock

import "github.com/sitefetch/sitefetch"

var _ sitefetch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitefetch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitefetch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitefetch.ExtractResult, error) {
	return e.ExtractFn(html)
}
