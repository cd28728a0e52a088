package mock

import "github.com/sitefetch/sitefetch"

var _ sitefetch.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitefetch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
