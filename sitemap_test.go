package sitefetch_test

import (
	"regexp"
	"testing"

	"github.com/sitefetch/sitefetch"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter *sitefetch.URLFilter
		url    string
		want   bool
	}{
		{
			name:   "nil filter passes everything",
			filter: nil,
			url:    "https://example.com/docs/intro",
			want:   true,
		},
		{
			name:   "empty filter passes everything",
			filter: &sitefetch.URLFilter{},
			url:    "https://example.com/blog/post",
			want:   true,
		},
		{
			name: "include match",
			filter: &sitefetch.URLFilter{
				Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			},
			url:  "https://example.com/docs/intro",
			want: true,
		},
		{
			name: "include miss",
			filter: &sitefetch.URLFilter{
				Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
			},
			url:  "https://example.com/blog/post",
			want: false,
		},
		{
			name: "exclude wins over include",
			filter: &sitefetch.URLFilter{
				Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)},
				Exclude: []*regexp.Regexp{regexp.MustCompile(`/docs/v1/`)},
			},
			url:  "https://example.com/docs/v1/intro",
			want: false,
		},
		{
			name: "exclude only",
			filter: &sitefetch.URLFilter{
				Exclude: []*regexp.Regexp{regexp.MustCompile(`\.pdf$`)},
			},
			url:  "https://example.com/manual.pdf",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.filter.Match(tt.url))
		})
	}
}
