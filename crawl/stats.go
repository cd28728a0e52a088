package crawl

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved    int
	Failed   int
	Bytes    int
	Duration time.Duration
}

// PagesPerMinute returns the crawl throughput. Returns 0 when no pages
// were saved or the duration is zero.
func (r *Result) PagesPerMinute() float64 {
	if r.Saved == 0 || r.Duration <= 0 {
		return 0
	}
	return float64(r.Saved) / r.Duration.Minutes()
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatDuration formats a duration with second precision for summaries.
func FormatDuration(d time.Duration) string {
	return d.Round(time.Second).String()
}
