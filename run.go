package sitefetch

import (
	"context"
	"time"
)

// Page result statuses.
const (
	PageStatusOK     = "ok"
	PageStatusFailed = "failed"
)

// CrawlRun represents a single invocation of the crawler against a site.
type CrawlRun struct {
	ID         string    `json:"id"`
	SourceURL  string    `json:"sourceUrl"`
	OutputDir  string    `json:"outputDir"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Saved      int       `json:"saved"`
	Failed     int       `json:"failed"`
	Bytes      int       `json:"bytes"`
}

// Validate returns an error if the run contains invalid fields.
func (r *CrawlRun) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "run source URL required")
	}
	return nil
}

// PageResult records the outcome of fetching a single page during a run.
type PageResult struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	FilePath    string    `json:"filePath"`
	ContentHash string    `json:"contentHash"`
	Status      string    `json:"status"`
	Error       string    `json:"error"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page result contains invalid fields.
func (p *PageResult) Validate() error {
	if p.RunID == "" {
		return Errorf(EINVALID, "page result run ID required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page result URL required")
	}
	if p.Status != PageStatusOK && p.Status != PageStatusFailed {
		return Errorf(EINVALID, "page result status must be %q or %q", PageStatusOK, PageStatusFailed)
	}
	return nil
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunService records crawl runs and their per-page outcomes.
type RunService interface {
	// CreateRun records the start of a crawl run. The run's ID and
	// StartedAt are assigned by the implementation.
	CreateRun(ctx context.Context, run *CrawlRun) error

	// FinishRun records final counters and the finish timestamp.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, run *CrawlRun) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*CrawlRun, error)

	// FindRuns retrieves runs matching the filter, most recent first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*CrawlRun, error)

	// CreatePageResult records the outcome of a single page fetch.
	CreatePageResult(ctx context.Context, result *PageResult) error

	// FindPageResults retrieves page outcomes for a run in insertion order.
	FindPageResults(ctx context.Context, runID string) ([]*PageResult, error)
}
