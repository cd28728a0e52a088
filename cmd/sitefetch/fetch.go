package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sitefetch/sitefetch"
	"github.com/sitefetch/sitefetch/crawl"
	"github.com/sitefetch/sitefetch/fs"
	"github.com/sitefetch/sitefetch/markdown"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	// Filter patterns must compile before any network traffic.
	// The filter itself is applied on the discovery side (URL source).
	if _, err := BuildFilter(c.Filter); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	// Preview mode: show URLs without creating files
	if c.Preview {
		return c.runPreview(deps)
	}

	if c.Name == "" {
		return fmt.Errorf("name is required when not in preview mode")
	}

	return c.runFetch(deps)
}

func (c *FetchCmd) runPreview(deps *Dependencies) error {
	urls, err := deps.Source.Discover(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitefetch.ErrorMessage(err))
		return err
	}

	urls = c.applyLimit(urls)

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}

func (c *FetchCmd) runFetch(deps *Dependencies) error {
	started := time.Now()

	// Discover URLs
	urls, err := deps.Source.Discover(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitefetch.ErrorMessage(err))
		return err
	}

	urls = c.applyLimit(urls)
	fmt.Fprintf(deps.Stdout, "Found %d URLs\n", len(urls))

	store := deps.Store
	if store == nil {
		store = fs.NewFileStore(c.Path, c.Name)
		deps.Store = store
	}

	outputDir := filepath.Join(c.Path, c.Name)

	// Record the run unless history is disabled
	var run *sitefetch.CrawlRun
	if !c.NoHistory && deps.Runs != nil {
		run = &sitefetch.CrawlRun{
			SourceURL: c.URL,
			OutputDir: outputDir,
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to record run: %v\n", err)
			run = nil
		}
	}

	// Fetch pages with progress reporting, collecting failures for the report
	var failures []*sitefetch.PageResult
	progress := func(p sitefetch.FetchProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.URL, p.Error)
			failures = append(failures, &sitefetch.PageResult{
				URL:    p.URL,
				Status: sitefetch.PageStatusFailed,
				Error:  p.Error.Error(),
			})
		}
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, crawl.TruncateURL(p.URL, 40))
	}

	pages, err := deps.Fetcher.FetchAll(deps.Ctx, urls, progress)
	if err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error fetching: %v\n", err)
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	// Save pages
	var bytes int
	for _, page := range pages {
		if err := store.Save(deps.Ctx, page); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", page.URL, err)
			return err
		}
		bytes += len(page.Content)
	}

	// Commit or abort based on success. Even with nothing saved the run
	// and its failures are recorded so history shows what went wrong.
	if len(pages) == 0 {
		_ = store.Abort()

		result := crawl.Result{
			Failed:   len(failures),
			Duration: time.Since(started),
		}
		if run != nil {
			c.recordHistory(deps, run, failures, result)
		}

		fmt.Fprintln(deps.Stdout, "No pages saved")
		if result.Failed > 0 {
			fmt.Fprintf(deps.Stdout, "%d pages failed\n", result.Failed)
		}
		return nil
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}

	result := crawl.Result{
		Saved:    len(pages),
		Failed:   len(failures),
		Bytes:    bytes,
		Duration: time.Since(started),
	}

	results := c.pageResults(pages, failures)

	if run != nil {
		c.recordHistory(deps, run, results, result)
	}

	if err := c.writeReport(deps, run, results, outputDir, result); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to write report: %v\n", err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages (%s) in %s (%.1f pages/min)\n",
		result.Saved, crawl.FormatBytes(result.Bytes),
		crawl.FormatDuration(result.Duration), result.PagesPerMinute())
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "%d pages failed\n", result.Failed)
	}

	return nil
}

// applyLimit truncates the URL list when --limit is set.
func (c *FetchCmd) applyLimit(urls []string) []string {
	if c.Limit > 0 && len(urls) > c.Limit {
		return urls[:c.Limit]
	}
	return urls
}

// pageResults builds per-page outcomes for history and the report.
func (c *FetchCmd) pageResults(pages []*sitefetch.Page, failures []*sitefetch.PageResult) []*sitefetch.PageResult {
	results := make([]*sitefetch.PageResult, 0, len(pages)+len(failures))
	for _, page := range pages {
		filePath, err := fs.URLToPath(page.URL)
		if err != nil {
			filePath = ""
		}
		results = append(results, &sitefetch.PageResult{
			URL:         page.URL,
			Title:       page.Title,
			FilePath:    filePath,
			ContentHash: crawl.ComputeHash(page.Content),
			Status:      sitefetch.PageStatusOK,
		})
	}
	return append(results, failures...)
}

// recordHistory finalizes the run row and inserts page results.
func (c *FetchCmd) recordHistory(deps *Dependencies, run *sitefetch.CrawlRun, results []*sitefetch.PageResult, result crawl.Result) {
	for _, r := range results {
		r.RunID = run.ID
		if err := deps.Runs.CreatePageResult(deps.Ctx, r); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to record page %s: %v\n", r.URL, err)
		}
	}

	run.Saved = result.Saved
	run.Failed = result.Failed
	run.Bytes = result.Bytes
	run.FinishedAt = run.StartedAt.Add(result.Duration)
	if err := deps.Runs.FinishRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to finish run: %v\n", err)
	}
}

// writeReport renders <name>.report.md next to the output directory.
func (c *FetchCmd) writeReport(deps *Dependencies, run *sitefetch.CrawlRun, results []*sitefetch.PageResult, outputDir string, result crawl.Result) error {
	if run == nil {
		// History disabled; synthesize a run for the report only.
		now := time.Now()
		run = &sitefetch.CrawlRun{
			SourceURL:  c.URL,
			OutputDir:  outputDir,
			StartedAt:  now.Add(-result.Duration),
			FinishedAt: now,
			Saved:      result.Saved,
			Failed:     result.Failed,
			Bytes:      result.Bytes,
		}
	}

	path := filepath.Join(c.Path, c.Name+".report.md")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return markdown.NewReportWriter(f).Write(run, results)
}
