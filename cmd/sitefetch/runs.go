package main

import (
	"fmt"

	"github.com/sitefetch/sitefetch"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		return c.showRun(deps)
	}

	filter := sitefetch.RunFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.SourceURL = &c.Source
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitefetch.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'sitefetch fetch' to crawl a site.")
		return nil
	}

	for _, r := range runs {
		status := "running"
		if !r.FinishedAt.IsZero() {
			status = fmt.Sprintf("%d saved, %d failed", r.Saved, r.Failed)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.SourceURL, status)
	}

	return nil
}

// showRun prints page-level detail for a single run.
func (c *RunsCmd) showRun(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitefetch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "  source:  %s\n", run.SourceURL)
	fmt.Fprintf(deps.Stdout, "  output:  %s\n", run.OutputDir)
	fmt.Fprintf(deps.Stdout, "  started: %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	if !run.FinishedAt.IsZero() {
		fmt.Fprintf(deps.Stdout, "  saved:   %d\n", run.Saved)
		fmt.Fprintf(deps.Stdout, "  failed:  %d\n", run.Failed)
	}

	results, err := deps.Runs.FindPageResults(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitefetch.ErrorMessage(err))
		return err
	}

	for _, r := range results {
		if r.Status == sitefetch.PageStatusOK {
			fmt.Fprintf(deps.Stdout, "  ok      %s\n", r.URL)
		} else {
			fmt.Fprintf(deps.Stdout, "  failed  %s  (%s)\n", r.URL, r.Error)
		}
	}

	return nil
}
