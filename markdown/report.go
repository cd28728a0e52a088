// Package markdown renders crawl reports using the nao1215/markdown
// fluent builder.
package markdown

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/sitefetch/sitefetch"
)

// ReportWriter renders a crawl run summary as a markdown document.
type ReportWriter struct {
	output io.Writer
}

// NewReportWriter creates a ReportWriter that writes to output.
func NewReportWriter(output io.Writer) *ReportWriter {
	return &ReportWriter{output: output}
}

// Write renders the run and its page results.
func (w *ReportWriter) Write(run *sitefetch.CrawlRun, results []*sitefetch.PageResult) error {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, run)
	w.writeSummary(md, run)
	w.writePages(md, results)

	return md.Build()
}

func (w *ReportWriter) writeHeader(md *markdown.Markdown, run *sitefetch.CrawlRun) {
	md.H1("Crawl Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + run.SourceURL + "`"},
			{"Output", "`" + run.OutputDir + "`"},
			{"Started", run.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String()},
		},
	})
	md.PlainText("")
}

func (w *ReportWriter) writeSummary(md *markdown.Markdown, run *sitefetch.CrawlRun) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Pages saved", strconv.Itoa(run.Saved)},
			{"Pages failed", strconv.Itoa(run.Failed)},
			{"Bytes written", strconv.Itoa(run.Bytes)},
		},
	})
	md.PlainText("")

	if run.Failed > 0 {
		md.Warningf("%d page(s) failed to fetch. See the failures table below.", run.Failed)
	} else {
		md.Tip("All discovered pages were fetched successfully.")
	}
	md.PlainText("")
}

func (w *ReportWriter) writePages(md *markdown.Markdown, results []*sitefetch.PageResult) {
	var saved, failed []*sitefetch.PageResult
	for _, r := range results {
		if r.Status == sitefetch.PageStatusOK {
			saved = append(saved, r)
		} else {
			failed = append(failed, r)
		}
	}

	md.H2("Saved Pages")
	md.PlainText("")
	if len(saved) == 0 {
		md.PlainText("No pages were saved.")
		md.PlainText("")
	} else {
		rows := make([][]string, len(saved))
		for i, r := range saved {
			rows[i] = []string{r.URL, r.FilePath}
		}
		md.Table(markdown.TableSet{
			Header: []string{"URL", "File"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(failed) == 0 {
		return
	}

	md.H2("Failures")
	md.PlainText("")
	rows := make([][]string, len(failed))
	for i, r := range failed {
		msg := r.Error
		if msg == "" {
			msg = "-"
		}
		rows[i] = []string{r.URL, truncate(msg, 80)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Error"},
		Rows:   rows,
	})
	md.PlainText("")
}

// truncate shortens a string to maxLen characters with ellipsis.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
