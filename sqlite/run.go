package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitefetch/sitefetch"
)

// Compile-time interface verification.
var _ sitefetch.RunService = (*RunService)(nil)

// RunService implements sitefetch.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records the start of a crawl run.
func (s *RunService) CreateRun(ctx context.Context, run *sitefetch.CrawlRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source_url, output_dir, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.SourceURL, run.OutputDir, run.StartedAt.Format(time.RFC3339))

	return err
}

// FinishRun records final counters and the finish timestamp.
func (s *RunService) FinishRun(ctx context.Context, run *sitefetch.CrawlRun) error {
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, saved = ?, failed = ?, bytes = ?
		WHERE id = ?
	`, run.FinishedAt.Format(time.RFC3339), run.Saved, run.Failed, run.Bytes, run.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitefetch.Errorf(sitefetch.ENOTFOUND, "run not found")
	}

	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*sitefetch.CrawlRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, output_dir, started_at, finished_at, saved, failed, bytes
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, sitefetch.Errorf(sitefetch.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	return run, nil
}

// FindRuns retrieves runs matching the filter, most recent first.
func (s *RunService) FindRuns(ctx context.Context, filter sitefetch.RunFilter) ([]*sitefetch.CrawlRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, output_dir, started_at, finished_at, saved, failed, bytes FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY started_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*sitefetch.CrawlRun
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// CreatePageResult records the outcome of a single page fetch.
func (s *RunService) CreatePageResult(ctx context.Context, result *sitefetch.PageResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	result.ID = uuid.New().String()
	if result.FetchedAt.IsZero() {
		result.FetchedAt = time.Now().UTC()
	}

	// Position preserves insertion order for FindPageResults.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, run_id, url, title, file_path, content_hash, status, error, fetched_at, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM pages WHERE run_id = ?))
	`, result.ID, result.RunID, result.URL, result.Title, result.FilePath, result.ContentHash,
		result.Status, result.Error, result.FetchedAt.Format(time.RFC3339), result.RunID)

	return err
}

// FindPageResults retrieves page outcomes for a run in insertion order.
func (s *RunService) FindPageResults(ctx context.Context, runID string) ([]*sitefetch.PageResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, url, title, file_path, content_hash, status, error, fetched_at
		FROM pages
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*sitefetch.PageResult
	for rows.Next() {
		var result sitefetch.PageResult
		var fetchedAt string

		if err := rows.Scan(&result.ID, &result.RunID, &result.URL, &result.Title, &result.FilePath,
			&result.ContentHash, &result.Status, &result.Error, &fetchedAt); err != nil {
			return nil, err
		}

		result.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		results = append(results, &result)
	}

	return results, rows.Err()
}

// scanRun scans a run row. The finished_at column is empty until FinishRun.
func scanRun(scan func(dest ...any) error) (*sitefetch.CrawlRun, error) {
	var run sitefetch.CrawlRun
	var startedAt, finishedAt string

	if err := scan(&run.ID, &run.SourceURL, &run.OutputDir, &startedAt, &finishedAt,
		&run.Saved, &run.Failed, &run.Bytes); err != nil {
		return nil, err
	}

	var err error
	run.StartedAt, err = parseRFC3339(startedAt, "started_at")
	if err != nil {
		return nil, err
	}
	if finishedAt != "" {
		run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at")
		if err != nil {
			return nil, err
		}
	}

	return &run, nil
}
