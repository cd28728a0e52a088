package mock

import (
	"context"

	"github.com/sitefetch/sitefetch"
)

var _ sitefetch.RunService = (*RunService)(nil)

// RunService is a mock implementation of sitefetch.RunService.
type RunService struct {
	CreateRunFn        func(ctx context.Context, run *sitefetch.CrawlRun) error
	FinishRunFn        func(ctx context.Context, run *sitefetch.CrawlRun) error
	FindRunByIDFn      func(ctx context.Context, id string) (*sitefetch.CrawlRun, error)
	FindRunsFn         func(ctx context.Context, filter sitefetch.RunFilter) ([]*sitefetch.CrawlRun, error)
	CreatePageResultFn func(ctx context.Context, result *sitefetch.PageResult) error
	FindPageResultsFn  func(ctx context.Context, runID string) ([]*sitefetch.PageResult, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *sitefetch.CrawlRun) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FinishRun(ctx context.Context, run *sitefetch.CrawlRun) error {
	return s.FinishRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*sitefetch.CrawlRun, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter sitefetch.RunFilter) ([]*sitefetch.CrawlRun, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) CreatePageResult(ctx context.Context, result *sitefetch.PageResult) error {
	return s.CreatePageResultFn(ctx, result)
}

func (s *RunService) FindPageResults(ctx context.Context, runID string) ([]*sitefetch.PageResult, error) {
	return s.FindPageResultsFn(ctx, runID)
}
