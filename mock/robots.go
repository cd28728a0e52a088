package mock

import (
	"context"

	"github.com/sitefetch/sitefetch"
)

var _ sitefetch.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of sitefetch.RobotsPolicy.
type RobotsPolicy struct {
	AllowedFn func(ctx context.Context, url string) bool
}

func (p *RobotsPolicy) Allowed(ctx context.Context, url string) bool {
	return p.AllowedFn(ctx, url)
}
