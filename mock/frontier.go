package mock

import (
	"context"

	"github.com/sitefetch/sitefetch"
)

var _ sitefetch.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitefetch.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
