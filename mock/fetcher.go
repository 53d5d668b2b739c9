package mock

import (
	"context"

	"github.com/fwojciec/nyaa"
)

var _ nyaa.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of nyaa.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ nyaa.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of nyaa.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
