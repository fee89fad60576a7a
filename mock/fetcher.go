package mock

import (
	"context"

	"github.com/fwojciec/readview"
)

var _ readview.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of readview.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*readview.Response, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*readview.Response, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ readview.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of readview.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
