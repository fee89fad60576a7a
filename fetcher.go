package readview

import (
	"context"
	"io"
)

// Response is the result of fetching a URL.
type Response struct {
	// URL is the final URL after redirects.
	URL         string
	StatusCode  int
	ContentType string

	// Body must be closed by the caller.
	Body io.ReadCloser
}

// Fetcher retrieves raw page bytes over the network.
type Fetcher interface {
	// Fetch issues a GET request for url, following redirects.
	// Returns EHTTP for non-2xx responses and ETRANSPORT for network failures.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// HostLimiter provides per-host rate limiting.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
