// Package http provides an HTTP implementation of readview.Fetcher.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/readview"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 20 * time.Second

// MaxRedirects is the number of redirects followed before giving up.
const MaxRedirects = 10

// Request headers sent with every fetch.
const (
	UserAgent = "readview/0.1 (+reader mode)"
	Accept    = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// Ensure Fetcher implements readview.Fetcher at compile time.
var _ readview.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using plain HTTP GET requests. It does not
// execute JavaScript.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter readview.HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithLimiter rate limits requests per host.
func WithLimiter(l readview.HostLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithClient sets the underlying HTTP client. The client's timeout and
// redirect policy are replaced by the fetcher's.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := &http.Client{}
	if f.client != nil {
		c := *f.client
		client = &c
	}
	client.Timeout = f.timeout
	client.CheckRedirect = checkRedirect
	f.client = client

	return f
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= MaxRedirects {
		return errors.New("stopped after 10 redirects")
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return errors.New("redirect to unsupported scheme " + req.URL.Scheme)
	}
	return nil
}

// Fetch issues a GET request for rawURL. On success the response body is
// left open for the caller to read and close.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*readview.Response, error) {
	u, err := readview.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return nil, readview.Errorf(readview.ETRANSPORT, "%v", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, readview.Errorf(readview.EINVALID, "%v", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", Accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, readview.Errorf(readview.ETRANSPORT, "%v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, readview.HTTPErrorf(resp.StatusCode, rawURL)
	}

	return &readview.Response{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}, nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
