// Package slog provides logging decorators for readview services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readview"
)

// Ensure LoggingFetcher implements readview.Fetcher.
var _ readview.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   readview.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next readview.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *readview.Response, err error) {
	defer func(begin time.Time) {
		var status int
		var contentType string
		if resp != nil {
			status, contentType = resp.StatusCode, resp.ContentType
		}
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"content_type", contentType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
