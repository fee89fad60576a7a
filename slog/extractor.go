package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/readview"
)

// Ensure LoggingExtractor implements readview.Extractor.
var _ readview.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   readview.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. name identifies the
// wrapped extractor in log output.
func NewLoggingExtractor(next readview.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) Extract(html, baseURL string) (result *readview.ExtractResult, err error) {
	defer func(begin time.Time) {
		var n int
		if result != nil {
			n = len(result.ContentHTML)
		}
		e.logger.Debug("extract",
			"extractor", e.name,
			"url", baseURL,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, baseURL)
}
