package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readview"
)

// Ensure LoggingArticleService implements readview.ArticleService.
var _ readview.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with logging.
type LoggingArticleService struct {
	next   readview.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next readview.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// Load delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) Load(ctx context.Context, rawURL, titleHint string) (article *readview.Article, err error) {
	defer func(begin time.Time) {
		var blocks int
		if article != nil {
			blocks = len(article.Blocks)
		}
		s.logger.Info("load article",
			"url", rawURL,
			"blocks", blocks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, rawURL, titleHint)
}
