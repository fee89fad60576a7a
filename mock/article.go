package mock

import (
	"context"

	"github.com/fwojciec/readview"
)

var _ readview.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of readview.ArticleService.
type ArticleService struct {
	LoadFn func(ctx context.Context, rawURL, titleHint string) (*readview.Article, error)
}

func (s *ArticleService) Load(ctx context.Context, rawURL, titleHint string) (*readview.Article, error) {
	return s.LoadFn(ctx, rawURL, titleHint)
}

var _ readview.ArticleCache = (*ArticleCache)(nil)

// ArticleCache is a mock implementation of readview.ArticleCache.
type ArticleCache struct {
	GetFn func(rawURL string) (*readview.Article, bool)
	SetFn func(rawURL string, article *readview.Article)
}

func (c *ArticleCache) Get(rawURL string) (*readview.Article, bool) {
	return c.GetFn(rawURL)
}

func (c *ArticleCache) Set(rawURL string, article *readview.Article) {
	c.SetFn(rawURL, article)
}

var _ readview.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of readview.ArticleStore.
type ArticleStore struct {
	FindArticleFn func(ctx context.Context, rawURL string) (*readview.Article, error)
	SaveArticleFn func(ctx context.Context, rawURL string, article *readview.Article) error
}

func (s *ArticleStore) FindArticle(ctx context.Context, rawURL string) (*readview.Article, error) {
	return s.FindArticleFn(ctx, rawURL)
}

func (s *ArticleStore) SaveArticle(ctx context.Context, rawURL string, article *readview.Article) error {
	return s.SaveArticleFn(ctx, rawURL, article)
}
