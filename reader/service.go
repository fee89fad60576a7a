package reader

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/fwojciec/readview"
	"golang.org/x/sync/singleflight"
)

// Ensure Service implements readview.ArticleService at compile time.
var _ readview.ArticleService = (*Service)(nil)

const readChunkSize = 32 << 10

// Service loads articles through the memory tier, the disk tier and
// finally the network. Fresh extractions are written through both tiers.
// Concurrent loads of the same URL share a single fetch.
type Service struct {
	Fetcher  readview.Fetcher
	Pipeline *Pipeline

	// Cache and Store are optional.
	Cache readview.ArticleCache
	Store readview.ArticleStore

	// MaxBodyBytes bounds the response body. Defaults to readview.MaxBodyBytes.
	MaxBodyBytes int64

	Logger *slog.Logger

	group singleflight.Group
}

// NewService creates a Service without caches.
func NewService(fetcher readview.Fetcher, pipeline *Pipeline) *Service {
	return &Service{
		Fetcher:      fetcher,
		Pipeline:     pipeline,
		MaxBodyBytes: readview.MaxBodyBytes,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// Load returns the article for rawURL.
func (s *Service) Load(ctx context.Context, rawURL, titleHint string) (*readview.Article, error) {
	u, err := readview.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if article, ok := s.Cache.Get(rawURL); ok {
			return article, nil
		}
	}

	// The shared load outlives any single caller; each caller stops
	// waiting when its own context ends.
	ch := s.group.DoChan(rawURL, func() (any, error) {
		return s.load(context.WithoutCancel(ctx), rawURL, u, titleHint)
	})

	select {
	case <-ctx.Done():
		return nil, readview.Errorf(readview.ETRANSPORT, "%v", ctx.Err())
	case res := <-ch:
		if err := ctx.Err(); err != nil {
			return nil, readview.Errorf(readview.ETRANSPORT, "%v", err)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*readview.Article).Clone(), nil
	}
}

func (s *Service) load(ctx context.Context, rawURL string, u *url.URL, titleHint string) (*readview.Article, error) {
	if article := s.findStored(ctx, rawURL, titleHint); article != nil {
		return article, nil
	}

	resp, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body, s.maxBodyBytes())
	if err != nil {
		return nil, err
	}

	page := u
	if resp.URL != "" {
		if final, err := url.Parse(resp.URL); err == nil {
			page = final
		}
	}

	article, err := s.Pipeline.Extract(body, resp.ContentType, page, titleHint)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Set(rawURL, article)
	}
	if s.Store != nil {
		if err := s.Store.SaveArticle(ctx, rawURL, article); err != nil {
			s.logger().Warn("failed to write article cache", "url", rawURL, "err", err)
		}
	}

	return article, nil
}

// findStored returns a fresh article from the disk tier, or nil on a miss.
func (s *Service) findStored(ctx context.Context, rawURL, titleHint string) *readview.Article {
	if s.Store == nil {
		return nil
	}

	article, err := s.Store.FindArticle(ctx, rawURL)
	if err != nil {
		if readview.ErrorCode(err) != readview.ENOTFOUND {
			s.logger().Debug("ignoring cached article", "url", rawURL, "err", err)
		}
		return nil
	}

	if article.Title == "" {
		article.Title = titleHint
	}
	if s.Cache != nil {
		s.Cache.Set(rawURL, article)
	}
	return article
}

// readBody reads r until EOF, failing with ETOOLARGE as soon as more than
// limit bytes arrive.
func readBody(r io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, readChunkSize)
	for {
		n, err := r.Read(chunk)
		if int64(buf.Len()+n) > limit {
			return nil, readview.Errorf(readview.ETOOLARGE, "Response too large (>%d MB)", limit>>20)
		}
		buf.Write(chunk[:n])

		if err == io.EOF {
			return buf.Bytes(), nil
		} else if err != nil {
			return nil, readview.Errorf(readview.ETRANSPORT, "%v", err)
		}
	}
}

func (s *Service) maxBodyBytes() int64 {
	if s.MaxBodyBytes <= 0 {
		return readview.MaxBodyBytes
	}
	return s.MaxBodyBytes
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
