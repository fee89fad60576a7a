package readview

import (
	"context"
	"slices"
	"time"
)

// Article is a readable rendition of a web page.
type Article struct {
	// Title is never absent; an empty title means unknown.
	Title       string  `json:"title"`
	Byline      string  `json:"byline,omitempty"`
	SiteName    string  `json:"site_name,omitempty"`
	ReadingTime string  `json:"reading_time,omitempty"`
	Blocks      []Block `json:"blocks"`
}

// Clone returns a deep copy of the article.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	other := *a
	if a.Blocks != nil {
		other.Blocks = make([]Block, len(a.Blocks))
		for i, b := range a.Blocks {
			other.Blocks[i] = b
			other.Blocks[i].Items = slices.Clone(b.Items)
		}
	}
	return &other
}

// ArticleService loads readable articles.
type ArticleService interface {
	// Load returns the article for rawURL. titleHint is used when the page
	// does not report a title of its own.
	// Returns EINVALID if rawURL is not an absolute http(s) URL.
	Load(ctx context.Context, rawURL, titleHint string) (*Article, error)
}

// ArticleCache is a bounded in-process article cache.
type ArticleCache interface {
	// Get returns the cached article and marks it as most recently used.
	Get(rawURL string) (*Article, bool)

	// Set stores the article, evicting the least recently used entry
	// if the cache is full.
	Set(rawURL string, article *Article)
}

// ArticleStore persists articles across process restarts.
type ArticleStore interface {
	// FindArticle returns the stored article for rawURL.
	// Returns ENOTFOUND if there is no fresh entry and ESERIALIZATION if the
	// entry cannot be decoded. Both are cache misses.
	FindArticle(ctx context.Context, rawURL string) (*Article, error)

	// SaveArticle stores the article for rawURL, replacing any previous entry.
	SaveArticle(ctx context.Context, rawURL string, article *Article) error
}

// CacheEntry is the persisted form of an article.
type CacheEntry struct {
	// FetchedAt is the extraction time in seconds since the Unix epoch.
	FetchedAt int64   `json:"fetched_at"`
	Article   Article `json:"article"`
}

// IsFresh reports whether the entry is still valid at now. An entry
// exactly ttl old is fresh.
func (e *CacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Unix()-e.FetchedAt <= int64(ttl.Seconds())
}
