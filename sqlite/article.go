package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readview"
)

// Compile-time interface verification.
var _ readview.ArticleStore = (*ArticleStore)(nil)

// ArticleStore implements readview.ArticleStore using SQLite. Entries
// expire after TTL, like the file-based store.
type ArticleStore struct {
	db *DB

	// TTL is how long an entry stays valid. Defaults to readview.DiskCacheTTL.
	TTL time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewArticleStore creates a new ArticleStore.
func NewArticleStore(db *DB) *ArticleStore {
	return &ArticleStore{
		db:  db,
		TTL: readview.DiskCacheTTL,
		Now: time.Now,
	}
}

// hashURL returns the xxHash64 of rawURL as 16 lowercase hex digits.
func hashURL(rawURL string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(rawURL))
}

// FindArticle retrieves the article stored for rawURL.
// Returns ENOTFOUND if there is no fresh entry and ESERIALIZATION if the
// stored article cannot be decoded.
func (s *ArticleStore) FindArticle(ctx context.Context, rawURL string) (*readview.Article, error) {
	var storedURL, data string
	var fetchedAt int64

	err := s.db.QueryRowContext(ctx, `
		SELECT url, fetched_at, article
		FROM articles
		WHERE url_hash = ?
	`, hashURL(rawURL)).Scan(&storedURL, &fetchedAt, &data)

	if errors.Is(err, sql.ErrNoRows) || (err == nil && storedURL != rawURL) {
		return nil, readview.Errorf(readview.ENOTFOUND, "article not cached")
	}
	if err != nil {
		return nil, err
	}

	entry := readview.CacheEntry{FetchedAt: fetchedAt}
	if !entry.IsFresh(s.now(), s.ttl()) {
		return nil, readview.Errorf(readview.ENOTFOUND, "cached article expired")
	}

	var article readview.Article
	if err := json.Unmarshal([]byte(data), &article); err != nil {
		return nil, readview.Errorf(readview.ESERIALIZATION, "malformed cache entry for %s: %v", rawURL, err)
	}
	return &article, nil
}

// SaveArticle stores article for rawURL, replacing any previous entry.
func (s *ArticleStore) SaveArticle(ctx context.Context, rawURL string, article *readview.Article) error {
	data, err := json.Marshal(article)
	if err != nil {
		return readview.Errorf(readview.ESERIALIZATION, "failed to encode article: %v", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (url_hash, url, fetched_at, article)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url_hash) DO UPDATE SET
			url = excluded.url,
			fetched_at = excluded.fetched_at,
			article = excluded.article
	`, hashURL(rawURL), rawURL, s.now().Unix(), string(data))

	return err
}

// DeleteExpired removes entries older than TTL and returns how many
// were removed.
func (s *ArticleStore) DeleteExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Unix() - int64(s.ttl().Seconds())
	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *ArticleStore) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *ArticleStore) ttl() time.Duration {
	if s.TTL <= 0 {
		return readview.DiskCacheTTL
	}
	return s.TTL
}
