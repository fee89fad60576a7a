package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readview"
)

// Ensure ArticleStore implements readview.ArticleStore at compile time.
var _ readview.ArticleStore = (*ArticleStore)(nil)

// ArticleStore persists articles as JSON files under <dir>/reader/.
// Each file is named after the 64-bit xxHash of the article URL.
type ArticleStore struct {
	dir string

	// TTL is how long an entry stays valid. Defaults to readview.DiskCacheTTL.
	TTL time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewArticleStore creates a store rooted at the cache directory dir.
func NewArticleStore(dir string) *ArticleStore {
	return &ArticleStore{
		dir: dir,
		TTL: readview.DiskCacheTTL,
		Now: time.Now,
	}
}

// CacheKey returns the cache file stem for rawURL: its xxHash64 as
// 16 lowercase hex digits.
func CacheKey(rawURL string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(rawURL))
}

// Path returns the file that holds the entry for rawURL.
func (s *ArticleStore) Path(rawURL string) string {
	return filepath.Join(s.dir, "reader", CacheKey(rawURL)+".json")
}

// FindArticle returns the stored article for rawURL.
// Returns ENOTFOUND if there is no entry or it is stale, and ESERIALIZATION
// if the entry cannot be decoded. Stale entries are left in place.
func (s *ArticleStore) FindArticle(ctx context.Context, rawURL string) (*readview.Article, error) {
	if s.dir == "" {
		return nil, readview.Errorf(readview.ENOTFOUND, "article not cached")
	}

	data, err := os.ReadFile(s.Path(rawURL))
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, readview.Errorf(readview.ENOTFOUND, "article not cached")
	} else if err != nil {
		return nil, err
	}

	var entry readview.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, readview.Errorf(readview.ESERIALIZATION, "malformed cache entry for %s: %v", rawURL, err)
	}

	if !entry.IsFresh(s.now(), s.ttl()) {
		return nil, readview.Errorf(readview.ENOTFOUND, "cached article expired")
	}

	return &entry.Article, nil
}

// SaveArticle writes the entry for rawURL to a temporary file next to its
// final path and renames it into place.
func (s *ArticleStore) SaveArticle(ctx context.Context, rawURL string, article *readview.Article) error {
	if s.dir == "" {
		return readview.Errorf(readview.ECACHEUNAVAILABLE, "no cache directory")
	}

	path := s.Path(rawURL)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return readview.Errorf(readview.ECACHEUNAVAILABLE, "cache directory unavailable: %v", err)
	}

	data, err := json.Marshal(readview.CacheEntry{
		FetchedAt: s.now().Unix(),
		Article:   *article,
	})
	if err != nil {
		return readview.Errorf(readview.ESERIALIZATION, "failed to encode article: %v", err)
	}

	return writeFileAtomic(path, data)
}

// writeFileAtomic writes data to a temporary file and renames it over path.
// If the rename fails, path is removed and the rename retried once.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(path)
		if err := os.Rename(tmpPath, path); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to replace cache entry: %w", err)
		}
	}
	return nil
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
