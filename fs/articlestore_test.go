package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleURL = "https://example.com/posts/caching"

func sampleArticle() *readview.Article {
	return &readview.Article{
		Title:       "On Caching",
		SiteName:    "example.com",
		ReadingTime: "1 min read",
		Blocks: []readview.Block{
			readview.Heading(2, "Intro"),
			readview.Paragraph("Caches are hard."),
			readview.List(false, []string{"a", "b"}),
		},
	}
}

func newStore(t *testing.T, now time.Time) *fs.ArticleStore {
	t.Helper()
	s := fs.NewArticleStore(t.TempDir())
	s.Now = func() time.Time { return now }
	return s
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	key := fs.CacheKey(articleURL)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), key)
	assert.Equal(t, key, fs.CacheKey(articleURL))
	assert.NotEqual(t, key, fs.CacheKey(articleURL+"?page=2"))
}

func TestArticleStore_Path(t *testing.T) {
	t.Parallel()

	s := fs.NewArticleStore("/cache")

	assert.Equal(t, filepath.Join("/cache", "reader", fs.CacheKey(articleURL)+".json"), s.Path(articleURL))
}

func TestArticleStore_RoundTrip(t *testing.T) {
	t.Parallel()

	// Given an article saved to the store
	now := time.Unix(1_700_000_000, 0)
	s := newStore(t, now)
	require.NoError(t, s.SaveArticle(context.Background(), articleURL, sampleArticle()))

	// When it is read back
	got, err := s.FindArticle(context.Background(), articleURL)

	// Then the article is unchanged
	require.NoError(t, err)
	assert.Equal(t, sampleArticle(), got)
}

func TestArticleStore_FileFormat(t *testing.T) {
	t.Parallel()

	s := newStore(t, time.Unix(1_700_000_000, 0))
	require.NoError(t, s.SaveArticle(context.Background(), articleURL, sampleArticle()))

	data, err := os.ReadFile(s.Path(articleURL))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fetched_at":1700000000`)
	assert.Contains(t, string(data), `"article":{"title":"On Caching","site_name":"example.com","reading_time":"1 min read"`)

	// no temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(s.Path(articleURL)))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestArticleStore_FindArticle(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing entry", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, time.Now())

		_, err := s.FindArticle(context.Background(), articleURL)

		assert.Equal(t, readview.ENOTFOUND, readview.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND without a directory", func(t *testing.T) {
		t.Parallel()

		s := fs.NewArticleStore("")

		_, err := s.FindArticle(context.Background(), articleURL)

		assert.Equal(t, readview.ENOTFOUND, readview.ErrorCode(err))
	})

	t.Run("returns ESERIALIZATION for corrupt entry", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, time.Now())
		path := s.Path(articleURL)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := s.FindArticle(context.Background(), articleURL)

		assert.Equal(t, readview.ESERIALIZATION, readview.ErrorCode(err))
	})

	t.Run("entry is fresh at exactly the TTL", func(t *testing.T) {
		t.Parallel()

		saved := time.Unix(1_700_000_000, 0)
		s := newStore(t, saved)
		require.NoError(t, s.SaveArticle(context.Background(), articleURL, sampleArticle()))

		s.Now = func() time.Time { return saved.Add(readview.DiskCacheTTL) }
		got, err := s.FindArticle(context.Background(), articleURL)

		require.NoError(t, err)
		assert.Equal(t, "On Caching", got.Title)
	})

	t.Run("entry expires one second after the TTL and stays on disk", func(t *testing.T) {
		t.Parallel()

		saved := time.Unix(1_700_000_000, 0)
		s := newStore(t, saved)
		require.NoError(t, s.SaveArticle(context.Background(), articleURL, sampleArticle()))

		s.Now = func() time.Time { return saved.Add(readview.DiskCacheTTL + time.Second) }
		_, err := s.FindArticle(context.Background(), articleURL)

		assert.Equal(t, readview.ENOTFOUND, readview.ErrorCode(err))
		assert.FileExists(t, s.Path(articleURL))
	})

	t.Run("honors custom TTL", func(t *testing.T) {
		t.Parallel()

		saved := time.Unix(1_700_000_000, 0)
		s := newStore(t, saved)
		s.TTL = time.Minute
		require.NoError(t, s.SaveArticle(context.Background(), articleURL, sampleArticle()))

		s.Now = func() time.Time { return saved.Add(2 * time.Minute) }
		_, err := s.FindArticle(context.Background(), articleURL)

		assert.Equal(t, readview.ENOTFOUND, readview.ErrorCode(err))
	})
}

func TestArticleStore_SaveArticle(t *testing.T) {
	t.Parallel()

	t.Run("returns ECACHEUNAVAILABLE without a directory", func(t *testing.T) {
		t.Parallel()

		s := fs.NewArticleStore("")

		err := s.SaveArticle(context.Background(), articleURL, sampleArticle())

		assert.Equal(t, readview.ECACHEUNAVAILABLE, readview.ErrorCode(err))
	})

	t.Run("returns ECACHEUNAVAILABLE when directory cannot be created", func(t *testing.T) {
		t.Parallel()

		// A regular file where the cache directory should be.
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
		s := fs.NewArticleStore(blocker)

		err := s.SaveArticle(context.Background(), articleURL, sampleArticle())

		assert.Equal(t, readview.ECACHEUNAVAILABLE, readview.ErrorCode(err))
	})

	t.Run("overwrites an existing entry", func(t *testing.T) {
		t.Parallel()

		s := newStore(t, time.Unix(1_700_000_000, 0))
		require.NoError(t, s.SaveArticle(context.Background(), articleURL, sampleArticle()))

		updated := sampleArticle()
		updated.Title = "Updated"
		require.NoError(t, s.SaveArticle(context.Background(), articleURL, updated))

		got, err := s.FindArticle(context.Background(), articleURL)
		require.NoError(t, err)
		assert.Equal(t, "Updated", got.Title)
	})

	t.Run("replaces an obstruction at the destination", func(t *testing.T) {
		t.Parallel()

		// Given an empty directory where the entry file belongs
		s := newStore(t, time.Unix(1_700_000_000, 0))
		require.NoError(t, os.MkdirAll(s.Path(articleURL), 0755))

		// When the article is saved
		err := s.SaveArticle(context.Background(), articleURL, sampleArticle())

		// Then the obstruction is removed and the entry written
		require.NoError(t, err)
		got, err := s.FindArticle(context.Background(), articleURL)
		require.NoError(t, err)
		assert.Equal(t, "On Caching", got.Title)
	})

	t.Run("fails and cleans up when the destination cannot be replaced", func(t *testing.T) {
		t.Parallel()

		// Given a non-empty directory where the entry file belongs
		s := newStore(t, time.Unix(1_700_000_000, 0))
		path := s.Path(articleURL)
		require.NoError(t, os.MkdirAll(path, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0644))

		// When the article is saved
		err := s.SaveArticle(context.Background(), articleURL, sampleArticle())

		// Then an error is returned and no temporary file remains
		require.Error(t, err)
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
