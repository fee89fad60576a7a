package readview_test

import (
	"testing"
	"time"

	"github.com/fwojciec/readview"
	"github.com/stretchr/testify/assert"
)

func TestArticle_Clone(t *testing.T) {
	t.Parallel()

	t.Run("returns an independent copy", func(t *testing.T) {
		t.Parallel()

		article := &readview.Article{
			Title: "Title",
			Blocks: []readview.Block{
				readview.List(false, []string{"one", "two"}),
			},
		}

		clone := article.Clone()
		clone.Title = "Changed"
		clone.Blocks[0].Items[0] = "changed"

		assert.Equal(t, "Title", article.Title)
		assert.Equal(t, "one", article.Blocks[0].Items[0])
	})

	t.Run("returns nil for nil article", func(t *testing.T) {
		t.Parallel()

		var article *readview.Article

		assert.Nil(t, article.Clone())
	})
}

func TestCacheEntry_IsFresh(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)

	t.Run("fresh just inside the ttl", func(t *testing.T) {
		t.Parallel()

		entry := readview.CacheEntry{FetchedAt: now.Unix() - 86400 + 1}

		assert.True(t, entry.IsFresh(now, readview.DiskCacheTTL))
	})

	t.Run("fresh exactly at the ttl", func(t *testing.T) {
		t.Parallel()

		entry := readview.CacheEntry{FetchedAt: now.Unix() - 86400}

		assert.True(t, entry.IsFresh(now, readview.DiskCacheTTL))
	})

	t.Run("stale just past the ttl", func(t *testing.T) {
		t.Parallel()

		entry := readview.CacheEntry{FetchedAt: now.Unix() - 86400 - 1}

		assert.False(t, entry.IsFresh(now, readview.DiskCacheTTL))
	})

	t.Run("honors a custom ttl", func(t *testing.T) {
		t.Parallel()

		entry := readview.CacheEntry{FetchedAt: now.Unix() - 61}

		assert.False(t, entry.IsFresh(now, time.Minute))
		assert.True(t, entry.IsFresh(now, time.Hour))
	})
}
