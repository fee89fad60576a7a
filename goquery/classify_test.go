package goquery_test

import (
	"testing"

	"github.com/fwojciec/readview/goquery"
	"github.com/stretchr/testify/assert"
)

func TestKeywordWeight(t *testing.T) {
	t.Parallel()

	t.Run("adds for positive keywords", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 25, goquery.KeywordWeight("Story"))
		assert.Equal(t, 50, goquery.KeywordWeight("post-text"))
	})

	t.Run("subtracts for negative keywords", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -25, goquery.KeywordWeight("toolbar"))
		assert.Equal(t, -50, goquery.KeywordWeight("SIDEBAR widget"))
	})

	t.Run("sums both directions", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, goquery.KeywordWeight("story footer"))
	})

	t.Run("returns zero for empty value", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, goquery.KeywordWeight(""))
	})
}

func TestIsUnlikely(t *testing.T) {
	t.Parallel()

	t.Run("negative keyword marks element unlikely", func(t *testing.T) {
		t.Parallel()

		assert.True(t, goquery.IsUnlikely("", "ad-banner", ""))
		assert.True(t, goquery.IsUnlikely("site-footer", "", ""))
		assert.True(t, goquery.IsUnlikely("", "", "navigation"))
	})

	t.Run("positive keyword overrides negative", func(t *testing.T) {
		t.Parallel()

		assert.False(t, goquery.IsUnlikely("", "article-sidebar", ""))
		assert.False(t, goquery.IsUnlikely("main", "menu", ""))
	})

	t.Run("neutral attributes are likely", func(t *testing.T) {
		t.Parallel()

		assert.False(t, goquery.IsUnlikely("", "", ""))
		assert.False(t, goquery.IsUnlikely("x1", "col lg", ""))
	})
}

func TestIsNoiseText(t *testing.T) {
	t.Parallel()

	t.Run("short text is noise", func(t *testing.T) {
		t.Parallel()

		assert.True(t, goquery.IsNoiseText("Share"))
	})

	t.Run("boilerplate phrases are noise", func(t *testing.T) {
		t.Parallel()

		assert.True(t, goquery.IsNoiseText("We use Cookies to improve your experience."))
		assert.True(t, goquery.IsNoiseText("Please Sign In to continue reading."))
		assert.True(t, goquery.IsNoiseText("Read our Privacy Policy for details."))
	})

	t.Run("ordinary prose is kept", func(t *testing.T) {
		t.Parallel()

		assert.False(t, goquery.IsNoiseText("The quick brown fox jumps over the lazy dog."))
	})
}
