package goquery_test

import (
	"testing"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	t.Parallel()

	base := mustURL(t, "https://example.com/posts/1")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"absolute", "http://cdn.example.org/a.png", "http://cdn.example.org/a.png"},
		{"protocol relative", "//cdn.example.org/a.png", "https://cdn.example.org/a.png"},
		{"root relative", "/img/a.png", "https://example.com/img/a.png"},
		{"path relative", "a.png", "https://example.com/posts/a.png"},
		{"data uri", "data:image/png;base64,AAAA", ""},
		{"uppercase data uri", "DATA:image/gif;base64,AAAA", ""},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.ResolveURL(base, tt.raw))
		})
	}
}

func TestExtractBlocks_Images(t *testing.T) {
	t.Parallel()

	filler := `<p>` + paragraph + ` ` + paragraph + ` ` + paragraph + `</p>`

	imageOf := func(t *testing.T, html string) []readview.Block {
		t.Helper()
		var images []readview.Block
		for _, b := range bodyBlocks(t, "<body>"+html+filler+"</body>") {
			if b.Kind == readview.BlockImage {
				images = append(images, b)
			}
		}
		return images
	}

	t.Run("figure with caption", func(t *testing.T) {
		t.Parallel()

		images := imageOf(t, `<figure><img data-src="/img/chart.png" alt="Revenue chart"><figcaption> Revenue by year </figcaption></figure>`)

		require.Len(t, images, 1)
		assert.Equal(t, readview.Image("https://example.com/img/chart.png", "Revenue chart", "Revenue by year"), images[0])
	})

	t.Run("prefers src over lazy attributes", func(t *testing.T) {
		t.Parallel()

		images := imageOf(t, `<img src="/a.png" data-src="/b.png">`)

		require.Len(t, images, 1)
		assert.Equal(t, "https://example.com/a.png", images[0].URL)
	})

	t.Run("uses last srcset candidate", func(t *testing.T) {
		t.Parallel()

		images := imageOf(t, `<img srcset="/small.jpg 480w, /medium.jpg 800w, /large.jpg 1200w">`)

		require.Len(t, images, 1)
		assert.Equal(t, "https://example.com/large.jpg", images[0].URL)
	})

	t.Run("drops always bad images", func(t *testing.T) {
		t.Parallel()

		images := imageOf(t, `<img src="/favicon.png" alt="A long description"><img src="https://ads.example.com/ads/banner.gif"><img src="/user/avatar.jpg">`)

		assert.Empty(t, images)
	})

	t.Run("drops logos without context", func(t *testing.T) {
		t.Parallel()

		images := imageOf(t, `<img src="/logo.png" alt="Logo">`)

		assert.Empty(t, images)
	})

	t.Run("keeps logos with descriptive alt", func(t *testing.T) {
		t.Parallel()

		images := imageOf(t, `<img src="/logo.png" alt="The new company logo">`)

		require.Len(t, images, 1)
	})

	t.Run("keeps icons with caption", func(t *testing.T) {
		t.Parallel()

		images := imageOf(t, `<figure><img src="/icons/set.png"><figcaption>Icon set</figcaption></figure>`)

		require.Len(t, images, 1)
		assert.Equal(t, "Icon set", images[0].Caption)
	})

	t.Run("drops data uris", func(t *testing.T) {
		t.Parallel()

		images := imageOf(t, `<img src="data:image/png;base64,AAAA">`)

		assert.Empty(t, images)
	})

	t.Run("recurses into figure without image", func(t *testing.T) {
		t.Parallel()

		blocks := bodyBlocks(t, `<body><figure><blockquote>A quotation inside a figure.</blockquote></figure>`+filler+`</body>`)

		require.NotEmpty(t, blocks)
		assert.Equal(t, readview.Quote("A quotation inside a figure."), blocks[0])
	})
}
