package readview_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/readview"
	"github.com/stretchr/testify/assert"
)

func TestEstimateReadingTime(t *testing.T) {
	t.Parallel()

	t.Run("returns empty for blocks without text", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, readview.EstimateReadingTime(nil))
		assert.Empty(t, readview.EstimateReadingTime([]readview.Block{readview.Rule()}))
	})

	t.Run("rounds short articles up to one minute", func(t *testing.T) {
		t.Parallel()

		blocks := []readview.Block{readview.Paragraph("Just a few words.")}

		assert.Equal(t, "1 min read", readview.EstimateReadingTime(blocks))
	})

	t.Run("uses word count", func(t *testing.T) {
		t.Parallel()

		blocks := []readview.Block{readview.Paragraph(strings.Repeat("a ", 401))}

		assert.Equal(t, "3 min read", readview.EstimateReadingTime(blocks))
	})

	t.Run("uses character count when larger", func(t *testing.T) {
		t.Parallel()

		blocks := []readview.Block{readview.Code(strings.Repeat("x", 2500), "")}

		assert.Equal(t, "3 min read", readview.EstimateReadingTime(blocks))
	})

	t.Run("counts list items and image text", func(t *testing.T) {
		t.Parallel()

		blocks := []readview.Block{
			readview.List(false, []string{strings.Repeat("w ", 150)}),
			readview.Image("https://example.com/i.png", strings.Repeat("w ", 30), strings.Repeat("w ", 30)),
		}

		assert.Equal(t, "2 min read", readview.EstimateReadingTime(blocks))
	})
}
