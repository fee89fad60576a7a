package goquery_test

import (
	"testing"

	"github.com/fwojciec/readview/goquery"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	t.Run("dedents by common indentation", func(t *testing.T) {
		t.Parallel()

		result := goquery.NormalizeCode("    a\n      b\n    c")

		assert.Equal(t, "a\n\u00a0\u00a0b\nc", result)
	})

	t.Run("trims blank edge lines", func(t *testing.T) {
		t.Parallel()

		result := goquery.NormalizeCode("\n   \nx := 1\n\n  \n")

		assert.Equal(t, "x := 1", result)
	})

	t.Run("expands tabs and carriage returns", func(t *testing.T) {
		t.Parallel()

		result := goquery.NormalizeCode("if x {\r\n\ty()\r\n}")

		assert.Equal(t, "if x {\n\u00a0\u00a0\u00a0\u00a0y()\n}", result)
	})

	t.Run("ignores blank lines when measuring indentation", func(t *testing.T) {
		t.Parallel()

		result := goquery.NormalizeCode("  a\n\n  b")

		assert.Equal(t, "a\n\nb", result)
	})

	t.Run("returns empty for blank input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.NormalizeCode(" \n\t\n"))
	})
}

func TestCodeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"language prefix", `<pre><code class="hljs language-rust">fn main() {}</code></pre>`, "rust"},
		{"lang prefix", `<pre><code class="lang-py">pass</code></pre>`, "py"},
		{"no class", `<pre><code>plain</code></pre>`, ""},
		{"empty suffix", `<pre><code class="language-">x</code></pre>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := bodyBlocks(t, "<body>"+tt.html+"</body>")

			if assert.Len(t, blocks, 1) {
				assert.Equal(t, tt.want, blocks[0].Language)
			}
		})
	}
}
