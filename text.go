package readview

import (
	"strings"
	"unicode"
)

// NormalizeText collapses every run of whitespace in s into a single ASCII
// space and trims the result.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if isSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// SplitParagraphs splits text on blank lines into normalized paragraphs,
// keeping at most MaxParagraphs.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, part := range strings.Split(text, "\n\n") {
		if p := NormalizeText(part); p != "" {
			out = append(out, p)
		}
		if len(out) == MaxParagraphs {
			break
		}
	}
	return out
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
