package readview

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Reading speeds used to estimate reading time.
const (
	WordsPerMinute = 200
	CharsPerMinute = 1000
)

// EstimateReadingTime returns a label such as "4 min read" for blocks.
// It returns an empty string if blocks carry no text at all.
func EstimateReadingTime(blocks []Block) string {
	var words, chars int
	for i := range blocks {
		blocks[i].texts(func(s string) {
			words += len(strings.Fields(s))
			chars += utf8.RuneCountInString(s)
		})
	}
	if words == 0 && chars == 0 {
		return ""
	}

	minutes := max(ceilDiv(words, WordsPerMinute), ceilDiv(chars, CharsPerMinute), 1)
	return fmt.Sprintf("%d min read", minutes)
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
