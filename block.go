package readview

import "strings"

// BlockKind identifies the kind of content a Block holds.
type BlockKind string

// Block kinds.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockQuote     BlockKind = "quote"
	BlockList      BlockKind = "list"
	BlockCode      BlockKind = "code"
	BlockImage     BlockKind = "image"
	BlockRule      BlockKind = "rule"
)

// Block is one unit of article content. Kind determines which of the
// remaining fields are meaningful.
type Block struct {
	Kind BlockKind `json:"kind"`

	// Level is the heading level, 1 through 6.
	Level int `json:"level,omitempty"`

	// Text is the payload of heading, paragraph, quote and code blocks.
	Text string `json:"text,omitempty"`

	Ordered bool     `json:"ordered,omitempty"`
	Items   []string `json:"items,omitempty"`

	// Language is the code language, if known.
	Language string `json:"language,omitempty"`

	// URL is the absolute image URL.
	URL     string `json:"url,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Heading returns a heading block.
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

// Paragraph returns a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// Quote returns a quote block.
func Quote(text string) Block {
	return Block{Kind: BlockQuote, Text: text}
}

// List returns a list block.
func List(ordered bool, items []string) Block {
	return Block{Kind: BlockList, Ordered: ordered, Items: items}
}

// Code returns a code block. language may be empty.
func Code(text, language string) Block {
	return Block{Kind: BlockCode, Text: text, Language: language}
}

// Image returns an image block. alt and caption may be empty.
func Image(url, alt, caption string) Block {
	return Block{Kind: BlockImage, URL: url, Alt: alt, Caption: caption}
}

// Rule returns a thematic break.
func Rule() Block {
	return Block{Kind: BlockRule}
}

// texts calls fn for each textual payload of the block.
func (b *Block) texts(fn func(string)) {
	switch b.Kind {
	case BlockHeading, BlockParagraph, BlockQuote, BlockCode:
		fn(b.Text)
	case BlockList:
		for _, item := range b.Items {
			fn(item)
		}
	case BlockImage:
		if b.Alt != "" {
			fn(b.Alt)
		}
		if b.Caption != "" {
			fn(b.Caption)
		}
	}
}

// TextLen returns the total byte length of the textual payload of blocks.
func TextLen(blocks []Block) int {
	var n int
	for i := range blocks {
		blocks[i].texts(func(s string) { n += len(s) })
	}
	return n
}

// NormalizeBlocks cleans up extracted blocks. Whitespace is collapsed,
// empty blocks are dropped, consecutive identical paragraphs are collapsed
// and the result is truncated to MaxBlocks. The function is idempotent.
func NormalizeBlocks(blocks []Block) []Block {
	out := make([]Block, 0, min(len(blocks), MaxBlocks))

	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading, BlockParagraph:
			b.Text = NormalizeText(b.Text)
			if b.Text == "" {
				continue
			}
		case BlockQuote:
			b.Text = strings.TrimSpace(b.Text)
			if b.Text == "" {
				continue
			}
		case BlockCode:
			b.Text = trimCode(b.Text)
			if b.Text == "" {
				continue
			}
		case BlockList:
			items := make([]string, 0, len(b.Items))
			for _, item := range b.Items {
				if item = NormalizeText(item); item != "" {
					items = append(items, item)
				}
				if len(items) == MaxListItems {
					break
				}
			}
			if len(items) == 0 {
				continue
			}
			b.Items = items
		case BlockImage:
			if strings.TrimSpace(b.URL) == "" {
				continue
			}
			b.Alt = NormalizeText(b.Alt)
			b.Caption = NormalizeText(b.Caption)
		case BlockRule:
			b = Rule()
		default:
			continue
		}

		if n := len(out); n > 0 && b.Kind == BlockParagraph &&
			out[n-1].Kind == BlockParagraph && out[n-1].Text == b.Text {
			continue
		}

		out = append(out, b)
		if len(out) >= MaxBlocks {
			break
		}
	}

	return out
}

// trimCode trims surrounding blank space from code while keeping the
// non-breaking spaces that carry indentation.
func trimCode(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r != '\u00a0' && isSpace(r)
	})
}
