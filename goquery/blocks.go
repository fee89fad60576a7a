package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readview"
)

// Traversal limits.
const (
	maxDepth      = 40
	maxListItems  = 50
	maxQuoteParas = 20
)

// ExtractBlocks walks root depth-first and returns its content as
// normalized blocks. If the structured result is thin, a coarse paragraph
// decomposition of root is used instead when it carries more text.
func ExtractBlocks(root *goquery.Selection, base *url.URL) []readview.Block {
	w := &blockWalker{base: base}
	w.walk(root, 0)
	blocks := readview.NormalizeBlocks(w.blocks)

	if len(blocks) == 0 || readview.TextLen(blocks) < readview.MinContentLength {
		coarse := paragraphBlocks(ExtractParagraphs(root))
		if len(blocks) == 0 || readview.TextLen(coarse) > readview.TextLen(blocks) {
			blocks = coarse
		}
	}

	if len(blocks) > readview.MaxBlocks {
		blocks = blocks[:readview.MaxBlocks]
	}
	return blocks
}

type blockWalker struct {
	base   *url.URL
	blocks []readview.Block
}

func (w *blockWalker) full() bool {
	return len(w.blocks) >= readview.MaxBlocks
}

func (w *blockWalker) emit(b readview.Block) {
	w.blocks = append(w.blocks, b)
}

func (w *blockWalker) walk(sel *goquery.Selection, depth int) {
	if w.full() || depth > maxDepth {
		return
	}

	sel.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
		if w.full() {
			return false
		}
		if shouldSkip(child) {
			return true
		}

		switch tag := goquery.NodeName(child); tag {
		case "p":
			if t := text(child); t != "" && !IsNoiseText(t) {
				w.emit(readview.Paragraph(t))
			}
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if t := text(child); t != "" {
				w.emit(readview.Heading(int(tag[1]-'0'), t))
			}
		case "blockquote":
			if t := quoteText(child); t != "" {
				w.emit(readview.Quote(t))
			}
		case "ul", "ol":
			if items := listItems(child); len(items) > 0 {
				w.emit(readview.List(tag == "ol", items))
			}
		case "pre":
			if code, lang := codeBlock(child); code != "" {
				w.emit(readview.Code(code, lang))
			}
		case "figure":
			if b, ok := figureImage(child, w.base); ok {
				w.emit(b)
			} else {
				w.walk(child, depth+1)
			}
		case "img":
			if b, ok := imageBlock(child, w.base, ""); ok {
				w.emit(b)
			}
		case "hr":
			w.emit(readview.Rule())
		default:
			w.walk(child, depth+1)
		}
		return true
	})
}

// quoteText joins the paragraphs of a blockquote with blank lines, or
// returns its flattened text if it has none.
func quoteText(quote *goquery.Selection) string {
	var paras []string
	quote.FindMatcher(paragraphMatcher).EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if t := text(p); t != "" {
			paras = append(paras, t)
		}
		return len(paras) < maxQuoteParas
	})
	if len(paras) == 0 {
		return text(quote)
	}
	return strings.Join(paras, "\n\n")
}

func listItems(list *goquery.Selection) []string {
	var items []string
	list.ChildrenFiltered("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if shouldSkip(li) {
			return true
		}
		if t := text(li); t != "" && !IsNoiseText(t) {
			items = append(items, t)
		}
		return len(items) < maxListItems
	})
	return items
}
