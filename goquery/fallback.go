package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readview"
)

// ExtractParagraphs returns the text of every <p> under root, without skip
// or noise filtering. If root has no paragraphs, its text is split on
// blank lines instead.
func ExtractParagraphs(root *goquery.Selection) []string {
	var paras []string
	root.FindMatcher(paragraphMatcher).EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if t := text(p); t != "" {
			paras = append(paras, t)
		}
		return len(paras) < readview.MaxParagraphs
	})
	if len(paras) > 0 {
		return paras
	}
	return readview.SplitParagraphs(textLines(root))
}

func paragraphBlocks(paras []string) []readview.Block {
	blocks := make([]readview.Block, len(paras))
	for i, p := range paras {
		blocks[i] = readview.Paragraph(p)
	}
	return readview.NormalizeBlocks(blocks)
}
