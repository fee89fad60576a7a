package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readview"
	"golang.org/x/net/html"
)

// Elements whose text is never shown.
var silentTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// Elements that separate words even without surrounding whitespace.
var breakTags = map[string]bool{
	"address": true, "article": true, "blockquote": true, "br": true, "dd": true,
	"div": true, "dl": true, "dt": true, "figcaption": true, "figure": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"hr": true, "li": true, "main": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true, "ul": true,
}

// rawText returns the visible text of sel with a space between block-level
// elements.
func rawText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if silentTags[n.Data] {
				return
			}
		}
		brk := n.Type == html.ElementNode && breakTags[n.Data]
		if brk {
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if brk {
			b.WriteByte(' ')
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}

// text returns the normalized visible text of sel.
func text(sel *goquery.Selection) string {
	return readview.NormalizeText(rawText(sel))
}

// textLen returns the summed length of the words in sel.
func textLen(sel *goquery.Selection) int {
	var n int
	for _, word := range strings.Fields(rawText(sel)) {
		n += len(word)
	}
	return n
}

// textLines returns the visible text nodes of sel joined by newlines.
func textLines(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
			return
		}
		if n.Type == html.ElementNode && silentTags[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}
