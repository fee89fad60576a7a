// Package goquery implements the built-in article extraction pipeline on
// top of goquery: root selection, block extraction and page metadata.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readview"
)

// Ensure Parser implements readview.Parser at compile time.
var _ readview.Parser = (*Parser)(nil)

// Parser parses HTML with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a complete HTML document fetched from pageURL.
func (p *Parser) Parse(html string, pageURL *url.URL) (readview.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, readview.Errorf(readview.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc, url: pageURL}, nil
}

// ParseFragment decomposes an HTML fragment into normalized blocks.
func (p *Parser) ParseFragment(fragment string, baseURL *url.URL) ([]readview.Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, readview.Errorf(readview.EINVALID, "failed to parse HTML: %v", err)
	}
	return ExtractBlocks(contentRoot(doc), baseURL), nil
}

// Ensure Document implements readview.Document at compile time.
var _ readview.Document = (*Document)(nil)

// Document is an HTML page parsed by goquery.
type Document struct {
	doc *goquery.Document
	url *url.URL
}

// Metadata returns the page title, byline and site name.
func (d *Document) Metadata(titleHint string) readview.Metadata {
	return metadata(d.doc, d.url, titleHint)
}

// Blocks extracts blocks from the best scoring root, or from the whole
// body if no container qualifies.
func (d *Document) Blocks() []readview.Block {
	root := SelectBestRoot(d.doc)
	if root == nil {
		root = contentRoot(d.doc)
	}
	return ExtractBlocks(root, d.url)
}

// contentRoot returns the body of doc, or the document itself if the
// body is missing.
func contentRoot(doc *goquery.Document) *goquery.Selection {
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}
