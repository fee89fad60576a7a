package mock

import (
	"net/url"

	"github.com/fwojciec/readview"
)

var _ readview.Parser = (*Parser)(nil)

// Parser is a mock implementation of readview.Parser.
type Parser struct {
	ParseFn         func(html string, pageURL *url.URL) (readview.Document, error)
	ParseFragmentFn func(fragment string, baseURL *url.URL) ([]readview.Block, error)
}

func (p *Parser) Parse(html string, pageURL *url.URL) (readview.Document, error) {
	return p.ParseFn(html, pageURL)
}

func (p *Parser) ParseFragment(fragment string, baseURL *url.URL) ([]readview.Block, error) {
	return p.ParseFragmentFn(fragment, baseURL)
}

var _ readview.Document = (*Document)(nil)

// Document is a mock implementation of readview.Document.
type Document struct {
	MetadataFn func(titleHint string) readview.Metadata
	BlocksFn   func() []readview.Block
}

func (d *Document) Metadata(titleHint string) readview.Metadata {
	return d.MetadataFn(titleHint)
}

func (d *Document) Blocks() []readview.Block {
	return d.BlocksFn()
}
