package readview

import "net/url"

// Metadata describes a page as reported by its markup.
type Metadata struct {
	Title    string
	Byline   string
	SiteName string
}

// Document is a parsed HTML page.
type Document interface {
	// Metadata returns the page title, byline and site name. titleHint is
	// used when the page declares no title.
	Metadata(titleHint string) Metadata

	// Blocks locates the main content of the page and decomposes it
	// into normalized blocks.
	Blocks() []Block
}

// Parser is the built-in content extraction pipeline.
type Parser interface {
	// Parse parses a complete HTML document fetched from pageURL.
	Parse(html string, pageURL *url.URL) (Document, error)

	// ParseFragment decomposes an HTML fragment, such as the content
	// returned by an Extractor, into normalized blocks.
	ParseFragment(fragment string, baseURL *url.URL) ([]Block, error)
}
