package readview

// ExtractResult holds the main content located by an external extractor.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title    string
	Byline   string
	SiteName string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor locates the main content of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// baseURL is used to resolve relative links and may be empty.
	Extract(html, baseURL string) (*ExtractResult, error)
}
