// Package readability provides a readview.Extractor backed by go-readability,
// a port of Mozilla's Readability.js.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/readview"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements readview.Extractor at compile time.
var _ readview.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Relative links in the content are resolved against baseURL.
func (e *Extractor) Extract(rawHTML, baseURL string) (*readview.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readview.Errorf(readview.EINVALID, "empty HTML input")
	}

	var pageURL *url.URL
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, readview.Errorf(readview.EINVALID, "invalid base URL %q", baseURL)
		}
		pageURL = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}

	return &readview.ExtractResult{
		Title:       article.Title,
		Byline:      article.Byline,
		SiteName:    article.SiteName,
		ContentHTML: article.Content,
	}, nil
}
