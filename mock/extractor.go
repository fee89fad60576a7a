package mock

import "github.com/fwojciec/readview"

var _ readview.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readview.Extractor.
type Extractor struct {
	ExtractFn func(html, baseURL string) (*readview.ExtractResult, error)
}

func (e *Extractor) Extract(html, baseURL string) (*readview.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}
