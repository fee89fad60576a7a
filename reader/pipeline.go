// Package reader turns fetched pages into readable articles and caches
// the results.
package reader

import (
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readview"
	"golang.org/x/net/html/charset"
)

// Pipeline converts a fetched page into an article. External extractors
// are tried in order before falling back to the built-in parser.
type Pipeline struct {
	Parser     readview.Parser
	Extractors []readview.Extractor

	// Logger receives debug output about rejected extractor results.
	Logger *slog.Logger
}

// NewPipeline creates a Pipeline that uses parser for the built-in path
// and tries extractors in order before it.
func NewPipeline(parser readview.Parser, extractors ...readview.Extractor) *Pipeline {
	return &Pipeline{
		Parser:     parser,
		Extractors: extractors,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

type contentKind int

const (
	contentHTML contentKind = iota
	contentPlain
	contentUnsupported
)

func classifyContentType(contentType string) contentKind {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "text/plain"):
		return contentPlain
	case strings.TrimSpace(ct) == "",
		strings.Contains(ct, "text/html"),
		strings.Contains(ct, "application/xhtml+xml"):
		return contentHTML
	default:
		return contentUnsupported
	}
}

// Extract builds an article from body. contentType is the declared
// Content-Type header and may be empty. page is the URL the body was
// fetched from.
// Returns EUNSUPPORTED if the content type is neither HTML nor plain text.
func (p *Pipeline) Extract(body []byte, contentType string, page *url.URL, titleHint string) (*readview.Article, error) {
	var article *readview.Article

	switch classifyContentType(contentType) {
	case contentPlain:
		article = plainTextArticle(decode(body, contentType), page, titleHint)
	case contentUnsupported:
		return nil, readview.Errorf(readview.EUNSUPPORTED, "Unsupported content type: %s", contentType)
	default:
		var err error
		if article, err = p.extractHTML(decode(body, contentType), page, titleHint); err != nil {
			return nil, err
		}
	}

	article.ReadingTime = readview.EstimateReadingTime(article.Blocks)
	return article, nil
}

func (p *Pipeline) extractHTML(html string, page *url.URL, titleHint string) (*readview.Article, error) {
	doc, err := p.Parser.Parse(html, page)
	if err != nil {
		return nil, err
	}

	if article := p.external(html, page, titleHint, doc); article != nil {
		return article, nil
	}

	meta := doc.Metadata(titleHint)
	return &readview.Article{
		Title:    meta.Title,
		Byline:   meta.Byline,
		SiteName: meta.SiteName,
		Blocks:   doc.Blocks(),
	}, nil
}

// external returns the first extractor result that yields enough text,
// or nil if none does.
func (p *Pipeline) external(html string, page *url.URL, titleHint string, doc readview.Document) *readview.Article {
	logger := p.logger()

	for i, ext := range p.Extractors {
		res, err := ext.Extract(html, page.String())
		if err != nil {
			logger.Debug("extractor failed", "url", page.String(), "extractor", i, "err", err)
			continue
		}
		if res == nil || strings.TrimSpace(res.ContentHTML) == "" {
			logger.Debug("extractor returned no content", "url", page.String(), "extractor", i)
			continue
		}

		blocks, err := p.Parser.ParseFragment(res.ContentHTML, page)
		if err != nil {
			logger.Debug("extractor content unparsable", "url", page.String(), "extractor", i, "err", err)
			continue
		}
		if n := readview.TextLen(blocks); len(blocks) == 0 || n < readview.MinContentLength {
			logger.Debug("extractor content too short", "url", page.String(), "extractor", i, "length", n)
			continue
		}

		meta := doc.Metadata("")
		title := readview.NormalizeText(res.Title)
		if title == "" {
			title = titleHint
		}
		return &readview.Article{
			Title:    title,
			Byline:   orDefault(readview.NormalizeText(res.Byline), meta.Byline),
			SiteName: orDefault(readview.NormalizeText(res.SiteName), meta.SiteName),
			Blocks:   blocks,
		}
	}
	return nil
}

func plainTextArticle(text string, page *url.URL, titleHint string) *readview.Article {
	paragraphs := readview.SplitParagraphs(text)
	blocks := make([]readview.Block, 0, len(paragraphs))
	for _, para := range paragraphs {
		blocks = append(blocks, readview.Paragraph(para))
	}

	title := titleHint
	if title == "" {
		title = page.String()
	}
	return &readview.Article{
		Title:    title,
		SiteName: readview.HostName(page),
		Blocks:   readview.NormalizeBlocks(blocks),
	}
}

// decode converts body to UTF-8. A charset from a BOM or the Content-Type
// header always wins; otherwise a body that is already valid UTF-8 is kept
// as is and only invalid bodies are transcoded by the sniffed charset.
func decode(body []byte, contentType string) string {
	enc, _, certain := charset.DetermineEncoding(body, contentType)
	if !certain && utf8.Valid(body) {
		return string(body)
	}
	data, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(data)
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
