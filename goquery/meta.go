package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readview"
)

// metadata reads the title, byline and site name declared by doc.
func metadata(doc *goquery.Document, page *url.URL, titleHint string) readview.Metadata {
	return readview.Metadata{
		Title: firstNonEmpty(
			metaContent(doc, `meta[property="og:title"]`, `meta[name="og:title"]`),
			metaContent(doc, `meta[name="twitter:title"]`, `meta[property="twitter:title"]`),
			text(doc.Find("title").First()),
			readview.NormalizeText(titleHint),
		),
		Byline: firstNonEmpty(
			metaContent(doc, `meta[name="author"]`),
			metaContent(doc, `meta[property="article:author"]`, `meta[name="article:author"]`),
		),
		SiteName: firstNonEmpty(
			metaContent(doc, `meta[property="og:site_name"]`, `meta[name="og:site_name"]`),
			readview.HostName(page),
		),
	}
}

// metaContent returns the normalized content of the first matching meta
// tag with a non-empty value.
func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		var value string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			value = readview.NormalizeText(sel.AttrOr("content", ""))
			return value == ""
		})
		if value != "" {
			return value
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
