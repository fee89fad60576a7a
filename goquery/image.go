package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/readview"
)

var (
	imgMatcher        = cascadia.MustCompile("img")
	figcaptionMatcher = cascadia.MustCompile("figcaption")
)

// Attributes holding an image source, in order of preference.
var imageSourceAttrs = []string{"src", "data-src", "data-original", "data-lazy-src", "data-actualsrc"}

var (
	alwaysBadImage = []string{"sprite", "favicon", "avatar", "badge", "spinner", "/ads/", "doubleclick"}
	maybeBadImage  = []string{"logo", "icon"}
)

// minImageAlt is the alt text length that rescues a logo or icon image.
const minImageAlt = 8

// figureImage extracts the first image of a <figure>, captioned by its
// <figcaption>.
func figureImage(figure *goquery.Selection, base *url.URL) (readview.Block, bool) {
	img := figure.FindMatcher(imgMatcher).First()
	if img.Length() == 0 {
		return readview.Block{}, false
	}
	caption := text(figure.FindMatcher(figcaptionMatcher).First())
	return imageBlock(img, base, caption)
}

func imageBlock(img *goquery.Selection, base *url.URL, caption string) (readview.Block, bool) {
	src := ResolveURL(base, imageSource(img))
	if src == "" {
		return readview.Block{}, false
	}
	alt := readview.NormalizeText(img.AttrOr("alt", ""))
	if isNoiseImage(src, alt, caption) {
		return readview.Block{}, false
	}
	return readview.Image(src, alt, caption), true
}

func imageSource(img *goquery.Selection) string {
	for _, attr := range imageSourceAttrs {
		if src := strings.TrimSpace(img.AttrOr(attr, "")); src != "" {
			return src
		}
	}
	return lastSrcsetURL(img.AttrOr("srcset", ""))
}

// lastSrcsetURL returns the URL of the last candidate in a srcset list.
func lastSrcsetURL(srcset string) string {
	var last string
	for _, candidate := range strings.Split(srcset, ",") {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			last = fields[0]
		}
	}
	return last
}

// ResolveURL turns raw into an absolute URL against base. It returns an
// empty string for empty input, data: URIs and unparsable references.
func ResolveURL(base *url.URL, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(strings.ToLower(raw), "data:") {
		return ""
	}
	if strings.HasPrefix(raw, "//") && base != nil {
		return base.Scheme + ":" + raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	if base == nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func isNoiseImage(src, alt, caption string) bool {
	lower := strings.ToLower(src)
	if containsAny(lower, alwaysBadImage) {
		return true
	}
	if containsAny(lower, maybeBadImage) {
		return caption == "" && len(alt) < minImageAlt
	}
	return false
}
