package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Keywords found in the id, class and role of content containers.
var positiveKeywords = []string{
	"article", "body", "content", "entry", "main", "page", "post", "read", "story", "text",
}

// Keywords found in the id, class and role of boilerplate.
var negativeKeywords = []string{
	"ad", "ads", "advert", "banner", "cookie", "comment", "footer", "header", "masthead",
	"menu", "modal", "nav", "newsletter", "pagination", "popup", "promo", "recommend",
	"related", "share", "sidebar", "social", "sponsor", "subscribe", "toolbar", "widget",
}

// Phrases that mark a paragraph or list item as noise.
var noisePhrases = []string{
	"cookie", "sign in", "log in", "subscribe", "newsletter", "advert", "sponsored",
	"privacy policy", "terms of service",
}

// Tags whose subtrees never carry article content.
var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "header": true, "footer": true,
	"nav": true, "aside": true, "form": true, "button": true, "input": true,
	"textarea": true, "select": true, "option": true, "iframe": true, "canvas": true,
}

const keywordScore = 25

// KeywordWeight returns +25 for every positive keyword and -25 for every
// negative keyword contained in value, ignoring case.
func KeywordWeight(value string) int {
	value = strings.ToLower(value)
	var weight int
	for _, kw := range positiveKeywords {
		if strings.Contains(value, kw) {
			weight += keywordScore
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(value, kw) {
			weight -= keywordScore
		}
	}
	return weight
}

// IsUnlikely reports whether an element with the given id, class and role
// attributes looks like boilerplate. Any positive keyword overrides the
// negative ones.
func IsUnlikely(id, class, role string) bool {
	combined := strings.ToLower(id + " " + class + " " + role)
	return containsAny(combined, negativeKeywords) && !containsAny(combined, positiveKeywords)
}

// IsNoiseText reports whether normalized paragraph text is too short or
// reads like a cookie, login or subscription prompt.
func IsNoiseText(text string) bool {
	if len(text) < 6 {
		return true
	}
	return containsAny(strings.ToLower(text), noisePhrases)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func attributeWeight(sel *goquery.Selection) int {
	return KeywordWeight(sel.AttrOr("id", "")) +
		KeywordWeight(sel.AttrOr("class", "")) +
		KeywordWeight(sel.AttrOr("role", ""))
}

func isUnlikely(sel *goquery.Selection) bool {
	return IsUnlikely(sel.AttrOr("id", ""), sel.AttrOr("class", ""), sel.AttrOr("role", ""))
}

// shouldSkip reports whether the element's whole subtree is ignored.
func shouldSkip(sel *goquery.Selection) bool {
	if _, ok := sel.Attr("hidden"); ok {
		return true
	}
	if strings.EqualFold(sel.AttrOr("aria-hidden", ""), "true") {
		return true
	}
	if skipTags[goquery.NodeName(sel)] {
		return true
	}
	return isUnlikely(sel)
}
