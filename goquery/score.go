package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var (
	candidateMatcher = cascadia.MustCompile("article, main, section, div")
	paragraphMatcher = cascadia.MustCompile("p")
	anchorMatcher    = cascadia.MustCompile("a")
)

var tagBonus = map[string]float64{
	"article": 800,
	"main":    650,
	"section": 250,
}

// Scoring thresholds.
const (
	minParagraphLen    = 20
	minCandidateLen    = 120
	maxLinkDensity     = 0.75
	highLinkDensity    = 0.5
	shortParagraphMass = 400
)

// SelectBestRoot returns the container most likely to hold the article
// body, or nil if no candidate scores above zero. Ties keep the candidate
// found first in document order.
func SelectBestRoot(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	var bestScore float64

	doc.FindMatcher(candidateMatcher).Each(func(_ int, sel *goquery.Selection) {
		if isUnlikely(sel) {
			return
		}
		score := ScoreCandidate(sel)
		if score <= 0 || (best != nil && score <= bestScore) {
			return
		}
		best, bestScore = sel, score
	})

	return best
}

// ScoreCandidate scores a container by tag, attribute keywords, paragraph
// mass, paragraph count, comma count and link density.
func ScoreCandidate(sel *goquery.Selection) float64 {
	var pCount, pLen int
	sel.FindMatcher(paragraphMatcher).Each(func(_ int, p *goquery.Selection) {
		if n := textLen(p); n >= minParagraphLen {
			pCount++
			pLen += n
		}
	})

	total := textLen(sel)
	if total < minCandidateLen {
		return 0
	}

	var linkLen int
	sel.FindMatcher(anchorMatcher).Each(func(_ int, a *goquery.Selection) {
		linkLen += textLen(a)
	})
	density := min(float64(linkLen)/float64(total), 1)
	if density > maxLinkDensity {
		return 0
	}

	score := tagBonus[goquery.NodeName(sel)]
	score += float64(attributeWeight(sel) * 25)
	score += float64(pLen) * (1 - density)
	score += float64(pCount) * 120
	score += float64(countCommas(rawText(sel))) * 20

	if pLen < shortParagraphMass {
		score *= 0.85
	}
	if density > highLinkDensity {
		score *= 0.6
	}
	return score
}

func countCommas(s string) int {
	return strings.Count(s, ",") + strings.Count(s, "\uff0c")
}
