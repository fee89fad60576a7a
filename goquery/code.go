package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var codeMatcher = cascadia.MustCompile("code")

// indentRune replaces leading spaces in code so indentation survives
// renderers that collapse whitespace.
const indentRune = '\u00a0'

// codeBlock returns the normalized text and language of a <pre> element.
func codeBlock(pre *goquery.Selection) (string, string) {
	code := pre.FindMatcher(codeMatcher).First()
	raw := pre.Text()
	if code.Length() > 0 {
		raw = code.Text()
	}
	return NormalizeCode(raw), codeLanguage(code)
}

// NormalizeCode converts tabs to four spaces, drops blank leading and
// trailing lines, removes the indentation common to all non-blank lines
// and replaces the remaining leading spaces of each line with U+00A0.
func NormalizeCode(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\t", "    ")
	lines := strings.Split(raw, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := leadingSpaces(line); indent < 0 || n < indent {
			indent = n
		}
	}
	prefix := strings.Repeat(" ", max(indent, 0))

	for i, line := range lines {
		line = strings.TrimPrefix(line, prefix)
		n := leadingSpaces(line)
		lines[i] = strings.Repeat(string(indentRune), n) + line[n:]
	}
	return strings.Join(lines, "\n")
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

// codeLanguage reads the language from a language-* or lang-* class.
func codeLanguage(code *goquery.Selection) string {
	for _, token := range strings.Fields(code.AttrOr("class", "")) {
		for _, prefix := range []string{"language-", "lang-"} {
			if lang, ok := strings.CutPrefix(token, prefix); ok && lang != "" {
				return lang
			}
		}
	}
	return ""
}
