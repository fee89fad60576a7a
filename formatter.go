package readview

import (
	"fmt"
	"strings"
)

// FormatArticle renders an article as plain text for terminal display.
// Blocks are separated by blank lines.
func FormatArticle(a *Article) string {
	if a == nil {
		return ""
	}

	var parts []string
	if header := formatHeader(a); header != "" {
		parts = append(parts, header)
	}

	for _, b := range a.Blocks {
		switch b.Kind {
		case BlockHeading:
			parts = append(parts, strings.ToUpper(b.Text))
		case BlockParagraph:
			parts = append(parts, b.Text)
		case BlockQuote:
			parts = append(parts, prefixLines(b.Text, "  | "))
		case BlockList:
			parts = append(parts, formatItems(b))
		case BlockCode:
			parts = append(parts, prefixLines(restoreIndent(b.Text), "    "))
		case BlockImage:
			parts = append(parts, "[image: "+imageLabel(b)+"]")
		case BlockRule:
			parts = append(parts, "* * *")
		}
	}

	return strings.Join(parts, "\n\n")
}

// FormatMarkdown renders an article as markdown.
func FormatMarkdown(a *Article) string {
	if a == nil {
		return ""
	}

	var parts []string
	if a.Title != "" {
		parts = append(parts, "# "+a.Title)
	}
	if meta := formatMeta(a); meta != "" {
		parts = append(parts, "_"+meta+"_")
	}

	for _, b := range a.Blocks {
		switch b.Kind {
		case BlockHeading:
			parts = append(parts, strings.Repeat("#", b.Level)+" "+b.Text)
		case BlockParagraph:
			parts = append(parts, b.Text)
		case BlockQuote:
			parts = append(parts, prefixLines(b.Text, "> "))
		case BlockList:
			parts = append(parts, formatItems(b))
		case BlockCode:
			parts = append(parts, "```"+b.Language+"\n"+restoreIndent(b.Text)+"\n```")
		case BlockImage:
			img := fmt.Sprintf("![%s](%s)", b.Alt, b.URL)
			if b.Caption != "" {
				img += "\n\n_" + b.Caption + "_"
			}
			parts = append(parts, img)
		case BlockRule:
			parts = append(parts, "---")
		}
	}

	return strings.Join(parts, "\n\n")
}

func formatHeader(a *Article) string {
	var lines []string
	if a.Title != "" {
		lines = append(lines, a.Title)
	}
	if meta := formatMeta(a); meta != "" {
		lines = append(lines, meta)
	}
	return strings.Join(lines, "\n")
}

func formatMeta(a *Article) string {
	var meta []string
	for _, s := range []string{a.SiteName, a.Byline, a.ReadingTime} {
		if s != "" {
			meta = append(meta, s)
		}
	}
	return strings.Join(meta, " · ")
}

func formatItems(b Block) string {
	lines := make([]string, len(b.Items))
	for i, item := range b.Items {
		marker := "-"
		if b.Ordered {
			marker = fmt.Sprintf("%d.", i+1)
		}
		lines[i] = marker + " " + item
	}
	return strings.Join(lines, "\n")
}

func imageLabel(b Block) string {
	switch {
	case b.Caption != "":
		return b.Caption
	case b.Alt != "":
		return b.Alt
	}
	return b.URL
}

func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(prefix+line, " ")
	}
	return strings.Join(lines, "\n")
}

// restoreIndent turns the non-breaking spaces used to carry code
// indentation back into ordinary spaces.
func restoreIndent(s string) string {
	return strings.ReplaceAll(s, "\u00a0", " ")
}
