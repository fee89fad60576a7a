package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/readview"
)

// URLToPath converts an article URL to a relative markdown file path
// under a directory named after the host.
// Example: https://www.example.com/posts/hello → example.com/posts/hello.md
func URLToPath(rawURL string) (string, error) {
	u, err := readview.ParseURL(rawURL)
	if err != nil {
		return "", err
	}

	host := readview.HostName(u)
	rel := strings.TrimPrefix(path.Clean("/"+u.Path), "/")

	switch {
	case rel == "":
		rel = "index.md"
	case strings.HasSuffix(u.Path, "/"):
		rel += "/index.md"
	default:
		rel = strings.TrimSuffix(rel, ".html") + ".md"
	}

	out := filepath.Join(host, filepath.FromSlash(rel))
	if !filepath.IsLocal(out) {
		return "", readview.Errorf(readview.EINVALID, "cannot map URL to a local path: %s", rawURL)
	}
	return out, nil
}

// FormatArticleFile formats an article as markdown with YAML frontmatter.
func FormatArticleFile(rawURL string, article *readview.Article, saved time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(rawURL)
	b.WriteString("\ntitle: ")
	b.WriteString(quoteYAML(article.Title))
	if article.Byline != "" {
		b.WriteString("\nbyline: ")
		b.WriteString(quoteYAML(article.Byline))
	}
	if article.SiteName != "" {
		b.WriteString("\nsite: ")
		b.WriteString(quoteYAML(article.SiteName))
	}
	b.WriteString("\nsaved: ")
	b.WriteString(saved.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(readview.FormatMarkdown(&readview.Article{Blocks: article.Blocks}))
	b.WriteString("\n")
	return b.String()
}

func quoteYAML(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// Writer saves articles as markdown files in a directory.
type Writer struct {
	baseDir string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// WriteArticle writes article to disk and returns the file path.
func (w *Writer) WriteArticle(ctx context.Context, rawURL string, article *readview.Article) (string, error) {
	relPath, err := URLToPath(rawURL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	content := FormatArticleFile(rawURL, article, now())
	if err := writeFileAtomic(fullPath, []byte(content)); err != nil {
		return "", err
	}
	return fullPath, nil
}
