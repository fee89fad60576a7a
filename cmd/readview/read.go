package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/readview"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	session, done := readview.Open(deps.Ctx, deps.Articles, c.URL, c.Title)
	deps.Logger.Debug("loading article", "session", session.ID, "title", session.DisplayTitle())

	session = <-done
	if session.State == readview.StateError {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readview.ErrorMessage(session.Err))
		return session.Err
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(session.Article)
	case "markdown":
		fmt.Fprintln(deps.Stdout, readview.FormatMarkdown(session.Article))
	default:
		fmt.Fprintln(deps.Stdout, readview.FormatArticle(session.Article))
	}
	return nil
}
