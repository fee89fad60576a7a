package main

import (
	"fmt"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/fs"
)

// Run executes the save command. A failing URL is reported and the
// remaining URLs are still saved.
func (c *SaveCmd) Run(deps *Dependencies) error {
	w := fs.NewWriter(c.Dir)

	var failed int
	for _, rawURL := range c.URLs {
		article, err := deps.Articles.Load(deps.Ctx, rawURL, "")
		if err == nil {
			var path string
			if path, err = w.WriteArticle(deps.Ctx, rawURL, article); err == nil {
				fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
				continue
			}
		}
		failed++
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", rawURL, readview.ErrorMessage(err))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed", failed, len(c.URLs))
	}
	return nil
}
