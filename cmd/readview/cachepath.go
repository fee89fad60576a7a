package main

import (
	"fmt"

	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/fs"
)

// Run executes the cache-path command.
func (c *CachePathCmd) Run(deps *Dependencies) error {
	if _, err := readview.ParseURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readview.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, fs.NewArticleStore(deps.CacheDir).Path(c.URL))
	return nil
}
