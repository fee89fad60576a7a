package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/readview"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	CacheDir string
	Articles readview.ArticleService
}

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 20 * time.Second

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string        `type:"path" help:"YAML config file supplying defaults for the flags below"`
	CacheDir  string        `name:"cache-dir" env:"READVIEW_CACHE_DIR" help:"Cache directory"`
	Timeout   time.Duration `env:"READVIEW_TIMEOUT" default:"20s" help:"Fetch timeout"`
	Rate      float64       `help:"Max requests per second per host (0 disables limiting)"`
	Store     string        `default:"fs" help:"Disk cache backend: fs or sqlite"`
	Extractor string        `default:"readability" help:"External extractor: readability, trafilatura or none"`
	NoCache   bool          `name:"no-cache" help:"Skip the disk cache"`
	Verbose   bool          `short:"v" help:"Log debug output to stderr"`

	Read      ReadCmd      `cmd:"" help:"Fetch a URL and print the readable article"`
	Save      SaveCmd      `cmd:"" help:"Save articles as markdown files"`
	CachePath CachePathCmd `cmd:"" name:"cache-path" help:"Print the disk cache file for a URL"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Title  string `short:"t" help:"Title to use when the page has none"`
	Format string `short:"f" enum:"text,markdown,json" default:"text" help:"Output format: text, markdown or json"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URLs []string `arg:"" name:"url" help:"Article URLs"`
	Dir  string   `short:"d" default:"." type:"path" help:"Output directory"`
}

// CachePathCmd is the "cache-path" subcommand.
type CachePathCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// apply fills flags left at their defaults from the config file.
func (c *CLI) apply(fc FileConfig) {
	if c.CacheDir == "" && fc.CacheDir != "" {
		c.CacheDir = fc.CacheDir
	}
	if c.Timeout == DefaultTimeout && fc.Timeout > 0 {
		c.Timeout = fc.Timeout
	}
	if c.Rate == 0 && fc.Rate > 0 {
		c.Rate = fc.Rate
	}
	if c.Store == "fs" && fc.Store != "" {
		c.Store = fc.Store
	}
	if c.Extractor == "readability" && fc.Extractor != "" {
		c.Extractor = fc.Extractor
	}
	c.NoCache = c.NoCache || fc.NoCache
	c.Verbose = c.Verbose || fc.Verbose
}

func (c *CLI) validate() error {
	switch c.Store {
	case "fs", "sqlite":
	default:
		return readview.Errorf(readview.EINVALID, "unknown store %q (want fs or sqlite)", c.Store)
	}
	switch c.Extractor {
	case "readability", "trafilatura", "none":
	default:
		return readview.Errorf(readview.EINVALID, "unknown extractor %q (want readability, trafilatura or none)", c.Extractor)
	}
	if c.Timeout <= 0 {
		return readview.Errorf(readview.EINVALID, "timeout must be positive")
	}
	return nil
}
