package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readview"
	"github.com/fwojciec/readview/fs"
	"github.com/fwojciec/readview/goquery"
	rvhttp "github.com/fwojciec/readview/http"
	"github.com/fwojciec/readview/memory"
	"github.com/fwojciec/readview/readability"
	"github.com/fwojciec/readview/reader"
	rvslog "github.com/fwojciec/readview/slog"
	"github.com/fwojciec/readview/sqlite"
	"github.com/fwojciec/readview/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv resolves environment variables for the default cache directory.
	Getenv func(string) string

	// Fetcher overrides the HTTP fetcher. Used by end-to-end tests.
	Fetcher readview.Fetcher

	// SQLite database, opened when the sqlite store is selected.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readview"),
		kong.Description("Read web articles as clean text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readview --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		fc, err := LoadConfigFile(cli.Config)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
		}
		cli.apply(fc)
	}
	if err := cli.validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.CacheDir = cli.CacheDir
	if deps.CacheDir == "" {
		deps.CacheDir = fs.ResolveCacheDir(m.getenv, runtime.GOOS)
	}

	if !strings.HasPrefix(kongCtx.Command(), "cache-path") {
		svc, err := m.newArticleService(cli, deps)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Articles = svc
	}

	return kongCtx.Run(deps)
}

// newArticleService wires the fetcher, extraction pipeline and cache tiers.
func (m *Main) newArticleService(cli *CLI, deps *Dependencies) (readview.ArticleService, error) {
	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []rvhttp.Option{rvhttp.WithTimeout(cli.Timeout)}
		if cli.Rate > 0 {
			opts = append(opts, rvhttp.WithLimiter(rvhttp.NewHostLimiter(cli.Rate)))
		}
		fetcher = rvhttp.NewFetcher(opts...)
	}

	var extractors []readview.Extractor
	switch cli.Extractor {
	case "readability":
		extractors = append(extractors, rvslog.NewLoggingExtractor(readability.NewExtractor(), "readability", deps.Logger))
	case "trafilatura":
		extractors = append(extractors, rvslog.NewLoggingExtractor(trafilatura.NewExtractor(), "trafilatura", deps.Logger))
	}

	pipeline := reader.NewPipeline(goquery.NewParser(), extractors...)
	pipeline.Logger = deps.Logger

	svc := reader.NewService(rvslog.NewLoggingFetcher(fetcher, deps.Logger), pipeline)
	svc.Logger = deps.Logger
	svc.Cache = memory.NewCache(readview.MemoryCacheSize)

	if !cli.NoCache {
		store, err := m.newArticleStore(cli.Store, deps)
		if err != nil {
			return nil, err
		}
		svc.Store = store
	}

	return rvslog.NewLoggingArticleService(svc, deps.Logger), nil
}

func (m *Main) newArticleStore(kind string, deps *Dependencies) (readview.ArticleStore, error) {
	if kind != "sqlite" {
		return fs.NewArticleStore(deps.CacheDir), nil
	}

	if err := os.MkdirAll(deps.CacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %q: %w", deps.CacheDir, err)
	}
	m.DB = sqlite.NewDB(filepath.Join(deps.CacheDir, "readview.db"))
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set %s to use a different cache directory\n", fs.CacheDirEnv)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := sqlite.NewArticleStore(m.DB)
	if n, err := store.DeleteExpired(deps.Ctx); err != nil {
		deps.Logger.Warn("failed to prune article cache", "err", err)
	} else if n > 0 {
		deps.Logger.Debug("pruned article cache", "count", n)
	}
	return store, nil
}

func (m *Main) getenv(key string) string {
	if m.Getenv == nil {
		return os.Getenv(key)
	}
	return m.Getenv(key)
}
