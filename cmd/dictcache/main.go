// Command dictcache maintains the static dictionary cache and exercises the
// meaning pipeline from a terminal.
//
//	dictcache build                 resolve every corpus word missing from the cache
//	dictcache check                 report whether the cache is older than the corpus
//	dictcache refresh               rebuild only when needed (FORCE_DICTIONARY=true forces)
//	dictcache lookup <word>         resolve one word like the server does
//	dictcache annotate "<line>"     render a line into fragments
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/nazm-backend/internal/app"
	"github.com/heartmarshall/nazm-backend/internal/config"
)

// CLI defines the command-line interface for dictcache.
type CLI struct {
	Config   string `name:"config" short:"c" help:"Path to config YAML (default: $CONFIG_PATH or ./config.yaml)" type:"path"`
	Corpus   string `help:"Poem corpus file, overrides corpus.poems_path" type:"path"`
	Cache    string `help:"Static cache file, overrides dictionary.static_cache_path" type:"path"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error), overrides log.level"`

	Build    BuildCmd    `cmd:"" help:"Resolve corpus words missing from the static cache and save it"`
	Check    CheckCmd    `cmd:"" help:"Compare the static cache with the poem corpus"`
	Refresh  RefreshCmd  `cmd:"" help:"Rebuild the static cache when forced, missing or stale"`
	Lookup   LookupCmd   `cmd:"" help:"Resolve the meaning of one word"`
	Annotate AnnotateCmd `cmd:"" help:"Render a poem line into plain, translation and lookup fragments"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// env is what every command runs with.
type env struct {
	ctx    context.Context
	cfg    *config.Config
	log    *slog.Logger
	stdout io.Writer
}

func (c *CLI) load(ctx context.Context, stdout io.Writer) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.Config != "" {
		cfg, err = config.LoadPath(c.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if c.Corpus != "" {
		cfg.Corpus.PoemsPath = c.Corpus
	}
	if c.Cache != "" {
		cfg.Dictionary.StaticCachePath = c.Cache
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}

	return &env{ctx: ctx, cfg: cfg, log: app.NewLogger(cfg.Log), stdout: stdout}, nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("dictcache"),
		kong.Description("Static dictionary cache builder and meaning pipeline tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if kctx.Command() == "version" {
		kctx.FatalIfErrorf(kctx.Run(&env{ctx: ctx, stdout: os.Stdout}))
		return
	}

	e, err := cli.load(ctx, os.Stdout)
	kctx.FatalIfErrorf(err)
	kctx.FatalIfErrorf(kctx.Run(e))
}
