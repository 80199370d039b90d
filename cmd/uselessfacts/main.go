package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/uselessfacts/pkg/config"
	"github.com/umputun/uselessfacts/pkg/content"
	"github.com/umputun/uselessfacts/pkg/facts"
	"github.com/umputun/uselessfacts/pkg/feed"
	"github.com/umputun/uselessfacts/pkg/llm"
	"github.com/umputun/uselessfacts/pkg/repository"
	"github.com/umputun/uselessfacts/pkg/scheduler"
	"github.com/umputun/uselessfacts/pkg/search"
	"github.com/umputun/uselessfacts/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides server.listen"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	lgr.Printf("[INFO] starting uselessfacts version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the context is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	setupLog(opts.Debug, opts.NoColor, cfg.LLM.APIKey, cfg.Embedding.APIKey, cfg.Admin.Password)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	llm.RegisterMetrics()
	embedder := llm.NewEmbedder(cfg.Embedding, cfg.LLM.RequestsPerMinute)
	searchSvc := search.NewService(repos.Topic, repos.Article, embedder)
	factSvc := facts.NewService(searchSvc, repos.Fact, llm.NewFactWriter(cfg.LLM))

	params := scheduler.Params{
		Store:          repos.Article,
		Parser:         feed.NewParser(cfg.Extraction.Timeout, cfg.Extraction.UserAgent),
		Entities:       llm.NewEntityExtractor(cfg.LLM),
		Embedder:       embedder,
		Feeds:          cfg.Feeds,
		UpdateInterval: cfg.Schedule.UpdateInterval,
		MaxWorkers:     cfg.Schedule.MaxWorkers,
		MinTextLength:  cfg.Extraction.MinTextLength,
		PurgeCron:      cfg.Schedule.PurgeCron,
		Retention:      cfg.Retention(),
	}
	if cfg.Extraction.Enabled {
		params.Extractor = content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent)
	}
	sched := scheduler.NewScheduler(params)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	srv := server.New(cfg, server.Deps{
		Search:   searchSvc,
		Articles: repos.Article,
		Facts:    factSvc,
		Ingester: sched,
	}, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	var secs []string
	for _, s := range secrets {
		if s != "" {
			secs = append(secs, s)
		}
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
