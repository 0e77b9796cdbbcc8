package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/export"
	"github.com/fwojciec/blogsmith/gemini"
	"github.com/fwojciec/blogsmith/generate"
	"github.com/fwojciec/blogsmith/htmltomarkdown"
	bsprom "github.com/fwojciec/blogsmith/prometheus"
	bsslog "github.com/fwojciec/blogsmith/slog"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Completer replaces the Gemini completer when set. Used by end-to-end tests.
	Completer blogsmith.Completer

	// Registry receives all metrics. A fresh registry is created when nil.
	Registry *prometheus.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("blogsmith"),
		kong.Description("Draft blog titles, articles and SEO metadata with Gemini."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'blogsmith --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := bsslog.NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}
	deps.Logger = logger

	reg := m.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	deps.Metrics = bsprom.NewMetrics(reg)
	deps.Gatherer = reg

	deps.Exporter = bsslog.NewLoggingExporter(bsprom.NewExporter(export.NewExporter(), deps.Metrics), logger)

	if needsCompleter(kongCtx.Command()) {
		completer, err := m.completer(ctx, cli, deps)
		if err != nil {
			return err
		}
		m.wireGenerators(deps, completer)
	}

	return kongCtx.Run(deps)
}

// completer builds the instrumented Gemini completer.
func (m *Main) completer(ctx context.Context, cli *CLI, deps *Dependencies) (blogsmith.Completer, error) {
	var next blogsmith.Completer = m.Completer
	var counter blogsmith.TokenCounter

	if next == nil {
		client, err := gemini.NewClient(ctx, cli.APIKey)
		if err != nil {
			if blogsmith.ErrorCode(err) == blogsmith.EINVALID {
				fmt.Fprintln(deps.Stderr, "Hint: set GEMINI_API_KEY in the environment or in a .env file")
			}
			return nil, err
		}
		next = gemini.NewCompleter(client, cli.Model)

		tc, err := gemini.NewTokenCounter(cli.Model)
		if err != nil {
			deps.Logger.Warn("token counting disabled", "model", cli.Model, "err", err)
		} else {
			counter = tc
		}
	}

	return bsprom.NewCompleter(bsslog.NewLoggingCompleter(next, counter, deps.Logger), deps.Metrics), nil
}

// wireGenerators builds the generation services on top of completer.
func (m *Main) wireGenerators(deps *Dependencies, completer blogsmith.Completer) {
	logger := deps.Logger

	metadata := generate.NewMetadataService(completer)
	metadata.Converter = htmltomarkdown.NewConverter()
	deps.Metadata = bsslog.NewLoggingMetadataGenerator(metadata, logger)

	deps.Titles = bsslog.NewLoggingTitleGenerator(generate.NewTitleService(completer), logger)
	deps.Articles = bsslog.NewLoggingArticleGenerator(&generate.Drafter{
		Articles: generate.NewArticleService(completer),
		Metadata: deps.Metadata,
		Logger:   logger,
	}, logger)
}

// needsCompleter reports whether the command talks to the model.
func needsCompleter(command string) bool {
	switch strings.Fields(command)[0] {
	case "serve", "titles", "article", "seo":
		return true
	default:
		return false
	}
}

// logger is used by commands that may run before Run sets deps.Logger.
func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
