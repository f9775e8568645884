package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/crawl"
	"github.com/fwojciec/docbot/goquery"
	dochttp "github.com/fwojciec/docbot/http"
	docslog "github.com/fwojciec/docbot/slog"
	"github.com/fwojciec/docbot/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
	// Topic table. Loaded from --topics or the built-in table when nil.
	Topics *docbot.Topics

	// Searcher for end-to-end testing. Built from flags when nil.
	Searcher docbot.Searcher
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
		kong.Name("docbot"),
		kong.Description("Answer questions with excerpts from documentation sites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docbot --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogFormat, cli.Verbose)

	if m.Topics == nil {
		m.Topics, err = loadTopics(cli.TopicsFile)
		if err != nil {
			if cli.TopicsFile != "" {
				fmt.Fprintln(stderr, "Hint: Set DOCBOT_TOPICS to use a different topic file")
			}
			return fmt.Errorf("failed to load topics: %w", err)
		}
	}
	deps.Topics = m.Topics

	if strings.HasPrefix(kongCtx.Command(), "search") {
		if m.Searcher == nil {
			fetcher := docslog.NewLoggingFetcher(
				dochttp.NewFetcher(dochttp.WithTimeout(cli.Timeout)),
				deps.Logger,
			)
			defer fetcher.Close()

			searcher := &crawl.Searcher{
				Fetcher:     fetcher,
				Links:       goquery.NewLinkExtractor(),
				Text:        goquery.NewTextExtractor(),
				Logger:      deps.Logger,
				Concurrency: cli.Concurrency,
			}
			if cli.RPS > 0 {
				searcher.RateLimiter = crawl.NewDomainLimiter(cli.RPS, 1)
			}
			m.Searcher = searcher
		}
		deps.Searcher = docslog.NewLoggingSearcher(m.Searcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func loadTopics(path string) (*docbot.Topics, error) {
	if path == "" {
		return yaml.DefaultTopics()
	}
	return yaml.LoadTopics(path)
}

// newLogger returns a logger writing to w. Only warnings and errors are
// emitted unless verbose is set.
func newLogger(w io.Writer, format string, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
