package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docbot"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Topics   *docbot.Topics
	Searcher docbot.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	TopicsFile  string        `name:"topics" env:"DOCBOT_TOPICS" help:"Path to a YAML topic file (defaults to the built-in table)"`
	Timeout     time.Duration `default:"10s" env:"DOCBOT_TIMEOUT" help:"Per-request fetch timeout"`
	Concurrency int           `short:"c" default:"8" env:"DOCBOT_CONCURRENCY" help:"Concurrent fetch limit"`
	RPS         float64       `name:"rps" default:"0" env:"DOCBOT_RPS" help:"Requests per second per host (0 means unlimited)"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	LogFormat   string        `default:"text" enum:"text,json" help:"Log format (text or json)"`

	Search SearchCmd `cmd:"" help:"Search documentation for a topic"`
	Topics TopicsCmd `cmd:"" help:"List configured topics"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Topic string   `arg:"" help:"Topic name"`
	Query []string `arg:"" help:"Search terms"`
	JSON  bool     `help:"Print the result as JSON"`
}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct{}
