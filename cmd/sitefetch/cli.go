package main

import (
	"context"
	"io"
	"time"

	"github.com/sitefetch/sitefetch"
	"github.com/sitefetch/sitefetch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	DB      *sqlite.DB
	Source  sitefetch.URLSource
	Fetcher sitefetch.PageFetcher
	Store   sitefetch.PageStore
	Runs    sitefetch.RunService

	// Config holds normalized crawl settings (flags merged over the
	// optional config file).
	Config *sitefetch.Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch FetchCmd `cmd:"" default:"withargs" help:"Fetch a site to local markdown files"`
	Runs  RunsCmd  `cmd:"" help:"List recorded crawl runs"`

	Config string `help:"Path to a config file (default: .sitefetch.yml in cwd or home)"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL  string `arg:"" required:"" help:"Site URL to fetch"`
	Name string `arg:"" optional:"" help:"Name for the output directory"`
	Path string `arg:"" optional:"" default:"." help:"Base path for output (default: current directory)"`

	Preview     bool          `short:"p" help:"Preview discovered URLs without saving"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Limit       int           `short:"l" help:"Fetch at most this many pages (0 = all)"`
	Filter      []string      `short:"F" name:"filter" help:"Include only URLs matching regex (repeatable; prefix with ! to exclude)"`
	Rate        float64       `default:"1" help:"Max requests per second per domain"`
	NoHistory   bool          `name:"no-history" help:"Skip recording this run in the history database"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Source string `short:"s" help:"Filter runs by source URL"`
	Limit  int    `short:"l" default:"20" help:"Show at most this many runs"`
	ID     string `arg:"" optional:"" help:"Show page-level detail for a single run"`
}
