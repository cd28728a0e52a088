package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/sitefetch/sitefetch"
	"github.com/sitefetch/sitefetch/crawl"
	"github.com/sitefetch/sitefetch/goquery"
	"github.com/sitefetch/sitefetch/htmltomarkdown"
	sfhttp "github.com/sitefetch/sitefetch/http"
	"github.com/sitefetch/sitefetch/readability"
	"github.com/sitefetch/sitefetch/rod"
	sfslog "github.com/sitefetch/sitefetch/slog"
	"github.com/sitefetch/sitefetch/sqlite"
	"github.com/sitefetch/sitefetch/trafilatura"
	"github.com/sitefetch/sitefetch/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used for run history.
	DB *sqlite.DB

	// RunService for end-to-end testing.
	RunService sitefetch.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("sitefetch"),
		kong.Description("Fetch websites to local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitefetch --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	// Merge the optional config file with flag values
	cfg, err := LoadConfig(cli, func(name string) bool {
		return flagProvided(kongCtx, name)
	})
	if err != nil {
		return err
	}
	deps.Config = cfg

	// Open run history database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEFETCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Runs = m.RunService

	// Wire crawl dependencies for the fetch command
	if isFetchCommand(cmd) {
		if err := m.wireFetch(deps, cli); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// isFetchCommand reports whether the parsed command is a fetch invocation.
func isFetchCommand(cmd string) bool {
	return len(cmd) >= 5 && cmd[:5] == "fetch"
}

// wireFetch constructs the discovery and crawl pipeline.
func (m *Main) wireFetch(deps *Dependencies, cli *CLI) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if os.Getenv("SITEFETCH_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg := deps.Config

	httpFetcher := sfhttp.NewFetcher(
		sfhttp.WithTimeout(cfg.Timeout),
		sfhttp.WithUserAgent(cfg.UserAgent),
	)

	var rodFetcher sitefetch.Fetcher
	rf, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.Timeout))
	if err != nil {
		// No browser available; plain HTTP still covers static sites.
		fmt.Fprintln(deps.Stderr, "warning: headless browser unavailable, JS-rendered sites may come up empty")
	} else {
		rodFetcher = rf
	}

	detector := goquery.NewDetector()
	fallbackSelector := goquery.NewGenericSelector()
	linkSelectors := sfslog.NewLoggingRegistry(
		goquery.NewRegistry(detector, fallbackSelector), detector, logger)
	registerFrameworkSelectors(linkSelectors)

	rateLimiter := crawl.NewDomainLimiter(cfg.RatePerSec)
	extractor := &fallbackExtractor{
		primary:  trafilatura.NewExtractor(),
		fallback: readability.NewExtractor(),
	}
	converter := htmltomarkdown.NewConverter()

	discoverer := &crawl.Discoverer{
		HTTPFetcher:   httpFetcher,
		RodFetcher:    rodFetcher,
		Prober:        detector,
		Extractor:     extractor,
		LinkSelectors: linkSelectors,
		RateLimiter:   rateLimiter,
		Concurrency:   cfg.Concurrency,
		RetryDelays:   cfg.RetryDelays,
	}

	sitemaps := sfslog.NewLoggingSitemapService(sfhttp.NewSitemapService(nil), logger)
	deps.Source = NewCompositeSource(sitemaps, discoverer, parsedFilter(cli))

	// The page fetcher is picked by probing the seed URL, but only once
	// the crawl actually starts fetching pages.
	pageFetcher := NewLazyFetcher(func(ctx context.Context) sitefetch.Fetcher {
		return ProbeFetcher(ctx, cli.Fetch.URL, httpFetcher, rodFetcher, detector, extractor)
	})

	deps.Fetcher = &crawl.Crawler{
		Fetcher:     sfslog.NewLoggingFetcher(pageFetcher, logger),
		Extractor:   extractor,
		Converter:   converter,
		Robots:      sfhttp.NewRobotsPolicy(nil, cfg.UserAgent),
		RateLimiter: rateLimiter,
		Concurrency: cfg.Concurrency,
		RetryDelays: cfg.RetryDelays,
	}

	return nil
}

// LoadConfig loads the optional config file and overlays CLI flags on
// top. A flag wins over the file only when it was actually passed on
// the command line; provided reports that, by flag name.
func LoadConfig(cli *CLI, provided func(name string) bool) (*sitefetch.Config, error) {
	cfg := &sitefetch.Config{}

	path := yaml.FindConfigFile(cli.Config)
	if path != "" {
		loaded, err := yaml.LoadConfig(path)
		if err != nil && !errors.Is(err, yaml.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load config %q: %w", path, err)
		}
		if loaded != nil {
			cfg = loaded
		}
	} else if cli.Config != "" {
		return nil, fmt.Errorf("config file %q not found", cli.Config)
	}

	if provided("concurrency") || cfg.Concurrency == 0 {
		cfg.Concurrency = cli.Fetch.Concurrency
	}
	if provided("timeout") || cfg.Timeout == 0 {
		cfg.Timeout = cli.Fetch.Timeout
	}
	if provided("rate") || cfg.RatePerSec == 0 {
		cfg.RatePerSec = cli.Fetch.Rate
	}
	cfg.Normalize()

	return cfg, nil
}

// flagProvided reports whether the named flag appeared on the command
// line, as opposed to being filled in from its default.
func flagProvided(kongCtx *kong.Context, name string) bool {
	for _, trace := range kongCtx.Path {
		if trace.Flag != nil && trace.Flag.Name == name {
			return true
		}
	}
	return false
}

// defaultDBPath returns the run history database location.
func defaultDBPath() string {
	if path := os.Getenv("SITEFETCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitefetch.db"
	}
	dir := filepath.Join(home, ".sitefetch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitefetch.db")
}

// fallbackExtractor tries the primary extractor first and falls back to
// the secondary when extraction fails. Trafilatura handles most pages;
// readability covers the ones it rejects.
type fallbackExtractor struct {
	primary  sitefetch.Extractor
	fallback sitefetch.Extractor
}

func (e *fallbackExtractor) Extract(html string) (*sitefetch.ExtractResult, error) {
	result, err := e.primary.Extract(html)
	if err == nil {
		return result, nil
	}
	return e.fallback.Extract(html)
}

// registerFrameworkSelectors registers all framework-specific link selectors with the registry.
func registerFrameworkSelectors(registry sitefetch.LinkSelectorRegistry) {
	registry.Register(sitefetch.FrameworkDocusaurus, goquery.NewDocusaurusSelector())
	registry.Register(sitefetch.FrameworkMkDocs, goquery.NewMkDocsSelector())
	registry.Register(sitefetch.FrameworkSphinx, goquery.NewSphinxSelector())
	registry.Register(sitefetch.FrameworkVuePress, goquery.NewVuePressSelector())
	registry.Register(sitefetch.FrameworkGitBook, goquery.NewGitBookSelector())
	registry.Register(sitefetch.FrameworkNextra, goquery.NewNextraSelector())
}
