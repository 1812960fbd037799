package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/worldfacts"
	"github.com/fwojciec/worldfacts/crawl"
	"github.com/fwojciec/worldfacts/goquery"
	wfhttp "github.com/fwojciec/worldfacts/http"
	"github.com/fwojciec/worldfacts/rod"
	wfslog "github.com/fwojciec/worldfacts/slog"
	"github.com/fwojciec/worldfacts/sqlite"
	"github.com/fwojciec/worldfacts/text"
	"github.com/fwojciec/worldfacts/yaml"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CountryService worldfacts.CountryService
	CrawlService   worldfacts.CrawlService
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
		kong.Name("worldfacts"),
		kong.Description("Harvest country facts from encyclopedia pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'worldfacts --help' to see available commands")
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
	cmd = kongCtx.Command()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if strings.HasPrefix(cmd, "profiles") {
		return kongCtx.Run(deps)
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WORLDFACTS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CountryService = sqlite.NewCountryService(m.DB)
	m.CrawlService = sqlite.NewCrawlService(m.DB)
	deps.Countries = m.CountryService
	deps.Crawls = m.CrawlService

	if cmd == "crawl" {
		profile, err := loadProfile(cli.Crawl.Profile, cli.Crawl.ProfileFile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", worldfacts.ErrorMessage(err))
			return err
		}
		deps.Profile = profile

		var fetcher worldfacts.Fetcher
		if cli.Crawl.Render {
			rf, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Crawl.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rf
		} else {
			fetcher = wfhttp.NewFetcher(
				wfhttp.WithTimeout(cli.Crawl.Timeout),
				wfhttp.WithUserAgent(cli.Crawl.UserAgent),
			)
		}
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:      wfslog.NewLoggingFetcher(fetcher, deps.Logger),
			Index:        goquery.NewIndexParser(profile),
			Details:      goquery.NewDetailParser(profile),
			Normalizer:   text.NewTransliterator(),
			Countries:    wfslog.NewLoggingCountryWriter(m.CountryService, deps.Logger),
			Crawls:       m.CrawlService,
			RateLimiter:  crawl.NewHostLimiter(cli.Crawl.RPS, 1),
			Concurrency:  cli.Crawl.Concurrency,
			RetryDelays:  retryDelays(cli.Crawl.Retries),
			FetchTimeout: cli.Crawl.Timeout,
		}
	}

	return kongCtx.Run(deps)
}

// loadProfile returns the profile file's profile when path is set and the
// named built-in profile otherwise.
func loadProfile(name, path string) (*worldfacts.Profile, error) {
	if path != "" {
		return yaml.LoadProfile(path)
	}
	p, ok := worldfacts.Profiles()[name]
	if !ok {
		return nil, worldfacts.Errorf(worldfacts.EINVALID, "unknown profile %q", name)
	}
	return p, nil
}

// retryDelays returns n doubling backoff delays starting at one second.
func retryDelays(n int) []time.Duration {
	delays := []time.Duration{}
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// defaultDBPath returns WORLDFACTS_DB, or worldfacts.db under the XDG data
// directory.
func defaultDBPath() string {
	if path := os.Getenv("WORLDFACTS_DB"); path != "" {
		return path
	}
	dir := filepath.Join(xdg.DataHome, "worldfacts")
	_ = os.MkdirAll(dir, 0o750)
	return filepath.Join(dir, "worldfacts.db")
}
