package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seoscan"
	"github.com/fwojciec/seoscan/analyze"
	"github.com/fwojciec/seoscan/compile"
	"github.com/fwojciec/seoscan/excelize"
	"github.com/fwojciec/seoscan/firecrawl"
	"github.com/fwojciec/seoscan/fs"
	"github.com/fwojciec/seoscan/goquery"
	"github.com/fwojciec/seoscan/htmltomarkdown"
	seohttp "github.com/fwojciec/seoscan/http"
	seoslog "github.com/fwojciec/seoscan/slog"
	"github.com/fwojciec/seoscan/sqlite"
	"github.com/joho/godotenv"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Credentials may live in a .env file; a missing file is fine.
	_ = godotenv.Load()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Scraper replaces the configured scraping backend. Used by end-to-end tests.
	Scraper seoscan.Scraper

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// SQLite database, open only with --store=sqlite.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("seoscan"),
		kong.Description("Analyze on-page SEO signals and compile them into a spreadsheet"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"version": version},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input provided. Run 'seoscan --help' for usage")
	}
	for _, a := range args {
		if a == "--help" || a == "-h" || a == "help" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if cli.Version {
		return nil
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	records, err := m.openRecordStore(cli)
	if err != nil {
		return err
	}
	defer m.Close()
	deps.Records = seoslog.NewLoggingRecordStore(records, logger)

	deps.Compiler = &compile.Compiler{
		Records: deps.Records,
		Reports: seoslog.NewLoggingReportWriter(excelize.NewReportWriter(cli.OutputDir), logger),
		Now:     m.now,
	}

	if cli.CompileOnly {
		return cli.Run(deps)
	}
	if cli.Input == "" {
		return seoscan.Errorf(seoscan.EINVALID, "input required: a URL, a CSV file, or --compile-only")
	}

	scraper, err := m.scraper(cli, stderr)
	if err != nil {
		return err
	}
	deps.Runner = &analyze.Runner{
		Analyzer: &analyze.Analyzer{
			Scraper: seoslog.NewLoggingScraper(scraper, logger),
			Logger:  logger,
			Now:     m.now,
		},
		Records: deps.Records,
	}

	if cli.Sitemap {
		sitemaps := seohttp.NewSitemapService(&http.Client{Timeout: cli.Timeout})
		sitemaps.Limit = cli.MaxURLs
		deps.Source = seoslog.NewLoggingURLSource(sitemaps, logger)
	} else {
		deps.Source = seoslog.NewLoggingURLSource(fs.URLList{}, logger)
	}

	return cli.Run(deps)
}

func (m *Main) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Main) openRecordStore(cli *CLI) (seoscan.RecordStore, error) {
	if cli.Store == "sqlite" {
		path := cli.DB
		if path == "" {
			if err := os.MkdirAll(cli.ResultsDir, 0755); err != nil {
				return nil, fmt.Errorf("create results dir: %w", err)
			}
			path = filepath.Join(cli.ResultsDir, "seoscan.db")
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			m.DB = nil
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewRecordStore(m.DB), nil
	}
	return fs.NewRecordStore(cli.ResultsDir), nil
}

func (m *Main) scraper(cli *CLI, stderr io.Writer) (seoscan.Scraper, error) {
	if m.Scraper != nil {
		return m.Scraper, nil
	}

	if cli.Backend == "http" {
		return seohttp.NewScraper(
			goquery.NewMetadataExtractor(),
			htmltomarkdown.NewConverter(),
			seohttp.WithTimeout(cli.Timeout),
		), nil
	}

	client, err := firecrawl.NewClient(
		firecrawl.Config{APIKey: cli.APIKey, BaseURL: cli.APIURL},
		firecrawl.WithHTTPClient(&http.Client{Timeout: cli.Timeout}),
		firecrawl.WithRateLimit(cli.Rate),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: set FIRECRAWL_API_KEY in the environment or a .env file, or pass --api-key")
		return nil, err
	}
	return client, nil
}

// errorText returns the message to show for err. Application errors carry a
// user-facing message; anything else is shown as is.
func errorText(err error) string {
	if seoscan.ErrorCode(err) == seoscan.EINTERNAL {
		return err.Error()
	}
	return seoscan.ErrorMessage(err)
}
