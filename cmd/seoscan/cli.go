package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/seoscan"
	"github.com/fwojciec/seoscan/analyze"
	"github.com/fwojciec/seoscan/compile"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Records  seoscan.RecordStore
	Source   seoscan.URLSource
	Runner   *analyze.Runner
	Compiler *compile.Compiler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input string `arg:"" optional:"" help:"Page URL, CSV file with a 'url' column, or site URL with --sitemap."`

	FullWorkflow bool `name:"full-workflow" help:"Compile the spreadsheet after analyzing."`
	CompileOnly  bool `name:"compile-only" help:"Only compile stored records into a spreadsheet."`
	Sitemap      bool `help:"Analyze every URL listed in the input site's sitemaps."`
	MaxURLs      int  `name:"max-urls" default:"0" help:"Maximum number of sitemap URLs to analyze (0 for all)."`

	Backend    string `enum:"firecrawl,http" default:"firecrawl" help:"Scraping backend (${enum})."`
	Store      string `enum:"csv,sqlite" default:"csv" help:"Record store (${enum})."`
	ResultsDir string `name:"results-dir" default:"results" env:"SEOSCAN_RESULTS_DIR" type:"path" help:"Directory for per-page records."`
	DB         string `name:"db" type:"path" help:"SQLite database path for --store=sqlite. Defaults to <results-dir>/seoscan.db."`
	OutputDir  string `name:"output-dir" default:"." type:"path" help:"Directory for the compiled spreadsheet."`

	APIKey  string        `name:"api-key" env:"FIRECRAWL_API_KEY" help:"Firecrawl API key."`
	APIURL  string        `name:"api-url" env:"FIRECRAWL_API_URL" default:"https://api.firecrawl.dev" help:"Firecrawl API base URL."`
	Rate    float64       `default:"0" help:"Maximum scrape requests per second (0 for unlimited)."`
	Timeout time.Duration `default:"0s" help:"Timeout for a single page request (0 for none)."`

	Verbose bool             `short:"v" help:"Log debug output."`
	Version kong.VersionFlag `help:"Print version and exit."`
}

// Run executes the selected workflow.
func (c *CLI) Run(deps *Dependencies) error {
	if c.CompileOnly {
		return runCompile(deps)
	}

	if c.isBatch() {
		if err := runBatch(deps, c.Input); err != nil {
			return err
		}
	} else {
		if err := runSingle(deps, c.Input); err != nil {
			return err
		}
	}

	if c.FullWorkflow {
		return runCompile(deps)
	}
	return nil
}

// isBatch reports whether the input names many URLs rather than one page.
func (c *CLI) isBatch() bool {
	return c.Sitemap || strings.HasSuffix(strings.ToLower(c.Input), ".csv")
}
