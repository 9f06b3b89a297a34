package analyze

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seoscan"
	"github.com/fwojciec/seoscan/pattern"
)

// Analyzer scrapes pages and assembles their analyses.
type Analyzer struct {
	Scraper seoscan.Scraper

	// Logger receives per-page extraction statistics at debug level.
	// Optional.
	Logger *slog.Logger

	// Now returns the analysis timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Analyze scrapes url and returns its analysis.
// A scraper failure aborts the analysis; no partial analysis is returned.
func (a *Analyzer) Analyze(ctx context.Context, url string) (*seoscan.PageAnalysis, error) {
	if url == "" {
		return nil, seoscan.Errorf(seoscan.EINVALID, "URL required")
	}

	res, err := a.Scraper.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}

	x := pattern.Extract(res.RawHTML, res.Markdown, url)
	if a.Logger != nil {
		a.Logger.Debug("page extraction",
			"url", url,
			"html_bytes", len(res.RawHTML),
			"markdown_bytes", len(res.Markdown),
			"links", len(x.Links),
			"images", len(x.Images),
			"meta_tags", len(x.MetaTags),
			"schema_blocks", len(x.Schema),
			"hreflang", len(x.Hreflang),
		)
	}

	return assemble(url, res, x, a.now()), nil
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
