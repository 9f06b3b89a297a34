package seoscan

import (
	"context"
	"time"
)

// Metadata holds page-level fields reported by the scraper rather than
// derived from the markup by pattern extraction.
type Metadata struct {
	Title         string
	Description   string
	Keywords      string
	Robots        string
	Viewport      string
	Canonical     string
	OGTitle       string
	OGDescription string
	OGImage       string
	// StatusCode is the status the target page was served with.
	// Zero means the scraper did not report one.
	StatusCode int
}

// ScrapeResult is a rendered page as returned by a Scraper.
type ScrapeResult struct {
	Metadata Metadata
	Markdown string
	RawHTML  string

	// StatusCode is the transport status of the scrape request itself.
	StatusCode int
	Elapsed    time.Duration
}

// Scraper retrieves a rendered page.
// Any failure, including a non-success response, is returned as an error
// with code EUNAVAILABLE; no partial result is returned.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// MetadataExtractor reads page metadata out of raw HTML.
type MetadataExtractor interface {
	ExtractMetadata(html string) (*Metadata, error)
}
