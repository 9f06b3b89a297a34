// Package slog decorates seoscan services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seoscan"
)

// Ensure LoggingScraper implements seoscan.Scraper.
var _ seoscan.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
// Successful scrapes are logged at debug level, failures at warn.
type LoggingScraper struct {
	next   seoscan.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next seoscan.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (res *seoscan.ScrapeResult, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if res != nil {
			attrs = append(attrs,
				"status", res.Metadata.StatusCode,
				"html_bytes", len(res.RawHTML),
				"markdown_bytes", len(res.Markdown),
			)
		}
		if err != nil {
			level = slog.LevelWarn
			attrs = append(attrs, "err", err)
		}
		s.logger.Log(ctx, level, "scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
