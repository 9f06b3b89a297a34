package mock

import (
	"context"

	"github.com/fwojciec/seoscan"
)

var _ seoscan.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of seoscan.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*seoscan.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*seoscan.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}
