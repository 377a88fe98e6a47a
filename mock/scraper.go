package mock

import (
	"context"

	"scrapesage"
)

var _ scrapesage.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of scrapesage.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, req scrapesage.ScrapeRequest) (*scrapesage.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, req scrapesage.ScrapeRequest) (*scrapesage.ScrapeResult, error) {
	return s.ScrapeFn(ctx, req)
}
