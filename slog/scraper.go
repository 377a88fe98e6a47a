package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"scrapesage"
)

// Ensure Scraper implements scrapesage.Scraper at compile time.
var _ scrapesage.Scraper = (*Scraper)(nil)

// Scraper wraps a Scraper with request logging. Each request gets a
// correlation id so a retried call's log lines can be tied together.
type Scraper struct {
	next   scrapesage.Scraper
	logger *slog.Logger
}

// NewScraper creates a new logging Scraper.
func NewScraper(next scrapesage.Scraper, logger *slog.Logger) *Scraper {
	return &Scraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper, logging outcome and duration.
func (s *Scraper) Scrape(ctx context.Context, req scrapesage.ScrapeRequest) (*scrapesage.ScrapeResult, error) {
	id := uuid.NewString()
	begin := time.Now()

	s.logger.Debug("scrape started",
		"request_id", id,
		"query", req.Query,
		"include_sites", len(req.IncludeSites),
		"exclude_sites", len(req.ExcludeSites),
	)

	result, err := s.next.Scrape(ctx, req)
	if err != nil {
		s.logger.Error("scrape failed",
			"request_id", id,
			"code", scrapesage.ErrorCode(err),
			"error", scrapesage.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	s.logger.Info("scrape completed",
		"request_id", id,
		"sources", len(result.Sources),
		"duration", time.Since(begin),
	)
	return result, nil
}
