package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"scrapesage"
)

// Ensure spinnerScraper implements scrapesage.Scraper at compile time.
var _ scrapesage.Scraper = (*spinnerScraper)(nil)

// spinnerScraper shows a processing indicator on w while a scrape is in
// flight. The indicator is active only for the duration of the wrapped
// call, retry sleeps included.
type spinnerScraper struct {
	next scrapesage.Scraper
	w    io.Writer
}

func (s *spinnerScraper) Scrape(ctx context.Context, req scrapesage.ScrapeRequest) (*scrapesage.ScrapeResult, error) {
	sp := newSpinner(s.w, "Scraping the web...")
	sp.Start()
	defer sp.Stop()

	return s.next.Scrape(ctx, req)
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

// spinner animates a single-line indicator until stopped.
type spinner struct {
	w     io.Writer
	label string
	done  chan struct{}
	wg    sync.WaitGroup
}

func newSpinner(w io.Writer, label string) *spinner {
	return &spinner{
		w:     w,
		label: label,
		done:  make(chan struct{}),
	}
}

func (s *spinner) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()

		frame := 0
		fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[frame], s.label)
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				frame = (frame + 1) % len(spinnerFrames)
				fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[frame], s.label)
			}
		}
	}()
}

func (s *spinner) Stop() {
	close(s.done)
	s.wg.Wait()
	// Wipe the indicator line.
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.label)+2))
}
