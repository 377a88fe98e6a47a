package gemini

import (
	"context"
	"time"

	"scrapesage"
)

// ScrapeFunc is the signature for a single scrape attempt.
type ScrapeFunc func(ctx context.Context) (*scrapesage.ScrapeResult, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays between overload retries:
// 1s, 2s. With two delays the scraper makes at most three attempts.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// ScrapeWithRetryDelays runs fn, retrying overloaded failures with the given
// delays between attempts. Only EOVERLOADED failures are retried; any other
// failure surfaces immediately without sleeping. The logger function, if
// provided, is called for each retry attempt.
//
// The retry budget is len(delays) retries on top of the initial attempt.
// Delays are injectable so tests can run without waiting.
func ScrapeWithRetryDelays(ctx context.Context, fn ScrapeFunc, logger LogFunc, delays []time.Duration) (*scrapesage.ScrapeResult, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		// Only transient overload is worth retrying.
		if scrapesage.ErrorCode(err) != scrapesage.EOVERLOADED {
			return nil, err
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if logger != nil {
			logger("  model overloaded, retrying in %s (attempt %d)", delays[attempt], attempt+2)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
