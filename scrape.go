package scrapesage

import (
	"context"
	"strings"
)

// UntitledCitation is the title substituted for citations the backend
// returns without one.
const UntitledCitation = "Untitled"

// Citation is a single grounded source returned by the backend.
// Citations are unique by URI within one result.
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ScrapeRequest describes one question scoped to a set of site filters.
// It is transient, constructed per invocation.
type ScrapeRequest struct {
	Query        string   `json:"query"`
	IncludeSites []string `json:"includeSites"`
	ExcludeSites []string `json:"excludeSites"`
}

// Validate returns an error if the request cannot be submitted.
func (r *ScrapeRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return Errorf(EINVALID, "query required")
	}
	return nil
}

// ScrapeResult is the answer text plus the deduplicated source list.
type ScrapeResult struct {
	Text    string     `json:"text"`
	Sources []Citation `json:"sources"`
}

// Scraper answers a natural language question from live, search-grounded
// results restricted to the request's site filters.
type Scraper interface {
	// Scrape submits the request to the answering backend. Returns EAUTH on
	// an invalid credential, EOVERLOADED when the backend is over capacity
	// after retries, and EUPSTREAM for any other backend failure.
	Scrape(ctx context.Context, req ScrapeRequest) (*ScrapeResult, error)
}

// BuildScopedQuery combines a free-text query with site inclusion and
// exclusion filters into a single search-engine query string.
//
// Inclusions are OR-joined ("site:a.com OR site:b.com"), exclusions are
// space-joined ("-site:c.com"). An empty include list produces no
// restriction clause: the scraper does not refuse an unscoped query, that
// check belongs to the caller.
func BuildScopedQuery(query string, includeSites, excludeSites []string) string {
	parts := make([]string, 0, 3)
	if query != "" {
		parts = append(parts, query)
	}

	if len(includeSites) > 0 {
		clauses := make([]string, 0, len(includeSites))
		for _, site := range includeSites {
			clauses = append(clauses, "site:"+site)
		}
		parts = append(parts, strings.Join(clauses, " OR "))
	}

	if len(excludeSites) > 0 {
		clauses := make([]string, 0, len(excludeSites))
		for _, site := range excludeSites {
			clauses = append(clauses, "-site:"+site)
		}
		parts = append(parts, strings.Join(clauses, " "))
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// DedupeCitations drops citations without a URI and deduplicates the rest
// by URI, preserving first-seen order. Missing titles are replaced with
// UntitledCitation.
func DedupeCitations(citations []Citation) []Citation {
	seen := make(map[string]bool, len(citations))
	out := make([]Citation, 0, len(citations))
	for _, c := range citations {
		if c.URI == "" || seen[c.URI] {
			continue
		}
		seen[c.URI] = true
		if c.Title == "" {
			c.Title = UntitledCitation
		}
		out = append(out, c)
	}
	return out
}
