package scrapesage

import (
	"context"
	"slices"
	"strings"
)

// DefaultMorningQuery is the question scrape-morning asks until the user
// sets their own.
const DefaultMorningQuery = "What are the most important technology and world news stories from the last 24 hours?"

// SessionState holds the user's priority sites, excluded sites, and saved
// morning query. Site lists preserve insertion order and reject duplicates
// (case-sensitive exact match). The same entry may appear in both lists;
// cross-list validation is deliberately out of scope, even though the
// resulting scoped query contradicts itself.
//
// State is loaded once at process start, mutated by the command dispatcher,
// and persisted after every mutation. The in-memory copy stays authoritative
// for the session even when a save fails.
type SessionState struct {
	Sites         []string `json:"sites"`
	ExcludedSites []string `json:"excludedSites"`
	MorningQuery  string   `json:"morningQuery"`
}

// NewSessionState returns the default state used when no persisted state
// exists.
func NewSessionState() *SessionState {
	return &SessionState{
		Sites:         []string{},
		ExcludedSites: []string{},
		MorningQuery:  DefaultMorningQuery,
	}
}

// AddSites appends entries not already present to the priority list and
// partitions the input into added and duplicate entries. Existing entries
// are never reordered.
func (s *SessionState) AddSites(sites []string) (added, duplicates []string) {
	s.Sites, added, duplicates = appendMissing(s.Sites, sites)
	return added, duplicates
}

// RemoveSite removes a site from the priority list, reporting whether it
// was present.
func (s *SessionState) RemoveSite(site string) bool {
	var found bool
	s.Sites, found = remove(s.Sites, site)
	return found
}

// ClearSites empties the priority list, reporting whether it had entries.
func (s *SessionState) ClearSites() bool {
	had := len(s.Sites) > 0
	s.Sites = []string{}
	return had
}

// AddExcludes appends entries not already present to the excluded list and
// partitions the input into added and duplicate entries.
func (s *SessionState) AddExcludes(sites []string) (added, duplicates []string) {
	s.ExcludedSites, added, duplicates = appendMissing(s.ExcludedSites, sites)
	return added, duplicates
}

// RemoveExclude removes a site from the excluded list, reporting whether it
// was present.
func (s *SessionState) RemoveExclude(site string) bool {
	var found bool
	s.ExcludedSites, found = remove(s.ExcludedSites, site)
	return found
}

// ClearExcludes empties the excluded list, reporting whether it had entries.
func (s *SessionState) ClearExcludes() bool {
	had := len(s.ExcludedSites) > 0
	s.ExcludedSites = []string{}
	return had
}

// SetMorningQuery replaces the saved morning query. Empty or blank text is
// rejected and leaves the current value in place.
func (s *SessionState) SetMorningQuery(query string) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}
	s.MorningQuery = query
	return true
}

func appendMissing(list, entries []string) (result, added, duplicates []string) {
	result = list
	added = []string{}
	duplicates = []string{}
	for _, entry := range entries {
		if slices.Contains(result, entry) {
			duplicates = append(duplicates, entry)
			continue
		}
		result = append(result, entry)
		added = append(added, entry)
	}
	return result, added, duplicates
}

func remove(list []string, entry string) ([]string, bool) {
	i := slices.Index(list, entry)
	if i < 0 {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}

// StateStore loads and saves session state from a durable medium.
type StateStore interface {
	// Load reads the persisted state. Missing storage is not an error and
	// returns defaults; malformed or unreadable storage returns ESTORAGE,
	// which callers log and substitute with defaults rather than propagate.
	Load(ctx context.Context) (*SessionState, error)

	// Save overwrites the persisted state wholesale. Returns ESTORAGE on
	// write failure; callers log it and keep the in-memory state
	// authoritative.
	Save(ctx context.Context, state *SessionState) error
}
