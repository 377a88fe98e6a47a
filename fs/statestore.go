// Package fs provides file-based persistence for interpreter session state.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"scrapesage"
)

// Ensure StateStore implements scrapesage.StateStore at compile time.
var _ scrapesage.StateStore = (*StateStore)(nil)

// StateStore persists session state as a single JSON object, overwritten
// wholesale on every save. Writes go to a temporary file first and are
// moved into place with a rename, so a crash mid-write never corrupts the
// previous state.
type StateStore struct {
	path string
}

// NewStateStore creates a StateStore backed by the file at path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Path returns the location of the state file.
func (s *StateStore) Path() string {
	return s.path
}

// Load reads the persisted state. A missing file is not an error and
// returns defaults; unreadable or malformed content returns ESTORAGE.
func (s *StateStore) Load(ctx context.Context) (*scrapesage.SessionState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return scrapesage.NewSessionState(), nil
	}
	if err != nil {
		return nil, scrapesage.Errorf(scrapesage.ESTORAGE, "read state file %q: %v", s.path, err)
	}

	state := scrapesage.NewSessionState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, scrapesage.Errorf(scrapesage.ESTORAGE, "parse state file %q: %v", s.path, err)
	}

	// Fields absent from older files keep their defaults; a file that
	// explicitly nulls a list gets an empty one back.
	if state.Sites == nil {
		state.Sites = []string{}
	}
	if state.ExcludedSites == nil {
		state.ExcludedSites = []string{}
	}
	if state.MorningQuery == "" {
		state.MorningQuery = scrapesage.DefaultMorningQuery
	}

	return state, nil
}

// Save overwrites the persisted state atomically.
func (s *StateStore) Save(ctx context.Context, state *scrapesage.SessionState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return scrapesage.Errorf(scrapesage.ESTORAGE, "encode state: %v", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return scrapesage.Errorf(scrapesage.ESTORAGE, "create state directory %q: %v", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return scrapesage.Errorf(scrapesage.ESTORAGE, "write state file %q: %v", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return scrapesage.Errorf(scrapesage.ESTORAGE, "replace state file %q: %v", s.path, err)
	}

	return nil
}
