// Package slog provides logging decorators for scrapesage interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"scrapesage"
)

// Ensure StateStore implements scrapesage.StateStore at compile time.
var _ scrapesage.StateStore = (*StateStore)(nil)

// StateStore wraps a StateStore with logging. Persistence failures are
// logged here because callers swallow them: a failed save never surfaces
// to the user and the in-memory state stays authoritative.
type StateStore struct {
	next   scrapesage.StateStore
	logger *slog.Logger
}

// NewStateStore creates a new logging StateStore.
func NewStateStore(next scrapesage.StateStore, logger *slog.Logger) *StateStore {
	return &StateStore{next: next, logger: logger}
}

// Load delegates to the wrapped store, logging failures.
func (s *StateStore) Load(ctx context.Context) (*scrapesage.SessionState, error) {
	state, err := s.next.Load(ctx)
	if err != nil {
		s.logger.Error("session state load failed",
			"error", scrapesage.ErrorMessage(err),
		)
		return nil, err
	}
	s.logger.Debug("session state loaded",
		"sites", len(state.Sites),
		"excluded", len(state.ExcludedSites),
	)
	return state, nil
}

// Save delegates to the wrapped store, logging failures and duration.
func (s *StateStore) Save(ctx context.Context, state *scrapesage.SessionState) error {
	begin := time.Now()
	if err := s.next.Save(ctx, state); err != nil {
		s.logger.Error("session state save failed",
			"error", scrapesage.ErrorMessage(err),
		)
		return err
	}
	s.logger.Debug("session state saved",
		"sites", len(state.Sites),
		"excluded", len(state.ExcludedSites),
		"duration", time.Since(begin),
	)
	return nil
}
