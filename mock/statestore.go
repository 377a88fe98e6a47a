package mock

import (
	"context"

	"scrapesage"
)

var _ scrapesage.StateStore = (*StateStore)(nil)

// StateStore is a mock implementation of scrapesage.StateStore.
type StateStore struct {
	LoadFn func(ctx context.Context) (*scrapesage.SessionState, error)
	SaveFn func(ctx context.Context, state *scrapesage.SessionState) error
}

func (s *StateStore) Load(ctx context.Context) (*scrapesage.SessionState, error) {
	return s.LoadFn(ctx)
}

func (s *StateStore) Save(ctx context.Context, state *scrapesage.SessionState) error {
	return s.SaveFn(ctx, state)
}
