package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapesage"
	"scrapesage/mock"
	scrapeslog "scrapesage/slog"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestStateStore_Load_DelegatesAndLogs(t *testing.T) {
	t.Parallel()

	expected := scrapesage.NewSessionState()
	expected.AddSites([]string{"a.com"})

	next := &mock.StateStore{
		LoadFn: func(ctx context.Context) (*scrapesage.SessionState, error) {
			return expected, nil
		},
	}

	var buf bytes.Buffer
	store := scrapeslog.NewStateStore(next, testLogger(&buf))

	state, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, state)
	assert.Contains(t, buf.String(), "session state loaded")
}

func TestStateStore_Load_LogsFailure(t *testing.T) {
	t.Parallel()

	next := &mock.StateStore{
		LoadFn: func(ctx context.Context) (*scrapesage.SessionState, error) {
			return nil, scrapesage.Errorf(scrapesage.ESTORAGE, "parse state file: bad json")
		},
	}

	var buf bytes.Buffer
	store := scrapeslog.NewStateStore(next, testLogger(&buf))

	_, err := store.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, scrapesage.ESTORAGE, scrapesage.ErrorCode(err))
	assert.Contains(t, buf.String(), "session state load failed")
	assert.Contains(t, buf.String(), "bad json")
}

func TestStateStore_Save_LogsFailure(t *testing.T) {
	t.Parallel()

	next := &mock.StateStore{
		SaveFn: func(ctx context.Context, state *scrapesage.SessionState) error {
			return scrapesage.Errorf(scrapesage.ESTORAGE, "disk full")
		},
	}

	var buf bytes.Buffer
	store := scrapeslog.NewStateStore(next, testLogger(&buf))

	err := store.Save(context.Background(), scrapesage.NewSessionState())

	require.Error(t, err)
	assert.Contains(t, buf.String(), "session state save failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestStateStore_Save_Success(t *testing.T) {
	t.Parallel()

	var saved *scrapesage.SessionState
	next := &mock.StateStore{
		SaveFn: func(ctx context.Context, state *scrapesage.SessionState) error {
			saved = state
			return nil
		},
	}

	var buf bytes.Buffer
	store := scrapeslog.NewStateStore(next, testLogger(&buf))

	state := scrapesage.NewSessionState()
	require.NoError(t, store.Save(context.Background(), state))

	assert.Equal(t, state, saved)
	assert.Contains(t, buf.String(), "session state saved")
}
