package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapesage"
	"scrapesage/fs"
)

func TestStateStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStateStore(filepath.Join(t.TempDir(), "state.json"))

		state, err := store.Load(context.Background())

		require.NoError(t, err)
		assert.Empty(t, state.Sites)
		assert.Empty(t, state.ExcludedSites)
		assert.Equal(t, scrapesage.DefaultMorningQuery, state.MorningQuery)
	})

	t.Run("malformed file returns storage error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		store := fs.NewStateStore(path)

		_, err := store.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, scrapesage.ESTORAGE, scrapesage.ErrorCode(err))
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"sites":["a.com"]}`), 0644))

		store := fs.NewStateStore(path)

		state, err := store.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"a.com"}, state.Sites)
		assert.Empty(t, state.ExcludedSites)
		assert.Equal(t, scrapesage.DefaultMorningQuery, state.MorningQuery)
	})
}

func TestStateStore_RoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("save then load yields identical state", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")
		store := fs.NewStateStore(path)

		original := scrapesage.NewSessionState()
		original.AddSites([]string{"a.com", "b.com"})
		original.AddExcludes([]string{"spam.com"})
		original.SetMorningQuery("what broke overnight?")

		require.NoError(t, store.Save(context.Background(), original))

		loaded, err := store.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, original, loaded)
	})

	t.Run("empty lists survive the round trip", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")
		store := fs.NewStateStore(path)

		original := scrapesage.NewSessionState()

		require.NoError(t, store.Save(context.Background(), original))

		loaded, err := store.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, original, loaded)
	})

	t.Run("save overwrites previous state wholesale", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")
		store := fs.NewStateStore(path)
		ctx := context.Background()

		first := scrapesage.NewSessionState()
		first.AddSites([]string{"a.com", "b.com"})
		require.NoError(t, store.Save(ctx, first))

		second := scrapesage.NewSessionState()
		second.AddSites([]string{"c.com"})
		require.NoError(t, store.Save(ctx, second))

		loaded, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"c.com"}, loaded.Sites)
	})
}

func TestStateStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
		store := fs.NewStateStore(path)

		err := store.Save(context.Background(), scrapesage.NewSessionState())

		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")
		store := fs.NewStateStore(path)

		require.NoError(t, store.Save(context.Background(), scrapesage.NewSessionState()))

		assert.NoFileExists(t, path+".tmp")
	})

	t.Run("unwritable path returns storage error", func(t *testing.T) {
		t.Parallel()

		// A directory where the state file should be makes the rename fail.
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")
		require.NoError(t, os.MkdirAll(path, 0755))

		store := fs.NewStateStore(path)

		err := store.Save(context.Background(), scrapesage.NewSessionState())

		require.Error(t, err)
		assert.Equal(t, scrapesage.ESTORAGE, scrapesage.ErrorCode(err))
	})
}
