package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/galleria/internal/config"
	"github.com/mmcdole/galleria/internal/domain"
	"github.com/mmcdole/galleria/internal/gallery"
	"github.com/mmcdole/galleria/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, cachePath string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "flickr:\n  api_key: test-key\n" +
		"cache:\n  driver: bolt\n  path: " + cachePath + "\n" +
		"logging:\n  file: " + filepath.Join(dir, "galleria.log") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestCacheClearRemovesSnapshot(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "galleria.db")

	st, err := store.NewBoltStore(cachePath)
	require.NoError(t, err)
	require.NoError(t, st.Set(gallery.SnapshotKey, []byte(`[{"id":"1"}]`)))
	require.NoError(t, st.Close())

	cfgPath := testConfig(t, cachePath)
	err = newRootCommand().Run(context.Background(), []string{"galleria", "--config", cfgPath, "cache", "clear"})
	require.NoError(t, err)

	st, err = store.NewBoltStore(cachePath)
	require.NoError(t, err)
	defer st.Close()
	_, ok, err := st.Get(gallery.SnapshotKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSearchRejectsBlankTerm(t *testing.T) {
	cfgPath := testConfig(t, filepath.Join(t.TempDir(), "galleria.db"))
	err := newRootCommand().Run(context.Background(), []string{"galleria", "--config", cfgPath, "search", "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSetupFlowSavesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  driver: memory\n"), 0644))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString("   \nmy-key\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	defer r.Close()

	var out bytes.Buffer
	require.NoError(t, runSetupFlow(cfg, r, &out))
	assert.Contains(t, out.String(), "API key cannot be empty")
	assert.Contains(t, out.String(), path)

	reloaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "my-key", reloaded.Flickr.APIKey)
}
