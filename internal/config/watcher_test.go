package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherEmitsReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": "v1"}`), 0644))

	watcher, err := NewWatcher(path)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(path, []byte(`{"api_key": "v2"}`), 0644))

	select {
	case cfg := <-watcher.Events():
		require.NotNil(t, cfg)
		assert.Equal(t, "v2", cfg.APIKey)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload event received")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	watcher, err := NewWatcher(path)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-watcher.Events():
		t.Fatal("unexpected event for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
