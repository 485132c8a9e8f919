package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_DownloadDir(t *testing.T) {
	t.Run("returns XDG_DOWNLOAD_DIR when set", func(t *testing.T) {
		t.Setenv("XDG_DOWNLOAD_DIR", "/custom/downloads")

		dir, err := New("protodesk", "").DownloadDir()

		require.NoError(t, err)
		assert.Equal(t, "/custom/downloads", dir)
	})

	t.Run("falls back to ~/Downloads when XDG_DOWNLOAD_DIR not set", func(t *testing.T) {
		t.Setenv("XDG_DOWNLOAD_DIR", "")

		dir, err := New("protodesk", "").DownloadDir()

		require.NoError(t, err)
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(home, "Downloads"), dir)
	})

	t.Run("configured directory wins", func(t *testing.T) {
		t.Setenv("XDG_DOWNLOAD_DIR", "/custom/downloads")

		dir, err := New("protodesk", "/srv/files").DownloadDir()

		require.NoError(t, err)
		assert.Equal(t, "/srv/files", dir)
	})
}

func TestAdapter_WebDirsUseProfile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))

	adapter := New("work", "")

	dataDir, err := adapter.WebDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "protodesk", "profiles", "work"), dataDir)

	cacheDir, err := adapter.WebCacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cache", "protodesk", "profiles", "work"), cacheDir)
}
