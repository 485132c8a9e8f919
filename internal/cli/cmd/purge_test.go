package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetPurgeFlags(t *testing.T) {
	t.Cleanup(func() {
		purgeFlags = struct {
			profile bool
			cache   bool
			history bool
			config  bool
			desktop bool
			all     bool
			dryRun  bool
		}{}
		for _, name := range []string{"profile", "cache", "history", "config", "desktop", "all", "dry-run"} {
			_ = purgeCmd.Flags().Set(name, "false")
		}
	})
}

func TestPurgeCommand_RemovesSelectedTarget(t *testing.T) {
	root := isolateXDG(t)
	resetPurgeFlags(t)

	cacheDir := filepath.Join(root, "cache", "protodesk", "profiles", "protodesk")
	profileDir := filepath.Join(root, "data", "protodesk", "profiles", "protodesk")
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	require.NoError(t, os.MkdirAll(profileDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "blob"), []byte("cached"), 0o644))

	out, err := execute(t, "purge", "--cache")
	require.NoError(t, err)

	assert.Contains(t, out, cacheDir)
	assert.NoDirExists(t, cacheDir)
	assert.DirExists(t, profileDir, "unselected targets are kept")
}

func TestPurgeCommand_NothingToRemove(t *testing.T) {
	isolateXDG(t)
	resetPurgeFlags(t)

	out, err := execute(t, "purge", "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to remove")
}

func TestPurgeCommand_DryRunKeepsFiles(t *testing.T) {
	root := isolateXDG(t)
	resetPurgeFlags(t)

	profileDir := filepath.Join(root, "data", "protodesk", "profiles", "protodesk")
	require.NoError(t, os.MkdirAll(profileDir, 0o755))

	out, err := execute(t, "purge", "--dry-run", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "Web profile")
	assert.Contains(t, out, "not found")
	assert.DirExists(t, profileDir)
}

func TestSelectedPurgeTypes(t *testing.T) {
	resetPurgeFlags(t)

	purgeFlags.desktop = true
	assert.Len(t, selectedPurgeTypes(), 2)

	purgeFlags.all = true
	assert.Len(t, selectedPurgeTypes(), 6)
}
