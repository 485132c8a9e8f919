package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nemuelw/protodesk/internal/cli"
	"github.com/nemuelw/protodesk/internal/domain/build"
)

func buildInfoForTest() build.Info {
	return build.Info{Version: "1.3.0", Commit: "abc123"}
}

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv("XDG_DOWNLOAD_DIR", filepath.Join(root, "Downloads"))
	t.Setenv("PROTODESK_LOG_LEVEL", "error")
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		app = nil
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestServicesCommand(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "services")
	require.NoError(t, err)

	assert.Contains(t, out, "https://mail.proton.me")
	assert.Contains(t, out, "https://calendar.proton.me")
	assert.Contains(t, out, "https://drive.proton.me")
	assert.Contains(t, out, "account.proton.me")
}

func TestCheckCommand(t *testing.T) {
	isolateXDG(t)

	tests := []struct {
		name string
		url  string
		want []string
	}{
		{"service host", "https://Drive.Proton.me/u/0", []string{"internal", "drive"}},
		{"extra host", "https://account.proton.me/login", []string{"internal", "other-internal"}},
		{"foreign host", "https://example.com/", []string{"external", "example.com"}},
		{"lookalike host", "https://mail.proton.me.evil.com/", []string{"external"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "check", tt.url)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestConfigPathCommand(t *testing.T) {
	root := isolateXDG(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, "config", "protodesk", "config.toml"))
}

func TestConfigShowCommand(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "poll_interval_ms")
	assert.Contains(t, out, "https://mail.proton.me")
}

func TestConfigSchemaCommand(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"services"`)
}

func TestDownloadsCommand_Empty(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "downloads", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No downloads recorded yet.")
}

func TestDownloadsClearCommand(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "downloads", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Download history cleared")
}

func TestAboutCommand(t *testing.T) {
	isolateXDG(t)
	SetBuildInfo(buildInfoForTest())
	t.Cleanup(func() { SetBuildInfo(buildInfoForTest()) })

	out, err := execute(t, "about")
	require.NoError(t, err)
	assert.Contains(t, out, "Protodesk")
	assert.Contains(t, out, "1.3.0")
}

func TestBrowseCommand_PassesService(t *testing.T) {
	isolateXDG(t)

	var got GUIOptions
	SetGUIRunner(func(_ *cli.App, opts GUIOptions) int {
		got = opts
		return 0
	})
	t.Cleanup(func() { SetGUIRunner(nil) })

	_, err := execute(t, "browse", "calendar")
	require.NoError(t, err)
	assert.Equal(t, "calendar", got.Service)
}

func TestBrowseCommand_ExitCode(t *testing.T) {
	isolateXDG(t)

	SetGUIRunner(func(*cli.App, GUIOptions) int { return 3 })
	t.Cleanup(func() { SetGUIRunner(nil) })

	_, err := execute(t, "browse")
	require.Error(t, err)
	code, ok := exitCode(err)
	assert.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestBrowseCommand_NoRunner(t *testing.T) {
	isolateXDG(t)
	SetGUIRunner(nil)

	_, err := execute(t, "browse")
	assert.Error(t, err)
}
