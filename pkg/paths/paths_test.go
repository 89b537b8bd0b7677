package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotup-sh/dotup/pkg/paths"
)

func TestNewWithHomeEnvOverrides(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/custom/config")
	t.Setenv(paths.EnvDataDir, "/custom/data")
	t.Setenv(paths.EnvStateDir, "/custom/state")

	p := paths.NewWithHome("/home/alice")

	assert.Equal(t, "/home/alice", p.Home())
	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, "/custom/data", p.DataDir())
	assert.Equal(t, "/custom/state", p.StateDir())

	assert.Equal(t, "/custom/config/config.toml", p.ConfigFilePath())
	assert.Equal(t, filepath.Join("/custom/data", "shell"), p.ShellDir())
	assert.Equal(t, filepath.Join("/custom/state", "dotup.log"), p.LogFilePath())
}

func TestNewWithHomeXDGDefaults(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	t.Setenv(paths.EnvStateDir, "")

	p := paths.NewWithHome("/home/alice")

	// Without overrides the XDG base directories are used, each with the
	// dotup subdirectory.
	assert.Equal(t, "dotup", filepath.Base(p.ConfigDir()))
	assert.Equal(t, "dotup", filepath.Base(p.DataDir()))
	assert.Equal(t, "dotup", filepath.Base(p.StateDir()))
}

func TestManifestPathPrefersWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, paths.ManifestFile), []byte("x: {files: {a: b}}"), 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	t.Setenv(paths.EnvConfigDir, "/custom/config")
	p := paths.NewWithHome("/home/alice")

	got, err := filepath.EvalSymlinks(p.ManifestPath())
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(dir, paths.ManifestFile))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestManifestPathFallsBackToConfigDir(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	t.Setenv(paths.EnvConfigDir, "/custom/config")
	p := paths.NewWithHome("/home/alice")

	assert.Equal(t, filepath.Join("/custom/config", paths.ManifestFile), p.ManifestPath())
}
