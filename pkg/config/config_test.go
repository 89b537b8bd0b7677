// pkg/config/config_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temp filesystem, environment variables
// PURPOSE: Test layered settings loading and config generation

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotup-sh/dotup/pkg/config"
)

func TestDefaults(t *testing.T) {
	settings, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, "PROMPT_COLOR", settings.Prompt.ColorVar)
	assert.Equal(t, 32, settings.Prompt.DefaultColor)
	assert.Equal(t, "Hello, {user}! {dir}", settings.Prompt.Greeting)

	assert.Equal(t, ".commands", settings.Profile.UserCommands)
	assert.Equal(t, ".dotup/aliases", settings.Profile.Aliases)
	assert.Equal(t, ".dotup/environment", settings.Profile.Environment)
	assert.Equal(t, []string{".goenv/bin", ".nodenv/bin"}, settings.Profile.PathDirs)

	assert.Equal(t, "sudo dnf install -y", settings.Packager.InstallCommand)
	assert.Equal(t, "sudo dnf config-manager -y --add-repo", settings.Packager.AddRepoCommand)
}

func TestLoadFileOverride(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
[prompt]
default_color = 36

[packager]
install_command = "sudo apt-get install -y"
`), 0644))

	settings, err := config.Load(configFile, nil)
	require.NoError(t, err)

	assert.Equal(t, 36, settings.Prompt.DefaultColor)
	assert.Equal(t, "sudo apt-get install -y", settings.Packager.InstallCommand)
	// Untouched values keep their defaults.
	assert.Equal(t, "PROMPT_COLOR", settings.Prompt.ColorVar)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, 32, settings.Prompt.DefaultColor)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DOTUP_PROMPT_DEFAULT_COLOR", "35")

	settings, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 35, settings.Prompt.DefaultColor)
}

func TestLoadProgrammaticOverrideWinsLast(t *testing.T) {
	t.Setenv("DOTUP_PROMPT_DEFAULT_COLOR", "35")

	settings, err := config.Load("", map[string]interface{}{
		"prompt.default_color": 31,
	})
	require.NoError(t, err)
	assert.Equal(t, 31, settings.Prompt.DefaultColor)
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "[prompt]")
	assert.Contains(t, content, "[profile]")
	assert.Contains(t, content, "[packager]")

	// Every value line is commented out; section headers are not.
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}
