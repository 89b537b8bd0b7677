// Package config loads dotup's layered settings: embedded defaults, then the
// user's config.toml, then DOTUP_* environment variables, then programmatic
// overrides (typically CLI flags). Later layers win.
package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dotup-sh/dotup/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Settings holds all user-tunable configuration
type Settings struct {
	Prompt   PromptSettings   `koanf:"prompt" toml:"prompt"`
	Profile  ProfileSettings  `koanf:"profile" toml:"profile"`
	Packager PackagerSettings `koanf:"packager" toml:"packager"`
}

// PromptSettings configures the prompt configurator
type PromptSettings struct {
	// ColorVar is the environment variable consulted for the prompt color
	ColorVar string `koanf:"color_var" toml:"color_var"`
	// DefaultColor is the terminal color code used when ColorVar is unset
	DefaultColor int `koanf:"default_color" toml:"default_color"`
	// Greeting is the window title template; {user} and {dir} are substituted
	Greeting string `koanf:"greeting" toml:"greeting"`
}

// ProfileSettings configures the login profile loader. File paths are
// relative to the home directory.
type ProfileSettings struct {
	UserCommands string   `koanf:"user_commands" toml:"user_commands"`
	Aliases      string   `koanf:"aliases" toml:"aliases"`
	Environment  string   `koanf:"environment" toml:"environment"`
	PathDirs     []string `koanf:"path_dirs" toml:"path_dirs"`
}

// PackagerSettings configures how packages are installed
type PackagerSettings struct {
	InstallCommand string `koanf:"install_command" toml:"install_command"`
	AddRepoCommand string `koanf:"add_repo_command" toml:"add_repo_command"`
	// DownloadDir is where remote package files land; empty means the
	// system temp directory.
	DownloadDir string `koanf:"download_dir" toml:"download_dir"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load builds Settings from all layers. configFile may be empty or point at a
// file that does not exist; both mean "no user config file". overrides is an
// optional flattened map ("prompt.default_color") applied last.
func Load(configFile string, overrides map[string]interface{}) (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file if it exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile)
			}
		}
	}

	// 3. Environment variables: DOTUP_PROMPT_DEFAULT_COLOR -> prompt.default_color.
	// Settings keys use single words per segment, so the underscore-to-dot
	// mapping is applied only on the section boundary.
	if err := k.Load(env.Provider("DOTUP_", ".", envKeyToPath), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Programmatic overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	return &settings, nil
}

// Default returns the built-in settings with no user layers applied
func Default() (*Settings, error) {
	return Load("", nil)
}

// envKeyToPath maps DOTUP_PROMPT_DEFAULT_COLOR to prompt.default_color. The
// first underscore separates the section from the key; remaining underscores
// belong to the key itself.
func envKeyToPath(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "DOTUP_"))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}
