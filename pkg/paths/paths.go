// Package paths provides centralized path handling for dotup.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dotup-sh/dotup/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for dotup
	EnvConfigDir = "DOTUP_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for dotup
	EnvDataDir = "DOTUP_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for dotup
	EnvStateDir = "DOTUP_STATE_DIR"
)

// Default directories and files. These define dotup's on-disk layout and are
// not user-configurable; user-facing settings live in pkg/config.
const (
	// AppDirName is the directory name for dotup-specific files
	AppDirName = "dotup"

	// ManifestFile is the name of the provisioning manifest
	ManifestFile = "dotup.yaml"

	// ConfigFile is the name of the settings file
	ConfigFile = "config.toml"

	// ShellDirName is the subdirectory for generated shell scripts
	ShellDirName = "shell"

	// ProfileScriptName is the name of the generated login profile script
	ProfileScriptName = "dotup-profile.sh"

	// PromptScriptName is the name of the generated prompt setup script
	PromptScriptName = "dotup-prompt.sh"

	// LogFileName is the name of the log file
	LogFileName = "dotup.log"
)

// Paths provides centralized path management for dotup
type Paths struct {
	home      string
	configDir string
	dataDir   string
	stateDir  string
}

// New resolves the home directory and the XDG base directories, honoring the
// DOTUP_* override variables.
func New() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNotFound, "cannot determine home directory")
	}
	return NewWithHome(home), nil
}

// NewWithHome builds a Paths rooted at the given home directory. Used by tests
// and by callers that resolve home themselves.
func NewWithHome(home string) *Paths {
	p := &Paths{home: home}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = dir
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = dir
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = dir
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// Home returns the user's home directory
func (p *Paths) Home() string {
	return p.home
}

// ConfigDir returns the dotup config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// DataDir returns the dotup data directory
func (p *Paths) DataDir() string {
	return p.dataDir
}

// StateDir returns the dotup state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// ConfigFilePath returns the path of the settings file
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFile)
}

// ManifestPath locates the provisioning manifest. A dotup.yaml in the current
// working directory wins over the one in the config directory, so running
// dotup from inside a dotfiles checkout picks up that checkout's manifest.
func (p *Paths) ManifestPath() string {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ManifestFile)
		if info, err := os.Stat(local); err == nil && info.Mode().IsRegular() {
			return local
		}
	}
	return filepath.Join(p.configDir, ManifestFile)
}

// ShellDir returns the directory for generated shell scripts
func (p *Paths) ShellDir() string {
	return filepath.Join(p.dataDir, ShellDirName)
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}
