// Package profile implements the login profile loader: it applies the
// definitions of a fixed set of optional per-user configuration files to a
// session environment and appends the tool-version-manager bin directories to
// the executable search path.
package profile

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/session"
)

// Loader applies the login profile semantics to a session environment
type Loader struct {
	home     string
	settings config.ProfileSettings
	logger   zerolog.Logger
}

// Result describes what a load pass did
type Result struct {
	// Sourced lists the optional files that existed and were applied
	Sourced []string
	// Skipped lists the optional files that were absent
	Skipped []string
	// AppendedPaths lists the directories newly appended to the search path
	AppendedPaths []string
}

// NewLoader returns a Loader rooted at the given home directory
func NewLoader(home string, settings config.ProfileSettings) *Loader {
	return &Loader{
		home:     home,
		settings: settings,
		logger:   logging.GetLogger("profile"),
	}
}

// Load applies the three optional configuration files in order (user
// commands, default aliases, default environment), each only if a regular
// file exists at its path, then unconditionally appends the version-manager
// bin directories to the search path. A missing optional file is skipped
// silently; it is not an error.
func (l *Loader) Load(env *session.Environment) (*Result, error) {
	result := &Result{}

	steps := []struct {
		relPath string
		apply   func(path string, env *session.Environment) error
	}{
		{l.settings.UserCommands, l.applyAliasFile},
		{l.settings.Aliases, l.applyAliasFile},
		{l.settings.Environment, l.applyEnvFile},
	}

	for _, step := range steps {
		if step.relPath == "" {
			continue
		}
		path := filepath.Join(l.home, step.relPath)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			l.logger.Debug().Str("path", path).Msg("Optional file absent, skipping")
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if err := step.apply(path, env); err != nil {
			return nil, err
		}
		l.logger.Debug().Str("path", path).Msg("Applied optional file")
		result.Sourced = append(result.Sourced, path)
	}

	for _, dir := range l.settings.PathDirs {
		full := filepath.Join(l.home, dir)
		if env.AppendPath(full) {
			result.AppendedPaths = append(result.AppendedPaths, full)
		}
	}

	return result, nil
}

// applyEnvFile loads KEY=value definitions with godotenv and sets them on the
// environment. Keys are applied in sorted order for determinism.
func (l *Loader) applyEnvFile(path string, env *session.Environment) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to parse environment file %s", path)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		env.Set(name, values[name])
	}
	return nil
}

// applyAliasFile reads a shell alias file line by line. Recognized lines are
// `alias name=value` and `export NAME=value`; anything else (functions,
// arbitrary shell) is left to the rendered snippet and ignored here.
func (l *Loader) applyAliasFile(path string, env *session.Environment) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "alias "):
			name, value, ok := splitAssignment(strings.TrimPrefix(line, "alias "))
			if ok {
				env.SetAlias(name, value)
			}
		case strings.HasPrefix(line, "export "):
			name, value, ok := splitAssignment(strings.TrimPrefix(line, "export "))
			if ok {
				env.Set(name, value)
			}
		default:
			l.logger.Trace().Str("path", path).Str("line", line).Msg("Ignoring unrecognized line")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return nil
}

// splitAssignment splits "name=value", stripping one level of quotes from the
// value. Reports false for lines that are not an assignment.
func splitAssignment(s string) (string, string, bool) {
	name, value, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok || name == "" || strings.ContainsAny(name, " \t") {
		return "", "", false
	}
	return name, unquote(value), true
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
