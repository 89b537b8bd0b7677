package shell

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/paths"
)

// InstallSnippets writes the generated profile and prompt scripts into the
// shell directory under dataDir and returns their paths.
func InstallSnippets(dataDir string, settings *config.Settings) ([]string, error) {
	shellDir := filepath.Join(dataDir, paths.ShellDirName)

	if err := os.MkdirAll(shellDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create shell directory %s", shellDir)
	}

	scripts := []struct {
		name    string
		content string
	}{
		{paths.ProfileScriptName, ProfileSnippet(settings.Profile)},
		{paths.PromptScriptName, PromptSnippet(settings.Prompt)},
	}

	installed := make([]string, 0, len(scripts))
	for _, script := range scripts {
		destPath := filepath.Join(shellDir, script.name)
		if err := os.WriteFile(destPath, []byte(script.content), 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write script %s", destPath)
		}
		log.Info().Str("script", script.name).Str("dest", destPath).Msg("Installed shell script")
		installed = append(installed, destPath)
	}

	return installed, nil
}
