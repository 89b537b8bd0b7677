package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/dotup-sh/dotup/pkg/errors"
)

// GenerateConfigContent renders the default settings as a TOML document with
// every value commented out, ready to be dropped into the config directory
// and edited.
func GenerateConfigContent() (string, error) {
	settings, err := Default()
	if err != nil {
		return "", err
	}

	raw, err := gotoml.Marshal(settings)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default settings")
	}

	return commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues takes the TOML content and comments out all
// non-comment, non-blank lines that contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [prompt], [packager]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
