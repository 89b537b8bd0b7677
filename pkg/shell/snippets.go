// Package shell renders the installable bash scripts: the login profile and
// the prompt setup. The scripts are self-contained equivalents of what
// `dotup env` and `dotup prompt init` do in-process, for users who prefer
// plain dotfiles over eval hooks.
package shell

import (
	"fmt"
	"strings"

	"github.com/dotup-sh/dotup/pkg/config"
)

// ProfileSnippet renders the login profile script: the three optional files
// are sourced only if present, then the version-manager bin directories are
// appended to PATH so existing binaries keep precedence.
func ProfileSnippet(settings config.ProfileSettings) string {
	var b strings.Builder
	b.WriteString("# Login profile generated by dotup. Edit config.toml instead of this file.\n")

	for _, relPath := range []string{settings.UserCommands, settings.Aliases, settings.Environment} {
		if relPath == "" {
			continue
		}
		path := `$HOME/` + relPath
		fmt.Fprintf(&b, "[ -f \"%s\" ] && source \"%s\"\n", path, path)
	}

	b.WriteString("\n")
	for _, dir := range settings.PathDirs {
		fmt.Fprintf(&b, "export PATH=\"$PATH:$HOME/%s\"\n", dir)
	}

	return b.String()
}

// PromptSnippet renders the prompt setup script. The PS1 guard keeps
// non-interactive shells untouched; the PROMPT_COMMAND hook re-expands the
// title on every prompt; PS1 picks its color from the override variable,
// falling back to the configured default.
func PromptSnippet(settings config.PromptSettings) string {
	title := strings.NewReplacer("{user}", "${USER}", "{dir}", "${PWD}").Replace(settings.Greeting)

	var b strings.Builder
	b.WriteString("# Prompt setup generated by dotup. Edit config.toml instead of this file.\n")
	b.WriteString("if [ -n \"$PS1\" ]; then\n")
	fmt.Fprintf(&b, "    PROMPT_COMMAND='printf \"\\033]0;%%s\\007\" \"%s\"'\n", title)
	fmt.Fprintf(&b, "    PS1=\"\\[\\e[${%s:-%d}m\\][\\u@\\h]\\[\\e[0m\\]\\$ \"\n", settings.ColorVar, settings.DefaultColor)
	b.WriteString("fi\n")

	return b.String()
}

// SourceLine returns the one-liner users add to their shell rc to source an
// installed snippet, guarded so a missing installation is not an error.
func SourceLine(shellDir, scriptName string) string {
	path := shellDir + "/" + scriptName
	return fmt.Sprintf(`[ -f "%s" ] && source "%s"`, path, path)
}
