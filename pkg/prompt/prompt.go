// Package prompt implements the prompt configurator: window title hook and
// colored primary prompt for interactive sessions.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/session"
)

// Shell variable names used by the configurator
const (
	// PrimaryPromptVar is the interactive-session proxy signal: a shell with
	// an empty PS1 is treated as non-interactive.
	PrimaryPromptVar = "PS1"

	// HookVar is the pre-command hook registration variable
	HookVar = "PROMPT_COMMAND"
)

const (
	titlePrefix = "\x1b]0;"
	titleSuffix = "\x07"
	colorReset  = "\x1b[0m"
)

// Configurator renders and installs the title hook and prompt string
type Configurator struct {
	settings config.PromptSettings
}

// New returns a Configurator with the given settings
func New(settings config.PromptSettings) *Configurator {
	return &Configurator{settings: settings}
}

// Interactive reports whether the environment looks like an interactive
// terminal session, using a non-empty primary prompt variable as the signal.
func (c *Configurator) Interactive(env *session.Environment) bool {
	return env.Get(PrimaryPromptVar) != ""
}

// Color returns the prompt color code: the integer value of the override
// variable when set and valid, the configured default otherwise.
func (c *Configurator) Color(env *session.Environment) int {
	if raw, ok := env.Lookup(c.settings.ColorVar); ok {
		if code, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return code
		}
	}
	return c.settings.DefaultColor
}

// Title renders the window title escape sequence for the given user and
// working directory. Callers invoke this fresh before every prompt; nothing
// is cached.
func (c *Configurator) Title(user, dir string) string {
	greeting := strings.NewReplacer("{user}", user, "{dir}", dir).Replace(c.settings.Greeting)
	return titlePrefix + greeting + titleSuffix
}

// PromptTemplate returns the PS1 value: color selection from the override
// variable with the configured default, literal [user@host] substituted live
// by the shell, color reset, then a dollar sign. The \[ \] markers keep bash
// line-length accounting correct.
func (c *Configurator) PromptTemplate() string {
	return fmt.Sprintf(`\[\e[${%s:-%d}m\][\u@\h]\[\e[0m\]\$ `, c.settings.ColorVar, c.settings.DefaultColor)
}

// HookCommand returns the value registered as the pre-command hook. The hook
// re-invokes dotup so user and directory are re-evaluated on every prompt.
func (c *Configurator) HookCommand() string {
	return "dotup prompt title"
}

// Render produces the fully resolved prompt text for shells that call the
// binary per prompt instead of using a PS1 template.
func (c *Configurator) Render(env *session.Environment, user, host string) string {
	return fmt.Sprintf("\x1b[%dm[%s@%s]%s$ ", c.Color(env), user, host, colorReset)
}

// Configure installs the hook and prompt template on the environment when the
// session is interactive. Non-interactive sessions are left untouched;
// Configure reports whether it applied anything.
func (c *Configurator) Configure(env *session.Environment) bool {
	if !c.Interactive(env) {
		return false
	}
	env.Set(HookVar, c.HookCommand())
	env.Set(PrimaryPromptVar, c.PromptTemplate())
	return true
}
