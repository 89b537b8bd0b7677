package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/dotup-sh/dotup/pkg/provision"
)

// RenderPlan writes the plan grouped by entry. Entries with nothing pending
// show as OK, matching the up-to-date state.
func RenderPlan(w io.Writer, plan *provision.Plan, format Format) {
	styled := format == FormatTerminal

	for _, entry := range plan.Entries {
		fmt.Fprintf(w, "%s\n", style(styleEntry, entry.Name, styled))
		if len(entry.Operations) == 0 {
			fmt.Fprintf(w, "  %s\n", style(styleOK, "OK", styled))
			continue
		}
		for _, op := range entry.Operations {
			fmt.Fprintf(w, "  %s\n", style(operationStyle(op.Description()), op.Description(), styled))
		}
	}
}

// RenderResults writes the outcome of an executed plan and returns the number
// of failed operations.
func RenderResults(w io.Writer, results []provision.Result, format Format) int {
	styled := format == FormatTerminal

	failed := 0
	for _, result := range results {
		switch {
		case result.Skipped:
			fmt.Fprintf(w, "  - %s (dry run, skipped)\n", result.Operation.Description())
		case result.Err != nil:
			failed++
			fmt.Fprintf(w, "  %s %s: %v\n", style(styleError, "✗", styled), result.Operation.Description(), result.Err)
		default:
			fmt.Fprintf(w, "  ✓ %s\n", result.Operation.Description())
		}
	}
	return failed
}

// Confirm asks the user to approve the pending changes. In plain format the
// interactive printer is skipped in favor of a simple y/N prompt.
func Confirm(message string, format Format) (bool, error) {
	if format == FormatTerminal {
		return pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(message)
	}

	fmt.Printf("%s [y/N]: ", message)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false, nil
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func operationStyle(description string) lipgloss.Style {
	switch {
	case strings.HasPrefix(description, "Package"):
		return styleInstall
	case strings.Contains(description, "created"):
		return styleCreate
	default:
		return styleUpdate
	}
}

func style(s lipgloss.Style, text string, styled bool) string {
	if !styled {
		return text
	}
	return s.Render(text)
}
