package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/prompt"
	"github.com/dotup-sh/dotup/pkg/session"
)

func newPromptCmd() *cobra.Command {
	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Configure and render the interactive prompt",
	}

	promptCmd.AddCommand(newPromptInitCmd())
	promptCmd.AddCommand(newPromptTitleCmd())
	promptCmd.AddCommand(newPromptRenderCmd())

	return promptCmd
}

func newPromptInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print the prompt setup for the running shell",
		Long: `Init emits the PS1 and PROMPT_COMMAND assignments when the session is
interactive (non-empty PS1). Non-interactive sessions produce no output.`,
		Example: `  # In ~/.bashrc
  eval "$(dotup prompt init)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, err := initSettings(nil)
			if err != nil {
				return err
			}

			env := session.FromEnviron(os.Environ())
			configurator := prompt.New(settings.Prompt)
			if !configurator.Configure(env) {
				// Not attached to an interactive terminal; stay silent.
				return nil
			}

			for _, line := range env.ExportLines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newPromptTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title",
		Short: "Emit the terminal title escape sequence",
		Long: `Title prints the window title escape for the current user and working
directory. It is registered as the PROMPT_COMMAND hook so the title is
re-evaluated before every prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, _, err := initSettings(nil)
			if err != nil {
				return err
			}

			dir, err := os.Getwd()
			if err != nil {
				dir = os.Getenv("PWD")
			}

			configurator := prompt.New(settings.Prompt)
			fmt.Fprint(cmd.OutOrStdout(), configurator.Title(os.Getenv("USER"), dir))
			return nil
		},
	}
}

func newPromptRenderCmd() *cobra.Command {
	var colorOverride int

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the resolved prompt string",
		Long: `Render prints the fully resolved colored prompt, for shells that invoke
dotup per prompt instead of using a PS1 template.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides map[string]interface{}
			if cmd.Flags().Changed("color") {
				overrides = map[string]interface{}{"prompt.default_color": colorOverride}
			}

			settings, _, err := initSettings(overrides)
			if err != nil {
				return err
			}

			env := session.FromEnviron(os.Environ())
			host, err := os.Hostname()
			if err != nil {
				host = "localhost"
			}

			configurator := prompt.New(settings.Prompt)
			fmt.Fprint(cmd.OutOrStdout(), configurator.Render(env, os.Getenv("USER"), host))
			return nil
		},
	}

	renderCmd.Flags().IntVar(&colorOverride, "color", 0, "Color code to use instead of the configured default")

	return renderCmd
}
