package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/paths"
	"github.com/dotup-sh/dotup/pkg/shell"
)

func newSnippetCmd() *cobra.Command {
	var install bool

	snippetCmd := &cobra.Command{
		Use:   "snippet [profile|prompt]",
		Short: "Print or install the generated shell scripts",
		Long: `Snippet prints the standalone bash scripts dotup generates: the login
profile (optional file sourcing plus PATH entries) and the prompt setup.
With --install, both scripts are written to the data directory and the
source lines to add to the shell rc files are printed.`,
		ValidArgs: []string{"profile", "prompt"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, p, err := initSettings(nil)
			if err != nil {
				return err
			}

			if install {
				installed, err := shell.InstallSnippets(p.DataDir(), settings)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Installed shell scripts:")
				for _, path := range installed {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", path)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\nAdd to ~/.bash_profile:")
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", shell.SourceLine(p.ShellDir(), paths.ProfileScriptName))
				fmt.Fprintln(cmd.OutOrStdout(), "\nAdd to ~/.bashrc:")
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", shell.SourceLine(p.ShellDir(), paths.PromptScriptName))
				return nil
			}

			which := "profile"
			if len(args) == 1 {
				which = args[0]
			}
			switch which {
			case "profile":
				fmt.Fprint(cmd.OutOrStdout(), shell.ProfileSnippet(settings.Profile))
			case "prompt":
				fmt.Fprint(cmd.OutOrStdout(), shell.PromptSnippet(settings.Prompt))
			}
			return nil
		},
	}

	snippetCmd.Flags().BoolVar(&install, "install", false, "Write the scripts to the data directory")

	return snippetCmd
}
