package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/profile"
	"github.com/dotup-sh/dotup/pkg/session"
)

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the login profile environment as shell exports",
		Long: `Env applies the login profile to a snapshot of the current environment:
the optional alias and environment files are loaded if present, and the
version-manager bin directories are appended to PATH. The resulting
definitions are printed as shell statements.`,
		Example: `  # Apply the profile to the running shell
  eval "$(dotup env)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, p, err := initSettings(nil)
			if err != nil {
				return err
			}

			env := session.FromEnviron(os.Environ())
			loader := profile.NewLoader(p.Home(), settings.Profile)

			result, err := loader.Load(env)
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}

			log.Debug().
				Strs("sourced", result.Sourced).
				Strs("appended", result.AppendedPaths).
				Msg("Profile loaded")

			for _, line := range env.ExportLines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
