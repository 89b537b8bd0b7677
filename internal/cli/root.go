// Package cli wires up the dotup command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/internal/version"
	"github.com/dotup-sh/dotup/pkg/config"
	"github.com/dotup-sh/dotup/pkg/logging"
	"github.com/dotup-sh/dotup/pkg/paths"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		yes       bool
	)

	rootCmd := &cobra.Command{
		Use:   "dotup",
		Short: "Shell environment and workstation setup tool",
		Long: `dotup keeps a workstation's shell environment and base packages in shape:
it loads the login profile (optional alias and environment files plus the
version-manager PATH entries), configures the interactive prompt, and applies
a YAML manifest of packages and managed files.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newEnvCmd())
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newApplyCmd(&dryRun, &yes))
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

// initSettings resolves the path layout and loads the layered settings
func initSettings(overrides map[string]interface{}) (*config.Settings, *paths.Paths, error) {
	p, err := paths.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize paths: %w", err)
	}

	settings, err := config.Load(p.ConfigFilePath(), overrides)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return settings, p, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dotup version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
