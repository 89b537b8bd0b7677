package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/manifest"
	"github.com/dotup-sh/dotup/pkg/provision"
	"github.com/dotup-sh/dotup/pkg/run"
	"github.com/dotup-sh/dotup/pkg/session"
	"github.com/dotup-sh/dotup/pkg/ui"
)

func newPlanCmd() *cobra.Command {
	var (
		manifestPath string
		formatName   string
	)

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what apply would change",
		Long: `Plan evaluates the manifest against the current host: gate commands decide
which packages are missing, content diffs decide which managed files are out
of date. Nothing is changed.`,
		Example: `  # Plan using ./dotup.yaml or the manifest in the config directory
  dotup plan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan(manifestPath)
			if err != nil {
				return err
			}

			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return err
			}
			ui.RenderPlan(cmd.OutOrStdout(), plan, format.Resolve(os.Stdout))

			log.Info().Int("pending", plan.Pending()).Msg("Plan computed")
			return nil
		},
	}

	planCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to the manifest (default: ./dotup.yaml, then the config directory)")
	planCmd.Flags().StringVar(&formatName, "format", "auto", "Output format: auto, term or text")

	return planCmd
}

// buildPlan loads settings and manifest and evaluates the plan
func buildPlan(manifestPath string) (*provision.Plan, error) {
	settings, p, err := initSettings(nil)
	if err != nil {
		return nil, err
	}

	if manifestPath == "" {
		manifestPath = p.ManifestPath()
	}
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	plan, err := provision.BuildPlan(m, provision.Options{
		Runner:   run.ExecRunner{},
		Settings: settings,
		Env:      session.FromEnviron(os.Environ()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}
	return plan, nil
}
