package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/provision"
	"github.com/dotup-sh/dotup/pkg/ui"
)

func newApplyCmd(dryRun, yes *bool) *cobra.Command {
	var (
		manifestPath string
		formatName   string
	)

	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the manifest to this host",
		Long: `Apply shows the pending changes, asks for confirmation and then installs
missing packages and writes outdated managed files. Use --yes to skip the
confirmation and --dry-run to execute nothing.`,
		Example: `  # Review and apply
  dotup apply

  # Non-interactive (CI, kickstart)
  dotup apply --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := buildPlan(manifestPath)
			if err != nil {
				return err
			}

			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return err
			}
			resolved := format.Resolve(os.Stdout)

			ui.RenderPlan(cmd.OutOrStdout(), plan, resolved)
			if plan.Pending() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "\nNothing to do.")
				return nil
			}

			if !*yes && !*dryRun {
				confirmed, err := ui.Confirm("Are you sure you want to continue?", resolved)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			executor := provision.NewExecutor(*dryRun)
			results := executor.Execute(plan)

			if *dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "\nDRY RUN MODE - No changes were made")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nPerformed %d operations:\n", len(results))
			if failed := ui.RenderResults(cmd.OutOrStdout(), results, resolved); failed > 0 {
				return fmt.Errorf("%d of %d operations failed", failed, len(results))
			}
			return nil
		},
	}

	applyCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to the manifest (default: ./dotup.yaml, then the config directory)")
	applyCmd.Flags().StringVar(&formatName, "format", "auto", "Output format: auto, term or text")

	return applyCmd
}
