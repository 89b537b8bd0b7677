package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dotup-sh/dotup/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	genConfigCmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Generate a default configuration file",
		Long: `Genconfig prints the default settings as a TOML document with every value
commented out. With --write, the file is placed in the config directory
unless one already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			_, p, err := initSettings(nil)
			if err != nil {
				return err
			}

			target := p.ConfigFilePath()
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("config file already exists: %s", target)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := os.WriteFile(target, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)
			return nil
		},
	}

	genConfigCmd.Flags().BoolVar(&write, "write", false, "Write the file to the config directory instead of stdout")

	return genConfigCmd
}
