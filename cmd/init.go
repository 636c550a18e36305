package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default mixvenn.yaml configuration file",
		Long: `Create a mixvenn.yaml in the current working directory holding the input
files, report and logging settings currently in effect, so they can be
edited instead of passed as flags on every run.

Flags given together with init are written too, e.g.
  mixvenn init -l runs.txt -d delta.txt

An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeConfig(cmd, filepath.Join(configFolderPath, configFileName), force)
		},
	}

	cmd.Flags().BoolVarP(&force, forceFlagName, "f", false, "overwrite an existing configuration file")

	return cmd
}

func writeConfig(cmd *cobra.Command, path string, force bool) error {
	write := viper.SafeWriteConfigAs
	if force {
		write = viper.WriteConfigAs
	}

	if err := write(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	slog.Info("config file written", "path", path, "overwrite", force)
	cmd.Printf("Wrote %s\n", path)

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
