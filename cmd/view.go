package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mixvenn.dev/pkg/mixvenn/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [report.yaml]",
		Short: "Show a report saved by venn --export",
		Long: `Print a report written by venn --export without re-reading the log: the
run it came from, the corpus counts and the weighted case table.

Without an argument the report.export path from mixvenn.yaml is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := viper.GetString(reportExportKey)
			if len(args) == 1 {
				report = args[0]
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: report})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
