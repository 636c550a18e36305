package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mixvenn.dev/pkg/mixvenn/internal/domain"
)

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Summarize a mixed-revision log",
		Long: `Count the revision pairs and mixed revisions of a log, how many pairs are
repaired and how many mixed revisions repair at least one flipped test.
Passing --delta also counts the parsed deltas.

` + inputFilesHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Summary(cmd.Context(), domain.SummaryArgs{
				Log:   viper.GetString(inputLogKey),
				Delta: viper.GetString(inputDeltaKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
