package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mixvenn.dev/pkg/mixvenn/internal/domain"
)

// pairsCmd represents the pairs command.
var pairsCmd = newPairsCmd()

func newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List revision pairs and their delta sets",
		Long: `List every revision pair of the log with its number of mixed revisions and
whether it is repaired. With --delta the listing also shows the size of the
delta and of the derived delta_p, delta_p_bar and delta_f sets, plus the
reverted files the delta does not mention.

` + inputFilesHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Pairs(cmd.Context(), domain.PairsArgs{
				Log:   viper.GetString(inputLogKey),
				Delta: viper.GetString(inputDeltaKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(pairsCmd)
}
