package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mixvenn.dev/pkg/mixvenn/internal/domain"
)

var exportFlag string

// vennCmd represents the venn command.
var vennCmd = newVennCmd()

func newVennCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venn",
		Short: "Classify revision pairs into Venn cases",
		Long: `Classify every revision pair that has a delta into one of nine Venn cases
and print the weighted share of each case. A pair weighs one in total,
split evenly over all combinations of its delta_p_bar and delta_f sets.

Pairs without a delta and repaired pairs whose complement was never tested
are left out and counted separately.

` + inputFilesHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Venn(cmd.Context(), domain.VennArgs{
				Log:    viper.GetString(inputLogKey),
				Delta:  viper.GetString(inputDeltaKey),
				Export: viper.GetString(reportExportKey),
			})
		},
	}

	configureVennFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(vennCmd)
}

func configureVennFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&exportFlag, exportFlagName, "e", defaultExport, "write the report as YAML to this file")
	bindFlagToConfig(cmd.Flags().Lookup(exportFlagName), reportExportKey)
}
