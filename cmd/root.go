// Package cmd provides the root command and CLI setup for mixvenn.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mixvenn.dev/pkg/mixvenn/internal/adapter"
	"mixvenn.dev/pkg/mixvenn/internal/controller"
	"mixvenn.dev/pkg/mixvenn/internal/domain"
)

var logReader adapter.LogReader
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

var inputLogFlag string
var inputDeltaFlag string
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout) && viper.GetBool(interactiveKey))
	logReader = adapter.NewLocalLogReader()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(logReader, reportStore, ui)
}

const inputFilesHelp = `Input files:
  --log    mixed-revision log, one test outcome per line:
           mixID;parent;child;files;compilable;aborted;test;mix;child;parent
  --delta  delta file, one revision pair per line:
           parent;child;files

Both files start with a header line which is skipped.`

const rootLongDescription = `Mixvenn analyzes mixed-revision experiments. A mixed revision applies a
subset of the changes between a parent and a child revision; rerunning the
tests on it shows which files cause or repair a regression.

The venn command classifies, for every revision pair, how the smallest
failure-inducing change relates to the complement of the largest repairing
change, and reports the weighted share of each of nine Venn cases.

` + inputFilesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "mixvenn",
		Short:        "Mixed-revision regression analysis",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&inputLogFlag, inputLogFlagName, "l", defaultInputLog, "mixed-revision log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(inputLogFlagName), inputLogKey)

	cmd.PersistentFlags().StringVarP(&inputDeltaFlag, inputDeltaFlagName, "d", defaultInputDelta, "delta file listing the changes of each revision pair")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(inputDeltaFlagName), inputDeltaKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "file the log is written to")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
