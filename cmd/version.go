package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

const (
	develVersion      = "(devel)"
	shortRevisionSize = 12
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Print the mixvenn module version, the VCS revision it was built from when
the build recorded one, and the Go version used to build it.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			cmd.Print(formatVersion(info))
		},
	}
}

// formatVersion renders build information, one tab-separated entry per line.
func formatVersion(info *debug.BuildInfo) string {
	if info == nil {
		return "mixvenn version\tunknown\n"
	}

	version := info.Main.Version
	if version == "" {
		version = develVersion
	}

	var b strings.Builder
	fmt.Fprintf(&b, "mixvenn version\t%s\n", version)

	if revision := buildSetting(info, "vcs.revision"); revision != "" {
		if len(revision) > shortRevisionSize {
			revision = revision[:shortRevisionSize]
		}

		if buildSetting(info, "vcs.modified") == "true" {
			revision += "+dirty"
		}

		fmt.Fprintf(&b, "revision\t%s\n", revision)
	}

	fmt.Fprintf(&b, "go version\t%s\n", info.GoVersion)

	return b.String()
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}

	return ""
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
