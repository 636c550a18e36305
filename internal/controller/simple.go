package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

const (
	yesLabel  = "yes"
	noLabel   = "no"
	noneLabel = "-"

	maxRejectsShown = 20
)

var (
	headingColor = color.New(color.Bold)
	goodColor    = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints corpus counts.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n\n", headingColor.Sprint("Mixed revision log summary"))
	s.printf("Checked revision pairs: %s\tTotal number of mixed revisions: %s\n",
		humanize.Comma(int64(summary.Pairs)), humanize.Comma(int64(summary.Mixes)))
	s.printf("Repaired flips: %s\n", goodColor.Sprint(humanize.Comma(int64(summary.RepairedPairs))))
	s.printf("Mixed revisions repairing a flip: %s\n", humanize.Comma(int64(summary.FlipFixes)))

	if summary.Deltas > 0 {
		s.printf("Deltas: %s\n", humanize.Comma(int64(summary.Deltas)))
	}

	if summary.UnmatchedDeltas > 0 {
		s.printf("Deltas without log entries: %s\n", warnColor.Sprint(humanize.Comma(int64(summary.UnmatchedDeltas))))
	}

	if summary.Rejects > 0 {
		s.printf("Rejected lines: %s\n", warnColor.Sprint(humanize.Comma(int64(summary.Rejects))))
	}

	s.printf("\n")

	return nil
}

// DisplayVennReport prints the weighted case table.
func (s *SimpleUI) DisplayVennReport(ctx context.Context, report *m.VennReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderVennTable(report))
	s.printf("Qualifying pairs: %d | Missing delta: %d | Fully repaired (skipped): %d\n",
		report.Pairs, report.MissingDelta, report.SkippedFullRepair)

	return nil
}

// DisplayExport prints a saved report: the run it came from followed by
// the same case table DisplayVennReport prints.
func (s *SimpleUI) DisplayExport(ctx context.Context, export m.Export) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n\n", headingColor.Sprintf("Venn report %s", export.RunID))
	s.printf("Generated: %s (%s)\n", export.Generated.Format(time.RFC3339), humanize.Time(export.Generated))
	s.printf("Log: %s\n", labelOrNone(export.LogFile))
	s.printf("Delta: %s\n", labelOrNone(export.DeltaFile))
	s.printf("Checked revision pairs: %s\tTotal number of mixed revisions: %s\n",
		humanize.Comma(int64(export.Pairs)), humanize.Comma(int64(export.MixedRevisions)))

	if export.Rejects > 0 {
		s.printf("Rejected lines: %s\n", warnColor.Sprint(humanize.Comma(int64(export.Rejects))))
	}

	return s.DisplayVennReport(ctx, export.VennReport())
}

// DisplayPairs prints one table row per revision pair.
func (s *SimpleUI) DisplayPairs(ctx context.Context, rows []m.PairRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPairTable(rows))

	return nil
}

// DisplayRejects lists skipped input lines, truncated to a readable amount.
func (s *SimpleUI) DisplayRejects(ctx context.Context, rejects []m.Reject) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(rejects) == 0 {
		return nil
	}

	s.printf("%s\n", warnColor.Sprintf("%d input line(s) rejected:", len(rejects)))

	for i, reject := range rejects {
		if i == maxRejectsShown {
			s.printf("  ... and %d more (see log)\n", len(rejects)-maxRejectsShown)
			break
		}

		s.printf("  %s\n", reject)
	}

	return nil
}

func renderVennTable(report *m.VennReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Case", "Relationship", "Weight", "Percent"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	total := 0.0

	for _, c := range m.AllVennCases() {
		total += report.Weight(c)
		table.Append([]string{
			fmt.Sprintf("%d", int(c)),
			c.Description(),
			fmt.Sprintf("%.2f", report.Weight(c)),
			fmt.Sprintf("%.2f%%", report.Percent(c)),
		})
	}

	table.SetFooter([]string{"", "Total", fmt.Sprintf("%.2f", total), fmt.Sprintf("%d pairs", report.Pairs)})
	table.Render()

	return tableBuffer.String()
}

func renderPairTable(rows []m.PairRow) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Parent", "Child", "Mixes", "Repaired", "Delta", "ΔP", "ΔP-bar", "ΔF", "Anomalies"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)

	repaired := 0

	for _, row := range rows {
		repairedLabel := noLabel
		if row.Repaired {
			repairedLabel = yesLabel
			repaired++
		}

		deltaCols := []string{noneLabel, noneLabel, noneLabel, noneLabel}
		if row.HasDelta {
			deltaCols = []string{
				fmt.Sprintf("%d", row.DeltaSize),
				fmt.Sprintf("%d", row.DeltaPBar),
				fmt.Sprintf("%d", row.DeltaF),
				fmt.Sprintf("%d", row.Anomalies),
			}
		}

		table.Append([]string{
			row.Key.ParentID,
			row.Key.ChildID,
			fmt.Sprintf("%d", row.Mixes),
			repairedLabel,
			deltaCols[0],
			fmt.Sprintf("%d", row.DeltaP),
			deltaCols[1],
			deltaCols[2],
			deltaCols[3],
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Pairs %d", len(rows)), "", "", fmt.Sprintf("%d", repaired), "", "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func labelOrNone(v string) string {
	if v == "" {
		return noneLabel
	}

	return v
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
