// Package controller provides output adapters for displaying analysis results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

// UI defines how analysis results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayVennReport(ctx context.Context, report *m.VennReport) error
	DisplayPairs(ctx context.Context, rows []m.PairRow) error
	DisplayRejects(ctx context.Context, rejects []m.Reject) error
	DisplayExport(ctx context.Context, export m.Export) error
}

// NewUI returns a TUI when writing to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
