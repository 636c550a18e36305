// Package domain holds the mixed-revision analysis: building the revision
// pair hierarchy, classifying delta sets into Venn cases and aggregating them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"mixvenn.dev/pkg/mixvenn/internal/adapter"
	"mixvenn.dev/pkg/mixvenn/internal/controller"
	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

const runIDLength = 8

// ErrInvalidArgs is returned when workflow arguments fail validation.
var ErrInvalidArgs = errors.New("invalid arguments")

var argsValidate = validator.New()

// SummaryArgs contains the arguments for summarizing a log.
type SummaryArgs struct {
	Log   string `validate:"required"`
	Delta string
}

// VennArgs contains the arguments for the Venn classification.
type VennArgs struct {
	Log    string `validate:"required"`
	Delta  string `validate:"required"`
	Export string
}

// PairsArgs contains the arguments for listing revision pairs.
type PairsArgs struct {
	Log   string `validate:"required"`
	Delta string
}

// ViewArgs contains the arguments for showing a saved report.
type ViewArgs struct {
	Report string `validate:"required"`
}

// Corpus is a fully parsed analysis run.
type Corpus struct {
	Pairs   []*m.RevisionPair
	Deltas  *m.DeltaIndex
	Rejects []m.Reject
}

// Workflow defines the commands offered on a mixed-revision corpus.
type Workflow interface {
	Summary(ctx context.Context, args SummaryArgs) error
	Venn(ctx context.Context, args VennArgs) error
	Pairs(ctx context.Context, args PairsArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.LogReader
	adapter.ReportStore
	controller.UI

	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reader adapter.LogReader,
	store adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		LogReader:   reader,
		ReportStore: store,
		UI:          ui,
		now:         time.Now,
	}
}

func (w *workflow) Summary(ctx context.Context, args SummaryArgs) error {
	if err := validateArgs(args); err != nil {
		return err
	}

	corpus, err := w.Load(ctx, args.Log, args.Delta)
	if err != nil {
		return err
	}

	if err := w.DisplayRejects(ctx, corpus.Rejects); err != nil {
		return err
	}

	return w.DisplaySummary(ctx, Summarize(corpus.Pairs, corpus.Deltas, len(corpus.Rejects)))
}

func (w *workflow) Venn(ctx context.Context, args VennArgs) error {
	if err := validateArgs(args); err != nil {
		return err
	}

	runID := newRunID()
	logger := slog.With("run", runID)
	logger.Info("starting venn classification", "log", args.Log, "delta", args.Delta)

	corpus, err := w.Load(ctx, args.Log, args.Delta)
	if err != nil {
		return err
	}

	report, err := Aggregate(corpus.Pairs, corpus.Deltas)
	if err != nil {
		logger.Error("venn classification failed", "error", err)
		return fmt.Errorf("aggregate: %w", err)
	}

	if err := w.DisplayRejects(ctx, corpus.Rejects); err != nil {
		return err
	}

	if err := w.DisplayVennReport(ctx, report); err != nil {
		return err
	}

	if args.Export == "" {
		return nil
	}

	summary := Summarize(corpus.Pairs, corpus.Deltas, len(corpus.Rejects))
	export := m.NewExport(runID, w.now().UTC(), summary, report)
	export.LogFile = args.Log
	export.DeltaFile = args.Delta

	if err := w.SaveReport(args.Export, export); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

func (w *workflow) Pairs(ctx context.Context, args PairsArgs) error {
	if err := validateArgs(args); err != nil {
		return err
	}

	corpus, err := w.Load(ctx, args.Log, args.Delta)
	if err != nil {
		return err
	}

	if err := w.DisplayRejects(ctx, corpus.Rejects); err != nil {
		return err
	}

	return w.DisplayPairs(ctx, DescribePairs(corpus.Pairs, corpus.Deltas))
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := validateArgs(args); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	export, err := w.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	slog.Info("report loaded", "path", args.Report, "run", export.RunID)

	return w.DisplayExport(ctx, export)
}

// Load reads the log and, when deltaPath is set, the delta file, and builds
// the revision pair hierarchy.
func (w *workflow) Load(ctx context.Context, logPath, deltaPath string) (*Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, rejects, err := w.ReadRecords(logPath)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	deltas := m.NewDeltaIndex()

	if deltaPath != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var deltaRejects []m.Reject

		deltas, deltaRejects, err = w.ReadDeltas(deltaPath)
		if err != nil {
			return nil, fmt.Errorf("read deltas: %w", err)
		}

		rejects = append(rejects, deltaRejects...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pairs := BuildRevisionPairs(records)

	slog.Info("corpus loaded",
		"records", len(records),
		"pairs", len(pairs),
		"deltas", deltas.Len(),
		"rejects", len(rejects))

	return &Corpus{Pairs: pairs, Deltas: deltas, Rejects: rejects}, nil
}

func validateArgs(args any) error {
	if err := argsValidate.Struct(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	return nil
}

func newRunID() string {
	return uuid.NewString()[:runIDLength]
}
