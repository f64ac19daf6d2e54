// Package domain implements tracefile parsing, aggregation and the covtree workflows.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"covtree.dev/pkg/covtree/internal/adapter"
	"covtree.dev/pkg/covtree/internal/controller"
	m "covtree.dev/pkg/covtree/internal/model"
)

// LoadArgs selects and prepares the tracefiles a command works on.
type LoadArgs struct {
	Tracefiles []m.Path
	BaseDir    m.Path
	Exclude    []string
}

// ReportArgs contains the arguments for reporting coverage.
type ReportArgs struct {
	LoadArgs
	Medium  float64
	High    float64
	Summary m.Path
}

// MergeArgs contains the arguments for merging tracefiles.
type MergeArgs struct {
	LoadArgs
	Output m.Path
}

// FilterArgs contains the arguments for filtering a tracefile.
type FilterArgs struct {
	LoadArgs
	Output m.Path
}

// CheckArgs contains the arguments for gating on a minimum coverage.
type CheckArgs struct {
	LoadArgs
	Minimum float64
}

// CleanArgs contains the arguments for removing generated artifacts.
type CleanArgs struct {
	Paths         []m.Path
	IgnoreMissing bool
}

// Workflow runs the covtree commands end to end.
type Workflow interface {
	Report(ctx context.Context, args ReportArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	Filter(ctx context.Context, args FilterArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Clean(ctx context.Context, args CleanArgs) error
}

type workflow struct {
	adapter.TracefileStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(store adapter.TracefileStore, ui controller.UI) Workflow {
	return &workflow{
		TracefileStore: store,
		UI:             ui,
	}
}

// Report builds the coverage tree and displays it, optionally saving a summary.
func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	thresholds, err := NewThresholds(args.Medium, args.High)
	if err != nil {
		return err
	}

	root, err := w.loadTree(ctx, args.LoadArgs)
	if err != nil {
		return err
	}

	if args.Summary != "" {
		if err := w.WriteSummary(args.Summary, Summarize(root, thresholds)); err != nil {
			slog.Error("Failed to write summary", "path", args.Summary, "error", err)
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := w.DisplayReport(ctx, root, thresholds); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Merge combines the tracefiles and writes the result.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	if len(args.Tracefiles) == 0 {
		return errors.New("merge: no tracefiles given")
	}

	tracefile, err := w.load(ctx, args.LoadArgs)
	if err != nil {
		return err
	}

	return w.output(ctx, args.Output, tracefile)
}

// Filter drops excluded records and writes the result.
func (w *workflow) Filter(ctx context.Context, args FilterArgs) error {
	tracefile, err := w.load(ctx, args.LoadArgs)
	if err != nil {
		return err
	}

	return w.output(ctx, args.Output, tracefile)
}

// Check gates on the aggregate coverage. A failed check is returned as a
// *model.BelowMinimumError after being displayed.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := validateMinimum(args.Minimum); err != nil {
		return err
	}

	root, err := w.loadTree(ctx, args.LoadArgs)
	if err != nil {
		return err
	}

	result := evaluate(root, args.Minimum)

	w.DisplayCheck(ctx, result)

	return result.Err()
}

// Clean removes generated artifacts.
func (w *workflow) Clean(ctx context.Context, args CleanArgs) error {
	for _, path := range args.Paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := w.Remove(path, args.IgnoreMissing); err != nil {
			return err
		}

		w.DisplayRemoved(ctx, path)
	}

	return nil
}

func (w *workflow) loadTree(ctx context.Context, args LoadArgs) (*m.Node, error) {
	tracefile, err := w.load(ctx, args)
	if err != nil {
		return nil, err
	}

	root, err := BuildTree(tracefile)
	if err != nil {
		return nil, fmt.Errorf("build coverage tree: %w", err)
	}

	return root, nil
}

// load reads, parses, merges and filters the requested tracefiles.
func (w *workflow) load(ctx context.Context, args LoadArgs) (*m.Tracefile, error) {
	patterns, err := CompilePatterns(args.Exclude)
	if err != nil {
		return nil, err
	}

	baseDir := args.BaseDir
	if baseDir == "" {
		baseDir, err = w.WorkingDir()
		if err != nil {
			return nil, err
		}
	}

	contents, err := w.ReadTracefiles(ctx, args.Tracefiles)
	if err != nil {
		return nil, fmt.Errorf("read tracefiles: %w", err)
	}

	parser := NewParser(baseDir)
	tracefiles := make([]*m.Tracefile, 0, len(contents))

	for i, content := range contents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tracefile, err := parser.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", args.Tracefiles[i], err)
		}

		tracefiles = append(tracefiles, tracefile)
	}

	merged := Merge(tracefiles...)
	filtered := Filter(merged, patterns)

	slog.Info("loaded tracefiles", "inputs", len(args.Tracefiles), "files", filtered.Len(), "excluded", merged.Len()-filtered.Len())

	return filtered, nil
}

func (w *workflow) output(ctx context.Context, path m.Path, tracefile *m.Tracefile) error {
	if path == "" || path == adapter.StdioPath {
		return w.DisplayTracefile(ctx, tracefile)
	}

	if err := w.WriteTracefile(path, tracefile.String()); err != nil {
		return fmt.Errorf("write tracefile: %w", err)
	}

	return nil
}
