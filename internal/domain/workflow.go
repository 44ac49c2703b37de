// Package domain wires input resolution, loading, rendering and emitting into
// the report workflows behind the CLI commands.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"testreport.dev/pkg/testreport/internal/adapter"
	"testreport.dev/pkg/testreport/internal/controller"
	m "testreport.dev/pkg/testreport/internal/model"
	"testreport.dev/pkg/testreport/internal/render"
)

// DefaultParallel is the number of input files loaded at once when
// LoadArgs.Parallel is not positive.
const DefaultParallel = 4

// ErrNoInputs is returned when the input patterns leave no files to load, or
// when every file they found turned out not to be a test report.
var ErrNoInputs = errors.New("no input files")

// LoadArgs selects the input files of a workflow.
type LoadArgs struct {
	Patterns []string
	Exclude  []string
	Parallel int
}

// RenderArgs contains the arguments for writing an HTML report.
type RenderArgs struct {
	LoadArgs
	Output      m.Path
	Title       string
	Description string
	Lang        string
}

// SummaryArgs contains the arguments for printing a summary table.
type SummaryArgs struct {
	LoadArgs
	Title string
}

// ViewArgs contains the arguments for the interactive browser.
type ViewArgs struct {
	LoadArgs
	Title string
}

// Workflow defines the report operations exposed to the CLI.
type Workflow interface {
	Render(ctx context.Context, args RenderArgs) error
	Summary(ctx context.Context, args SummaryArgs) error
	View(ctx context.Context, args ViewArgs) error
}

// Option customizes a workflow.
type Option func(*workflow)

// WithClock replaces time.Now, used when inputs carry no timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *workflow) {
		w.now = now
	}
}

// WithRunID replaces the run id generator.
func WithRunID(newRunID func() string) Option {
	return func(w *workflow) {
		w.newRunID = newRunID
	}
}

// WithGenerator sets the generator string written into reports.
func WithGenerator(generator string) Option {
	return func(w *workflow) {
		w.generator = generator
	}
}

type workflow struct {
	adapter.InputResolver
	adapter.ResultLoader
	adapter.ReportEmitter
	controller.UI

	now       func() time.Time
	newRunID  func() string
	generator string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	resolver adapter.InputResolver,
	loader adapter.ResultLoader,
	emitter adapter.ReportEmitter,
	ui controller.UI,
	options ...Option,
) Workflow {
	w := &workflow{
		InputResolver: resolver,
		ResultLoader:  loader,
		ReportEmitter: emitter,
		UI:            ui,
		now:           time.Now,
		newRunID:      uuid.NewString,
		generator:     render.DefaultGenerator,
	}

	for _, option := range options {
		option(w)
	}

	return w
}

// Render loads the inputs, renders the report and writes it with its assets.
func (w *workflow) Render(ctx context.Context, args RenderArgs) error {
	result, span, err := w.collect(ctx, args.LoadArgs)
	if err != nil {
		return err
	}

	meta := render.Meta{
		Title:       args.Title,
		Description: args.Description,
		Generator:   w.generator,
		RunID:       w.newRunID(),
		Start:       span.Start,
		Stop:        span.Stop,
	}

	document, err := render.New(render.LabelsFor(args.Lang)).Render(result, meta)
	if err != nil {
		slog.Error("Failed to render report", "error", err)
		return fmt.Errorf("render report: %w", err)
	}

	if err := w.Emit(ctx, document, args.Output); err != nil {
		slog.Error("Failed to emit report", "output", args.Output, "error", err)
		return fmt.Errorf("emit report: %w", err)
	}

	slog.Info("Report written",
		"output", args.Output,
		"run_id", meta.RunID,
		"suites", result.Len(),
		"status", render.StatusSummary(result, render.English),
	)

	if err := w.Start(ctx, controller.WithRenderMode()); err != nil {
		return err
	}

	w.DisplayReportWritten(ctx, args.Output, result)
	w.Close(ctx)

	return nil
}

// Summary loads the inputs and prints a per-suite table.
func (w *workflow) Summary(ctx context.Context, args SummaryArgs) error {
	result, span, err := w.collect(ctx, args.LoadArgs)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithSummaryMode(), controller.WithTitle(args.Title)); err != nil {
		slog.Error("Failed to start summary UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayResult(ctx, result, span); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View loads the inputs and opens the browser until the user quits it.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	result, span, err := w.collect(ctx, args.LoadArgs)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithBrowseMode(), controller.WithTitle(args.Title)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayResult(ctx, result, span); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	// Wait for UI to be closed by user (press 'q')
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// collect resolves and loads every input, then builds the result. Files are
// decoded concurrently but their suites are added in input order, so the
// same inputs always give the same result.
func (w *workflow) collect(ctx context.Context, args LoadArgs) (*m.Result, m.Span, error) {
	inputs, err := w.Resolve(args.Patterns, args.Exclude)
	if err != nil {
		slog.Error("Failed to resolve inputs", "patterns", args.Patterns, "error", err)
		return nil, m.Span{}, fmt.Errorf("resolve inputs: %w", err)
	}

	if len(inputs) == 0 {
		return nil, m.Span{}, ErrNoInputs
	}

	started := w.now()

	sources, err := w.loadAll(ctx, inputs, args.Parallel)
	if err != nil {
		return nil, m.Span{}, err
	}

	if len(sources) == 0 {
		return nil, m.Span{}, ErrNoInputs
	}

	result := m.NewResult()

	var span m.Span

	for _, source := range sources {
		for _, suite := range source.Suites {
			result.AddSuite(suite)
		}

		span = span.Merge(source.Span)
	}

	if span.Start.IsZero() {
		span.Start = started
	}

	if span.Stop.IsZero() {
		span.Stop = w.now()
	}

	slog.Debug("Collected results",
		"files", len(sources),
		"suites", result.Len(),
		"passed", result.SuccessCount(),
		"failed", result.FailureCount(),
		"errored", result.ErrorCount(),
	)

	return result, span, nil
}

// loadAll loads inputs concurrently and returns their sources in input order.
// Discovered files that are not test reports are skipped; named files must
// load.
func (w *workflow) loadAll(ctx context.Context, inputs []m.Input, parallel int) ([]m.Source, error) {
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	sources := make([]m.Source, len(inputs))
	loaded := make([]bool, len(inputs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, input := range inputs {
		group.Go(func() error {
			source, err := w.Load(groupCtx, input.Path)
			if input.Discovered && errors.Is(err, adapter.ErrNotReport) {
				slog.Debug("Skipping input", "path", input.Path, "reason", err)
				return nil
			}

			if err != nil {
				return err
			}

			sources[i] = source
			loaded[i] = true

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to load inputs", "error", err)
		return nil, fmt.Errorf("load inputs: %w", err)
	}

	kept := make([]m.Source, 0, len(sources))
	for i, source := range sources {
		if loaded[i] {
			kept = append(kept, source)
		}
	}

	return kept, nil
}
