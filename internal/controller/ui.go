// Package controller provides output adapters for displaying loaded test results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "testreport.dev/pkg/testreport/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSummary StartMode = iota
	ModeBrowse
	ModeRender
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	title string
}

// WithSummaryMode prints a one-shot table of the result.
func WithSummaryMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSummary
	}
}

// WithBrowseMode lets the user walk through suites and cases.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

// WithRenderMode reports where a rendered document was written.
func WithRenderMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRender
	}
}

// WithTitle sets the heading shown above the result.
func WithTitle(title string) StartOption {
	return func(c *StartConfig) {
		c.title = title
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSummary}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for presenting results on the terminal.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayResult(ctx context.Context, result *m.Result, span m.Span) error
	DisplayReportWritten(ctx context.Context, output m.Path, result *m.Result)
}

// NewUI returns the interactive TUI when attached to a terminal and the
// plain table printer otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
