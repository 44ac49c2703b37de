package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "testreport.dev/pkg/testreport/internal/model"
	"testreport.dev/pkg/testreport/internal/render"
)

// maxSuiteNameWidth bounds the first table column, in terminal cells.
const maxSuiteNameWidth = 48

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, cfg: newStartConfig()}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cfg = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayResult prints the per-suite table followed by the status line.
// Browse mode falls back to the same output.
func (s *SimpleUI) DisplayResult(ctx context.Context, result *m.Result, span m.Span) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeSummary(s.out(), s.cfg.title, result, span)
}

// DisplayReportWritten prints where the report went.
func (s *SimpleUI) DisplayReportWritten(ctx context.Context, output m.Path, result *m.Result) {
	if err := ctx.Err(); err != nil {
		return
	}

	writeReportWritten(s.out(), output, result)
}

func (s *SimpleUI) out() io.Writer {
	return s.cmd.OutOrStdout()
}

func writeSummary(w io.Writer, title string, result *m.Result, span m.Span) error {
	var b bytes.Buffer

	if title != "" {
		fmt.Fprintf(&b, "%s\n", title)
	}

	if span.Complete() {
		fmt.Fprintf(&b, "%s  (%s)\n", span.Start.Format("2006-01-02 15:04:05"), span.Stop.Sub(span.Start))
	}

	fmt.Fprintf(&b, "\n%s", renderSummaryTable(result))
	fmt.Fprintf(&b, "%s\n", statusLine(w, result))

	_, err := w.Write(b.Bytes())

	return err
}

func writeReportWritten(w io.Writer, output m.Path, result *m.Result) {
	_, _ = fmt.Fprintf(w, "Report written to %s\n%s\n", output, statusLine(w, result))
}

func renderSummaryTable(result *m.Result) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Total", "Pass", "Fail", "Error", "Unclassified"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, suite := range result.Suites() {
		table.Append([]string{
			truncateName(suite.DisplayName()),
			fmt.Sprintf("%d", suite.Total()),
			fmt.Sprintf("%d", suite.Passed()),
			fmt.Sprintf("%d", suite.Failed()),
			fmt.Sprintf("%d", suite.Errored()),
			fmt.Sprintf("%d", suite.Unclassified()),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Suites %d", result.Len()),
		fmt.Sprintf("%d", result.Total()),
		fmt.Sprintf("%d", result.SuccessCount()),
		fmt.Sprintf("%d", result.FailureCount()),
		fmt.Sprintf("%d", result.ErrorCount()),
		fmt.Sprintf("%d", result.UnclassifiedCount()),
	})

	table.Render()

	return tableBuffer.String()
}

func truncateName(name string) string {
	return runewidth.Truncate(name, maxSuiteNameWidth, "…")
}

// statusLine colors the status summary green when nothing failed and red
// otherwise. The renderer is bound to w so plain writers get plain text.
func statusLine(w io.Writer, result *m.Result) string {
	renderer := lipgloss.NewRenderer(w)

	color := lipgloss.Color("2")
	if result.FailureCount() > 0 || result.ErrorCount() > 0 {
		color = lipgloss.Color("1")
	}

	style := renderer.NewStyle().Bold(true).Foreground(color)

	return style.Render("Status: " + render.StatusSummary(result, render.English))
}
