package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	m "testreport.dev/pkg/testreport/internal/model"
	"testreport.dev/pkg/testreport/internal/render"
)

// TUI implements UI using Bubble Tea for interactive display.
// Only browse mode is interactive; other modes print like SimpleUI.
type TUI struct {
	input  io.Reader
	output io.Writer
	cfg    StartConfig

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output, cfg: newStartConfig()}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.cfg = newStartConfig(options...)

	return nil
}

// Close stops a running program and waits for it to exit.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the browser or ctx is done.
func (p *TUI) Wait(ctx context.Context) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayResult opens the browser in browse mode and prints the summary
// table otherwise.
func (p *TUI) DisplayResult(ctx context.Context, result *m.Result, span m.Span) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.cfg.mode != ModeBrowse {
		return writeSummary(p.output, p.cfg.title, result, span)
	}

	model := newBrowserModel(p.cfg.title, result)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
		tea.WithAltScreen(),
	)
	done := make(chan struct{})

	p.mu.Lock()
	p.program, p.done = program, done
	p.mu.Unlock()

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("browser exited", "error", err)
		}
	}()

	return nil
}

// DisplayReportWritten prints where the report went.
func (p *TUI) DisplayReportWritten(ctx context.Context, output m.Path, result *m.Result) {
	if err := ctx.Err(); err != nil {
		return
	}

	writeReportWritten(p.output, output, result)
}

type browserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Expand key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Expand},
		{k.Help, k.Quit},
	}
}

var defaultBrowserKeys = browserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open/close"),
	),
	Expand: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "open failures"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	detailStyle  = lipgloss.NewStyle().Faint(true)
)

// browserLine is one selectable row: a suite, or a case when caseIndex >= 0.
type browserLine struct {
	suite     int
	caseIndex int
}

type caseKey struct {
	suite     int
	caseIndex int
}

// browserModel is the Bubble Tea model behind `view`.
type browserModel struct {
	title    string
	status   string
	suites   []*m.Suite
	expanded map[int]bool
	details  map[caseKey]bool
	cursor   int
	offset   int
	width    int
	height   int
	keys     browserKeyMap
	help     help.Model
	quitting bool
}

func newBrowserModel(title string, result *m.Result) browserModel {
	return browserModel{
		title:    title,
		status:   render.StatusSummary(result, render.English),
		suites:   result.Suites(),
		expanded: make(map[int]bool),
		details:  make(map[caseKey]bool),
		keys:     defaultBrowserKeys,
		help:     help.New(),
	}
}

func (bm browserModel) Init() tea.Cmd {
	return nil
}

func (bm browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.help.Width = msg.Width
		bm.clampOffset()

		return bm, nil

	case tea.KeyMsg:
		return bm.handleKeyPress(msg)
	}

	return bm, nil
}

func (bm browserModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := bm.lines()

	switch {
	case key.Matches(msg, bm.keys.Quit):
		bm.quitting = true
		return bm, tea.Quit

	case key.Matches(msg, bm.keys.Up):
		if bm.cursor > 0 {
			bm.cursor--
		}

	case key.Matches(msg, bm.keys.Down):
		if bm.cursor < len(lines)-1 {
			bm.cursor++
		}

	case key.Matches(msg, bm.keys.Toggle):
		if bm.cursor < len(lines) {
			bm.toggle(lines[bm.cursor])
		}

	case key.Matches(msg, bm.keys.Expand):
		for i, suite := range bm.suites {
			if suite.Failed() > 0 || suite.Errored() > 0 {
				bm.expanded[i] = true
			}
		}

	case key.Matches(msg, bm.keys.Help):
		bm.help.ShowAll = !bm.help.ShowAll
	}

	bm.clampOffset()

	return bm, nil
}

// toggle opens or closes a suite, or shows the detail of a case.
func (bm *browserModel) toggle(line browserLine) {
	if line.caseIndex < 0 {
		bm.expanded[line.suite] = !bm.expanded[line.suite]
		return
	}

	k := caseKey{suite: line.suite, caseIndex: line.caseIndex}
	bm.details[k] = !bm.details[k]
}

func (bm browserModel) lines() []browserLine {
	var lines []browserLine

	for i, suite := range bm.suites {
		lines = append(lines, browserLine{suite: i, caseIndex: -1})

		if !bm.expanded[i] {
			continue
		}

		for j := range suite.Len() {
			lines = append(lines, browserLine{suite: i, caseIndex: j})
		}
	}

	return lines
}

// visibleRows is the number of list rows that fit between header and help.
func (bm browserModel) visibleRows() int {
	if bm.height <= 0 {
		return 0
	}

	const chrome = 5

	return max(bm.height-chrome, 1)
}

func (bm *browserModel) clampOffset() {
	rows := bm.visibleRows()
	if rows == 0 {
		bm.offset = 0
		return
	}

	if bm.cursor < bm.offset {
		bm.offset = bm.cursor
	}

	if bm.cursor >= bm.offset+rows {
		bm.offset = bm.cursor - rows + 1
	}
}

func (bm browserModel) View() string {
	if bm.quitting {
		return ""
	}

	var b strings.Builder

	title := bm.title
	if title == "" {
		title = render.DefaultTitle
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("Status: " + bm.status)
	b.WriteString("\n\n")

	lines := bm.lines()
	start, end := 0, len(lines)

	if rows := bm.visibleRows(); rows > 0 {
		start = bm.offset
		end = min(start+rows, len(lines))
	}

	for i := start; i < end; i++ {
		text := bm.lineText(lines[i])
		if i == bm.cursor {
			text = cursorStyle.Render(text)
		}

		b.WriteString(text)
		b.WriteString("\n")

		if lines[i].caseIndex >= 0 && bm.details[caseKey{suite: lines[i].suite, caseIndex: lines[i].caseIndex}] {
			b.WriteString(bm.detailText(lines[i]))
		}
	}

	b.WriteString("\n")
	b.WriteString(bm.help.View(bm.keys))

	return b.String()
}

func (bm browserModel) lineText(line browserLine) string {
	suite := bm.suites[line.suite]

	if line.caseIndex < 0 {
		marker := "▸"
		if bm.expanded[line.suite] {
			marker = "▾"
		}

		name := bm.fit(suite.DisplayName(), 6)
		counts := fmt.Sprintf("%d/%d/%d", suite.Passed(), suite.Failed(), suite.Errored())

		return fmt.Sprintf("%s %s  %s", marker, name, statusStyle(suiteStatus(suite)).Render(counts))
	}

	c := suite.Cases()[line.caseIndex]
	tag := render.DisplayTag(line.suite+1, c)
	label := statusStyle(c.Status).Render(render.English.CaseStatus(c.Status))

	return fmt.Sprintf("    %-8s %s  %s", tag, bm.fit(c.DisplayName(), 20), label)
}

func (bm browserModel) detailText(line browserLine) string {
	c := bm.suites[line.suite].Cases()[line.caseIndex]
	if c.Detail == "" {
		return detailStyle.Render("        (no detail)") + "\n"
	}

	var b strings.Builder

	for _, detailLine := range strings.Split(strings.TrimRight(c.Detail, "\n"), "\n") {
		b.WriteString(detailStyle.Render("        " + bm.fit(detailLine, 8)))
		b.WriteString("\n")
	}

	return b.String()
}

// fit truncates s so that it fits the terminal width minus reserved cells.
func (bm browserModel) fit(s string, reserved int) string {
	if bm.width <= reserved {
		return s
	}

	return runewidth.Truncate(s, bm.width-reserved, "…")
}

func suiteStatus(suite *m.Suite) m.Status {
	switch {
	case suite.Errored() > 0:
		return m.StatusError
	case suite.Failed() > 0:
		return m.StatusFailure
	case suite.Passed() > 0:
		return m.StatusSuccess
	default:
		return m.StatusUnknown
	}
}

func statusStyle(status m.Status) lipgloss.Style {
	switch status {
	case m.StatusSuccess:
		return passStyle
	case m.StatusFailure, m.StatusError:
		return failStyle
	default:
		return unknownStyle
	}
}
