package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "testreport.dev/pkg/testreport/internal/model"
)

func press(t *testing.T, model tea.Model, keys ...tea.KeyMsg) browserModel {
	t.Helper()

	for _, k := range keys {
		model, _ = model.Update(k)
	}

	bm, ok := model.(browserModel)
	require.True(t, ok)

	return bm
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowserModel_InitialView(t *testing.T) {
	bm := newBrowserModel("Nightly", sampleResult())

	assert.Nil(t, bm.Init())

	view := bm.View()
	assert.Contains(t, view, "Nightly")
	assert.Contains(t, view, "Status: passed 2 failed 1 unclassified 1")
	assert.Contains(t, view, "▸ Parser behaviour")
	assert.Contains(t, view, "▸ lexer")
	assert.NotContains(t, view, "TestEmpty")
}

func TestBrowserModel_DefaultTitle(t *testing.T) {
	bm := newBrowserModel("", sampleResult())

	assert.Contains(t, bm.View(), "Unit Test Report")
}

func TestBrowserModel_ExpandSuiteAndShowDetail(t *testing.T) {
	bm := press(t, newBrowserModel("", sampleResult()), keyEnter)

	view := bm.View()
	assert.Contains(t, view, "▾ Parser behaviour")
	assert.Contains(t, view, "pt1.1")
	assert.Contains(t, view, "ft1.2")
	assert.NotContains(t, view, "expected 2")

	bm = press(t, bm, keyDown, keyDown, keyEnter)
	assert.Equal(t, 2, bm.cursor)

	view = bm.View()
	assert.Contains(t, view, "expected 2")
	assert.Contains(t, view, "got 3")

	bm = press(t, bm, keyEnter)
	assert.NotContains(t, bm.View(), "expected 2")
}

func TestBrowserModel_CursorBounds(t *testing.T) {
	bm := press(t, newBrowserModel("", sampleResult()), keyUp, keyUp)
	assert.Equal(t, 0, bm.cursor)

	bm = press(t, bm, keyDown, keyDown, keyDown, runeKey('j'))
	assert.Equal(t, 1, bm.cursor, "two collapsed suites give two lines")

	bm = press(t, bm, runeKey('k'))
	assert.Equal(t, 0, bm.cursor)
}

func TestBrowserModel_OpenFailures(t *testing.T) {
	bm := press(t, newBrowserModel("", sampleResult()), runeKey('f'))

	assert.True(t, bm.expanded[0])
	assert.False(t, bm.expanded[1])
	assert.Len(t, bm.lines(), 4)
}

func TestBrowserModel_SecondSuiteTags(t *testing.T) {
	bm := press(t, newBrowserModel("", sampleResult()), keyDown, keyEnter)

	view := bm.View()
	assert.Contains(t, view, "pt2.1")
	assert.Contains(t, view, "ft2.2")
	assert.Contains(t, view, "unknown")
}

func TestBrowserModel_Quit(t *testing.T) {
	model, cmd := newBrowserModel("", sampleResult()).Update(runeKey('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, model.View())
}

func TestBrowserModel_ScrollsWithCursor(t *testing.T) {
	result := m.NewResult()

	for i := range 20 {
		suite := m.NewSuite(strings.Repeat("s", i+1))
		c := m.NewCase("TestCase")
		c.SetStatus(m.StatusSuccess)
		suite.AddCase(c)
		result.AddSuite(suite)
	}

	model, _ := newBrowserModel("", result).Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	keys := make([]tea.KeyMsg, 12)
	for i := range keys {
		keys[i] = keyDown
	}

	bm := press(t, model, keys...)
	assert.Equal(t, 12, bm.cursor)
	assert.Equal(t, 12-bm.visibleRows()+1, bm.offset)

	view := bm.View()
	assert.NotContains(t, view, "▸ "+strings.Repeat("s", 8)+"  ")
	assert.Contains(t, view, "▸ "+strings.Repeat("s", 13)+"  ")
}

func TestBrowserModel_HelpToggle(t *testing.T) {
	bm := newBrowserModel("", sampleResult())
	assert.NotContains(t, bm.View(), "open failures")

	bm = press(t, bm, runeKey('?'))
	assert.Contains(t, bm.View(), "open failures")
}

func TestTUI_SummaryModePrintsTable(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(strings.NewReader(""), &out)
	require.NoError(t, ui.Start(context.Background(), WithSummaryMode()))
	require.NoError(t, ui.DisplayResult(context.Background(), sampleResult(), m.Span{}))

	ui.Wait(context.Background())
	ui.Close(context.Background())

	assert.Contains(t, out.String(), "TOTAL SUITES 2")
}

func TestTUI_DisplayReportWritten(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(strings.NewReader(""), &out)
	ui.DisplayReportWritten(context.Background(), "report.html", sampleResult())

	assert.Contains(t, out.String(), "Report written to report.html")
}
