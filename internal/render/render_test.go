package render

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "testreport.dev/pkg/testreport/internal/model"
)

func newCase(name string, status m.Status, detail string) m.Case {
	c := m.NewCase(name)
	c.SetStatus(status)
	c.SetDetail(detail)

	return c
}

func testMeta() Meta {
	start := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	return Meta{
		Title:       "Nightly",
		Description: "regression run",
		Generator:   "testreport test",
		Start:       start,
		Stop:        start.Add(90 * time.Second),
	}
}

func scenarioResult() *m.Result {
	suite := m.NewSuite("S1")
	suite.AddCase(newCase("first", m.StatusSuccess, "ok"))
	suite.AddCase(newCase("second", m.StatusSuccess, "ok"))
	suite.AddCase(newCase("third", m.StatusFailure, "expected 1 got 2"))

	result := m.NewResult()
	result.AddSuite(suite)

	return result
}

var rowIDPattern = regexp.MustCompile(`<tr id='([pf]t[0-9]+\.[0-9]+)'`)

func TestDisplayTag(t *testing.T) {
	success := m.Case{Status: m.StatusSuccess, ID: 2}
	failure := m.Case{Status: m.StatusFailure, ID: 5}
	errored := m.Case{Status: m.StatusError, ID: 1}
	unknown := m.Case{Status: m.StatusUnknown, ID: 4}

	assert.Equal(t, "pt3.2", DisplayTag(3, success))
	assert.Equal(t, "ft1.5", DisplayTag(1, failure))
	assert.Equal(t, "ft2.1", DisplayTag(2, errored))
	assert.Equal(t, "ft7.4", DisplayTag(7, unknown))
}

func TestStatusSummary(t *testing.T) {
	suite := m.NewSuite("s")
	suite.AddCase(newCase("a", m.StatusSuccess, ""))
	suite.AddCase(newCase("b", m.StatusSuccess, ""))
	suite.AddCase(newCase("c", m.StatusError, ""))

	result := m.NewResult()
	result.AddSuite(suite)

	summary := StatusSummary(result, English)
	assert.Equal(t, "passed 2 errored 1", summary)
	assert.NotContains(t, summary, "failed")

	assert.Equal(t, "none", StatusSummary(m.NewResult(), English))
	assert.Equal(t, "none", StatusSummary(m.NewResult(), Chinese))
}

func TestStatusSummary_Unclassified(t *testing.T) {
	suite := m.NewSuite("s")
	suite.AddCase(m.NewCase("pending"))

	result := m.NewResult()
	result.AddSuite(suite)

	assert.Equal(t, "unclassified 1", StatusSummary(result, English))
}

func TestSuiteClass(t *testing.T) {
	tests := []struct {
		name     string
		statuses []m.Status
		want     string
	}{
		{"empty", nil, "passClass"},
		{"all pass", []m.Status{m.StatusSuccess}, "passClass"},
		{"failure", []m.Status{m.StatusSuccess, m.StatusFailure}, "failClass"},
		{"error wins", []m.Status{m.StatusFailure, m.StatusError}, "errorClass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suite := m.NewSuite(tt.name)
			for _, status := range tt.statuses {
				suite.AddCase(newCase("c", status, ""))
			}

			assert.Equal(t, tt.want, SuiteClass(suite))
		})
	}
}

func TestCaseClass(t *testing.T) {
	assert.Equal(t, "none", CaseClass(m.StatusSuccess))
	assert.Equal(t, "failCase", CaseClass(m.StatusFailure))
	assert.Equal(t, "errorCase", CaseClass(m.StatusError))
	assert.Equal(t, "unknownCase", CaseClass(m.StatusUnknown))
}

func TestRender_EndToEndScenario(t *testing.T) {
	doc, err := New(English).Render(scenarioResult(), testMeta())
	require.NoError(t, err)

	assert.Contains(t, doc, "<tr class='failClass'>")
	assert.Contains(t, doc, "javascript:showClassDetail('c1',3)")

	summaryRow := regexp.MustCompile(`<tr class='failClass'>\s*<td>S1</td>\s*<td>3</td>\s*<td>2</td>\s*<td>1</td>\s*<td>0</td>`)
	assert.Regexp(t, summaryRow, doc)

	var tags []string
	for _, match := range rowIDPattern.FindAllStringSubmatch(doc, -1) {
		tags = append(tags, match[1])
	}

	assert.Equal(t, []string{"pt1.1", "pt1.2", "ft1.3"}, tags)
	assert.Contains(t, doc, "<pre>ft1.3: expected 1 got 2</pre>")
	assert.Contains(t, doc, "<td class='failCase'><div class='testcase'>third</div></td>")
}

func TestRender_ReturnsCompleteDocument(t *testing.T) {
	doc, err := New(English).Render(scenarioResult(), testMeta())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</html>"))
	assert.Equal(t, 1, strings.Count(doc, "<html"))
	assert.Contains(t, doc, "<div id='ending'>&nbsp;</div>")
}

func TestRender_HeadingAttributes(t *testing.T) {
	doc, err := New(English).Render(scenarioResult(), testMeta())
	require.NoError(t, err)

	assert.Contains(t, doc, "<title>Nightly</title>")
	assert.Contains(t, doc, `<meta name="generator" content="testreport test"/>`)
	assert.Contains(t, doc, "<strong>Start Time:</strong> 2024-03-01 09:30:00")
	assert.Contains(t, doc, "<strong>Duration:</strong> 1m30s")
	assert.Contains(t, doc, "<strong>Status:</strong> passed 2 failed 1")
	assert.Contains(t, doc, "<p class='description'>regression run</p>")
	assert.NotContains(t, doc, "Run ID")
}

func TestRender_RunIDAttribute(t *testing.T) {
	meta := testMeta()
	meta.RunID = "4f1c"

	doc, err := New(English).Render(scenarioResult(), meta)
	require.NoError(t, err)

	assert.Contains(t, doc, "<strong>Run ID:</strong> 4f1c")
}

func TestRender_Defaults(t *testing.T) {
	doc, err := New(English).Render(m.NewResult(), Meta{})
	require.NoError(t, err)

	assert.Contains(t, doc, "<title>Unit Test Report</title>")
	assert.Contains(t, doc, `content="testreport"`)
	assert.Contains(t, doc, "<strong>Status:</strong> none")
	assert.Contains(t, doc, "<strong>Duration:</strong> 0s")
}

func TestRender_NegativeDurationIsClamped(t *testing.T) {
	meta := testMeta()
	meta.Stop = meta.Start.Add(-time.Minute)

	attrs := New(English).Attributes(m.NewResult(), meta)
	require.Len(t, attrs, 3)
	assert.Equal(t, "0s", attrs[1].Value)
}

func TestRender_IsDeterministic(t *testing.T) {
	renderer := New(English)
	result := scenarioResult()

	first, err := renderer.Render(result, testMeta())
	require.NoError(t, err)

	second, err := renderer.Render(result, testMeta())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_EscapesFreeText(t *testing.T) {
	suite := m.NewSuite("<suite & co>")
	c := newCase("<b>name</b>", m.StatusError, "panic: <nil> && x > y")
	c.SetDescription("a < b & c > d")
	suite.AddCase(c)

	result := m.NewResult()
	result.AddSuite(suite)

	meta := testMeta()
	meta.Title = "<script>alert(1)</script>"
	meta.Description = "R&D"

	doc, err := New(English).Render(result, meta)
	require.NoError(t, err)

	assert.Contains(t, doc, "<pre>ft1.1: panic: &lt;nil&gt; &amp;&amp; x &gt; y</pre>")
	assert.Contains(t, doc, "<div class='testcase'>a &lt; b &amp; c &gt; d</div>")
	assert.Contains(t, doc, "<td>&lt;suite &amp; co&gt;</td>")
	assert.Contains(t, doc, "<title>&lt;script&gt;alert(1)&lt;/script&gt;</title>")
	assert.Contains(t, doc, "<p class='description'>R&amp;D</p>")

	for _, raw := range []string{"<nil>", "<suite & co>", "a < b", "<script>alert(1)", "R&D"} {
		assert.NotContains(t, doc, raw)
	}
}

func TestRender_SuitesAreRenumberedByPosition(t *testing.T) {
	result := m.NewResult()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		suite := m.NewSuite(name)
		suite.AddCase(newCase(name, m.StatusSuccess, ""))
		result.AddSuite(suite)
	}

	doc, err := New(English).Render(result, testMeta())
	require.NoError(t, err)

	for i, ref := range []string{"c1", "c2", "c3"} {
		assert.Contains(t, doc, "showClassDetail('"+ref+"',1)")
		assert.Contains(t, doc, "<tr id='pt"+string(rune('1'+i))+".1'")
	}
}

func TestRender_UnknownCasesRenderAsFourthCategory(t *testing.T) {
	suite := m.NewSuite("s")
	suite.AddCase(newCase("ok", m.StatusSuccess, ""))
	suite.AddCase(m.NewCase("pending"))

	result := m.NewResult()
	result.AddSuite(suite)

	doc, err := New(English).Render(result, testMeta())
	require.NoError(t, err)

	assert.Contains(t, doc, "showClassDetail('c1',2)")
	assert.Contains(t, doc, "<tr id='ft1.2' class='hiddenRow'>")
	assert.Contains(t, doc, "<td class='unknownCase'>")
	assert.Regexp(t, `<tr class='passClass'>\s*<td>s</td>\s*<td>1</td>`, doc)
}

func TestRender_ChartUsesGlobalCounts(t *testing.T) {
	doc, err := New(English).Render(scenarioResult(), testMeta())
	require.NoError(t, err)

	assert.Contains(t, doc, "{value: 2, name: 'pass'}")
	assert.Contains(t, doc, "{value: 1, name: 'fail'}")
	assert.Contains(t, doc, "{value: 0, name: 'error'}")
}

func TestRender_TotalRow(t *testing.T) {
	doc, err := New(English).Render(scenarioResult(), testMeta())
	require.NoError(t, err)

	assert.Regexp(t, `<tr id='total_row'>\s*<td>Total</td>\s*<td>3</td>\s*<td>2</td>\s*<td>1</td>\s*<td>0</td>`, doc)
	assert.Equal(t, 1, strings.Count(doc, "<div id='ending'>"))
}
