// Package render turns a model.Result into a self-contained HTML report.
//
// Rendering is a pure function of its inputs: the same Result and Meta always
// produce the same bytes. Every piece of free text passes through escape
// while the row views are built, before any template sees it.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	m "testreport.dev/pkg/testreport/internal/model"
)

const (
	// DefaultTitle is used when Meta.Title is empty.
	DefaultTitle = "Unit Test Report"
	// DefaultGenerator is used when Meta.Generator is empty.
	DefaultGenerator = "testreport"

	startTimeLayout = "2006-01-02 15:04:05"
	noneSummary     = "none"
)

// Meta is the presentation data rendered around a Result.
type Meta struct {
	Title       string
	Description string
	Generator   string
	RunID       string
	Start       time.Time
	Stop        time.Time
}

// Attribute is a name/value pair shown in the report heading.
type Attribute struct {
	Name  string
	Value string
}

// Renderer renders results with a fixed label set.
type Renderer struct {
	labels Labels
}

// New creates a Renderer that uses labels for all fixed text.
func New(labels Labels) *Renderer {
	return &Renderer{labels: labels}
}

// Render returns the complete report document for result.
func (r *Renderer) Render(result *m.Result, meta Meta) (string, error) {
	title := meta.Title
	if title == "" {
		title = DefaultTitle
	}

	generator := meta.Generator
	if generator == "" {
		generator = DefaultGenerator
	}

	heading, err := r.heading(title, meta.Description, r.Attributes(result, meta))
	if err != nil {
		return "", err
	}

	report, err := r.report(result)
	if err != nil {
		return "", err
	}

	chart, err := r.chart(result)
	if err != nil {
		return "", err
	}

	document, err := execute("document", documentView{
		Title:      escape(title),
		Generator:  escape(generator),
		Stylesheet: markup(stylesheet),
		Heading:    heading,
		Report:     report,
		Ending:     markup(endingMarkup),
		Chart:      chart,
	})
	if err != nil {
		return "", err
	}

	return string(document), nil
}

// Attributes returns the heading attributes: start time, duration, status
// summary and, when present, the run id.
func (r *Renderer) Attributes(result *m.Result, meta Meta) []Attribute {
	duration := meta.Stop.Sub(meta.Start)
	if duration < 0 {
		duration = 0
	}

	attrs := []Attribute{
		{Name: r.labels.StartTime, Value: meta.Start.Format(startTimeLayout)},
		{Name: r.labels.Duration, Value: duration.String()},
		{Name: r.labels.Status, Value: StatusSummary(result, r.labels)},
	}

	if meta.RunID != "" {
		attrs = append(attrs, Attribute{Name: r.labels.RunID, Value: meta.RunID})
	}

	return attrs
}

// StatusSummary joins the non-zero counts of result, e.g. "passed 2 errored 1".
// It returns "none" when every count is zero.
func StatusSummary(result *m.Result, labels Labels) string {
	parts := make([]string, 0, 4)

	for _, part := range []struct {
		label string
		count int
	}{
		{labels.Passed, result.SuccessCount()},
		{labels.Failed, result.FailureCount()},
		{labels.Errored, result.ErrorCount()},
		{labels.Unclassified, result.UnclassifiedCount()},
	} {
		if part.count > 0 {
			parts = append(parts, part.label+" "+strconv.Itoa(part.count))
		}
	}

	if len(parts) == 0 {
		return noneSummary
	}

	return strings.Join(parts, " ")
}

// DisplayTag returns the row id of a case: "pt{suite}.{case}" for passing
// cases and "ft{suite}.{case}" for everything else.
func DisplayTag(suiteID int, c m.Case) string {
	prefix := "ft"
	if c.Status.Passed() {
		prefix = "pt"
	}

	return fmt.Sprintf("%s%d.%d", prefix, suiteID, c.ID)
}

// SuiteClass returns the CSS class of a suite summary row.
func SuiteClass(s *m.Suite) string {
	switch {
	case s.Errored() > 0:
		return "errorClass"
	case s.Failed() > 0:
		return "failClass"
	default:
		return "passClass"
	}
}

// CaseClass returns the CSS class of a case detail cell.
func CaseClass(status m.Status) string {
	switch status {
	case m.StatusSuccess:
		return "none"
	case m.StatusFailure:
		return "failCase"
	case m.StatusError:
		return "errorCase"
	default:
		return "unknownCase"
	}
}

func (r *Renderer) heading(title, description string, attrs []Attribute) (markup, error) {
	view := headingView{
		Title:       escape(title),
		Description: escape(description),
		Attributes:  make([]attributeView, 0, len(attrs)),
	}

	for _, attr := range attrs {
		view.Attributes = append(view.Attributes, attributeView{
			Name:  escape(attr.Name),
			Value: escape(attr.Value),
		})
	}

	return execute("heading", view)
}

func (r *Renderer) report(result *m.Result) (markup, error) {
	view := reportView{
		Labels: r.labelView(),
		Total:  result.Total(),
		Pass:   result.SuccessCount(),
		Fail:   result.FailureCount(),
		Error:  result.ErrorCount(),
	}

	// Suites are numbered by display position, independent of the ids the
	// Result handed out.
	for i, suite := range result.Suites() {
		view.Suites = append(view.Suites, r.suiteRow(i+1, suite))
	}

	return execute("report", view)
}

func (r *Renderer) suiteRow(displayID int, suite *m.Suite) suiteView {
	cases := suite.Cases()

	row := suiteView{
		Class: SuiteClass(suite),
		Text:  escape(suite.DisplayName()),
		Total: suite.Total(),
		Pass:  suite.Passed(),
		Fail:  suite.Failed(),
		Error: suite.Errored(),
		RefID: "c" + strconv.Itoa(displayID),
		Rows:  len(cases),
		Cases: make([]caseView, 0, len(cases)),
	}

	for _, c := range cases {
		row.Cases = append(row.Cases, r.caseRow(displayID, c))
	}

	return row
}

func (r *Renderer) caseRow(displayID int, c m.Case) caseView {
	tag := DisplayTag(displayID, c)

	return caseView{
		Tag:    tag,
		Class:  CaseClass(c.Status),
		Text:   escape(c.DisplayName()),
		Status: escape(r.labels.CaseStatus(c.Status)),
		Detail: escape(tag + ": " + c.Detail),
	}
}

func (r *Renderer) chart(result *m.Result) (markup, error) {
	return execute("chart", chartView{
		Title:     escape(r.labels.ChartTitle),
		Pass:      result.SuccessCount(),
		Fail:      result.FailureCount(),
		Error:     result.ErrorCount(),
		PassName:  escape(r.labels.CaseSuccess),
		FailName:  escape(r.labels.CaseFailure),
		ErrorName: escape(r.labels.CaseError),
	})
}

func (r *Renderer) labelView() labelView {
	return labelView{
		ShowSummary: escape(r.labels.ShowSummary),
		ShowFailed:  escape(r.labels.ShowFailed),
		ShowAll:     escape(r.labels.ShowAll),
		ColumnName:  escape(r.labels.ColumnName),
		ColumnTotal: escape(r.labels.ColumnTotal),
		ColumnPass:  escape(r.labels.ColumnPass),
		ColumnFail:  escape(r.labels.ColumnFail),
		ColumnError: escape(r.labels.ColumnError),
		ColumnView:  escape(r.labels.ColumnView),
		TotalRow:    escape(r.labels.TotalRow),
		Detail:      escape(r.labels.Detail),
	}
}

func execute(name string, data any) (markup, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}

	return markup(b.String()), nil
}
