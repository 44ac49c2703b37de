package adapter

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	m "testreport.dev/pkg/testreport/internal/model"
)

// junitSuites is the <testsuites> root element.
type junitSuites struct {
	Suites []junitSuite `xml:"testsuite"`
}

// junitSuite is a <testsuite> element; suites may nest.
type junitSuite struct {
	Name      string       `xml:"name,attr"`
	Timestamp string       `xml:"timestamp,attr"`
	Time      string       `xml:"time,attr"`
	Cases     []junitCase  `xml:"testcase"`
	Suites    []junitSuite `xml:"testsuite"`
}

// junitCase is a <testcase> element.
type junitCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *junitProblem `xml:"failure"`
	Error     *junitProblem `xml:"error"`
	Skipped   *junitProblem `xml:"skipped"`
	SystemOut string        `xml:"system-out"`
	SystemErr string        `xml:"system-err"`
}

// junitProblem carries the message and body of <failure>, <error> or <skipped>.
type junitProblem struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

var junitTimestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type junitDecoder struct{}

func (junitDecoder) decode(data []byte, _ m.Path) (m.Source, error) {
	root, err := junitRoot(data)
	if err != nil {
		return m.Source{}, err
	}

	var suites []junitSuite

	switch root.Name.Local {
	case "testsuites":
		var doc junitSuites
		if err := xml.Unmarshal(data, &doc); err != nil {
			return m.Source{}, fmt.Errorf("parse testsuites: %w", err)
		}

		suites = doc.Suites
	case "testsuite":
		var single junitSuite
		if err := xml.Unmarshal(data, &single); err != nil {
			return m.Source{}, fmt.Errorf("parse testsuite: %w", err)
		}

		suites = []junitSuite{single}
	default:
		return m.Source{}, fmt.Errorf("%w: unexpected root element <%s>", ErrNotReport, root.Name.Local)
	}

	var source m.Source
	for _, js := range suites {
		appendJUnitSuite(&source, js, "")
	}

	return source, nil
}

func junitRoot(data []byte) (xml.StartElement, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, errors.New("empty XML document")
		}

		if err != nil {
			return xml.StartElement{}, fmt.Errorf("parse XML: %w", err)
		}

		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// appendJUnitSuite flattens nested suites depth-first. Nested suite names are
// joined with "/".
func appendJUnitSuite(source *m.Source, js junitSuite, parent string) {
	name := js.Name
	if parent != "" {
		name = parent + "/" + name
	}

	if name == "" {
		name = "testsuite"
	}

	source.Span = source.Span.Merge(junitSpan(js))

	if len(js.Cases) > 0 {
		suite := m.NewSuite(name)
		for _, jc := range js.Cases {
			suite.AddCase(jc.toCase())
		}

		source.Suites = append(source.Suites, suite)
	}

	for _, child := range js.Suites {
		appendJUnitSuite(source, child, name)
	}
}

func junitSpan(js junitSuite) m.Span {
	if js.Timestamp == "" {
		return m.Span{}
	}

	var start time.Time

	for _, layout := range junitTimestampLayouts {
		parsed, err := time.Parse(layout, js.Timestamp)
		if err == nil {
			start = parsed
			break
		}
	}

	if start.IsZero() {
		return m.Span{}
	}

	span := m.Span{Start: start}

	if seconds, err := strconv.ParseFloat(js.Time, 64); err == nil && seconds >= 0 {
		span.Stop = start.Add(time.Duration(seconds * float64(time.Second)))
	}

	return span
}

func (jc junitCase) toCase() m.Case {
	c := m.NewCase(jc.Name)
	if jc.Classname != "" {
		c.SetDescription(jc.Classname + "." + jc.Name)
	}

	var problem *junitProblem

	switch {
	case jc.Error != nil:
		c.SetStatus(m.StatusError)
		problem = jc.Error
	case jc.Failure != nil:
		c.SetStatus(m.StatusFailure)
		problem = jc.Failure
	case jc.Skipped != nil:
		problem = jc.Skipped
	default:
		c.SetStatus(m.StatusSuccess)
	}

	c.SetDetail(joinNonEmpty(problem.text(), jc.SystemOut, jc.SystemErr))

	return c
}

func (p *junitProblem) text() string {
	if p == nil {
		return ""
	}

	return joinNonEmpty(p.Message, p.Contents)
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}

	return strings.Join(kept, "\n")
}
