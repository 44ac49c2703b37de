package adapter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	m "testreport.dev/pkg/testreport/internal/model"
)

// goTestEvent is one line of `go test -json` output.
type goTestEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

type goTestState struct {
	name   string
	action string
	output []string
}

type goTestPackage struct {
	name      string
	action    string
	output    []string
	tests     map[string]*goTestState
	testOrder []string
}

func (p *goTestPackage) test(name string) *goTestState {
	if ts, ok := p.tests[name]; ok {
		return ts
	}

	ts := &goTestState{name: name}
	p.tests[name] = ts
	p.testOrder = append(p.testOrder, name)

	return ts
}

// goTestAggregator folds events into per-package test states, keeping the
// order in which packages and tests were first seen.
type goTestAggregator struct {
	packages map[string]*goTestPackage
	order    []string
	span     m.Span
}

func (a *goTestAggregator) pkg(name string) *goTestPackage {
	if pkg, ok := a.packages[name]; ok {
		return pkg
	}

	pkg := &goTestPackage{name: name, tests: make(map[string]*goTestState)}
	a.packages[name] = pkg
	a.order = append(a.order, name)

	return pkg
}

func (a *goTestAggregator) process(e goTestEvent) {
	if !e.Time.IsZero() {
		a.span = a.span.Merge(m.Span{Start: e.Time, Stop: e.Time})
	}

	pkg := a.pkg(e.Package)

	if e.Action == "output" {
		line := strings.TrimRight(e.Output, "\n")
		if line == "" {
			return
		}

		if e.Test == "" {
			pkg.output = append(pkg.output, line)
		} else {
			ts := pkg.test(e.Test)
			ts.output = append(ts.output, line)
		}

		return
	}

	switch e.Action {
	case "run", "pass", "fail", "skip":
	default:
		return
	}

	if e.Test == "" {
		if e.Action != "run" {
			pkg.action = e.Action
		}

		return
	}

	ts := pkg.test(e.Test)
	ts.action = e.Action
}

type goTestDecoder struct{}

func (goTestDecoder) decode(data []byte, _ m.Path) (m.Source, error) {
	agg := &goTestAggregator{packages: make(map[string]*goTestPackage)}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var events int

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var event goTestEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return m.Source{}, fmt.Errorf("parse event %d: %w", events+1, err)
		}

		agg.process(event)
		events++
	}

	if err := scanner.Err(); err != nil {
		return m.Source{}, fmt.Errorf("scan test events: %w", err)
	}

	if events == 0 {
		return m.Source{}, errors.New("no test events")
	}

	source := m.Source{Span: agg.span}

	for _, name := range agg.order {
		if suite := agg.packages[name].suite(); suite != nil {
			source.Suites = append(source.Suites, suite)
		}
	}

	return source, nil
}

// suite converts a package into a suite. Tests that started but never
// reported an outcome are errors. A failed package without failing tests
// (build failure, panic in init, timeout) becomes an error case named after
// the package.
func (p *goTestPackage) suite() *m.Suite {
	name := p.name
	if name == "" {
		name = "go test"
	}

	suite := m.NewSuite(name)

	var failedTests int

	for _, testName := range p.testOrder {
		ts := p.tests[testName]
		c := m.NewCase(ts.name)

		switch ts.action {
		case "pass":
			c.SetStatus(m.StatusSuccess)
		case "fail":
			c.SetStatus(m.StatusFailure)
			failedTests++
		case "skip":
			c.SetDetail(joinNonEmpty("skipped", strings.Join(ts.output, "\n")))
		default:
			c.SetStatus(m.StatusError)
			c.SetDetail(joinNonEmpty("no result reported", strings.Join(ts.output, "\n")))
		}

		if c.Detail == "" && c.Status != m.StatusSuccess {
			c.SetDetail(strings.Join(ts.output, "\n"))
		}

		suite.AddCase(c)
	}

	if p.action == "fail" && failedTests == 0 {
		c := m.NewCase(name)
		c.SetStatus(m.StatusError)
		c.SetDetail(strings.Join(p.output, "\n"))
		suite.AddCase(c)
	}

	if suite.Len() == 0 {
		return nil
	}

	return suite
}
