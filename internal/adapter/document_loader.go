package adapter

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	m "testreport.dev/pkg/testreport/internal/model"
)

// documentFile is the native result format. JSON documents use the same
// field names, since JSON is read through the YAML decoder.
//
//	start: 2024-03-01T09:30:00Z
//	stop: 2024-03-01T09:31:30Z
//	suites:
//	  - name: parser
//	    description: Parser behaviour
//	    cases:
//	      - name: TestEmpty
//	        status: success
//	      - name: TestNested
//	        status: failure
//	        detail: |
//	          expected 2 got 3
type documentFile struct {
	Start  string          `yaml:"start"`
	Stop   string          `yaml:"stop"`
	Suites []documentSuite `yaml:"suites"`
}

type documentSuite struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Cases       []documentCase `yaml:"cases"`
}

type documentCase struct {
	Name        string `yaml:"name"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
	Detail      string `yaml:"detail"`
}

type documentDecoder struct{}

func (documentDecoder) decode(data []byte, _ m.Path) (m.Source, error) {
	var top map[string]any
	if err := yaml.Unmarshal(data, &top); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return m.Source{}, fmt.Errorf("%w: top level is not a mapping", ErrNotReport)
		}

		return m.Source{}, fmt.Errorf("parse document: %w", err)
	}

	if _, ok := top["suites"]; !ok {
		return m.Source{}, fmt.Errorf("%w: no suites key", ErrNotReport)
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Source{}, fmt.Errorf("parse document: %w", err)
	}

	var (
		source m.Source
		err    error
	)

	if source.Span.Start, err = parseDocumentTime(doc.Start); err != nil {
		return m.Source{}, fmt.Errorf("start: %w", err)
	}

	if source.Span.Stop, err = parseDocumentTime(doc.Stop); err != nil {
		return m.Source{}, fmt.Errorf("stop: %w", err)
	}

	for i, ds := range doc.Suites {
		if ds.Name == "" {
			return m.Source{}, fmt.Errorf("suite #%d has no name", i+1)
		}

		suite := m.NewSuite(ds.Name)
		suite.SetDescription(ds.Description)

		for j, dc := range ds.Cases {
			c, err := dc.toCase()
			if err != nil {
				return m.Source{}, fmt.Errorf("suite %s case #%d: %w", ds.Name, j+1, err)
			}

			suite.AddCase(c)
		}

		source.Suites = append(source.Suites, suite)
	}

	return source, nil
}

func (dc documentCase) toCase() (m.Case, error) {
	if dc.Name == "" {
		return m.Case{}, fmt.Errorf("case has no name")
	}

	status, err := m.ParseStatus(dc.Status)
	if err != nil {
		return m.Case{}, err
	}

	c := m.NewCase(dc.Name)
	c.SetStatus(status)
	c.SetDescription(dc.Description)
	c.SetDetail(dc.Detail)

	return c, nil
}

func parseDocumentTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, value)
}
