// Package model defines the report data structures: cases, suites and results.
package model

import "time"

// Path represents a file system path.
type Path string

// Format identifies the encoding of an input file.
type Format string

const (
	// FormatDocument is a native result document (YAML or JSON).
	FormatDocument Format = "document"
	// FormatJUnit is a JUnit XML report.
	FormatJUnit Format = "junit"
	// FormatGoTest is a `go test -json` event stream.
	FormatGoTest Format = "gotest"
)

// Span is the wall-clock interval a set of results covers.
// A zero Start or Stop means the bound is unknown.
type Span struct {
	Start time.Time
	Stop  time.Time
}

// Merge widens s to cover other and returns the result.
func (s Span) Merge(other Span) Span {
	if !other.Start.IsZero() && (s.Start.IsZero() || other.Start.Before(s.Start)) {
		s.Start = other.Start
	}

	if !other.Stop.IsZero() && (s.Stop.IsZero() || other.Stop.After(s.Stop)) {
		s.Stop = other.Stop
	}

	return s
}

// Complete reports whether both bounds are known.
func (s Span) Complete() bool {
	return !s.Start.IsZero() && !s.Stop.IsZero()
}

// Input is a file selected for loading. Discovered inputs were found by a
// directory scan or a glob rather than named on the command line.
type Input struct {
	Path       Path
	Discovered bool
}

// Source is the output of loading a single input file.
type Source struct {
	Path   Path
	Format Format
	Suites []*Suite
	Span   Span
}
