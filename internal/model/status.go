package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned when a status name cannot be parsed.
var ErrUnknownStatus = errors.New("unknown status")

// Status is the terminal classification of a test case.
type Status int

const (
	// StatusUnknown marks a case that was never classified.
	StatusUnknown Status = iota
	// StatusSuccess indicates the case passed.
	StatusSuccess
	// StatusFailure indicates an assertion failed.
	StatusFailure
	// StatusError indicates the case could not run to completion.
	StatusError
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusError:
		return "error"
	case StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Passed reports whether the case counts as passing.
func (s Status) Passed() bool {
	return s == StatusSuccess
}

// ParseStatus maps common spellings onto a Status.
func ParseStatus(value string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "success", "pass", "passed", "ok":
		return StatusSuccess, nil
	case "failure", "fail", "failed":
		return StatusFailure, nil
	case "error", "errored":
		return StatusError, nil
	case "unknown", "skip", "skipped", "":
		return StatusUnknown, nil
	}

	return StatusUnknown, fmt.Errorf("%w: %q", ErrUnknownStatus, value)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
