package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	m "testreport.dev/pkg/testreport/internal/model"
)

// ErrUnsupportedFormat is returned for input files no loader understands.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrNotReport is returned for a well-formed file that holds no test results,
// such as an XML file whose root is not testsuites or a YAML file without a
// suites key.
var ErrNotReport = errors.New("not a test report")

// ResultLoader turns one input file into suites.
type ResultLoader interface {
	Load(ctx context.Context, path m.Path) (m.Source, error)
}

// decoder parses a single format.
type decoder interface {
	decode(data []byte, path m.Path) (m.Source, error)
}

// LocalResultLoader reads input files through a ReportFSAdapter and picks a
// decoder from the file extension and, for JSON, the content.
type LocalResultLoader struct {
	fs       ReportFSAdapter
	decoders map[m.Format]decoder
}

// NewLocalResultLoader constructs a loader for documents, JUnit XML and
// `go test -json` streams.
func NewLocalResultLoader(fsAdapter ReportFSAdapter) *LocalResultLoader {
	return &LocalResultLoader{
		fs: fsAdapter,
		decoders: map[m.Format]decoder{
			m.FormatDocument: documentDecoder{},
			m.FormatJUnit:    junitDecoder{},
			m.FormatGoTest:   goTestDecoder{},
		},
	}
}

// Load implements ResultLoader.
func (l *LocalResultLoader) Load(ctx context.Context, path m.Path) (m.Source, error) {
	if err := ctx.Err(); err != nil {
		return m.Source{}, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return m.Source{}, fmt.Errorf("read %s: %w", path, err)
	}

	format, err := DetectFormat(path, data)
	if err != nil {
		return m.Source{}, err
	}

	source, err := l.decoders[format].decode(data, path)
	if errors.Is(err, ErrNotReport) {
		slog.Debug("input is not a test report", "path", path, "format", format, "reason", err)
		return m.Source{}, fmt.Errorf("decode %s input %s: %w", format, path, err)
	}

	if err != nil {
		slog.Error("failed to decode input", "path", path, "format", format, "error", err)
		return m.Source{}, fmt.Errorf("decode %s input %s: %w", format, path, err)
	}

	source.Path = path
	source.Format = format

	slog.Debug("loaded input", "path", path, "format", format, "suites", len(source.Suites))

	return source, nil
}

// DetectFormat classifies an input file. XML is JUnit, YAML is a result
// document, and JSON is a `go test -json` stream when its first line is a
// test event, otherwise a result document.
func DetectFormat(path m.Path, data []byte) (m.Format, error) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".xml":
		return m.FormatJUnit, nil
	case ".yaml", ".yml":
		return m.FormatDocument, nil
	case ".jsonl", ".ndjson":
		return m.FormatGoTest, nil
	case ".json":
		if looksLikeTestEvent(data) {
			return m.FormatGoTest, nil
		}

		return m.FormatDocument, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

func looksLikeTestEvent(data []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var head struct {
			Action *string `json:"Action"`
		}

		if err := json.Unmarshal(line, &head); err != nil {
			return false
		}

		return head.Action != nil
	}

	return false
}
