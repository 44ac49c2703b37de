package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "testreport.dev/pkg/testreport/internal/model"
)

// ErrNoMatches is returned when a pattern matches no input files.
var ErrNoMatches = errors.New("no input files match")

// directoryPattern selects result files when an input argument is a directory.
const directoryPattern = "**/*.{xml,json,jsonl,ndjson,yaml,yml}"

// InputResolver expands input arguments into a list of result files.
type InputResolver interface {
	// Resolve expands patterns (plain files, directories or doublestar globs)
	// and drops every path matching one of the exclude globs. The result keeps
	// argument order, is sorted within each argument and has no duplicates.
	// Files reached through a directory or a glob are marked Discovered; a
	// file that is also named directly is not.
	Resolve(patterns []string, exclude []string) ([]m.Input, error)
}

// LocalInputResolver resolves patterns against the local filesystem.
type LocalInputResolver struct{}

// NewLocalInputResolver constructs a LocalInputResolver.
func NewLocalInputResolver() *LocalInputResolver {
	return &LocalInputResolver{}
}

// Resolve implements InputResolver.
func (r *LocalInputResolver) Resolve(patterns []string, exclude []string) ([]m.Input, error) {
	for _, ex := range exclude {
		if !doublestar.ValidatePathPattern(ex) {
			return nil, fmt.Errorf("invalid exclude pattern %q", ex)
		}
	}

	index := make(map[string]int)

	var inputs []m.Input

	for _, pattern := range patterns {
		matches, discovered, err := r.expand(pattern)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
		}

		sort.Strings(matches)

		for _, match := range matches {
			clean := filepath.Clean(match)
			if i, ok := index[clean]; ok {
				inputs[i].Discovered = inputs[i].Discovered && discovered
				continue
			}

			if isExcluded(clean, exclude) {
				continue
			}

			index[clean] = len(inputs)
			inputs = append(inputs, m.Input{Path: m.Path(clean), Discovered: discovered})
		}
	}

	slog.Debug("resolved inputs", "patterns", patterns, "files", len(inputs))

	return inputs, nil
}

// expand lists the files a pattern selects. discovered is false only for a
// pattern naming a single file.
func (r *LocalInputResolver) expand(pattern string) (matches []string, discovered bool, err error) {
	if !hasGlobMeta(pattern) {
		info, err := os.Stat(pattern)
		if err != nil {
			return nil, false, fmt.Errorf("stat input %s: %w", pattern, err)
		}

		if !info.IsDir() {
			return []string{pattern}, false, nil
		}

		found, err := doublestar.Glob(os.DirFS(pattern), directoryPattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, true, fmt.Errorf("scan directory %s: %w", pattern, err)
		}

		out := make([]string, 0, len(found))
		for _, match := range found {
			out = append(out, filepath.Join(pattern, filepath.FromSlash(match)))
		}

		return out, true, nil
	}

	found, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, true, fmt.Errorf("expand pattern %s: %w", pattern, err)
	}

	return found, true, nil
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func isExcluded(path string, exclude []string) bool {
	slashed := strings.TrimPrefix(filepath.ToSlash(path), "/")

	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(strings.TrimPrefix(pattern, "/"), slashed); ok {
			return true
		}

		if ok, _ := doublestar.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}

	return false
}
