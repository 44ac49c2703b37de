// Package adapter contains the filesystem and input-format adapters behind the
// testreport workflow.
package adapter

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	m "testreport.dev/pkg/testreport/internal/model"
)

// ReportFSAdapter abstracts the filesystem operations used to load inputs and
// publish reports, so the workflow can be tested without touching the disk.
//
//nolint:interfacebloat // Emitting needs atomic writes, staging and renames.
type ReportFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// Open opens a file for streaming reads.
	Open(path m.Path) (io.ReadCloser, error)

	// WriteFileAtomic replaces path with content. Readers observe either the
	// old file or the complete new one.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// MkdirTemp creates a new empty directory inside dir.
	MkdirTemp(dir m.Path, pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath m.Path) error

	// CopyFS recursively copies every file of src into the directory dst.
	CopyFS(src fs.FS, dst m.Path) error

	// Abs returns the cleaned absolute form of path.
	Abs(path m.Path) (m.Path, error)
}

// LocalReportFSAdapter implements ReportFSAdapter on the local filesystem.
type LocalReportFSAdapter struct{}

// NewLocalReportFSAdapter constructs a LocalReportFSAdapter.
func NewLocalReportFSAdapter() *LocalReportFSAdapter {
	return &LocalReportFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalReportFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// Open opens path for reading.
func (a *LocalReportFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path comes from the resolved input list
	return os.Open(string(path))
}

// WriteFileAtomic writes content to a temporary file next to path and renames
// it into place.
func (a *LocalReportFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	target := string(path)

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+"-*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	committed = true

	slog.Debug("wrote file", "path", target, "bytes", len(content))

	return nil
}

// MkdirAll creates path and any missing parents.
func (a *LocalReportFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// MkdirTemp creates a uniquely named directory inside dir.
func (a *LocalReportFSAdapter) MkdirTemp(dir m.Path, pattern string) (m.Path, error) {
	tmpDir, err := os.MkdirTemp(string(dir), pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalReportFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// Rename moves oldPath to newPath.
func (a *LocalReportFSAdapter) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}

// CopyFS recursively copies a directory tree.
func (a *LocalReportFSAdapter) CopyFS(src fs.FS, dst m.Path) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		targetPath := filepath.Join(string(dst), filepath.FromSlash(path))

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0o750)
		}

		return a.copyFile(src, path, targetPath)
	})
}

// copyFile copies a single file.
func (a *LocalReportFSAdapter) copyFile(src fs.FS, name, dst string) error {
	sourceFile, err := src.Open(name)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is inside the staging directory we created
	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	if err := destFile.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	return nil
}

// Abs returns the cleaned absolute form of path.
func (a *LocalReportFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(filepath.Clean(abs)), nil
}
