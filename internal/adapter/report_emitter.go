package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"testreport.dev/pkg/testreport/internal/assets"
	m "testreport.dev/pkg/testreport/internal/model"
)

const reportFileMode os.FileMode = 0o644

// EmitError reports a failed write of the report or one of its asset
// directories.
type EmitError struct {
	Op   string
	Path m.Path
	Err  error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit failed: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *EmitError) Unwrap() error {
	return e.Err
}

// ReportEmitter persists a rendered report document.
type ReportEmitter interface {
	// Emit writes document to output and places the asset directories the
	// document references next to it.
	Emit(ctx context.Context, document string, output m.Path) error
}

// LocalReportEmitter writes reports through a ReportFSAdapter.
type LocalReportEmitter struct {
	fs       ReportFSAdapter
	assetDir m.Path
}

// NewLocalReportEmitter creates an emitter. When assetDir is empty the
// embedded assets are used as the canonical source; otherwise assetDir must
// contain the css and js directories.
func NewLocalReportEmitter(fsAdapter ReportFSAdapter, assetDir m.Path) *LocalReportEmitter {
	return &LocalReportEmitter{fs: fsAdapter, assetDir: assetDir}
}

// Emit writes the document with a full overwrite, then replaces each asset
// directory next to it with a fresh copy of the canonical assets.
func (e *LocalReportEmitter) Emit(ctx context.Context, document string, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := e.fs.Abs(output)
	if err != nil {
		return &EmitError{Op: "resolve", Path: output, Err: err}
	}

	dir := m.Path(filepath.Dir(string(target)))
	if err := e.fs.MkdirAll(dir); err != nil {
		return &EmitError{Op: "mkdir", Path: dir, Err: err}
	}

	if err := e.fs.WriteFileAtomic(target, []byte(document), reportFileMode); err != nil {
		slog.Error("failed to write report", "path", target, "error", err)
		return &EmitError{Op: "write", Path: target, Err: err}
	}

	slog.Info("wrote report", "path", target, "bytes", len(document))

	for _, name := range assets.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := e.syncAssetDir(dir, name); err != nil {
			return err
		}
	}

	return nil
}

// syncAssetDir replaces dir/name with a copy of the canonical asset
// directory. The copy is staged next to the destination so a failure never
// leaves a half-populated directory in place.
func (e *LocalReportEmitter) syncAssetDir(dir m.Path, name string) error {
	dst := m.Path(filepath.Join(string(dir), name))

	src, err := e.assetSource(name, dst)
	if err != nil {
		return err
	}

	if src == nil {
		slog.Debug("asset directory already in place", "path", dst)
		return nil
	}

	staging, err := e.fs.MkdirTemp(dir, "."+name+"-")
	if err != nil {
		return &EmitError{Op: "stage", Path: dst, Err: err}
	}

	if err := e.fs.CopyFS(src, staging); err != nil {
		_ = e.fs.RemoveAll(staging)
		slog.Error("failed to copy assets", "path", dst, "error", err)

		return &EmitError{Op: "copy", Path: dst, Err: err}
	}

	if err := e.fs.RemoveAll(dst); err != nil {
		_ = e.fs.RemoveAll(staging)
		return &EmitError{Op: "remove", Path: dst, Err: err}
	}

	if err := e.fs.Rename(staging, dst); err != nil {
		_ = e.fs.RemoveAll(staging)
		return &EmitError{Op: "rename", Path: dst, Err: err}
	}

	slog.Debug("synced asset directory", "path", dst)

	return nil
}

// assetSource returns the canonical tree for name, or nil when the on-disk
// source is the destination itself.
func (e *LocalReportEmitter) assetSource(name string, dst m.Path) (fs.FS, error) {
	if e.assetDir == "" {
		sub, err := assets.Dir(name)
		if err != nil {
			return nil, &EmitError{Op: "open", Path: m.Path(name), Err: err}
		}

		return sub, nil
	}

	src, err := e.fs.Abs(m.Path(filepath.Join(string(e.assetDir), name)))
	if err != nil {
		return nil, &EmitError{Op: "resolve", Path: e.assetDir, Err: err}
	}

	if src == dst {
		return nil, nil
	}

	return os.DirFS(string(src)), nil
}
