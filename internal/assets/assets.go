// Package assets embeds the stylesheet and chart script copied next to every
// report.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

// Directory names referenced by rendered documents.
const (
	StylesheetDir = "css"
	ScriptDir     = "js"
)

//go:embed css js
var embedded embed.FS

// Names returns the asset directory names in the order they are synced.
func Names() []string {
	return []string{StylesheetDir, ScriptDir}
}

// FS returns the embedded asset tree. It contains the directories css and js.
func FS() fs.FS {
	return embedded
}

// Dir returns the embedded subtree for one asset directory.
func Dir(name string) (fs.FS, error) {
	sub, err := fs.Sub(embedded, name)
	if err != nil {
		return nil, fmt.Errorf("open embedded assets %s: %w", name, err)
	}

	return sub, nil
}
