package diagfmt

import (
	"path/filepath"
	"strings"

	"flint/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows paths relative to the file set's base directory
	// when they lie below it, absolute otherwise.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int // lines shown above the primary line
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}

func displayPath(fs *source.FileSet, path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative:
		if rel, err := filepath.Rel(fs.BaseDir(), path); err == nil {
			return rel
		}
		return path
	}
	base := strings.TrimSuffix(fs.BaseDir(), "/")
	if rel, ok := strings.CutPrefix(path, base+"/"); ok && base != "" {
		return rel
	}
	return path
}
