package diag

import (
	"fmt"
	"strings"

	"flint/internal/source"
)

// FormatShort renders diagnostics one per line as
// "<severity> <code> <path>:<line>:<col> <message>", with notes on their own
// "note" lines. Paths are shown relative to the file set's base directory.
// The input order is kept; sort the bag first for deterministic output.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeShortLine(&sb, fs, strings.ToLower(d.Severity.String()), d.Code, d.Primary, d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			sb.WriteByte('\n')
			writeShortLine(&sb, fs, "note", d.Code, n.Span, n.Msg)
		}
	}
	return sb.String()
}

func writeShortLine(sb *strings.Builder, fs *source.FileSet, sev string, code Code, sp source.Span, msg string) {
	path := "<unknown>"
	var pos source.LineCol
	if f := fs.Get(sp.File); f != nil {
		path = displayPath(fs, f.Path)
		pos, _ = fs.Resolve(sp)
	}
	msg = strings.Join(strings.Fields(msg), " ")
	fmt.Fprintf(sb, "%s %s %s:%d:%d %s", sev, code.ID(), path, pos.Line, pos.Col, msg)
}

func displayPath(fs *source.FileSet, path string) string {
	base := fs.BaseDir()
	if base == "" {
		return path
	}
	if rel, ok := strings.CutPrefix(path, strings.TrimSuffix(base, "/")+"/"); ok {
		return rel
	}
	return path
}
