package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"flint/internal/source"
	"flint/internal/symbols"
	"flint/internal/types"
)

// FormatSymbols lists the declarations of a file scope, one per line:
// name, type, flags and the declaring position.
func FormatSymbols(w io.Writer, table *symbols.Table, tt *types.Interner, scope symbols.ScopeID, fs *source.FileSet) error {
	ids := table.Exports(scope)
	width := 0
	for _, id := range ids {
		width = max(width, len(table.Name(id)))
	}
	for _, id := range ids {
		ent := table.Entities.Get(id)
		if ent == nil {
			continue
		}
		line := fmt.Sprintf("%-*s : %s", width, table.Name(id), tt.String(ent.Type))
		if flags := ent.Flags.Strings(); len(flags) > 0 {
			line += " [" + strings.Join(flags, ",") + "]"
		}
		if fs != nil && ent.Span.End > ent.Span.Start {
			pos, _ := fs.Resolve(ent.Span)
			line += fmt.Sprintf(" @%d:%d", pos.Line, pos.Col)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
