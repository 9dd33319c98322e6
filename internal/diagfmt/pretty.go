package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"flint/internal/diag"
	"flint/internal/source"
)

type palette struct {
	sev    map[diag.Severity]*color.Color
	code   *color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgBlue, color.Bold),
		},
		code:   color.New(color.Faint),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
	}
	all := []*color.Color{p.code, p.gutter, p.caret, p.note}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	if c, ok := p.sev[s]; ok {
		return c
	}
	return p.code
}

// Pretty форматирует диагностики в человекочитаемый вид. Для каждой печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span и заметки в том же
// формате. Колонки считаются по ширине символов на экране.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		header(&sb, fs, d.Primary, opts.PathMode)
		sb.WriteString(p.severity(d.Severity).Sprint(d.Severity.String()))
		sb.WriteByte(' ')
		sb.WriteString(p.code.Sprint(d.Code.ID()))
		sb.WriteString(": ")
		sb.WriteString(d.Message)
		sb.WriteByte('\n')
		snippet(&sb, fs, d.Primary, opts.Context, p, p.caret)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			sb.WriteString("  ")
			sb.WriteString(p.note.Sprint("note"))
			sb.WriteString(": ")
			header(&sb, fs, n.Span, opts.PathMode)
			sb.WriteString(n.Msg)
			sb.WriteByte('\n')
			snippet(&sb, fs, n.Span, 0, p, p.note)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func header(sb *strings.Builder, fs *source.FileSet, sp source.Span, mode PathMode) {
	f := fs.Get(sp.File)
	if f == nil {
		sb.WriteString("<unknown>: ")
		return
	}
	start, _ := fs.Resolve(sp)
	fmt.Fprintf(sb, "%s:%d:%d: ", displayPath(fs, f.Path, mode), start.Line, start.Col)
}

// snippet prints the first line of sp, up to context lines above it, and a
// caret line under the spanned text.
func snippet(sb *strings.Builder, fs *source.FileSet, sp source.Span, context int, p palette, mark *color.Color) {
	f := fs.Get(sp.File)
	if f == nil || int(sp.Start) > len(f.Content) {
		return
	}
	start, end := fs.Resolve(sp)
	if start.Line == 0 {
		return
	}
	first := start.Line
	for i := 0; i < context && first > 1; i++ {
		first--
	}
	width := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(sb, " %s %s\n", p.gutter.Sprintf("%*d |", width, ln), f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	col := min(int(start.Col)-1, len(line))
	stop := len(line)
	if end.Line == start.Line {
		stop = min(int(end.Col)-1, len(line))
	}
	pad := padFor(line[:col])
	n := max(runewidth.StringWidth(line[col:max(stop, col)]), 1)
	fmt.Fprintf(sb, " %s %s%s\n", p.gutter.Sprint(strings.Repeat(" ", width)+" |"), pad, mark.Sprint("^"+strings.Repeat("~", n-1)))
}

// padFor returns blanks as wide as prefix on screen; tabs are kept so the
// caret lines up with the echoed source line.
func padFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
