package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"flint/internal/diag"
)

func TestJSONTruncatesButCountsAll(t *testing.T) {
	src := "x := y\nz := w\n"
	fs, file := virtualFile(src)
	first := diag.New(diag.SevError, diag.SemaUndefined, spanOf(t, file, src, "y"), "undefined: y")
	first.Notes = append(first.Notes, diag.Note{Span: spanOf(t, file, src, "x"), Msg: "in here"})
	items := []diag.Diagnostic{
		first,
		diag.New(diag.SevError, diag.SemaUndefined, spanOf(t, file, src, "w"), "undefined: w"),
	}

	var buf bytes.Buffer
	if err := JSON(&buf, items, fs, JSONOpts{IncludePositions: true, Max: 1, IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count=%d len=%d, want 2 and 1", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SEM3002" || d.Message != "undefined: y" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	want := LocationJSON{File: "a.fl", StartByte: 5, EndByte: 6, StartLine: 1, StartCol: 6, EndLine: 1, EndCol: 7}
	if d.Location != want {
		t.Fatalf("location = %+v, want %+v", d.Location, want)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "in here" {
		t.Fatalf("notes = %+v", d.Notes)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	src := "x := y\n"
	fs, file := virtualFile(src)
	items := []diag.Diagnostic{diag.New(diag.SevError, diag.SemaUndefined, spanOf(t, file, src, "y"), "undefined: y")}
	out := BuildDiagnosticsOutput(items, fs, JSONOpts{})
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 0 || loc.StartCol != 0 {
		t.Fatalf("positions present: %+v", loc)
	}
	if out.Diagnostics[0].Notes != nil {
		t.Fatal("notes present without IncludeNotes")
	}
}
