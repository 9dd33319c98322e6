package diag

import (
	"testing"

	"flint/internal/source"
)

func TestBagLimitAndCounts(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SemaUndefined, source.Span{}, "a")) {
		t.Fatal("first add rejected")
	}
	b.Add(New(SevWarning, SemaUnusedExpression, source.Span{}, "b"))
	if b.Add(NewError(SemaUndefined, source.Span{}, "c")) {
		t.Fatal("add past limit accepted")
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("len=%d dropped=%d", b.Len(), b.Dropped())
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatal("expected errors and warnings")
	}
	if got := b.Count(SevError); got != 1 {
		t.Fatalf("errors = %d, want 1", got)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(SemaTypeMismatch, source.Span{File: 0, Start: 10, End: 12}, "late"))
	b.Add(New(SevWarning, SemaUnusedExpression, source.Span{File: 0, Start: 1, End: 2}, "warn"))
	b.Add(NewError(SemaUndefined, source.Span{File: 0, Start: 1, End: 2}, "err"))
	b.Add(NewError(SemaUndefined, source.Span{File: 0, Start: 1, End: 2}, "err"))
	b.Sort()
	b.Dedup()

	want := []string{"err", "warn", "late"}
	items := b.Items()
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, msg := range want {
		if items[i].Message != msg {
			t.Errorf("item %d = %q, want %q", i, items[i].Message, msg)
		}
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(0)
	r := BagReporter{Bag: b}
	sp := source.Span{Start: 3, End: 4}
	rb := ReportError(r, SemaRedeclaration, sp, "redeclaration of 'x'").
		WithNote(source.Span{Start: 0, End: 1}, "previous declaration here")
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1", b.Len())
	}
	d := b.Items()[0]
	if d.Primary != sp || len(d.Notes) != 1 || d.Notes[0].Msg != "previous declaration here" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSetWithBase("/work")
	id := fs.Add("/work/pkg/a.fl", []byte("a\nbb := 1\n"), 0)
	diags := []Diagnostic{
		NewError(SynUnexpectedToken, source.Span{File: id, Start: 2, End: 4}, "unexpected\n'bb'").
			WithNote(source.Span{File: id, Start: 0, End: 1}, "here"),
	}
	want := "error SYN2001 pkg/a.fl:2:1 unexpected 'bb'\n" +
		"note SYN2001 pkg/a.fl:1:1 here"
	if got := FormatShort(diags, fs, true); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexBadNumber:       "LEX1004",
		SynUnexpectedToken: "SYN2001",
		SemaMissingDefault: "SEM3015",
		IOLoadFileError:    "IO4001",
		UnknownCode:        "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}
