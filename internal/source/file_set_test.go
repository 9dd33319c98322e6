package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.fl", []byte("a := 1\nbb := 22\n"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{5, 1, 6},
		{6, 1, 7}, // '\n' принадлежит первой строке
		{7, 2, 1},
		{10, 2, 4},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.fl", []byte("first\nsecond\nthird")))
	if got := f.GetLine(2); got != "second" {
		t.Fatalf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("line 3 = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Fatalf("line 9 = %q, want empty", got)
	}
}

func TestOpenVirtualRelativeToImporter(t *testing.T) {
	fs := NewFileSet()
	main := fs.Get(fs.AddVirtual("proj/main.fl", []byte("#import \"util.fl\"")))
	utilID := fs.AddVirtual("proj/util.fl", []byte("x := 1"))

	got, err := fs.Open("util.fl", main)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got.ID != utilID {
		t.Fatalf("expected cached virtual file %d, got %d", utilID, got.ID)
	}
}

func TestOpenCanonicalizesAndCaches(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "lib.fl")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFx := 1\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSetWithBase(dir)
	first, err := fs.Open("lib.fl", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if first.Flags&FileHadBOM == 0 || first.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", first.Flags)
	}
	if string(first.Content) != "x := 1\n" {
		t.Fatalf("content not normalized: %q", first.Content)
	}

	second, err := fs.Open(filepath.Join("sub", "..", "lib.fl"), nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if first.ID != second.ID || fs.Len() != 1 {
		t.Fatalf("expected one cached file, got ids %d/%d and %d files", first.ID, second.ID, fs.Len())
	}

	if _, err := fs.Open("missing.fl", first); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Fatalf("cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cross-file cover must keep receiver, got %v", got)
	}
	if !a.Cover(b).Contains(a) {
		t.Fatalf("cover must contain operands")
	}
}

func TestInternerDedup(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	if a != b || a == NoStringID {
		t.Fatalf("intern ids: %d %d", a, b)
	}
	if s := in.MustLookup(a); s != "foo" {
		t.Fatalf("lookup = %q", s)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatalf("unknown id must not resolve")
	}
}
