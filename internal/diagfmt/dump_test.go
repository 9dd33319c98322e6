package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/diagfmt"
	"flint/internal/lexer"
	"flint/internal/parser"
	"flint/internal/sema"
	"flint/internal/source"
	"flint/internal/token"
)

type parsed struct {
	fs   *source.FileSet
	b    *ast.Builder
	file *ast.File
}

func parse(t *testing.T, src string) parsed {
	t.Helper()
	fs := source.NewFileSetWithBase("/proj")
	id := fs.AddVirtual("/proj/a.fl", []byte(src))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{}, nil)
	file := parser.ParseFile(lexer.New(fs.Get(id), lexer.Options{Reporter: rep}), b, parser.Options{Reporter: rep})
	if bag.Len() != 0 {
		t.Fatalf("parse diagnostics:\n%s", diag.FormatShort(bag.Items(), fs, true))
	}
	return parsed{fs: fs, b: b, file: file}
}

func TestTokenDump(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.fl", []byte("x := 1"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if !strings.Contains(first, "identifier") || !strings.Contains(first, `"x"`) || !strings.HasSuffix(first, "at 1:1-1:2") {
		t.Fatalf("first token line = %q", first)
	}

	buf.Reset()
	if err := diagfmt.FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || out[0].Text != "x" {
		t.Fatalf("json tokens = %+v", out)
	}
}

func TestASTDumps(t *testing.T) {
	p := parse(t, "x := 1 + 2\n")
	annotate := diagfmt.ASTOpts{Annotate: func(id ast.NodeID) string {
		if p.b.Kind(id) == ast.KindInfix {
			return "i64"
		}
		return ""
	}}

	var buf bytes.Buffer
	if err := diagfmt.FormatASTPretty(&buf, p.b, p.file, p.fs, annotate); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "File a.fl") {
		t.Fatalf("header: %q", out)
	}
	for _, want := range []string{"└─ Decl", "Ident x", "Infix + : i64", "Lit 1", "Lit 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty dump lacks %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := diagfmt.FormatASTTree(&buf, p.b, p.file, diagfmt.ASTOpts{}); err != nil {
		t.Fatal(err)
	}
	if tree := buf.String(); !strings.Contains(tree, "Decl") || !strings.Contains(tree, "Lit 2") {
		t.Errorf("tree dump:\n%s", tree)
	}

	buf.Reset()
	if err := diagfmt.FormatASTJSON(&buf, p.b, p.file, annotate); err != nil {
		t.Fatal(err)
	}
	var root diagfmt.ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if root.Kind != "File" || len(root.Children) != 1 || root.Children[0].Kind != "Decl" {
		t.Fatalf("json root = %+v", root)
	}
	if err := diagfmt.FormatASTJSON(&buf, p.b, nil, annotate); err == nil {
		t.Fatal("nil file accepted")
	}
}

func TestSymbolDump(t *testing.T) {
	p := parse(t, "x: i64\nN: i64 : 4\nsq :: fn (a: i64) -> i64 { return a * a }\n")
	env := sema.NewEnv(p.b)
	bag := diag.NewBag(0)
	res := sema.CheckFile(env, p.file, sema.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("check diagnostics:\n%s", diag.FormatShort(bag.Items(), p.fs, true))
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatSymbols(&buf, env.Symbols, env.Types, res.Scope, p.fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{"x  : i64", "N  : i64 [compile-time]", "sq : fn (i64) -> i64"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for i, w := range want {
		if !strings.HasPrefix(lines[i], w) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], w)
		}
	}
}
