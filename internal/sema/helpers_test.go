package sema

import (
	"strings"
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/format"
	"flint/internal/lexer"
	"flint/internal/parser"
	"flint/internal/source"
	"flint/internal/symbols"
	"flint/internal/types"
)

type checked struct {
	env  *Env
	file *ast.File
	bag  *diag.Bag
	fs   *source.FileSet
}

func checkSource(t *testing.T, src string) *checked {
	t.Helper()
	return checkWith(t, src, nil)
}

func checkWith(t *testing.T, src string, loader Loader) *checked {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte(src))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{}, nil)
	file := parser.ParseFile(lx, b, parser.Options{Reporter: rep})
	if bag.Len() != 0 {
		t.Fatalf("parse diagnostics for %q:\n%s", src, diag.FormatShort(bag.Items(), fs, true))
	}
	env := NewEnv(b)
	CheckFile(env, file, Options{Reporter: rep, Loader: loader})
	return &checked{env: env, file: file, bag: bag, fs: fs}
}

// clean fails the test on any error diagnostic.
func (c *checked) clean(t *testing.T) *checked {
	t.Helper()
	if c.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%s", c.diags())
	}
	return c
}

func (c *checked) diags() string {
	return diag.FormatShort(c.bag.Items(), c.fs, true)
}

func (c *checked) count(code diag.Code) int {
	n := 0
	for _, d := range c.bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}

func (c *checked) first(t *testing.T, code diag.Code) diag.Diagnostic {
	t.Helper()
	for _, d := range c.bag.Items() {
		if d.Code == code {
			return d
		}
	}
	t.Fatalf("no %v diagnostic; have:\n%s", code, c.diags())
	return diag.Diagnostic{}
}

func (c *checked) entity(t *testing.T, name string) *symbols.Entity {
	t.Helper()
	id, ok := c.env.Symbols.LookupString(c.env.FileScope(c.file), name)
	if !ok {
		t.Fatalf("%s is not declared", name)
	}
	return c.env.Symbols.Entity(id)
}

func (c *checked) typeOf(t *testing.T, name string) string {
	t.Helper()
	return c.env.Types.String(c.entity(t, name).Type)
}

func (c *checked) builtins() types.Builtins { return c.env.Types.Builtins() }

// nodes lists every node of kind k in source order.
func (c *checked) nodes(k ast.Kind) []ast.NodeID {
	var out []ast.NodeID
	for _, s := range c.file.Stmts {
		c.env.Builder.Inspect(s, func(id ast.NodeID) bool {
			if c.env.Builder.Kind(id) == k {
				out = append(out, id)
			}
			return true
		})
	}
	return out
}

func (c *checked) print(id ast.NodeID) string {
	return strings.TrimSpace(format.Node(c.env.Builder, id))
}
