package sema

import (
	"errors"
	"fmt"
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/parser"
	"flint/internal/source"
	"flint/internal/symbols"
)

// memLoader serves imports from memory and checks them in a shared Env.
type memLoader struct {
	t      *testing.T
	fs     *source.FileSet
	env    *Env
	bag    *diag.Bag
	rep    diag.Reporter
	files  map[string]string
	libs   map[string]string
	scopes map[string]symbols.ScopeID
	loads  map[string]int
}

func newMemLoader(t *testing.T, files map[string]string) *memLoader {
	bag := diag.NewBag(0)
	return &memLoader{
		t:      t,
		fs:     source.NewFileSet(),
		env:    NewEnv(ast.NewBuilder(ast.Hints{}, nil)),
		bag:    bag,
		rep:    diag.BagReporter{Bag: bag},
		files:  files,
		libs:   map[string]string{},
		scopes: map[string]symbols.ScopeID{},
		loads:  map[string]int{},
	}
}

func (l *memLoader) Import(path string, _ source.FileID) (symbols.ScopeID, string, error) {
	if scope, ok := l.scopes[path]; ok {
		return scope, path, nil
	}
	if _, ok := l.files[path]; !ok {
		return symbols.NoScopeID, "", fmt.Errorf("open %s: %w", path, errors.New("no such file"))
	}
	return l.check(path).Scope, path, nil
}

func (l *memLoader) ResolveLibrary(name string, _ source.FileID) (string, bool) {
	p, ok := l.libs[name]
	return p, ok
}

// check parses and checks one file, registering its scope before any of
// its imports are followed.
func (l *memLoader) check(path string) Result {
	l.t.Helper()
	l.loads[path]++
	id := l.fs.AddVirtual(path, []byte(l.files[path]))
	file := parser.ParseFile(lexer.New(l.fs.Get(id), lexer.Options{Reporter: l.rep}), l.env.Builder, parser.Options{Reporter: l.rep})
	l.scopes[path] = l.env.FileScope(file)
	return CheckFile(l.env, file, Options{Reporter: l.rep, Loader: l})
}

func (l *memLoader) diags() string {
	return diag.FormatShort(l.bag.Items(), l.fs, true)
}

func (l *memLoader) typeOf(t *testing.T, path, name string) string {
	t.Helper()
	id, ok := l.env.Symbols.LookupString(l.scopes[path], name)
	if !ok {
		t.Fatalf("%s is not visible in %s", name, path)
	}
	return l.env.Types.String(l.env.Symbols.Entity(id).Type)
}

const mathFile = `square :: fn (x: i64) -> i64 {
	return x * x
}
same :: fn (x: $T) -> T {
	return x
}
Pi :: 3.14
`

func TestAliasedImport(t *testing.T) {
	l := newMemLoader(t, map[string]string{
		"main.fl": "#import \"math.fl\" m\na := m.square(3)\nb := m.Pi * 2.0\nc := m.same(true)\n",
		"math.fl": mathFile,
	})
	l.check("main.fl")
	if l.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%s", l.diags())
	}
	for name, want := range map[string]string{"a": "i64", "b": "f64", "c": "bool"} {
		if got := l.typeOf(t, "main.fl", name); got != want {
			t.Errorf("%s: got %s, want %s", name, got, want)
		}
	}
	if _, ok := l.env.Symbols.LookupString(l.scopes["main.fl"], "square"); ok {
		t.Error("aliased import leaked into the file scope")
	}
}

func TestUnaliasedImportJoinsFileScope(t *testing.T) {
	l := newMemLoader(t, map[string]string{
		"main.fl": "#import \"math.fl\"\nn := square(4)\n",
		"math.fl": mathFile,
	})
	l.check("main.fl")
	if l.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%s", l.diags())
	}
	if got := l.typeOf(t, "main.fl", "n"); got != "i64" {
		t.Fatalf("n: %s", got)
	}
}

func TestDiamondAndCyclicImports(t *testing.T) {
	l := newMemLoader(t, map[string]string{
		"main.fl":  "#import \"left.fl\"\n#import \"right.fl\"\nx := l + r\n",
		"left.fl":  "#import \"base.fl\"\nl := base * 2\n",
		"right.fl": "#import \"base.fl\"\n#import \"main.fl\"\nr := base * 3\n",
		"base.fl":  "base := 7\n",
	})
	l.check("main.fl")
	if l.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%s", l.diags())
	}
	for path, n := range l.loads {
		if n != 1 {
			t.Errorf("%s checked %d times", path, n)
		}
	}
}

func TestImportErrors(t *testing.T) {
	l := newMemLoader(t, map[string]string{
		"main.fl": "#import \"missing.fl\"\n#import \"math.fl\" m\nz := m.cube(2)\n#library \"nosuch\"\n",
		"math.fl": mathFile,
	})
	l.check("main.fl")
	want := map[diag.Code]int{
		diag.SemaImportFailed:    1,
		diag.SemaUnknownMember:   1,
		diag.SemaLibraryNotFound: 1,
	}
	got := map[diag.Code]int{}
	for _, d := range l.bag.Items() {
		got[d.Code]++
	}
	for code, n := range want {
		if got[code] != n {
			t.Errorf("%v: got %d, want %d\n%s", code, got[code], n, l.diags())
		}
	}
}

func TestLibrariesAreCollected(t *testing.T) {
	l := newMemLoader(t, map[string]string{
		"main.fl": `#library "c" libc
#library "m"
#library "c"
#foreign libc {
	puts :: fn (*u8) -> i32
}
`,
	})
	l.libs["c"] = "/usr/lib/libc.so"
	l.libs["m"] = "/usr/lib/libm.so"
	res := l.check("main.fl")
	if l.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%s", l.diags())
	}
	if len(res.Libraries) != 2 || res.Libraries[0] != "/usr/lib/libc.so" || res.Libraries[1] != "/usr/lib/libm.so" {
		t.Fatalf("libraries %q", res.Libraries)
	}
	id, _ := l.env.Symbols.LookupString(l.scopes["main.fl"], "puts")
	lib := l.env.Symbols.Entity(l.env.Symbols.Entity(id).Library)
	if lib.Path != "/usr/lib/libc.so" {
		t.Fatalf("puts links against %q", lib.Path)
	}
}

func TestImportWithoutLoader(t *testing.T) {
	c := checkSource(t, "#import \"x.fl\"")
	if c.count(diag.SemaImportFailed) != 1 {
		t.Fatalf("diagnostics:\n%s", c.diags())
	}
}
