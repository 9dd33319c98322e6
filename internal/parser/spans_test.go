package parser

import (
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/source"
	"flint/internal/testkit"
)

func TestSpanInvariants(t *testing.T) {
	sources := map[string]string{
		"decls": "x := foo(1, 2)\na, b: i64 = 1, -2\nK :: 3 * (4 + 5)",
		"types": `Point :: struct {
	x, y: f32
	next: *Point
}
Color :: enum u8 { Red, Green = 4, Blue }
p := Point{x: 1, y: 2}`,
		"functions": `sq :: fn (x: $T) -> T {
	return x * x
}
main :: fn () {
	outer: for i := 0; i < 10; i += 1 {
		if i == 3 { continue }
		for { break outer }
	}
}`,
		"directives": `#library "libc.so" libc
#foreign libc {
	#linkName "puts" print :: fn (*u8) -> i32
}`,
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			fs := source.NewFileSet()
			sf := fs.Get(fs.AddVirtual(name+".fl", []byte(src)))
			bag := diag.NewBag(0)
			rep := diag.BagReporter{Bag: bag}
			b := ast.NewBuilder(ast.Hints{}, nil)
			file := ParseFile(lexer.New(sf, lexer.Options{Reporter: rep}), b, Options{Reporter: rep})
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
			}
			if err := testkit.CheckSpanInvariants(b, file, sf); err != nil {
				t.Fatal(err)
			}
		})
	}
}
