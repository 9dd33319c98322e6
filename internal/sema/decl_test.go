package sema

import (
	"testing"

	"flint/internal/diag"
	"flint/internal/symbols"
)

func TestRedeclarationKeepsFirstEntity(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"file scope", "a := 1\na := 2.0\nb := a"},
		{"function scope", "f :: fn () {\n\ta := 1\n\ta := true\n\tb := a + 1\n}"},
		{"parameters", "f :: fn (a: i64, a: f64) {}"},
		{"type and value", "P :: struct { x: i64 }\nP := 3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := checkSource(t, tc.src)
			if n := c.count(diag.SemaRedeclaration); n != 1 {
				t.Fatalf("got %d redeclaration diagnostics, want 1:\n%s", n, c.diags())
			}
			if n := len(c.bag.Items()); n != 1 {
				t.Fatalf("redeclaration cascaded into %d diagnostics:\n%s", n, c.diags())
			}
			d := c.first(t, diag.SemaRedeclaration)
			if len(d.Notes) != 1 || d.Notes[0].Msg != "previous declaration" {
				t.Fatalf("missing previous declaration note: %+v", d.Notes)
			}
		})
	}
	c := checkSource(t, "a := 1\na := 2.0\nb := a")
	if got := c.typeOf(t, "a"); got != "i64" {
		t.Fatalf("lookup found the second entity: %s", got)
	}
	if got := c.typeOf(t, "b"); got != "i64" {
		t.Fatalf("b: got %s", got)
	}
}

func TestDeclarationForms(t *testing.T) {
	src := `x: i64
a, b: i64 = 1, 2
N: i64 : 4
K :: 3
div :: fn (a: i64, b: i64) -> (i64, i64) {
	return a / b, a - a / b * b
}
q, r := div(7, 2)
`
	c := checkSource(t, src).clean(t)
	for _, name := range []string{"x", "a", "b", "N", "K", "q", "r"} {
		if got := c.typeOf(t, name); got != "i64" {
			t.Errorf("%s: got %s, want i64", name, got)
		}
	}
	if !c.entity(t, "N").Flags.Has(symbols.FlagCompileTime) || c.entity(t, "x").Flags.Has(symbols.FlagCompileTime) {
		t.Error("compile-time flags are wrong")
	}
	if got := c.typeOf(t, "div"); got != "fn (i64, i64) -> (i64, i64)" {
		t.Errorf("div: %s", got)
	}
}

func TestDeclarationErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"count", "a, b := 1, 2, 3", diag.SemaDeclCount},
		{"tuple count", "two :: fn () -> (i64, i64) { return 1, 2 }\na, b, c := two()", diag.SemaDeclCount},
		{"function literals", "f, g := fn () {}, fn () {}", diag.SemaMultiValueFnLit},
		{"mismatch", "a: bool = 1", diag.SemaTypeMismatch},
		{"exact equality", "a: i32 = 1\nb: i64 = a", diag.SemaTypeMismatch},
		{"type in variable", "T := i64", diag.SemaError},
		{"undefined", "a := nope", diag.SemaUndefined},
		{"not a type", "a := 1\nb: a = 2", diag.SemaNotAType},
		{"dollar outside params", "a := $T", diag.SemaPolymorphicValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := checkSource(t, tc.src)
			if c.count(tc.code) == 0 {
				t.Fatalf("no %v diagnostic:\n%s", tc.code, c.diags())
			}
		})
	}
}

func TestTypeDeclarations(t *testing.T) {
	src := `Node :: struct {
	value: i64
	next: *Node
}
Value :: union { i: i64; f: f64 }
Color :: enum u8 { Red, Green = 4, Blue }
`
	c := checkSource(t, src).clean(t)
	tt := c.env.Types
	node, ok := c.env.Types.Elem(c.entity(t, "Node").Type)
	if !ok {
		t.Fatal("Node is not a type")
	}
	info, _ := tt.StructInfo(node)
	if len(info.Fields) != 2 || tt.String(info.Fields[1].Type) != "*Node" {
		t.Fatalf("fields: %+v", info.Fields)
	}
	if tt.Width(node) != 128 {
		t.Errorf("Node width %d", tt.Width(node))
	}
	value, _ := tt.Elem(c.entity(t, "Value").Type)
	if tt.Width(value) != 64 {
		t.Errorf("Value width %d", tt.Width(value))
	}
	color, _ := tt.Elem(c.entity(t, "Color").Type)
	enum, _ := tt.EnumInfo(color)
	want := []int64{0, 4, 5}
	for i, cs := range enum.Cases {
		if cs.Value != want[i] {
			t.Errorf("case %s = %d, want %d", cs.Name, cs.Value, want[i])
		}
	}
	if tt.Width(color) != 8 {
		t.Errorf("Color width %d", tt.Width(color))
	}
}

func TestRecursiveStructByValue(t *testing.T) {
	c := checkSource(t, "S :: struct { inner: S }")
	if c.count(diag.SemaError) != 1 {
		t.Fatalf("expected a recursive type error:\n%s", c.diags())
	}
}

func TestForeignDeclarations(t *testing.T) {
	src := `#library "libc.so" libc
#foreign libc {
	#linkName "puts" print :: fn (*u8) -> i32
	#discardable printf :: fn (*u8, #cvargs ..any) -> i32
}
main :: fn () {
	printf("%d %f\n", 1, 2.5)
	n := print("hi")
}
`
	c := checkSource(t, src).clean(t)
	puts := c.entity(t, "print")
	if !puts.Flags.Has(symbols.FlagForeign) || puts.LinkName != "puts" {
		t.Fatalf("print: %+v", puts)
	}
	if got := c.env.Types.String(puts.Type); got != "fn (*u8) -> i32" {
		t.Fatalf("print type %s", got)
	}
	if lib := c.env.Symbols.Entity(puts.Library); lib == nil || lib.Path != "libc.so" {
		t.Fatalf("print library: %+v", lib)
	}
	printf := c.entity(t, "printf")
	if !printf.Flags.Has(symbols.FlagDiscardable) {
		t.Fatal("printf should be discardable")
	}
	calls := 0
	for _, ci := range c.env.Info.Calls {
		if ci.Kind == CallDirect && len(ci.Args) == 3 {
			calls++
			for _, a := range ci.Args[1:] {
				if conv := c.env.Info.Conversions[a]; conv.Kind != ConvCVarArg {
					t.Errorf("variadic argument %s not marked: %v", c.print(a), conv.Kind)
				}
			}
		}
	}
	if calls != 1 {
		t.Fatalf("found %d printf calls", calls)
	}
}
