package sema

import (
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
)

const shapes = `Point :: struct {
	x, y: f64
	next: *Point
}
Value :: union { i: i64; f: f64; b: bool }
Color :: enum { Red, Green, Blue }
`

func TestStructLiteralsAndFields(t *testing.T) {
	src := shapes + `p := Point{1.0, 2.0}
q := Point{y: 3.0, x: 4.0}
pp := &p
d := pp.x + q.y
c := Color.Green
p.next = pp
`
	c := checkSource(t, src).clean(t)
	if got := c.typeOf(t, "d"); got != "f64" {
		t.Fatalf("d: %s", got)
	}
	if got := c.typeOf(t, "c"); got != "Color" {
		t.Fatalf("c: %s", got)
	}
	lits := c.nodes(ast.KindCompositeLit)
	second, _ := c.env.Builder.CompositeLit(lits[1])
	for i, el := range second.Elems {
		fb, ok := c.env.Info.Fields[el]
		if !ok || fb.Index != 1-i {
			t.Errorf("element %d bound to %+v", i, fb)
		}
	}
	for _, id := range c.nodes(ast.KindSelector) {
		if _, ok := c.env.Info.Fields[id]; !ok {
			t.Errorf("%s has no field binding", c.print(id))
		}
	}
}

func TestUnionLiteralPicksFirstMatch(t *testing.T) {
	src := `Pair :: union { a: i64; b: i64; f: f64 }
Num :: union { f: f64; i: i64 }
n: i64 = 3
u := Pair{n}
v := Pair{b: 4}
w := Pair{2.5}
x := Num{1}
y := Num{n}
`
	c := checkSource(t, src).clean(t)
	lits := c.nodes(ast.KindCompositeLit)
	want := []int{0, 1, 2, 0, 1}
	for i, id := range lits {
		lit, _ := c.env.Builder.CompositeLit(id)
		if fb := c.env.Info.Fields[lit.Elems[0]]; fb.Index != want[i] {
			t.Errorf("%s picked member %d, want %d", c.print(id), fb.Index, want[i])
		}
	}
}

func TestCompositeLiteralErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"union without match", "U :: union { a: i64; b: f64 }\nu := U{true}", diag.SemaUnionLiteral},
		{"union two values", "U :: union { a: i64; b: f64 }\nu := U{1, 2.0}", diag.SemaUnionLiteral},
		{"too many", "P :: struct { x: i64 }\np := P{1, 2}", diag.SemaCompositeLiteral},
		{"unknown field", "P :: struct { x: i64 }\np := P{y: 1}", diag.SemaUnknownMember},
		{"duplicate field", "P :: struct { x: i64 }\np := P{x: 1, x: 2}", diag.SemaCompositeLiteral},
		{"field type", "P :: struct { x: i64 }\np := P{true}", diag.SemaTypeMismatch},
		{"not an aggregate", "n := i64{1}", diag.SemaCompositeLiteral},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := checkSource(t, tc.src)
			if c.count(tc.code) == 0 {
				t.Fatalf("no %v:\n%s", tc.code, c.diags())
			}
		})
	}
}

func TestMemberErrors(t *testing.T) {
	tests := []string{
		shapes + "p := Point{1.0, 2.0}\nz := p.z",
		shapes + "c := Color.Purple",
		"n := 1\nm := n.x",
		shapes + "v := Value{i: 1}\nb := v.c",
	}
	for _, src := range tests {
		if c := checkSource(t, src); c.count(diag.SemaUnknownMember) != 1 {
			t.Errorf("expected one unknown member error:\n%s", c.diags())
		}
	}
}

func TestAddressOf(t *testing.T) {
	c := checkSource(t, "x := 1\np := &x\npp := &p\nq := &1")
	if c.count(diag.SemaInvalidOperand) != 1 {
		t.Fatalf("only &1 should fail:\n%s", c.diags())
	}
	if got := c.typeOf(t, "pp"); got != "**i64" {
		t.Fatalf("pp: %s", got)
	}
	c = checkSource(t, "T :: *i64\nx: T = &y\ny := 2")
	if c.count(diag.SemaUndefined) != 1 {
		t.Fatalf("forward reference should be undefined:\n%s", c.diags())
	}
	if got := c.typeOf(t, "x"); got != "*i64" {
		t.Fatalf("pointer type alias: %s", got)
	}
}
