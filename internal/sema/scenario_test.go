package sema

import (
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/types"
)

func TestTypedDeclaration(t *testing.T) {
	c := checkSource(t, "a: i64 = 10;").clean(t)
	if got := c.typeOf(t, "a"); got != "i64" {
		t.Fatalf("a: got %s, want i64", got)
	}
	if c.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", c.diags())
	}
}

func TestInferredDeclaration(t *testing.T) {
	c := checkSource(t, "a := 99\nf := 1.5\ns := \"hi\"\nok := true").clean(t)
	for name, want := range map[string]string{"a": "i64", "f": "f64", "s": "*u8", "ok": "bool"} {
		if got := c.typeOf(t, name); got != want {
			t.Errorf("%s: got %s, want %s", name, got, want)
		}
	}
}

func TestSpecializationPerBoundType(t *testing.T) {
	src := `add :: fn (x: $T, y: T) -> T {
	return x
}
a := add(1, 2)
b := add(1.0, 2.0)
c := add(3, 4)
`
	c := checkSource(t, src).clean(t)
	for name, want := range map[string]string{"a": "i64", "b": "f64", "c": "i64"} {
		if got := c.typeOf(t, name); got != want {
			t.Errorf("%s: got %s, want %s", name, got, want)
		}
	}

	add := c.entity(t, "add")
	fi := c.env.Info.Funcs[add.Value]
	if fi == nil || !fi.Polymorphic {
		t.Fatalf("add is not recorded as polymorphic: %+v", fi)
	}
	if len(fi.Specializations) != 2 {
		t.Fatalf("got %d specializations, want 2", len(fi.Specializations))
	}
	tt := c.env.Types
	bt := c.builtins()
	wantBound := []string{"type i64", "type f64"}
	wantReturn := []types.TypeID{bt.I64, bt.F64}
	for i, sp := range fi.Specializations {
		if len(sp.Bound) != 1 || tt.String(sp.Bound[0]) != wantBound[i] {
			t.Errorf("specialization %d bound to %v", i, sp.Bound)
		}
		if sp.Node == fi.Node {
			t.Errorf("specialization %d reuses the polymorphic node", i)
		}
		lit, ok := c.env.Builder.FuncLit(sp.Node)
		if !ok {
			t.Fatalf("specialization %d node is not a function literal", i)
		}
		blk, _ := c.env.Builder.Block(lit.Body)
		ret, _ := c.env.Builder.Return(blk.Stmts[0])
		if got := c.env.Info.Types[ret.Values[0]]; got != wantReturn[i] {
			t.Errorf("specialization %d returns %s", i, tt.String(got))
		}
	}
	if fi.Specializations[0].Node == fi.Specializations[1].Node {
		t.Fatal("specializations share a body")
	}
	if got := tt.String(fi.Specializations[0].Type); got != "fn (i64, i64) -> i64" {
		t.Errorf("first specialization type %s", got)
	}

	// the original body is never checked
	orig, _ := c.env.Builder.FuncLit(fi.Node)
	blk, _ := c.env.Builder.Block(orig.Body)
	ret, _ := c.env.Builder.Return(blk.Stmts[0])
	if _, ok := c.env.Info.Types[ret.Values[0]]; ok {
		t.Error("polymorphic body was checked")
	}
}

func TestSwitchWithoutDefault(t *testing.T) {
	c := checkSource(t, "switch {\ncase true:\n\t1\n}")
	d := c.first(t, diag.SemaMissingDefault)
	if d.Severity != diag.SevError || d.Message != "switch must have a default case" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	for _, fi := range c.env.Info.Funcs {
		if len(fi.Specializations) != 0 {
			t.Fatal("unexpected specialization")
		}
	}
}

func TestIntFloatPromotion(t *testing.T) {
	c := checkSource(t, "x: i64 = 1\ny: f64 = 2.0\nx + y").clean(t)
	infix := c.nodes(ast.KindInfix)
	if len(infix) != 1 {
		t.Fatalf("got %d infix nodes", len(infix))
	}
	x, _ := c.env.Builder.Infix(infix[0])
	conv, ok := c.env.Info.Conversions[x.X]
	if !ok || conv.Kind != ConvIntToFloat || conv.To != c.builtins().F64 {
		t.Fatalf("x conversion: %+v (recorded %v)", conv, ok)
	}
	if _, ok := c.env.Info.Conversions[x.Y]; ok {
		t.Error("y should not be converted")
	}
	if got := c.env.Info.Types[infix[0]]; got != c.entity(t, "y").Type {
		t.Fatalf("sum type %s, want f64", c.env.Types.String(got))
	}
	if c.count(diag.SemaUnusedExpression) != 1 {
		t.Errorf("expected an unused expression warning:\n%s", c.diags())
	}
}
