package sema

import (
	"strings"
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
)

// calls returns the call records in source order.
func (c *checked) calls() []*CallInfo {
	var out []*CallInfo
	for _, id := range c.nodes(ast.KindCall) {
		if ci := c.env.Info.Calls[id]; ci != nil {
			out = append(out, ci)
		}
	}
	return out
}

func (c *checked) specializations(t *testing.T, name string) []*Specialization {
	t.Helper()
	fi := c.env.Info.Funcs[c.entity(t, name).Value]
	if fi == nil {
		t.Fatalf("%s has no function info", name)
	}
	return fi.Specializations
}

// boundValue prints the value bound to a compile-time name in the scope of
// a specialization.
func (c *checked) boundValue(t *testing.T, sp *Specialization, name string) string {
	t.Helper()
	syms := c.env.Symbols
	for i := 1; i <= syms.Scopes.Len(); i++ {
		scope := symbols.ScopeID(i)
		sc := syms.Scope(scope)
		if sc.Kind != symbols.ScopeSpecialization || sc.Owner != sp.Node {
			continue
		}
		ent, ok := syms.LookupString(scope, name)
		if !ok {
			t.Fatalf("%s is not bound", name)
		}
		return c.print(syms.Entity(ent).Value)
	}
	t.Fatalf("no scope for specialization %v", sp.Node)
	return ""
}

func TestExplicitConstantParameterIsStripped(t *testing.T) {
	src := `scale :: fn ($N: i64, x: i64) -> i64 {
	return x * N
}
y := scale(3, 5)
z := scale(4, 6)
w := scale(3, 7)
`
	c := checkSource(t, src).clean(t)
	if got := c.typeOf(t, "y"); got != "i64" {
		t.Fatalf("y: %s", got)
	}
	specs := c.specializations(t, "scale")
	if len(specs) != 2 {
		t.Fatalf("got %d specializations", len(specs))
	}
	for _, sp := range specs {
		if got := c.env.Types.String(sp.Type); got != "fn (i64) -> i64" {
			t.Fatalf("specialized type %s", got)
		}
		lit, _ := c.env.Builder.FuncLit(sp.Node)
		if len(lit.Params) != 1 {
			t.Fatalf("specialized copy keeps %d params", len(lit.Params))
		}
	}
	calls := c.calls()
	if len(calls) != 3 {
		t.Fatalf("got %d calls", len(calls))
	}
	want := []*Specialization{specs[0], specs[1], specs[0]}
	for i, ci := range calls {
		if ci.Kind != CallSpecialized || ci.Spec != want[i] {
			t.Fatalf("call %d: %+v", i, ci)
		}
		if len(ci.Args) != 1 {
			t.Fatalf("call %d keeps %d arguments", i, len(ci.Args))
		}
	}
	for i, wantN := range []string{"3", "4"} {
		if got := c.boundValue(t, specs[i], "N"); got != wantN {
			t.Errorf("specialization %d: N = %s, want %s", i, got, wantN)
		}
	}
}

func TestConstantParameterFollowsCompileTimeNames(t *testing.T) {
	src := `scale :: fn ($N: i64, x: i64) -> i64 {
	return x * N
}
K :: 4
a := scale(K, 1)
b := scale(4, 2)
`
	c := checkSource(t, src).clean(t)
	if specs := c.specializations(t, "scale"); len(specs) != 1 {
		t.Fatalf("got %d specializations", len(specs))
	}
}

func TestConstantParameterRejectsRuntimeValue(t *testing.T) {
	src := `scale :: fn ($N: i64, x: i64) -> i64 {
	return x * N
}
n := 3
y := scale(n, 5)
`
	c := checkSource(t, src)
	if c.count(diag.SemaInvalidConstant) != 1 {
		t.Fatalf("want one invalid constant diagnostic, have:\n%s", c.diags())
	}
}

func TestTypeParameter(t *testing.T) {
	src := `zero :: fn ($T: type) -> T {
	v: T
	return v
}
a := zero(f64)
b := zero(i32)
`
	c := checkSource(t, src).clean(t)
	if got := c.typeOf(t, "a"); got != "f64" {
		t.Errorf("a: %s", got)
	}
	if got := c.typeOf(t, "b"); got != "i32" {
		t.Errorf("b: %s", got)
	}
	specs := c.specializations(t, "zero")
	if len(specs) != 2 {
		t.Fatalf("got %d specializations", len(specs))
	}
	if got := c.env.Types.String(specs[1].Type); got != "fn () -> i32" {
		t.Errorf("second specialization %s", got)
	}

	bad := checkSource(t, "zero :: fn ($T: type) -> T {\n\tv: T\n\treturn v\n}\nn := zero(1)")
	if bad.count(diag.SemaNotAType) != 1 {
		t.Fatalf("value for a type parameter:\n%s", bad.diags())
	}
}

func TestSpecializationCacheReuse(t *testing.T) {
	src := `same :: fn (x: $T) -> T {
	return x
}
a := same(1)
b := same(2.5)
d := same(7)
`
	c := checkSource(t, src).clean(t)
	specs := c.specializations(t, "same")
	if len(specs) != 2 {
		t.Fatalf("got %d specializations", len(specs))
	}
	calls := c.calls()
	if len(calls) != 3 {
		t.Fatalf("got %d calls", len(calls))
	}
	if calls[0].Spec != calls[2].Spec || calls[0].Spec == calls[1].Spec {
		t.Fatal("calls with the same bound type must share one specialization")
	}
	// implicit parameters stay runtime arguments
	if len(calls[0].Args) != 1 {
		t.Fatalf("implicit parameter stripped: %d args", len(calls[0].Args))
	}
}

func TestSpecializationErrorCarriesCallSite(t *testing.T) {
	src := `bad :: fn (x: $T) -> T {
	return x + true
}
r := bad(1)
`
	c := checkSource(t, src)
	if !c.bag.HasErrors() {
		t.Fatal("expected an error in the specialized body")
	}
	d := c.bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "called from: bad(1)" {
		t.Fatalf("notes: %+v", d.Notes)
	}
}

func TestNestedSpecializationNotes(t *testing.T) {
	src := `inner :: fn (x: $T) -> T {
	return x + true
}
outer :: fn (y: $U) -> U {
	return inner(y)
}
r := outer(1)
`
	c := checkSource(t, src)
	items := c.bag.Items()
	if len(items) != 1 {
		t.Fatalf("got %d diagnostics:\n%s", len(items), c.diags())
	}
	var got []string
	for _, n := range items[0].Notes {
		got = append(got, n.Msg)
	}
	want := "called from: inner(y)|called from: outer(1)"
	if strings.Join(got, "|") != want {
		t.Fatalf("notes %q, want innermost first", got)
	}
}

func TestRecursivePolymorphicCall(t *testing.T) {
	src := `count :: fn (x: $T, n: i64) -> i64 {
	if n == 0 {
		return 0
	}
	return count(x, n - 1) + 1
}
k := count(1.5, 3)
`
	c := checkSource(t, src).clean(t)
	if specs := c.specializations(t, "count"); len(specs) != 1 {
		t.Fatalf("recursion produced %d specializations", len(specs))
	}
}

func TestPolymorphicMisuse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"stored in a variable", "same :: fn (x: $T) -> T {\n\treturn x\n}\nf := same", diag.SemaPolymorphicValue},
		{"binder outside params", "x := $T", diag.SemaPolymorphicValue},
		{"arity", "same :: fn (x: $T) -> T {\n\treturn x\n}\nr := same(1, 2)", diag.SemaArity},
		{"second use mismatch", "pair :: fn (x: $T, y: T) -> T {\n\treturn x\n}\nr := pair(1, true)", diag.SemaTypeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := checkSource(t, tc.src)
			if c.count(tc.code) != 1 {
				t.Fatalf("want one %v:\n%s", tc.code, c.diags())
			}
		})
	}
}
