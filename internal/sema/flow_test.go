package sema

import (
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
)

func TestSwitchDefaultPlacement(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		n    int
	}{
		{"no cases", "x := 1\nswitch x {\n}", diag.SemaMissingDefault, 1},
		{"only values", "x := 1\nswitch x {\ncase 1:\n\tx = 2\ncase 2:\n\tx = 3\n}", diag.SemaMissingDefault, 1},
		{"default first", "x := 1\nswitch x {\ncase:\n\tx = 0\ncase 1:\n\tx = 2\n}", diag.SemaDefaultNotLast, 1},
		{"default middle", "x := 1\nswitch x {\ncase 1:\ncase:\ncase 2:\n}", diag.SemaDefaultNotLast, 1},
		{"two defaults", "x := 1\nswitch x {\ncase:\ncase:\n}", diag.SemaDefaultNotLast, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := checkSource(t, tc.src)
			if got := c.count(tc.code); got != tc.n {
				t.Fatalf("got %d %v diagnostics, want %d:\n%s", got, tc.code, tc.n, c.diags())
			}
		})
	}
	checkSource(t, "x := 1\nswitch x {\ncase 1, 2:\n\tx = 2\ncase:\n\tx = 0\n}").clean(t)
	checkSource(t, "x := 1\nswitch x {\ncase:\n}").clean(t)
}

func TestSwitchCaseTypes(t *testing.T) {
	c := checkSource(t, "x := 1\nswitch x {\ncase 1.5:\ncase true:\ncase:\n}")
	if c.count(diag.SemaCaseType) != 2 {
		t.Fatalf("float and bool cases must not match an i64 subject:\n%s", c.diags())
	}
	c = checkSource(t, "x := 1\nswitch {\ncase x > 0:\ncase x:\ncase:\n}")
	if c.count(diag.SemaCaseType) != 1 {
		t.Fatalf("subjectless switch needs boolean cases:\n%s", c.diags())
	}
}

func TestBranchTargets(t *testing.T) {
	src := `f :: fn (x: i64) {
	outer: for {
		for {
			continue outer
		}
		break outer
	}
	sw: switch x {
	case 1:
		fallthrough
	case 2:
		break sw
	case:
		break
	}
	for i := 0; i < 3; i += 1 {
		continue
	}
}
`
	c := checkSource(t, src).clean(t)
	fors := c.nodes(ast.KindFor)
	switches := c.nodes(ast.KindSwitch)
	cases := c.nodes(ast.KindCase)
	branches := c.nodes(ast.KindBranch)
	want := []ast.NodeID{fors[0], fors[0], cases[1], switches[0], switches[0], fors[2]}
	if len(branches) != len(want) {
		t.Fatalf("found %d branches", len(branches))
	}
	for i, br := range branches {
		if got := c.env.Info.Targets[br]; got != want[i] {
			t.Errorf("%s targets %v, want %v", c.print(br), got, want[i])
		}
	}
}

func TestBranchErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"continue to switch", "f :: fn (x: i64) {\n\tsw: switch x {\n\tcase:\n\t\tfor { continue sw }\n\t}\n}"},
		{"unknown label", "f :: fn () {\n\tfor { break nowhere }\n}"},
		{"label of finished loop", "f :: fn () {\n\tdone: for { break }\n\tfor { break done }\n}"},
		{"fallthrough from last case", "x := 1\nswitch x {\ncase:\n\tfallthrough\n}"},
		{"label across function", "f :: fn () {\n\tl: for {\n\t\tg :: fn () { for { break l } }\n\t}\n}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := checkSource(t, tc.src)
			if c.count(diag.SemaBranchTarget) != 1 {
				t.Fatalf("expected one branch target error:\n%s", c.diags())
			}
		})
	}
}

func TestAutoLoopLabels(t *testing.T) {
	c := checkSource(t, "f :: fn () {\n\tfor { break }\n\tfor { break }\n}").clean(t)
	for i, id := range c.nodes(ast.KindFor) {
		scope := c.env.Info.Scopes[id]
		want := []string{"for.1", "for.2"}[i]
		if _, ok := c.env.Symbols.LookupString(scope, want); !ok {
			t.Errorf("loop %d has no %s label", i, want)
		}
	}
}

func TestReturns(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"f :: fn () -> i64 { return }", diag.SemaReturnArity},
		{"f :: fn () { return 1 }", diag.SemaReturnArity},
		{"f :: fn () -> (i64, bool) { return 1 }", diag.SemaReturnArity},
		{"f :: fn () -> i64 { return true }", diag.SemaTypeMismatch},
		{"return 1", diag.SemaReturnArity},
	}
	for _, tc := range tests {
		if c := checkSource(t, tc.src); c.count(tc.code) == 0 {
			t.Errorf("%q: no %v:\n%s", tc.src, tc.code, c.diags())
		}
	}
	checkSource(t, "two :: fn () -> (i64, bool) { return 1, true }\nfwd :: fn () -> (i64, bool) { return two() }").clean(t)
}

func TestConditionsAndAssignments(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"x := 1\nif x { x = 2 }", diag.SemaTypeMismatch},
		{"f :: fn () { for 1 {} }", diag.SemaTypeMismatch},
		{"K :: 3\nK = 4", diag.SemaNotAssignable},
		{"f :: fn () {}\nf = f", diag.SemaNotAssignable},
		{"x := 1\nx = 1.5", diag.SemaTypeMismatch},
		{"x := 1\ny := 2\nx, y = 1", diag.SemaArity},
		{"x: u8 = 1\nx += 1.5", diag.SemaTypeMismatch},
	}
	for _, tc := range tests {
		if c := checkSource(t, tc.src); c.count(tc.code) == 0 {
			t.Errorf("%q: no %v:\n%s", tc.src, tc.code, c.diags())
		}
	}
	src := `two :: fn () -> (i64, f64) { return 1, 2.0 }
a := 0
b := 0.0
a, b = two()
a, b = 3, 4.5
a += 1
p := &a
*p = 7
`
	checkSource(t, src).clean(t)
}

func TestForScopeShadows(t *testing.T) {
	c := checkSource(t, "i := 1.5\nf :: fn () {\n\tfor i := 0; i < 3; i += 1 {}\n}").clean(t)
	if got := c.typeOf(t, "i"); got != "f64" {
		t.Fatalf("outer i changed: %s", got)
	}
}
