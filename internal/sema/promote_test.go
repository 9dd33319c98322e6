package sema

import (
	"fmt"
	"testing"

	"flint/internal/ast"
	"flint/internal/diag"
)

type numeric struct {
	name   string
	float  bool
	signed bool
	width  int
}

var numerics = []numeric{
	{"i8", false, true, 8}, {"i16", false, true, 16}, {"i32", false, true, 32}, {"i64", false, true, 64},
	{"u8", false, false, 8}, {"u16", false, false, 16}, {"u32", false, false, 32}, {"u64", false, false, 64},
	{"f32", true, true, 32}, {"f64", true, true, 64},
}

// promoted is the lattice result, or "" for mixed signedness.
func promoted(a, b numeric) string {
	switch {
	case a.float && b.float:
		if a.width >= b.width {
			return a.name
		}
		return b.name
	case a.float:
		return a.name
	case b.float:
		return b.name
	case a.signed != b.signed:
		return ""
	case a.width >= b.width:
		return a.name
	default:
		return b.name
	}
}

func TestPromotionIsSymmetric(t *testing.T) {
	for _, a := range numerics {
		for _, b := range numerics {
			if a == b {
				continue
			}
			t.Run(a.name+"_"+b.name, func(t *testing.T) {
				src := fmt.Sprintf("a: %s = 1\nb: %s = 1\nab := a + b\nba := b + a\nlt := a < b\n", a.name, b.name)
				c := checkSource(t, src)
				want := promoted(a, b)
				if want == "" {
					if n := c.count(diag.SemaMixedSignedness); n != 3 {
						t.Fatalf("got %d signedness errors, want 3:\n%s", n, c.diags())
					}
					return
				}
				c.clean(t)
				if got := c.typeOf(t, "ab"); got != want {
					t.Errorf("a + b: got %s, want %s", got, want)
				}
				if got := c.typeOf(t, "ba"); got != want {
					t.Errorf("b + a: got %s, want %s", got, want)
				}
				if got := c.typeOf(t, "lt"); got != "bool" {
					t.Errorf("a < b: got %s, want bool", got)
				}
			})
		}
	}
}

func TestPromotionConversionMarkers(t *testing.T) {
	tests := []struct {
		a, b string
		side int // 0: left operand converted, 1: right
		want ConvKind
	}{
		{"i8", "i64", 0, ConvSignExtend},
		{"u64", "u16", 1, ConvZeroExtend},
		{"f32", "f64", 0, ConvFloatExtend},
		{"f32", "i64", 1, ConvIntToFloat},
	}
	for _, tc := range tests {
		c := checkSource(t, fmt.Sprintf("a: %s = 1\nb: %s = 1\nr := a * b", tc.a, tc.b)).clean(t)
		x, _ := c.env.Builder.Infix(c.nodes(ast.KindInfix)[0])
		operands := []ast.NodeID{x.X, x.Y}
		conv, ok := c.env.Info.Conversions[operands[tc.side]]
		if !ok || conv.Kind != tc.want {
			t.Errorf("%s * %s: conversion %v (recorded %v), want %v", tc.a, tc.b, conv.Kind, ok, tc.want)
		}
		if _, ok := c.env.Info.Conversions[operands[1-tc.side]]; ok {
			t.Errorf("%s * %s: both operands converted", tc.a, tc.b)
		}
	}
}

func TestLiteralAdoptsOtherOperand(t *testing.T) {
	c := checkSource(t, "x: u8 = 1\nl := 1 + x\nr := x + 1\nf: f32 = 1.0\ng := 2 * f\nh := 0.5 + f").clean(t)
	for name, want := range map[string]string{"l": "u8", "r": "u8", "g": "f32", "h": "f32"} {
		if got := c.typeOf(t, name); got != want {
			t.Errorf("%s: got %s, want %s", name, got, want)
		}
	}
}

func TestOperatorApplicability(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"a := true + 1", diag.SemaInvalidOperand},
		{"f := 1.5\nm := f % 2.0", diag.SemaInvalidOperand},
		{"f := 1.5\ns := f << 1", diag.SemaInvalidOperand},
		{"a := 1 && true", diag.SemaInvalidOperand},
		{"a := 1\nb := !a", diag.SemaInvalidOperand},
		{"b := true < false", diag.SemaInvalidOperand},
		{"x: u8 = 300", diag.SemaLiteralOverflow},
		{"x: u32 = -1", diag.SemaLiteralOverflow},
		{"x: i8 = -129", diag.SemaLiteralOverflow},
	}
	for _, tc := range tests {
		c := checkSource(t, tc.src)
		if c.count(tc.code) == 0 {
			t.Errorf("%q: no %v diagnostic:\n%s", tc.src, tc.code, c.diags())
		}
	}
	checkSource(t, "x: i8 = -128\ny: u64 = 18446744073709551615\nb := true == false").clean(t)
}

func TestIntegerNegation(t *testing.T) {
	c := checkSource(t, "x := 5\ny := -x\nf := 1.5\ng := -f")
	d := c.first(t, diag.SemaIntegerNegation)
	if len(d.Notes) == 0 || d.Notes[0].Msg != "write '0 - x' to negate an integer" {
		t.Fatalf("missing hint note: %+v", d.Notes)
	}
	if c.count(diag.SemaIntegerNegation) != 1 {
		t.Fatalf("float negation was rejected:\n%s", c.diags())
	}
	if got := c.typeOf(t, "g"); got != "f64" {
		t.Fatalf("g: got %s", got)
	}
}
