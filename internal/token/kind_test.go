package token_test

import (
	"testing"

	"flint/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"fn":          token.KwFn,
		"struct":      token.KwStruct,
		"fallthrough": token.KwFallthrough,
		"true":        token.KwTrue,
	}
	for lexeme, want := range cases {
		got, ok := token.LookupKeyword(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v,%v want %v", lexeme, got, ok, want)
		}
	}
	for _, s := range []string{"Fn", "i64", "let", "#import"} {
		if _, ok := token.LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true", s)
		}
	}
}

func TestLookupDirective(t *testing.T) {
	k, ok := token.LookupDirective("#foreign")
	if !ok || k != token.DirForeign || !k.IsDirective() {
		t.Fatalf("#foreign: %v %v", k, ok)
	}
	if _, ok := token.LookupDirective("#nope"); ok {
		t.Fatalf("unknown directive resolved")
	}
}

func TestKindStringsAreComplete(t *testing.T) {
	for k := token.Invalid; k <= token.GtEq; k++ {
		if s := k.String(); s == "" {
			t.Fatalf("kind %d has no name", k)
		}
	}
}

func TestTokensCompareByKind(t *testing.T) {
	a := token.Token{Kind: token.IntLit, Text: "1", Lit: token.Literal{Int: 1}}
	b := token.Token{Kind: token.IntLit, Text: "2", Lit: token.Literal{Int: 2}}
	if !a.Is(b.Kind) {
		t.Fatalf("tokens of one kind must compare equal")
	}
	if k, ok := token.PlusAssign.BinaryOf(); !ok || k != token.Plus {
		t.Fatalf("+= maps to %v", k)
	}
}
