package token

import (
	"flint/internal/source"
)

// Literal is the decoded payload of a literal token.
type Literal struct {
	Int   uint64
	Float float64
	Str   string
}

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Lit  Literal
}

// Is compares tokens by kind only.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Terminates reports whether the token ends a statement.
func (t Token) Terminates() bool {
	switch t.Kind {
	case Newline, Semicolon, EOF, RBrace:
		return true
	}
	return false
}

func (t Token) String() string {
	if t.Text != "" && (t.Kind == Ident || t.Kind.IsLiteral() || t.Kind == Invalid) {
		return t.Kind.String() + " " + t.Text
	}
	return t.Kind.String()
}
