package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/source"
	"flint/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.fl", []byte(input))
	bag := diag.NewBag(0)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectTokens(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if len(tokens) != len(expected) {
		t.Fatalf("input %q: expected %d tokens, got %s", input, len(expected), tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("input %q token %d: expected %v, got %v (%q)", input, i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

func TestDeclarationTokens(t *testing.T) {
	expectTokens(t, "a: i64 = 10;",
		token.Ident, token.Colon, token.Ident, token.Assign, token.IntLit, token.Semicolon)
	expectTokens(t, "a := 99",
		token.Ident, token.ColonAssign, token.IntLit)
	expectTokens(t, "Point :: struct { x: f32 }",
		token.Ident, token.ColonColon, token.KwStruct, token.LBrace,
		token.Ident, token.Colon, token.Ident, token.RBrace)
}

func TestTwoCharOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"+=", token.PlusAssign},
		{"-=", token.MinusAssign},
		{"*=", token.StarAssign},
		{"/=", token.SlashAssign},
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{"<=", token.LtEq},
		{">=", token.GtEq},
		{"..", token.DotDot},
		{"->", token.Arrow},
		{"::", token.ColonColon},
		{":=", token.ColonAssign},
		{"&&", token.AndAnd},
		{"||", token.OrOr},
		{"<<", token.Shl},
		{">>", token.Shr},
	}
	for _, tt := range tests {
		toks := expectTokens(t, tt.input, tt.kind)
		if toks[0].Text != tt.input {
			t.Errorf("%q: text %q", tt.input, toks[0].Text)
		}
	}
}

func TestNewlinesAreCoalesced(t *testing.T) {
	expectTokens(t, "a\n\n  // comment\n\r\nb",
		token.Ident, token.Newline, token.Ident)
}

func TestNestedBlockComment(t *testing.T) {
	expectTokens(t, "a /* outer /* inner */ still comment */ b",
		token.Ident, token.Ident)
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, bag := makeTestLexer("a /* open /* nested */")
	toks := collectAllTokens(lx)
	if len(toks) != 2 || toks[1].Kind != token.Invalid {
		t.Fatalf("got %s", tokensToString(toks))
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("unexpected diagnostics %+v", bag.Items())
	}
}

func TestStringLiterals(t *testing.T) {
	toks := expectTokens(t, `"hello\nworld\t"`, token.StringLit)
	if got := toks[0].Lit.Str; got != "hello\nworld\\t" {
		t.Errorf("payload %q", got)
	}

	lx, bag := makeTestLexer("\"abc\nx")
	got := collectAllTokens(lx)
	if got[0].Kind != token.Invalid || got[0].Text != `"abc` {
		t.Fatalf("got %s", tokensToString(got))
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("code = %v", bag.Items()[0].Code)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		i     uint64
		f     float64
	}{
		{"42", token.IntLit, 42, 0},
		{"1_000", token.IntLit, 1000, 0},
		{"0xFF", token.IntLit, 255, 0},
		{"0o17", token.IntLit, 15, 0},
		{"0b101", token.IntLit, 5, 0},
		{"0d99", token.IntLit, 99, 0},
		{"3.25", token.FloatLit, 0, 3.25},
		{"1e3", token.FloatLit, 0, 1000},
		{"2.5e-1", token.FloatLit, 0, 0.25},
		{"0xE", token.IntLit, 14, 0},
	}
	for _, tt := range tests {
		toks := expectTokens(t, tt.input, tt.kind)
		if tt.kind == token.IntLit && toks[0].Lit.Int != tt.i {
			t.Errorf("%q: int %d, want %d", tt.input, toks[0].Lit.Int, tt.i)
		}
		if tt.kind == token.FloatLit && toks[0].Lit.Float != tt.f {
			t.Errorf("%q: float %v, want %v", tt.input, toks[0].Lit.Float, tt.f)
		}
	}
}

func TestRangeKeepsDotDot(t *testing.T) {
	expectTokens(t, "1..5", token.IntLit, token.DotDot, token.IntLit)
}

func TestInvalidNumbers(t *testing.T) {
	for _, input := range []string{"0x1.5", "12abc", "0b102", "0x"} {
		lx, bag := makeTestLexer(input)
		toks := collectAllTokens(lx)
		if len(toks) != 1 || toks[0].Kind != token.Invalid || toks[0].Text != input {
			t.Errorf("%q: got %s", input, tokensToString(toks))
			continue
		}
		if bag.Len() != 1 || bag.Items()[0].Code != diag.LexBadNumber {
			t.Errorf("%q: diagnostics %+v", input, bag.Items())
		}
	}
}

func TestKeywordsAndDirectives(t *testing.T) {
	expectTokens(t, "#import \"std.fl\" fn for switch case #cvargs",
		token.DirImport, token.StringLit, token.KwFn, token.KwFor, token.KwSwitch, token.KwCase, token.DirCVargs)

	toks := expectTokens(t, "#bogus", token.Ident)
	if toks[0].Text != "#bogus" {
		t.Errorf("text %q", toks[0].Text)
	}
}

func TestIdentifierNFC(t *testing.T) {
	// "é" в разложенной форме: e + U+0301
	toks := expectTokens(t, "cafe\u0301", token.Ident)
	if toks[0].Text != "caf\u00e9" {
		t.Errorf("text %q not NFC", toks[0].Text)
	}
}

func TestPeekAndUnread(t *testing.T) {
	lx, _ := makeTestLexer("a b c")
	if got := lx.Peek(2); got.Text != "c" {
		t.Fatalf("Peek(2) = %q", got.Text)
	}
	if got := lx.Peek(0); got.Text != "a" {
		t.Fatalf("Peek(0) = %q", got.Text)
	}
	a := lx.Next()
	lx.Unread(a)
	if got := lx.Next(); got.Text != "a" {
		t.Fatalf("after Unread got %q", got.Text)
	}
	if got := lx.Next(); got.Text != "b" {
		t.Fatalf("got %q", got.Text)
	}
	lx.Next()
	for range 3 {
		if got := lx.Next(); got.Kind != token.EOF {
			t.Fatalf("expected sticky EOF, got %v", got.Kind)
		}
	}
}

func TestUnknownCharacter(t *testing.T) {
	lx, bag := makeTestLexer("a @ b")
	toks := collectAllTokens(lx)
	if len(toks) != 3 || toks[1].Kind != token.Invalid || toks[1].Text != "@" {
		t.Fatalf("got %s", tokensToString(toks))
	}
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("code %v", bag.Items()[0].Code)
	}
}

func TestSpansPointAtSource(t *testing.T) {
	lx, _ := makeTestLexer("ab  := 12")
	toks := collectAllTokens(lx)
	want := [][2]uint32{{0, 2}, {4, 6}, {7, 9}}
	for i, w := range want {
		if toks[i].Span.Start != w[0] || toks[i].Span.End != w[1] {
			t.Errorf("token %d span %v, want %v", i, toks[i].Span, w)
		}
	}
}
