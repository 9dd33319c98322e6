package lexer

import (
	"strconv"
	"strings"

	"flint/internal/diag"
	"flint/internal/token"
)

// scanNumber читает числовой литерал.
//
// Необязательный префикс 0x/0o/0b/0d задаёт основание, дальше идёт сплошной
// хвост из цифр, букв, '_' и '.', за которым следует цифра. Знак после e/E
// входит в хвост только для не-hex литералов. Литерал считается float, если
// в хвосте есть '.', либо e/E (кроме hex). Float с префиксом основания и
// неразбираемые цифры дают Invalid.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	base := 10
	prefixed := false
	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		case 'd', 'D':
			base = 10
		}
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X', 'o', 'O', 'b', 'B', 'd', 'D':
			prefixed = true
			lx.cursor.Bump()
			lx.cursor.Bump()
		}
	}

	digitsStart := lx.cursor.Mark()
	isFloat := false
run:
	for {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) || b == '_':
			lx.cursor.Bump()
		case b == '.' && isDec(lx.cursor.PeekAt(1)):
			isFloat = true
			lx.cursor.Bump()
		case (b == 'e' || b == 'E') && base != 16:
			isFloat = true
			lx.cursor.Bump()
			if s := lx.cursor.Peek(); s == '+' || s == '-' {
				lx.cursor.Bump()
			}
		case isIdentStartByte(b):
			lx.cursor.Bump()
		default:
			break run
		}
	}
	text := lx.cursor.Slice(start)
	digits := strings.ReplaceAll(lx.cursor.Slice(digitsStart), "_", "")

	if isFloat {
		if prefixed {
			return lx.invalid(start, diag.LexBadNumber, "float literal cannot have a radix prefix")
		}
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return lx.invalid(start, diag.LexBadNumber, "malformed float literal '"+text+"'")
		}
		return token.Token{Kind: token.FloatLit, Span: lx.cursor.SpanFrom(start), Text: text, Lit: token.Literal{Float: v}}
	}

	if digits == "" {
		return lx.invalid(start, diag.LexBadNumber, "expected digits after radix prefix")
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return lx.invalid(start, diag.LexBadNumber, "malformed integer literal '"+text+"'")
	}
	return token.Token{Kind: token.IntLit, Span: lx.cursor.SpanFrom(start), Text: text, Lit: token.Literal{Int: v}}
}
