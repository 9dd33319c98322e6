package lexer

import (
	"strings"

	"flint/internal/diag"
	"flint/internal/token"
)

// scanString читает строку до закрывающей кавычки без интерпретации escape,
// кроме "\n". Перевод строки или EOF до кавычки дают Invalid.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '"'
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return lx.invalid(start, diag.LexUnterminatedString, "unterminated string literal")
		}
		if lx.cursor.Bump() == '"' {
			break
		}
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Slice(start)
	body := text[1 : len(text)-1]
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: text,
		Lit:  token.Literal{Str: strings.ReplaceAll(body, `\n`, "\n")},
	}
}
