package lexer

import (
	"golang.org/x/text/unicode/norm"

	"flint/internal/diag"
	"flint/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует идентификатор, ключевое слово или директиву.
// Ведущий '#' допускается; неизвестная директива остаётся Ident с '#',
// о ней сообщает парсер. Не-ASCII идентификаторы приводятся к NFC.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	hash := lx.cursor.Eat('#')

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		if hash {
			return lx.invalid(start, diag.LexUnknownChar, "expected directive name after '#'")
		}
		lx.bumpRune()
		return lx.invalid(start, diag.LexUnknownChar, "unknown character")
	}
	ascii := true
	for {
		r, sz = lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		if r >= utf8RuneSelf {
			ascii = false
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Slice(start)
	if hash {
		if k, ok := token.LookupDirective(text); ok {
			return token.Token{Kind: k, Span: sp, Text: text}
		}
		return token.Token{Kind: token.Ident, Span: sp, Text: text}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	if !ascii && !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
