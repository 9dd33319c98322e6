package lexer

import (
	"flint/internal/diag"
	"flint/internal/token"
)

// skipTrivia пропускает пробелы и комментарии в пределах строки.
// Возвращает true, если курсор стоит на '\n'.
// Незакрытый блочный комментарий не пропускается: курсор остаётся на "/*".
func (lx *Lexer) skipTrivia() bool {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t' || b == '\r':
			lx.cursor.Bump()
		case b == '\n':
			return true
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			start := lx.cursor.Mark()
			if !lx.skipBlockComment() {
				lx.cursor.Off = uint32(start)
				return false
			}
		default:
			return false
		}
	}
	return false
}

// scanNewlines coalesces a run of newlines (and the trivia between them)
// into one Newline token spanning the first '\n'.
func (lx *Lexer) scanNewlines() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	for lx.skipTrivia() {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Newline, Span: sp, Text: "\n"}
}

// skipBlockComment consumes a nested /* */ comment; false when EOF comes first.
func (lx *Lexer) skipBlockComment() bool {
	lx.cursor.Bump()
	lx.cursor.Bump()
	depth := 1
	for depth > 0 {
		if lx.cursor.EOF() {
			return false
		}
		switch {
		case lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		case lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	return true
}

func (lx *Lexer) scanUnterminatedComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	return lx.invalid(start, diag.LexUnterminatedBlockComment, "unterminated block comment")
}
