package lexer

import (
	"flint/internal/diag"
	"flint/internal/source"
	"flint/internal/token"
)

// Lexer turns one source file into tokens on demand.
// Newlines are significant and come out as a single Newline token per run;
// spaces, tabs, carriage returns and comments are skipped.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   []token.Token // буфер lookahead/pushback, look[0] выдаётся первым
	eof    bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being tokenized.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		lx.look = lx.look[1:]
		return tok
	}
	return lx.scan()
}

// Peek returns the token aheadBy positions after the next one without
// consuming anything; Peek(0) is the token Next would return.
func (lx *Lexer) Peek(aheadBy int) token.Token {
	for len(lx.look) <= aheadBy {
		lx.look = append(lx.look, lx.scan())
	}
	return lx.look[aheadBy]
}

// Unread pushes tok back so the following Next returns it.
func (lx *Lexer) Unread(tok token.Token) {
	lx.look = append([]token.Token{tok}, lx.look...)
}

func (lx *Lexer) scan() token.Token {
	if lx.skipTrivia() {
		return lx.scanNewlines()
	}
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '"':
		return lx.scanString()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '#' || isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case ch == '/' && lx.cursor.PeekAt(1) == '*':
		// незакрытый блочный комментарий: skipTrivia оставил курсор на нём
		return lx.scanUnterminatedComment()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) invalid(start Mark, code diag.Code, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.report(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Slice(start)}
}
