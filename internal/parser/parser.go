package parser

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/source"
	"flint/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser - состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	b        *ast.Builder
	opts     Options
	ctx      []Context
	file     *ast.File
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile parses every statement of the lexer's file. It never stops at an
// error: malformed constructs become Invalid nodes and parsing resumes at the
// next statement boundary.
func ParseFile(lx *lexer.Lexer, b *ast.Builder, opts Options) *ast.File {
	src := lx.File()
	p := &Parser{
		lx:   lx,
		b:    b,
		opts: opts,
		ctx:  []Context{rootContext},
		file: &ast.File{Path: src.Path, Source: src.ID},
	}
	p.lastSpan = source.Span{File: src.ID}

	start := p.peek().Span
	for {
		p.file.Stmts = append(p.file.Stmts, p.parseStmtList(func() bool { return false })...)
		if p.at(token.EOF) {
			break
		}
		tok := p.advance()
		p.report(diag.SynUnexpectedToken, tok.Span, "unexpected "+describe(tok))
	}
	p.file.Span = start.Cover(p.lastSpan)
	if len(p.ctx) != 1 {
		panic("parser: unbalanced grammar context")
	}
	return p.file
}

// peek возвращает текущий токен; при SuppressTerminators переводы строк пропускаются.
func (p *Parser) peek() token.Token {
	if p.has(SuppressTerminators) {
		for p.lx.Peek(0).Kind == token.Newline {
			p.lx.Next()
		}
	}
	return p.lx.Peek(0)
}

// peekAt looks past the current token without skipping newlines.
func (p *Parser) peekAt(n int) token.Token {
	p.peek()
	return p.lx.Peek(n)
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// advance - съедает текущий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	p.peek()
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Newline {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) skipNewlines() {
	for p.lx.Peek(0).Kind == token.Newline {
		p.lx.Next()
	}
}

// expect - ожидаем конкретный токен. Если нет - репортим и возвращаем (invalid,false).
// Токен при этом не съедается, чтобы resync мог остановиться на нём.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

// diagSpan - лучший span для диагностики: на EOF и переводе строки
// указываем сразу за последним съеденным токеном.
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF || tok.Kind == token.Newline {
		return p.lastSpan.ZeroAt()
	}
	return tok.Span
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	p.opts.CurrentErrors++
	if !p.opts.Enough() {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// spanFrom покрывает всё от start до последнего съеденного токена.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

func (p *Parser) invalid(sp source.Span, text string) ast.NodeID {
	return p.b.New(sp, &ast.Invalid{Text: text})
}

// explode превращает List в срез его элементов; одиночный узел - в срез из одного.
func (p *Parser) explode(id ast.NodeID) []ast.NodeID {
	if l, ok := p.b.List(id); ok {
		return l.Elems
	}
	return []ast.NodeID{id}
}
