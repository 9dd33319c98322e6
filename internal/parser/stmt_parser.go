package parser

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/token"
)

// parseStmtList разбирает операторы до '}' / EOF либо пока stop() не скажет хватит.
func (p *Parser) parseStmtList(stop func() bool) []ast.NodeID {
	var stmts []ast.NodeID
	for {
		p.skipSeparators()
		if p.at(token.EOF) || p.at(token.RBrace) || stop() {
			return stmts
		}
		stmt := p.parseStmt()
		if stmt.IsValid() {
			stmts = append(stmts, stmt)
		}
		p.endStmt()
	}
}

// endStmt требует терминатор после оператора; иначе репорт и resync.
func (p *Parser) endStmt() {
	tok := p.peek()
	if tok.Terminates() || (tok.Kind == token.KwCase && p.has(AllowCase)) {
		return
	}
	p.report(diag.SynUnexpectedToken, tok.Span, "expected newline or ';' after statement, found "+describe(tok))
	p.resync()
}

// resync прокручивает до ближайшей границы оператора (newline, ';', '}', EOF).
func (p *Parser) resync() {
	for {
		tok := p.lx.Peek(0)
		if tok.Terminates() {
			return
		}
		p.advance()
	}
}

func (p *Parser) skipSeparators(extra ...token.Kind) {
	for {
		k := p.lx.Peek(0).Kind
		if k == token.Newline || k == token.Semicolon {
			p.lx.Next()
			continue
		}
		skipped := false
		for _, e := range extra {
			if k == e {
				p.advance()
				skipped = true
			}
		}
		if !skipped {
			return
		}
	}
}

func (p *Parser) parseStmt() ast.NodeID {
	tok := p.peek()
	switch tok.Kind {
	case token.LBrace:
		p.push(AllowCompositeLit, exprFlags|AllowCase)
		defer p.pop()
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwFor:
		return p.parseFor(ast.NoNodeID)
	case token.KwSwitch:
		return p.parseSwitch(ast.NoNodeID)
	case token.KwCase:
		p.report(diag.SynCaseOutsideSwitch, tok.Span, "'case' outside of a switch")
		p.resync()
		return p.invalid(tok.Span, tok.Text)
	case token.KwBreak, token.KwContinue, token.KwFallthrough:
		return p.parseBranch()
	case token.KwReturn:
		return p.parseReturn()
	case token.DirImport, token.DirLibrary, token.DirForeign, token.DirCallingConvention,
		token.DirLinkName, token.DirDiscardable:
		return p.parseDirective()
	case token.Ident:
		if next := p.peekAt(1).Kind; next == token.Colon {
			switch p.peekAt(2).Kind {
			case token.KwFor:
				return p.parseLabeled(tok)
			case token.KwSwitch:
				return p.parseLabeled(tok)
			}
		}
	}
	return p.parseSimpleStmt()
}

// parseSimpleStmt: выражение, объявление или присваивание.
func (p *Parser) parseSimpleStmt() ast.NodeID {
	p.push(AllowExprList|AllowAssignOrDecl|AllowCompositeLit, SuppressTerminators)
	defer p.pop()
	return p.expression(bpNone)
}

// parseHeaderStmt is parseSimpleStmt for if/for/switch headers, where '{'
// opens the body instead of a composite literal.
func (p *Parser) parseHeaderStmt() ast.NodeID {
	p.push(AllowExprList|AllowAssignOrDecl, SuppressTerminators|AllowCompositeLit)
	defer p.pop()
	return p.expression(bpNone)
}

// parseBlock: { stmts }. Caller decides which context flags survive.
func (p *Parser) parseBlock() ast.NodeID {
	start, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return p.invalid(start.Span, "")
	}
	stmts := p.parseStmtList(func() bool { return false })
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close block")
	return p.b.New(p.spanFrom(start.Span), &ast.Block{Stmts: stmts})
}

func (p *Parser) parseLabeled(name token.Token) ast.NodeID {
	p.advance() // name
	p.advance() // :
	label := p.b.NewIdent(name.Span, name.Text, false)
	if p.at(token.KwFor) {
		return p.parseFor(label)
	}
	return p.parseSwitch(label)
}
