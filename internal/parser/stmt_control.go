package parser

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/token"
)

// parseCond parses an if/for/switch header expression.
func (p *Parser) parseCond() ast.NodeID {
	p.push(0, exprFlags)
	defer p.pop()
	return p.expression(bpNone)
}

// parseBody parses a block nested in a statement, adding the given permissions.
func (p *Parser) parseBody(set Context) ast.NodeID {
	p.push(set|AllowCompositeLit, exprFlags|AllowCase)
	defer p.pop()
	return p.parseBlock()
}

func (p *Parser) parseIf() ast.NodeID {
	start := p.advance().Span // if
	n := &ast.If{Cond: p.parseCond()}
	n.Then = p.parseBody(0)

	// "}\nelse" - перевод строки перед else допускается
	if p.lx.Peek(0).Kind == token.Newline && p.lx.Peek(1).Kind == token.KwElse {
		p.lx.Next()
	}
	if p.eat(token.KwElse) {
		if p.at(token.KwIf) {
			n.Else = p.parseIf()
		} else {
			n.Else = p.parseBody(0)
		}
	}
	return p.b.New(p.spanFrom(start), n)
}

// parseFor: for {}, for cond {}, for init; cond; step {}.
func (p *Parser) parseFor(label ast.NodeID) ast.NodeID {
	start := p.advance().Span // for
	if label.IsValid() {
		start = p.b.Span(label)
	}
	n := &ast.For{Label: label}
	if !p.at(token.LBrace) {
		var first ast.NodeID
		if !p.at(token.Semicolon) {
			first = p.parseHeaderStmt()
		}
		if p.eat(token.Semicolon) {
			n.Init = first
			if !p.at(token.Semicolon) {
				n.Cond = p.parseCond()
			}
			p.expect(token.Semicolon, diag.SynUnexpectedToken, "expected ';' after for condition")
			if !p.at(token.LBrace) {
				n.Step = p.parseHeaderStmt()
			}
		} else {
			n.Cond = first
		}
	}
	n.Body = p.parseBody(Breakable | Continuable)
	return p.b.New(p.spanFrom(start), n)
}

// parseSwitch: switch [subject] { case a, b: ... case: ... }
func (p *Parser) parseSwitch(label ast.NodeID) ast.NodeID {
	start := p.advance().Span // switch
	if label.IsValid() {
		start = p.b.Span(label)
	}
	n := &ast.Switch{Label: label}
	if !p.at(token.LBrace) {
		n.Subject = p.parseCond()
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after switch"); !ok {
		return p.b.New(p.spanFrom(start), n)
	}

	p.push(AllowCase|Breakable|AllowCompositeLit, exprFlags)
	for {
		p.skipSeparators()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		if !p.at(token.KwCase) {
			p.err(diag.SynUnexpectedToken, "expected 'case' in switch body, found "+describe(p.peek()))
			p.advance()
			p.resync()
			continue
		}
		n.Cases = append(n.Cases, p.parseCase())
	}
	p.pop()
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close switch")
	return p.b.New(p.spanFrom(start), n)
}

func (p *Parser) parseCase() ast.NodeID {
	start := p.advance().Span // case
	c := &ast.Case{}
	if !p.at(token.Colon) {
		c.Match = p.exprList()
	}
	p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after case")
	c.Body = p.parseStmtList(func() bool { return p.at(token.KwCase) })
	return p.b.New(p.spanFrom(start), c)
}

func (p *Parser) parseBranch() ast.NodeID {
	tok := p.advance()
	switch tok.Kind {
	case token.KwBreak:
		if !p.has(Breakable) {
			p.report(diag.SynBreakOutsideLoop, tok.Span, "'break' outside of a loop or switch")
		}
	case token.KwContinue:
		if !p.has(Continuable) {
			p.report(diag.SynContinueOutsideLoop, tok.Span, "'continue' outside of a loop")
		}
	case token.KwFallthrough:
		if !p.has(AllowCase) {
			p.report(diag.SynFallthroughOutsideCase, tok.Span, "'fallthrough' outside of a case")
		}
	}
	n := &ast.Branch{Tok: tok.Kind}
	if tok.Kind != token.KwFallthrough && p.at(token.Ident) {
		name := p.advance()
		n.Label = p.b.NewIdent(name.Span, name.Text, false)
	}
	return p.b.New(p.spanFrom(tok.Span), n)
}

func (p *Parser) parseReturn() ast.NodeID {
	tok := p.advance()
	n := &ast.Return{}
	if next := p.peek(); !next.Terminates() && !(next.Kind == token.KwCase && p.has(AllowCase)) {
		n.Values = p.exprList()
	}
	return p.b.New(p.spanFrom(tok.Span), n)
}
