package parser

import (
	"strings"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/token"
)

// expression - ядро Pratt: nud текущего токена, затем led, пока rbp < lbp(next).
func (p *Parser) expression(rbp int) ast.NodeID {
	left := p.nud()
	for rbp < p.lbp(p.peek()) {
		left = p.led(left)
	}
	return left
}

// exprList parses a comma-separated expression list and explodes it.
func (p *Parser) exprList() []ast.NodeID {
	p.push(AllowExprList, AllowAssignOrDecl)
	defer p.pop()
	return p.explode(p.expression(bpNone))
}

func (p *Parser) nud() ast.NodeID {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		if strings.HasPrefix(tok.Text, "#") {
			p.report(diag.SynUnknownDirective, tok.Span, "unknown directive '"+tok.Text+"'")
			return p.invalid(tok.Span, tok.Text)
		}
		return p.b.NewIdent(tok.Span, tok.Text, false)

	case token.Dollar:
		p.advance()
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected name after '$'")
		if !ok {
			return p.invalid(tok.Span, "$")
		}
		return p.b.NewIdent(p.spanFrom(tok.Span), name.Text, true)

	case token.IntLit:
		p.advance()
		return p.b.New(tok.Span, &ast.Lit{Kind: ast.LitInt, Text: tok.Text, Int: tok.Lit.Int})
	case token.FloatLit:
		p.advance()
		return p.b.New(tok.Span, &ast.Lit{Kind: ast.LitFloat, Text: tok.Text, Float: tok.Lit.Float})
	case token.StringLit:
		p.advance()
		return p.b.New(tok.Span, &ast.Lit{Kind: ast.LitString, Text: tok.Text, Str: tok.Lit.Str})
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.b.New(tok.Span, &ast.Lit{Kind: ast.LitBool, Text: tok.Text, Bool: tok.Kind == token.KwTrue})

	case token.LParen:
		p.advance()
		p.push(SuppressTerminators|AllowCompositeLit, AllowExprList|AllowAssignOrDecl)
		x := p.expression(bpNone)
		_, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'")
		p.pop()
		if !ok {
			return x
		}
		return p.b.New(p.spanFrom(tok.Span), &ast.Paren{X: x})

	case token.Minus, token.Bang, token.Amp, token.Star:
		p.advance()
		x := p.expression(bpPrefix)
		if tok.Kind == token.Minus {
			if lit, ok := p.b.Lit(x); ok && !lit.Neg && (lit.Kind == ast.LitInt || lit.Kind == ast.LitFloat) {
				// "-5" - отрицательный литерал, а не унарный минус
				lit.Neg = true
				p.b.Get(x).Span = p.spanFrom(tok.Span)
				return x
			}
		}
		return p.b.New(p.spanFrom(tok.Span), &ast.Prefix{Op: tok.Kind, X: x})

	case token.KwFn:
		return p.parseFuncLit()
	case token.KwStruct:
		return p.parseStructType()
	case token.KwUnion:
		return p.parseUnionType()
	case token.KwEnum:
		return p.parseEnumType()

	case token.Invalid:
		// лексер уже сообщил об ошибке
		p.advance()
		return p.invalid(tok.Span, tok.Text)
	}

	p.err(diag.SynExpectExpression, "expected expression, found "+describe(tok))
	if tok.Terminates() || tok.Kind == token.RParen || tok.Kind == token.Comma {
		return p.invalid(p.diagSpan(), "")
	}
	p.advance()
	return p.invalid(tok.Span, tok.Text)
}

func (p *Parser) led(left ast.NodeID) ast.NodeID {
	tok := p.peek()
	start := p.b.Span(left)
	switch tok.Kind {
	case token.Comma:
		p.advance()
		right := p.expression(bpList)
		if l, ok := p.b.List(left); ok {
			l.Elems = append(l.Elems, right)
			p.b.Get(left).Span = p.spanFrom(start)
			return left
		}
		return p.b.New(p.spanFrom(start), &ast.List{Elems: []ast.NodeID{left, right}})

	case token.Colon, token.ColonColon, token.ColonAssign:
		return p.parseDecl(left)

	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign:
		p.advance()
		rhs := p.exprList()
		return p.b.New(p.spanFrom(start), &ast.Assign{Op: tok.Kind, Lhs: p.explode(left), Rhs: rhs})

	case token.LParen:
		return p.parseCall(left)

	case token.Dot:
		p.advance()
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name after '.'")
		if !ok {
			return p.b.New(p.spanFrom(start), &ast.Selector{X: left, Sel: p.invalid(name.Span, "")})
		}
		sel := p.b.NewIdent(name.Span, name.Text, false)
		return p.b.New(p.spanFrom(start), &ast.Selector{X: left, Sel: sel})

	case token.LBrace:
		return p.parseCompositeLit(left)
	}

	// бинарные операторы, левоассоциативные
	bp := p.lbp(tok)
	p.advance()
	right := p.expression(bp)
	return p.b.New(p.spanFrom(start), &ast.Infix{Op: tok.Kind, X: left, Y: right})
}

func (p *Parser) parseCall(fun ast.NodeID) ast.NodeID {
	start := p.b.Span(fun)
	p.advance() // (
	p.push(SuppressTerminators|AllowCompositeLit, AllowExprList|AllowAssignOrDecl)
	var args []ast.NodeID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		args = append(args, p.expression(bpList))
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after arguments")
	p.pop()
	return p.b.New(p.spanFrom(start), &ast.Call{Fun: fun, Args: args})
}

// parseCompositeLit: Type{a, b} или Type{x: a, y: b}.
func (p *Parser) parseCompositeLit(typ ast.NodeID) ast.NodeID {
	start := p.b.Span(typ)
	p.advance() // {
	p.push(SuppressTerminators|AllowCompositeLit, AllowExprList|AllowAssignOrDecl)
	var elems []ast.NodeID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		elems = append(elems, p.parseCompositeElem())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close composite literal")
	p.pop()
	return p.b.New(p.spanFrom(start), &ast.CompositeLit{Type: typ, Elems: elems})
}

func (p *Parser) parseCompositeElem() ast.NodeID {
	tok := p.peek()
	if tok.Kind == token.Ident && p.peekAt(1).Kind == token.Colon {
		p.advance()
		p.advance() // :
		key := p.b.NewIdent(tok.Span, tok.Text, false)
		value := p.expression(bpList)
		return p.b.New(p.spanFrom(tok.Span), &ast.KeyValue{Key: key, Value: value})
	}
	return p.expression(bpList)
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Newline:
		return "newline"
	case token.Ident, token.IntLit, token.FloatLit, token.StringLit, token.Invalid:
		return "'" + tok.Text + "'"
	}
	return "'" + tok.Kind.String() + "'"
}
