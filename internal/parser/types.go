package parser

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/token"
)

// parseType parses a type expression. Composite literals are off so that a
// following '{' belongs to the enclosing construct.
func (p *Parser) parseType() ast.NodeID {
	p.push(0, AllowExprList|AllowAssignOrDecl|AllowCompositeLit)
	defer p.pop()
	if p.peek().Terminates() {
		p.err(diag.SynExpectType, "expected type")
		return p.invalid(p.diagSpan(), "")
	}
	return p.expression(bpList)
}

func (p *Parser) parseStructType() ast.NodeID {
	start := p.advance().Span
	fields := p.parseFieldBlock(StructBody, "struct")
	return p.b.New(p.spanFrom(start), &ast.StructType{Fields: fields})
}

func (p *Parser) parseUnionType() ast.NodeID {
	start := p.advance().Span
	fields := p.parseFieldBlock(UnionBody, "union")
	return p.b.New(p.spanFrom(start), &ast.UnionType{Fields: fields})
}

// parseFieldBlock: { a, b: T; c: U } - поля разделяются переводом строки, ';' или ','.
func (p *Parser) parseFieldBlock(body Context, what string) []ast.NodeID {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after "+what); !ok {
		return nil
	}
	p.push(body, exprFlags|FunctionBody|Foreign|Breakable|Continuable|AllowCase)
	defer p.pop()

	var fields []ast.NodeID
	for {
		p.skipSeparators(token.Comma)
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		field, ok := p.parseField()
		fields = append(fields, field)
		if !ok {
			p.resync()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close "+what)
	return fields
}

func (p *Parser) parseField() (ast.NodeID, bool) {
	start := p.peek().Span
	var names []ast.NodeID
	for {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
		if !ok {
			return p.invalid(name.Span, ""), false
		}
		names = append(names, p.b.NewIdent(name.Span, name.Text, false))
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after field name"); !ok {
		return p.b.New(p.spanFrom(start), &ast.Field{Names: names, Type: p.invalid(p.diagSpan(), "")}), false
	}
	typ := p.parseType()
	return p.b.New(p.spanFrom(start), &ast.Field{Names: names, Type: typ}), true
}

// parseEnumType: enum [backing] { A, B = 2, C }
func (p *Parser) parseEnumType() ast.NodeID {
	start := p.advance().Span
	var backing ast.NodeID
	if !p.at(token.LBrace) {
		backing = p.parseType()
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after enum"); !ok {
		return p.b.New(p.spanFrom(start), &ast.EnumType{Backing: backing})
	}
	p.push(EnumBody, exprFlags|FunctionBody|Foreign|Breakable|Continuable|AllowCase)
	var cases []ast.NodeID
	for {
		p.skipSeparators(token.Comma)
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum case name")
		if !ok {
			p.resync()
			continue
		}
		id := p.b.NewIdent(name.Span, name.Text, false)
		var value ast.NodeID
		if p.eat(token.Assign) {
			value = p.expression(bpList)
		}
		cases = append(cases, p.b.New(p.spanFrom(name.Span), &ast.EnumCase{Name: id, Value: value}))
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close enum")
	p.pop()
	return p.b.New(p.spanFrom(start), &ast.EnumType{Backing: backing, Cases: cases})
}
