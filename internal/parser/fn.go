package parser

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/token"
)

// parseFuncLit: fn (params) -> results { body }. Без тела - тип функции.
func (p *Parser) parseFuncLit() ast.NodeID {
	start := p.advance().Span // fn
	lit := &ast.FuncLit{}
	lit.Params = p.parseParams()

	if p.eat(token.Arrow) {
		lit.Results = p.parseResults()
	}

	if p.at(token.LBrace) {
		if p.has(Foreign) {
			p.err(diag.SynForeignBody, "foreign function cannot have a body")
		}
		p.push(FunctionBody|AllowCompositeLit, exprFlags|Breakable|Continuable|AllowCase|Foreign|StructBody|UnionBody|EnumBody)
		lit.Body = p.parseBlock()
		p.pop()
	}
	return p.b.New(p.spanFrom(start), lit)
}

// parseParams разбирает список параметров.
//
// Элементы до ':' становятся именами одной группы (a, b: T); элементы без
// типа в конце - безымянные параметры типа функции. Вариадический "..T"
// (или "#cvargs ..T") допускается только последним.
func (p *Parser) parseParams() []ast.NodeID {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after fn"); !ok {
		return nil
	}
	p.push(SuppressTerminators, exprFlags)
	defer p.pop()

	var (
		params   []ast.NodeID
		pending  []ast.NodeID
		variadic ast.NodeID
	)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if variadic.IsValid() {
			p.report(diag.SynVariadicNotLast, p.b.Span(variadic), "variadic parameter must be last")
			variadic = ast.NoNodeID
		}
		item := p.parseParamType()
		if p.b.Kind(item) == ast.KindVariadic {
			variadic = item
		}
		pending = append(pending, item)

		if p.eat(token.Colon) {
			typ := p.parseParamType()
			if p.b.Kind(typ) == ast.KindVariadic {
				variadic = typ
			}
			for _, n := range pending {
				if p.b.Kind(n) != ast.KindIdent {
					p.report(diag.SynBadDeclarationName, p.b.Span(n), "parameter name must be an identifier")
				}
			}
			sp := p.b.Span(pending[0]).Cover(p.lastSpan)
			params = append(params, p.b.New(sp, &ast.Param{Names: pending, Type: typ}))
			pending = nil
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	for _, typ := range pending {
		params = append(params, p.b.New(p.b.Span(typ), &ast.Param{Type: typ}))
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after parameters")
	return params
}

func (p *Parser) parseParamType() ast.NodeID {
	start := p.peek().Span
	cvargs := p.eat(token.DirCVargs)
	if cvargs || p.at(token.DotDot) {
		if _, ok := p.expect(token.DotDot, diag.SynUnexpectedToken, "expected '..' after #cvargs"); !ok {
			return p.invalid(start, "")
		}
		elem := p.parseType()
		return p.b.New(p.spanFrom(start), &ast.Variadic{Elem: elem, CVargs: cvargs})
	}
	return p.parseType()
}

// parseResults: один тип или список в скобках.
func (p *Parser) parseResults() []ast.NodeID {
	if !p.at(token.LParen) {
		return []ast.NodeID{p.parseType()}
	}
	p.advance()
	p.push(SuppressTerminators, exprFlags)
	defer p.pop()
	var results []ast.NodeID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		results = append(results, p.parseType())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after result types")
	return results
}
