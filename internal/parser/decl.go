package parser

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/token"
)

// parseDecl разбирает хвост объявления после списка имён:
//
//	names : T            names : T = values
//	names : T : values   names :: values
//	names := values
func (p *Parser) parseDecl(left ast.NodeID) ast.NodeID {
	start := p.b.Span(left)
	names := p.explode(left)
	for _, n := range names {
		if p.b.Kind(n) != ast.KindIdent {
			p.report(diag.SynBadDeclarationName, p.b.Span(n), "declared name must be an identifier")
		}
	}

	d := &ast.Decl{Names: names}
	switch p.advance().Kind {
	case token.ColonColon:
		d.CompileTime = true
		d.Values = p.declValues()
	case token.ColonAssign:
		d.Values = p.declValues()
	case token.Colon:
		d.Type = p.parseType()
		switch {
		case p.eat(token.Assign):
			d.Values = p.declValues()
		case p.eat(token.Colon):
			d.CompileTime = true
			d.Values = p.declValues()
		}
	}
	return p.b.New(p.spanFrom(start), d)
}

func (p *Parser) declValues() []ast.NodeID {
	p.push(AllowExprList, AllowAssignOrDecl)
	defer p.pop()
	return p.explode(p.expression(bpNone))
}
