package parser

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/token"
)

func (p *Parser) parseDirective() ast.NodeID {
	switch p.peek().Kind {
	case token.DirImport:
		return p.parseImport()
	case token.DirLibrary:
		return p.parseLibrary()
	case token.DirForeign, token.DirCallingConvention:
		return p.parseDeclGroup()
	default:
		return p.parseDeclAnnotation()
	}
}

// stringArg читает обязательный строковый аргумент директивы.
func (p *Parser) stringArg(dir token.Token) (string, bool) {
	tok, ok := p.expect(token.StringLit, diag.SynExpectString, "expected string after "+dir.Text)
	return tok.Lit.Str, ok
}

// optionalAlias reads an identifier on the same line, if any.
func (p *Parser) optionalAlias() ast.NodeID {
	if !p.at(token.Ident) {
		return ast.NoNodeID
	}
	tok := p.advance()
	return p.b.NewIdent(tok.Span, tok.Text, false)
}

// #import "path" [alias]
func (p *Parser) parseImport() ast.NodeID {
	dir := p.advance()
	path, ok := p.stringArg(dir)
	if !ok {
		return p.invalid(dir.Span, dir.Text)
	}
	alias := p.optionalAlias()
	id := p.b.New(p.spanFrom(dir.Span), &ast.Import{Path: path, Alias: alias})
	p.file.Imports = append(p.file.Imports, id)
	return id
}

// #library "name" [alias]
func (p *Parser) parseLibrary() ast.NodeID {
	dir := p.advance()
	path, ok := p.stringArg(dir)
	if !ok {
		return p.invalid(dir.Span, dir.Text)
	}
	alias := p.optionalAlias()
	id := p.b.New(p.spanFrom(dir.Span), &ast.Library{Path: path, Alias: alias})
	p.file.Libraries = append(p.file.Libraries, id)
	return id
}

// parseDeclGroup: #foreign lib <decl | { decls }> и
// #callingConvention "cc" <decl | { decls }>. Тело - только голые объявления.
func (p *Parser) parseDeclGroup() ast.NodeID {
	dir := p.advance()
	g := &ast.DeclGroup{Directive: dir.Kind}
	if dir.Kind == token.DirForeign {
		lib, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected library name after #foreign")
		if !ok {
			return p.invalid(dir.Span, dir.Text)
		}
		g.Lib = p.b.NewIdent(lib.Span, lib.Text, false)
	} else {
		cc, ok := p.stringArg(dir)
		if !ok {
			return p.invalid(dir.Span, dir.Text)
		}
		g.CallConv = cc
	}

	set := Context(0)
	if dir.Kind == token.DirForeign {
		set = Foreign
	}
	p.push(set|AllowCompositeLit, exprFlags|AllowCase|Breakable|Continuable)
	defer p.pop()

	if p.eat(token.LBrace) {
		g.Braced = true
		for {
			p.skipSeparators()
			if p.at(token.RBrace) || p.at(token.EOF) {
				break
			}
			if d := p.parseGroupedDecl(); d.IsValid() {
				g.Decls = append(g.Decls, d)
			}
			p.endStmt()
		}
		p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close "+dir.Text+" block")
	} else if d := p.parseGroupedDecl(); d.IsValid() {
		g.Decls = append(g.Decls, d)
	}
	return p.b.New(p.spanFrom(dir.Span), g)
}

func (p *Parser) parseGroupedDecl() ast.NodeID {
	start := p.peek()
	var d ast.NodeID
	if start.Kind.IsDirective() {
		d = p.parseDirective()
	} else {
		d = p.parseSimpleStmt()
	}
	switch p.b.Kind(d) {
	case ast.KindDecl, ast.KindDeclGroup, ast.KindInvalid:
		return d
	}
	p.report(diag.SynForeignBody, p.b.Span(d), start.Text+": only declarations are allowed here")
	return p.invalid(p.b.Span(d), "")
}

// parseDeclAnnotation: #linkName "sym" <decl>, #discardable <decl>.
func (p *Parser) parseDeclAnnotation() ast.NodeID {
	dir := p.advance()
	var linkName string
	if dir.Kind == token.DirLinkName {
		name, ok := p.stringArg(dir)
		if !ok {
			return p.invalid(dir.Span, dir.Text)
		}
		linkName = name
	}

	var target ast.NodeID
	if p.peek().Kind.IsDirective() {
		target = p.parseDirective()
	} else {
		target = p.parseSimpleStmt()
	}
	d, ok := p.b.Decl(target)
	if !ok {
		p.report(diag.SynBadDirectiveTarget, dir.Span, dir.Text+" must be followed by a declaration")
		return target
	}
	if linkName != "" {
		d.LinkName = linkName
	}
	if dir.Kind == token.DirDiscardable {
		d.Discardable = true
	}
	p.b.Get(target).Span = p.spanFrom(dir.Span)
	return target
}
