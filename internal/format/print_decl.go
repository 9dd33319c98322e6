package format

import (
	"flint/internal/ast"
	"flint/internal/token"
)

func (p *printer) decl(d *ast.Decl) {
	if d.LinkName != "" {
		p.w.WriteString("#linkName " + quote(d.LinkName) + " ")
	}
	if d.Discardable {
		p.w.WriteString("#discardable ")
	}
	p.exprList(d.Names)
	switch {
	case d.Type.IsValid():
		p.w.WriteString(": ")
		p.expr(d.Type)
		if len(d.Values) == 0 {
			return
		}
		if d.CompileTime {
			p.w.WriteString(" : ")
		} else {
			p.w.WriteString(" = ")
		}
	case d.CompileTime:
		p.w.WriteString(" :: ")
	default:
		p.w.WriteString(" := ")
	}
	p.exprList(d.Values)
}

func (p *printer) declGroup(g *ast.DeclGroup) {
	if g.Directive == token.DirForeign {
		p.w.WriteString("#foreign ")
		p.expr(g.Lib)
	} else {
		p.w.WriteString("#callingConvention " + quote(g.CallConv))
	}
	p.w.WriteString(" ")
	if !g.Braced {
		if len(g.Decls) > 0 {
			p.stmt(g.Decls[0])
		}
		return
	}
	if len(g.Decls) == 0 {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{")
	p.w.Newline()
	p.w.IndentPush()
	p.stmtLines(g.Decls)
	p.w.IndentPop()
	p.w.WriteString("}")
}
