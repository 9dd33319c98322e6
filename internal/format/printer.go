package format

import (
	"flint/internal/ast"
)

type printer struct {
	b *ast.Builder
	w *Writer
}

// Node prints a single node with default options.
func Node(b *ast.Builder, id ast.NodeID) string {
	return NodeWith(b, id, Options{UseTabs: true})
}

// NodeWith prints a single node.
func NodeWith(b *ast.Builder, id ast.NodeID, opt Options) string {
	pr := printer{b: b, w: NewWriter(opt)}
	pr.stmt(id)
	return pr.w.String()
}

// File prints every top-level statement of f, one per line.
func File(b *ast.Builder, f *ast.File) string {
	return FileWith(b, f, Options{UseTabs: true})
}

// FileWith prints f with the given options.
func FileWith(b *ast.Builder, f *ast.File, opt Options) string {
	pr := printer{b: b, w: NewWriter(opt)}
	if f != nil {
		pr.stmtLines(f.Stmts)
	}
	return pr.w.String()
}

func (p *printer) stmtLines(stmts []ast.NodeID) {
	for _, id := range stmts {
		p.stmt(id)
		p.w.Newline()
	}
}

// block prints "{ ... }" with the statements indented.
func (p *printer) block(id ast.NodeID) {
	blk, ok := p.b.Block(id)
	if !ok {
		p.w.WriteString("{}")
		return
	}
	if len(blk.Stmts) == 0 {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{")
	p.w.Newline()
	p.w.IndentPush()
	p.stmtLines(blk.Stmts)
	p.w.IndentPop()
	p.w.WriteString("}")
}

func (p *printer) stmt(id ast.NodeID) {
	n := p.b.Get(id)
	if n == nil {
		return
	}
	switch x := n.Data.(type) {
	case *ast.Block:
		p.block(id)
	case *ast.Decl:
		p.decl(x)
	case *ast.DeclGroup:
		p.declGroup(x)
	case *ast.Assign:
		p.exprList(x.Lhs)
		p.w.WriteString(" " + x.Op.String() + " ")
		p.exprList(x.Rhs)
	case *ast.If:
		p.ifStmt(x)
	case *ast.For:
		p.forStmt(x)
	case *ast.Switch:
		p.switchStmt(x)
	case *ast.Case:
		p.caseClause(x)
	case *ast.Return:
		p.w.WriteString("return")
		if len(x.Values) > 0 {
			p.w.WriteString(" ")
			p.exprList(x.Values)
		}
	case *ast.Branch:
		p.w.WriteString(x.Tok.String())
		if x.Label.IsValid() {
			p.w.WriteString(" ")
			p.expr(x.Label)
		}
	case *ast.Import:
		p.w.WriteString("#import ")
		p.w.WriteString(quote(x.Path))
		p.alias(x.Alias)
	case *ast.Library:
		p.w.WriteString("#library ")
		p.w.WriteString(quote(x.Path))
		p.alias(x.Alias)
	default:
		p.expr(id)
	}
}

func (p *printer) alias(id ast.NodeID) {
	if id.IsValid() {
		p.w.WriteString(" ")
		p.expr(id)
	}
}

func (p *printer) ifStmt(x *ast.If) {
	p.w.WriteString("if ")
	p.expr(x.Cond)
	p.w.WriteString(" ")
	p.block(x.Then)
	if !x.Else.IsValid() {
		return
	}
	p.w.WriteString(" else ")
	if elif, ok := p.b.If(x.Else); ok {
		p.ifStmt(elif)
		return
	}
	p.block(x.Else)
}

func (p *printer) label(id ast.NodeID) {
	if id.IsValid() {
		p.expr(id)
		p.w.WriteString(": ")
	}
}

func (p *printer) forStmt(x *ast.For) {
	p.label(x.Label)
	p.w.WriteString("for ")
	switch {
	case x.Init.IsValid() || x.Step.IsValid():
		if x.Init.IsValid() {
			p.stmt(x.Init)
		}
		p.w.WriteString("; ")
		if x.Cond.IsValid() {
			p.expr(x.Cond)
		}
		p.w.WriteString("; ")
		if x.Step.IsValid() {
			p.stmt(x.Step)
			p.w.WriteString(" ")
		}
	case x.Cond.IsValid():
		p.expr(x.Cond)
		p.w.WriteString(" ")
	}
	p.block(x.Body)
}

func (p *printer) switchStmt(x *ast.Switch) {
	p.label(x.Label)
	p.w.WriteString("switch ")
	if x.Subject.IsValid() {
		p.expr(x.Subject)
		p.w.WriteString(" ")
	}
	if len(x.Cases) == 0 {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{")
	p.w.Newline()
	for _, c := range x.Cases {
		p.stmt(c)
		p.w.Newline()
	}
	p.w.WriteString("}")
}

func (p *printer) caseClause(x *ast.Case) {
	p.w.WriteString("case")
	if !x.IsDefault() {
		p.w.WriteString(" ")
		p.exprList(x.Match)
	}
	p.w.WriteString(":")
	if len(x.Body) == 0 {
		return
	}
	p.w.Newline()
	p.w.IndentPush()
	for i, s := range x.Body {
		if i > 0 {
			p.w.Newline()
		}
		p.stmt(s)
	}
	p.w.IndentPop()
}
