package format

import (
	"strconv"
	"strings"

	"flint/internal/ast"
	"flint/internal/token"
)

func (p *printer) exprList(ids []ast.NodeID) {
	for i, id := range ids {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.expr(id)
	}
}

func (p *printer) expr(id ast.NodeID) {
	n := p.b.Get(id)
	if n == nil {
		return
	}
	switch x := n.Data.(type) {
	case *ast.Invalid:
		p.w.WriteString(x.Text)
	case *ast.Ident:
		if x.Poly {
			p.w.WriteString("$")
		}
		p.w.WriteString(p.b.Strings.MustLookup(x.Name))
	case *ast.Lit:
		p.w.WriteString(litText(x))
	case *ast.Paren:
		p.w.WriteString("(")
		p.expr(x.X)
		p.w.WriteString(")")
	case *ast.List:
		p.exprList(x.Elems)
	case *ast.Prefix:
		p.w.WriteString(x.Op.String())
		// "& &x" must not print as "&&x"
		if inner, ok := p.b.Prefix(x.X); ok && x.Op == token.Amp && inner.Op == token.Amp {
			p.w.WriteString(" ")
		}
		p.expr(x.X)
	case *ast.Infix:
		p.expr(x.X)
		p.w.WriteString(" " + x.Op.String() + " ")
		p.expr(x.Y)
	case *ast.Call:
		p.expr(x.Fun)
		p.w.WriteString("(")
		p.exprList(x.Args)
		p.w.WriteString(")")
	case *ast.Selector:
		p.expr(x.X)
		p.w.WriteString(".")
		p.expr(x.Sel)
	case *ast.CompositeLit:
		p.expr(x.Type)
		p.w.WriteString("{")
		p.exprList(x.Elems)
		p.w.WriteString("}")
	case *ast.KeyValue:
		p.expr(x.Key)
		p.w.WriteString(": ")
		p.expr(x.Value)
	case *ast.FuncLit:
		p.funcLit(x)
	case *ast.Param:
		if len(x.Names) > 0 {
			p.exprList(x.Names)
			p.w.WriteString(": ")
		}
		p.expr(x.Type)
	case *ast.Variadic:
		if x.CVargs {
			p.w.WriteString("#cvargs ")
		}
		p.w.WriteString("..")
		p.expr(x.Elem)
	case *ast.StructType:
		p.w.WriteString("struct ")
		p.fieldBlock(x.Fields)
	case *ast.UnionType:
		p.w.WriteString("union ")
		p.fieldBlock(x.Fields)
	case *ast.Field:
		p.exprList(x.Names)
		p.w.WriteString(": ")
		p.expr(x.Type)
	case *ast.EnumType:
		p.enumType(x)
	case *ast.EnumCase:
		p.expr(x.Name)
		if x.Value.IsValid() {
			p.w.WriteString(" = ")
			p.expr(x.Value)
		}
	default:
		// statements in expression position (e.g. a Decl inside a group)
		p.stmt(id)
	}
}

func (p *printer) funcLit(x *ast.FuncLit) {
	p.w.WriteString("fn (")
	p.exprList(x.Params)
	p.w.WriteString(")")
	switch len(x.Results) {
	case 0:
	case 1:
		p.w.WriteString(" -> ")
		// a bare function type as the only result would swallow our body
		if p.b.Kind(x.Results[0]) == ast.KindFuncLit {
			p.w.WriteString("(")
			p.expr(x.Results[0])
			p.w.WriteString(")")
		} else {
			p.expr(x.Results[0])
		}
	default:
		p.w.WriteString(" -> (")
		p.exprList(x.Results)
		p.w.WriteString(")")
	}
	if x.Body.IsValid() {
		p.w.WriteString(" ")
		p.block(x.Body)
	}
}

func (p *printer) fieldBlock(fields []ast.NodeID) {
	if len(fields) == 0 {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{")
	p.w.Newline()
	p.w.IndentPush()
	for _, f := range fields {
		p.expr(f)
		p.w.Newline()
	}
	p.w.IndentPop()
	p.w.WriteString("}")
}

func (p *printer) enumType(x *ast.EnumType) {
	p.w.WriteString("enum ")
	if x.Backing.IsValid() {
		p.expr(x.Backing)
		p.w.WriteString(" ")
	}
	p.fieldBlock(x.Cases)
}

func litText(x *ast.Lit) string {
	var s string
	switch x.Kind {
	case ast.LitString:
		if x.Text != "" {
			return x.Text
		}
		return quote(x.Str)
	case ast.LitBool:
		if x.Bool {
			return "true"
		}
		return "false"
	case ast.LitInt:
		s = x.Text
		if s == "" {
			s = strconv.FormatUint(x.Int, 10)
		}
	case ast.LitFloat:
		s = x.Text
		if s == "" {
			s = strconv.FormatFloat(x.Float, 'g', -1, 64)
			if !strings.ContainsAny(s, ".eE") {
				s += ".0"
			}
		}
	}
	if x.Neg {
		return "-" + s
	}
	return s
}

// quote is the inverse of the lexer's string scan: only newlines are escaped.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, "\n", `\n`) + `"`
}
