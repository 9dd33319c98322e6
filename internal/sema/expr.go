package sema

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/format"
	"flint/internal/symbols"
	"flint/internal/token"
	"flint/internal/types"
)

// expr checks id against an optional desired type and records the result.
// want only steers untyped literals; callers still verify assignability.
func (c *Checker) expr(id ast.NodeID, want types.TypeID) types.TypeID {
	t := c.exprKind(id, want)
	c.info.Types[id] = t
	return t
}

func (c *Checker) exprKind(id ast.NodeID, want types.TypeID) types.TypeID {
	n := c.b.Get(id)
	if n == nil {
		return types.NoTypeID
	}
	switch x := n.Data.(type) {
	case *ast.Invalid:
		return types.NoTypeID
	case *ast.Ident:
		return c.ident(id, x)
	case *ast.Lit:
		return c.lit(id, x, want)
	case *ast.Paren:
		return c.expr(x.X, want)
	case *ast.Prefix:
		return c.prefix(id, x, want)
	case *ast.Infix:
		return c.infix(id, x, want)
	case *ast.Call:
		return c.call(id, x)
	case *ast.Selector:
		return c.selector(id, x)
	case *ast.CompositeLit:
		return c.compositeLit(id, x)
	case *ast.FuncLit:
		return c.funcLit(id, x)
	case *ast.StructType:
		return c.structType(id, x, types.NoTypeID)
	case *ast.UnionType:
		return c.unionType(id, x, types.NoTypeID)
	case *ast.EnumType:
		return c.enumType(id, x, "")
	case *ast.Variadic:
		c.errorf(diag.SemaError, n.Span, "variadic type is only allowed as the last parameter")
		return types.NoTypeID
	case *ast.List:
		c.errorf(diag.SemaError, n.Span, "unexpected expression list")
		for _, e := range x.Elems {
			c.expr(e, types.NoTypeID)
		}
		return types.NoTypeID
	default:
		c.errorf(diag.SemaError, n.Span, "%s is not an expression", n.Kind)
		return types.NoTypeID
	}
}

func (c *Checker) ident(id ast.NodeID, x *ast.Ident) types.TypeID {
	name := c.str(x.Name)
	if x.Poly {
		c.errorf(diag.SemaPolymorphicValue, c.span(id), "$%s is only allowed in a parameter list", name)
		return types.NoTypeID
	}
	ent, ok := c.syms.Lookup(c.cur(), x.Name)
	if !ok {
		c.errorf(diag.SemaUndefined, c.span(id), "undefined: %s", name)
		return types.NoTypeID
	}
	c.info.Entities[id] = ent
	e := c.syms.Entity(ent)
	switch {
	case e.Flags&symbols.FlagLabel != 0:
		c.errorf(diag.SemaError, c.span(id), "label %s is not a value", name)
		return types.NoTypeID
	case e.Flags&symbols.FlagLibrary != 0:
		c.errorf(diag.SemaError, c.span(id), "library %s is not a value", name)
		return types.NoTypeID
	}
	return c.decay(e.Type)
}

// decay turns a function value into a pointer to it.
func (c *Checker) decay(t types.TypeID) types.TypeID {
	if c.tt.KindOf(t) == types.KindFn {
		return c.tt.Pointer(t)
	}
	return t
}

func (c *Checker) lit(id ast.NodeID, x *ast.Lit, want types.TypeID) types.TypeID {
	switch x.Kind {
	case ast.LitInt:
		t := c.bt.I64
		if c.tt.IsNumeric(want) {
			t = want
		}
		if c.tt.IsInteger(t) && !intFits(x, c.tt.MustLookup(t)) {
			c.errorf(diag.SemaLiteralOverflow, c.span(id), "constant %s overflows %s", litText(x), c.typeString(t))
		}
		return t
	case ast.LitFloat:
		if c.tt.IsFloat(want) {
			return want
		}
		return c.bt.F64
	case ast.LitString:
		return c.bt.String
	case ast.LitBool:
		return c.bt.Bool
	}
	return types.NoTypeID
}

func intFits(x *ast.Lit, t types.Type) bool {
	w := uint(t.Width)
	if !t.Signed {
		if x.Neg {
			return x.Int == 0
		}
		return w == 64 || x.Int <= 1<<w-1
	}
	if x.Neg {
		return x.Int <= 1<<(w-1)
	}
	return x.Int <= 1<<(w-1)-1
}

func litText(x *ast.Lit) string {
	if x.Text != "" {
		if x.Neg {
			return "-" + x.Text
		}
		return x.Text
	}
	return "literal"
}

// isUntyped reports literals whose type follows the context.
func (c *Checker) isUntyped(id ast.NodeID) bool {
	l, ok := c.b.Lit(c.b.Unparen(id))
	return ok && (l.Kind == ast.LitInt || l.Kind == ast.LitFloat)
}

func (c *Checker) prefix(id ast.NodeID, x *ast.Prefix, want types.TypeID) types.TypeID {
	switch x.Op {
	case token.Minus:
		t := c.expr(x.X, want)
		if t == types.NoTypeID || c.tt.IsFloat(t) {
			return t
		}
		if c.tt.IsInteger(t) {
			c.diagnose(diag.SevError, diag.SemaIntegerNegation, c.span(id),
				"unary '-' is only defined for floating-point operands, have "+c.typeString(t),
				note(c.span(id), "write '0 - x' to negate an integer"))
			return t
		}
		c.errorf(diag.SemaInvalidOperand, c.span(id), "invalid operand for unary '-': %s", c.typeString(t))
		return types.NoTypeID
	case token.Bang:
		t := c.expr(x.X, c.bt.Bool)
		if t != types.NoTypeID && !c.tt.IsBool(t) {
			c.errorf(diag.SemaInvalidOperand, c.span(id), "invalid operand for '!': %s", c.typeString(t))
		}
		return c.bt.Bool
	case token.Amp:
		t := c.expr(x.X, types.NoTypeID)
		if t == types.NoTypeID {
			return t
		}
		if c.tt.IsMeta(t) {
			c.errorf(diag.SemaInvalidOperand, c.span(id), "cannot take the address of type %s", c.typeString(t))
			return types.NoTypeID
		}
		if !c.addressable(x.X) {
			c.errorf(diag.SemaInvalidOperand, c.span(id), "cannot take the address of %s", c.source(x.X))
			return types.NoTypeID
		}
		return c.tt.Pointer(t)
	case token.Star:
		t := c.expr(x.X, types.NoTypeID)
		if t == types.NoTypeID {
			return t
		}
		tt := c.tt.MustLookup(t)
		switch tt.Kind {
		case types.KindMeta:
			return c.tt.Meta(c.tt.Pointer(tt.Elem))
		case types.KindPointer:
			return tt.Elem
		}
		c.errorf(diag.SemaInvalidOperand, c.span(id), "cannot dereference %s", c.typeString(t))
		return types.NoTypeID
	}
	c.errorf(diag.SemaInvalidOperand, c.span(id), "unknown prefix operator %s", x.Op)
	return types.NoTypeID
}

// addressable reports places: variables, fields and dereferences.
func (c *Checker) addressable(id ast.NodeID) bool {
	id = c.b.Unparen(id)
	switch x := c.b.Get(id).Data.(type) {
	case *ast.Ident:
		ent, ok := c.info.Entities[id]
		if !ok {
			return false
		}
		return c.syms.Entity(ent).Flags&(symbols.FlagCompileTime|symbols.FlagType|symbols.FlagFile) == 0
	case *ast.Selector:
		if _, ok := c.info.Fields[id]; !ok {
			// file member
			ent, ok := c.info.Entities[x.Sel]
			return ok && c.syms.Entity(ent).Flags&symbols.FlagCompileTime == 0
		}
		xt := c.info.Types[x.X]
		if c.tt.KindOf(xt) == types.KindPointer {
			return true
		}
		return !c.tt.IsMeta(xt) && c.addressable(x.X)
	case *ast.Prefix:
		return x.Op == token.Star && c.tt.KindOf(c.info.Types[x.X]) == types.KindPointer
	}
	return false
}

func (c *Checker) source(id ast.NodeID) string {
	return format.Node(c.b, id)
}
