package sema

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
	"flint/internal/types"
)

// builtinCheck replaces ordinary argument checking for a builtin function.
type builtinCheck func(c *Checker, call ast.NodeID, x *ast.Call, ci *CallInfo) types.TypeID

func builtinCheckFor(id symbols.BuiltinID) (builtinCheck, bool) {
	switch id {
	case symbols.BuiltinSizeof, symbols.BuiltinAlignof:
		return checkLayoutQuery, true
	case symbols.BuiltinAssert:
		return checkAssert, true
	}
	return nil, false
}

// builtinCallee resolves a plain identifier callee naming a builtin.
func (c *Checker) builtinCallee(fun ast.NodeID) (symbols.EntityID, bool) {
	fun = c.b.Unparen(fun)
	ident, ok := c.b.Ident(fun)
	if !ok || ident.Poly {
		return symbols.NoEntityID, false
	}
	ent, ok := c.syms.Lookup(c.cur(), ident.Name)
	if !ok || c.syms.Entity(ent).Builtin == symbols.BuiltinNone {
		return symbols.NoEntityID, false
	}
	return ent, true
}

func (c *Checker) builtinCall(id ast.NodeID, x *ast.Call, ent symbols.EntityID) types.TypeID {
	e := c.syms.Entity(ent)
	c.info.Entities[c.b.Unparen(x.Fun)] = ent
	c.info.Types[x.Fun] = c.decay(e.Type)
	ci := &CallInfo{
		Kind:        CallBuiltin,
		Callee:      e.Type,
		Builtin:     e.Builtin,
		Args:        x.Args,
		Discardable: e.Flags&symbols.FlagDiscardable != 0,
	}
	c.info.Calls[id] = ci
	check, ok := builtinCheckFor(e.Builtin)
	if !ok {
		panic("sema: no checker for builtin " + e.Builtin.String())
	}
	return check(c, id, x, ci)
}

// checkLayoutQuery handles sizeof(T) and alignof(T); both fold to a byte count.
func checkLayoutQuery(c *Checker, call ast.NodeID, x *ast.Call, ci *CallInfo) types.TypeID {
	if len(x.Args) != 1 {
		c.errorf(diag.SemaArity, c.span(call), "%s takes exactly one type argument, have %d", ci.Builtin, len(x.Args))
		c.exprs(x.Args)
		return c.bt.U64
	}
	at := c.expr(x.Args[0], types.NoTypeID)
	if at == types.NoTypeID {
		return c.bt.U64
	}
	t, ok := c.metaElem(at)
	if !ok {
		c.errorf(diag.SemaNotAType, c.span(x.Args[0]), "argument to %s must be a type, have %s", ci.Builtin, c.typeString(at))
		return c.bt.U64
	}
	if !c.tt.HasLayout(t) {
		c.errorf(diag.SemaInvalidOperand, c.span(x.Args[0]), "%s has no size", c.typeString(t))
		return c.bt.U64
	}
	if ci.Builtin == symbols.BuiltinSizeof {
		ci.Value = c.tt.Width(t) / 8
	} else {
		ci.Value = c.tt.Align(t) / 8
	}
	return c.bt.U64
}

func checkAssert(c *Checker, call ast.NodeID, x *ast.Call, ci *CallInfo) types.TypeID {
	if len(x.Args) != 1 {
		c.errorf(diag.SemaArity, c.span(call), "assert takes exactly one argument, have %d", len(x.Args))
		c.exprs(x.Args)
		return c.bt.Void
	}
	at := c.expr(x.Args[0], c.bt.Bool)
	c.assignable(x.Args[0], at, c.bt.Bool, "assert")
	return c.bt.Void
}
