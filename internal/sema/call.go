package sema

import (
	"fmt"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
	"flint/internal/types"
)

func (c *Checker) call(id ast.NodeID, x *ast.Call) types.TypeID {
	if ent, ok := c.builtinCallee(x.Fun); ok {
		return c.builtinCall(id, x, ent)
	}
	ft := c.expr(x.Fun, types.NoTypeID)
	if ft == types.NoTypeID {
		c.exprs(x.Args)
		return types.NoTypeID
	}
	if target, ok := c.metaElem(ft); ok {
		return c.cast(id, x, target)
	}
	fn, ok := c.tt.Callable(ft)
	if !ok {
		c.errorf(diag.SemaNotCallable, c.span(x.Fun), "cannot call non-function %s (type %s)", c.source(x.Fun), c.typeString(ft))
		c.exprs(x.Args)
		return types.NoTypeID
	}
	info, _ := c.tt.FnInfo(fn)
	if info.Flags&types.FnPolymorphic != 0 {
		fi := c.funcOf(x.Fun)
		if fi == nil {
			c.errorf(diag.SemaPolymorphicValue, c.span(x.Fun), "cannot call polymorphic function value %s", c.source(x.Fun))
			c.exprs(x.Args)
			return types.NoTypeID
		}
		return c.specialize(id, x, fi)
	}
	c.args(id, x.Args, info, nil)
	c.info.Calls[id] = &CallInfo{
		Kind:        CallDirect,
		Callee:      fn,
		Args:        x.Args,
		Discardable: c.discardable(x.Fun),
	}
	return c.resultType(info.Result)
}

func (c *Checker) exprs(ids []ast.NodeID) {
	for _, id := range ids {
		c.expr(id, types.NoTypeID)
	}
}

// resultType turns a result tuple into the type of a call expression.
func (c *Checker) resultType(tuple types.TypeID) types.TypeID {
	elems := c.tt.Elems(tuple)
	switch len(elems) {
	case 0:
		return c.bt.Void
	case 1:
		return elems[0]
	}
	return tuple
}

func (c *Checker) metaElem(t types.TypeID) (types.TypeID, bool) {
	if !c.tt.IsMeta(t) {
		return types.NoTypeID, false
	}
	return c.tt.Elem(t)
}

// args checks call arguments against a signature. pre holds the types of
// arguments that were already checked.
func (c *Checker) args(call ast.NodeID, args []ast.NodeID, info *types.FnInfo, pre map[ast.NodeID]types.TypeID) {
	n := len(info.Params)
	variadic := info.Flags&(types.FnVariadic|types.FnCVariadic) != 0
	fixed := n
	if variadic {
		fixed = n - 1
	}
	if (!variadic && len(args) != n) || len(args) < fixed {
		want := fmt.Sprint(n)
		if variadic {
			want = fmt.Sprintf("at least %d", fixed)
		}
		c.errorf(diag.SemaArity, c.span(call), "wrong number of arguments in call to %s: have %d, want %s",
			c.calleeName(call), len(args), want)
	}
	for i, a := range args {
		var pt types.TypeID
		switch {
		case i < fixed:
			pt = info.Params[i]
		case variadic:
			pt = info.Params[n-1]
		default:
			if _, done := pre[a]; !done {
				c.expr(a, types.NoTypeID)
			}
			continue
		}
		at, done := pre[a]
		if !done {
			if pt == c.bt.CVarArgsAny {
				at = c.expr(a, types.NoTypeID)
			} else {
				at = c.expr(a, pt)
			}
		}
		c.assignable(a, at, pt, "argument")
	}
}

func (c *Checker) calleeName(call ast.NodeID) string {
	if x, ok := c.b.Call(call); ok {
		return c.source(x.Fun)
	}
	return "function"
}

// assignable verifies that a value of type from may initialize a slot of
// type to. Only a C varargs slot accepts other types; the value is then
// marked for varargs passing.
func (c *Checker) assignable(id ast.NodeID, from, to types.TypeID, what string) bool {
	if from == types.NoTypeID || to == types.NoTypeID {
		return true
	}
	if to == c.bt.CVarArgsAny {
		c.convert(id, ConvCVarArg, from)
		return true
	}
	if c.tt.Equal(from, to) {
		return true
	}
	c.errorf(diag.SemaTypeMismatch, c.span(id), "cannot use %s (type %s) as %s in %s",
		c.source(id), c.typeString(from), c.typeString(to), what)
	return false
}

func (c *Checker) cast(id ast.NodeID, x *ast.Call, target types.TypeID) types.TypeID {
	if len(x.Args) != 1 {
		c.errorf(diag.SemaArity, c.span(id), "conversion to %s takes exactly one argument, have %d", c.typeString(target), len(x.Args))
		c.exprs(x.Args)
		return target
	}
	arg := x.Args[0]
	at := c.expr(arg, types.NoTypeID)
	ci := &CallInfo{Kind: CallCast, Callee: target, Args: x.Args, Discardable: false}
	c.info.Calls[id] = ci
	if at == types.NoTypeID {
		return target
	}
	if c.tt.Equal(at, target) {
		c.warnf(diag.SemaUnnecessaryCast, c.span(id), "unnecessary conversion of %s to %s", c.source(arg), c.typeString(target))
		return target
	}
	conv, ok := c.castKind(at, target)
	if !ok {
		c.errorf(diag.SemaInvalidCast, c.span(id), "cannot convert %s (type %s) to %s", c.source(arg), c.typeString(at), c.typeString(target))
		return target
	}
	ci.Cast = conv
	return target
}

// discardable reports callees declared #discardable.
func (c *Checker) discardable(fun ast.NodeID) bool {
	ent, ok := c.calleeEntity(fun)
	return ok && c.syms.Entity(ent).Flags&symbols.FlagDiscardable != 0
}

// calleeEntity returns the entity an already checked callee names.
func (c *Checker) calleeEntity(fun ast.NodeID) (symbols.EntityID, bool) {
	fun = c.b.Unparen(fun)
	if sel, ok := c.b.Selector(fun); ok {
		fun = sel.Sel
	}
	ent, ok := c.info.Entities[fun]
	return ent, ok
}

// funcOf finds the function literal behind a callee: the literal itself or
// the compile-time value of the entity it names.
func (c *Checker) funcOf(fun ast.NodeID) *FuncInfo {
	fun = c.b.Unparen(fun)
	if _, ok := c.b.FuncLit(fun); ok {
		return c.info.Funcs[fun]
	}
	ent, ok := c.calleeEntity(fun)
	if !ok {
		return nil
	}
	e := c.syms.Entity(ent)
	if e.Flags&symbols.FlagCompileTime == 0 || !e.Value.IsValid() {
		return nil
	}
	return c.info.Funcs[e.Value]
}
