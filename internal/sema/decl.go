package sema

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
	"flint/internal/token"
	"flint/internal/types"
)

// declMods carries the attributes of an enclosing #foreign or
// #callingConvention group.
type declMods struct {
	foreign  bool
	library  symbols.EntityID
	callConv string
}

// declare adds the entity named by the identifier node n to scope. A
// redeclaration is reported and the first entity stays in place.
func (c *Checker) declare(scope symbols.ScopeID, n ast.NodeID, ent symbols.Entity) symbols.EntityID {
	ident, ok := c.b.Ident(n)
	if !ok {
		return symbols.NoEntityID
	}
	ent.Name = ident.Name
	ent.Span = c.span(n)
	id, prev := c.syms.Declare(scope, ent)
	if prev.IsValid() {
		c.diagnose(diag.SevError, diag.SemaRedeclaration, c.span(n), c.str(ident.Name)+" redeclared in this scope",
			note(c.syms.Entity(prev).Span, "previous declaration"))
		return symbols.NoEntityID
	}
	c.info.Entities[n] = id
	c.info.Types[n] = ent.Type
	return id
}

func (c *Checker) declGroup(id ast.NodeID, g *ast.DeclGroup, mods declMods) {
	switch g.Directive {
	case token.DirForeign:
		mods.foreign = true
		if g.Lib.IsValid() {
			ident, _ := c.b.Ident(g.Lib)
			ent, ok := c.syms.Lookup(c.cur(), ident.Name)
			switch {
			case !ok:
				c.errorf(diag.SemaUndefined, c.span(g.Lib), "undefined library %s", c.name(g.Lib))
			case c.syms.Entity(ent).Flags&symbols.FlagLibrary == 0:
				c.errorf(diag.SemaTypeMismatch, c.span(g.Lib), "%s is not a library", c.name(g.Lib))
			default:
				c.info.Entities[g.Lib] = ent
				mods.library = ent
			}
		}
	case token.DirCallingConvention:
		mods.callConv = g.CallConv
	}
	for _, d := range g.Decls {
		switch x := c.b.Get(d).Data.(type) {
		case *ast.Decl:
			c.decl(d, x, mods)
		case *ast.DeclGroup:
			c.declGroup(d, x, mods)
		default:
			c.errorf(diag.SemaError, c.span(d), "only declarations are allowed in %s", g.Directive)
		}
	}
}

func (c *Checker) decl(id ast.NodeID, d *ast.Decl, mods declMods) {
	if d.CompileTime && len(d.Names) == 1 && len(d.Values) == 1 && !d.Type.IsValid() && !mods.foreign {
		if c.predeclared(id, d) {
			return
		}
	}

	declType := types.NoTypeID
	if d.Type.IsValid() {
		declType = c.resolveType(d.Type)
		if mods.foreign {
			declType = c.foreignType(d.Type, declType)
		}
	}

	valueTypes := make([]types.TypeID, len(d.Names))
	switch {
	case len(d.Values) == 0:
		for i := range valueTypes {
			valueTypes[i] = declType
		}
	case len(d.Values) == 1 && len(d.Names) > 1:
		vt := c.expr(d.Values[0], types.NoTypeID)
		if vt == types.NoTypeID {
			break
		}
		elems := c.tt.Elems(vt)
		if len(elems) != len(d.Names) {
			c.errorf(diag.SemaDeclCount, c.span(id), "assignment mismatch: %d names but %s has %d values",
				len(d.Names), c.source(d.Values[0]), len(elems))
			break
		}
		for i, et := range elems {
			valueTypes[i] = et
			if declType != types.NoTypeID && !c.tt.Equal(et, declType) && declType != c.bt.CVarArgsAny {
				c.errorf(diag.SemaTypeMismatch, c.span(d.Names[i]), "cannot use value of type %s as %s",
					c.typeString(et), c.typeString(declType))
			}
		}
	case len(d.Values) != len(d.Names):
		c.errorf(diag.SemaDeclCount, c.span(id), "declaration mismatch: %d names but %d values", len(d.Names), len(d.Values))
		c.exprs(d.Values)
	default:
		if len(d.Names) > 1 {
			for _, v := range d.Values {
				if _, ok := c.b.FuncLit(c.b.Unparen(v)); ok {
					c.errorf(diag.SemaMultiValueFnLit, c.span(v), "function literals cannot appear in a multi-value declaration")
					break
				}
			}
		}
		for i, v := range d.Values {
			vt := c.expr(v, declType)
			if mods.foreign {
				vt = c.foreignType(v, vt)
			}
			valueTypes[i] = vt
			if declType != types.NoTypeID {
				c.assignable(v, vt, declType, "declaration")
			}
		}
	}

	for i, n := range d.Names {
		t := declType
		if t == types.NoTypeID || t == c.bt.CVarArgsAny {
			t = valueTypes[i]
		}
		ent := symbols.Entity{
			Type:     t,
			Decl:     id,
			LinkName: d.LinkName,
			CallConv: mods.callConv,
			Library:  mods.library,
		}
		if d.CompileTime {
			ent.Flags |= symbols.FlagCompileTime
			if i < len(d.Values) {
				ent.Value = d.Values[i]
			}
			if c.tt.IsMeta(t) {
				ent.Flags |= symbols.FlagType
			}
		} else if t != types.NoTypeID {
			c.runtimeValue(n, t)
		}
		if mods.foreign {
			ent.Flags |= symbols.FlagForeign
		}
		if d.Discardable {
			ent.Flags |= symbols.FlagDiscardable
		}
		c.declare(c.cur(), n, ent)
	}
}

// runtimeValue rejects variables that would hold compile-time only values.
func (c *Checker) runtimeValue(n ast.NodeID, t types.TypeID) {
	switch {
	case c.tt.IsMeta(t):
		c.errorf(diag.SemaError, c.span(n), "type %s cannot be stored in variable %s; use '::'", c.typeString(t), c.name(n))
	case c.tt.IsPolymorphic(t):
		c.errorf(diag.SemaPolymorphicValue, c.span(n), "polymorphic function cannot be stored in variable %s", c.name(n))
	case c.tt.KindOf(t) == types.KindFile:
		c.errorf(diag.SemaError, c.span(n), "imported file cannot be stored in variable %s", c.name(n))
	}
}

// foreignType unwraps the function type of a bodyless foreign function.
func (c *Checker) foreignType(node ast.NodeID, t types.TypeID) types.TypeID {
	node = c.b.Unparen(node)
	if lit, ok := c.b.FuncLit(node); ok {
		if lit.Body.IsValid() {
			c.errorf(diag.SemaError, c.span(node), "foreign function cannot have a body")
		}
		if inner, ok := c.metaElem(t); ok {
			return inner
		}
		return t
	}
	if fn, ok := c.tt.Callable(t); ok {
		return fn
	}
	return t
}

// predeclared handles "Name :: struct/union/enum" and "name :: fn ... {}".
// The entity exists before the body is checked, so the body may refer to it.
func (c *Checker) predeclared(id ast.NodeID, d *ast.Decl) bool {
	n, v := d.Names[0], d.Values[0]
	name := c.name(n)
	ent := symbols.Entity{Decl: id, Value: v, LinkName: d.LinkName}
	ent.Flags = symbols.FlagCompileTime
	if d.Discardable {
		ent.Flags |= symbols.FlagDiscardable
	}
	switch x := c.b.Get(v).Data.(type) {
	case *ast.StructType:
		self := c.tt.RegisterStruct(name)
		ent.Type, ent.Flags = c.tt.Meta(self), ent.Flags|symbols.FlagType
		c.declare(c.cur(), n, ent)
		c.info.Types[v] = c.structType(v, x, self)
	case *ast.UnionType:
		self := c.tt.RegisterUnion(name)
		ent.Type, ent.Flags = c.tt.Meta(self), ent.Flags|symbols.FlagType
		c.declare(c.cur(), n, ent)
		c.info.Types[v] = c.unionType(v, x, self)
	case *ast.EnumType:
		t := c.enumType(v, x, name)
		c.info.Types[v] = t
		ent.Type, ent.Flags = t, ent.Flags|symbols.FlagType
		c.declare(c.cur(), n, ent)
	case *ast.FuncLit:
		if !x.Body.IsValid() {
			return false
		}
		fi := c.signature(v, x)
		ent.Type = fi.Type
		fi.Entity = c.declare(c.cur(), n, ent)
		if !fi.Polymorphic {
			c.funcBody(fi)
		}
	default:
		return false
	}
	return true
}
