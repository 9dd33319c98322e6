package sema

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
	"flint/internal/types"
)

// selector resolves x.name by the kind of x: a file, a struct or union
// (possibly behind a pointer), or an enum type.
func (c *Checker) selector(id ast.NodeID, x *ast.Selector) types.TypeID {
	xt := c.expr(x.X, types.NoTypeID)
	if xt == types.NoTypeID {
		return types.NoTypeID
	}
	name := c.name(x.Sel)
	t := c.tt.MustLookup(xt)
	switch t.Kind {
	case types.KindFile:
		fi, _ := c.tt.FileInfo(xt)
		sel, _ := c.b.Ident(x.Sel)
		ent, ok := c.syms.Member(symbols.ScopeID(fi.Scope), sel.Name)
		if !ok {
			c.errorf(diag.SemaUnknownMember, c.span(x.Sel), "%s has no member %s", c.source(x.X), name)
			return types.NoTypeID
		}
		c.info.Entities[x.Sel] = ent
		mt := c.decay(c.syms.Entity(ent).Type)
		c.info.Types[x.Sel] = mt
		return mt
	case types.KindPointer:
		if k := c.tt.KindOf(t.Elem); k == types.KindStruct || k == types.KindUnion {
			return c.field(id, x, t.Elem)
		}
	case types.KindStruct, types.KindUnion:
		return c.field(id, x, xt)
	case types.KindMeta:
		if info, ok := c.tt.EnumInfo(t.Elem); ok {
			idx, ok := info.CaseIndex(name)
			if !ok {
				c.errorf(diag.SemaUnknownMember, c.span(x.Sel), "enum %s has no case %s", info.Name, name)
				return types.NoTypeID
			}
			c.info.Fields[id] = FieldBinding{Aggregate: t.Elem, Index: idx}
			return t.Elem
		}
	}
	c.errorf(diag.SemaUnknownMember, c.span(x.Sel), "%s (type %s) has no member %s", c.source(x.X), c.typeString(xt), name)
	return types.NoTypeID
}

func (c *Checker) field(id ast.NodeID, x *ast.Selector, agg types.TypeID) types.TypeID {
	info, _ := c.tt.StructInfo(agg)
	name := c.name(x.Sel)
	idx, ok := info.FieldIndex(name)
	if !ok {
		c.errorf(diag.SemaUnknownMember, c.span(x.Sel), "%s has no field %s", c.typeString(agg), name)
		return types.NoTypeID
	}
	c.info.Fields[id] = FieldBinding{Aggregate: agg, Index: idx}
	ft := info.Fields[idx].Type
	c.info.Types[x.Sel] = ft
	return ft
}
