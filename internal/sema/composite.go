package sema

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/types"
)

func (c *Checker) compositeLit(id ast.NodeID, x *ast.CompositeLit) types.TypeID {
	t := c.resolveType(x.Type)
	if t == types.NoTypeID {
		c.elemValues(x.Elems)
		return types.NoTypeID
	}
	switch c.tt.KindOf(t) {
	case types.KindStruct:
		c.structLit(x, t)
	case types.KindUnion:
		c.unionLit(id, x, t)
	default:
		c.errorf(diag.SemaCompositeLiteral, c.span(x.Type), "invalid composite literal type %s", c.typeString(t))
		c.elemValues(x.Elems)
		return types.NoTypeID
	}
	return t
}

func (c *Checker) elemValues(elems []ast.NodeID) {
	for _, el := range elems {
		if kv, ok := c.b.KeyValue(el); ok {
			el = kv.Value
		}
		c.expr(el, types.NoTypeID)
	}
}

// structLit matches elements by position or by field name.
func (c *Checker) structLit(x *ast.CompositeLit, t types.TypeID) {
	info, _ := c.tt.StructInfo(t)
	fields := info.Fields
	seen := make(map[int]bool, len(x.Elems))
	next := 0
	for _, el := range x.Elems {
		value := el
		var idx int
		if kv, ok := c.b.KeyValue(el); ok {
			value = kv.Value
			name := c.name(kv.Key)
			i, found := info.FieldIndex(name)
			if !found {
				c.errorf(diag.SemaUnknownMember, c.span(kv.Key), "%s has no field %s", c.typeString(t), name)
				c.expr(value, types.NoTypeID)
				continue
			}
			idx = i
		} else {
			idx = next
			next++
			if idx >= len(fields) {
				c.errorf(diag.SemaCompositeLiteral, c.span(el), "too many values in %s literal", c.typeString(t))
				c.expr(value, types.NoTypeID)
				continue
			}
		}
		if seen[idx] {
			c.errorf(diag.SemaCompositeLiteral, c.span(el), "duplicate field %s in %s literal", fields[idx].Name, c.typeString(t))
		}
		seen[idx] = true
		ft := fields[idx].Type
		vt := c.expr(value, ft)
		c.assignable(value, vt, ft, "field "+fields[idx].Name)
		c.info.Fields[el] = FieldBinding{Aggregate: t, Index: idx}
		c.info.Types[el] = ft
	}
}

// unionLit takes exactly one element. A keyed element names its member;
// a bare numeric literal takes the first member it can become, anything
// else the first member whose type equals its own.
func (c *Checker) unionLit(id ast.NodeID, x *ast.CompositeLit, t types.TypeID) {
	info, _ := c.tt.StructInfo(t)
	if len(x.Elems) != 1 {
		c.errorf(diag.SemaUnionLiteral, c.span(id), "%s literal needs exactly one value, have %d", c.typeString(t), len(x.Elems))
		c.elemValues(x.Elems)
		return
	}
	el := x.Elems[0]
	if kv, ok := c.b.KeyValue(el); ok {
		name := c.name(kv.Key)
		idx, found := info.FieldIndex(name)
		if !found {
			c.errorf(diag.SemaUnknownMember, c.span(kv.Key), "%s has no member %s", c.typeString(t), name)
			c.expr(kv.Value, types.NoTypeID)
			return
		}
		ft := info.Fields[idx].Type
		vt := c.expr(kv.Value, ft)
		c.assignable(kv.Value, vt, ft, "member "+name)
		c.info.Fields[el] = FieldBinding{Aggregate: t, Index: idx}
		c.info.Types[el] = ft
		return
	}
	idx := -1
	if c.isUntyped(el) {
		for i, f := range info.Fields {
			if c.literalAdopts(el, f.Type) {
				idx = i
				c.expr(el, f.Type)
				break
			}
		}
		if idx >= 0 {
			c.info.Fields[el] = FieldBinding{Aggregate: t, Index: idx}
			return
		}
	}
	vt := c.expr(el, types.NoTypeID)
	if vt == types.NoTypeID {
		return
	}
	for i, f := range info.Fields {
		if c.tt.Equal(vt, f.Type) {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.errorf(diag.SemaUnionLiteral, c.span(el), "no member of %s has type %s", c.typeString(t), c.typeString(vt))
		return
	}
	c.info.Fields[el] = FieldBinding{Aggregate: t, Index: idx}
}

func (c *Checker) literalAdopts(id ast.NodeID, t types.TypeID) bool {
	l, _ := c.b.Lit(c.b.Unparen(id))
	if l.Kind == ast.LitFloat {
		return c.tt.IsFloat(t)
	}
	return (c.tt.IsInteger(t) && intFits(l, c.tt.MustLookup(t))) || c.tt.IsFloat(t)
}
