package sema

import (
	"fortio.org/safecast"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/types"
)

// resolveType checks a type expression and returns the type it denotes.
// Function types used as values are pointers to functions.
func (c *Checker) resolveType(id ast.NodeID) types.TypeID {
	t := c.expr(id, types.NoTypeID)
	if t == types.NoTypeID {
		return types.NoTypeID
	}
	inner, ok := c.metaElem(t)
	if !ok {
		c.errorf(diag.SemaNotAType, c.span(id), "%s is not a type", c.source(id))
		return types.NoTypeID
	}
	return c.decay(inner)
}

// structType checks a struct body. self is the pre-registered named type,
// or NoTypeID for an anonymous struct.
func (c *Checker) structType(id ast.NodeID, x *ast.StructType, self types.TypeID) types.TypeID {
	if self == types.NoTypeID {
		self = c.tt.RegisterStruct("")
	}
	c.tt.SetFields(self, c.fields(x.Fields, self))
	return c.tt.Meta(self)
}

func (c *Checker) unionType(id ast.NodeID, x *ast.UnionType, self types.TypeID) types.TypeID {
	if self == types.NoTypeID {
		self = c.tt.RegisterUnion("")
	}
	c.tt.SetFields(self, c.fields(x.Fields, self))
	return c.tt.Meta(self)
}

func (c *Checker) fields(list []ast.NodeID, self types.TypeID) []types.Field {
	var out []types.Field
	seen := make(map[string]ast.NodeID)
	for _, fid := range list {
		f, ok := c.b.Field(fid)
		if !ok {
			continue
		}
		ft := c.resolveType(f.Type)
		if ft != types.NoTypeID && c.contains(ft, self) {
			c.errorf(diag.SemaError, c.span(f.Type), "invalid recursive type %s", c.typeString(self))
			ft = types.NoTypeID
		}
		if ft != types.NoTypeID && !c.tt.HasLayout(ft) {
			c.errorf(diag.SemaError, c.span(f.Type), "field type %s has no layout", c.typeString(ft))
			ft = types.NoTypeID
		}
		for _, n := range f.Names {
			name := c.name(n)
			if prev, dup := seen[name]; dup {
				c.diagnose(diag.SevError, diag.SemaRedeclaration, c.span(n), "duplicate field "+name,
					note(c.span(prev), "previous declaration"))
				continue
			}
			seen[name] = n
			c.info.Types[n] = ft
			out = append(out, types.Field{Name: name, Type: ft})
		}
	}
	return out
}

// contains reports whether a value of type t embeds self directly.
func (c *Checker) contains(t, self types.TypeID) bool {
	if t == self {
		return true
	}
	if info, ok := c.tt.TupleInfo(t); ok {
		for _, e := range info.Elems {
			if c.contains(e, self) {
				return true
			}
		}
	}
	return false
}

func (c *Checker) enumType(id ast.NodeID, x *ast.EnumType, name string) types.TypeID {
	backing := c.bt.I64
	if x.Backing.IsValid() {
		if bt := c.resolveType(x.Backing); bt != types.NoTypeID {
			if c.tt.IsInteger(bt) {
				backing = bt
			} else {
				c.errorf(diag.SemaTypeMismatch, c.span(x.Backing), "enum backing type must be an integer, have %s", c.typeString(bt))
			}
		}
	}
	var cases []types.EnumCase
	seen := make(map[string]ast.NodeID)
	var next int64
	for _, cid := range x.Cases {
		ec, ok := c.b.EnumCase(cid)
		if !ok {
			continue
		}
		value := next
		if ec.Value.IsValid() {
			vt := c.expr(ec.Value, backing)
			lit, isLit := c.b.Lit(c.b.Unparen(ec.Value))
			switch {
			case vt == types.NoTypeID:
			case !isLit || lit.Kind != ast.LitInt:
				c.errorf(diag.SemaInvalidConstant, c.span(ec.Value), "enum case value must be an integer constant")
			default:
				v, err := safecast.Conv[int64](lit.Int)
				if err != nil {
					c.errorf(diag.SemaLiteralOverflow, c.span(ec.Value), "enum case value %s overflows int64", litText(lit))
					break
				}
				value = v
				if lit.Neg {
					value = -v
				}
			}
		}
		next = value + 1
		cname := c.name(ec.Name)
		if prev, dup := seen[cname]; dup {
			c.diagnose(diag.SevError, diag.SemaRedeclaration, c.span(ec.Name), "duplicate enum case "+cname,
				note(c.span(prev), "previous declaration"))
			continue
		}
		seen[cname] = ec.Name
		cases = append(cases, types.EnumCase{Name: cname, Value: value})
	}
	t := c.tt.RegisterEnum(name, backing)
	info, _ := c.tt.EnumInfo(t)
	info.Cases = cases
	for _, cid := range x.Cases {
		if ec, ok := c.b.EnumCase(cid); ok {
			c.info.Types[ec.Name] = t
		}
	}
	return c.tt.Meta(t)
}
