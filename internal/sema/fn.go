package sema

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
	"flint/internal/types"
)

// funcLit checks a function literal in expression position. Bodies of
// polymorphic functions wait for their specializations.
func (c *Checker) funcLit(id ast.NodeID, x *ast.FuncLit) types.TypeID {
	fi := c.signature(id, x)
	if x.Body.IsValid() && !fi.Polymorphic {
		c.funcBody(fi)
	}
	return c.info.Types[id]
}

// signature builds the function type and the parameter scope. A literal
// without a body denotes a function type and yields its metatype.
func (c *Checker) signature(id ast.NodeID, x *ast.FuncLit) *FuncInfo {
	if fi, ok := c.info.Funcs[id]; ok {
		return fi
	}
	fi := &FuncInfo{Node: id, DefScope: c.cur()}
	c.info.Funcs[id] = fi
	if c.polymorphic(x) {
		fi.Polymorphic = true
		fi.Type = c.placeholderSignature(x)
		c.info.Types[id] = fi.Type
		return fi
	}
	fi.Scope = c.openScope(symbols.ScopeFunction, id)
	var params []types.TypeID
	var flags types.FnFlags
	for i, pid := range x.Params {
		p, ok := c.b.Param(pid)
		if !ok {
			continue
		}
		pt, pflags := c.paramType(p.Type, i == len(x.Params)-1)
		flags |= pflags
		local := pt
		if pflags&types.FnVariadic != 0 {
			// the body sees the trailing arguments through a pointer
			local = c.tt.Pointer(pt)
		}
		if len(p.Names) == 0 {
			params = append(params, pt)
			continue
		}
		for _, n := range p.Names {
			params = append(params, pt)
			c.declare(fi.Scope, n, symbols.Entity{Type: local, Decl: pid})
		}
	}
	results := make([]types.TypeID, 0, len(x.Results))
	for _, r := range x.Results {
		results = append(results, c.resolveType(r))
	}
	fi.Type = c.tt.RegisterFn(params, c.tt.RegisterTuple(results), flags)
	if x.Body.IsValid() {
		c.info.Types[id] = fi.Type
	} else {
		c.info.Types[id] = c.tt.Meta(fi.Type)
	}
	return fi
}

// paramType resolves a parameter type, handling "..T" and "#cvargs ..T".
func (c *Checker) paramType(id ast.NodeID, last bool) (types.TypeID, types.FnFlags) {
	v, ok := c.b.Variadic(id)
	if !ok {
		return c.resolveType(id), 0
	}
	if !last {
		c.errorf(diag.SemaError, c.span(id), "only the last parameter can be variadic")
	}
	if v.CVargs {
		c.resolveType(v.Elem)
		c.info.Types[id] = c.bt.CVarArgsAny
		return c.bt.CVarArgsAny, types.FnCVariadic
	}
	et := c.resolveType(v.Elem)
	c.info.Types[id] = et
	return et, types.FnVariadic
}

// placeholderSignature types a polymorphic function before any
// specialization: one placeholder per parameter and result.
func (c *Checker) placeholderSignature(x *ast.FuncLit) types.TypeID {
	var params, results []types.TypeID
	flags := types.FnPolymorphic
	for i, pid := range x.Params {
		p, ok := c.b.Param(pid)
		if !ok {
			continue
		}
		if v, ok := c.b.Variadic(p.Type); ok && i == len(x.Params)-1 {
			if v.CVargs {
				flags |= types.FnCVariadic
			} else {
				flags |= types.FnVariadic
			}
		}
		n := max(len(p.Names), 1)
		for j := range n {
			name := "_"
			if j < len(p.Names) {
				name = c.name(p.Names[j])
			}
			params = append(params, c.tt.RegisterPoly(name))
		}
	}
	for range x.Results {
		results = append(results, c.tt.RegisterPoly("_"))
	}
	return c.tt.RegisterFn(params, c.tt.RegisterTuple(results), flags)
}

// polymorphic reports explicit "$N: T" parameters and "$T" binders inside
// parameter types.
func (c *Checker) polymorphic(x *ast.FuncLit) bool {
	for _, pid := range x.Params {
		p, ok := c.b.Param(pid)
		if !ok {
			continue
		}
		for _, n := range p.Names {
			if id, ok := c.b.Ident(n); ok && id.Poly {
				return true
			}
		}
		if c.binder(p.Type).IsValid() {
			return true
		}
	}
	return false
}

// binder returns the first "$T" identifier inside a type expression.
func (c *Checker) binder(typ ast.NodeID) ast.NodeID {
	found := ast.NoNodeID
	c.b.Inspect(typ, func(n ast.NodeID) bool {
		if found.IsValid() {
			return false
		}
		if id, ok := c.b.Ident(n); ok && id.Poly {
			found = n
			return false
		}
		return true
	})
	return found
}

func (c *Checker) funcBody(fi *FuncInfo) {
	if fi.checked {
		return
	}
	fi.checked = true
	x, _ := c.b.FuncLit(fi.Node)
	blk, ok := c.b.Block(x.Body)
	if !ok {
		return
	}
	info, _ := c.tt.FnInfo(fi.Type)
	c.info.Scopes[x.Body] = fi.Scope
	depth := c.push(frame{kind: frameFunc, scope: fi.Scope, node: fi.Node, results: info.Result})
	c.stmts(blk.Stmts)
	c.pop(depth)
}
