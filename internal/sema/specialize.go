package sema

import (
	"slices"
	"strings"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
	"flint/internal/trace"
	"flint/internal/types"
)

// paramSlot is one parameter name of a polymorphic function.
type paramSlot struct {
	param    ast.NodeID
	typ      ast.NodeID
	explicit bool   // "$N: T"
	binder   string // "T" for "x: $T"
	variadic bool
}

func (c *Checker) slots(x *ast.FuncLit) []paramSlot {
	var out []paramSlot
	for i, pid := range x.Params {
		p, ok := c.b.Param(pid)
		if !ok {
			continue
		}
		_, variadic := c.b.Variadic(p.Type)
		variadic = variadic && i == len(x.Params)-1
		binder := ""
		if b := c.binder(p.Type); b.IsValid() {
			binder = c.name(b)
		}
		if len(p.Names) == 0 {
			out = append(out, paramSlot{param: pid, typ: p.Type, binder: binder, variadic: variadic})
			continue
		}
		for _, n := range p.Names {
			id, _ := c.b.Ident(n)
			s := paramSlot{param: pid, typ: p.Type, variadic: variadic}
			if id != nil && id.Poly {
				s.explicit = true
				s.binder = c.name(n)
			} else {
				s.binder = binder
			}
			out = append(out, s)
		}
	}
	return out
}

// binding is a compile-time name made visible to one specialization.
type binding struct {
	name string
	ent  symbols.Entity
}

// specialize routes a call of a polymorphic function to the concrete
// instance for the argument types, creating it on first use.
func (c *Checker) specialize(id ast.NodeID, x *ast.Call, fi *FuncInfo) types.TypeID {
	orig, _ := c.b.FuncLit(fi.Node)
	slots := c.slots(orig)
	variadic := len(slots) > 0 && slots[len(slots)-1].variadic
	fixed := len(slots)
	if variadic {
		fixed--
	}
	if len(x.Args) < fixed || (!variadic && len(x.Args) > fixed) {
		c.errorf(diag.SemaArity, c.span(id), "wrong number of arguments in call to %s: have %d, want %d",
			c.source(x.Fun), len(x.Args), len(slots))
		c.exprs(x.Args)
		return types.NoTypeID
	}

	var (
		bound    []types.TypeID
		consts   []constant
		bindings []binding
		runtime  []ast.NodeID
		bad      bool
	)
	pre := make(map[ast.NodeID]types.TypeID)
	boundNames := make(map[string]bool)
	for i, arg := range x.Args {
		if i >= fixed {
			runtime = append(runtime, arg)
			continue
		}
		s := slots[i]
		switch {
		case s.explicit:
			t, b, ok := c.bindExplicit(fi, s, arg)
			if !ok {
				bad = true
				continue
			}
			if !c.tt.IsMeta(t) {
				k, ok := c.constantOf(arg, 0)
				if !ok {
					c.errorf(diag.SemaInvalidConstant, c.span(arg), "argument for $%s must be a constant", s.binder)
					bad = true
					continue
				}
				consts = append(consts, k)
			}
			bound = append(bound, t)
			bindings = append(bindings, b)
			boundNames[s.binder] = true
		case s.binder != "" && !boundNames[s.binder]:
			at := c.expr(arg, types.NoTypeID)
			pre[arg] = at
			runtime = append(runtime, arg)
			if at == types.NoTypeID {
				bad = true
				continue
			}
			mt := c.tt.Meta(at)
			bound = append(bound, mt)
			bindings = append(bindings, binding{name: s.binder, ent: symbols.Entity{
				Type:  mt,
				Flags: symbols.FlagType | symbols.FlagCompileTime,
			}})
			boundNames[s.binder] = true
		default:
			runtime = append(runtime, arg)
		}
	}
	if bad {
		for _, arg := range runtime {
			if _, done := pre[arg]; !done {
				c.expr(arg, types.NoTypeID)
			}
		}
		return types.NoTypeID
	}

	var spec *Specialization
	for _, sp := range fi.Specializations {
		if c.tt.EqualLists(sp.Bound, bound) && slices.Equal(sp.consts, consts) {
			spec = sp
			break
		}
	}
	if spec == nil {
		spec = c.instantiate(id, fi, bound, bindings)
		spec.consts = consts
	}
	info, _ := c.tt.FnInfo(spec.Type)
	c.args(id, runtime, info, pre)
	c.info.Calls[id] = &CallInfo{
		Kind:        CallSpecialized,
		Callee:      spec.Type,
		Spec:        spec,
		Args:        runtime,
		Discardable: c.discardable(x.Fun),
	}
	return c.resultType(info.Result)
}

// bindExplicit checks the argument of a "$N: T" parameter. "$T: type"
// takes a type argument; any other annotation takes a constant of that type.
func (c *Checker) bindExplicit(fi *FuncInfo, s paramSlot, arg ast.NodeID) (types.TypeID, binding, bool) {
	if c.isTypeType(fi, s.typ) {
		at := c.expr(arg, types.NoTypeID)
		if at == types.NoTypeID {
			return at, binding{}, false
		}
		if !c.tt.IsMeta(at) {
			c.errorf(diag.SemaNotAType, c.span(arg), "argument for $%s must be a type, have %s", s.binder, c.typeString(at))
			return types.NoTypeID, binding{}, false
		}
		return at, binding{name: s.binder, ent: symbols.Entity{
			Type:  at,
			Flags: symbols.FlagType | symbols.FlagCompileTime,
		}}, true
	}
	depth := c.push(frame{kind: frameBlock, scope: fi.DefScope})
	pt := c.resolveType(s.typ)
	c.pop(depth)
	at := c.expr(arg, pt)
	if at == types.NoTypeID || pt == types.NoTypeID {
		return types.NoTypeID, binding{}, false
	}
	if !c.assignable(arg, at, pt, "compile-time argument") {
		return types.NoTypeID, binding{}, false
	}
	return pt, binding{name: s.binder, ent: symbols.Entity{
		Type:  pt,
		Flags: symbols.FlagCompileTime,
		Value: arg,
	}}, true
}

// constant is the folded value of a compile-time argument.
type constant struct {
	kind ast.LitKind
	neg  bool
	i    uint64
	f    float64
	s    string
	b    bool
}

// constantOf folds a literal, possibly behind compile-time names, into a
// constant.
func (c *Checker) constantOf(id ast.NodeID, depth int) (constant, bool) {
	if depth > 32 {
		return constant{}, false
	}
	id = c.b.Unparen(id)
	if lit, ok := c.b.Lit(id); ok {
		k := constant{kind: lit.Kind, neg: lit.Neg}
		switch lit.Kind {
		case ast.LitInt:
			k.i = lit.Int
			k.neg = lit.Neg && lit.Int != 0
		case ast.LitFloat:
			k.f = lit.Float
			if lit.Neg {
				k.f = -k.f
			}
			k.neg = false
		case ast.LitString:
			k.s = lit.Str
		case ast.LitBool:
			k.b = lit.Bool
		}
		return k, true
	}
	if _, ok := c.b.Ident(id); !ok {
		return constant{}, false
	}
	ent, ok := c.info.Entities[id]
	if !ok {
		return constant{}, false
	}
	e := c.syms.Entity(ent)
	if e.Flags&symbols.FlagCompileTime == 0 || e.Flags&symbols.FlagType != 0 || !e.Value.IsValid() {
		return constant{}, false
	}
	return c.constantOf(e.Value, depth+1)
}

// isTypeType reports a "type" annotation resolving to the builtin entity.
func (c *Checker) isTypeType(fi *FuncInfo, typ ast.NodeID) bool {
	id, ok := c.b.Ident(c.b.Unparen(typ))
	if !ok || id.Poly {
		return false
	}
	ent, ok := c.syms.Lookup(fi.DefScope, id.Name)
	return ok && ent == c.env.Universe.TypeType
}

// instantiate copies the function, binds the compile-time names in a fresh
// scope and checks the copy as an ordinary function.
func (c *Checker) instantiate(site ast.NodeID, fi *FuncInfo, bound []types.TypeID, bindings []binding) *Specialization {
	clone := c.b.Clone(fi.Node)
	lit, _ := c.b.FuncLit(clone)
	c.stripCompileTime(lit)

	c.sites = append(c.sites, site)
	defer func() { c.sites = c.sites[:len(c.sites)-1] }()

	names := make([]string, len(bound))
	for i, t := range bound {
		names[i] = c.typeString(t)
	}
	trace.Point(c.opts.Tracer, trace.ScopeModule, "specialize", c.funcName(fi)+"["+strings.Join(names, ", ")+"]", 0)

	scope := c.syms.NewScope(symbols.ScopeSpecialization, fi.DefScope, clone, c.span(site))
	for _, b := range bindings {
		b.ent.Name = c.b.Strings.Intern(b.name)
		b.ent.Decl = site
		b.ent.Span = c.span(site)
		if _, prev := c.syms.Declare(scope, b.ent); prev.IsValid() {
			c.errorf(diag.SemaRedeclaration, c.span(site), "compile-time parameter %s bound twice", b.name)
		}
	}

	depth := c.push(frame{kind: frameBlock, scope: scope})
	sfi := c.signature(clone, lit)
	sfi.Entity = fi.Entity
	spec := &Specialization{Bound: bound, Type: sfi.Type, Node: clone}
	fi.Specializations = append(fi.Specializations, spec)
	c.funcBody(sfi)
	c.pop(depth)
	return spec
}

// stripCompileTime removes "$N: T" parameters from a copied literal and
// turns each remaining "$T" binder into a reference to the bound type.
func (c *Checker) stripCompileTime(lit *ast.FuncLit) {
	params := lit.Params[:0:0]
	for _, pid := range lit.Params {
		p, ok := c.b.Param(pid)
		if !ok {
			params = append(params, pid)
			continue
		}
		names := p.Names[:0:0]
		for _, n := range p.Names {
			if id, ok := c.b.Ident(n); ok && id.Poly {
				continue
			}
			names = append(names, n)
		}
		if len(p.Names) > 0 && len(names) == 0 {
			continue
		}
		p.Names = names
		params = append(params, pid)
	}
	lit.Params = params
	for _, pid := range lit.Params {
		c.b.Inspect(pid, func(n ast.NodeID) bool {
			if id, ok := c.b.Ident(n); ok {
				id.Poly = false
			}
			return true
		})
	}
}

func (c *Checker) funcName(fi *FuncInfo) string {
	if fi.Entity.IsValid() {
		return c.syms.Name(fi.Entity)
	}
	return "fn"
}
