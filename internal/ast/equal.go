package ast

// Equal reports whether two subtrees, possibly from different builders, have
// the same shape: kinds, operators, names and literal values match. Spans and
// literal spelling (0x10 vs 16) are ignored.
func Equal(ba *Builder, a NodeID, bb *Builder, b NodeID) bool {
	e := equaler{ba: ba, bb: bb}
	return e.node(a, b)
}

type equaler struct {
	ba, bb *Builder
}

func (e equaler) all(a, b []NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !e.node(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (e equaler) node(a, b NodeID) bool {
	na, nb := e.ba.Get(a), e.bb.Get(b)
	if na == nil || nb == nil {
		return na == nil && nb == nil
	}
	if na.Kind != nb.Kind {
		return false
	}
	switch x := na.Data.(type) {
	case *Invalid:
		return true
	case *Ident:
		y := nb.Data.(*Ident)
		return x.Poly == y.Poly && e.ba.Strings.MustLookup(x.Name) == e.bb.Strings.MustLookup(y.Name)
	case *Lit:
		y := nb.Data.(*Lit)
		if x.Kind != y.Kind || x.Neg != y.Neg {
			return false
		}
		switch x.Kind {
		case LitInt:
			return x.Int == y.Int
		case LitFloat:
			return x.Float == y.Float
		case LitString:
			return x.Str == y.Str
		default:
			return x.Bool == y.Bool
		}
	case *Paren:
		return e.node(x.X, nb.Data.(*Paren).X)
	case *List:
		return e.all(x.Elems, nb.Data.(*List).Elems)
	case *Prefix:
		y := nb.Data.(*Prefix)
		return x.Op == y.Op && e.node(x.X, y.X)
	case *Infix:
		y := nb.Data.(*Infix)
		return x.Op == y.Op && e.node(x.X, y.X) && e.node(x.Y, y.Y)
	case *Call:
		y := nb.Data.(*Call)
		return e.node(x.Fun, y.Fun) && e.all(x.Args, y.Args)
	case *Selector:
		y := nb.Data.(*Selector)
		return e.node(x.X, y.X) && e.node(x.Sel, y.Sel)
	case *CompositeLit:
		y := nb.Data.(*CompositeLit)
		return e.node(x.Type, y.Type) && e.all(x.Elems, y.Elems)
	case *KeyValue:
		y := nb.Data.(*KeyValue)
		return e.node(x.Key, y.Key) && e.node(x.Value, y.Value)
	case *FuncLit:
		y := nb.Data.(*FuncLit)
		return e.all(x.Params, y.Params) && e.all(x.Results, y.Results) && e.node(x.Body, y.Body)
	case *Param:
		y := nb.Data.(*Param)
		return e.all(x.Names, y.Names) && e.node(x.Type, y.Type)
	case *Variadic:
		y := nb.Data.(*Variadic)
		return x.CVargs == y.CVargs && e.node(x.Elem, y.Elem)
	case *StructType:
		return e.all(x.Fields, nb.Data.(*StructType).Fields)
	case *UnionType:
		return e.all(x.Fields, nb.Data.(*UnionType).Fields)
	case *EnumType:
		y := nb.Data.(*EnumType)
		return e.node(x.Backing, y.Backing) && e.all(x.Cases, y.Cases)
	case *Field:
		y := nb.Data.(*Field)
		return e.all(x.Names, y.Names) && e.node(x.Type, y.Type)
	case *EnumCase:
		y := nb.Data.(*EnumCase)
		return e.node(x.Name, y.Name) && e.node(x.Value, y.Value)
	case *Decl:
		y := nb.Data.(*Decl)
		return x.CompileTime == y.CompileTime && x.LinkName == y.LinkName &&
			x.Discardable == y.Discardable && e.all(x.Names, y.Names) &&
			e.node(x.Type, y.Type) && e.all(x.Values, y.Values)
	case *DeclGroup:
		y := nb.Data.(*DeclGroup)
		return x.Directive == y.Directive && x.CallConv == y.CallConv && x.Braced == y.Braced &&
			e.node(x.Lib, y.Lib) && e.all(x.Decls, y.Decls)
	case *Assign:
		y := nb.Data.(*Assign)
		return x.Op == y.Op && e.all(x.Lhs, y.Lhs) && e.all(x.Rhs, y.Rhs)
	case *Block:
		return e.all(x.Stmts, nb.Data.(*Block).Stmts)
	case *If:
		y := nb.Data.(*If)
		return e.node(x.Cond, y.Cond) && e.node(x.Then, y.Then) && e.node(x.Else, y.Else)
	case *For:
		y := nb.Data.(*For)
		return e.node(x.Label, y.Label) && e.node(x.Init, y.Init) && e.node(x.Cond, y.Cond) &&
			e.node(x.Step, y.Step) && e.node(x.Body, y.Body)
	case *Switch:
		y := nb.Data.(*Switch)
		return e.node(x.Label, y.Label) && e.node(x.Subject, y.Subject) && e.all(x.Cases, y.Cases)
	case *Case:
		y := nb.Data.(*Case)
		return x.IsDefault() == y.IsDefault() && e.all(x.Match, y.Match) && e.all(x.Body, y.Body)
	case *Return:
		return e.all(x.Values, nb.Data.(*Return).Values)
	case *Branch:
		y := nb.Data.(*Branch)
		return x.Tok == y.Tok && e.node(x.Label, y.Label)
	case *Import:
		y := nb.Data.(*Import)
		return x.Path == y.Path && e.node(x.Alias, y.Alias)
	case *Library:
		y := nb.Data.(*Library)
		return x.Path == y.Path && e.node(x.Alias, y.Alias)
	}
	return false
}

// EqualFiles compares two parsed files statement by statement.
func EqualFiles(ba *Builder, a *File, bb *Builder, b *File) bool {
	return equaler{ba: ba, bb: bb}.all(a.Stmts, b.Stmts)
}
