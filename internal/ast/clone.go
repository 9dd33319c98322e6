package ast

import "slices"

// Clone deep-copies the subtree rooted at id inside the same builder and
// returns the new root. Spans are kept so diagnostics in the copy point at
// the original source.
func (b *Builder) Clone(id NodeID) NodeID {
	n := b.Get(id)
	if n == nil {
		return NoNodeID
	}
	sp := n.Span
	switch d := n.Data.(type) {
	case *Invalid:
		cp := *d
		return b.New(sp, &cp)
	case *Ident:
		cp := *d
		return b.New(sp, &cp)
	case *Lit:
		cp := *d
		return b.New(sp, &cp)
	case *Paren:
		return b.New(sp, &Paren{X: b.Clone(d.X)})
	case *List:
		return b.New(sp, &List{Elems: b.cloneAll(d.Elems)})
	case *Prefix:
		return b.New(sp, &Prefix{Op: d.Op, X: b.Clone(d.X)})
	case *Infix:
		return b.New(sp, &Infix{Op: d.Op, X: b.Clone(d.X), Y: b.Clone(d.Y)})
	case *Call:
		return b.New(sp, &Call{Fun: b.Clone(d.Fun), Args: b.cloneAll(d.Args)})
	case *Selector:
		return b.New(sp, &Selector{X: b.Clone(d.X), Sel: b.Clone(d.Sel)})
	case *CompositeLit:
		return b.New(sp, &CompositeLit{Type: b.Clone(d.Type), Elems: b.cloneAll(d.Elems)})
	case *KeyValue:
		return b.New(sp, &KeyValue{Key: b.Clone(d.Key), Value: b.Clone(d.Value)})
	case *FuncLit:
		return b.New(sp, &FuncLit{
			Params:  b.cloneAll(d.Params),
			Results: b.cloneAll(d.Results),
			Body:    b.Clone(d.Body),
		})
	case *Param:
		return b.New(sp, &Param{Names: b.cloneAll(d.Names), Type: b.Clone(d.Type)})
	case *Variadic:
		return b.New(sp, &Variadic{Elem: b.Clone(d.Elem), CVargs: d.CVargs})
	case *StructType:
		return b.New(sp, &StructType{Fields: b.cloneAll(d.Fields)})
	case *UnionType:
		return b.New(sp, &UnionType{Fields: b.cloneAll(d.Fields)})
	case *EnumType:
		return b.New(sp, &EnumType{Backing: b.Clone(d.Backing), Cases: b.cloneAll(d.Cases)})
	case *Field:
		return b.New(sp, &Field{Names: b.cloneAll(d.Names), Type: b.Clone(d.Type)})
	case *EnumCase:
		return b.New(sp, &EnumCase{Name: b.Clone(d.Name), Value: b.Clone(d.Value)})
	case *Decl:
		return b.New(sp, &Decl{
			Names:       b.cloneAll(d.Names),
			Type:        b.Clone(d.Type),
			Values:      b.cloneAll(d.Values),
			CompileTime: d.CompileTime,
			LinkName:    d.LinkName,
			Discardable: d.Discardable,
		})
	case *DeclGroup:
		return b.New(sp, &DeclGroup{
			Directive: d.Directive,
			Lib:       b.Clone(d.Lib),
			CallConv:  d.CallConv,
			Decls:     b.cloneAll(d.Decls),
			Braced:    d.Braced,
		})
	case *Assign:
		return b.New(sp, &Assign{Op: d.Op, Lhs: b.cloneAll(d.Lhs), Rhs: b.cloneAll(d.Rhs)})
	case *Block:
		return b.New(sp, &Block{Stmts: b.cloneAll(d.Stmts)})
	case *If:
		return b.New(sp, &If{Cond: b.Clone(d.Cond), Then: b.Clone(d.Then), Else: b.Clone(d.Else)})
	case *For:
		return b.New(sp, &For{
			Label: b.Clone(d.Label),
			Init:  b.Clone(d.Init),
			Cond:  b.Clone(d.Cond),
			Step:  b.Clone(d.Step),
			Body:  b.Clone(d.Body),
		})
	case *Switch:
		return b.New(sp, &Switch{Label: b.Clone(d.Label), Subject: b.Clone(d.Subject), Cases: b.cloneAll(d.Cases)})
	case *Case:
		return b.New(sp, &Case{Match: b.cloneAll(d.Match), Body: b.cloneAll(d.Body)})
	case *Return:
		return b.New(sp, &Return{Values: b.cloneAll(d.Values)})
	case *Branch:
		return b.New(sp, &Branch{Tok: d.Tok, Label: b.Clone(d.Label)})
	case *Import:
		return b.New(sp, &Import{Path: d.Path, Alias: b.Clone(d.Alias)})
	case *Library:
		return b.New(sp, &Library{Path: d.Path, Alias: b.Clone(d.Alias)})
	}
	panic("ast: clone of unknown payload " + n.Kind.String())
}

// cloneAll keeps nil as nil: a default case is told apart by its nil Match.
func (b *Builder) cloneAll(ids []NodeID) []NodeID {
	if ids == nil {
		return nil
	}
	out := slices.Clone(ids)
	for i, id := range out {
		out[i] = b.Clone(id)
	}
	return out
}
