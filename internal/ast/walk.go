package ast

// Children returns the direct children of id in source order.
func (b *Builder) Children(id NodeID) []NodeID {
	n := b.Get(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	add := func(ids ...NodeID) {
		for _, c := range ids {
			if c.IsValid() {
				out = append(out, c)
			}
		}
	}
	switch d := n.Data.(type) {
	case *Paren:
		add(d.X)
	case *List:
		add(d.Elems...)
	case *Prefix:
		add(d.X)
	case *Infix:
		add(d.X, d.Y)
	case *Call:
		add(d.Fun)
		add(d.Args...)
	case *Selector:
		add(d.X, d.Sel)
	case *CompositeLit:
		add(d.Type)
		add(d.Elems...)
	case *KeyValue:
		add(d.Key, d.Value)
	case *FuncLit:
		add(d.Params...)
		add(d.Results...)
		add(d.Body)
	case *Param:
		add(d.Names...)
		add(d.Type)
	case *Variadic:
		add(d.Elem)
	case *StructType:
		add(d.Fields...)
	case *UnionType:
		add(d.Fields...)
	case *EnumType:
		add(d.Backing)
		add(d.Cases...)
	case *Field:
		add(d.Names...)
		add(d.Type)
	case *EnumCase:
		add(d.Name, d.Value)
	case *Decl:
		add(d.Names...)
		add(d.Type)
		add(d.Values...)
	case *DeclGroup:
		add(d.Lib)
		add(d.Decls...)
	case *Assign:
		add(d.Lhs...)
		add(d.Rhs...)
	case *Block:
		add(d.Stmts...)
	case *If:
		add(d.Cond, d.Then, d.Else)
	case *For:
		add(d.Label, d.Init, d.Cond, d.Step, d.Body)
	case *Switch:
		add(d.Label, d.Subject)
		add(d.Cases...)
	case *Case:
		add(d.Match...)
		add(d.Body...)
	case *Return:
		add(d.Values...)
	case *Branch:
		add(d.Label)
	case *Import:
		add(d.Alias)
	case *Library:
		add(d.Alias)
	}
	return out
}

// Inspect walks the subtree rooted at id depth-first; returning false from
// fn skips the children of that node.
func (b *Builder) Inspect(id NodeID, fn func(NodeID) bool) {
	if !id.IsValid() || !fn(id) {
		return
	}
	for _, c := range b.Children(id) {
		b.Inspect(c, fn)
	}
}
