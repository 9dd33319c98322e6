package ast

import (
	"fmt"

	"flint/internal/source"
)

type Hints struct{ Nodes uint }

// Builder owns the node arena and the identifier interner shared by every
// file parsed in one session.
type Builder struct {
	Nodes   *Arena[Node]
	Strings *source.Interner
}

func NewBuilder(hints Hints, strings *source.Interner) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 10
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Builder{
		Nodes:   NewArena[Node](hints.Nodes),
		Strings: strings,
	}
}

// New allocates a node; its Kind is taken from the payload.
func (b *Builder) New(sp source.Span, data Payload) NodeID {
	return NodeID(b.Nodes.Allocate(Node{Kind: data.kind(), Span: sp, Data: data}))
}

func (b *Builder) Get(id NodeID) *Node {
	return b.Nodes.Get(uint32(id))
}

// Kind returns KindInvalid for an absent node.
func (b *Builder) Kind(id NodeID) Kind {
	if n := b.Get(id); n != nil {
		return n.Kind
	}
	return KindInvalid
}

func (b *Builder) Span(id NodeID) source.Span {
	if n := b.Get(id); n != nil {
		return n.Span
	}
	return source.Span{}
}

// NewIdent interns name and allocates an identifier node.
func (b *Builder) NewIdent(sp source.Span, name string, poly bool) NodeID {
	return b.New(sp, &Ident{Name: b.Strings.Intern(name), Poly: poly})
}

// Name returns the identifier text of id, or "" when id is not an Ident.
func (b *Builder) Name(id NodeID) string {
	if ident, ok := b.Ident(id); ok {
		return b.Strings.MustLookup(ident.Name)
	}
	return ""
}

// payloadOf is the checked downcast behind the typed accessors.
func payloadOf[T Payload](b *Builder, id NodeID) (T, bool) {
	var zero T
	n := b.Get(id)
	if n == nil {
		return zero, false
	}
	p, ok := n.Data.(T)
	return p, ok
}

// MustPayload panics when id does not hold a T; wrong-variant access is an
// internal error.
func MustPayload[T Payload](b *Builder, id NodeID) T {
	p, ok := payloadOf[T](b, id)
	if !ok {
		panic(fmt.Sprintf("ast: node %d is %s, want %T", id, b.Kind(id), p))
	}
	return p
}

func (b *Builder) Ident(id NodeID) (*Ident, bool)   { return payloadOf[*Ident](b, id) }
func (b *Builder) Lit(id NodeID) (*Lit, bool)       { return payloadOf[*Lit](b, id) }
func (b *Builder) Paren(id NodeID) (*Paren, bool)   { return payloadOf[*Paren](b, id) }
func (b *Builder) List(id NodeID) (*List, bool)     { return payloadOf[*List](b, id) }
func (b *Builder) Prefix(id NodeID) (*Prefix, bool) { return payloadOf[*Prefix](b, id) }
func (b *Builder) Infix(id NodeID) (*Infix, bool)   { return payloadOf[*Infix](b, id) }
func (b *Builder) Call(id NodeID) (*Call, bool)     { return payloadOf[*Call](b, id) }
func (b *Builder) Selector(id NodeID) (*Selector, bool) {
	return payloadOf[*Selector](b, id)
}
func (b *Builder) CompositeLit(id NodeID) (*CompositeLit, bool) {
	return payloadOf[*CompositeLit](b, id)
}
func (b *Builder) KeyValue(id NodeID) (*KeyValue, bool) { return payloadOf[*KeyValue](b, id) }
func (b *Builder) FuncLit(id NodeID) (*FuncLit, bool)   { return payloadOf[*FuncLit](b, id) }
func (b *Builder) Param(id NodeID) (*Param, bool)       { return payloadOf[*Param](b, id) }
func (b *Builder) Variadic(id NodeID) (*Variadic, bool) { return payloadOf[*Variadic](b, id) }
func (b *Builder) StructType(id NodeID) (*StructType, bool) {
	return payloadOf[*StructType](b, id)
}
func (b *Builder) UnionType(id NodeID) (*UnionType, bool) { return payloadOf[*UnionType](b, id) }
func (b *Builder) EnumType(id NodeID) (*EnumType, bool)   { return payloadOf[*EnumType](b, id) }
func (b *Builder) Field(id NodeID) (*Field, bool)         { return payloadOf[*Field](b, id) }
func (b *Builder) EnumCase(id NodeID) (*EnumCase, bool)   { return payloadOf[*EnumCase](b, id) }
func (b *Builder) Decl(id NodeID) (*Decl, bool)           { return payloadOf[*Decl](b, id) }
func (b *Builder) DeclGroup(id NodeID) (*DeclGroup, bool) { return payloadOf[*DeclGroup](b, id) }
func (b *Builder) Assign(id NodeID) (*Assign, bool)       { return payloadOf[*Assign](b, id) }
func (b *Builder) Block(id NodeID) (*Block, bool)         { return payloadOf[*Block](b, id) }
func (b *Builder) If(id NodeID) (*If, bool)               { return payloadOf[*If](b, id) }
func (b *Builder) For(id NodeID) (*For, bool)             { return payloadOf[*For](b, id) }
func (b *Builder) Switch(id NodeID) (*Switch, bool)       { return payloadOf[*Switch](b, id) }
func (b *Builder) Case(id NodeID) (*Case, bool)           { return payloadOf[*Case](b, id) }
func (b *Builder) Return(id NodeID) (*Return, bool)       { return payloadOf[*Return](b, id) }
func (b *Builder) Branch(id NodeID) (*Branch, bool)       { return payloadOf[*Branch](b, id) }
func (b *Builder) Import(id NodeID) (*Import, bool)       { return payloadOf[*Import](b, id) }
func (b *Builder) Library(id NodeID) (*Library, bool)     { return payloadOf[*Library](b, id) }

// Unparen strips any number of enclosing parentheses.
func (b *Builder) Unparen(id NodeID) NodeID {
	for {
		p, ok := b.Paren(id)
		if !ok {
			return id
		}
		id = p.X
	}
}
