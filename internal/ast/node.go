package ast

import (
	"flint/internal/source"
	"flint/internal/token"
)

// Node is one arena slot. Span covers the node's first through last token.
type Node struct {
	Kind Kind
	Span source.Span
	Data Payload
}

// Payload is the closed set of node variants. Checked information never
// lives here: the checker keeps it in side tables keyed by NodeID.
type Payload interface {
	kind() Kind
}

// Invalid stands in for a construct the parser could not recognise.
type Invalid struct {
	Text string
}

type Ident struct {
	Name source.StringID
	// Poly marks a "$name" compile-time binder.
	Poly bool
}

type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitBool
)

// Lit is a literal. Numeric literals keep their magnitude; a minus sign
// folded in by the parser sets Neg.
type Lit struct {
	Kind  LitKind
	Text  string
	Int   uint64
	Float float64
	Str   string
	Bool  bool
	Neg   bool
}

type Paren struct {
	X NodeID
}

// List is a comma-joined expression list before the parser explodes it.
type List struct {
	Elems []NodeID
}

type Prefix struct {
	Op token.Kind
	X  NodeID
}

type Infix struct {
	Op   token.Kind
	X, Y NodeID
}

type Call struct {
	Fun  NodeID
	Args []NodeID
}

type Selector struct {
	X   NodeID
	Sel NodeID // Ident
}

type CompositeLit struct {
	Type  NodeID
	Elems []NodeID
}

// KeyValue is a "name: value" element of a composite literal.
type KeyValue struct {
	Key   NodeID // Ident
	Value NodeID
}

// FuncLit is "fn (params) -> results { body }". Without a body it denotes a
// function type.
type FuncLit struct {
	Params  []NodeID // Param
	Results []NodeID
	Body    NodeID // Block or NoNodeID
}

// Param groups names sharing one type. Names is empty for unnamed
// parameters of a function type.
type Param struct {
	Names []NodeID // Ident
	Type  NodeID
}

// Variadic is the "..T" parameter type; CVargs marks "#cvargs ..T".
type Variadic struct {
	Elem   NodeID
	CVargs bool
}

type StructType struct {
	Fields []NodeID // Field
}

type UnionType struct {
	Fields []NodeID // Field
}

type Field struct {
	Names []NodeID // Ident
	Type  NodeID
}

type EnumType struct {
	Backing NodeID // optional
	Cases   []NodeID
}

type EnumCase struct {
	Name  NodeID // Ident
	Value NodeID // optional
}

// Decl covers all declaration forms:
//
//	names : T            names : T = values
//	names : T : values   names :: values
//	names := values
type Decl struct {
	Names       []NodeID
	Type        NodeID
	Values      []NodeID
	CompileTime bool
	LinkName    string
	Discardable bool
}

// DeclGroup is a "#foreign lib" or "#callingConvention "cc"" wrapper around
// one declaration or a braced block of them.
type DeclGroup struct {
	Directive token.Kind
	Lib       NodeID // Ident, #foreign only
	CallConv  string // #callingConvention only
	Decls     []NodeID
	Braced    bool
}

type Assign struct {
	Op  token.Kind
	Lhs []NodeID
	Rhs []NodeID
}

type Block struct {
	Stmts []NodeID
}

type If struct {
	Cond NodeID
	Then NodeID // Block
	Else NodeID // Block, If or NoNodeID
}

type For struct {
	Label NodeID // Ident or NoNodeID
	Init  NodeID
	Cond  NodeID
	Step  NodeID
	Body  NodeID // Block
}

type Switch struct {
	Label   NodeID
	Subject NodeID
	Cases   []NodeID // Case
}

// Case with a nil Match is the default arm ("case:").
type Case struct {
	Match []NodeID
	Body  []NodeID
}

type Return struct {
	Values []NodeID
}

// Branch is break, continue or fallthrough.
type Branch struct {
	Tok   token.Kind
	Label NodeID
}

type Import struct {
	Path  string
	Alias NodeID
}

type Library struct {
	Path  string
	Alias NodeID
}

func (*Invalid) kind() Kind      { return KindInvalid }
func (*Ident) kind() Kind        { return KindIdent }
func (*Lit) kind() Kind          { return KindLit }
func (*Paren) kind() Kind        { return KindParen }
func (*List) kind() Kind         { return KindList }
func (*Prefix) kind() Kind       { return KindPrefix }
func (*Infix) kind() Kind        { return KindInfix }
func (*Call) kind() Kind         { return KindCall }
func (*Selector) kind() Kind     { return KindSelector }
func (*CompositeLit) kind() Kind { return KindCompositeLit }
func (*KeyValue) kind() Kind     { return KindKeyValue }
func (*FuncLit) kind() Kind      { return KindFuncLit }
func (*Param) kind() Kind        { return KindParam }
func (*Variadic) kind() Kind     { return KindVariadic }
func (*StructType) kind() Kind   { return KindStructType }
func (*UnionType) kind() Kind    { return KindUnionType }
func (*EnumType) kind() Kind     { return KindEnumType }
func (*Field) kind() Kind        { return KindField }
func (*EnumCase) kind() Kind     { return KindEnumCase }
func (*Decl) kind() Kind         { return KindDecl }
func (*DeclGroup) kind() Kind    { return KindDeclGroup }
func (*Assign) kind() Kind       { return KindAssign }
func (*Block) kind() Kind        { return KindBlock }
func (*If) kind() Kind           { return KindIf }
func (*For) kind() Kind          { return KindFor }
func (*Switch) kind() Kind       { return KindSwitch }
func (*Case) kind() Kind         { return KindCase }
func (*Return) kind() Kind       { return KindReturn }
func (*Branch) kind() Kind       { return KindBranch }
func (*Import) kind() Kind       { return KindImport }
func (*Library) kind() Kind      { return KindLibrary }

// IsDefault reports whether c is the "case:" arm.
func (c *Case) IsDefault() bool { return c.Match == nil }
