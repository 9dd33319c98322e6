package sema

import (
	"flint/internal/ast"
	"flint/internal/symbols"
	"flint/internal/types"
)

// ConvKind is an implicit or explicit value conversion the code generator
// must materialize.
type ConvKind uint8

const (
	ConvNone ConvKind = iota
	ConvIntToFloat
	ConvFloatToInt
	ConvSignExtend
	ConvZeroExtend
	ConvTruncate
	ConvFloatExtend
	ConvFloatTruncate
	// ConvBitcast reinterprets an integer of the same width and the other signedness.
	ConvBitcast
	// ConvCVarArg passes a value through a C varargs slot.
	ConvCVarArg
)

var convNames = [...]string{
	ConvNone:          "none",
	ConvIntToFloat:    "sitofp",
	ConvFloatToInt:    "fptosi",
	ConvSignExtend:    "sext",
	ConvZeroExtend:    "zext",
	ConvTruncate:      "trunc",
	ConvFloatExtend:   "fpext",
	ConvFloatTruncate: "fptrunc",
	ConvBitcast:       "bitcast",
	ConvCVarArg:       "cvararg",
}

func (k ConvKind) String() string {
	if int(k) < len(convNames) {
		return convNames[k]
	}
	return "conv(?)"
}

// Conversion is recorded on the operand node that gets converted.
type Conversion struct {
	Kind ConvKind
	To   types.TypeID
}

// CallKind classifies a checked call.
type CallKind uint8

const (
	CallDirect CallKind = iota
	CallCast
	CallBuiltin
	CallSpecialized
)

// CallInfo describes how a call node resolved.
type CallInfo struct {
	Kind CallKind
	// Callee is the concrete function type; the target type for casts.
	Callee  types.TypeID
	Builtin symbols.BuiltinID
	// Cast is the conversion a CallCast performs.
	Cast ConvKind
	Spec *Specialization
	// Args are the runtime arguments. Compile-time arguments of a
	// specialized call are already removed.
	Args        []ast.NodeID
	Discardable bool
	// Value holds the folded result of sizeof/alignof, in bytes.
	Value uint64
}

// FieldBinding ties a member access or composite literal element to a field
// (or an enum case) of an aggregate.
type FieldBinding struct {
	Aggregate types.TypeID
	Index     int
}

// Specialization is one concrete instance of a polymorphic function.
type Specialization struct {
	Bound []types.TypeID
	Type  types.TypeID
	// Node is the checked copy of the function literal.
	Node ast.NodeID
	// consts are the values of "$N: T" arguments, in parameter order.
	consts []constant
}

// FuncInfo is kept for every function literal.
type FuncInfo struct {
	Node ast.NodeID
	Type types.TypeID
	// Scope holds the parameters; DefScope is where the literal appears.
	Scope    symbols.ScopeID
	DefScope symbols.ScopeID
	Entity   symbols.EntityID

	Polymorphic bool
	checked     bool
	// Specializations is append-only; lookups scan it in order.
	Specializations []*Specialization
}

// Info collects everything the checker learns, keyed by node. One Info is
// shared by all files of a session.
type Info struct {
	Types       map[ast.NodeID]types.TypeID
	Entities    map[ast.NodeID]symbols.EntityID
	Conversions map[ast.NodeID]Conversion
	Fields      map[ast.NodeID]FieldBinding
	Calls       map[ast.NodeID]*CallInfo
	Funcs       map[ast.NodeID]*FuncInfo
	Targets     map[ast.NodeID]ast.NodeID
	Scopes      map[ast.NodeID]symbols.ScopeID
}

func NewInfo() *Info {
	return &Info{
		Types:       make(map[ast.NodeID]types.TypeID),
		Entities:    make(map[ast.NodeID]symbols.EntityID),
		Conversions: make(map[ast.NodeID]Conversion),
		Fields:      make(map[ast.NodeID]FieldBinding),
		Calls:       make(map[ast.NodeID]*CallInfo),
		Funcs:       make(map[ast.NodeID]*FuncInfo),
		Targets:     make(map[ast.NodeID]ast.NodeID),
		Scopes:      make(map[ast.NodeID]symbols.ScopeID),
	}
}

// TypeOf returns the checked type of id or NoTypeID.
func (i *Info) TypeOf(id ast.NodeID) types.TypeID {
	return i.Types[id]
}

// EntityOf returns the entity an identifier or declared name resolved to.
func (i *Info) EntityOf(id ast.NodeID) symbols.EntityID {
	return i.Entities[id]
}
