package symbols

import (
	"flint/internal/ast"
	"flint/internal/source"
	"flint/internal/types"
)

// Flags encode entity attributes.
type Flags uint16

const (
	FlagCompileTime Flags = 1 << iota
	FlagForeign
	FlagType
	FlagLabel
	FlagLibrary
	FlagFile
	FlagBuiltin
	FlagDiscardable
)

var flagNames = [...]string{
	"compile-time", "foreign", "type", "label", "library", "file", "builtin", "discardable",
}

// Strings returns a slice of textual flag labels.
func (f Flags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			labels = append(labels, name)
		}
	}
	return labels
}

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// BuiltinID names a builtin function whose calls the checker handles itself.
type BuiltinID uint8

const (
	BuiltinNone BuiltinID = iota
	BuiltinSizeof
	BuiltinAlignof
	BuiltinAssert
)

func (b BuiltinID) String() string {
	switch b {
	case BuiltinSizeof:
		return "sizeof"
	case BuiltinAlignof:
		return "alignof"
	case BuiltinAssert:
		return "assert"
	default:
		return "none"
	}
}

// Entity is a named program symbol: variable, constant, function, type,
// label, imported file or library.
type Entity struct {
	Name  source.StringID
	Type  types.TypeID
	Flags Flags
	Scope ScopeID
	Span  source.Span
	// Decl is the declaring node; Value the compile-time value, if any
	// (a function literal for functions, needed for specialization).
	Decl    ast.NodeID
	Value   ast.NodeID
	Builtin BuiltinID

	LinkName string
	CallConv string
	Library  EntityID
	// Path is the resolved file or library path for File and Library entities.
	Path string
}
