package symbols

import (
	"flint/internal/ast"
	"flint/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid ScopeKind = iota
	ScopeUniverse
	ScopeFile
	ScopeFunction
	ScopeBlock
	ScopeFor
	ScopeSwitch
	ScopeCase
	// ScopeSpecialization holds the compile-time bindings of one
	// specialization of a polymorphic function.
	ScopeSpecialization
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeUniverse:
		return "universe"
	case ScopeFile:
		return "file"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	case ScopeFor:
		return "for"
	case ScopeSwitch:
		return "switch"
	case ScopeCase:
		return "case"
	case ScopeSpecialization:
		return "specialization"
	default:
		return "invalid"
	}
}

// Scope models a lexical scope. Entities keeps declaration order.
// Imports lists file scopes brought in by an unaliased #import; their
// members are visible after the scope's own names.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     ast.NodeID
	Span      source.Span
	NameIndex map[source.StringID]EntityID
	Entities  []EntityID
	Children  []ScopeID
	Imports   []ScopeID
}
