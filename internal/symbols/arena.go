package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"flint/internal/ast"
	"flint/internal/source"
)

// Scopes stores all allocated scopes in a compact slice-based arena.
type Scopes struct {
	data []Scope
}

// NewScopes creates an arena with optional capacity hint.
func NewScopes(capacity uint32) *Scopes {
	if capacity == 0 {
		capacity = 32
	}
	return &Scopes{
		data: make([]Scope, 1, capacity+1), // index 0 reserved for NoScopeID
	}
}

// New allocates a new scope and returns its ID.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, owner ast.NodeID, span source.Span) ScopeID {
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("scopes arena overflow: %w", err))
	}
	id := ScopeID(value)
	s.data = append(s.data, Scope{
		Kind:      kind,
		Parent:    parent,
		Owner:     owner,
		Span:      span,
		NameIndex: make(map[source.StringID]EntityID),
	})
	if parent.IsValid() {
		if parentScope := s.Get(parent); parentScope != nil {
			parentScope.Children = append(parentScope.Children, id)
		}
	}
	return id
}

// Get returns the scope pointer or nil if ID is invalid.
func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports total number of scopes excluding the sentinel.
func (s *Scopes) Len() int { return len(s.data) - 1 }

// Entities stores declared entities in a compact arena.
type Entities struct {
	data []Entity
}

// NewEntities creates an entity arena with optional capacity hint.
func NewEntities(capacity uint32) *Entities {
	if capacity == 0 {
		capacity = 64
	}
	return &Entities{
		data: make([]Entity, 1, capacity+1), // index 0 reserved for NoEntityID
	}
}

// New allocates an entity in the arena and returns its ID.
func (s *Entities) New(ent *Entity) EntityID {
	if ent == nil {
		panic("symbols.New: nil entity")
	}
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("entities arena overflow: %w", err))
	}
	id := EntityID(value)
	s.data = append(s.data, *ent)
	return id
}

// Get returns the entity pointer or nil if ID is invalid.
func (s *Entities) Get(id EntityID) *Entity {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports total number of entities excluding the sentinel.
func (s *Entities) Len() int { return len(s.data) - 1 }
