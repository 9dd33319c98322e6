package symbols

// ScopeID identifies a scope in the table arena.
type ScopeID uint32

const (
	// NoScopeID marks the absence of a scope reference.
	NoScopeID ScopeID = 0
)

// IsValid reports whether the scope ID refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// EntityID identifies an entity inside the table arena.
type EntityID uint32

const (
	// NoEntityID marks the absence of an entity reference.
	NoEntityID EntityID = 0
)

// IsValid reports whether the entity ID refers to an allocated entity.
func (id EntityID) IsValid() bool { return id != NoEntityID }
