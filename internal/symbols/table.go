package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"flint/internal/ast"
	"flint/internal/source"
)

// Hints provide optional capacity suggestions for the table arenas.
type Hints struct{ Scopes, Entities uint }

// Table aggregates the scope and entity arenas of one compilation run.
type Table struct {
	Scopes   *Scopes
	Entities *Entities
	Strings  *source.Interner
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	entCap, err := safecast.Conv[uint32](h.Entities)
	if err != nil {
		panic(fmt.Errorf("entity capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:   NewScopes(scopeCap),
		Entities: NewEntities(entCap),
		Strings:  strings,
	}
}

// NewScope opens a child scope of parent.
func (t *Table) NewScope(kind ScopeKind, parent ScopeID, owner ast.NodeID, span source.Span) ScopeID {
	return t.Scopes.New(kind, parent, owner, span)
}

// Declare adds ent to scope. When the name is already declared in that
// scope nothing is added and the earlier entity is returned as prev.
func (t *Table) Declare(scope ScopeID, ent Entity) (id, prev EntityID) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		panic(fmt.Sprintf("symbols: declare in invalid scope %d", scope))
	}
	if existing, ok := sc.NameIndex[ent.Name]; ok {
		return NoEntityID, existing
	}
	ent.Scope = scope
	id = t.Entities.New(&ent)
	sc.NameIndex[ent.Name] = id
	sc.Entities = append(sc.Entities, id)
	return id, NoEntityID
}

// Entity returns the entity for id, or nil.
func (t *Table) Entity(id EntityID) *Entity {
	return t.Entities.Get(id)
}

// Scope returns the scope for id, or nil.
func (t *Table) Scope(id ScopeID) *Scope {
	return t.Scopes.Get(id)
}

// LookupLocal searches only scope itself.
func (t *Table) LookupLocal(scope ScopeID, name source.StringID) (EntityID, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoEntityID, false
	}
	id, ok := sc.NameIndex[name]
	return id, ok
}

// Lookup walks the parent chain. At each level the scope's own names win
// over members of files it imports.
func (t *Table) Lookup(scope ScopeID, name source.StringID) (EntityID, bool) {
	for cur := scope; cur.IsValid(); {
		sc := t.Scopes.Get(cur)
		if sc == nil {
			break
		}
		if id, ok := sc.NameIndex[name]; ok {
			return id, true
		}
		for _, imp := range sc.Imports {
			if id, ok := t.Member(imp, name); ok {
				return id, true
			}
		}
		cur = sc.Parent
	}
	return NoEntityID, false
}

// LookupString is Lookup by spelling.
func (t *Table) LookupString(scope ScopeID, name string) (EntityID, bool) {
	return t.Lookup(scope, t.Strings.Intern(name))
}

// Member finds a name exported by a file scope. Imported files and
// libraries of that file do not cross the import boundary.
func (t *Table) Member(fileScope ScopeID, name source.StringID) (EntityID, bool) {
	id, ok := t.LookupLocal(fileScope, name)
	if !ok {
		return NoEntityID, false
	}
	if ent := t.Entities.Get(id); ent == nil || ent.Flags&(FlagFile|FlagLibrary) != 0 {
		return NoEntityID, false
	}
	return id, true
}

// Exports lists the entities of fileScope visible to importers, in
// declaration order.
func (t *Table) Exports(fileScope ScopeID) []EntityID {
	sc := t.Scopes.Get(fileScope)
	if sc == nil {
		return nil
	}
	out := make([]EntityID, 0, len(sc.Entities))
	for _, id := range sc.Entities {
		if ent := t.Entities.Get(id); ent != nil && ent.Flags&(FlagFile|FlagLibrary) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Name returns the spelling of an entity's name.
func (t *Table) Name(id EntityID) string {
	ent := t.Entities.Get(id)
	if ent == nil {
		return ""
	}
	return t.Strings.MustLookup(ent.Name)
}
