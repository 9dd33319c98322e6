package symbols

import (
	"flint/internal/ast"
	"flint/internal/source"
	"flint/internal/types"
)

// Universe is the builtin environment of one compilation run: a root scope
// holding the primitive types and builtin functions. Every file scope
// hangs off Universe.Scope.
type Universe struct {
	Scope ScopeID
	// TypeType is the "type" entity used in "$T: type" parameters.
	TypeType EntityID
	Builtins map[BuiltinID]EntityID
}

type builtinType struct {
	name string
	typ  func(types.Builtins) types.TypeID
}

var builtinTypes = []builtinType{
	{"i8", func(b types.Builtins) types.TypeID { return b.I8 }},
	{"i16", func(b types.Builtins) types.TypeID { return b.I16 }},
	{"i32", func(b types.Builtins) types.TypeID { return b.I32 }},
	{"i64", func(b types.Builtins) types.TypeID { return b.I64 }},
	{"u8", func(b types.Builtins) types.TypeID { return b.U8 }},
	{"u16", func(b types.Builtins) types.TypeID { return b.U16 }},
	{"u32", func(b types.Builtins) types.TypeID { return b.U32 }},
	{"u64", func(b types.Builtins) types.TypeID { return b.U64 }},
	{"f32", func(b types.Builtins) types.TypeID { return b.F32 }},
	{"f64", func(b types.Builtins) types.TypeID { return b.F64 }},
	{"bool", func(b types.Builtins) types.TypeID { return b.Bool }},
	{"void", func(b types.Builtins) types.TypeID { return b.Void }},
	{"any", func(b types.Builtins) types.TypeID { return b.Any }},
}

// NewUniverse populates a fresh builtin scope in t.
func NewUniverse(t *Table, tt *types.Interner) *Universe {
	u := &Universe{
		Scope:    t.NewScope(ScopeUniverse, NoScopeID, ast.NoNodeID, source.Span{}),
		Builtins: make(map[BuiltinID]EntityID, 3),
	}
	b := tt.Builtins()
	for _, bt := range builtinTypes {
		u.declare(t, bt.name, Entity{
			Type:  tt.Meta(bt.typ(b)),
			Flags: FlagBuiltin | FlagType | FlagCompileTime,
		})
	}
	u.TypeType = u.declare(t, "type", Entity{
		Type:  tt.Meta(b.Any),
		Flags: FlagBuiltin | FlagType | FlagCompileTime,
	})

	single := func(id types.TypeID) types.TypeID { return tt.RegisterTuple([]types.TypeID{id}) }
	sizeFn := tt.RegisterFn([]types.TypeID{b.Any}, single(b.U64), 0)
	fns := []struct {
		id  BuiltinID
		typ types.TypeID
	}{
		{BuiltinSizeof, sizeFn},
		{BuiltinAlignof, sizeFn},
		{BuiltinAssert, tt.RegisterFn([]types.TypeID{b.Bool}, tt.RegisterTuple(nil), 0)},
	}
	for _, fn := range fns {
		u.Builtins[fn.id] = u.declare(t, fn.id.String(), Entity{
			Type:    fn.typ,
			Flags:   FlagBuiltin | FlagCompileTime | FlagDiscardable,
			Builtin: fn.id,
		})
	}
	return u
}

func (u *Universe) declare(t *Table, name string, ent Entity) EntityID {
	ent.Name = t.Strings.Intern(name)
	id, _ := t.Declare(u.Scope, ent)
	return id
}
