package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types.
type Builtins struct {
	Void        TypeID
	Any         TypeID
	CVarArgsAny TypeID
	Bool        TypeID
	I8          TypeID
	I16         TypeID
	I32         TypeID
	I64         TypeID
	U8          TypeID
	U16         TypeID
	U32         TypeID
	U64         TypeID
	F32         TypeID
	F64         TypeID
	// String is the type of string literals, *u8.
	String TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Functions and tuples are looked up by their element lists; structs,
// unions, enums, polymorphic binders and files get a fresh identity on
// every registration.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	lists    map[string]TypeID
	builtins Builtins
	fns      []FnInfo
	tuples   []TupleInfo
	structs  []StructInfo
	enums    []EnumInfo
	polys    []string
	files    []FileInfo
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
		lists: make(map[string]TypeID, 32),
	}
	in.internRaw(Type{Kind: KindInvalid}) // reserve 0
	in.fns = append(in.fns, FnInfo{})
	in.tuples = append(in.tuples, TupleInfo{})
	in.structs = append(in.structs, StructInfo{})
	in.enums = append(in.enums, EnumInfo{})
	in.polys = append(in.polys, "")
	in.files = append(in.files, FileInfo{})

	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Any = in.Intern(Type{Kind: KindAny})
	in.builtins.CVarArgsAny = in.Intern(Type{Kind: KindCVarArgsAny})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.I8 = in.Intern(MakeInt(Width8, true))
	in.builtins.I16 = in.Intern(MakeInt(Width16, true))
	in.builtins.I32 = in.Intern(MakeInt(Width32, true))
	in.builtins.I64 = in.Intern(MakeInt(Width64, true))
	in.builtins.U8 = in.Intern(MakeInt(Width8, false))
	in.builtins.U16 = in.Intern(MakeInt(Width16, false))
	in.builtins.U32 = in.Intern(MakeInt(Width32, false))
	in.builtins.U64 = in.Intern(MakeInt(Width64, false))
	in.builtins.F32 = in.Intern(MakeFloat(Width32))
	in.builtins.F64 = in.Intern(MakeFloat(Width64))
	in.builtins.String = in.Intern(MakePointer(in.builtins.U8))
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if id, ok := in.index[typeKey(t)]; ok {
		return id
	}
	return in.internRaw(t)
}

// Pointer returns the interned pointer to elem.
func (in *Interner) Pointer(elem TypeID) TypeID {
	if elem == NoTypeID {
		return NoTypeID
	}
	return in.Intern(MakePointer(elem))
}

// Meta returns the interned metatype of elem.
func (in *Interner) Meta(elem TypeID) TypeID {
	if elem == NoTypeID {
		return NoTypeID
	}
	return in.Intern(MakeMeta(elem))
}

func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// KindOf returns KindInvalid for NoTypeID.
func (in *Interner) KindOf(id TypeID) Kind {
	tt, _ := in.Lookup(id)
	return tt.Kind
}

// Len reports the number of registered types, the invalid slot excluded.
func (in *Interner) Len() int {
	return len(in.types) - 1
}

type typeKey Type

func slot(n int, what string) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("%s overflow: %w", what, err))
	}
	return v
}
