package types

// Width returns the size of a concrete type in bits. Polymorphic
// placeholders, metatypes, files and incomplete aggregates have none.
func (in *Interner) Width(id TypeID) uint64 {
	w, _ := in.layoutOf(id)
	return w
}

// Align returns the alignment of a concrete type in bits.
func (in *Interner) Align(id TypeID) uint64 {
	_, a := in.layoutOf(id)
	return a
}

// HasLayout reports whether id is concrete.
func (in *Interner) HasLayout(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindPoly, KindMeta, KindFile:
		return false
	case KindStruct, KindUnion:
		return in.structs[tt.Payload].Complete
	}
	return true
}

func (in *Interner) layoutOf(id TypeID) (width, align uint64) {
	tt, ok := in.Lookup(id)
	if !ok {
		return 0, 0
	}
	switch tt.Kind {
	case KindVoid:
		return 0, 8
	case KindInt, KindFloat:
		return uint64(tt.Width), uint64(tt.Width)
	case KindBool:
		return 8, 8
	case KindPointer, KindFn, KindAny, KindCVarArgsAny:
		return 64, 64
	case KindStruct, KindUnion:
		info := in.structs[tt.Payload]
		return info.Width, info.Align
	case KindEnum:
		return in.layoutOf(in.enums[tt.Payload].Backing)
	case KindTuple:
		var off, al uint64 = 0, 8
		for _, e := range in.tuples[tt.Payload].Elems {
			w, a := in.layoutOf(e)
			off = roundUp(off, 8) + w
			al = max(al, a)
		}
		return roundUp(off, 8), al
	}
	return 0, 0
}
