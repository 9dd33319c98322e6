package types

func (in *Interner) IsInteger(id TypeID) bool { return in.KindOf(id) == KindInt }
func (in *Interner) IsFloat(id TypeID) bool   { return in.KindOf(id) == KindFloat }
func (in *Interner) IsBool(id TypeID) bool    { return in.KindOf(id) == KindBool }

// IsNumeric reports integer or floating-point types.
func (in *Interner) IsNumeric(id TypeID) bool {
	k := in.KindOf(id)
	return k == KindInt || k == KindFloat
}

// IsSigned reports signed integers.
func (in *Interner) IsSigned(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindInt && tt.Signed
}

// Elem returns the pointee of a pointer or the instance of a metatype.
func (in *Interner) Elem(id TypeID) (TypeID, bool) {
	tt, ok := in.Lookup(id)
	if !ok || (tt.Kind != KindPointer && tt.Kind != KindMeta) {
		return NoTypeID, false
	}
	return tt.Elem, true
}

// IsMeta reports whether id is the type of a type value.
func (in *Interner) IsMeta(id TypeID) bool { return in.KindOf(id) == KindMeta }

// IsPolymorphic reports placeholders and anything built from them.
func (in *Interner) IsPolymorphic(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindPoly:
		return true
	case KindPointer, KindMeta:
		return in.IsPolymorphic(tt.Elem)
	case KindFn:
		return in.fns[tt.Payload].Flags&FnPolymorphic != 0
	case KindTuple:
		for _, e := range in.tuples[tt.Payload].Elems {
			if in.IsPolymorphic(e) {
				return true
			}
		}
	}
	return false
}

// Callable returns the function type behind a function or a pointer to one.
func (in *Interner) Callable(id TypeID) (TypeID, bool) {
	tt, ok := in.Lookup(id)
	if !ok {
		return NoTypeID, false
	}
	if tt.Kind == KindPointer {
		id = tt.Elem
		tt, ok = in.Lookup(id)
	}
	if !ok || tt.Kind != KindFn {
		return NoTypeID, false
	}
	return id, true
}
