package types

// Equal compares types by identity with two exceptions: metatypes compare
// their instances, and a one-element tuple equals its element.
func (in *Interner) Equal(a, b TypeID) bool {
	if a == b {
		return true
	}
	if a == NoTypeID || b == NoTypeID {
		return false
	}
	a, b = in.unwrapSingle(a), in.unwrapSingle(b)
	if a == b {
		return true
	}
	ta, tb := in.MustLookup(a), in.MustLookup(b)
	if ta.Kind == KindMeta && tb.Kind == KindMeta {
		return in.Equal(ta.Elem, tb.Elem)
	}
	return false
}

// EqualLists compares two type lists position by position.
func (in *Interner) EqualLists(a, b []TypeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !in.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (in *Interner) unwrapSingle(id TypeID) TypeID {
	if info, ok := in.TupleInfo(id); ok && len(info.Elems) == 1 {
		return info.Elems[0]
	}
	return id
}
