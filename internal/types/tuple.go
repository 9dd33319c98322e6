package types

import "slices"

// TupleInfo stores the element types for a tuple type.
type TupleInfo struct {
	Elems []TypeID
}

// RegisterTuple creates or finds the tuple with the given elements.
func (in *Interner) RegisterTuple(elems []TypeID) TypeID {
	key := listKey("tuple", elems)
	if id, ok := in.lists[key]; ok {
		return id
	}
	in.tuples = append(in.tuples, TupleInfo{Elems: slices.Clone(elems)})
	id := in.internRaw(Type{Kind: KindTuple, Payload: slot(len(in.tuples)-1, "tuple info")})
	in.lists[key] = id
	return id
}

// TupleInfo returns the element types for a tuple TypeID.
func (in *Interner) TupleInfo(id TypeID) (*TupleInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTuple {
		return nil, false
	}
	return &in.tuples[tt.Payload], true
}

// Elems returns the tuple elements, or a single-element slice for any
// other type.
func (in *Interner) Elems(id TypeID) []TypeID {
	if info, ok := in.TupleInfo(id); ok {
		return info.Elems
	}
	if id == NoTypeID {
		return nil
	}
	return []TypeID{id}
}
