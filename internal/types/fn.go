package types

import (
	"slices"
	"strconv"
	"strings"
)

// FnFlags describe function signatures.
type FnFlags uint8

const (
	// FnVariadic: the last parameter absorbs trailing arguments.
	FnVariadic FnFlags = 1 << iota
	// FnCVariadic: trailing arguments follow C varargs conventions.
	FnCVariadic
	// FnPolymorphic: the function has compile-time parameters and is only
	// ever lowered through its specializations.
	FnPolymorphic
)

// FnInfo stores metadata for function types.
type FnInfo struct {
	Params []TypeID
	Result TypeID // always a tuple
	Flags  FnFlags
}

// RegisterFn creates or finds a function type. Polymorphic signatures are
// never interned: each one is a distinct type.
func (in *Interner) RegisterFn(params []TypeID, result TypeID, flags FnFlags) TypeID {
	if result == NoTypeID {
		result = in.RegisterTuple(nil)
	}
	var key string
	if flags&FnPolymorphic == 0 {
		key = listKey("fn", params, result, uint64(flags))
		if id, ok := in.lists[key]; ok {
			return id
		}
	}
	in.fns = append(in.fns, FnInfo{Params: slices.Clone(params), Result: result, Flags: flags})
	id := in.internRaw(Type{Kind: KindFn, Payload: slot(len(in.fns)-1, "fn info")})
	if key != "" {
		in.lists[key] = id
	}
	return id
}

// FnInfo retrieves function type metadata by TypeID.
func (in *Interner) FnInfo(id TypeID) (*FnInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFn {
		return nil, false
	}
	return &in.fns[tt.Payload], true
}

// Results returns the result types of a function type.
func (in *Interner) Results(fn TypeID) []TypeID {
	info, ok := in.FnInfo(fn)
	if !ok {
		return nil
	}
	return in.Elems(info.Result)
}

func listKey(tag string, elems []TypeID, extra ...any) string {
	var sb strings.Builder
	sb.WriteString(tag)
	for _, e := range elems {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatUint(uint64(e), 10))
	}
	for _, x := range extra {
		sb.WriteByte('|')
		switch v := x.(type) {
		case TypeID:
			sb.WriteString(strconv.FormatUint(uint64(v), 10))
		case uint64:
			sb.WriteString(strconv.FormatUint(v, 10))
		}
	}
	return sb.String()
}
