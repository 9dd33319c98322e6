package types

// Field is one member of a struct or union. Offset is in bits.
type Field struct {
	Name   string
	Type   TypeID
	Offset uint64
}

// StructInfo describes both structs and unions; unions place every field
// at offset zero.
type StructInfo struct {
	Name     string
	Fields   []Field
	Width    uint64
	Align    uint64
	Complete bool
}

// RegisterStruct allocates a nominal struct type. Fields are attached later
// with SetFields so the body may refer to the type itself.
func (in *Interner) RegisterStruct(name string) TypeID {
	return in.registerAggregate(KindStruct, name)
}

// RegisterUnion allocates a nominal union type.
func (in *Interner) RegisterUnion(name string) TypeID {
	return in.registerAggregate(KindUnion, name)
}

func (in *Interner) registerAggregate(kind Kind, name string) TypeID {
	in.structs = append(in.structs, StructInfo{Name: name})
	return in.internRaw(Type{Kind: kind, Payload: slot(len(in.structs)-1, "struct info")})
}

// StructInfo returns metadata for a struct or union TypeID.
func (in *Interner) StructInfo(id TypeID) (*StructInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || (tt.Kind != KindStruct && tt.Kind != KindUnion) {
		return nil, false
	}
	return &in.structs[tt.Payload], true
}

// SetFields stores the fields and computes the layout: struct fields are
// laid out in order with offsets rounded up to whole bytes, union fields
// overlap.
func (in *Interner) SetFields(id TypeID, fields []Field) {
	info, ok := in.StructInfo(id)
	if !ok {
		return
	}
	isUnion := in.KindOf(id) == KindUnion
	info.Fields = make([]Field, len(fields))
	var offset, width, align uint64 = 0, 0, 8
	for i, f := range fields {
		fw := in.Width(f.Type)
		if a := in.Align(f.Type); a > align {
			align = a
		}
		if isUnion {
			f.Offset = 0
			width = max(width, fw)
		} else {
			offset = roundUp(offset, 8)
			f.Offset = offset
			offset += fw
			width = offset
		}
		info.Fields[i] = f
	}
	info.Width = roundUp(width, 8)
	info.Align = align
	info.Complete = true
}

// FieldIndex finds a field by name.
func (info *StructInfo) FieldIndex(name string) (int, bool) {
	for i, f := range info.Fields {
		if f.Name == name {
			return i, true
		}
	}
	return -1, false
}

func roundUp(v, to uint64) uint64 {
	return (v + to - 1) / to * to
}
