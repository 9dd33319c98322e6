package types

import "testing"

func TestStructLayout(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	st := in.RegisterStruct("S")
	in.SetFields(st, []Field{
		{Name: "flag", Type: b.Bool},
		{Name: "n", Type: b.I32},
		{Name: "next", Type: in.Pointer(st)},
	})
	info, ok := in.StructInfo(st)
	if !ok || !info.Complete {
		t.Fatalf("struct info missing")
	}
	wantOffsets := []uint64{0, 8, 40}
	for i, f := range info.Fields {
		if f.Offset != wantOffsets[i] {
			t.Errorf("field %s offset = %d, want %d", f.Name, f.Offset, wantOffsets[i])
		}
	}
	if in.Width(st) != 104 || in.Align(st) != 64 {
		t.Fatalf("width/align = %d/%d, want 104/64", in.Width(st), in.Align(st))
	}
	if idx, ok := info.FieldIndex("next"); !ok || idx != 2 {
		t.Fatalf("FieldIndex(next) = %d, %v", idx, ok)
	}
}

func TestUnionLayout(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	u := in.RegisterUnion("U")
	in.SetFields(u, []Field{{Name: "i", Type: b.I16}, {Name: "f", Type: b.F64}, {Name: "b", Type: b.Bool}})
	info, _ := in.StructInfo(u)
	for _, f := range info.Fields {
		if f.Offset != 0 {
			t.Fatalf("union field %s has offset %d", f.Name, f.Offset)
		}
	}
	if in.Width(u) != 64 {
		t.Fatalf("union width = %d, want 64", in.Width(u))
	}
}

func TestConcreteTypesHaveWidths(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	e := in.RegisterEnum("Color", b.U8)
	tests := []struct {
		id    TypeID
		width uint64
	}{
		{b.I8, 8}, {b.U16, 16}, {b.F32, 32}, {b.F64, 64}, {b.Bool, 8},
		{b.String, 64}, {e, 8},
		{in.RegisterTuple([]TypeID{b.I8, b.I64}), 72},
	}
	for _, tc := range tests {
		if !in.HasLayout(tc.id) {
			t.Errorf("%s should be concrete", in.String(tc.id))
		}
		if got := in.Width(tc.id); got != tc.width {
			t.Errorf("Width(%s) = %d, want %d", in.String(tc.id), got, tc.width)
		}
	}
	for _, id := range []TypeID{in.Meta(b.I8), in.RegisterPoly("T"), in.RegisterStruct("Incomplete")} {
		if in.HasLayout(id) {
			t.Errorf("%s should have no layout", in.String(id))
		}
	}
}
