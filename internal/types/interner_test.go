package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Void == NoTypeID || b.Bool == NoTypeID || b.F64 == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	i64, _ := in.Lookup(b.I64)
	if i64.Kind != KindInt || !i64.Signed || i64.Width != Width64 {
		t.Fatalf("unexpected i64 descriptor %+v", i64)
	}
	if got := in.String(b.String); got != "*u8" {
		t.Fatalf("string literal type = %s, want *u8", got)
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if in.Pointer(b.I32) != in.Pointer(b.I32) {
		t.Fatalf("pointer types should be deduplicated")
	}
	if in.Intern(MakeInt(Width16, false)) != b.U16 {
		t.Fatalf("u16 should resolve to the builtin")
	}
	tup1 := in.RegisterTuple([]TypeID{b.I64, b.Bool})
	tup2 := in.RegisterTuple([]TypeID{b.I64, b.Bool})
	if tup1 != tup2 {
		t.Fatalf("tuples should be deduplicated")
	}
	fn1 := in.RegisterFn([]TypeID{b.I64}, tup1, 0)
	fn2 := in.RegisterFn([]TypeID{b.I64}, tup2, 0)
	if fn1 != fn2 {
		t.Fatalf("function types should be deduplicated")
	}
	if fn3 := in.RegisterFn([]TypeID{b.I64}, tup1, FnVariadic); fn3 == fn1 {
		t.Fatalf("flags must affect identity")
	}
}

func TestPolymorphicFunctionsAreNotInterned(t *testing.T) {
	in := NewInterner()
	p := in.RegisterPoly("T")
	res := in.RegisterTuple([]TypeID{p})
	a := in.RegisterFn([]TypeID{p}, res, FnPolymorphic)
	b := in.RegisterFn([]TypeID{p}, res, FnPolymorphic)
	if a == b {
		t.Fatalf("polymorphic function types must be distinct")
	}
	if !in.IsPolymorphic(a) || !in.IsPolymorphic(in.Pointer(p)) {
		t.Fatalf("expected polymorphic classification")
	}
}

func TestNominalAggregatesAreDistinct(t *testing.T) {
	in := NewInterner()
	if in.RegisterStruct("P") == in.RegisterStruct("P") {
		t.Fatalf("each struct registration must be a new type")
	}
	if in.RegisterEnum("E", in.Builtins().U8) == in.RegisterEnum("E", in.Builtins().U8) {
		t.Fatalf("each enum registration must be a new type")
	}
}

func TestEqualSpecialCases(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	single := in.RegisterTuple([]TypeID{b.F64})
	if !in.Equal(single, b.F64) || !in.Equal(b.F64, single) {
		t.Fatalf("1-tuple should equal its element")
	}
	if in.Equal(in.RegisterTuple([]TypeID{b.F64, b.F64}), b.F64) {
		t.Fatalf("2-tuple must not equal its element")
	}
	if !in.Equal(in.Meta(b.F64), in.Meta(single)) {
		t.Fatalf("metatypes should compare instances")
	}
	if in.Equal(in.Meta(b.I8), b.I8) {
		t.Fatalf("metatype must not equal its instance")
	}
	if in.Equal(NoTypeID, b.I8) || !in.Equal(NoTypeID, NoTypeID) {
		t.Fatalf("unexpected equality for invalid types")
	}
	if !in.EqualLists([]TypeID{b.I8, single}, []TypeID{b.I8, b.F64}) {
		t.Fatalf("lists should compare positionally")
	}
}

func TestString(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	tests := []struct {
		id   TypeID
		want string
	}{
		{b.U32, "u32"},
		{in.Pointer(in.Pointer(b.F32)), "**f32"},
		{in.Meta(b.Bool), "type bool"},
		{in.RegisterFn([]TypeID{b.I64, b.F64}, in.RegisterTuple([]TypeID{b.I64}), 0), "fn (i64, f64) -> i64"},
		{in.RegisterFn([]TypeID{b.String, b.CVarArgsAny}, in.RegisterTuple([]TypeID{b.I32}), FnVariadic|FnCVariadic), "fn (*u8, #cvargs ..any) -> i32"},
		{in.RegisterFn(nil, in.RegisterTuple([]TypeID{b.I64, b.Bool}), 0), "fn () -> (i64, bool)"},
		{in.RegisterPoly("T"), "$T"},
		{NoTypeID, "<invalid>"},
	}
	for _, tc := range tests {
		if got := in.String(tc.id); got != tc.want {
			t.Errorf("String = %q, want %q", got, tc.want)
		}
	}
}
