package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type. It doubles as the invalid type:
// every failed check yields NoTypeID and callers keep going.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindAny
	KindCVarArgsAny
	KindInt
	KindFloat
	KindBool
	KindFn
	KindStruct
	KindUnion
	KindEnum
	KindTuple
	KindPointer
	KindPoly
	KindMeta
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindAny:
		return "any"
	case KindCVarArgsAny:
		return "cvarargs"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindFn:
		return "fn"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindTuple:
		return "tuple"
	case KindPointer:
		return "pointer"
	case KindPoly:
		return "polymorphic"
	case KindMeta:
		return "type"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width is a bit width of a numeric primitive.
type Width uint8

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Type is a compact descriptor for any supported type. Aggregates keep their
// details in side tables addressed by Payload.
type Type struct {
	Kind    Kind
	Elem    TypeID // pointer pointee, metatype instance
	Width   Width  // numeric primitives
	Signed  bool   // integers
	Payload uint32
}

// MakeInt describes an integer of the given width and signedness.
func MakeInt(width Width, signed bool) Type {
	return Type{Kind: KindInt, Width: width, Signed: signed}
}

// MakeFloat describes a floating-point type.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, Width: width}
}

// MakePointer describes a pointer to elem.
func MakePointer(elem TypeID) Type {
	return Type{Kind: KindPointer, Elem: elem}
}

// MakeMeta describes the type of the type value elem.
func MakeMeta(elem TypeID) Type {
	return Type{Kind: KindMeta, Elem: elem}
}
