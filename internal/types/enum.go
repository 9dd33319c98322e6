package types

// EnumCase is a named constant of an enum.
type EnumCase struct {
	Name  string
	Value int64
}

// EnumInfo stores the backing integer type and the cases.
type EnumInfo struct {
	Name    string
	Backing TypeID
	Cases   []EnumCase
}

// RegisterEnum allocates a nominal enum type.
func (in *Interner) RegisterEnum(name string, backing TypeID) TypeID {
	in.enums = append(in.enums, EnumInfo{Name: name, Backing: backing})
	return in.internRaw(Type{Kind: KindEnum, Payload: slot(len(in.enums)-1, "enum info")})
}

// EnumInfo returns metadata for an enum TypeID.
func (in *Interner) EnumInfo(id TypeID) (*EnumInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindEnum {
		return nil, false
	}
	return &in.enums[tt.Payload], true
}

// CaseIndex finds a case by name.
func (info *EnumInfo) CaseIndex(name string) (int, bool) {
	for i, c := range info.Cases {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}
