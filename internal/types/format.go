package types

import (
	"fmt"
	"strings"
)

// String renders a type the way it is written in source.
func (in *Interner) String(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch tt.Kind {
	case KindVoid:
		return "void"
	case KindAny:
		return "any"
	case KindCVarArgsAny:
		return "#cvargs any"
	case KindBool:
		return "bool"
	case KindInt:
		if tt.Signed {
			return fmt.Sprintf("i%d", tt.Width)
		}
		return fmt.Sprintf("u%d", tt.Width)
	case KindFloat:
		return fmt.Sprintf("f%d", tt.Width)
	case KindPointer:
		return "*" + in.String(tt.Elem)
	case KindMeta:
		return "type " + in.String(tt.Elem)
	case KindPoly:
		return "$" + in.polys[tt.Payload]
	case KindStruct, KindUnion:
		info := in.structs[tt.Payload]
		if info.Name != "" {
			return info.Name
		}
		return tt.Kind.String() + " {...}"
	case KindEnum:
		if name := in.enums[tt.Payload].Name; name != "" {
			return name
		}
		return "enum {...}"
	case KindFile:
		return fmt.Sprintf("file %q", in.files[tt.Payload].Path)
	case KindTuple:
		return "(" + in.list(in.tuples[tt.Payload].Elems) + ")"
	case KindFn:
		info := in.fns[tt.Payload]
		params := in.list(info.Params)
		if info.Flags&FnVariadic != 0 && len(info.Params) > 0 {
			last := info.Params[len(info.Params)-1]
			prefix := in.list(info.Params[:len(info.Params)-1])
			if prefix != "" {
				prefix += ", "
			}
			params = prefix + ".." + in.String(last)
			if info.Flags&FnCVariadic != 0 {
				params = prefix + "#cvargs ..any"
			}
		}
		s := "fn (" + params + ")"
		switch res := in.Elems(info.Result); len(res) {
		case 0:
			return s
		case 1:
			return s + " -> " + in.String(res[0])
		default:
			return s + " -> (" + in.list(res) + ")"
		}
	}
	return tt.Kind.String()
}

func (in *Interner) list(ids []TypeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = in.String(id)
	}
	return strings.Join(parts, ", ")
}
