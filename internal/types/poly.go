package types

// RegisterPoly allocates a fresh polymorphic placeholder named after its
// "$name" binder.
func (in *Interner) RegisterPoly(name string) TypeID {
	in.polys = append(in.polys, name)
	return in.internRaw(Type{Kind: KindPoly, Payload: slot(len(in.polys)-1, "poly")})
}

// PolyName returns the binder name of a polymorphic placeholder.
func (in *Interner) PolyName(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindPoly {
		return ""
	}
	return in.polys[tt.Payload]
}

// FileInfo links a file type to the scope holding the file's members.
// Scope is a symbols.ScopeID kept as a raw number to avoid an import cycle.
type FileInfo struct {
	Path  string
	Scope uint32
}

// RegisterFile returns the type of an imported file value.
func (in *Interner) RegisterFile(path string, scope uint32) TypeID {
	in.files = append(in.files, FileInfo{Path: path, Scope: scope})
	return in.internRaw(Type{Kind: KindFile, Payload: slot(len(in.files)-1, "file info")})
}

// FileInfo returns metadata for a file TypeID.
func (in *Interner) FileInfo(id TypeID) (*FileInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFile {
		return nil, false
	}
	return &in.files[tt.Payload], true
}
