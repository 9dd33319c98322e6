package sema

import (
	"slices"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
)

// importStmt loads the imported file right away. With an alias its members
// are reached through the alias; otherwise they join the file scope.
func (c *Checker) importStmt(id ast.NodeID, x *ast.Import) {
	if c.opts.Loader == nil {
		c.errorf(diag.SemaImportFailed, c.span(id), "cannot import %q: no loader configured", x.Path)
		return
	}
	scope, path, err := c.opts.Loader.Import(x.Path, c.file.Source)
	if err != nil {
		c.errorf(diag.SemaImportFailed, c.span(id), "cannot import %q: %v", x.Path, err)
		return
	}
	if x.Alias.IsValid() {
		t := c.tt.RegisterFile(path, uint32(scope))
		c.info.Types[id] = t
		c.declare(c.cur(), x.Alias, symbols.Entity{
			Type:  t,
			Flags: symbols.FlagFile | symbols.FlagCompileTime,
			Decl:  id,
			Path:  path,
		})
		return
	}
	if scope == c.scope {
		return
	}
	s := c.syms.Scope(c.scope)
	if !slices.Contains(s.Imports, scope) {
		s.Imports = append(s.Imports, scope)
	}
}

// libraryStmt records a library to link. An alias makes it nameable from
// #foreign groups.
func (c *Checker) libraryStmt(id ast.NodeID, x *ast.Library) {
	path := x.Path
	if c.opts.Loader != nil {
		resolved, ok := c.opts.Loader.ResolveLibrary(x.Path, c.file.Source)
		if !ok {
			c.errorf(diag.SemaLibraryNotFound, c.span(id), "library %q not found", x.Path)
		} else {
			path = resolved
		}
	}
	if !slices.Contains(c.libraries, path) {
		c.libraries = append(c.libraries, path)
	}
	if x.Alias.IsValid() {
		c.declare(c.cur(), x.Alias, symbols.Entity{
			Flags: symbols.FlagLibrary | symbols.FlagCompileTime,
			Decl:  id,
			Path:  path,
		})
	}
}
