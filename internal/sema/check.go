package sema

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/source"
	"flint/internal/symbols"
	"flint/internal/trace"
	"flint/internal/types"
)

// Loader resolves the cross-file dependencies of a file being checked.
type Loader interface {
	// Import returns the file scope of the file at path, relative to the
	// importing file, together with its canonical path. A file that is
	// still being checked returns its partially filled scope.
	Import(path string, from source.FileID) (symbols.ScopeID, string, error)
	// ResolveLibrary maps a #library name to a path on disk.
	ResolveLibrary(name string, from source.FileID) (string, bool)
}

// Env is the state shared by every file checked in one session.
type Env struct {
	Builder  *ast.Builder
	Types    *types.Interner
	Symbols  *symbols.Table
	Universe *symbols.Universe
	Info     *Info

	fileScopes map[source.FileID]symbols.ScopeID
}

// NewEnv builds a fresh environment around b. Names are interned in b's
// string table so that parsed identifiers and declared entities agree.
func NewEnv(b *ast.Builder) *Env {
	tt := types.NewInterner()
	syms := symbols.NewTable(symbols.Hints{}, b.Strings)
	return &Env{
		Builder:    b,
		Types:      tt,
		Symbols:    syms,
		Universe:   symbols.NewUniverse(syms, tt),
		Info:       NewInfo(),
		fileScopes: make(map[source.FileID]symbols.ScopeID),
	}
}

// FileScope returns the scope of f, creating it on first use.
func (e *Env) FileScope(f *ast.File) symbols.ScopeID {
	if id, ok := e.fileScopes[f.Source]; ok {
		return id
	}
	id := e.Symbols.NewScope(symbols.ScopeFile, e.Universe.Scope, ast.NoNodeID, f.Span)
	e.fileScopes[f.Source] = id
	return id
}

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
	Loader   Loader
	Tracer   trace.Tracer
}

// Result is what a checked file contributes to its importers and the code
// generator.
type Result struct {
	Scope     symbols.ScopeID
	Libraries []string
}

// CheckFile checks every statement of file in order.
func CheckFile(env *Env, file *ast.File, opts Options) Result {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	c := &Checker{
		env:   env,
		b:     env.Builder,
		tt:    env.Types,
		syms:  env.Symbols,
		info:  env.Info,
		bt:    env.Types.Builtins(),
		opts:  opts,
		file:  file,
		scope: env.FileScope(file),
	}
	depth := c.push(frame{kind: frameFile, scope: c.scope})
	c.stmts(file.Stmts)
	c.pop(depth)
	if len(c.frames) != 0 || len(c.sites) != 0 {
		panic("sema: checker state not unwound")
	}
	return Result{Scope: c.scope, Libraries: c.libraries}
}

// Checker holds the per-file walk state.
type Checker struct {
	env  *Env
	b    *ast.Builder
	tt   *types.Interner
	syms *symbols.Table
	info *Info
	bt   types.Builtins
	opts Options

	file  *ast.File
	scope symbols.ScopeID // file scope

	frames []frame
	// sites are the call nodes of the specializations being checked,
	// outermost first.
	sites []ast.NodeID

	loops, switches int
	libraries       []string
}

func (c *Checker) name(id ast.NodeID) string { return c.b.Name(id) }

func (c *Checker) span(id ast.NodeID) source.Span { return c.b.Span(id) }

func (c *Checker) str(id source.StringID) string {
	return c.b.Strings.MustLookup(id)
}

func (c *Checker) typeString(id types.TypeID) string { return c.tt.String(id) }
