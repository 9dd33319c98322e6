package driver

import (
	"fmt"

	"fortio.org/safecast"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/parser"
	"flint/internal/sema"
	"flint/internal/source"
	"flint/internal/symbols"
	"flint/internal/trace"
)

// DefaultSystemLibraryDir is searched last when resolving #library names.
const DefaultSystemLibraryDir = "/usr/lib"

// Options configure a Session.
type Options struct {
	MaxDiagnostics   int
	SystemLibraryDir string
	LibraryDirs      []string
	Tracer           trace.Tracer
	// ParentSpan is the span the session's top-level spans hang under.
	ParentSpan uint64
}

// Unit is one checked file.
type Unit struct {
	Path      string
	Source    *source.File
	File      *ast.File
	Scope     symbols.ScopeID
	Libraries []string
	// Parse and Check hold the diagnostics of the whole session, per phase.
	Parse *diag.Bag
	Check *diag.Bag
}

// Session checks one root file and everything it imports. All files share
// one FileSet, one AST builder and one semantic environment. A Session is
// not safe for concurrent use.
type Session struct {
	opts     Options
	fs       *source.FileSet
	builder  *ast.Builder
	env      *sema.Env
	parseBag *diag.Bag
	checkBag *diag.Bag

	parsed map[source.FileID]*ast.File
	units  map[source.FileID]*Unit
	spans  []uint64
}

// NewSession creates an empty session.
func NewSession(opts Options) *Session {
	if opts.SystemLibraryDir == "" {
		opts.SystemLibraryDir = DefaultSystemLibraryDir
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	b := ast.NewBuilder(ast.Hints{}, nil)
	return &Session{
		opts:     opts,
		fs:       source.NewFileSet(),
		builder:  b,
		env:      sema.NewEnv(b),
		parseBag: diag.NewBag(opts.MaxDiagnostics),
		checkBag: diag.NewBag(opts.MaxDiagnostics),
		parsed:   make(map[source.FileID]*ast.File),
		units:    make(map[source.FileID]*Unit),
	}
}

func (s *Session) FileSet() *source.FileSet { return s.fs }
func (s *Session) Env() *sema.Env           { return s.env }

// Diagnostics returns the parse diagnostics followed by the check diagnostics.
func (s *Session) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, s.parseBag.Len()+s.checkBag.Len())
	out = append(out, s.parseBag.Items()...)
	return append(out, s.checkBag.Items()...)
}

// Open resolves path against the directory of importedFrom (nil for a
// root file) and returns the file, loading it at most once per canonical path.
func (s *Session) Open(path string, importedFrom *source.File) (*source.File, error) {
	return s.fs.Open(path, importedFrom)
}

// CheckFile parses and checks the file at path together with its imports.
func (s *Session) CheckFile(path string) (*Unit, error) {
	f, err := s.Open(path, nil)
	if err != nil {
		return nil, err
	}
	sp := s.begin(trace.ScopeDriver, "check_file")
	defer s.end(sp, f.Path)
	return s.check(f), nil
}

// Import implements sema.Loader.
func (s *Session) Import(path string, from source.FileID) (symbols.ScopeID, string, error) {
	f, err := s.Open(path, s.fs.Get(from))
	if err != nil {
		return symbols.NoScopeID, "", err
	}
	if u, ok := s.units[f.ID]; ok {
		// done or still in progress further up the import chain
		return u.Scope, f.Path, nil
	}
	sp := s.begin(trace.ScopeModule, "import:"+f.Path)
	defer s.end(sp, "")
	return s.check(f).Scope, f.Path, nil
}

// ResolveLibrary implements sema.Loader.
func (s *Session) ResolveLibrary(name string, from source.FileID) (string, bool) {
	rel := ""
	if f := s.fs.Get(from); f != nil {
		rel = f.Path
	}
	return ResolveLibraryPath(name, rel, s.searchDirs())
}

func (s *Session) searchDirs() []string {
	dirs := make([]string, 0, len(s.opts.LibraryDirs)+1)
	dirs = append(dirs, s.opts.LibraryDirs...)
	return append(dirs, s.opts.SystemLibraryDir)
}

// check registers the unit before its statements run so an import cycle
// finds the partially filled scope instead of starting over.
func (s *Session) check(f *source.File) *Unit {
	if u, ok := s.units[f.ID]; ok {
		return u
	}
	file := s.parse(f)
	u := &Unit{
		Path:   f.Path,
		Source: f,
		File:   file,
		Scope:  s.env.FileScope(file),
		Parse:  s.parseBag,
		Check:  s.checkBag,
	}
	s.units[f.ID] = u

	sp := s.begin(trace.ScopePass, "check")
	res := sema.CheckFile(s.env, file, sema.Options{
		Reporter: diag.BagReporter{Bag: s.checkBag},
		Loader:   s,
		Tracer:   s.opts.Tracer,
	})
	s.end(sp, f.Path)
	u.Libraries = res.Libraries
	return u
}

func (s *Session) parse(f *source.File) *ast.File {
	if file, ok := s.parsed[f.ID]; ok {
		return file
	}
	sp := s.begin(trace.ScopePass, "parse")
	defer s.end(sp, f.Path)

	maxErrors, err := safecast.Conv[uint](max(s.opts.MaxDiagnostics, 0))
	if err != nil {
		panic(fmt.Errorf("max diagnostics: %w", err))
	}
	rep := diag.BagReporter{Bag: s.parseBag}
	lx := lexer.New(f, lexer.Options{Reporter: rep})
	file := parser.ParseFile(lx, s.builder, parser.Options{Reporter: rep, MaxErrors: maxErrors})
	s.parsed[f.ID] = file
	return file
}

func (s *Session) begin(scope trace.Scope, name string) *trace.Span {
	parent := s.opts.ParentSpan
	if n := len(s.spans); n > 0 {
		parent = s.spans[n-1]
	}
	sp := trace.Begin(s.opts.Tracer, scope, name, parent)
	s.spans = append(s.spans, sp.ID())
	return sp
}

func (s *Session) end(sp *trace.Span, detail string) {
	s.spans = s.spans[:len(s.spans)-1]
	sp.End(detail)
}
