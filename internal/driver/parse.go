package driver

import (
	"fortio.org/safecast"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/parser"
	"flint/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	AST     *ast.File
	Bag     *diag.Bag
}

// Parse parses a single file without following its imports.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	var maxErrors uint
	maxErrors, err = safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	opts := parser.Options{
		Reporter:  rep,
		MaxErrors: maxErrors,
	}

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		AST:     parser.ParseFile(lx, builder, opts),
		Bag:     bag,
	}, nil
}
