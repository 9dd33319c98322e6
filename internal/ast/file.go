package ast

import (
	"flint/internal/source"
)

// File is the parse result for one source file. Imports and Libraries list
// the #import / #library statements in source order; they also appear in
// Stmts.
type File struct {
	Path      string
	Source    source.FileID
	Span      source.Span
	Stmts     []NodeID
	Imports   []NodeID
	Libraries []NodeID
}
