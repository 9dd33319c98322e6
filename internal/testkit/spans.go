package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"flint/internal/ast"
	"flint/internal/source"
)

// CheckSpanInvariants walks a parsed file and verifies its spans:
// 1) file.Span points at sf and ends within its content
// 2) every node span is non-empty (Invalid nodes excepted) and in sf
// 3) every node span lies inside its parent's span, statements inside file.Span
func CheckSpanInvariants(b *ast.Builder, file *ast.File, sf *source.File) error {
	if b == nil || file == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	if file.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", file.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if file.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", file.Span.End, lenContent)
	}
	for _, id := range file.Stmts {
		if err := checkNode(b, id, file.Span, sf.ID); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(b *ast.Builder, id ast.NodeID, parent source.Span, fileID source.FileID) error {
	n := b.Get(id)
	if n == nil {
		return fmt.Errorf("nil node for id=%d", id)
	}
	sp := n.Span
	if sp.File != fileID {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", n.Kind, sp.File, fileID)
	}
	if sp.Empty() && n.Kind != ast.KindInvalid {
		return fmt.Errorf("empty %s span: %v", n.Kind, sp)
	}
	if !parent.Contains(sp) {
		return fmt.Errorf("%s span %v is outside its parent %v", n.Kind, sp, parent)
	}
	for _, c := range b.Children(id) {
		if err := checkNode(b, c, sp, fileID); err != nil {
			return err
		}
	}
	return nil
}
