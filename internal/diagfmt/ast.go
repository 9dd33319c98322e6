package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flint/internal/ast"
	"flint/internal/source"
)

// ASTOpts configures AST dumps.
type ASTOpts struct {
	// Annotate returns extra text for a node, e.g. its checked type; "" adds nothing.
	Annotate func(ast.NodeID) string
}

type ASTNodeOutput struct {
	Kind       string          `json:"kind"`
	Detail     string          `json:"detail,omitempty"`
	Span       source.Span     `json:"span"`
	Annotation string          `json:"annotation,omitempty"`
	Children   []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty prints file as an indented tree, one node per line.
func FormatASTPretty(w io.Writer, b *ast.Builder, file *ast.File, fs *source.FileSet, opts ASTOpts) error {
	if file == nil {
		return fmt.Errorf("file not found")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "File %s (span: %s)\n", displayPath(fs, file.Path, PathModeAuto), formatSpan(file.Span, fs))
	for i, id := range file.Stmts {
		writeNode(&sb, b, id, fs, opts, "", i == len(file.Stmts)-1)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeNode(sb *strings.Builder, b *ast.Builder, id ast.NodeID, fs *source.FileSet, opts ASTOpts, prefix string, last bool) {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}
	sb.WriteString(prefix)
	sb.WriteString(branch)
	sb.WriteString(nodeLabel(b, id, opts))
	fmt.Fprintf(sb, " (span: %s)\n", formatSpan(b.Span(id), fs))
	children := b.Children(id)
	for i, c := range children {
		writeNode(sb, b, c, fs, opts, prefix+next, i == len(children)-1)
	}
}

// FormatASTJSON writes file as a nested JSON tree.
func FormatASTJSON(w io.Writer, b *ast.Builder, file *ast.File, opts ASTOpts) error {
	if file == nil {
		return fmt.Errorf("file not found")
	}
	out := ASTNodeOutput{Kind: "File", Detail: file.Path, Span: file.Span}
	for _, id := range file.Stmts {
		out.Children = append(out.Children, nodeJSON(b, id, opts))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func nodeJSON(b *ast.Builder, id ast.NodeID, opts ASTOpts) ASTNodeOutput {
	out := ASTNodeOutput{
		Kind:   b.Kind(id).String(),
		Detail: nodeDetail(b, id),
		Span:   b.Span(id),
	}
	if opts.Annotate != nil {
		out.Annotation = opts.Annotate(id)
	}
	for _, c := range b.Children(id) {
		out.Children = append(out.Children, nodeJSON(b, c, opts))
	}
	return out
}

func nodeLabel(b *ast.Builder, id ast.NodeID, opts ASTOpts) string {
	label := b.Kind(id).String()
	if d := nodeDetail(b, id); d != "" {
		label += " " + d
	}
	if opts.Annotate != nil {
		if a := opts.Annotate(id); a != "" {
			label += " : " + a
		}
	}
	return label
}

// nodeDetail is the part of a node that is not a child node.
func nodeDetail(b *ast.Builder, id ast.NodeID) string {
	n := b.Get(id)
	if n == nil {
		return ""
	}
	switch x := n.Data.(type) {
	case *ast.Invalid:
		return strconv.Quote(x.Text)
	case *ast.Ident:
		if x.Poly {
			return "$" + b.Name(id)
		}
		return b.Name(id)
	case *ast.Lit:
		return x.Text
	case *ast.Prefix:
		return x.Op.String()
	case *ast.Infix:
		return x.Op.String()
	case *ast.Assign:
		return x.Op.String()
	case *ast.Variadic:
		if x.CVargs {
			return "#cvargs"
		}
	case *ast.Decl:
		var parts []string
		if x.CompileTime {
			parts = append(parts, "const")
		}
		if x.LinkName != "" {
			parts = append(parts, "link="+strconv.Quote(x.LinkName))
		}
		if x.Discardable {
			parts = append(parts, "discardable")
		}
		return strings.Join(parts, " ")
	case *ast.DeclGroup:
		if x.CallConv != "" {
			return x.Directive.String() + " " + strconv.Quote(x.CallConv)
		}
		return x.Directive.String()
	case *ast.Branch:
		return x.Tok.String()
	case *ast.Import:
		return strconv.Quote(x.Path)
	case *ast.Library:
		return strconv.Quote(x.Path)
	}
	return ""
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && fs.Get(span.File) != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
