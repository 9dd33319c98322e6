package sema

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/format"
	"flint/internal/source"
)

// diagnose emits one diagnostic. While a specialization is being checked
// every diagnostic gets a "called from" note per active call site,
// innermost first.
func (c *Checker) diagnose(sev diag.Severity, code diag.Code, sp source.Span, msg string, notes ...diag.Note) {
	rb := diag.NewReportBuilder(c.opts.Reporter, sev, code, sp, msg)
	for _, n := range notes {
		rb.WithNote(n.Span, n.Msg)
	}
	for i := len(c.sites) - 1; i >= 0; i-- {
		site := c.sites[i]
		rb.WithNote(c.span(site), "called from: "+format.Node(c.b, site))
	}
	rb.Emit()
}

func (c *Checker) errorf(code diag.Code, sp source.Span, f string, args ...any) {
	c.diagnose(diag.SevError, code, sp, fmt.Sprintf(f, args...))
}

func (c *Checker) warnf(code diag.Code, sp source.Span, f string, args ...any) {
	c.diagnose(diag.SevWarning, code, sp, fmt.Sprintf(f, args...))
}

func note(sp source.Span, msg string) diag.Note {
	return diag.Note{Span: sp, Msg: msg}
}
