// Package diag defines the diagnostic model shared by the lexer, parser and
// checker.
//
// A Diagnostic is a (severity, code, message, primary span) record with
// optional notes. Every diagnostic carries the exact span of the offending
// node; notes add context such as "previous declaration here" or the
// "called from" trail of a generic specialization.
//
// Phases emit through a Reporter and never return Go errors for user
// mistakes. BagReporter collects into a Bag, which the driver keeps per phase
// (parse, then check) and sorts before rendering.
//
// Package diag does no formatting beyond the stable one-line form used by
// tests and the CLI short output; pretty rendering lives in internal/diagfmt.
package diag
