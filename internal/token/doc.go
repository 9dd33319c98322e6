// Package token defines lexical token kinds for the Flint front end.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - Tokens compare by Kind only; Lit carries the decoded literal payload.
//   - Newline is a real token: it terminates statements.
//   - Directives (#import, #foreign, ...) have their own kinds; an unknown
//     '#name' lexes as Ident and is rejected by the parser.
//   - Builtin type names (i64, f32, bool, ...) are identifiers resolved by sema.
package token
