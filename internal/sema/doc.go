// Package sema type-checks parsed Flint files.
//
// The checker walks each file once. It resolves names through the scope
// tree in package symbols, assigns a type from package types to every
// expression and records its findings in the side tables of Info: node
// types, resolved entities, implicit conversions, field bindings, call
// resolutions, branch targets and scopes. The AST itself is never rewritten
// except for the private copies made when a polymorphic function is
// specialized.
//
// Checking never stops at the first error. A failed check yields
// types.NoTypeID and every consumer treats that as "already reported".
package sema
