package sema

import (
	"fmt"

	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/symbols"
	"flint/internal/token"
	"flint/internal/types"
)

func (c *Checker) stmts(list []ast.NodeID) {
	for _, id := range list {
		c.stmt(id)
	}
}

func (c *Checker) stmt(id ast.NodeID) {
	n := c.b.Get(id)
	if n == nil {
		return
	}
	switch x := n.Data.(type) {
	case *ast.Invalid:
	case *ast.Decl:
		c.decl(id, x, declMods{})
	case *ast.DeclGroup:
		c.declGroup(id, x, declMods{})
	case *ast.Assign:
		c.assign(id, x)
	case *ast.Block:
		c.block(id, x)
	case *ast.If:
		c.ifStmt(id, x)
	case *ast.For:
		c.forStmt(id, x)
	case *ast.Switch:
		c.switchStmt(id, x)
	case *ast.Return:
		c.returnStmt(id, x)
	case *ast.Branch:
		c.branch(id, x)
	case *ast.Import:
		c.importStmt(id, x)
	case *ast.Library:
		c.libraryStmt(id, x)
	case *ast.Case:
		c.errorf(diag.SemaError, n.Span, "case outside of switch")
	default:
		c.exprStmt(id)
	}
}

// exprStmt allows calls and flags everything else as unused. A call's
// value may only be dropped when it is void or the callee is #discardable.
func (c *Checker) exprStmt(id ast.NodeID) {
	t := c.expr(id, types.NoTypeID)
	if t == types.NoTypeID {
		return
	}
	if _, ok := c.b.Call(c.b.Unparen(id)); !ok {
		c.warnf(diag.SemaUnusedExpression, c.span(id), "%s is not used", c.source(id))
		return
	}
	ci := c.info.Calls[c.b.Unparen(id)]
	if t == c.bt.Void || (ci != nil && ci.Discardable) {
		return
	}
	c.diagnose(diag.SevError, diag.SemaUnusedResult, c.span(id), "result of "+c.source(id)+" is not used",
		note(c.span(id), "assign it to a variable, or mark the function #discardable"))
}

func (c *Checker) block(id ast.NodeID, x *ast.Block) {
	scope := c.openScope(symbols.ScopeBlock, id)
	depth := c.push(frame{kind: frameBlock, scope: scope, node: id})
	c.stmts(x.Stmts)
	c.pop(depth)
}

// body checks a loop or branch body block.
func (c *Checker) body(id ast.NodeID) {
	if blk, ok := c.b.Block(id); ok {
		c.block(id, blk)
		return
	}
	c.stmt(id)
}

func (c *Checker) cond(id ast.NodeID, what string) {
	t := c.expr(id, c.bt.Bool)
	if t != types.NoTypeID && !c.tt.IsBool(t) {
		c.errorf(diag.SemaTypeMismatch, c.span(id), "non-boolean condition in %s: %s", what, c.typeString(t))
	}
}

func (c *Checker) ifStmt(id ast.NodeID, x *ast.If) {
	c.cond(x.Cond, "if")
	c.body(x.Then)
	if x.Else.IsValid() {
		c.body(x.Else)
	}
}

// label declares the target entity of a loop or switch: the user's label
// or an auto-numbered one.
func (c *Checker) label(scope symbols.ScopeID, owner, label ast.NodeID, prefix string, n int) symbols.EntityID {
	ent := symbols.Entity{Flags: symbols.FlagLabel, Decl: owner, Span: c.span(owner)}
	if label.IsValid() {
		return c.declare(scope, label, ent)
	}
	ent.Name = c.b.Strings.Intern(fmt.Sprintf("%s.%d", prefix, n))
	id, _ := c.syms.Declare(scope, ent)
	return id
}

func (c *Checker) forStmt(id ast.NodeID, x *ast.For) {
	scope := c.openScope(symbols.ScopeFor, id)
	c.loops++
	lbl := c.label(scope, id, x.Label, "for", c.loops)
	depth := c.push(frame{kind: frameLoop, scope: scope, node: id, label: lbl})
	if x.Init.IsValid() {
		c.stmt(x.Init)
	}
	if x.Cond.IsValid() {
		c.cond(x.Cond, "for")
	}
	if x.Step.IsValid() {
		c.stmt(x.Step)
	}
	c.body(x.Body)
	c.pop(depth)
}

func (c *Checker) switchStmt(id ast.NodeID, x *ast.Switch) {
	scope := c.openScope(symbols.ScopeSwitch, id)
	c.switches++
	lbl := c.label(scope, id, x.Label, "switch", c.switches)
	depth := c.push(frame{kind: frameSwitch, scope: scope, node: id, label: lbl})
	defer c.pop(depth)

	subject := types.NoTypeID
	hasSubject := x.Subject.IsValid()
	if hasSubject {
		subject = c.expr(x.Subject, types.NoTypeID)
	}

	defaults := 0
	for i, cid := range x.Cases {
		cs, ok := c.b.Case(cid)
		if !ok || !cs.IsDefault() {
			continue
		}
		defaults++
		switch {
		case defaults > 1:
			c.errorf(diag.SemaDefaultNotLast, c.span(cid), "multiple default cases in switch")
		case i != len(x.Cases)-1:
			c.errorf(diag.SemaDefaultNotLast, c.span(cid), "default case must be the last case")
		}
	}
	if defaults == 0 {
		c.errorf(diag.SemaMissingDefault, c.span(id), "switch must have a default case")
	}

	for i, cid := range x.Cases {
		cs, ok := c.b.Case(cid)
		if !ok {
			continue
		}
		for _, m := range cs.Match {
			c.caseMatch(m, subject, hasSubject)
		}
		next := ast.NoNodeID
		if i+1 < len(x.Cases) {
			next = x.Cases[i+1]
		}
		cscope := c.openScope(symbols.ScopeCase, cid)
		cdepth := c.push(frame{kind: frameCase, scope: cscope, node: cid, next: next})
		c.stmts(cs.Body)
		c.pop(cdepth)
	}
}

func (c *Checker) caseMatch(m ast.NodeID, subject types.TypeID, hasSubject bool) {
	if !hasSubject {
		mt := c.expr(m, c.bt.Bool)
		if mt != types.NoTypeID && !c.tt.IsBool(mt) {
			c.errorf(diag.SemaCaseType, c.span(m), "case %s must be a boolean in a switch without subject, have %s", c.source(m), c.typeString(mt))
		}
		return
	}
	mt := c.expr(m, subject)
	if mt == types.NoTypeID || subject == types.NoTypeID {
		return
	}
	if !c.tt.Equal(mt, subject) {
		c.errorf(diag.SemaCaseType, c.span(m), "case %s (type %s) does not match switch subject type %s",
			c.source(m), c.typeString(mt), c.typeString(subject))
	}
}

func (c *Checker) returnStmt(id ast.NodeID, x *ast.Return) {
	fn, ok := c.enclosingFunc()
	if !ok {
		c.errorf(diag.SemaReturnArity, c.span(id), "return outside of a function")
		c.exprs(x.Values)
		return
	}
	want := c.tt.Elems(fn.results)
	if len(x.Values) == 1 && len(want) > 1 {
		vt := c.expr(x.Values[0], types.NoTypeID)
		if vt != types.NoTypeID && !c.tt.EqualLists(c.tt.Elems(vt), want) {
			c.errorf(diag.SemaReturnArity, c.span(id), "cannot return %s from a function returning %s",
				c.typeString(vt), c.typeString(fn.results))
		}
		return
	}
	if len(x.Values) != len(want) {
		c.errorf(diag.SemaReturnArity, c.span(id), "wrong number of return values: have %d, want %d", len(x.Values), len(want))
		c.exprs(x.Values)
		return
	}
	for i, v := range x.Values {
		vt := c.expr(v, want[i])
		c.assignable(v, vt, want[i], "return statement")
	}
}

// branch resolves break, continue and fallthrough targets.
func (c *Checker) branch(id ast.NodeID, x *ast.Branch) {
	if x.Tok == token.KwFallthrough {
		f := c.top()
		switch {
		case f.kind != frameCase:
			c.errorf(diag.SemaBranchTarget, c.span(id), "fallthrough must appear directly inside a case")
		case !f.next.IsValid():
			c.errorf(diag.SemaBranchTarget, c.span(id), "cannot fallthrough the final case in switch")
		default:
			c.info.Targets[id] = f.next
		}
		return
	}
	isContinue := x.Tok == token.KwContinue
	var target ast.NodeID
	if x.Label.IsValid() {
		ident, _ := c.b.Ident(x.Label)
		ent, ok := c.syms.Lookup(c.cur(), ident.Name)
		if !ok || c.syms.Entity(ent).Flags&symbols.FlagLabel == 0 {
			c.errorf(diag.SemaBranchTarget, c.span(x.Label), "undefined label %s", c.name(x.Label))
			return
		}
		c.info.Entities[x.Label] = ent
		var kind frameKind
		c.branchFrames(func(f *frame) bool {
			if (f.kind == frameLoop || f.kind == frameSwitch) && f.label == ent {
				target, kind = f.node, f.kind
				return true
			}
			return false
		})
		switch {
		case !target.IsValid():
			c.errorf(diag.SemaBranchTarget, c.span(x.Label), "label %s does not name an enclosing loop or switch", c.name(x.Label))
			return
		case isContinue && kind != frameLoop:
			c.errorf(diag.SemaBranchTarget, c.span(x.Label), "invalid continue label %s: not a loop", c.name(x.Label))
			return
		}
	} else {
		c.branchFrames(func(f *frame) bool {
			if f.kind == frameLoop || (!isContinue && f.kind == frameSwitch) {
				target = f.node
				return true
			}
			return false
		})
		if !target.IsValid() {
			what := "break is not in a loop or switch"
			if isContinue {
				what = "continue is not in a loop"
			}
			c.errorf(diag.SemaBranchTarget, c.span(id), "%s", what)
			return
		}
	}
	c.info.Targets[id] = target
}

// assign handles "=" with tuple distribution, and compound operators.
func (c *Checker) assign(id ast.NodeID, x *ast.Assign) {
	if op, ok := compoundOps[x.Op]; ok {
		if len(x.Lhs) != 1 || len(x.Rhs) != 1 {
			c.errorf(diag.SemaArity, c.span(id), "%s takes exactly one operand on each side", x.Op)
			c.exprs(x.Lhs)
			c.exprs(x.Rhs)
			return
		}
		lt := c.target(x.Lhs[0])
		rt := c.expr(x.Rhs[0], lt)
		if lt == types.NoTypeID || rt == types.NoTypeID {
			return
		}
		res := c.binary(id, op, opClasses[op], x.Lhs[0], x.Rhs[0], lt, rt)
		if res != types.NoTypeID && !c.tt.Equal(res, lt) {
			c.errorf(diag.SemaTypeMismatch, c.span(id), "result of %s is %s, cannot assign to %s",
				op, c.typeString(res), c.typeString(lt))
		}
		return
	}
	lhs := make([]types.TypeID, len(x.Lhs))
	for i, l := range x.Lhs {
		lhs[i] = c.target(l)
	}
	if len(x.Rhs) == 1 && len(x.Lhs) > 1 {
		vt := c.expr(x.Rhs[0], types.NoTypeID)
		if vt == types.NoTypeID {
			return
		}
		elems := c.tt.Elems(vt)
		if len(elems) != len(x.Lhs) {
			c.errorf(diag.SemaArity, c.span(id), "assignment mismatch: %d variables but %s returns %d values",
				len(x.Lhs), c.source(x.Rhs[0]), len(elems))
			return
		}
		for i, l := range x.Lhs {
			if lhs[i] != types.NoTypeID && !c.tt.Equal(elems[i], lhs[i]) {
				c.errorf(diag.SemaTypeMismatch, c.span(l), "cannot assign %s to %s (type %s)",
					c.typeString(elems[i]), c.source(l), c.typeString(lhs[i]))
			}
		}
		return
	}
	if len(x.Rhs) != len(x.Lhs) {
		c.errorf(diag.SemaArity, c.span(id), "assignment mismatch: %d variables but %d values", len(x.Lhs), len(x.Rhs))
		c.exprs(x.Rhs)
		return
	}
	for i, r := range x.Rhs {
		rt := c.expr(r, lhs[i])
		c.assignable(r, rt, lhs[i], "assignment")
	}
}

// target checks the left side of an assignment.
func (c *Checker) target(id ast.NodeID) types.TypeID {
	t := c.expr(id, types.NoTypeID)
	if t == types.NoTypeID {
		return t
	}
	if !c.addressable(id) {
		c.errorf(diag.SemaNotAssignable, c.span(id), "cannot assign to %s", c.source(id))
		return types.NoTypeID
	}
	return t
}
