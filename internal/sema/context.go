package sema

import (
	"fmt"

	"flint/internal/ast"
	"flint/internal/symbols"
	"flint/internal/types"
)

type frameKind uint8

const (
	frameFile frameKind = iota
	frameFunc
	frameBlock
	frameLoop
	frameSwitch
	frameCase
)

// frame is one entry of the checker context stack. Lookups for labels,
// branch targets and return types stop at the nearest frameFunc.
type frame struct {
	kind  frameKind
	scope symbols.ScopeID
	node  ast.NodeID

	results types.TypeID     // frameFunc
	label   symbols.EntityID // frameLoop, frameSwitch
	next    ast.NodeID       // frameCase: fallthrough target
}

// push returns the depth to hand back to pop.
func (c *Checker) push(f frame) int {
	c.frames = append(c.frames, f)
	return len(c.frames)
}

func (c *Checker) pop(depth int) {
	if depth == 0 || depth != len(c.frames) {
		panic(fmt.Sprintf("sema: context stack imbalance: pop(%d) with %d frames", depth, len(c.frames)))
	}
	c.frames = c.frames[:depth-1]
}

func (c *Checker) top() *frame {
	if len(c.frames) == 0 {
		panic("sema: empty context stack")
	}
	return &c.frames[len(c.frames)-1]
}

// cur is the innermost open scope.
func (c *Checker) cur() symbols.ScopeID { return c.top().scope }

// enclosingFunc returns the innermost function frame.
func (c *Checker) enclosingFunc() (*frame, bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if c.frames[i].kind == frameFunc {
			return &c.frames[i], true
		}
	}
	return nil, false
}

// branchFrames calls fn for each frame inside the current function,
// innermost first, until fn returns true.
func (c *Checker) branchFrames(fn func(*frame) bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		f := &c.frames[i]
		if f.kind == frameFunc {
			return
		}
		if fn(f) {
			return
		}
	}
}

// openScope creates a scope under the current one and records it for owner.
func (c *Checker) openScope(kind symbols.ScopeKind, owner ast.NodeID) symbols.ScopeID {
	id := c.syms.NewScope(kind, c.cur(), owner, c.span(owner))
	c.info.Scopes[owner] = id
	return id
}
