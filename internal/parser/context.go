package parser

// Context is the set of grammar permissions in effect. The same token means
// different things depending on it: ':' starts a declaration only under
// AllowAssignOrDecl, '{' continues an expression as a composite literal only
// under AllowCompositeLit.
type Context uint16

const (
	AllowExprList Context = 1 << iota
	AllowAssignOrDecl
	AllowCase
	AllowCompositeLit
	FunctionBody
	StructBody
	UnionBody
	EnumBody
	Foreign
	SuppressTerminators
	Breakable
	Continuable
)

const rootContext = AllowCompositeLit

// exprFlags are the permissions that never leak into a nested construct.
const exprFlags = AllowExprList | AllowAssignOrDecl | AllowCompositeLit | SuppressTerminators

func (p *Parser) current() Context {
	return p.ctx[len(p.ctx)-1]
}

func (p *Parser) has(flag Context) bool {
	return p.current()&flag != 0
}

// push enters a nested construct: flags in clear are dropped from the
// current context and flags in set are added.
func (p *Parser) push(set, clear Context) {
	p.ctx = append(p.ctx, p.current()&^clear|set)
}

func (p *Parser) pop() {
	if len(p.ctx) <= 1 {
		panic("parser: grammar context stack underflow")
	}
	p.ctx = p.ctx[:len(p.ctx)-1]
}
