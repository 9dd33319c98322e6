package parser

import "flint/internal/token"

// Binding powers: чем больше число, тем сильнее связывание.
const (
	bpNone       = 0
	bpAssign     = 10 // = += -= *= /= : :: :=
	bpList       = 20 // ,
	bpOrOr       = 30
	bpAndAnd     = 40
	bpCompare    = 50 // == != < <= > >=
	bpAdditive   = 60 // + - | ^
	bpMultiplier = 70 // * / % & << >>
	bpPrefix     = 80 // - ! & *
	bpPostfix    = 90 // call, member, composite literal
)

// lbp returns the left binding power of tok under the current context.
func (p *Parser) lbp(tok token.Token) int {
	switch tok.Kind {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
		token.Colon, token.ColonColon, token.ColonAssign:
		if p.has(AllowAssignOrDecl) {
			return bpAssign
		}
	case token.Comma:
		if p.has(AllowExprList) {
			return bpList
		}
	case token.OrOr:
		return bpOrOr
	case token.AndAnd:
		return bpAndAnd
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return bpCompare
	case token.Plus, token.Minus, token.Pipe, token.Caret:
		return bpAdditive
	case token.Star, token.Slash, token.Percent, token.Amp, token.Shl, token.Shr:
		return bpMultiplier
	case token.LParen, token.Dot:
		return bpPostfix
	case token.LBrace:
		if p.has(AllowCompositeLit) {
			return bpPostfix
		}
	}
	return bpNone
}

func isPrefixOp(k token.Kind) bool {
	switch k {
	case token.Minus, token.Bang, token.Amp, token.Star:
		return true
	}
	return false
}
