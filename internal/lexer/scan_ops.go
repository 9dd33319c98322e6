package lexer

import (
	"flint/internal/diag"
	"flint/internal/token"
)

var twoCharOps = [...]struct {
	a, b byte
	kind token.Kind
}{
	{'+', '=', token.PlusAssign},
	{'-', '=', token.MinusAssign},
	{'*', '=', token.StarAssign},
	{'/', '=', token.SlashAssign},
	{'=', '=', token.EqEq},
	{'!', '=', token.BangEq},
	{'<', '=', token.LtEq},
	{'>', '=', token.GtEq},
	{'.', '.', token.DotDot},
	{'-', '>', token.Arrow},
	{':', ':', token.ColonColon},
	{':', '=', token.ColonAssign},
	{'&', '&', token.AndAnd},
	{'|', '|', token.OrOr},
	{'<', '<', token.Shl},
	{'>', '>', token.Shr},
}

var oneCharOps = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	',': token.Comma,
	';': token.Semicolon,
	'.': token.Dot,
	'$': token.Dollar,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'!': token.Bang,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	'<': token.Lt,
	'>': token.Gt,
	'=': token.Assign,
	':': token.Colon,
}

// scanOperatorOrPunct: сначала двухсимвольные операторы, затем односимвольные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.Slice(start)}
	}

	for _, op := range twoCharOps {
		if lx.try2(op.a, op.b) {
			return emit(op.kind)
		}
	}
	if k, ok := oneCharOps[lx.cursor.Peek()]; ok {
		lx.cursor.Bump()
		return emit(k)
	}
	lx.bumpRune()
	return lx.invalid(start, diag.LexUnknownChar, "unknown character")
}
