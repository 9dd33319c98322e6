package sema

import (
	"flint/internal/ast"
	"flint/internal/diag"
	"flint/internal/token"
	"flint/internal/types"
)

type opClass uint8

const (
	opArith opClass = iota
	opIntOnly
	opCompare
	opEquality
	opLogic
)

var opClasses = map[token.Kind]opClass{
	token.Plus:    opArith,
	token.Minus:   opArith,
	token.Star:    opArith,
	token.Slash:   opArith,
	token.Percent: opIntOnly,
	token.Amp:     opIntOnly,
	token.Pipe:    opIntOnly,
	token.Caret:   opIntOnly,
	token.Shl:     opIntOnly,
	token.Shr:     opIntOnly,
	token.Lt:      opCompare,
	token.LtEq:    opCompare,
	token.Gt:      opCompare,
	token.GtEq:    opCompare,
	token.EqEq:    opEquality,
	token.BangEq:  opEquality,
	token.AndAnd:  opLogic,
	token.OrOr:    opLogic,
}

// compoundOps maps an assignment operator to its binary operator.
var compoundOps = map[token.Kind]token.Kind{
	token.PlusAssign:  token.Plus,
	token.MinusAssign: token.Minus,
	token.StarAssign:  token.Star,
	token.SlashAssign: token.Slash,
}

func (c *Checker) infix(id ast.NodeID, x *ast.Infix, want types.TypeID) types.TypeID {
	class, ok := opClasses[x.Op]
	if !ok {
		c.errorf(diag.SemaInvalidOperand, c.span(id), "unknown operator %s", x.Op)
		return types.NoTypeID
	}
	if class == opLogic {
		lt := c.expr(x.X, c.bt.Bool)
		rt := c.expr(x.Y, c.bt.Bool)
		if (lt != types.NoTypeID && !c.tt.IsBool(lt)) || (rt != types.NoTypeID && !c.tt.IsBool(rt)) {
			c.errorf(diag.SemaInvalidOperand, c.span(id), "operator %s requires bool operands, have %s and %s",
				x.Op, c.typeString(lt), c.typeString(rt))
		}
		return c.bt.Bool
	}
	if class == opCompare || class == opEquality {
		want = types.NoTypeID
	}
	lt, rt := c.operands(x.X, x.Y, want)
	if lt == types.NoTypeID || rt == types.NoTypeID {
		if class == opCompare || class == opEquality {
			return c.bt.Bool
		}
		return types.NoTypeID
	}
	return c.binary(id, x.Op, class, x.X, x.Y, lt, rt)
}

// operands checks both sides. An untyped literal facing a typed operand is
// checked second so it adopts that operand's type whichever side it is on.
func (c *Checker) operands(l, r ast.NodeID, want types.TypeID) (lt, rt types.TypeID) {
	if c.isUntyped(l) && !c.isUntyped(r) {
		rt = c.expr(r, want)
		lt = c.expr(l, rt)
		return lt, rt
	}
	lt = c.expr(l, want)
	rt = c.expr(r, lt)
	return lt, rt
}

func (c *Checker) binary(id ast.NodeID, op token.Kind, class opClass, l, r ast.NodeID, lt, rt types.TypeID) types.TypeID {
	mismatch := func() types.TypeID {
		c.errorf(diag.SemaInvalidOperand, c.span(id), "invalid operands for %s: %s and %s", op, c.typeString(lt), c.typeString(rt))
		if class == opCompare || class == opEquality {
			return c.bt.Bool
		}
		return types.NoTypeID
	}
	switch class {
	case opEquality:
		if c.tt.IsBool(lt) && c.tt.IsBool(rt) {
			return c.bt.Bool
		}
		fallthrough
	case opCompare:
		if !c.tt.IsNumeric(lt) || !c.tt.IsNumeric(rt) {
			return mismatch()
		}
		c.promote(id, l, r, lt, rt)
		return c.bt.Bool
	case opArith:
		if !c.tt.IsNumeric(lt) || !c.tt.IsNumeric(rt) {
			return mismatch()
		}
		return c.promote(id, l, r, lt, rt)
	case opIntOnly:
		if !c.tt.IsInteger(lt) || !c.tt.IsInteger(rt) {
			return mismatch()
		}
		return c.promote(id, l, r, lt, rt)
	}
	return mismatch()
}

// promote applies the numeric promotion lattice and records the
// conversion of the narrower or integer operand.
func (c *Checker) promote(id, l, r ast.NodeID, lt, rt types.TypeID) types.TypeID {
	if c.tt.Equal(lt, rt) {
		return lt
	}
	a, b := c.tt.MustLookup(lt), c.tt.MustLookup(rt)
	switch {
	case a.Kind == types.KindInt && b.Kind == types.KindFloat:
		c.convert(l, ConvIntToFloat, rt)
		return rt
	case a.Kind == types.KindFloat && b.Kind == types.KindInt:
		c.convert(r, ConvIntToFloat, lt)
		return lt
	case a.Kind == types.KindFloat:
		if a.Width < b.Width {
			c.convert(l, ConvFloatExtend, rt)
			return rt
		}
		c.convert(r, ConvFloatExtend, lt)
		return lt
	}
	if a.Signed != b.Signed {
		c.diagnose(diag.SevError, diag.SemaMixedSignedness, c.span(id),
			"mixed signed and unsigned operands: "+c.typeString(lt)+" and "+c.typeString(rt),
			note(c.span(id), "convert one operand explicitly"))
		return types.NoTypeID
	}
	ext := ConvZeroExtend
	if a.Signed {
		ext = ConvSignExtend
	}
	if a.Width < b.Width {
		c.convert(l, ext, rt)
		return rt
	}
	c.convert(r, ext, lt)
	return lt
}

func (c *Checker) convert(id ast.NodeID, kind ConvKind, to types.TypeID) {
	c.info.Conversions[id] = Conversion{Kind: kind, To: to}
}

// castKind classifies an explicit numeric conversion.
func (c *Checker) castKind(from, to types.TypeID) (ConvKind, bool) {
	if !c.tt.IsNumeric(from) || !c.tt.IsNumeric(to) {
		return ConvNone, false
	}
	a, b := c.tt.MustLookup(from), c.tt.MustLookup(to)
	switch {
	case a.Kind == types.KindInt && b.Kind == types.KindFloat:
		return ConvIntToFloat, true
	case a.Kind == types.KindFloat && b.Kind == types.KindInt:
		return ConvFloatToInt, true
	case a.Kind == types.KindFloat:
		if a.Width < b.Width {
			return ConvFloatExtend, true
		}
		return ConvFloatTruncate, true
	}
	switch {
	case a.Width == b.Width:
		return ConvBitcast, true
	case a.Width > b.Width:
		return ConvTruncate, true
	case a.Signed:
		return ConvSignExtend, true
	default:
		return ConvZeroExtend, true
	}
}
