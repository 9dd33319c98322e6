package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid carries malformed input; diagnostics are deferred to the parser.
	Invalid Kind = iota
	EOF
	Newline

	Ident
	IntLit
	FloatLit
	StringLit

	// keywords
	KwFn
	KwStruct
	KwUnion
	KwEnum
	KwIf
	KwElse
	KwFor
	KwSwitch
	KwCase
	KwBreak
	KwContinue
	KwFallthrough
	KwReturn
	KwTrue
	KwFalse

	// directives
	DirImport
	DirLibrary
	DirForeign
	DirLinkName
	DirDiscardable
	DirCallingConvention
	DirCVargs

	// punctuation and operators
	LParen      // (
	RParen      // )
	LBrace      // {
	RBrace      // }
	LBracket    // [
	RBracket    // ]
	Comma       // ,
	Semicolon   // ;
	Dot         // .
	DotDot      // ..
	Dollar      // $
	Colon       // :
	ColonColon  // ::
	ColonAssign // :=
	Arrow       // ->
	Assign      // =
	PlusAssign  // +=
	MinusAssign // -=
	StarAssign  // *=
	SlashAssign // /=
	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	Percent     // %
	Bang        // !
	Amp         // &
	Pipe        // |
	Caret       // ^
	Shl         // <<
	Shr         // >>
	AndAnd      // &&
	OrOr        // ||
	EqEq        // ==
	BangEq      // !=
	Lt          // <
	LtEq        // <=
	Gt          // >
	GtEq        // >=

	kindCount
)

var kindNames = [...]string{
	Invalid:              "invalid",
	EOF:                  "EOF",
	Newline:              "newline",
	Ident:                "identifier",
	IntLit:               "integer literal",
	FloatLit:             "float literal",
	StringLit:            "string literal",
	KwFn:                 "fn",
	KwStruct:             "struct",
	KwUnion:              "union",
	KwEnum:               "enum",
	KwIf:                 "if",
	KwElse:               "else",
	KwFor:                "for",
	KwSwitch:             "switch",
	KwCase:               "case",
	KwBreak:              "break",
	KwContinue:           "continue",
	KwFallthrough:        "fallthrough",
	KwReturn:             "return",
	KwTrue:               "true",
	KwFalse:              "false",
	DirImport:            "#import",
	DirLibrary:           "#library",
	DirForeign:           "#foreign",
	DirLinkName:          "#linkName",
	DirDiscardable:       "#discardable",
	DirCallingConvention: "#callingConvention",
	DirCVargs:            "#cvargs",
	LParen:               "(",
	RParen:               ")",
	LBrace:               "{",
	RBrace:               "}",
	LBracket:             "[",
	RBracket:             "]",
	Comma:                ",",
	Semicolon:            ";",
	Dot:                  ".",
	DotDot:               "..",
	Dollar:               "$",
	Colon:                ":",
	ColonColon:           "::",
	ColonAssign:          ":=",
	Arrow:                "->",
	Assign:               "=",
	PlusAssign:           "+=",
	MinusAssign:          "-=",
	StarAssign:           "*=",
	SlashAssign:          "/=",
	Plus:                 "+",
	Minus:                "-",
	Star:                 "*",
	Slash:                "/",
	Percent:              "%",
	Bang:                 "!",
	Amp:                  "&",
	Pipe:                 "|",
	Caret:                "^",
	Shl:                  "<<",
	Shr:                  ">>",
	AndAnd:               "&&",
	OrOr:                 "||",
	EqEq:                 "==",
	BangEq:               "!=",
	Lt:                   "<",
	LtEq:                 "<=",
	Gt:                   ">",
	GtEq:                 ">=",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k >= KwFn && k <= KwFalse }

// IsDirective reports whether k is a '#' directive.
func (k Kind) IsDirective() bool { return k >= DirImport && k <= DirCVargs }

// IsLiteral reports whether k carries a literal payload.
func (k Kind) IsLiteral() bool { return k == IntLit || k == FloatLit || k == StringLit }

// IsAssignOp reports whether k is '=' or a compound assignment.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign:
		return true
	}
	return false
}

// BinaryOf maps a compound assignment to its arithmetic operator.
func (k Kind) BinaryOf() (Kind, bool) {
	switch k {
	case PlusAssign:
		return Plus, true
	case MinusAssign:
		return Minus, true
	case StarAssign:
		return Star, true
	case SlashAssign:
		return Slash, true
	}
	return Invalid, false
}
