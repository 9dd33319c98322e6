package diag

import "fmt"

// Code is a stable numeric diagnostic identifier. The thousands digit selects
// the phase: 1xxx lexer, 2xxx parser, 3xxx checker, 4xxx I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Синтаксические
	SynInfo                   Code = 2000
	SynUnexpectedToken        Code = 2001
	SynExpectExpression       Code = 2002
	SynExpectIdentifier       Code = 2003
	SynExpectType             Code = 2004
	SynExpectString           Code = 2005
	SynUnclosedDelimiter      Code = 2006
	SynUnknownDirective       Code = 2007
	SynBadDirectiveTarget     Code = 2008
	SynCaseOutsideSwitch      Code = 2009
	SynBreakOutsideLoop       Code = 2010
	SynContinueOutsideLoop    Code = 2011
	SynFallthroughOutsideCase Code = 2012
	SynVariadicNotLast        Code = 2013
	SynBadDeclarationName     Code = 2014
	SynForeignBody            Code = 2015

	// Семантические
	SemaInfo             Code = 3000
	SemaError            Code = 3001
	SemaUndefined        Code = 3002
	SemaRedeclaration    Code = 3003
	SemaTypeMismatch     Code = 3004
	SemaArity            Code = 3005
	SemaMixedSignedness  Code = 3006
	SemaInvalidOperand   Code = 3007
	SemaNotCallable      Code = 3008
	SemaInvalidCast      Code = 3009
	SemaUnnecessaryCast  Code = 3010
	SemaUnionLiteral     Code = 3011
	SemaCompositeLiteral Code = 3012
	SemaUnknownMember    Code = 3013
	SemaNotAType         Code = 3014
	SemaMissingDefault   Code = 3015
	SemaDefaultNotLast   Code = 3016
	SemaCaseType         Code = 3017
	SemaBranchTarget     Code = 3018
	SemaReturnArity      Code = 3019
	SemaMultiValueFnLit  Code = 3020
	SemaDeclCount        Code = 3021
	SemaUnusedExpression Code = 3022
	SemaUnusedResult     Code = 3023
	SemaIntegerNegation  Code = 3024
	SemaLiteralOverflow  Code = 3025
	SemaImportFailed     Code = 3026
	SemaLibraryNotFound  Code = 3027
	SemaNotAssignable    Code = 3028
	SemaPolymorphicValue Code = 3029
	SemaInvalidConstant  Code = 3030

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectExpression:         "Expected expression",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type",
	SynExpectString:             "Expected string literal",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUnknownDirective:         "Unknown directive",
	SynBadDirectiveTarget:       "Directive cannot apply here",
	SynCaseOutsideSwitch:        "Case outside switch",
	SynBreakOutsideLoop:         "Break outside loop or switch",
	SynContinueOutsideLoop:      "Continue outside loop",
	SynFallthroughOutsideCase:   "Fallthrough outside case",
	SynVariadicNotLast:          "Variadic parameter must be last",
	SynBadDeclarationName:       "Declared name must be an identifier",
	SynForeignBody:              "Foreign block accepts declarations only",
	SemaInfo:                    "Semantic information",
	SemaError:                   "Semantic error",
	SemaUndefined:               "Undefined identifier",
	SemaRedeclaration:           "Redeclaration",
	SemaTypeMismatch:            "Type mismatch",
	SemaArity:                   "Wrong number of arguments",
	SemaMixedSignedness:         "Mixed signed and unsigned operands",
	SemaInvalidOperand:          "Invalid operand for operator",
	SemaNotCallable:             "Value is not callable",
	SemaInvalidCast:             "Invalid cast",
	SemaUnnecessaryCast:         "Unnecessary cast",
	SemaUnionLiteral:            "No matching union member",
	SemaCompositeLiteral:        "Invalid composite literal",
	SemaUnknownMember:           "Unknown member",
	SemaNotAType:                "Expression is not a type",
	SemaMissingDefault:          "Switch without default case",
	SemaDefaultNotLast:          "Default case is not last",
	SemaCaseType:                "Case does not match switch subject",
	SemaBranchTarget:            "Invalid branch target",
	SemaReturnArity:             "Wrong number of return values",
	SemaMultiValueFnLit:         "Function literal in multi-value declaration",
	SemaDeclCount:               "Declaration count mismatch",
	SemaUnusedExpression:        "Unused expression",
	SemaUnusedResult:            "Unused call result",
	SemaIntegerNegation:         "Integer negation",
	SemaLiteralOverflow:         "Literal out of range",
	SemaImportFailed:            "Import failed",
	SemaLibraryNotFound:         "Library not found",
	SemaNotAssignable:           "Cannot assign",
	SemaPolymorphicValue:        "Polymorphic function used as value",
	SemaInvalidConstant:         "Compile-time value is not constant",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
