package token

var keywords = map[string]Kind{
	"fn":          KwFn,
	"struct":      KwStruct,
	"union":       KwUnion,
	"enum":        KwEnum,
	"if":          KwIf,
	"else":        KwElse,
	"for":         KwFor,
	"switch":      KwSwitch,
	"case":        KwCase,
	"break":       KwBreak,
	"continue":    KwContinue,
	"fallthrough": KwFallthrough,
	"return":      KwReturn,
	"true":        KwTrue,
	"false":       KwFalse,
}

var directives = map[string]Kind{
	"#import":            DirImport,
	"#library":           DirLibrary,
	"#foreign":           DirForeign,
	"#linkName":          DirLinkName,
	"#discardable":       DirDiscardable,
	"#callingConvention": DirCallingConvention,
	"#cvargs":            DirCVargs,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupDirective resolves a '#'-prefixed word.
func LookupDirective(word string) (Kind, bool) {
	k, ok := directives[word]
	return k, ok
}
