package ast

// NodeID is a handle into Builder.Nodes; zero means "absent".
// Back references (branch targets) are NodeIDs, so the tree never owns a cycle.
type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }

// Kind tags a node; it always agrees with the concrete type of Node.Data.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindIdent
	KindLit
	KindParen
	KindList
	KindPrefix
	KindInfix
	KindCall
	KindSelector
	KindCompositeLit
	KindKeyValue
	KindFuncLit
	KindParam
	KindVariadic
	KindStructType
	KindUnionType
	KindEnumType
	KindField
	KindEnumCase
	KindDecl
	KindDeclGroup
	KindAssign
	KindBlock
	KindIf
	KindFor
	KindSwitch
	KindCase
	KindReturn
	KindBranch
	KindImport
	KindLibrary
)

var kindNames = [...]string{
	KindInvalid:      "Invalid",
	KindIdent:        "Ident",
	KindLit:          "Lit",
	KindParen:        "Paren",
	KindList:         "List",
	KindPrefix:       "Prefix",
	KindInfix:        "Infix",
	KindCall:         "Call",
	KindSelector:     "Selector",
	KindCompositeLit: "CompositeLit",
	KindKeyValue:     "KeyValue",
	KindFuncLit:      "FuncLit",
	KindParam:        "Param",
	KindVariadic:     "Variadic",
	KindStructType:   "StructType",
	KindUnionType:    "UnionType",
	KindEnumType:     "EnumType",
	KindField:        "Field",
	KindEnumCase:     "EnumCase",
	KindDecl:         "Decl",
	KindDeclGroup:    "DeclGroup",
	KindAssign:       "Assign",
	KindBlock:        "Block",
	KindIf:           "If",
	KindFor:          "For",
	KindSwitch:       "Switch",
	KindCase:         "Case",
	KindReturn:       "Return",
	KindBranch:       "Branch",
	KindImport:       "Import",
	KindLibrary:      "Library",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
