package syntax

import "fmt"

// BinOp is a binary operator.
type BinOp uint8

const (
	Plus BinOp = iota
	Minus
	Mul
	Div
	Mod
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
	And
	Or

	binOpCount
)

var binOpNames = [...]string{
	Plus:  "PLUS",
	Minus: "MINUS",
	Mul:   "MUL",
	Div:   "DIV",
	Mod:   "MOD",
	Lt:    "LT",
	Gt:    "GT",
	Le:    "LE",
	Ge:    "GE",
	Eq:    "EQ",
	Ne:    "NE",
	And:   "AND",
	Or:    "OR",
}

// String returns the name printed for the operator, e.g. "PLUS".
func (op BinOp) String() string {
	if op < binOpCount {
		return binOpNames[op]
	}
	return fmt.Sprintf("BinOp(%d)", op)
}

// UnOp is a unary operator.
type UnOp uint8

const (
	UMinus UnOp = iota
	Not

	unOpCount
)

var unOpNames = [...]string{
	UMinus: "UMINUS",
	Not:    "NOT",
}

// String returns the name printed for the operator, e.g. "UMINUS".
func (op UnOp) String() string {
	if op < unOpCount {
		return unOpNames[op]
	}
	return fmt.Sprintf("UnOp(%d)", op)
}

// LookupBinOp returns the binary operator with the given name.
func LookupBinOp(name string) (BinOp, bool) {
	for op := BinOp(0); op < binOpCount; op++ {
		if binOpNames[op] == name {
			return op, true
		}
	}
	return 0, false
}

// LookupUnOp returns the unary operator with the given name.
func LookupUnOp(name string) (UnOp, bool) {
	for op := UnOp(0); op < unOpCount; op++ {
		if unOpNames[op] == name {
			return op, true
		}
	}
	return 0, false
}

// ----------------------------------------------------------------------------
// Variant tags

// ExprKind identifies the variant of an expression node.
type ExprKind uint8

const (
	KindConst ExprKind = iota
	KindVar
	KindBinary
	KindUnary
	KindDeref
	KindMalloc
	KindReadInt
	KindReadChar
	KindIndex
	KindMultiIndex
	KindInitList
	KindChar
	KindString

	NumExprKinds = int(iota)
)

var exprKindNames = [...]string{
	KindConst:      "T_CONST",
	KindVar:        "T_VAR",
	KindBinary:     "T_BINOP",
	KindUnary:      "T_UNOP",
	KindDeref:      "T_DEREF",
	KindMalloc:     "T_MALLOC",
	KindReadInt:    "T_RI",
	KindReadChar:   "T_RC",
	KindIndex:      "T_ARRAY",
	KindMultiIndex: "T_MD_ARRAY",
	KindInitList:   "T_INIT_LIST",
	KindChar:       "T_CHAR",
	KindString:     "T_STRING",
}

func (k ExprKind) String() string {
	if int(k) < NumExprKinds {
		return exprKindNames[k]
	}
	return fmt.Sprintf("ExprKind(%d)", k)
}

// CmdKind identifies the variant of a command node.
type CmdKind uint8

const (
	KindDecl CmdKind = iota
	KindAssign
	KindSeq
	KindIf
	KindWhile
	KindWriteInt
	KindWriteChar
	KindArrayDecl
	KindPointerDecl
	KindCharDecl
	KindStringDecl
	KindStringListDecl
	KindMultiVarDecl

	NumCmdKinds = int(iota)
)

var cmdKindNames = [...]string{
	KindDecl:           "T_DECL",
	KindAssign:         "T_ASGN",
	KindSeq:            "T_SEQ",
	KindIf:             "T_IF",
	KindWhile:          "T_WHILE",
	KindWriteInt:       "T_WI",
	KindWriteChar:      "T_WC",
	KindArrayDecl:      "T_ARRAY_DECL",
	KindPointerDecl:    "T_POINTER_DECL",
	KindCharDecl:       "T_CHAR_DECL",
	KindStringDecl:     "T_STRING_DECL_WITH_STRING",
	KindStringListDecl: "T_STRING_DECL_WITH_ARRAY",
	KindMultiVarDecl:   "T_MULTI_VAR_DECL",
}

func (k CmdKind) String() string {
	if int(k) < NumCmdKinds {
		return cmdKindNames[k]
	}
	return fmt.Sprintf("CmdKind(%d)", k)
}

func (*ConstExpr) Kind() ExprKind      { return KindConst }
func (*VarExpr) Kind() ExprKind        { return KindVar }
func (*BinaryExpr) Kind() ExprKind     { return KindBinary }
func (*UnaryExpr) Kind() ExprKind      { return KindUnary }
func (*DerefExpr) Kind() ExprKind      { return KindDeref }
func (*MallocExpr) Kind() ExprKind     { return KindMalloc }
func (*ReadIntExpr) Kind() ExprKind    { return KindReadInt }
func (*ReadCharExpr) Kind() ExprKind   { return KindReadChar }
func (*IndexExpr) Kind() ExprKind      { return KindIndex }
func (*MultiIndexExpr) Kind() ExprKind { return KindMultiIndex }
func (*InitListExpr) Kind() ExprKind   { return KindInitList }
func (*CharLit) Kind() ExprKind        { return KindChar }
func (*StringLit) Kind() ExprKind      { return KindString }

func (*DeclCmd) Kind() CmdKind           { return KindDecl }
func (*AssignCmd) Kind() CmdKind         { return KindAssign }
func (*SeqCmd) Kind() CmdKind            { return KindSeq }
func (*IfCmd) Kind() CmdKind             { return KindIf }
func (*WhileCmd) Kind() CmdKind          { return KindWhile }
func (*WriteIntCmd) Kind() CmdKind       { return KindWriteInt }
func (*WriteCharCmd) Kind() CmdKind      { return KindWriteChar }
func (*ArrayDeclCmd) Kind() CmdKind      { return KindArrayDecl }
func (*PointerDeclCmd) Kind() CmdKind    { return KindPointerDecl }
func (*CharDeclCmd) Kind() CmdKind       { return KindCharDecl }
func (*StringDeclCmd) Kind() CmdKind     { return KindStringDecl }
func (*StringListDeclCmd) Kind() CmdKind { return KindStringListDecl }
func (*MultiVarDeclCmd) Kind() CmdKind   { return KindMultiVarDecl }
