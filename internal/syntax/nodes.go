// Package syntax implements the abstract syntax tree of the toy imperative
// language: node types, their constructors, and a diagnostic tree dump that
// also checks declared sizes against initializers.
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 main classes of nodes: Expressions and Commands.
// All nodes implement the Node interface. Expression and Command nodes
// further implement their respective interfaces.

// Node is the interface implemented by all AST nodes.
type Node interface {
	aNode() // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	Kind() ExprKind
	aExpr()
}

// Cmd is the interface for all command nodes.
type Cmd interface {
	Node
	Kind() CmdKind
	aCmd()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct{}

func (*node) aNode() {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// cmd is embedded in all command nodes.
type cmd struct{ node }

func (*cmd) aCmd() {}

// ----------------------------------------------------------------------------
// Expressions

// ConstExpr is an unsigned integer constant.
type ConstExpr struct {
	expr
	Value uint32
}

// VarExpr is a reference to a variable by name.
type VarExpr struct {
	expr
	Name string
}

// BinaryExpr represents X Op Y.
type BinaryExpr struct {
	expr
	Op BinOp
	X  Expr // left operand
	Y  Expr // right operand
}

// UnaryExpr represents Op X.
type UnaryExpr struct {
	expr
	Op UnOp
	X  Expr
}

// DerefExpr represents *X.
type DerefExpr struct {
	expr
	X Expr
}

// MallocExpr requests X bytes from the heap.
type MallocExpr struct {
	expr
	X Expr // size in bytes
}

// ReadIntExpr reads an integer from input.
type ReadIntExpr struct {
	expr
}

// ReadCharExpr reads a character from input.
type ReadCharExpr struct {
	expr
}

// IndexExpr is a single-dimension array access: Array[Index].
type IndexExpr struct {
	expr
	Array string
	Index Expr
}

// MultiIndexExpr is one more dimension of an array access: X[Index].
// X is an IndexExpr or another MultiIndexExpr.
type MultiIndexExpr struct {
	expr
	X     Expr
	Index Expr
}

// CharLit is a character literal. Lit keeps the quotes: 'a'.
type CharLit struct {
	expr
	Lit string
}

// StringLit is a string literal. Lit keeps the quotes: "abc".
type StringLit struct {
	expr
	Lit string
}

// InitListExpr wraps an initializer list used as an expression: {a, b, c}.
type InitListExpr struct {
	expr
	List *InitList
}

// ----------------------------------------------------------------------------
// Commands

// DeclCmd declares a simple variable: var Name [= Init].
type DeclCmd struct {
	cmd
	Name string
	Init Expr // nil if none
}

// AssignCmd represents LHS = RHS.
type AssignCmd struct {
	cmd
	LHS Expr
	RHS Expr
}

// SeqCmd runs First then Second.
// A statement list is encoded as a binary tree of SeqCmd nodes.
type SeqCmd struct {
	cmd
	First  Cmd
	Second Cmd
}

// IfCmd represents if (Cond) Then else Else.
type IfCmd struct {
	cmd
	Cond Expr
	Then Cmd
	Else Cmd
}

// WhileCmd represents while (Cond) Body.
type WhileCmd struct {
	cmd
	Cond Expr
	Body Cmd
}

// WriteIntCmd writes X as an integer.
type WriteIntCmd struct {
	cmd
	X Expr
}

// WriteCharCmd writes X as a character.
type WriteCharCmd struct {
	cmd
	X Expr
}

// ArrayDeclCmd declares an array: Name[Size] = {Init...}.
type ArrayDeclCmd struct {
	cmd
	Name string
	Size Expr      // nil if not given
	Init *InitList // nil if none
}

// PointerDeclCmd declares a pointer with Level levels of indirection.
// A non-nil Size is always a *MallocExpr: the pointer is dynamically allocated.
type PointerDeclCmd struct {
	cmd
	Name  string
	Level int
	Size  Expr
}

// CharDeclCmd declares a character variable.
type CharDeclCmd struct {
	cmd
	Name string
	Init Expr // nil if none
}

// StringDeclCmd declares a string initialized from a quoted literal.
type StringDeclCmd struct {
	cmd
	Name string
	Size Size
	Init Expr // usually a *StringLit; nil if none
}

// StringListDeclCmd declares a string initialized from a list of characters.
type StringListDeclCmd struct {
	cmd
	Name string
	Size Size
	Init *InitList // nil if none
}

// MultiVarDeclCmd declares several variables in one statement.
type MultiVarDeclCmd struct {
	cmd
	Vars *VarSpecList
}

// ----------------------------------------------------------------------------
// Declared sizes

// Size is the declared capacity of a string declaration:
// either ExplicitSize or InferredSize.
type Size interface {
	aSize()
}

// ExplicitSize is a capacity written in the source.
type ExplicitSize struct {
	X Expr
}

// InferredSize means the capacity is taken from the initializer.
type InferredSize struct{}

func (ExplicitSize) aSize() {}
func (InferredSize) aSize() {}

// ----------------------------------------------------------------------------
// Variable descriptors

// VarSpec describes one variable of a MultiVarDeclCmd:
// SimpleVar, ArrayVar or PointerVar.
type VarSpec interface {
	VarName() string
	aVarSpec()
}

// SimpleVar is a plain variable with an optional initializer.
type SimpleVar struct {
	Name string
	Init Expr // nil if none
}

// ArrayVar is an array with one size per dimension.
// A nil entry in Dims is an unbounded dimension: a[][3].
type ArrayVar struct {
	Name string
	Dims []Expr
	Init *InitList // nil if none
}

// PointerVar is a pointer with Level levels of indirection.
type PointerVar struct {
	Name  string
	Level int
	Init  Expr // nil if none
}

func (v *SimpleVar) VarName() string  { return v.Name }
func (v *ArrayVar) VarName() string   { return v.Name }
func (v *PointerVar) VarName() string { return v.Name }

func (*SimpleVar) aVarSpec()  {}
func (*ArrayVar) aVarSpec()   {}
func (*PointerVar) aVarSpec() {}
