package syntax

// Constructors. Each call allocates exactly one node and never fails;
// arguments are stored as given and are not validated.

func NewConst(v uint32) *ConstExpr    { return &ConstExpr{Value: v} }
func NewVar(name string) *VarExpr     { return &VarExpr{Name: name} }
func NewDeref(x Expr) *DerefExpr      { return &DerefExpr{X: x} }
func NewMalloc(x Expr) *MallocExpr    { return &MallocExpr{X: x} }
func NewReadInt() *ReadIntExpr        { return &ReadIntExpr{} }
func NewReadChar() *ReadCharExpr      { return &ReadCharExpr{} }
func NewChar(lit string) *CharLit     { return &CharLit{Lit: lit} }
func NewString(lit string) *StringLit { return &StringLit{Lit: lit} }

// NewBinary returns the expression x op y.
func NewBinary(op BinOp, x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, X: x, Y: y}
}

// NewUnary returns the expression op x.
func NewUnary(op UnOp, x Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, X: x}
}

// NewIndex returns the array access array[index].
func NewIndex(array string, index Expr) *IndexExpr {
	return &IndexExpr{Array: array, Index: index}
}

// NewMultiIndex adds one dimension to the array access x: x[index].
func NewMultiIndex(x, index Expr) *MultiIndexExpr {
	return &MultiIndexExpr{X: x, Index: index}
}

// NewInitListExpr wraps an initializer list as an expression.
func NewInitListExpr(list *InitList) *InitListExpr {
	return &InitListExpr{List: list}
}

func NewDecl(name string, init Expr) *DeclCmd { return &DeclCmd{Name: name, Init: init} }
func NewAssign(lhs, rhs Expr) *AssignCmd      { return &AssignCmd{LHS: lhs, RHS: rhs} }
func NewSeq(first, second Cmd) *SeqCmd        { return &SeqCmd{First: first, Second: second} }
func NewWhile(cond Expr, body Cmd) *WhileCmd  { return &WhileCmd{Cond: cond, Body: body} }
func NewWriteInt(x Expr) *WriteIntCmd         { return &WriteIntCmd{X: x} }
func NewWriteChar(x Expr) *WriteCharCmd       { return &WriteCharCmd{X: x} }

// NewIf returns if (cond) then else els.
func NewIf(cond Expr, then, els Cmd) *IfCmd {
	return &IfCmd{Cond: cond, Then: then, Else: els}
}

// NewArrayDecl declares name[size] = init. Size and init may be nil.
func NewArrayDecl(name string, size Expr, init *InitList) *ArrayDeclCmd {
	return &ArrayDeclCmd{Name: name, Size: size, Init: init}
}

// NewPointerDecl declares a pointer of the given level. A non-nil size is
// wrapped in a MallocExpr, so callers pass the raw byte count.
func NewPointerDecl(name string, level int, size Expr) *PointerDeclCmd {
	d := &PointerDeclCmd{Name: name, Level: level}
	if size != nil {
		d.Size = NewMalloc(size)
	}
	return d
}

// NewCharDecl declares a character variable.
func NewCharDecl(name string, init Expr) *CharDeclCmd {
	return &CharDeclCmd{Name: name, Init: init}
}

// NewStringDecl declares a string initialized from a quoted literal.
func NewStringDecl(name string, size Size, init Expr) *StringDeclCmd {
	return &StringDeclCmd{Name: name, Size: size, Init: init}
}

// NewStringListDecl declares a string initialized from a character list.
func NewStringListDecl(name string, size Size, init *InitList) *StringListDeclCmd {
	return &StringListDeclCmd{Name: name, Size: size, Init: init}
}

// NewMultiVarDecl declares all variables of vars in one statement.
func NewMultiVarDecl(vars *VarSpecList) *MultiVarDeclCmd {
	return &MultiVarDeclCmd{Vars: vars}
}

// Explicit returns the declared size x.
func Explicit(x Expr) Size { return ExplicitSize{X: x} }

// Inferred returns the size that is taken from the initializer.
func Inferred() Size { return InferredSize{} }

// NewSimpleVar, NewArrayVar and NewPointerVar build the descriptors stored
// in a VarSpecList.

func NewSimpleVar(name string, init Expr) *SimpleVar {
	return &SimpleVar{Name: name, Init: init}
}

func NewArrayVar(name string, dims *ExprList, init *InitList) *ArrayVar {
	v := &ArrayVar{Name: name, Init: init}
	if dims != nil {
		v.Dims = dims.Exprs
	}
	return v
}

func NewPointerVar(name string, level int, init Expr) *PointerVar {
	return &PointerVar{Name: name, Level: level, Init: init}
}
