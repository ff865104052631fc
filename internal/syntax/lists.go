package syntax

// Lists are append-only during tree assembly and must not change once the
// tree is handed to a printer.
//
// Append is O(1) amortized: the lists are backed by slices rather than a
// singly-linked chain that is walked to its tail on every append. Iteration
// order is insertion order either way.

// ExprList is an ordered list of expressions.
type ExprList struct {
	Exprs []Expr
}

// NewExprList returns a list holding the single expression x.
func NewExprList(x Expr) *ExprList {
	return &ExprList{Exprs: []Expr{x}}
}

// Append adds x at the end of l and returns l.
// Appending to a nil list is the same as NewExprList(x).
func (l *ExprList) Append(x Expr) *ExprList {
	if l == nil {
		return NewExprList(x)
	}
	l.Exprs = append(l.Exprs, x)
	return l
}

// Len returns the number of expressions in l. A nil list is empty.
func (l *ExprList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Exprs)
}

// InitList is an initializer list: {a, b, c}. It may be empty.
type InitList struct {
	List *ExprList // nil for {}
}

// NewInitList wraps exprs, which may be nil, in an initializer list.
func NewInitList(exprs *ExprList) *InitList {
	return &InitList{List: exprs}
}

// Len returns the number of initializers.
func (l *InitList) Len() int {
	if l == nil {
		return 0
	}
	return l.List.Len()
}

// Elems returns the initializers in order.
func (l *InitList) Elems() []Expr {
	if l == nil || l.List == nil {
		return nil
	}
	return l.List.Exprs
}

// VarSpecList is the ordered list of variables of a MultiVarDeclCmd.
type VarSpecList struct {
	Specs []VarSpec
}

// NewVarSpecList returns a list holding the single descriptor v.
func NewVarSpecList(v VarSpec) *VarSpecList {
	return &VarSpecList{Specs: []VarSpec{v}}
}

// Append adds v at the end of l and returns l.
// Appending to a nil list is the same as NewVarSpecList(v).
func (l *VarSpecList) Append(v VarSpec) *VarSpecList {
	if l == nil {
		return NewVarSpecList(v)
	}
	l.Specs = append(l.Specs, v)
	return l
}

// Len returns the number of descriptors in l.
func (l *VarSpecList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Specs)
}
