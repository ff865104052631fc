package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// Expressions held by initializer lists and variable descriptors are
// visited as children of the node that owns the list.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *DerefExpr:
		Walk(n.X, v)

	case *MallocExpr:
		Walk(n.X, v)

	case *IndexExpr:
		Walk(n.Index, v)

	case *MultiIndexExpr:
		Walk(n.X, v)
		Walk(n.Index, v)

	case *InitListExpr:
		walkList(n.List, v)

	case *DeclCmd:
		Walk(n.Init, v)

	case *AssignCmd:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	case *SeqCmd:
		Walk(n.First, v)
		Walk(n.Second, v)

	case *IfCmd:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *WhileCmd:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *WriteIntCmd:
		Walk(n.X, v)

	case *WriteCharCmd:
		Walk(n.X, v)

	case *ArrayDeclCmd:
		Walk(n.Size, v)
		walkList(n.Init, v)

	case *PointerDeclCmd:
		Walk(n.Size, v)

	case *CharDeclCmd:
		Walk(n.Init, v)

	case *StringDeclCmd:
		if s, ok := n.Size.(ExplicitSize); ok {
			Walk(s.X, v)
		}
		Walk(n.Init, v)

	case *StringListDeclCmd:
		if s, ok := n.Size.(ExplicitSize); ok {
			Walk(s.X, v)
		}
		walkList(n.Init, v)

	case *MultiVarDeclCmd:
		if n.Vars == nil {
			return
		}
		for _, spec := range n.Vars.Specs {
			switch s := spec.(type) {
			case *SimpleVar:
				Walk(s.Init, v)
			case *ArrayVar:
				for _, d := range s.Dims {
					Walk(d, v)
				}
				walkList(s.Init, v)
			case *PointerVar:
				Walk(s.Init, v)
			}
		}

		// Leaf nodes: ConstExpr, VarExpr, ReadIntExpr, ReadCharExpr, CharLit, StringLit
		// No children to visit
	}
}

func walkList(l *InitList, v Visitor) {
	for _, x := range l.Elems() {
		Walk(x, v)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
