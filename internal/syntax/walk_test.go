package syntax

import (
	"fmt"
	"reflect"
	"testing"
)

func TestWalkOrder(t *testing.T) {
	tree := NewSeq(
		NewDecl("x", NewBinary(Plus, NewConst(1), NewVar("y"))),
		NewMultiVarDecl(
			NewVarSpecList(NewArrayVar("a", NewExprList(NewConst(2)), consts(3))).
				Append(NewPointerVar("p", 1, NewVar("q"))),
		),
	)

	var got []string
	Inspect(tree, func(n Node) bool {
		switch n := n.(type) {
		case Expr:
			got = append(got, n.Kind().String())
		case Cmd:
			got = append(got, n.Kind().String())
		}
		return true
	})

	want := []string{
		"T_SEQ", "T_DECL", "T_BINOP", "T_CONST", "T_VAR",
		"T_MULTI_VAR_DECL", "T_CONST", "T_CONST", "T_VAR",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("walk order = %v, want %v", got, want)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := NewIf(NewVar("c"), NewWriteInt(NewConst(1)), NewWriteInt(NewConst(2)))
	count := 0
	Inspect(tree, func(n Node) bool {
		count++
		_, isWrite := n.(*WriteIntCmd)
		return !isWrite
	})
	// IfCmd, VarExpr, two WriteIntCmd; the constants are not visited.
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}
}

// Describing a tree by recursive traversal gives back the construction calls.
func TestTraversalReconstructsShape(t *testing.T) {
	tree := NewAssign(NewIndex("a", NewVar("i")), NewUnary(UMinus, NewDeref(NewVar("p"))))
	var shape string
	var visit func(n Node) string
	visit = func(n Node) string {
		switch n := n.(type) {
		case *AssignCmd:
			return fmt.Sprintf("Assign(%s,%s)", visit(n.LHS), visit(n.RHS))
		case *IndexExpr:
			return fmt.Sprintf("Index(%s,%s)", n.Array, visit(n.Index))
		case *UnaryExpr:
			return fmt.Sprintf("Unary(%s,%s)", n.Op, visit(n.X))
		case *DerefExpr:
			return fmt.Sprintf("Deref(%s)", visit(n.X))
		case *VarExpr:
			return n.Name
		}
		return "?"
	}
	shape = visit(tree)
	if want := "Assign(Index(a,i),Unary(UMINUS,Deref(p)))"; shape != want {
		t.Errorf("shape = %s, want %s", shape, want)
	}
}
