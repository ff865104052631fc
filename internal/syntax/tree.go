package syntax

import (
	"io"

	"github.com/disiqueira/gotree/v3"
)

// TreeRoot labels the root of a box-drawing tree view.
const TreeRoot = "AST"

// FprintTree writes node as a box-drawing tree. It shows the same lines as
// Fprint; size diagnostics hang below the declaration they belong to, and
// closing parentheses and blank separators are left out.
func FprintTree(w io.Writer, node Node) error {
	_, err := io.WriteString(w, BuildTree(Describe(node)).Print())
	return err
}

// BuildTree arranges described lines into a gotree.Tree.
func BuildTree(lines []Line) gotree.Tree {
	root := gotree.New(TreeRoot)
	// stack[i] is the parent for lines at depth i.
	stack := []gotree.Tree{root}
	for _, l := range lines {
		depth := l.Depth
		switch l.Kind {
		case LineBlank, LineClose:
			continue
		case LineSizeError, LineSizeOK:
			depth++
		}
		if depth >= len(stack) {
			depth = len(stack) - 1
		}
		t := stack[depth].Add(l.Text)
		stack = append(stack[:depth+1], t)
	}
	return root
}
