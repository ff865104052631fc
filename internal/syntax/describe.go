package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// LineKind classifies a line of a tree dump.
type LineKind uint8

const (
	LineCmd       LineKind = iota // command label: DECL(x)
	LineExpr                      // expression label: CONST(1)
	LineRole                      // header introducing a child: Left:
	LineValue                     // plain payload: a size, None, Empty List
	LineClose                     // ")" closing IF, WHILE and WRITE_*
	LineSizeError                 // MsgSizeExceeded
	LineSizeOK                    // MsgSizeOK
	LineBlank                     // separator after each command
)

// Line is one line of a tree dump before it is turned into text.
type Line struct {
	Depth int
	Kind  LineKind
	Text  string
}

// Indented reports whether the line is printed after Depth indent markers.
// Size diagnostics and blank separators start at column 0.
func (l Line) Indented() bool {
	switch l.Kind {
	case LineSizeError, LineSizeOK, LineBlank:
		return false
	}
	return true
}

// Describe returns the lines of the tree dump of node, starting at depth 0.
func Describe(node Node) []Line {
	d := &describer{}
	d.node(node, 0)
	return d.lines
}

type describer struct {
	lines []Line
}

func (d *describer) add(depth int, kind LineKind, text string) {
	d.lines = append(d.lines, Line{Depth: depth, Kind: kind, Text: text})
}

func (d *describer) addf(depth int, kind LineKind, format string, args ...interface{}) {
	d.add(depth, kind, fmt.Sprintf(format, args...))
}

func (d *describer) node(n Node, depth int) {
	switch n := n.(type) {
	case Expr:
		d.expr(n, depth)
	case Cmd:
		d.cmd(n, depth)
	}
}

// child prints a role header one level down and x below it.
func (d *describer) child(role string, x Expr, depth int) {
	d.add(depth+1, LineRole, role)
	d.expr(x, depth+2)
}

func (d *describer) expr(x Expr, depth int) {
	if x == nil {
		return
	}

	switch x := x.(type) {
	case *ConstExpr:
		d.addf(depth, LineExpr, "CONST(%d)", x.Value)

	case *VarExpr:
		d.addf(depth, LineExpr, "VAR(%s)", x.Name)

	case *BinaryExpr:
		d.add(depth, LineExpr, x.Op.String())
		d.child("Left:", x.X, depth)
		d.child("Right:", x.Y, depth)

	case *UnaryExpr:
		d.add(depth, LineExpr, x.Op.String())
		d.child("Arg:", x.X, depth)

	case *DerefExpr:
		d.add(depth, LineExpr, "DEREF")
		d.expr(x.X, depth+1)

	case *MallocExpr:
		d.add(depth, LineExpr, "MALLOC")
		d.expr(x.X, depth+1)

	case *ReadIntExpr:
		d.add(depth, LineExpr, "READ_INT()")

	case *ReadCharExpr:
		d.add(depth, LineExpr, "READ_CHAR()")

	case *IndexExpr:
		d.addf(depth, LineExpr, "ARRAY(%s)", x.Array)
		d.child("Index:", x.Index, depth)

	case *MultiIndexExpr:
		d.add(depth, LineExpr, "ARRAY")
		d.child("Object:", x.X, depth)
		d.child("Index:", x.Index, depth)

	case *StringLit:
		d.addf(depth, LineExpr, "STRING(%s)", x.Lit)

	case *CharLit:
		d.addf(depth, LineExpr, "CHAR('%s')", charText(x.Lit))

	case *InitListExpr:
		d.add(depth, LineExpr, "INIT_LIST")
		d.initList(x.List, depth+1)

	default:
		d.addf(depth, LineExpr, "<%T>", x)
	}
}

// initList prints the elements of l at depth, without a header.
func (d *describer) initList(l *InitList, depth int) {
	if l.Len() == 0 {
		d.add(depth, LineValue, "Empty List")
		return
	}
	for _, x := range l.Elems() {
		d.expr(x, depth)
	}
}

// charList prints a character initializer under a CHAR_LIST header.
func (d *describer) charList(l *InitList, depth int) {
	d.add(depth, LineExpr, "CHAR_LIST")
	for _, x := range l.Elems() {
		d.expr(x, depth+1)
	}
}

func (d *describer) cmd(c Cmd, depth int) {
	if c == nil {
		return
	}

	switch c := c.(type) {
	case *DeclCmd:
		d.addf(depth, LineCmd, "DECL(%s)", c.Name)
		if c.Init != nil {
			d.child("Init Expr:", c.Init, depth)
		}

	case *AssignCmd:
		d.add(depth, LineCmd, "ASGN")
		d.child("Left:", c.LHS, depth)
		d.child("Right:", c.RHS, depth)

	case *SeqCmd:
		// Both halves stay at the current depth so that a statement
		// list prints flat.
		d.cmd(c.First, depth)
		d.cmd(c.Second, depth)

	case *IfCmd:
		d.add(depth, LineCmd, "IF(")
		d.child("Condition:", c.Cond, depth)
		d.add(depth+1, LineRole, "True Branch:")
		d.cmd(c.Then, depth+2)
		d.add(depth+1, LineRole, "False Branch:")
		d.cmd(c.Else, depth+2)
		d.add(depth, LineClose, ")")

	case *WhileCmd:
		d.add(depth, LineCmd, "WHILE(")
		d.child("Condition:", c.Cond, depth)
		d.add(depth+1, LineRole, "Body:")
		d.cmd(c.Body, depth+2)
		d.add(depth, LineClose, ")")

	case *WriteIntCmd:
		d.add(depth, LineCmd, "WRITE_INT(")
		d.expr(c.X, depth+1)
		d.add(depth, LineClose, ")")

	case *WriteCharCmd:
		d.add(depth, LineCmd, "WRITE_CHAR(")
		d.expr(c.X, depth+1)
		d.add(depth, LineClose, ")")

	case *ArrayDeclCmd:
		d.addf(depth, LineCmd, "ARR_DECL(%s)", c.Name)
		if c.Size != nil {
			d.child("Size:", c.Size, depth)
		}
		if c.Init != nil {
			d.add(depth+1, LineRole, "Init Expr:")
			d.initList(c.Init, depth+2)
		}
		d.sizeCheck(c, depth)

	case *PointerDeclCmd:
		d.addf(depth, LineCmd, "PTR_DECL(%s, level: %d)", c.Name, c.Level)
		if c.Size != nil {
			d.child("Size Expr:", c.Size, depth)
		}

	case *CharDeclCmd:
		d.addf(depth, LineCmd, "CHAR_DECL(%s)", c.Name)
		if c.Init != nil {
			d.child("Init Char:", c.Init, depth)
		}

	case *StringDeclCmd:
		d.addf(depth, LineCmd, "STRING_DECL(%s)", c.Name)
		if c.Init == nil {
			if s, ok := c.Size.(ExplicitSize); ok {
				d.mallocSize(s.X, 0, depth)
			}
			break
		}
		d.stringSize(c, c.Size, depth)
		d.child("Init String:", c.Init, depth)
		d.sizeCheck(c, depth)

	case *StringListDeclCmd:
		d.addf(depth, LineCmd, "STRING_DECL(%s)", c.Name)
		if c.Init == nil {
			break
		}
		d.stringSize(c, c.Size, depth)
		d.add(depth+1, LineRole, "Init String:")
		d.charList(c.Init, depth+2)
		d.sizeCheck(c, depth)

	case *MultiVarDeclCmd:
		d.add(depth, LineCmd, "DECLARATION")
		if c.Vars != nil {
			for _, v := range c.Vars.Specs {
				d.varSpec(v, depth+1)
			}
		}

	default:
		d.addf(depth, LineCmd, "<%T>", c)
	}
	d.add(depth, LineBlank, "")
}

// stringSize prints the Malloc Size block of a string declaration with an
// initializer.
func (d *describer) stringSize(c Cmd, s Size, depth int) {
	if check, ok := CheckDecl(c); ok {
		d.mallocSize(nil, check.Capacity, depth)
		return
	}
	if s, ok := s.(ExplicitSize); ok {
		d.mallocSize(s.X, 0, depth)
	}
}

// mallocSize prints the capacity n, or the size expression x when x is not
// a constant.
func (d *describer) mallocSize(x Expr, n uint32, depth int) {
	d.add(depth+1, LineRole, "Malloc Size:")
	if x != nil {
		if v, ok := constValue(x); ok {
			n = v
		} else {
			d.expr(x, depth+2)
			return
		}
	}
	d.add(depth+2, LineValue, strconv.FormatUint(uint64(n), 10))
}

func (d *describer) sizeCheck(c Cmd, depth int) {
	check, ok := CheckDecl(c)
	if !ok {
		return
	}
	if check.Exceeds() {
		d.add(depth, LineSizeError, MsgSizeExceeded)
	} else {
		d.add(depth, LineSizeOK, MsgSizeOK)
	}
}

func (d *describer) varSpec(v VarSpec, depth int) {
	d.add(depth, LineRole, "Object:")
	switch v := v.(type) {
	case *SimpleVar:
		d.addf(depth+1, LineExpr, "VAR(%s)", v.Name)
		d.add(depth, LineRole, "Init Expr:")
		d.optExpr(v.Init, depth+1)

	case *ArrayVar:
		var b strings.Builder
		for _, dim := range v.Dims {
			b.WriteString("[" + inlineLabel(dim) + "]")
		}
		d.addf(depth+1, LineExpr, "ARRAY(%s%s)", v.Name, b.String())
		d.add(depth, LineRole, "Init List:")
		if v.Init != nil {
			d.initList(v.Init, depth+1)
		} else {
			d.add(depth+1, LineValue, "None")
		}

	case *PointerVar:
		d.addf(depth+1, LineExpr, "PTR(%s, level: %d)", v.Name, v.Level)
		d.add(depth, LineRole, "Init Expr:")
		d.optExpr(v.Init, depth+1)

	default:
		d.addf(depth+1, LineExpr, "<%T>", v)
	}
}

func (d *describer) optExpr(x Expr, depth int) {
	if x == nil {
		d.add(depth, LineValue, "None")
		return
	}
	d.expr(x, depth)
}

// inlineLabel is the one-line label of x used inside an array dimension.
func inlineLabel(x Expr) string {
	if x == nil {
		return ""
	}
	lines := Describe(x)
	if len(lines) == 0 {
		return ""
	}
	return lines[0].Text
}

// charText returns the text between the quotes of a character literal.
func charText(lit string) string {
	if len(lit) >= 2 && lit[0] == '\'' && lit[len(lit)-1] == '\'' {
		return lit[1 : len(lit)-1]
	}
	return lit
}
