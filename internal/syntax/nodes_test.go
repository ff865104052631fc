package syntax

import (
	"strings"
	"testing"
)

// sampleExprs holds one expression per variant.
func sampleExprs() []Expr {
	return []Expr{
		NewConst(7),
		NewVar("x"),
		NewBinary(Minus, NewConst(1), NewConst(2)),
		NewUnary(UMinus, NewConst(3)),
		NewDeref(NewVar("p")),
		NewMalloc(NewConst(8)),
		NewReadInt(),
		NewReadChar(),
		NewIndex("a", NewConst(0)),
		NewMultiIndex(NewIndex("a", NewConst(0)), NewConst(1)),
		NewInitListExpr(consts(1)),
		NewChar("'c'"),
		NewString(`"s"`),
	}
}

// sampleCmds holds one command per variant.
func sampleCmds() []Cmd {
	return []Cmd{
		NewDecl("x", nil),
		NewAssign(NewVar("x"), NewConst(1)),
		NewSeq(NewDecl("a", nil), NewDecl("b", nil)),
		NewIf(NewVar("c"), NewDecl("a", nil), NewDecl("b", nil)),
		NewWhile(NewVar("c"), NewDecl("a", nil)),
		NewWriteInt(NewConst(1)),
		NewWriteChar(NewChar("'a'")),
		NewArrayDecl("a", NewConst(1), consts(1)),
		NewPointerDecl("p", 1, NewConst(4)),
		NewCharDecl("c", NewChar("'a'")),
		NewStringDecl("s", Inferred(), NewString(`"a"`)),
		NewStringListDecl("s", Inferred(), chars("'a'")),
		NewMultiVarDecl(NewVarSpecList(NewSimpleVar("v", nil))),
	}
}

// Every variant must have a kind and a printed label.
func TestEveryVariantIsPrinted(t *testing.T) {
	exprs := map[ExprKind]Expr{}
	for _, x := range sampleExprs() {
		exprs[x.Kind()] = x
	}
	for k := 0; k < NumExprKinds; k++ {
		x, ok := exprs[ExprKind(k)]
		if !ok {
			t.Errorf("no sample for %v", ExprKind(k))
			continue
		}
		if strings.HasPrefix(ExprKind(k).String(), "ExprKind(") {
			t.Errorf("kind %d has no name", k)
		}
		lines := Describe(x)
		if len(lines) == 0 || strings.HasPrefix(lines[0].Text, "<") {
			t.Errorf("%v is not printed: %v", ExprKind(k), lines)
		}
	}

	cmds := map[CmdKind]Cmd{}
	for _, c := range sampleCmds() {
		cmds[c.Kind()] = c
	}
	for k := 0; k < NumCmdKinds; k++ {
		c, ok := cmds[CmdKind(k)]
		if !ok {
			t.Errorf("no sample for %v", CmdKind(k))
			continue
		}
		if strings.HasPrefix(CmdKind(k).String(), "CmdKind(") {
			t.Errorf("kind %d has no name", k)
		}
		lines := Describe(c)
		if len(lines) == 0 || strings.HasPrefix(lines[0].Text, "<") {
			t.Errorf("%v is not printed: %v", CmdKind(k), lines)
		}
	}
}

func TestOperatorNames(t *testing.T) {
	for op := BinOp(0); op < binOpCount; op++ {
		got, ok := LookupBinOp(op.String())
		if !ok || got != op {
			t.Errorf("LookupBinOp(%q) = %v, %v", op.String(), got, ok)
		}
	}
	for op := UnOp(0); op < unOpCount; op++ {
		got, ok := LookupUnOp(op.String())
		if !ok || got != op {
			t.Errorf("LookupUnOp(%q) = %v, %v", op.String(), got, ok)
		}
	}
	if _, ok := LookupBinOp("XOR"); ok {
		t.Error("LookupBinOp(XOR) succeeded")
	}
	if got := BinOp(99).String(); got != "BinOp(99)" {
		t.Errorf("BinOp(99).String() = %q", got)
	}
}

func TestPointerDeclWrapsSize(t *testing.T) {
	size := NewBinary(Mul, NewConst(4), NewVar("n"))
	d := NewPointerDecl("p", 1, size)
	m, ok := d.Size.(*MallocExpr)
	if !ok {
		t.Fatalf("Size = %T, want *MallocExpr", d.Size)
	}
	if m.X != Expr(size) {
		t.Errorf("MallocExpr.X = %v, want the size passed in", m.X)
	}

	if d := NewPointerDecl("q", 2, nil); d.Size != nil {
		t.Errorf("static pointer Size = %v, want nil", d.Size)
	}
}
