package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex-gitss/CS2612-Final/internal/syntax"
)

func TestDecodeExpr(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want syntax.Node
	}{
		{"const", `const: 42`, syntax.NewConst(42)},
		{"max const", `const: 4294967295`, syntax.NewConst(4294967295)},
		{"var", `var: x`, syntax.NewVar("x")},
		{"binop", `binop: {op: PLUS, left: {var: a}, right: {const: 1}}`,
			syntax.NewBinary(syntax.Plus, syntax.NewVar("a"), syntax.NewConst(1))},
		{"unop", `unop: {op: NOT, arg: {var: b}}`,
			syntax.NewUnary(syntax.Not, syntax.NewVar("b"))},
		{"deref", `deref: {var: p}`, syntax.NewDeref(syntax.NewVar("p"))},
		{"read_int", `read_int: null`, syntax.NewReadInt()},
		{"read_char", `read_char:`, syntax.NewReadChar()},
		{"index", `index: {array: a, index: {const: 3}}`,
			syntax.NewIndex("a", syntax.NewConst(3))},
		{"md_index", `md_index: {object: {index: {array: m, index: {const: 0}}}, index: {const: 1}}`,
			syntax.NewMultiIndex(syntax.NewIndex("m", syntax.NewConst(0)), syntax.NewConst(1))},
		{"quoted char", `char: "'a'"`, syntax.NewChar("'a'")},
		{"bare char", `char: a`, syntax.NewChar("'a'")},
		{"quoted string", `string: '"abc"'`, syntax.NewString(`"abc"`)},
		{"bare string", `string: abc`, syntax.NewString(`"abc"`)},
		{"init_list", `init_list: [{const: 1}, {const: 2}]`,
			syntax.NewInitListExpr(syntax.NewInitList(
				syntax.NewExprList(syntax.NewConst(1)).Append(syntax.NewConst(2))))},
		{"empty init_list", `init_list: []`, syntax.NewInitListExpr(syntax.NewInitList(nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBytes([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSeqFoldsRight(t *testing.T) {
	src := `
seq:
  - decl: {name: a}
  - decl: {name: b}
  - decl: {name: c}
`
	got, err := DecodeBytes([]byte(src))
	require.NoError(t, err)

	want := syntax.NewSeq(
		syntax.NewDecl("a", nil),
		syntax.NewSeq(syntax.NewDecl("b", nil), syntax.NewDecl("c", nil)))
	assert.Equal(t, want, got)
}

func TestDecodeSingleSeq(t *testing.T) {
	got, err := DecodeBytes([]byte(`seq: [{write_int: {const: 1}}]`))
	require.NoError(t, err)
	assert.Equal(t, syntax.NewWriteInt(syntax.NewConst(1)), got)
}

func TestDecodeStringSizes(t *testing.T) {
	got, err := DecodeBytes([]byte(`string_decl: {name: s, init: {string: '"ab"'}}`))
	require.NoError(t, err)
	assert.Equal(t, syntax.Inferred(), got.(*syntax.StringDeclCmd).Size)

	got, err = DecodeBytes([]byte(`string_list_decl: {name: s, size: {const: 3}, init: [{char: x}]}`))
	require.NoError(t, err)
	assert.Equal(t, syntax.Explicit(syntax.NewConst(3)), got.(*syntax.StringListDeclCmd).Size)
}

func TestDecodePointerDeclWrapsSize(t *testing.T) {
	got, err := DecodeBytes([]byte(`pointer_decl: {name: p, level: 2, size: {const: 8}}`))
	require.NoError(t, err)

	p, ok := got.(*syntax.PointerDeclCmd)
	require.True(t, ok)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, syntax.NewMalloc(syntax.NewConst(8)), p.Size)
}

func TestDecodeMultiDecl(t *testing.T) {
	src := `
multi_decl:
  - simple: {name: a, init: {const: 1}}
  - array: {name: b, dims: [{const: 2}, null], init: [{const: 1}]}
  - pointer: {name: c, level: 1}
`
	got, err := DecodeBytes([]byte(src))
	require.NoError(t, err)

	dims := syntax.NewExprList(syntax.NewConst(2)).Append(nil)
	want := syntax.NewMultiVarDecl(
		syntax.NewVarSpecList(syntax.NewSimpleVar("a", syntax.NewConst(1))).
			Append(syntax.NewArrayVar("b", dims, syntax.NewInitList(syntax.NewExprList(syntax.NewConst(1))))).
			Append(syntax.NewPointerVar("c", 1, nil)))
	assert.Equal(t, want, got)
}

func TestDecodeAliasesDoNotShare(t *testing.T) {
	src := `
seq:
  - write_int: &one {const: 1}
  - write_int: *one
`
	got, err := DecodeBytes([]byte(src))
	require.NoError(t, err)

	seq := got.(*syntax.SeqCmd)
	a := seq.First.(*syntax.WriteIntCmd).X
	b := seq.Second.(*syntax.WriteIntCmd).X
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
}

func TestDecodeRecursiveAlias(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"seq", "seq: &a\n  - decl: {name: x}\n  - seq: *a\n"},
		{"expr", "unop: &u {op: NOT, arg: {unop: *u}}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.src))
			require.Error(t, err)

			var e *Error
			require.True(t, errors.As(err, &e), "error %v has no position", err)
			assert.Contains(t, e.Msg, "recursive alias")
			assert.True(t, e.Pos.IsValid())
		})
	}
}

func TestDecodeAliasExpansionLimit(t *testing.T) {
	// Each level holds ten aliases of the level below: 10^8 nodes in all.
	var b strings.Builder
	b.WriteString("init_list:\n")
	b.WriteString("  - init_list: &l0 [{const: 1}, {const: 1}, {const: 1}, {const: 1}, {const: 1}, {const: 1}, {const: 1}, {const: 1}, {const: 1}, {const: 1}]\n")
	for i := 1; i <= 7; i++ {
		refs := make([]string, 10)
		for j := range refs {
			refs[j] = fmt.Sprintf("{init_list: *l%d}", i-1)
		}
		fmt.Fprintf(&b, "  - init_list: &l%d [%s]\n", i, strings.Join(refs, ", "))
	}

	_, err := DecodeBytes([]byte(b.String()))
	require.Error(t, err)
	var e *Error
	require.True(t, errors.As(err, &e), "error %v has no position", err)
	assert.Contains(t, e.Msg, "aliases expand to more than")
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown node", `frob: 1`, `unknown command "frob"`},
		{"two keys", `{var: x, const: 1}`, "want a mapping with one key"},
		{"bad operator", `binop: {op: POW, left: {const: 1}, right: {const: 2}}`, `unknown binary operator "POW"`},
		{"bad unary operator", `unop: {op: PLUS, arg: {const: 1}}`, `unknown unary operator "PLUS"`},
		{"missing name", `decl: {init: {const: 1}}`, "missing name"},
		{"unknown key", `decl: {name: x, value: {const: 1}}`, `unknown key "value"`},
		{"empty seq", `seq: []`, "seq: empty"},
		{"bad level", `pointer_decl: {name: p, level: two}`, "level"},
		{"non-digit const", `const: 12a`, "const 12a"},
		{"bad var kind", `multi_decl: [{struct: {name: s}}]`, `unknown variable kind "struct"`},
		{"list not sequence", `array_decl: {name: a, init: {const: 1}}`, "want a sequence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var e *Error
			require.True(t, errors.As(err, &e), "error %v has no position", err)
			assert.True(t, e.Pos.IsValid())
		})
	}
}

func TestDecodeConstOverflow(t *testing.T) {
	_, err := DecodeBytes([]byte("seq:\n  - write_int: {const: 4294967296}\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, syntax.ErrNatOverflow))
	assert.True(t, strings.HasPrefix(err.Error(), "2:"), err.Error())
}

func TestDecodeEmpty(t *testing.T) {
	for _, src := range []string{"", "  \n", "null", "~"} {
		_, err := DecodeBytes([]byte(src))
		assert.ErrorIs(t, err, ErrEmpty, "source %q", src)
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`decl: {name: x, init: {const: 5}}`), 0o644))

	got, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, syntax.NewDecl("x", syntax.NewConst(5)), got)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeFileErrorPos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seq:\n  - frob: 1\n"), 0o644))

	_, err := DecodeFile(path)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, Pos{File: path, Line: 2, Col: 5}, e.Pos)
	assert.Equal(t, path+`:2:5: unknown command "frob"`, err.Error())
}

// JSON written by syntax.FprintJSON reads back into an equal tree.
func TestJSONRoundTrip(t *testing.T) {
	chars := syntax.NewExprList(syntax.NewChar("'h'")).Append(syntax.NewChar("'i'"))
	dims := syntax.NewExprList(syntax.NewConst(2)).Append(nil)

	stmts := []syntax.Cmd{
		syntax.NewDecl("x", syntax.NewBinary(syntax.Mul, syntax.NewVar("y"), syntax.NewConst(3))),
		syntax.NewAssign(syntax.NewDeref(syntax.NewVar("p")), syntax.NewUnary(syntax.UMinus, syntax.NewReadInt())),
		syntax.NewIf(
			syntax.NewBinary(syntax.Lt, syntax.NewVar("x"), syntax.NewConst(10)),
			syntax.NewWriteChar(syntax.NewChar("'y'")),
			syntax.NewWriteChar(syntax.NewReadChar())),
		syntax.NewWhile(syntax.NewVar("x"), syntax.NewAssign(syntax.NewVar("x"), syntax.NewConst(0))),
		syntax.NewArrayDecl("a", syntax.NewConst(2),
			syntax.NewInitList(syntax.NewExprList(syntax.NewConst(1)).Append(syntax.NewConst(2)))),
		syntax.NewPointerDecl("q", 1, syntax.NewConst(4)),
		syntax.NewPointerDecl("r", 2, nil),
		syntax.NewCharDecl("c", syntax.NewChar("'z'")),
		syntax.NewStringDecl("s", syntax.Inferred(), syntax.NewString(`"abcde"`)),
		syntax.NewStringDecl("t", syntax.Explicit(syntax.NewConst(3)), syntax.NewString(`"abcde"`)),
		syntax.NewStringListDecl("u", syntax.Inferred(), syntax.NewInitList(chars)),
		syntax.NewMultiVarDecl(
			syntax.NewVarSpecList(syntax.NewSimpleVar("m", nil)).
				Append(syntax.NewArrayVar("n", dims, nil)).
				Append(syntax.NewPointerVar("o", 3, syntax.NewMalloc(syntax.NewConst(1))))),
		syntax.NewWriteInt(syntax.NewMultiIndex(syntax.NewIndex("a", syntax.NewConst(0)), syntax.NewConst(1))),
	}
	var tree syntax.Cmd = stmts[len(stmts)-1]
	for i := len(stmts) - 2; i >= 0; i-- {
		tree = syntax.NewSeq(stmts[i], tree)
	}

	var buf bytes.Buffer
	require.NoError(t, syntax.FprintJSON(&buf, tree))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, tree, got)
	assert.Equal(t, syntax.Sprint(tree), syntax.Sprint(got))
}
