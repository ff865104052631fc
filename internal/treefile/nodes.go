package treefile

import (
	"gopkg.in/yaml.v3"

	"github.com/Alex-gitss/CS2612-Final/internal/syntax"
)

type exprDecoder func(v *yaml.Node) (syntax.Expr, error)

type cmdDecoder func(v *yaml.Node) (syntax.Cmd, error)

var (
	exprDecoders map[string]exprDecoder
	cmdDecoders  map[string]cmdDecoder
)

func init() {
	exprDecoders = map[string]exprDecoder{
		"const":     decodeConst,
		"var":       decodeVar,
		"binop":     decodeBinary,
		"unop":      decodeUnary,
		"deref":     decodeDeref,
		"malloc":    decodeMalloc,
		"read_int":  func(*yaml.Node) (syntax.Expr, error) { return syntax.NewReadInt(), nil },
		"read_char": func(*yaml.Node) (syntax.Expr, error) { return syntax.NewReadChar(), nil },
		"index":     decodeIndex,
		"md_index":  decodeMultiIndex,
		"char":      decodeChar,
		"string":    decodeString,
		"init_list": decodeInitListExpr,
	}
	cmdDecoders = map[string]cmdDecoder{
		"decl":             decodeDecl,
		"assign":           decodeAssign,
		"seq":              decodeSeq,
		"if":               decodeIf,
		"while":            decodeWhile,
		"write_int":        decodeWriteInt,
		"write_char":       decodeWriteChar,
		"array_decl":       decodeArrayDecl,
		"pointer_decl":     decodePointerDecl,
		"char_decl":        decodeCharDecl,
		"string_decl":      decodeStringDecl,
		"string_list_decl": decodeStringListDecl,
		"multi_decl":       decodeMultiVarDecl,
	}
}

// decodeExpr decodes an expression. Null decodes to a nil expression.
func decodeExpr(n *yaml.Node) (syntax.Expr, error) {
	if isNull(n) {
		return nil, nil
	}
	key, v, err := variant(n)
	if err != nil {
		return nil, err
	}
	dec, ok := exprDecoders[key]
	if !ok {
		return nil, errorf(n, "unknown expression %q", key)
	}
	return dec(v)
}

// decodeCmd decodes a command. Null decodes to a nil command.
func decodeCmd(n *yaml.Node) (syntax.Cmd, error) {
	if isNull(n) {
		return nil, nil
	}
	key, v, err := variant(n)
	if err != nil {
		return nil, err
	}
	dec, ok := cmdDecoders[key]
	if !ok {
		return nil, errorf(n, "unknown command %q", key)
	}
	return dec(v)
}

func decodeInitList(n *yaml.Node) (*syntax.InitList, error) {
	items, err := sequence(n, "initializer list")
	if err != nil {
		return nil, err
	}
	var list *syntax.ExprList
	for _, item := range items {
		x, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		list = list.Append(x)
	}
	return syntax.NewInitList(list), nil
}

// ----------------------------------------------------------------------------
// Expressions

func decodeConst(v *yaml.Node) (syntax.Expr, error) {
	s, err := scalar(v, "const")
	if err != nil {
		return nil, err
	}
	n, err := syntax.ParseNat(s)
	if err != nil {
		return nil, wrapf(v, err, "const %s", s)
	}
	return syntax.NewConst(n), nil
}

func decodeVar(v *yaml.Node) (syntax.Expr, error) {
	s, err := scalar(v, "var")
	if err != nil {
		return nil, err
	}
	return syntax.NewVar(s), nil
}

func decodeBinary(v *yaml.Node) (syntax.Expr, error) {
	f, err := fields(v, "op", "left", "right")
	if err != nil {
		return nil, err
	}
	opNode, ok := f["op"]
	if !ok {
		return nil, errorf(v, "binop: missing op")
	}
	name, err := scalar(opNode, "op")
	if err != nil {
		return nil, err
	}
	op, ok := syntax.LookupBinOp(name)
	if !ok {
		return nil, errorf(opNode, "unknown binary operator %q", name)
	}
	x, err := optExpr(f, "left")
	if err != nil {
		return nil, err
	}
	y, err := optExpr(f, "right")
	if err != nil {
		return nil, err
	}
	return syntax.NewBinary(op, x, y), nil
}

func decodeUnary(v *yaml.Node) (syntax.Expr, error) {
	f, err := fields(v, "op", "arg")
	if err != nil {
		return nil, err
	}
	opNode, ok := f["op"]
	if !ok {
		return nil, errorf(v, "unop: missing op")
	}
	name, err := scalar(opNode, "op")
	if err != nil {
		return nil, err
	}
	op, ok := syntax.LookupUnOp(name)
	if !ok {
		return nil, errorf(opNode, "unknown unary operator %q", name)
	}
	x, err := optExpr(f, "arg")
	if err != nil {
		return nil, err
	}
	return syntax.NewUnary(op, x), nil
}

func decodeDeref(v *yaml.Node) (syntax.Expr, error) {
	x, err := decodeExpr(v)
	if err != nil {
		return nil, err
	}
	return syntax.NewDeref(x), nil
}

func decodeMalloc(v *yaml.Node) (syntax.Expr, error) {
	x, err := decodeExpr(v)
	if err != nil {
		return nil, err
	}
	return syntax.NewMalloc(x), nil
}

func decodeIndex(v *yaml.Node) (syntax.Expr, error) {
	f, err := fields(v, "array", "index")
	if err != nil {
		return nil, err
	}
	arr, ok := f["array"]
	if !ok {
		return nil, errorf(v, "index: missing array")
	}
	name, err := scalar(arr, "array")
	if err != nil {
		return nil, err
	}
	idx, err := optExpr(f, "index")
	if err != nil {
		return nil, err
	}
	return syntax.NewIndex(name, idx), nil
}

func decodeMultiIndex(v *yaml.Node) (syntax.Expr, error) {
	f, err := fields(v, "object", "index")
	if err != nil {
		return nil, err
	}
	x, err := optExpr(f, "object")
	if err != nil {
		return nil, err
	}
	idx, err := optExpr(f, "index")
	if err != nil {
		return nil, err
	}
	return syntax.NewMultiIndex(x, idx), nil
}

func decodeChar(v *yaml.Node) (syntax.Expr, error) {
	s, err := scalar(v, "char")
	if err != nil {
		return nil, err
	}
	return syntax.NewChar(quote(s, '\'')), nil
}

func decodeString(v *yaml.Node) (syntax.Expr, error) {
	if isNull(v) {
		return nil, errorf(v, "string: want a scalar")
	}
	if v.Kind != yaml.ScalarNode {
		return nil, errorf(v, "string: want a scalar")
	}
	return syntax.NewString(quote(v.Value, '"')), nil
}

func decodeInitListExpr(v *yaml.Node) (syntax.Expr, error) {
	l, err := decodeInitList(v)
	if err != nil {
		return nil, err
	}
	return syntax.NewInitListExpr(l), nil
}

// ----------------------------------------------------------------------------
// Commands

func decodeDecl(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "name", "init")
	if err != nil {
		return nil, err
	}
	nm, err := name(v, f)
	if err != nil {
		return nil, err
	}
	init, err := optExpr(f, "init")
	if err != nil {
		return nil, err
	}
	return syntax.NewDecl(nm, init), nil
}

func decodeAssign(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "left", "right")
	if err != nil {
		return nil, err
	}
	lhs, err := optExpr(f, "left")
	if err != nil {
		return nil, err
	}
	rhs, err := optExpr(f, "right")
	if err != nil {
		return nil, err
	}
	return syntax.NewAssign(lhs, rhs), nil
}

// decodeSeq folds a list of commands to the right: [a, b, c] is
// Seq(a, Seq(b, c)). A single command is returned as is.
func decodeSeq(v *yaml.Node) (syntax.Cmd, error) {
	items, err := sequence(v, "seq")
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errorf(v, "seq: empty")
	}
	cmds := make([]syntax.Cmd, len(items))
	for i, item := range items {
		if cmds[i], err = decodeCmd(item); err != nil {
			return nil, err
		}
	}
	c := cmds[len(cmds)-1]
	for i := len(cmds) - 2; i >= 0; i-- {
		c = syntax.NewSeq(cmds[i], c)
	}
	return c, nil
}

func decodeIf(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "cond", "then", "else")
	if err != nil {
		return nil, err
	}
	cond, err := optExpr(f, "cond")
	if err != nil {
		return nil, err
	}
	then, err := optCmd(f, "then")
	if err != nil {
		return nil, err
	}
	els, err := optCmd(f, "else")
	if err != nil {
		return nil, err
	}
	return syntax.NewIf(cond, then, els), nil
}

func decodeWhile(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "cond", "body")
	if err != nil {
		return nil, err
	}
	cond, err := optExpr(f, "cond")
	if err != nil {
		return nil, err
	}
	body, err := optCmd(f, "body")
	if err != nil {
		return nil, err
	}
	return syntax.NewWhile(cond, body), nil
}

func optCmd(f map[string]*yaml.Node, key string) (syntax.Cmd, error) {
	v, ok := f[key]
	if !ok {
		return nil, nil
	}
	return decodeCmd(v)
}

func decodeWriteInt(v *yaml.Node) (syntax.Cmd, error) {
	x, err := decodeExpr(v)
	if err != nil {
		return nil, err
	}
	return syntax.NewWriteInt(x), nil
}

func decodeWriteChar(v *yaml.Node) (syntax.Cmd, error) {
	x, err := decodeExpr(v)
	if err != nil {
		return nil, err
	}
	return syntax.NewWriteChar(x), nil
}

func decodeArrayDecl(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "name", "size", "init")
	if err != nil {
		return nil, err
	}
	nm, err := name(v, f)
	if err != nil {
		return nil, err
	}
	size, err := optExpr(f, "size")
	if err != nil {
		return nil, err
	}
	init, err := optList(f, "init")
	if err != nil {
		return nil, err
	}
	return syntax.NewArrayDecl(nm, size, init), nil
}

func decodePointerDecl(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "name", "level", "size")
	if err != nil {
		return nil, err
	}
	nm, err := name(v, f)
	if err != nil {
		return nil, err
	}
	lv, err := level(v, f)
	if err != nil {
		return nil, err
	}
	size, err := optExpr(f, "size")
	if err != nil {
		return nil, err
	}
	return syntax.NewPointerDecl(nm, lv, size), nil
}

func decodeCharDecl(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "name", "init")
	if err != nil {
		return nil, err
	}
	nm, err := name(v, f)
	if err != nil {
		return nil, err
	}
	init, err := optExpr(f, "init")
	if err != nil {
		return nil, err
	}
	return syntax.NewCharDecl(nm, init), nil
}

func decodeStringDecl(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "name", "size", "init")
	if err != nil {
		return nil, err
	}
	nm, err := name(v, f)
	if err != nil {
		return nil, err
	}
	size, err := optSize(f)
	if err != nil {
		return nil, err
	}
	init, err := optExpr(f, "init")
	if err != nil {
		return nil, err
	}
	return syntax.NewStringDecl(nm, size, init), nil
}

func decodeStringListDecl(v *yaml.Node) (syntax.Cmd, error) {
	f, err := fields(v, "name", "size", "init")
	if err != nil {
		return nil, err
	}
	nm, err := name(v, f)
	if err != nil {
		return nil, err
	}
	size, err := optSize(f)
	if err != nil {
		return nil, err
	}
	init, err := optList(f, "init")
	if err != nil {
		return nil, err
	}
	return syntax.NewStringListDecl(nm, size, init), nil
}

func decodeMultiVarDecl(v *yaml.Node) (syntax.Cmd, error) {
	items, err := sequence(v, "multi_decl")
	if err != nil {
		return nil, err
	}
	var vars *syntax.VarSpecList
	for _, item := range items {
		spec, err := decodeVarSpec(item)
		if err != nil {
			return nil, err
		}
		vars = vars.Append(spec)
	}
	return syntax.NewMultiVarDecl(vars), nil
}

func decodeVarSpec(n *yaml.Node) (syntax.VarSpec, error) {
	key, v, err := variant(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "simple":
		f, err := fields(v, "name", "init")
		if err != nil {
			return nil, err
		}
		nm, err := name(v, f)
		if err != nil {
			return nil, err
		}
		init, err := optExpr(f, "init")
		if err != nil {
			return nil, err
		}
		return syntax.NewSimpleVar(nm, init), nil

	case "array":
		f, err := fields(v, "name", "dims", "init")
		if err != nil {
			return nil, err
		}
		nm, err := name(v, f)
		if err != nil {
			return nil, err
		}
		var dims *syntax.ExprList
		if d, ok := f["dims"]; ok {
			items, err := sequence(d, "dims")
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				x, err := decodeExpr(item)
				if err != nil {
					return nil, err
				}
				dims = dims.Append(x)
			}
		}
		init, err := optList(f, "init")
		if err != nil {
			return nil, err
		}
		return syntax.NewArrayVar(nm, dims, init), nil

	case "pointer":
		f, err := fields(v, "name", "level", "init")
		if err != nil {
			return nil, err
		}
		nm, err := name(v, f)
		if err != nil {
			return nil, err
		}
		lv, err := level(v, f)
		if err != nil {
			return nil, err
		}
		init, err := optExpr(f, "init")
		if err != nil {
			return nil, err
		}
		return syntax.NewPointerVar(nm, lv, init), nil
	}
	return nil, errorf(n, "unknown variable kind %q", key)
}
