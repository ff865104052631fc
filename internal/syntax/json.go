package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
//
// Every node is an object with a single key naming its variant, in the
// same shape the treefile package reads, so a tree written here decodes
// back into an equal tree. Pointer declarations are written with the size
// the constructor was given, without the MallocExpr it adds.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(node))
}

// ToJSON returns the JSON-ready value of node.
func ToJSON(node Node) interface{} {
	switch n := node.(type) {
	case Expr:
		return exprJSON(n)
	case Cmd:
		return cmdJSON(n)
	}
	return nil
}

type object = map[string]interface{}

func exprJSON(x Expr) interface{} {
	if x == nil {
		return nil
	}

	switch x := x.(type) {
	case *ConstExpr:
		return object{"const": x.Value}
	case *VarExpr:
		return object{"var": x.Name}
	case *BinaryExpr:
		return object{"binop": object{
			"op":    x.Op.String(),
			"left":  exprJSON(x.X),
			"right": exprJSON(x.Y),
		}}
	case *UnaryExpr:
		return object{"unop": object{
			"op":  x.Op.String(),
			"arg": exprJSON(x.X),
		}}
	case *DerefExpr:
		return object{"deref": exprJSON(x.X)}
	case *MallocExpr:
		return object{"malloc": exprJSON(x.X)}
	case *ReadIntExpr:
		return object{"read_int": nil}
	case *ReadCharExpr:
		return object{"read_char": nil}
	case *IndexExpr:
		return object{"index": object{
			"array": x.Array,
			"index": exprJSON(x.Index),
		}}
	case *MultiIndexExpr:
		return object{"md_index": object{
			"object": exprJSON(x.X),
			"index":  exprJSON(x.Index),
		}}
	case *CharLit:
		return object{"char": x.Lit}
	case *StringLit:
		return object{"string": x.Lit}
	case *InitListExpr:
		return object{"init_list": listJSON(x.List)}
	}
	return object{"unknown": nil}
}

func cmdJSON(c Cmd) interface{} {
	if c == nil {
		return nil
	}

	switch c := c.(type) {
	case *DeclCmd:
		m := object{"name": c.Name}
		putExpr(m, "init", c.Init)
		return object{"decl": m}
	case *AssignCmd:
		return object{"assign": object{
			"left":  exprJSON(c.LHS),
			"right": exprJSON(c.RHS),
		}}
	case *SeqCmd:
		return object{"seq": []interface{}{cmdJSON(c.First), cmdJSON(c.Second)}}
	case *IfCmd:
		return object{"if": object{
			"cond": exprJSON(c.Cond),
			"then": cmdJSON(c.Then),
			"else": cmdJSON(c.Else),
		}}
	case *WhileCmd:
		return object{"while": object{
			"cond": exprJSON(c.Cond),
			"body": cmdJSON(c.Body),
		}}
	case *WriteIntCmd:
		return object{"write_int": exprJSON(c.X)}
	case *WriteCharCmd:
		return object{"write_char": exprJSON(c.X)}
	case *ArrayDeclCmd:
		m := object{"name": c.Name}
		putExpr(m, "size", c.Size)
		putList(m, "init", c.Init)
		return object{"array_decl": m}
	case *PointerDeclCmd:
		m := object{"name": c.Name, "level": c.Level}
		size := c.Size
		if mx, ok := size.(*MallocExpr); ok {
			size = mx.X
		}
		putExpr(m, "size", size)
		return object{"pointer_decl": m}
	case *CharDeclCmd:
		m := object{"name": c.Name}
		putExpr(m, "init", c.Init)
		return object{"char_decl": m}
	case *StringDeclCmd:
		m := object{"name": c.Name}
		putSize(m, c.Size)
		putExpr(m, "init", c.Init)
		return object{"string_decl": m}
	case *StringListDeclCmd:
		m := object{"name": c.Name}
		putSize(m, c.Size)
		putList(m, "init", c.Init)
		return object{"string_list_decl": m}
	case *MultiVarDeclCmd:
		vars := []interface{}{}
		if c.Vars != nil {
			for _, v := range c.Vars.Specs {
				vars = append(vars, varSpecJSON(v))
			}
		}
		return object{"multi_decl": vars}
	}
	return object{"unknown": nil}
}

func varSpecJSON(v VarSpec) interface{} {
	switch v := v.(type) {
	case *SimpleVar:
		m := object{"name": v.Name}
		putExpr(m, "init", v.Init)
		return object{"simple": m}
	case *ArrayVar:
		dims := make([]interface{}, len(v.Dims))
		for i, d := range v.Dims {
			dims[i] = exprJSON(d)
		}
		m := object{"name": v.Name, "dims": dims}
		putList(m, "init", v.Init)
		return object{"array": m}
	case *PointerVar:
		m := object{"name": v.Name, "level": v.Level}
		putExpr(m, "init", v.Init)
		return object{"pointer": m}
	}
	return object{"unknown": nil}
}

func listJSON(l *InitList) []interface{} {
	elems := l.Elems()
	out := make([]interface{}, len(elems))
	for i, x := range elems {
		out[i] = exprJSON(x)
	}
	return out
}

// Optional fields are left out when absent.

func putExpr(m object, key string, x Expr) {
	if x != nil {
		m[key] = exprJSON(x)
	}
}

func putList(m object, key string, l *InitList) {
	if l != nil {
		m[key] = listJSON(l)
	}
}

// putSize writes an explicit size; an inferred size has no key.
func putSize(m object, s Size) {
	if s, ok := s.(ExplicitSize); ok {
		m["size"] = exprJSON(s.X)
	}
}
