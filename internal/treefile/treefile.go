// Package treefile reads syntax trees written as YAML or JSON documents.
//
// Each node is a mapping with a single key naming its variant:
//
//	seq:
//	  - decl: {name: x, init: {const: 5}}
//	  - string_decl: {name: s, init: {string: '"abcde"'}}
//
// The shape is the one written by syntax.FprintJSON, and JSON input is
// accepted as the YAML subset it is. Nodes are built with the syntax
// package constructors, so a decoded tree is indistinguishable from one
// assembled by a parser.
package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Alex-gitss/CS2612-Final/internal/syntax"
)

// ErrEmpty is returned for a document without a tree.
var ErrEmpty = errors.New("treefile: empty document")

// Error reports a malformed node together with its position in the source.
type Error struct {
	Pos Pos
	Msg string
	Err error // underlying error, if any
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func errorf(n *yaml.Node, format string, args ...interface{}) error {
	return &Error{Pos: posOf(n), Msg: fmt.Sprintf(format, args...)}
}

func wrapf(n *yaml.Node, err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Pos: posOf(n), Msg: msg + ": " + err.Error(), Err: err}
}

// DecodeFile reads the tree stored in the named file.
func DecodeFile(path string) (syntax.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treefile: %w", err)
	}
	n, err := DecodeBytes(data)
	var e *Error
	if errors.As(err, &e) {
		e.Pos.File = path
		return nil, e
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Decode reads one tree from r.
func Decode(r io.Reader) (syntax.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("treefile: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes reads one tree from data. The top-level node may be a
// command or an expression.
func DecodeBytes(data []byte) (syntax.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("treefile: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmpty
	}
	root := resolve(doc.Content[0])
	if isNull(root) {
		return nil, ErrEmpty
	}
	if err := checkAliases(root); err != nil {
		return nil, err
	}

	key, _, err := variant(root)
	if err != nil {
		return nil, err
	}
	if _, ok := exprDecoders[key]; ok {
		return decodeExpr(root)
	}
	return decodeCmd(root)
}

// ----------------------------------------------------------------------------
// YAML helpers

// maxExpanded bounds the number of nodes reached through aliases.
const maxExpanded = 100000

// checkAliases rejects an alias that refers to a node enclosing it, and a
// document whose aliases expand to more than maxExpanded nodes. The decoder
// follows aliases freely once a document has passed this check.
func checkAliases(root *yaml.Node) error {
	active := make(map[*yaml.Node]bool) // nodes on the current path
	expanded := 0

	var visit func(n *yaml.Node, viaAlias bool) error
	visit = func(n *yaml.Node, viaAlias bool) error {
		if n == nil {
			return nil
		}
		if n.Kind == yaml.AliasNode {
			if active[n.Alias] {
				return errorf(n, "recursive alias %q", n.Value)
			}
			return visit(n.Alias, true)
		}
		if viaAlias {
			if expanded++; expanded > maxExpanded {
				return errorf(n, "aliases expand to more than %d nodes", maxExpanded)
			}
		}
		active[n] = true
		defer delete(active, n)
		for _, c := range n.Content {
			if err := visit(c, viaAlias); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(root, false)
}

// resolve follows aliases. Each use of an alias decodes to fresh nodes, so
// the resulting tree never shares subtrees.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	n = resolve(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// variant splits a node into its variant key and payload.
func variant(n *yaml.Node) (string, *yaml.Node, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, errorf(n, "want a mapping with one key naming the node")
	}
	return n.Content[0].Value, resolve(n.Content[1]), nil
}

// fields returns the entries of a mapping, rejecting keys not in allowed.
func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "want a mapping with keys %s", strings.Join(allowed, ", "))
	}
	m := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if !contains(allowed, k.Value) {
			return nil, errorf(k, "unknown key %q", k.Value)
		}
		if _, dup := m[k.Value]; dup {
			return nil, errorf(k, "duplicate key %q", k.Value)
		}
		m[k.Value] = resolve(n.Content[i+1])
	}
	return m, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func scalar(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || isNull(n) {
		return "", errorf(n, "%s: want a scalar", what)
	}
	return n.Value, nil
}

func sequence(n *yaml.Node, what string) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "%s: want a sequence", what)
	}
	items := make([]*yaml.Node, len(n.Content))
	for i, c := range n.Content {
		items[i] = resolve(c)
	}
	return items, nil
}

// name reads the required "name" entry of a declaration.
func name(n *yaml.Node, f map[string]*yaml.Node) (string, error) {
	v, ok := f["name"]
	if !ok {
		return "", errorf(n, "missing name")
	}
	return scalar(v, "name")
}

// level reads the required "level" entry of a pointer declaration.
func level(n *yaml.Node, f map[string]*yaml.Node) (int, error) {
	v, ok := f["level"]
	if !ok {
		return 0, errorf(n, "missing level")
	}
	s, err := scalar(v, "level")
	if err != nil {
		return 0, err
	}
	lv, err := strconv.Atoi(s)
	if err != nil {
		return 0, wrapf(v, err, "level")
	}
	return lv, nil
}

// optExpr decodes an optional expression entry.
func optExpr(f map[string]*yaml.Node, key string) (syntax.Expr, error) {
	v, ok := f[key]
	if !ok {
		return nil, nil
	}
	return decodeExpr(v)
}

// optList decodes an optional initializer list entry.
func optList(f map[string]*yaml.Node, key string) (*syntax.InitList, error) {
	v, ok := f[key]
	if !ok {
		return nil, nil
	}
	return decodeInitList(v)
}

// optSize decodes the size of a string declaration. A missing size is
// inferred from the initializer.
func optSize(f map[string]*yaml.Node) (syntax.Size, error) {
	v, ok := f["size"]
	if !ok {
		return syntax.Inferred(), nil
	}
	x, err := decodeExpr(v)
	if err != nil {
		return nil, err
	}
	return syntax.Explicit(x), nil
}

// quote adds the surrounding quote characters to a literal written
// without them.
func quote(lit string, q byte) string {
	if len(lit) >= 2 && lit[0] == q && lit[len(lit)-1] == q {
		return lit
	}
	return string(q) + lit + string(q)
}
