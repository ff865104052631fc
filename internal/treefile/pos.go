package treefile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pos is a position in a tree document.
// The zero value is an invalid position.
type Pos struct {
	File string // empty when decoding from memory
	Line int    // 1-based
	Col  int    // 1-based
}

func posOf(n *yaml.Node) Pos {
	return Pos{Line: n.Line, Col: n.Column}
}

// String returns "file:line:col", or "line:col" without a file name.
func (p Pos) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsValid reports whether the position is valid.
func (p Pos) IsValid() bool {
	return p.Line > 0
}
