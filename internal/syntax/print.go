package syntax

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Indent is printed once per depth level in front of each line.
const Indent = "|--"

// Printer writes tree dumps as indented text.
type Printer struct {
	// Color wraps labels in ANSI color sequences: commands red,
	// expressions and role headers blue, size diagnostics red or green.
	Color bool
}

// Fprint writes the tree dump of node to w without color.
func Fprint(w io.Writer, node Node) error {
	return (&Printer{}).Fprint(w, node)
}

// Sprint returns the tree dump of node without color.
func Sprint(node Node) string {
	var b strings.Builder
	_ = Fprint(&b, node)
	return b.String()
}

// Fprint writes the tree dump of node to w.
func (p *Printer) Fprint(w io.Writer, node Node) error {
	return p.FprintLines(w, Describe(node))
}

// FprintLines writes already described lines to w.
func (p *Printer) FprintLines(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	var pal *palette
	if p.Color {
		pal = newPalette(w)
	}
	for _, l := range lines {
		if l.Indented() {
			bw.WriteString(strings.Repeat(Indent, l.Depth))
		}
		if pal != nil {
			bw.WriteString(pal.render(l))
		} else {
			bw.WriteString(l.Text)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type palette struct {
	cmd, expr, bad, good lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	style := func(color string) lipgloss.Style {
		return r.NewStyle().
			Foreground(lipgloss.Color(color)).
			TabWidth(lipgloss.NoTabConversion)
	}
	return &palette{
		cmd:  style("1"),
		expr: style("4"),
		bad:  style("1").Bold(true),
		good: style("2"),
	}
}

func (pal *palette) render(l Line) string {
	if l.Text == "" {
		return ""
	}
	switch l.Kind {
	case LineCmd:
		return pal.cmd.Render(l.Text)
	case LineExpr, LineRole:
		return pal.expr.Render(l.Text)
	case LineSizeError:
		return pal.bad.Render(l.Text)
	case LineSizeOK:
		return pal.good.Render(l.Text)
	}
	return l.Text
}
