package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented outline of the tree rooted at n to w, one node
// per line with its codeword path.
func Fprint(w io.Writer, n *Node) {
	p := &printer{w: w}
	p.print(n, "", "root")
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(n *Node, path, side string) {
	if n == nil {
		p.printf("%s: -\n", side)
		return
	}

	code := path
	if code == "" {
		code = `""`
	}
	p.printf("%s: Node %q %s [%s]\n", side, n.Value, code, n.pos)
	if n.IsLeaf() {
		return
	}

	p.indent++
	p.print(n.Left, path+string(StepLeft), "left")
	p.print(n.Right, path+string(StepRight), "right")
	p.indent--
}

// Format returns the canonical description of the tree rooted at n:
// single spaces between parts, inner leaves written bare, absent children
// as "-". The root is always parenthesised, so parsing the result yields an
// identical tree.
func Format(n *Node) string {
	var b strings.Builder
	if n == nil {
		b.WriteByte('-')
	} else {
		formatNode(&b, n)
	}
	return b.String()
}

func format(b *strings.Builder, n *Node) {
	switch {
	case n == nil:
		b.WriteByte('-')
	case n.IsLeaf():
		b.WriteString(n.Value)
	default:
		formatNode(b, n)
	}
}

// formatNode writes n in the "(left value right)" form.
func formatNode(b *strings.Builder, n *Node) {
	b.WriteByte('(')
	format(b, n.Left)
	b.WriteByte(' ')
	b.WriteString(n.Value)
	b.WriteByte(' ')
	format(b, n.Right)
	b.WriteByte(')')
}
