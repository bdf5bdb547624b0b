package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"larch/internal/cst/red"
)

// FormatTree prints an indented dump of the syntax tree, one node per
// line with its kind, range, and, for leaf-ish nodes, the source text.
func FormatTree(w io.Writer, tree *red.SyntaxTree) {
	dumpNode(w, tree, 0)
}

func dumpNode(w io.Writer, n red.Node, depth int) {
	r := n.OffsetRange()
	fmt.Fprintf(w, "%s%s %s", strings.Repeat("  ", depth), nodeKind(n), r)
	if text := leafText(n); text != "" {
		fmt.Fprintf(w, " %q", text)
	}
	fmt.Fprintln(w)
	for _, child := range n.Children() {
		dumpNode(w, child, depth+1)
	}
}

func nodeKind(n red.Node) string {
	name := fmt.Sprintf("%T", n)
	return strings.TrimPrefix(name, "*red.")
}

func leafText(n red.Node) string {
	switch n.(type) {
	case *red.IdentifierExpr, *red.IntLiteralExpr, *red.VariablePattern:
		return n.Text()
	}
	return ""
}
