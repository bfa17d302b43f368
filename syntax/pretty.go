package syntax

import (
	"strings"

	"github.com/wippyai/contnorm/ast"
)

// DefaultWidth is the line width Pretty aims for.
const DefaultWidth = 80

const indentUnit = "  "

// Pretty renders n across several lines. A begin form always places each
// statement on its own line; any other subtree stays on one line when it
// fits within DefaultWidth and contains no begin.
func Pretty(n ast.Node) string {
	var b strings.Builder
	writePretty(&b, n, 0)
	return b.String()
}

func writePretty(b *strings.Builder, n ast.Node, depth int) {
	t, ok := n.(*ast.Subtree)
	if !ok {
		b.WriteString(ast.Render(n))
		return
	}

	flat := ast.Render(t)
	if !t.Is(ast.Begin) && !containsBegin(t) && depth*len(indentUnit)+len(flat) <= DefaultWidth {
		b.WriteString(flat)
		return
	}
	if len(t.Nodes) == 0 {
		b.WriteString("()")
		return
	}

	b.WriteByte('(')
	writePretty(b, t.Nodes[0], depth+1)
	for _, child := range t.Nodes[1:] {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indentUnit, depth+1))
		writePretty(b, child, depth+1)
	}
	b.WriteByte(')')
}

func containsBegin(t *ast.Subtree) bool {
	found := false
	ast.Walk(t, func(n ast.Node) bool {
		if found {
			return false
		}
		if ast.IsForm(n, ast.Begin) {
			found = true
			return false
		}
		return true
	})
	return found
}
