package rewrite

import "github.com/wippyai/contnorm/ast"

// entryRecognizer accumulates a bool: whether a label form occurs anywhere
// in the visited tree. Atoms pass the accumulator through unchanged.
type entryRecognizer struct {
	ast.Identity
}

func (r entryRecognizer) VisitSubtree(t *ast.Subtree, acc any) (ast.Node, any, error) {
	if t.Is(ast.Label) {
		return t, true, nil
	}
	for _, child := range t.Nodes {
		if _, found, _ := ast.Accept(child, r, false); found == true {
			return t, true, nil
		}
	}
	return t, acc, nil
}

// ContainsEntry reports whether n is or contains a (label ...) form, a point
// control may re-enter through a continuation.
func ContainsEntry(n ast.Node) bool {
	_, found, _ := ast.Accept(n, entryRecognizer{}, false)
	b, _ := found.(bool)
	return b
}
