package rewrite

import (
	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/errors"
)

// Pass is one tree-to-tree rewrite. Apply must not modify its input and
// returns the rewritten tree, which may share unchanged subtrees with it.
//
// Passes are compared by identity when added to a Pipeline, so
// implementations should be pointer types.
type Pass interface {
	Name() string
	Apply(ctx *Context, tree ast.Node) (ast.Node, error)
}

func malformed(phase errors.Phase, t *ast.Subtree, detail string) error {
	return errors.MalformedForm(phase, ast.Render(t), detail)
}

// splitSequence returns the leading statements and the final value of a
// begin form. An empty begin has the value nil.
func splitSequence(begin *ast.Subtree) ([]ast.Node, ast.Node) {
	body := begin.Nodes[1:]
	if len(body) == 0 {
		return nil, ast.Nil
	}
	return body[:len(body)-1], body[len(body)-1]
}
