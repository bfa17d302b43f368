package rewrite

import (
	"go.uber.org/zap"

	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/errors"
)

// IfFlattener lowers an if whose branches contain entry points into explicit
// jumps, so the labels end up in statement position:
//
//	(begin (if c (goto Lt nil) nil)
//	       (goto Lr else)
//	       (label Lt)
//	       (goto Lr then)
//	       (label Lr))
//
// The value of the whole expression is the value delivered to Lr. An if
// whose branches contain no entry is left alone, whatever its condition.
type IfFlattener struct {
	name string
}

// NewIfFlattener creates the if lowering pass.
func NewIfFlattener() *IfFlattener {
	return &IfFlattener{name: "if-flattener"}
}

// Name returns the pass name used in logs.
func (f *IfFlattener) Name() string { return f.name }

// Apply lowers every qualifying if, innermost first.
func (f *IfFlattener) Apply(ctx *Context, tree ast.Node) (ast.Node, error) {
	return ast.Rewrite(tree, func(t *ast.Subtree) (ast.Node, error) {
		if !t.Is(ast.If) {
			return t, nil
		}
		if t.Len() < 3 || t.Len() > 4 {
			return nil, malformed(errors.PhaseFlatten, t, "if takes a condition, a consequent and an optional alternative")
		}
		cond, then := t.Nodes[1], t.Nodes[2]
		var alt ast.Node = ast.Nil
		if t.Len() == 4 {
			alt = t.Nodes[3]
		}
		if !ContainsEntry(then) && !ContainsEntry(alt) {
			return t, nil
		}

		ltrue := ctx.Fresh()
		lret := ctx.Fresh()
		ctx.Logger().Debug("if lowered",
			zap.Stringer("true_label", ltrue),
			zap.Stringer("return_label", lret))
		return ast.Form(ast.Begin,
			ast.Form(ast.If, cond, ast.Form(ast.Goto, ltrue, ast.Nil), ast.Nil),
			ast.Form(ast.Goto, lret, alt),
			ast.Form(ast.Label, ltrue),
			ast.Form(ast.Goto, lret, then),
			ast.Form(ast.Label, lret),
		), nil
	})
}
