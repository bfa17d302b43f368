package rewrite

import (
	"go.uber.org/zap"

	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/errors"
)

// Expander replaces every occurrence of one continuation-capturing form with a
// begin sequence that captures a fresh continuation, transfers control and
// marks the return point with a label.
type Expander struct {
	name  string
	form  ast.Symbol
	check func(t *ast.Subtree) string
	build func(label ast.Symbol, t *ast.Subtree) []ast.Node
}

// NewCallExpander rewrites (call k a...) to
//
//	(begin (call-continuation (new-continuation L @current-environment) k a...)
//	       (label L))
func NewCallExpander() *Expander {
	return &Expander{
		name: "call-expander",
		form: ast.Call,
		check: func(t *ast.Subtree) string {
			if t.Len() < 3 {
				return "call takes a continuation and at least one argument"
			}
			return ""
		},
		build: func(label ast.Symbol, t *ast.Subtree) []ast.Node {
			args := append([]ast.Node{captureContinuation(label)}, t.Nodes[1:]...)
			return []ast.Node{
				ast.Form(ast.CallContinuation, args...),
				ast.Form(ast.Label, label),
			}
		},
	}
}

// NewYieldExpander rewrites (yield a...) like a call on @return-continuation.
func NewYieldExpander() *Expander {
	return &Expander{
		name: "yield-expander",
		form: ast.Yield,
		check: func(t *ast.Subtree) string {
			if t.Len() < 2 {
				return "yield takes at least one value"
			}
			return ""
		},
		build: func(label ast.Symbol, t *ast.Subtree) []ast.Node {
			args := append([]ast.Node{captureContinuation(label), ast.ReturnContinuation}, t.Nodes[1:]...)
			return []ast.Node{
				ast.Form(ast.CallContinuation, args...),
				ast.Form(ast.Label, label),
			}
		},
	}
}

// NewLetCallExpander rewrites (let/call name k a) to
//
//	(begin (define name (new-continuation L @current-environment))
//	       (call-continuation name k a)
//	       (label L))
func NewLetCallExpander() *Expander {
	return &Expander{
		name: "let-call-expander",
		form: ast.LetCall,
		check: func(t *ast.Subtree) string {
			if t.Len() != 4 {
				return "let/call takes a name, a continuation and one argument"
			}
			if _, ok := t.Nodes[1].(ast.Symbol); !ok {
				return "let/call binding must be a symbol"
			}
			return ""
		},
		build: func(label ast.Symbol, t *ast.Subtree) []ast.Node {
			name := t.Nodes[1]
			args := append([]ast.Node{name}, t.Nodes[2:]...)
			return []ast.Node{
				ast.Form(ast.Define, name, captureContinuation(label)),
				ast.Form(ast.CallContinuation, args...),
				ast.Form(ast.Label, label),
			}
		},
	}
}

func captureContinuation(label ast.Symbol) *ast.Subtree {
	return ast.Form(ast.NewContinuation, label, ast.CurrentEnvironment)
}

// Name returns the pass name used in logs.
func (e *Expander) Name() string { return e.name }

// Form returns the operator symbol this expander rewrites.
func (e *Expander) Form() ast.Symbol { return e.form }

// Apply expands every matching form, innermost first.
func (e *Expander) Apply(ctx *Context, tree ast.Node) (ast.Node, error) {
	return ast.Rewrite(tree, func(t *ast.Subtree) (ast.Node, error) {
		if !t.Is(e.form) {
			return t, nil
		}
		if detail := e.check(t); detail != "" {
			return nil, malformed(errors.PhaseExpand, t, detail)
		}
		label := ctx.Fresh()
		out := ast.Form(ast.Begin, e.build(label, t)...)
		ctx.Logger().Debug("form expanded",
			zap.String("pass", e.name),
			zap.Stringer("label", label),
			zap.Stringer("form", t))
		return out, nil
	})
}
