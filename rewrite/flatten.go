package rewrite

import (
	"go.uber.org/zap"

	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/errors"
)

// Forms whose children are not evaluated as ordinary call arguments.
// The entry flattener leaves them to the binding and sequence flatteners or
// does not look inside at all.
var nonApplicative = map[ast.Symbol]struct{}{
	ast.Begin:   {},
	ast.Define:  {},
	ast.SetBang: {},
	ast.Label:   {},
	"defun":     {},
	"lambda":    {},
	"quote":     {},
}

// EntryFlattener moves entry points out of argument positions. For an
// application whose arguments contain a label, every argument up to and
// including the right-most such one is evaluated ahead of the application,
// left to right: leading statements of a begin argument are hoisted as-is and
// compound values are bound to fresh temporaries. Arguments after the last
// entry stay inline. For an if only the condition counts as an argument.
type EntryFlattener struct {
	name string
}

// NewEntryFlattener creates the argument flattening pass.
func NewEntryFlattener() *EntryFlattener {
	return &EntryFlattener{name: "entry-flattener"}
}

// Name returns the pass name used in logs.
func (f *EntryFlattener) Name() string { return f.name }

// Apply flattens every qualifying application, innermost first.
func (f *EntryFlattener) Apply(ctx *Context, tree ast.Node) (ast.Node, error) {
	return ast.Rewrite(tree, func(t *ast.Subtree) (ast.Node, error) {
		return f.flatten(ctx, t)
	})
}

func (f *EntryFlattener) flatten(ctx *Context, t *ast.Subtree) (ast.Node, error) {
	if t.Len() == 0 {
		return t, nil
	}

	start, end := 0, t.Len()
	if head, ok := t.Head(); ok {
		if _, skip := nonApplicative[head]; skip {
			return t, nil
		}
		start = 1
		if head == ast.If {
			if t.Len() < 3 || t.Len() > 4 {
				return nil, malformed(errors.PhaseFlatten, t, "if takes a condition, a consequent and an optional alternative")
			}
			end = 2
		}
	}

	last := -1
	for i := start; i < end; i++ {
		if ContainsEntry(t.Nodes[i]) {
			last = i
		}
	}
	if last < 0 {
		return t, nil
	}

	var hoisted []ast.Node
	nodes := make([]ast.Node, len(t.Nodes))
	copy(nodes, t.Nodes)
	for i := start; i <= last; i++ {
		arg, ok := nodes[i].(*ast.Subtree)
		if !ok {
			continue
		}
		var value ast.Node = arg
		if arg.Is(ast.Begin) {
			var stmts []ast.Node
			stmts, value = splitSequence(arg)
			hoisted = append(hoisted, stmts...)
		}
		if !ast.IsAtom(value) {
			tmp := ctx.Fresh()
			hoisted = append(hoisted, ast.Form(ast.Define, tmp, value))
			value = tmp
		}
		nodes[i] = value
	}

	ctx.Logger().Debug("arguments flattened",
		zap.Stringer("form", t),
		zap.Int("hoisted", len(hoisted)))
	out := append([]ast.Node{ast.Begin}, hoisted...)
	out = append(out, &ast.Subtree{Nodes: nodes})
	return &ast.Subtree{Nodes: out}, nil
}

// BindingFlattener hoists the statements of a begin bound by set! or define:
//
//	(set! r (begin s... v)) -> (begin s... (set! r v))
//
// A compound receiver is evaluated first into a fresh temporary so that it
// still runs before the hoisted statements.
type BindingFlattener struct {
	name string
}

// NewBindingFlattener creates the binding flattening pass.
func NewBindingFlattener() *BindingFlattener {
	return &BindingFlattener{name: "binding-flattener"}
}

// Name returns the pass name used in logs.
func (f *BindingFlattener) Name() string { return f.name }

// Apply flattens every qualifying binding, innermost first.
func (f *BindingFlattener) Apply(ctx *Context, tree ast.Node) (ast.Node, error) {
	return ast.Rewrite(tree, func(t *ast.Subtree) (ast.Node, error) {
		if !t.Is(ast.SetBang) && !t.Is(ast.Define) {
			return t, nil
		}
		if t.Len() != 3 {
			return nil, malformed(errors.PhaseFlatten, t, "binding takes a receiver and a value")
		}
		rhs, ok := t.Nodes[2].(*ast.Subtree)
		if !ok || !rhs.Is(ast.Begin) {
			return t, nil
		}

		out := []ast.Node{ast.Begin}
		receiver := t.Nodes[1]
		if !ast.IsAtom(receiver) {
			tmp := ctx.Fresh()
			out = append(out, ast.Form(ast.Define, tmp, receiver))
			receiver = tmp
		}
		stmts, value := splitSequence(rhs)
		out = append(out, stmts...)
		out = append(out, ast.NewSubtree(t.Nodes[0], receiver, value))
		return &ast.Subtree{Nodes: out}, nil
	})
}

// SequenceFlattener splices nested begin forms into their enclosing begin.
type SequenceFlattener struct {
	name string
}

// NewSequenceFlattener creates the sequence splicing pass.
func NewSequenceFlattener() *SequenceFlattener {
	return &SequenceFlattener{name: "sequence-flattener"}
}

// Name returns the pass name used in logs.
func (f *SequenceFlattener) Name() string { return f.name }

// Apply splices every nested begin, innermost first.
func (f *SequenceFlattener) Apply(_ *Context, tree ast.Node) (ast.Node, error) {
	return ast.Rewrite(tree, func(t *ast.Subtree) (ast.Node, error) {
		if !t.Is(ast.Begin) || !hasNestedBegin(t) {
			return t, nil
		}
		out := make([]ast.Node, 0, len(t.Nodes))
		for _, child := range t.Nodes {
			if inner, ok := child.(*ast.Subtree); ok && inner.Is(ast.Begin) {
				out = append(out, inner.Nodes[1:]...)
				continue
			}
			out = append(out, child)
		}
		return &ast.Subtree{Nodes: out}, nil
	})
}

func hasNestedBegin(t *ast.Subtree) bool {
	for _, child := range t.Nodes[1:] {
		if ast.IsForm(child, ast.Begin) {
			return true
		}
	}
	return false
}
