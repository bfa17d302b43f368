package ast

// Visitor receives a node of each kind along with a pass-specific accumulator.
// Each method returns the node that replaces the visited one (the node itself
// for no change) and the updated accumulator.
type Visitor interface {
	VisitSymbol(s Symbol, acc any) (Node, any, error)
	VisitStringLiteral(s StringLiteral, acc any) (Node, any, error)
	VisitHostLiteral(l HostLiteral, acc any) (Node, any, error)
	VisitSubtree(t *Subtree, acc any) (Node, any, error)
}

// Accept dispatches n to the Visitor method for its kind.
func Accept(n Node, v Visitor, acc any) (Node, any, error) {
	switch x := n.(type) {
	case Symbol:
		return v.VisitSymbol(x, acc)
	case StringLiteral:
		return v.VisitStringLiteral(x, acc)
	case HostLiteral:
		return v.VisitHostLiteral(x, acc)
	case *Subtree:
		return v.VisitSubtree(x, acc)
	}
	return n, acc, nil
}

// Identity is a Visitor that returns every node unchanged. Embed it to
// override only the kinds a visitor cares about.
type Identity struct{}

func (Identity) VisitSymbol(s Symbol, acc any) (Node, any, error) { return s, acc, nil }

func (Identity) VisitStringLiteral(s StringLiteral, acc any) (Node, any, error) {
	return s, acc, nil
}

func (Identity) VisitHostLiteral(l HostLiteral, acc any) (Node, any, error) { return l, acc, nil }

func (Identity) VisitSubtree(t *Subtree, acc any) (Node, any, error) { return t, acc, nil }

// RewriteFunc transforms a subtree whose children have already been rewritten.
type RewriteFunc func(t *Subtree) (Node, error)

// Rewrite rebuilds n bottom-up. Every subtree is first rebuilt from its
// rewritten children and then passed to fn; atoms are returned as-is.
// The input tree is never modified. Subtrees whose children are all
// unchanged are reused.
func Rewrite(n Node, fn RewriteFunc) (Node, error) {
	out, _, err := Accept(n, &rewriter{fn: fn}, nil)
	return out, err
}

type rewriter struct {
	Identity
	fn RewriteFunc
}

func (r *rewriter) VisitSubtree(t *Subtree, acc any) (Node, any, error) {
	var nodes []Node
	for i, child := range t.Nodes {
		sub, ok := child.(*Subtree)
		if !ok {
			if nodes != nil {
				nodes[i] = child
			}
			continue
		}
		out, _, err := r.VisitSubtree(sub, nil)
		if err != nil {
			return nil, acc, err
		}
		if same, isSub := out.(*Subtree); nodes == nil && (!isSub || same != sub) {
			nodes = make([]Node, len(t.Nodes))
			copy(nodes, t.Nodes[:i])
		}
		if nodes != nil {
			nodes[i] = out
		}
	}
	rebuilt := t
	if nodes != nil {
		rebuilt = &Subtree{Nodes: nodes}
	}
	out, err := r.fn(rebuilt)
	return out, acc, err
}

// Walk visits n and its descendants in pre-order. Children of a subtree are
// skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	if t, ok := n.(*Subtree); ok {
		for _, child := range t.Nodes {
			Walk(child, fn)
		}
	}
}
