package ast

import "fmt"

// Node is a node in the expression tree. The set of implementations is closed.
type Node interface {
	fmt.Stringer
	isNode()
}

// Symbol is an interned name. Symbols are equal when their names are equal.
type Symbol string

// StringLiteral is a string constant from the source.
type StringLiteral string

// HostLiteral wraps an opaque host value. The reader produces nil for null,
// int64 for integers and float64 for reals.
type HostLiteral struct {
	Value any
}

// Null is the null literal.
var Null = HostLiteral{}

// Subtree is an ordered sequence of child nodes.
// Nodes must be treated as read-only once the subtree is built.
type Subtree struct {
	Nodes []Node
}

func (Symbol) isNode()        {}
func (StringLiteral) isNode() {}
func (HostLiteral) isNode()   {}
func (*Subtree) isNode()      {}

// NewSubtree builds a subtree owning a private copy of nodes.
func NewSubtree(nodes ...Node) *Subtree {
	owned := make([]Node, len(nodes))
	copy(owned, nodes)
	return &Subtree{Nodes: owned}
}

// Form builds (head nodes...).
func Form(head Symbol, nodes ...Node) *Subtree {
	owned := make([]Node, 0, len(nodes)+1)
	owned = append(owned, head)
	owned = append(owned, nodes...)
	return &Subtree{Nodes: owned}
}

// Len returns the number of children, including the form tag.
func (t *Subtree) Len() int {
	return len(t.Nodes)
}

// Head returns the leading symbol, if the first child is one.
func (t *Subtree) Head() (Symbol, bool) {
	if len(t.Nodes) == 0 {
		return "", false
	}
	s, ok := t.Nodes[0].(Symbol)
	return s, ok
}

// Is reports whether the subtree is a form named by sym.
func (t *Subtree) Is(sym Symbol) bool {
	head, ok := t.Head()
	return ok && head == sym
}

// IsForm reports whether n is a subtree whose form is sym.
func IsForm(n Node, sym Symbol) bool {
	t, ok := n.(*Subtree)
	return ok && t.Is(sym)
}

// IsAtom reports whether n is anything other than a subtree.
func IsAtom(n Node) bool {
	_, ok := n.(*Subtree)
	return !ok
}
