package ast

import "reflect"

// Equal reports whether a and b are structurally equal: same kind, same
// symbol or literal value, and pairwise equal children.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case StringLiteral:
		y, ok := b.(StringLiteral)
		return ok && x == y
	case HostLiteral:
		y, ok := b.(HostLiteral)
		return ok && reflect.DeepEqual(x.Value, y.Value)
	case *Subtree:
		y, ok := b.(*Subtree)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		if x == nil || y == nil || len(x.Nodes) != len(y.Nodes) {
			return false
		}
		for i := range x.Nodes {
			if !Equal(x.Nodes[i], y.Nodes[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	}
	return false
}
