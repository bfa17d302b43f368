// Package ast defines the expression tree rewritten by the normalizer.
//
// A tree is built from four node kinds:
//
//	Symbol         interned name, equal by name ("begin", "foo", "@current-environment")
//	StringLiteral  opaque string value
//	HostLiteral    opaque embedded host value (null, integers, reals)
//	*Subtree       ordered children; a leading Symbol names the form
//
// Nodes are immutable once constructed. Rewrites build new subtrees and may
// share unchanged children, so two trees are compared with Equal, never by
// identity.
//
// # Traversal
//
// Accept dispatches a node to the Visitor method for its kind. Rewrite is the
// bottom-up driver used by every rewriting pass: it rebuilds each subtree
// after its children have been rewritten, then hands it to a callback. Walk
// is a read-only pre-order traversal.
package ast
