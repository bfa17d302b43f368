// Package gensym generates fresh symbols for synthetic labels and temporaries.
//
// A Namer hands out G1, G2, ... in call order. Names recorded with Reserve
// (typically every symbol of the input tree) are skipped, so a generated
// symbol never collides with a source symbol. A Namer belongs to a single
// normalization run and is not safe for concurrent use; concurrent runs each
// own their Namer.
package gensym

import (
	"strconv"

	"github.com/wippyai/contnorm/ast"
)

// DefaultPrefix is the prefix of generated names.
const DefaultPrefix = "G"

// Namer is a monotonic fresh-symbol generator.
type Namer struct {
	reserved map[ast.Symbol]struct{}
	prefix   string
	next     int
	issued   int
}

// Option configures a Namer.
type Option func(*Namer)

// WithPrefix sets the prefix of generated names.
func WithPrefix(prefix string) Option {
	return func(n *Namer) {
		if prefix != "" {
			n.prefix = prefix
		}
	}
}

// New creates a Namer whose first symbol is <prefix>1.
func New(opts ...Option) *Namer {
	n := &Namer{
		prefix:   DefaultPrefix,
		next:     1,
		reserved: make(map[ast.Symbol]struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Fresh returns a symbol never returned before and not reserved.
func (n *Namer) Fresh() ast.Symbol {
	for {
		sym := ast.Symbol(n.prefix + strconv.Itoa(n.next))
		n.next++
		if _, taken := n.reserved[sym]; taken {
			continue
		}
		n.issued++
		return sym
	}
}

// Reserve records every symbol in root so Fresh never returns it.
func (n *Namer) Reserve(root ast.Node) {
	ast.Walk(root, func(node ast.Node) bool {
		if sym, ok := node.(ast.Symbol); ok {
			n.reserved[sym] = struct{}{}
		}
		return true
	})
}

// Reset forgets reservations and restarts numbering at 1.
func (n *Namer) Reset() {
	n.next = 1
	n.issued = 0
	clear(n.reserved)
}

// Count returns how many symbols Fresh has issued since creation or Reset.
func (n *Namer) Count() int {
	return n.issued
}

// Prefix returns the prefix of generated names.
func (n *Namer) Prefix() string {
	return n.prefix
}
