package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Render returns the canonical single-line text of n. Parsing the result
// yields a tree Equal to n.
func Render(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func (s Symbol) String() string { return string(s) }

func (s StringLiteral) String() string { return strconv.Quote(string(s)) }

func (l HostLiteral) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "null"
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(v)
	}
	return fmt.Sprintf("#<%T %v>", l.Value, l.Value)
}

func (t *Subtree) String() string { return Render(t) }

func writeNode(b *strings.Builder, n Node) {
	t, ok := n.(*Subtree)
	if !ok {
		if n == nil {
			b.WriteString("<nil>")
			return
		}
		b.WriteString(n.String())
		return
	}
	b.WriteByte('(')
	for i, child := range t.Nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeNode(b, child)
	}
	b.WriteByte(')')
}
