package syntax

import (
	"strconv"

	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/errors"
	"github.com/wippyai/contnorm/syntax/internal/token"
)

// Parse reads a single form from source.
func Parse(source string) (ast.Node, error) {
	p := newParser(source)
	if p.peek() == nil {
		return nil, errors.InvalidInput(errors.PhaseParse, "no form in input")
	}
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil {
		return nil, errors.UnexpectedToken(t.Line, t.Value)
	}
	return node, nil
}

// ParseAll reads every top-level form in source. Empty input yields no forms.
func ParseAll(source string) ([]ast.Node, error) {
	p := newParser(source)
	var forms []ast.Node
	for p.peek() != nil {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		forms = append(forms, node)
	}
	return forms, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(source string) ast.Node {
	node, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return node
}

type parser struct {
	tokens []token.Token
	pos    int
}

func newParser(source string) *parser {
	return &parser{tokens: token.Tokenize(source)}
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[len(p.tokens)-1].Line
}

func (p *parser) parseNode() (ast.Node, error) {
	t := p.next()
	if t == nil {
		return nil, errors.UnexpectedEOF(p.lastLine())
	}

	switch t.Type {
	case token.LParen:
		return p.parseSubtree()
	case token.RParen:
		return nil, errors.UnexpectedToken(t.Line, t.Value)
	case token.String:
		s, err := strconv.Unquote(`"` + t.Value + `"`)
		if err != nil {
			return nil, errors.InvalidLiteral(t.Line, `"`+t.Value+`"`, err)
		}
		return ast.StringLiteral(s), nil
	case token.Unterminated:
		return nil, errors.UnexpectedEOF(p.lastLine())
	}
	return parseAtom(t.Value), nil
}

func (p *parser) parseSubtree() (ast.Node, error) {
	var nodes []ast.Node
	for {
		t := p.peek()
		if t == nil {
			return nil, errors.UnexpectedEOF(p.lastLine())
		}
		if t.Type == token.RParen {
			p.next()
			return &ast.Subtree{Nodes: nodes}, nil
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// parseAtom classifies a bare atom as null, a number, or a symbol.
func parseAtom(text string) ast.Node {
	if text == "null" {
		return ast.Null
	}
	if looksNumeric(text) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return ast.HostLiteral{Value: i}
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return ast.HostLiteral{Value: f}
		}
	}
	return ast.Symbol(text)
}

// looksNumeric rejects words ParseFloat accepts but the language treats as
// symbols, such as inf and nan.
func looksNumeric(text string) bool {
	s := text
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || (c == '.' && len(s) > 1 && s[1] >= '0' && s[1] <= '9')
}
