package token

import "unicode"

type Type int

const (
	LParen Type = iota
	RParen
	Atom
	String
	Unterminated // string literal that reaches end of input
)

func (t Type) String() string {
	switch t {
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Atom:
		return "atom"
	case String:
		return "string"
	case Unterminated:
		return "unterminated string"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

// Tokenize splits source text into tokens. String tokens keep their escape
// sequences verbatim with the quotes stripped.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == ';' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			i--
			continue
		}

		// Block comment #| ... |#, nestable
		if r == '#' && i+1 < len(runes) && runes[i+1] == '|' {
			depth := 1
			i += 2
			for i < len(runes) && depth > 0 {
				if runes[i] == '#' && i+1 < len(runes) && runes[i+1] == '|' {
					depth++
					i++
				} else if runes[i] == '|' && i+1 < len(runes) && runes[i+1] == '#' {
					depth--
					i++
				} else if runes[i] == '\n' {
					line++
				}
				i++
			}
			i--
			continue
		}

		if r == '(' {
			tokens = append(tokens, Token{"(", LParen, line})
			continue
		}

		if r == ')' {
			tokens = append(tokens, Token{")", RParen, line})
			continue
		}

		// String literal
		if r == '"' {
			startLine := line
			start := i + 1
			i++
			for i < len(runes) && runes[i] != '"' {
				if runes[i] == '\\' {
					i++
				}
				if i < len(runes) && runes[i] == '\n' {
					line++
				}
				i++
			}
			end := min(i, len(runes))
			tok := Token{string(runes[start:end]), String, startLine}
			if i >= len(runes) {
				tok.Type = Unterminated
			}
			tokens = append(tokens, tok)
			continue
		}

		// Atom: symbols, numbers, null
		start := i
		for i < len(runes) && !isDelimiter(runes[i]) {
			i++
		}
		tokens = append(tokens, Token{string(runes[start:i]), Atom, line})
		i--
	}

	return tokens
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' || r == '"' || r == ';'
}
