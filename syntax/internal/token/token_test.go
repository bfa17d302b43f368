package token

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			"empty",
			"",
			nil,
		},
		{
			"parens",
			"()",
			[]Token{{"(", LParen, 1}, {")", RParen, 1}},
		},
		{
			"form",
			"(begin)",
			[]Token{{"(", LParen, 1}, {"begin", Atom, 1}, {")", RParen, 1}},
		},
		{
			"whitespace",
			"  (  begin  )  ",
			[]Token{{"(", LParen, 1}, {"begin", Atom, 1}, {")", RParen, 1}},
		},
		{
			"newlines",
			"(\nbegin\n)",
			[]Token{{"(", LParen, 1}, {"begin", Atom, 2}, {")", RParen, 3}},
		},
		{
			"punctuated symbols",
			"set! let/call @current-environment call-continuation",
			[]Token{{"set!", Atom, 1}, {"let/call", Atom, 1}, {"@current-environment", Atom, 1}, {"call-continuation", Atom, 1}},
		},
		{
			"operators",
			"(+ foo 1)",
			[]Token{{"(", LParen, 1}, {"+", Atom, 1}, {"foo", Atom, 1}, {"1", Atom, 1}, {")", RParen, 1}},
		},
		{
			"number adjacent to paren",
			"(-1)",
			[]Token{{"(", LParen, 1}, {"-1", Atom, 1}, {")", RParen, 1}},
		},
		{
			"string",
			`"some value"`,
			[]Token{{"some value", String, 1}},
		},
		{
			"string_quote_escape",
			`"say \"hi\""`,
			[]Token{{`say \"hi\"`, String, 1}},
		},
		{
			"string adjacent to atom",
			`foo"bar"`,
			[]Token{{"foo", Atom, 1}, {"bar", String, 1}},
		},
		{
			"unterminated string",
			`"abc`,
			[]Token{{"abc", Unterminated, 1}},
		},
		{
			"line_comment",
			"; comment\n(begin)",
			[]Token{{"(", LParen, 2}, {"begin", Atom, 2}, {")", RParen, 2}},
		},
		{
			"trailing comment",
			"foo ; bar",
			[]Token{{"foo", Atom, 1}},
		},
		{
			"block_comment",
			"#| comment |#(begin)",
			[]Token{{"(", LParen, 1}, {"begin", Atom, 1}, {")", RParen, 1}},
		},
		{
			"nested_block_comment",
			"#| outer #| inner |# outer\n |#x",
			[]Token{{"x", Atom, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(tt.expected), tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{LParen, "'('"},
		{RParen, "')'"},
		{Atom, "atom"},
		{String, "string"},
		{Unterminated, "unterminated string"},
		{Type(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
