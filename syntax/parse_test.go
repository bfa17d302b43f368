package syntax

import (
	"errors"
	"testing"

	"github.com/wippyai/contnorm/ast"
	cerrors "github.com/wippyai/contnorm/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Node
	}{
		{"symbol", "foo", ast.Symbol("foo")},
		{"pseudo variable", "@current-environment", ast.CurrentEnvironment},
		{"string", `"some value"`, ast.StringLiteral("some value")},
		{"string escapes", `"a\n\"b\""`, ast.StringLiteral("a\n\"b\"")},
		{"null", "null", ast.Null},
		{"nil is a symbol", "nil", ast.Nil},
		{"int", "7", ast.HostLiteral{Value: int64(7)}},
		{"signed int", "-2", ast.HostLiteral{Value: int64(-2)}},
		{"float", "2.5", ast.HostLiteral{Value: 2.5}},
		{"plus is a symbol", "+", ast.Symbol("+")},
		{"inf is a symbol", "inf", ast.Symbol("inf")},
		{"empty subtree", "()", ast.NewSubtree()},
		{"call",
			"(call target value)",
			ast.Form(ast.Call, ast.Symbol("target"), ast.Symbol("value"))},
		{"nested",
			`(set! foo (bash "bar" null))`,
			ast.Form(ast.SetBang, ast.Symbol("foo"), ast.Form("bash", ast.StringLiteral("bar"), ast.Null))},
		{"comments",
			"; leading\n(label #| inline |# L) ; trailing",
			ast.Form(ast.Label, ast.Symbol("L"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if !ast.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  cerrors.Kind
		line  int
	}{
		{"empty", "", cerrors.KindInvalidInput, 0},
		{"unclosed", "(begin (foo)", cerrors.KindUnexpectedEOF, 1},
		{"unclosed multiline", "(begin\n  (foo\n", cerrors.KindUnexpectedEOF, 2},
		{"stray close", ")", cerrors.KindUnexpectedToken, 1},
		{"trailing form", "(a) (b)", cerrors.KindUnexpectedToken, 1},
		{"unterminated string", `(foo "bar)`, cerrors.KindUnexpectedEOF, 1},
		{"bad escape", `"\q"`, cerrors.KindInvalidLiteral, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			var e *cerrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not *errors.Error", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v (%v)", e.Kind, tt.kind, err)
			}
			if e.Phase != cerrors.PhaseParse {
				t.Errorf("Phase = %v, want parse", e.Phase)
			}
			if e.Line != tt.line {
				t.Errorf("Line = %d, want %d", e.Line, tt.line)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	forms, err := ParseAll("(define x 1)\n(call k x)\nfoo")
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("got %d forms, want 3", len(forms))
	}
	if !ast.Equal(forms[2], ast.Symbol("foo")) {
		t.Errorf("forms[2] = %v", forms[2])
	}

	forms, err = ParseAll("  ; nothing here\n")
	if err != nil {
		t.Fatalf("ParseAll of blank input failed: %v", err)
	}
	if len(forms) != 0 {
		t.Errorf("got %d forms from blank input", len(forms))
	}

	if _, err := ParseAll("(a) (b"); err == nil {
		t.Error("expected error for unclosed second form")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`(begin (call-continuation (new-continuation G1 @current-environment) target value) (label G1))`,
		`(if foo bar blitz)`,
		`(bash "say \"hi\"" null -3 2.5 ())`,
		`(defun bash () null)`,
	}
	for _, in := range inputs {
		node := MustParse(in)
		again, err := Parse(ast.Render(node))
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", ast.Render(node), err)
		}
		if !ast.Equal(node, again) {
			t.Errorf("round trip changed %q into %q", in, ast.Render(again))
		}
		if ast.Render(node) != in {
			t.Errorf("Render = %q, want %q", ast.Render(node), in)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on malformed input")
		}
	}()
	MustParse("(")
}
