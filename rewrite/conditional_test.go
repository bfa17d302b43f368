package rewrite

import (
	"errors"
	"testing"

	cerrors "github.com/wippyai/contnorm/errors"
	"github.com/wippyai/contnorm/syntax"
)

func TestIfFlattener(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "no entries",
			src:  "(if foo bar blitz)",
			want: "(if foo bar blitz)",
		},
		{
			name: "entry in consequent",
			src:  "(if bar (begin (call-continuation continuation foo) (label continuation-label)) blitz)",
			want: "(begin (if bar (goto G1 nil) nil) (goto G2 blitz) (label G1) " +
				"(goto G2 (begin (call-continuation continuation foo) (label continuation-label))) (label G2))",
		},
		{
			name: "entry in alternative",
			src:  "(if c x (begin (foo) (label y)))",
			want: "(begin (if c (goto G1 nil) nil) (goto G2 (begin (foo) (label y))) (label G1) (goto G2 x) (label G2))",
		},
		{
			name: "missing alternative",
			src:  "(if c (label y))",
			want: "(begin (if c (goto G1 nil) nil) (goto G2 nil) (label G1) (goto G2 (label y)) (label G2))",
		},
		{
			name: "entry only in condition",
			src:  "(if (begin (foo) (label y)) a b)",
			want: "(if (begin (foo) (label y)) a b)",
		},
		{
			name: "nested",
			src:  "(foo (if c (label y) z))",
			want: "(foo (begin (if c (goto G1 nil) nil) (goto G2 z) (label G1) (goto G2 (label y)) (label G2)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPass(t, NewIfFlattener(), tt.src, tt.want)
		})
	}
}

func TestIfFlattener_UnchangedReturnsSameTree(t *testing.T) {
	tree := syntax.MustParse("(begin (if foo bar blitz) (if a b))")
	out, err := NewIfFlattener().Apply(NewContext(), tree)
	if err != nil {
		t.Fatal(err)
	}
	if out != tree {
		t.Error("expected the input tree back")
	}
}

func TestIfFlattener_Malformed(t *testing.T) {
	for _, src := range []string{"(if c)", "(if)", "(if a b c d)", "(foo (if c))"} {
		t.Run(src, func(t *testing.T) {
			_, err := applyPass(t, NewIfFlattener(), src)
			if !errors.Is(err, cerrors.ErrMalformedForm) {
				t.Fatalf("expected malformed form error, got %v", err)
			}
		})
	}
}
