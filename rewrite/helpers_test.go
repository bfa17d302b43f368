package rewrite

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/syntax"
)

// applyPass parses src, reserves its symbols and applies p once.
func applyPass(t *testing.T, p Pass, src string) (string, error) {
	t.Helper()
	ctx := NewContext()
	tree := syntax.MustParse(src)
	ctx.Namer().Reserve(tree)
	out, err := p.Apply(ctx, tree)
	if err != nil {
		return "", err
	}
	return ast.Render(out), nil
}

func assertPass(t *testing.T, p Pass, src, want string) {
	t.Helper()
	got, err := applyPass(t, p, src)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", p.Name(), err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s(%s) mismatch (-want +got):\n%s", p.Name(), src, diff)
	}
}
