package gensym

import (
	"testing"

	"github.com/wippyai/contnorm/ast"
)

func TestNamer_Sequence(t *testing.T) {
	n := New()
	for i, want := range []ast.Symbol{"G1", "G2", "G3"} {
		if got := n.Fresh(); got != want {
			t.Errorf("Fresh() #%d = %q, want %q", i, got, want)
		}
	}
	if n.Count() != 3 {
		t.Errorf("Count() = %d, want 3", n.Count())
	}
}

func TestNamer_WithPrefix(t *testing.T) {
	n := New(WithPrefix("tmp"))
	if got := n.Fresh(); got != "tmp1" {
		t.Errorf("Fresh() = %q, want tmp1", got)
	}
	if n.Prefix() != "tmp" {
		t.Errorf("Prefix() = %q", n.Prefix())
	}

	// empty prefix keeps the default
	if got := New(WithPrefix("")).Fresh(); got != "G1" {
		t.Errorf("Fresh() = %q, want G1", got)
	}
}

func TestNamer_ReserveSkipsSourceSymbols(t *testing.T) {
	n := New()
	n.Reserve(ast.Form("define", ast.Symbol("G1"), ast.Form("f", ast.Symbol("G3"))))

	got := []ast.Symbol{n.Fresh(), n.Fresh(), n.Fresh()}
	want := []ast.Symbol{"G2", "G4", "G5"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fresh() #%d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNamer_ReserveIgnoresStrings(t *testing.T) {
	n := New()
	n.Reserve(ast.Form("f", ast.StringLiteral("G1")))
	if got := n.Fresh(); got != "G1" {
		t.Errorf("Fresh() = %q, want G1 (string literals are not symbols)", got)
	}
}

func TestNamer_Reset(t *testing.T) {
	n := New()
	n.Reserve(ast.Symbol("G1"))
	n.Fresh()
	n.Fresh()
	n.Reset()

	if got := n.Fresh(); got != "G1" {
		t.Errorf("Fresh() after Reset = %q, want G1", got)
	}
	if n.Count() != 1 {
		t.Errorf("Count() after Reset = %d, want 1", n.Count())
	}
}

func TestNamer_Unique(t *testing.T) {
	n := New()
	seen := make(map[ast.Symbol]bool)
	for i := 0; i < 1000; i++ {
		s := n.Fresh()
		if seen[s] {
			t.Fatalf("duplicate symbol %q", s)
		}
		seen[s] = true
	}
}

func TestNamer_Independent(t *testing.T) {
	a, b := New(), New()
	a.Fresh()
	a.Fresh()
	if got := b.Fresh(); got != "G1" {
		t.Errorf("second Namer Fresh() = %q, want G1", got)
	}
}
