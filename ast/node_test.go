package ast

import "testing"

func TestNewSubtree_CopiesNodes(t *testing.T) {
	nodes := []Node{Begin, Symbol("foo")}
	tree := NewSubtree(nodes...)
	nodes[1] = Symbol("bar")

	if tree.Nodes[1] != Symbol("foo") {
		t.Errorf("subtree shares caller slice: got %v", tree.Nodes[1])
	}
}

func TestSubtree_Head(t *testing.T) {
	tests := []struct {
		name   string
		tree   *Subtree
		want   Symbol
		wantOK bool
	}{
		{"empty", NewSubtree(), "", false},
		{"symbol head", Form(If, Symbol("c"), Symbol("t")), If, true},
		{"literal head", NewSubtree(StringLiteral("x")), "", false},
		{"subtree head", NewSubtree(Form(Symbol("f")), Symbol("x")), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.tree.Head()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Head() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsForm(t *testing.T) {
	if !IsForm(Form(Label, Symbol("L")), Label) {
		t.Error("IsForm should match (label L)")
	}
	if IsForm(Label, Label) {
		t.Error("IsForm should not match a bare symbol")
	}
	if IsForm(NewSubtree(), Label) {
		t.Error("IsForm should not match an empty subtree")
	}
}

func TestSymbol_Reserved(t *testing.T) {
	for _, s := range []Symbol{If, Begin, SetBang, Define, Call, Yield, LetCall,
		CallContinuation, NewContinuation, Label, Goto, CurrentEnvironment, ReturnContinuation, Nil} {
		if !s.Reserved() {
			t.Errorf("%q should be reserved", s)
		}
	}
	if Symbol("foo").Reserved() {
		t.Error("foo should not be reserved")
	}
	if !CurrentEnvironment.Pseudo() || Begin.Pseudo() {
		t.Error("Pseudo() misclassified")
	}
}
