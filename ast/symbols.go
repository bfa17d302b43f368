package ast

import "strings"

// Reserved operator symbols.
const (
	If                 Symbol = "if"
	Begin              Symbol = "begin"
	SetBang            Symbol = "set!"
	Define             Symbol = "define"
	Call               Symbol = "call"
	Yield              Symbol = "yield"
	LetCall            Symbol = "let/call"
	CallContinuation   Symbol = "call-continuation"
	NewContinuation    Symbol = "new-continuation"
	Label              Symbol = "label"
	Goto               Symbol = "goto"
	CurrentEnvironment Symbol = "@current-environment"
	ReturnContinuation Symbol = "@return-continuation"
	Nil                Symbol = "nil"
)

// PseudoPrefix marks reserved pseudo-variables such as @current-environment.
const PseudoPrefix = "@"

var reserved = map[Symbol]struct{}{
	If: {}, Begin: {}, SetBang: {}, Define: {}, Call: {}, Yield: {}, LetCall: {},
	CallContinuation: {}, NewContinuation: {}, Label: {}, Goto: {},
	CurrentEnvironment: {}, ReturnContinuation: {}, Nil: {},
}

// Reserved reports whether s is one of the reserved operator symbols.
func (s Symbol) Reserved() bool {
	_, ok := reserved[s]
	return ok
}

// Pseudo reports whether s names a reserved pseudo-variable.
func (s Symbol) Pseudo() bool {
	return strings.HasPrefix(string(s), PseudoPrefix)
}
