// Package syntax reads and prints the parenthesized prefix notation of the
// expression language.
//
//	(begin
//	  (define k (new-continuation G1 @current-environment))
//	  (call-continuation k target "value")
//	  (label G1))
//
// Atoms are symbols, numbers, strings, and null. Symbols starting with @ are
// reserved pseudo-variables. Comments run from ; to end of line, or between
// #| and |# (nestable).
//
// Parse reads exactly one form, ParseAll reads a sequence of top-level forms.
// ast.Render prints the canonical single-line text; Pretty prints an
// indented layout where every statement of a begin sits on its own line.
package syntax
