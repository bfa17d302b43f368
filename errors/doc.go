// Package errors provides structured error types for the normalizer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the rendered form that triggered it, the source line
// for reader errors, and an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseExpand, errors.KindMalformedForm).
//		Form("(call)").
//		Detail("call needs a target continuation").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedForm(errors.PhaseFlatten, "(if x)", "if takes 2 or 3 operands")
//	err := errors.UnexpectedEOF(12)
//
// All errors implement the standard error interface and support errors.Is/As.
// ErrMalformedForm and ErrNotConverged match errors of their kind from any phase.
package errors
