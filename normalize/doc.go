// Package normalize is the entry point for rewriting source into continuation
// normal form.
//
// Tree normalizes one parsed expression, Source parses and normalizes every
// top-level form of a program, and Batch normalizes independent programs
// concurrently. Each call is one run: it owns a fresh name generator, so
// generated labels start from the configured prefix again and never collide
// with symbols of the input.
//
// Basic usage:
//
//	results, err := normalize.Source("(bash (call k v))", normalize.Config{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(results[0].Tree)
//	// (begin (call-continuation (new-continuation G1 @current-environment) k v) (define G2 (label G1)) (bash G2))
package normalize
