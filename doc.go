// Package contnorm rewrites a small Scheme-like expression language so that
// every point where control can re-enter through a continuation sits at the
// top level of a begin sequence.
//
// A continuation-capturing call such as
//
//	(bash (call k v))
//
// becomes a flat sequence whose label marks the return point:
//
//	(begin
//	  (call-continuation (new-continuation G1 @current-environment) k v)
//	  (define G2 (label G1))
//	  (bash G2))
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	contnorm/
//	├── ast/             Immutable tree model, visitor dispatch, bottom-up rewriting
//	├── gensym/          Per-run generator of fresh symbols
//	├── syntax/          Reader and printers for the parenthesized notation
//	├── rewrite/         Expanders, flatteners and the fixed-point pipeline
//	├── normalize/       Run configuration, multi-form and concurrent batch entry points
//	├── errors/          Structured error types for debugging
//	└── cmd/contnorm/    Command-line tool and interactive REPL
//
// # Quick Start
//
//	results, err := normalize.Source(src, normalize.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Println(syntax.Pretty(r.Tree))
//	}
//
// # Normal Form
//
// In the output, call-continuation, new-continuation, label and goto never
// occur in an argument position of an ordinary application. A label may be
// bound to a temporary, (define G2 (label G1)), which names the value
// delivered when control returns to G1.
//
// # Convergence
//
// The standard pipeline repeats its passes until a round changes nothing, at
// most eight rounds by default. A run that hits the cap still returns its
// tree, flagged as not converged and logged as a warning; strict mode turns
// it into an error.
//
// # Thread Safety
//
// Trees are immutable and may be shared between goroutines. A rewrite.Context
// belongs to one run and must not be shared; normalize.Batch gives every unit
// its own.
package contnorm
