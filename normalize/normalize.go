package normalize

import (
	"go.uber.org/zap"

	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/errors"
	"github.com/wippyai/contnorm/rewrite"
	"github.com/wippyai/contnorm/syntax"
)

// Result is the normal form of one top-level expression.
type Result struct {
	Input ast.Node
	Tree  ast.Node

	// Stalled names every pipeline, nested ones included, that hit its
	// iteration cap while producing Tree.
	Stalled []string

	Iterations int
	Converged  bool
}

// Tree normalizes a single expression. In strict mode a run that does not
// converge returns its partial result together with an ErrNotConverged error.
func Tree(tree ast.Node, cfg Config) (Result, error) {
	ctx := cfg.newContext()
	return run(ctx, cfg.pipeline(), tree, cfg)
}

// Source parses every top-level form of src and normalizes them in order.
// The forms share one run, so generated names are unique across the program.
// On failure the results completed so far are returned with the error,
// including the partial result of a form that did not converge in strict mode.
func Source(src string, cfg Config) ([]Result, error) {
	forms, err := syntax.ParseAll(src)
	if err != nil {
		return nil, err
	}

	ctx := cfg.newContext()
	for _, form := range forms {
		ctx.Namer().Reserve(form)
	}
	p := cfg.pipeline()

	results := make([]Result, 0, len(forms))
	for _, form := range forms {
		res, err := run(ctx, p, form, cfg)
		if err != nil {
			if res.Tree != nil {
				results = append(results, res)
			}
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func run(ctx *rewrite.Context, p *rewrite.Pipeline, tree ast.Node, cfg Config) (Result, error) {
	stalled := len(ctx.Stalled())
	out, err := p.Run(ctx, tree)
	if err != nil {
		return Result{Input: tree}, err
	}

	res := Result{
		Input:      tree,
		Tree:       out.Tree,
		Iterations: out.Iterations,
		Converged:  out.Converged,
		Stalled:    ctx.Stalled()[stalled:],
	}
	if !res.Converged {
		cfg.logger().Warn("expression left partially normalized",
			zap.Stringer("input", tree),
			zap.Int("iterations", res.Iterations))
		if cfg.Strict {
			return res, errors.NotConverged(p.Name(), res.Iterations)
		}
	}
	return res, nil
}
