package rewrite

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/contnorm/ast"
)

// MaxIterations is the default cap on rounds of a Pipeline.
const MaxIterations = 8

// Result is the outcome of running a Pipeline.
type Result struct {
	Tree       ast.Node
	Iterations int
	Converged  bool
}

// Pipeline applies an ordered list of passes, in rounds, until a round leaves
// the tree unchanged. A Pipeline is itself a Pass and can be nested.
type Pipeline struct {
	name          string
	passes        []Pass
	maxIterations int
}

// NewPipeline creates a pipeline running passes in the given order.
// Duplicate passes are dropped.
func NewPipeline(name string, passes ...Pass) *Pipeline {
	p := &Pipeline{name: name, maxIterations: MaxIterations}
	for _, pass := range passes {
		p.Add(pass)
	}
	return p
}

// NewEntryFlattenPipeline groups the expression flatteners: arguments are
// flattened first, then bindings, then nested sequences are spliced.
func NewEntryFlattenPipeline() *Pipeline {
	return NewPipeline("entry-flatten",
		NewEntryFlattener(),
		NewBindingFlattener(),
		NewSequenceFlattener(),
	)
}

// NewStandardPipeline assembles the complete normalization.
func NewStandardPipeline() *Pipeline {
	return NewPipeline("normalize",
		NewCallExpander(),
		NewYieldExpander(),
		NewLetCallExpander(),
		NewIfFlattener(),
		NewEntryFlattenPipeline(),
	)
}

// Name returns the pipeline name used in logs.
func (p *Pipeline) Name() string { return p.name }

// Add appends pass unless the same instance is already present.
// It reports whether the pass was added.
func (p *Pipeline) Add(pass Pass) bool {
	for _, existing := range p.passes {
		if existing == pass {
			return false
		}
	}
	p.passes = append(p.passes, pass)
	return true
}

// Passes returns the passes in execution order.
func (p *Pipeline) Passes() []Pass {
	return append([]Pass(nil), p.passes...)
}

// SetMaxIterations changes the round cap. Values below one restore the
// default.
func (p *Pipeline) SetMaxIterations(n int) {
	if n < 1 {
		n = MaxIterations
	}
	p.maxIterations = n
}

// MaxIterations returns the round cap.
func (p *Pipeline) MaxIterations() int { return p.maxIterations }

// Run applies the passes until a full round changes nothing. Reaching the
// cap is not an error: the last tree is returned with Converged unset and the
// stall is recorded on ctx. Symbols of tree are reserved in the run's Namer
// so generated names never shadow source names.
func (p *Pipeline) Run(ctx *Context, tree ast.Node) (Result, error) {
	ctx.Namer().Reserve(tree)
	log := ctx.Logger()

	current := tree
	for iter := 1; ; iter++ {
		before := current
		for _, pass := range p.passes {
			out, err := pass.Apply(ctx, current)
			if err != nil {
				return Result{}, err
			}
			if ce := log.Check(zapcore.DebugLevel, "pass applied"); ce != nil {
				ce.Write(
					zap.String("pipeline", p.name),
					zap.String("pass", pass.Name()),
					zap.Int("iteration", iter),
					zap.Bool("changed", !ast.Equal(current, out)),
				)
			}
			current = out
		}

		if ast.Equal(before, current) {
			return Result{Tree: current, Iterations: iter, Converged: true}, nil
		}
		if iter >= p.maxIterations {
			log.Warn("fixed point not reached",
				zap.String("pipeline", p.name),
				zap.Int("iterations", iter))
			ctx.recordStall(p.name)
			return Result{Tree: current, Iterations: iter}, nil
		}
	}
}

// Apply runs the pipeline and returns its final tree.
func (p *Pipeline) Apply(ctx *Context, tree ast.Node) (ast.Node, error) {
	res, err := p.Run(ctx, tree)
	if err != nil {
		return nil, err
	}
	return res.Tree, nil
}
