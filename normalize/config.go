package normalize

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/wippyai/contnorm/gensym"
	"github.com/wippyai/contnorm/rewrite"
)

// Config controls a normalization run. The zero value is ready to use.
type Config struct {
	// Logger receives pass tracing and convergence warnings.
	// Defaults to the package logger.
	Logger *zap.Logger

	// Prefix for generated labels and temporaries. Defaults to "G".
	Prefix string

	// MaxIterations caps the rounds of the standard pipeline.
	// Defaults to rewrite.MaxIterations.
	MaxIterations int

	// Concurrency bounds the units Batch normalizes at once.
	// Defaults to GOMAXPROCS.
	Concurrency int

	// Strict reports a run that hits the iteration cap as an error.
	Strict bool
}

func (c Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return Logger()
}

func (c Config) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (c Config) newContext() *rewrite.Context {
	var opts []gensym.Option
	if c.Prefix != "" {
		opts = append(opts, gensym.WithPrefix(c.Prefix))
	}
	return rewrite.NewContext(
		rewrite.WithNamer(gensym.New(opts...)),
		rewrite.WithLogger(c.logger()),
	)
}

func (c Config) pipeline() *rewrite.Pipeline {
	p := rewrite.NewStandardPipeline()
	p.SetMaxIterations(c.MaxIterations)
	return p
}
