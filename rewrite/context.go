package rewrite

import (
	"go.uber.org/zap"

	"github.com/wippyai/contnorm/ast"
	"github.com/wippyai/contnorm/gensym"
)

// Context is the state shared by every pass of one normalization run.
// It is not safe for concurrent use.
type Context struct {
	names   *gensym.Namer
	logger  *zap.Logger
	stalled []string
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithNamer makes the run draw fresh symbols from n.
func WithNamer(n *gensym.Namer) ContextOption {
	return func(c *Context) {
		c.names = n
	}
}

// WithLogger sets the logger used for pass tracing.
func WithLogger(l *zap.Logger) ContextOption {
	return func(c *Context) {
		c.logger = l
	}
}

// NewContext creates a run context with a fresh Namer and the package logger.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	if c.names == nil {
		c.names = gensym.New()
	}
	if c.logger == nil {
		c.logger = Logger()
	}
	return c
}

// Fresh returns the next generated symbol of this run.
func (c *Context) Fresh() ast.Symbol {
	return c.names.Fresh()
}

// Namer returns the run's symbol generator.
func (c *Context) Namer() *gensym.Namer {
	return c.names
}

// Logger returns the run's logger.
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// Stalled lists the pipelines that hit their iteration cap during this run,
// in the order it happened.
func (c *Context) Stalled() []string {
	return append([]string(nil), c.stalled...)
}

func (c *Context) recordStall(pipeline string) {
	c.stalled = append(c.stalled, pipeline)
}
