package normalize

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Unit is one independent program to normalize.
type Unit struct {
	Name   string
	Source string
}

// Output holds the results of one Unit.
type Output struct {
	Name    string
	Results []Result
}

// Batch normalizes units concurrently, each in its own run. Outputs are
// returned in the order of units. The first failure cancels units that have
// not started yet and is returned prefixed with the unit name.
func Batch(ctx context.Context, units []Unit, cfg Config) ([]Output, error) {
	outputs := make([]Output, len(units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency())

	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results, err := Source(u.Source, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", u.Name, err)
			}
			cfg.logger().Debug("unit normalized",
				zap.String("unit", u.Name),
				zap.Int("forms", len(results)))
			outputs[i] = Output{Name: u.Name, Results: results}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
