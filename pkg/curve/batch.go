package curve

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchConfig controls parallel scalar multiplication
type BatchConfig struct {
	// Workers is the maximum number of concurrent multiplications (default: GOMAXPROCS)
	Workers int
}

// DefaultBatchConfig returns default batch configuration
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// ScalarMulBatch computes scalars[i]*points[i] for every i in parallel.
// Points are immutable, so jobs share nothing. The first error cancels
// the jobs not yet started.
func ScalarMulBatch[T Scalar[T]](ctx context.Context, cfg *BatchConfig, points []Point[T], scalars []*big.Int) ([]Point[T], error) {
	if len(points) != len(scalars) {
		return nil, ErrBatchLength
	}
	if cfg == nil {
		cfg = DefaultBatchConfig()
	}

	results := make([]Point[T], len(points))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for i := range points {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := points[i].ScalarMulBig(scalars[i])
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
