package parallel

import (
	"context"

	"github.com/grafhom/gh/operator"
)

// OperatorRunner adapts a Pool[int, []operator.Triplet] to the narrow
// operator.ParallelRunner interface operator.BuildMatrix consumes, so
// families and cmd can parallelise matrix builds without operator
// depending on parallel's generic instantiation directly.
func OperatorRunner(pool *Pool[int, []operator.Triplet]) *operator.ParallelRunner {
	return &operator.ParallelRunner{
		Run: func(ctx context.Context, rows []int, fn func(context.Context, int) ([]operator.Triplet, error)) []operator.RowResult {
			results := pool.Run(ctx, rows, fn)
			out := make([]operator.RowResult, len(results))
			for i, r := range results {
				out[i] = operator.RowResult{Triplets: r.Value, Err: r.Err}
			}
			return out
		},
	}
}
