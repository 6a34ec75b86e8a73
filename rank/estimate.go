package rank

import (
	"gonum.org/v1/gonum/mat"

	"github.com/grafhom/gh/operator"
)

// EstimateRank densifies m and factorizes it with gonum's SVD, counting
// singular values above eps. This is the only mode allowed to be
// approximate: it is meant for scheduling and diagnostics, never
// for a cohomology dimension.
func EstimateRank(m operator.SparseMatrix, eps float64) Result {
	if m.Rows == 0 || m.Cols == 0 {
		return Result{Mode: ModeEstimate, Estimate: 0}
	}

	dense := mat.NewDense(m.Rows, m.Cols, nil)
	m.Iterate(func(r, c int, v int64) bool {
		dense.Set(r, c, float64(v))
		return true
	})

	var svd mat.SVD
	ok := svd.Factorize(dense, mat.SVDNone)
	if !ok {
		return Result{Mode: ModeEstimate, Estimate: 0}
	}
	values := svd.Values(nil)

	count := 0.0
	for _, v := range values {
		if v > eps {
			count++
		}
	}
	return Result{Mode: ModeEstimate, Estimate: count}
}
