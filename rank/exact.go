package rank

import (
	"math/big"

	"github.com/grafhom/gh/operator"
)

// ExactRank computes the rank of m over the integers using fraction-free
// (Bareiss) Gaussian elimination on a dense big.Int working array.
// gonum's float64-only mat package cannot certify an exact integer rank,
// so elimination runs directly on arbitrary-precision values.
func ExactRank(m operator.SparseMatrix) int {
	rows, cols := m.Rows, m.Cols
	if rows == 0 || cols == 0 {
		return 0
	}

	a := make([][]*big.Int, rows)
	for i := range a {
		a[i] = make([]*big.Int, cols)
		for j := range a[i] {
			a[i][j] = new(big.Int)
		}
	}
	m.Iterate(func(r, c int, v int64) bool {
		a[r][c] = big.NewInt(v)
		return true
	})

	prevPivot := big.NewInt(1)
	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivotRow := -1
		for r := rank; r < rows; r++ {
			if a[r][col].Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			continue
		}
		a[rank], a[pivotRow] = a[pivotRow], a[rank]

		pivot := a[rank][col]
		for r := rank + 1; r < rows; r++ {
			for c := col + 1; c < cols; c++ {
				t1 := new(big.Int).Mul(pivot, a[r][c])
				t2 := new(big.Int).Mul(a[r][col], a[rank][c])
				t1.Sub(t1, t2)
				t1.Quo(t1, prevPivot)
				a[r][c] = t1
			}
			a[r][col] = new(big.Int)
		}
		prevPivot = pivot
		rank++
	}
	return rank
}
