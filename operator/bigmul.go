package operator

import (
	"fmt"
	"math/big"
)

// mulExact computes a*b with exact integer arithmetic, accumulating into
// math/big so that long differential chains never silently overflow
// int64; the square-zero and commutativity tests need exact zero
// comparisons, not float approximations.
func mulExact(a, b SparseMatrix) (SparseMatrix, error) {
	if a.Cols != b.Rows {
		return SparseMatrix{}, fmt.Errorf("operator: mulExact: shape mismatch (%dx%d) * (%dx%d)", a.Rows, a.Cols, b.Rows, b.Cols)
	}

	// Group b's entries by row for an efficient a-row by b-row join.
	bByRow := make(map[int][]Triplet)
	b.Iterate(func(r, c int, v int64) bool {
		bByRow[r] = append(bByRow[r], Triplet{Row: r, Col: c, Value: v})
		return true
	})

	acc := make(map[[2]int]*big.Int)
	a.Iterate(func(r, k int, v int64) bool {
		for _, be := range bByRow[k] {
			key := [2]int{r, be.Col}
			cur, ok := acc[key]
			if !ok {
				cur = new(big.Int)
				acc[key] = cur
			}
			term := new(big.Int).Mul(big.NewInt(v), big.NewInt(be.Value))
			cur.Add(cur, term)
		}
		return true
	})

	entries := make([]Triplet, 0, len(acc))
	for key, v := range acc {
		if v.Sign() == 0 {
			continue
		}
		if !v.IsInt64() {
			return SparseMatrix{}, fmt.Errorf("operator: mulExact: entry (%d,%d) overflows int64", key[0], key[1])
		}
		entries = append(entries, Triplet{Row: key[0], Col: key[1], Value: v.Int64()})
	}
	return NewSparseMatrix(a.Rows, b.Cols, entries), nil
}

// Add returns a+b, shapes required equal. Used by the commutativity test
// to combine M(p_a)*M(q_b) with the signed M(q_a)*M(p_b) term before
// taking a norm.
func Add(a, b SparseMatrix) (SparseMatrix, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return SparseMatrix{}, fmt.Errorf("operator: Add: shape mismatch (%dx%d) + (%dx%d)", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	acc := make(map[[2]int]int64)
	a.Iterate(func(r, c int, v int64) bool {
		acc[[2]int{r, c}] += v
		return true
	})
	b.Iterate(func(r, c int, v int64) bool {
		acc[[2]int{r, c}] += v
		return true
	})
	entries := make([]Triplet, 0, len(acc))
	for key, v := range acc {
		if v == 0 {
			continue
		}
		entries = append(entries, Triplet{Row: key[0], Col: key[1], Value: v})
	}
	return NewSparseMatrix(a.Rows, a.Cols, entries), nil
}

// Scale returns m with every entry multiplied by k.
func Scale(m SparseMatrix, k int64) SparseMatrix {
	entries := make([]Triplet, 0, len(m.Entries))
	m.Iterate(func(r, c int, v int64) bool {
		if scaled := v * k; scaled != 0 {
			entries = append(entries, Triplet{Row: r, Col: c, Value: scaled})
		}
		return true
	})
	return NewSparseMatrix(m.Rows, m.Cols, entries)
}

// OneNorm returns the sum of absolute values of all entries, computed
// exactly in math/big and returned as a big.Int so arbitrarily large
// products never overflow the comparison against eps.
func (m SparseMatrix) OneNorm() *big.Int {
	total := new(big.Int)
	for _, e := range m.Entries {
		total.Add(total, new(big.Int).Abs(big.NewInt(e.Value)))
	}
	return total
}
