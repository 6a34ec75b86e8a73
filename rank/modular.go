package rank

import "github.com/grafhom/gh/operator"

// modRankOnePrime computes the rank of m over Z/pZ using uint64 Gaussian
// elimination. Each prime in config.Primes is comfortably under 2^32, so a
// uint64 product of two residues never overflows before the final % p.
func modRankOnePrime(m operator.SparseMatrix, p uint64) int {
	rows, cols := m.Rows, m.Cols
	if rows == 0 || cols == 0 {
		return 0
	}

	a := make([][]uint64, rows)
	for i := range a {
		a[i] = make([]uint64, cols)
	}
	m.Iterate(func(r, c int, v int64) bool {
		a[r][c] = normalizeMod(v, p)
		return true
	})

	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivotRow := -1
		for r := rank; r < rows; r++ {
			if a[r][col] != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			continue
		}
		a[rank], a[pivotRow] = a[pivotRow], a[rank]

		inv := modInverse(a[rank][col], p)
		for r := rank + 1; r < rows; r++ {
			factor := mulMod(a[r][col], inv, p)
			if factor == 0 {
				continue
			}
			for c := col; c < cols; c++ {
				a[r][c] = subMod(a[r][c], mulMod(factor, a[rank][c], p), p)
			}
		}
		rank++
	}
	return rank
}

// normalizeMod reduces a signed int64 value into [0, p).
func normalizeMod(v int64, p uint64) uint64 {
	m := int64(p)
	r := v % m
	if r < 0 {
		r += m
	}
	return uint64(r)
}

func mulMod(a, b, p uint64) uint64 {
	return (a * b) % p
}

func subMod(a, b, p uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + p - b
}

// modInverse returns a's multiplicative inverse mod p via Fermat's little
// theorem (p prime): a^(p-2) mod p.
func modInverse(a, p uint64) uint64 {
	return powMod(a, p-2, p)
}

func powMod(base, exp, p uint64) uint64 {
	result := uint64(1)
	base %= p
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, p)
		}
		base = mulMod(base, base, p)
		exp >>= 1
	}
	return result
}

// ModularRank computes the rank of m modulo each prime in primes and
// returns a Result whose PerPrime maps every prime to its rank. The
// reported rank is the minimum across primes; callers should log when
// Result.Disagrees().
func ModularRank(m operator.SparseMatrix, primes []uint64) Result {
	perPrime := make(map[uint64]int, len(primes))
	for _, p := range primes {
		perPrime[p] = modRankOnePrime(m, p)
	}
	return Result{Mode: ModeModular, PerPrime: perPrime}
}
