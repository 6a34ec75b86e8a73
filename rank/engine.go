package rank

import (
	"errors"

	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/store"
)

// Engine computes and caches rank results for operator matrices: input is
// the matrix loaded from the store, output is written to the rank file
// atomically (store.Put's temp-file+rename already gives atomicity for
// FileStore), and a missing matrix is inconclusive rather than fatal.
type Engine struct {
	Primes       []uint64
	EstimateEps  float64
}

func rankKey(m operator.Map) string {
	return m.Domain().Key() + "--" + m.Target().Key() + ".rank"
}

// estimateKey is deliberately distinct from rankKey: estimates are flagged
// in the store (the "~" marker) and must never shadow or overwrite an
// exact or modular rank file, which cohomology reads from rankKey.
func estimateKey(m operator.Map) string {
	return m.Domain().Key() + "--" + m.Target().Key() + ".rank.est"
}

// loadMatrixOrInconclusive loads m's matrix, translating a missing matrix
// file into ErrInconclusive. An invalid operator is handled by
// the caller before this is reached.
func loadMatrixOrInconclusive(s store.Store, m operator.Map) (operator.SparseMatrix, error) {
	mat, err := operator.LoadMatrix(s, m)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return operator.SparseMatrix{}, ErrInconclusive
		}
		return operator.SparseMatrix{}, err
	}
	return mat, nil
}

// Exact computes (or reuses) the exact integer rank of m.
func (e Engine) Exact(s store.Store, m operator.Map, ignoreExisting bool) (Result, error) {
	key := rankKey(m)
	if !operator.IsValid(m) {
		r := Result{Mode: ModeExact, Exact: 0}
		return r, s.Put(key, EncodeRank(r))
	}
	if !ignoreExisting && s.Exists(key) {
		data, err := s.Get(key)
		if err != nil {
			return Result{}, err
		}
		return DecodeRank(data, ModeExact, nil)
	}

	mat, err := loadMatrixOrInconclusive(s, m)
	if err != nil {
		return Result{}, err
	}
	r := Result{Mode: ModeExact, Exact: ExactRank(mat)}
	return r, s.Put(key, EncodeRank(r))
}

// Modular computes (or reuses) the modular rank of m over the first
// nPrimes primes configured on the Engine.
func (e Engine) Modular(s store.Store, m operator.Map, nPrimes int, ignoreExisting bool) (Result, error) {
	primes := e.Primes
	if nPrimes > 0 && nPrimes < len(primes) {
		primes = primes[:nPrimes]
	}
	key := rankKey(m)

	if !operator.IsValid(m) {
		perPrime := make(map[uint64]int, len(primes))
		for _, p := range primes {
			perPrime[p] = 0
		}
		r := Result{Mode: ModeModular, PerPrime: perPrime}
		return r, s.Put(key, EncodeRank(r))
	}
	if !ignoreExisting && s.Exists(key) {
		data, err := s.Get(key)
		if err != nil {
			return Result{}, err
		}
		return DecodeRank(data, ModeModular, primes)
	}

	mat, err := loadMatrixOrInconclusive(s, m)
	if err != nil {
		return Result{}, err
	}
	r := ModularRank(mat, primes)
	return r, s.Put(key, EncodeRank(r))
}

// Estimate computes (or reuses) the estimate rank of m. Estimates are
// cached under their own key, so a later exact or modular run still
// computes and stores the real rank.
func (e Engine) Estimate(s store.Store, m operator.Map, ignoreExisting bool) (Result, error) {
	key := estimateKey(m)
	if !operator.IsValid(m) {
		r := Result{Mode: ModeEstimate, Estimate: 0}
		return r, s.Put(key, EncodeRank(r))
	}
	if !ignoreExisting && s.Exists(key) {
		data, err := s.Get(key)
		if err != nil {
			return Result{}, err
		}
		return DecodeRank(data, ModeEstimate, nil)
	}

	mat, err := loadMatrixOrInconclusive(s, m)
	if err != nil {
		return Result{}, err
	}
	r := EstimateRank(mat, e.EstimateEps)
	return r, s.Put(key, EncodeRank(r))
}
