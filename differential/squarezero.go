package differential

import (
	"errors"
	"math/big"

	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/store"
)

// Verdict classifies the outcome of testing one pair.
type Verdict int

// Supported verdicts.
const (
	Trivial Verdict = iota
	Success
	Inconclusive
	Failure
)

func (v Verdict) String() string {
	switch v {
	case Trivial:
		return "trivial"
	case Success:
		return "success"
	case Inconclusive:
		return "inconclusive"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// FailingPair names one pair that failed a commutativity/square-zero test.
type FailingPair struct {
	A, B operator.Map
}

// Outcome tallies the verdicts across every tested pair.
type Outcome struct {
	TrivialCount      int
	SuccessCount      int
	InconclusiveCount int
	FailureCount      int
	Failing           []FailingPair
}

func (o *Outcome) record(v Verdict, a, b operator.Map) {
	switch v {
	case Trivial:
		o.TrivialCount++
	case Success:
		o.SuccessCount++
	case Inconclusive:
		o.InconclusiveCount++
	case Failure:
		o.FailureCount++
		o.Failing = append(o.Failing, FailingPair{A: a, B: b})
	}
}

// LoadMatrixIfPresent loads m's matrix, reporting a missing matrix file
// as (_, false, nil) rather than an error, so callers in this package and
// in gc can classify it as Inconclusive instead of failing. It is
// exported because gc's commutativity test needs the same
// found/missing distinction.
func LoadMatrixIfPresent(s store.Store, m operator.Map) (operator.SparseMatrix, bool, error) {
	mat, err := operator.LoadMatrix(s, m)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return operator.SparseMatrix{}, false, nil
		}
		return operator.SparseMatrix{}, false, err
	}
	return mat, true, nil
}

// SquareZeroTest verifies d squares to zero: for every matching pair
// (a, b) in d, compute A.M*B.M (first-operator-on-the-left, matching the
// domain-by-target storage convention) and classify it
// trivial/success/inconclusive/failure. A non-zero FailureCount is a hard
// error for the calling complex.
func SquareZeroTest(s store.Store, d Differential, eps float64) (Outcome, error) {
	var out Outcome
	var firstErr error
	d.Pairs(func(a, b operator.Map) bool {
		v, err := squareZeroVerdict(s, a, b, eps)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		out.record(v, a, b)
		return true
	})
	return out, firstErr
}

func squareZeroVerdict(s store.Store, a, b operator.Map, eps float64) (Verdict, error) {
	if !operator.IsValid(a) || !operator.IsValid(b) {
		return Trivial, nil
	}

	matA, foundA, err := LoadMatrixIfPresent(s, a)
	if err != nil {
		return Inconclusive, err
	}
	matB, foundB, err := LoadMatrixIfPresent(s, b)
	if err != nil {
		return Inconclusive, err
	}
	if !foundA || !foundB {
		return Inconclusive, nil
	}
	if matA.IsZero() || matB.IsZero() {
		return Trivial, nil
	}

	prod, err := operator.MulBig(matA, matB)
	if err != nil {
		return Inconclusive, err
	}
	norm := prod.OneNorm()
	if norm.Sign() == 0 {
		return Success, nil
	}
	f, _ := new(big.Float).SetInt(norm).Float64()
	if f < eps {
		return Success, nil
	}
	return Failure, nil
}
