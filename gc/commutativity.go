package gc

import (
	"math/big"

	"github.com/grafhom/gh/differential"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/store"
)

// Quadruple is one (p_a, p_b, q_a, q_b) tuple tested by TestCommutativity,
// satisfying p_a.Domain() = q_a.Domain(), p_b.Domain() = q_a.Target(),
// q_b.Domain() = p_a.Target(), p_b.Target() = q_b.Target().
type Quadruple struct {
	PA, PB, QA, QB operator.Map
}

// CommutationReport tallies the classification of every quadruple tested,
// mirroring differential.Outcome's shape.
type CommutationReport struct {
	TrivialCount      int
	SuccessCount      int
	InconclusiveCount int
	FailureCount      int
	Failing           []Quadruple
}

func (r *CommutationReport) record(v differential.Verdict, q Quadruple) {
	switch v {
	case differential.Trivial:
		r.TrivialCount++
	case differential.Success:
		r.SuccessCount++
	case differential.Inconclusive:
		r.InconclusiveCount++
	case differential.Failure:
		r.FailureCount++
		r.Failing = append(r.Failing, q)
	}
}

// quadruples enumerates every (p_a, p_b, q_a, q_b) satisfying the
// chaining constraints above.
func quadruples(p, q differential.Collection) []Quadruple {
	var out []Quadruple
	for _, pa := range p.Maps {
		for _, qa := range q.Maps {
			if pa.Domain().Key() != qa.Domain().Key() {
				continue
			}
			for _, pb := range p.Maps {
				if pb.Domain().Key() != qa.Target().Key() {
					continue
				}
				for _, qb := range q.Maps {
					if qb.Domain().Key() != pa.Target().Key() {
						continue
					}
					if pb.Target().Key() != qb.Target().Key() {
						continue
					}
					out = append(out, Quadruple{PA: pa, PB: pb, QA: qa, QB: qb})
				}
			}
		}
	}
	return out
}

// isTrivialOperator reports whether m is trivial (invalid, or a built
// zero matrix), and whether that could be determined at all (false means
// the matrix is simply not built yet).
func isTrivialOperator(s store.Store, m operator.Map) (trivial, known bool, err error) {
	if !operator.IsValid(m) {
		return true, true, nil
	}
	mat, found, err := differential.LoadMatrixIfPresent(s, m)
	if err != nil {
		return false, false, err
	}
	if !found {
		return false, false, nil
	}
	return mat.IsZero(), true, nil
}

func normBelowEps(n *big.Int, eps float64) bool {
	if n.Sign() == 0 {
		return true
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f < eps
}

// TestCommutativity runs the pairwise (anti-)commutativity test:
// for every quadruple (p_a, p_b, q_a, q_b) check
// ‖M(p_a)*M(q_b) + sign*M(q_a)*M(p_b)‖ < eps (first-operator-on-the-left,
// matching the domain-by-target storage convention), with
// sign = +1 for antiCommute, -1 for commute, short-circuiting through the
// trivial and partial cases before the full four-matrix product.
func TestCommutativity(s store.Store, p, q differential.Collection, antiCommute bool, eps float64) (CommutationReport, error) {
	var report CommutationReport
	sign := int64(-1)
	if antiCommute {
		sign = 1
	}

	for _, quad := range quadruples(p, q) {
		v, err := classifyQuadruple(s, quad, sign, eps)
		if err != nil {
			return report, err
		}
		report.record(v, quad)
	}
	return report, nil
}

func classifyQuadruple(s store.Store, quad Quadruple, sign int64, eps float64) (differential.Verdict, error) {
	pa, pb, qa, qb := quad.PA, quad.PB, quad.QA, quad.QB

	paQbValid := operator.IsValid(pa) && operator.IsValid(qb)
	qaPbValid := operator.IsValid(qa) && operator.IsValid(pb)
	if !paQbValid && !qaPbValid {
		return differential.Trivial, nil
	}

	// Partial case: only the (p_a, q_b) branch has both endpoints valid.
	if paQbValid && !qaPbValid {
		return classifyPair(s, pa, qb, nil, 0, eps)
	}
	// Partial case: only the (q_a, p_b) branch has both endpoints valid.
	if !paQbValid && qaPbValid {
		return classifyPair(s, qa, pb, nil, 0, eps)
	}

	// Full case: both branches are valid; check whether either side is
	// trivial before falling back to the combined four-matrix test.
	paTrivial, paKnown, err := isTrivialOperator(s, pa)
	if err != nil {
		return differential.Inconclusive, err
	}
	qbTrivial, qbKnown, err := isTrivialOperator(s, qb)
	if err != nil {
		return differential.Inconclusive, err
	}
	qaTrivial, qaKnown, err := isTrivialOperator(s, qa)
	if err != nil {
		return differential.Inconclusive, err
	}
	pbTrivial, pbKnown, err := isTrivialOperator(s, pb)
	if err != nil {
		return differential.Inconclusive, err
	}
	if !paKnown || !qbKnown || !qaKnown || !pbKnown {
		return differential.Inconclusive, nil
	}

	leftTrivial := paTrivial || qbTrivial
	rightTrivial := qaTrivial || pbTrivial
	if leftTrivial && rightTrivial {
		return differential.Trivial, nil
	}
	if !leftTrivial && rightTrivial {
		return classifyPair(s, pa, qb, nil, 0, eps)
	}
	if leftTrivial && !rightTrivial {
		return classifyPair(s, qa, pb, nil, 0, eps)
	}

	return classifyPair(s, pa, qb, qa, sign, eps, pb)
}

// classifyPair computes ‖left.M*right.M + sign*extraLeft.M*extraRight.M‖ < eps,
// where the extra term is omitted when extraLeft is nil. It loads each
// matrix, reporting Inconclusive if any is missing.
func classifyPair(s store.Store, left, right operator.Map, extraLeft operator.Map, sign int64, eps float64, extraRightOpt ...operator.Map) (differential.Verdict, error) {
	matLeft, foundLeft, err := differential.LoadMatrixIfPresent(s, left)
	if err != nil {
		return differential.Inconclusive, err
	}
	matRight, foundRight, err := differential.LoadMatrixIfPresent(s, right)
	if err != nil {
		return differential.Inconclusive, err
	}
	if !foundLeft || !foundRight {
		return differential.Inconclusive, nil
	}
	prod, err := operator.MulBig(matLeft, matRight)
	if err != nil {
		return differential.Inconclusive, err
	}

	if extraLeft != nil {
		extraRight := extraRightOpt[0]
		matExtraLeft, foundEL, err := differential.LoadMatrixIfPresent(s, extraLeft)
		if err != nil {
			return differential.Inconclusive, err
		}
		matExtraRight, foundER, err := differential.LoadMatrixIfPresent(s, extraRight)
		if err != nil {
			return differential.Inconclusive, err
		}
		if !foundEL || !foundER {
			return differential.Inconclusive, nil
		}
		extraProd, err := operator.MulBig(matExtraLeft, matExtraRight)
		if err != nil {
			return differential.Inconclusive, err
		}
		scaled := operator.Scale(extraProd, sign)
		prod, err = operator.Add(prod, scaled)
		if err != nil {
			return differential.Inconclusive, err
		}
	}

	if normBelowEps(prod.OneNorm(), eps) {
		return differential.Success, nil
	}
	return differential.Failure, nil
}
