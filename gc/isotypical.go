package gc

import (
	"github.com/grafhom/gh/differential"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/projector"
	"github.com/grafhom/gh/rank"
	"github.com/grafhom/gh/store"
)

// ProjectorPair carries the domain and target projector matrices
// restricting one operator to a single isotypical component.
type ProjectorPair struct {
	Domain, Target operator.SparseMatrix
}

// RestrictedRankSum computes the exact rank of m's restriction to each
// isotypical component and their total: one projector pair per
// irreducible component. The per-component ranks sum to the rank of m on
// the image of the total projector.
func RestrictedRankSum(s store.Store, m operator.Map, components []ProjectorPair) ([]int, int, error) {
	ranks := make([]int, 0, len(components))
	total := 0
	for _, pr := range components {
		restricted, err := projector.RestrictedOperator(s, m, pr.Domain, pr.Target)
		if err != nil {
			return nil, 0, err
		}
		r := rank.ExactRank(restricted.Matrix)
		ranks = append(ranks, r)
		total += r
	}
	return ranks, total, nil
}

// IsotypicalProjectors carries the projector matrices needed to restrict
// the differential around one member space V to a single isotypical
// component: On acts on V's own basis, OutTarget on the outgoing
// operator's target basis, InDomain on the incoming operator's domain
// basis.
type IsotypicalProjectors struct {
	On        operator.SparseMatrix
	OutTarget operator.SparseMatrix
	InDomain  operator.SparseMatrix
}

// CohomologyIsotypical computes the cohomology dimension of v inside one
// isotypical component of d: rank(P) - rank(d_out restricted) -
// rank(d_in restricted), where rank(P) is the component's dimension
// inside v. A missing operator matrix makes the result unknown
// (ok=false), the same contract Cohomology follows for missing ranks.
func (c *Complex) CohomologyIsotypical(s store.Store, d differential.Differential, v gvs.VectorSpace, proj IsotypicalProjectors) (int, bool, error) {
	var outMap, inMap operator.Map
	for _, m := range d.Maps {
		if m.Domain().Key() == v.Key() {
			outMap = m
		}
		if m.Target().Key() == v.Key() {
			inMap = m
		}
	}

	dimRho := rank.ExactRank(proj.On)
	rankOut, haveOut, err := restrictedRank(s, outMap, proj.On, proj.OutTarget)
	if err != nil {
		return 0, false, err
	}
	rankIn, haveIn, err := restrictedRank(s, inMap, proj.InDomain, proj.On)
	if err != nil {
		return 0, false, err
	}

	return differential.CohomologyDim(dimRho,
		rank.Result{Mode: rank.ModeExact, Exact: rankOut},
		rank.Result{Mode: rank.ModeExact, Exact: rankIn},
		haveOut, haveIn)
}

// restrictedRank ranks m's restriction by the given projector pair,
// treating a nil or invalid operator as rank 0 and a missing matrix as
// unknown.
func restrictedRank(s store.Store, m operator.Map, pDomain, pTarget operator.SparseMatrix) (int, bool, error) {
	if m == nil || !operator.IsValid(m) {
		return 0, true, nil
	}
	if !operator.MatrixExists(s, m) {
		return 0, false, nil
	}
	restricted, err := projector.RestrictedOperator(s, m, pDomain, pTarget)
	if err != nil {
		return 0, false, err
	}
	return rank.ExactRank(restricted.Matrix), true, nil
}
