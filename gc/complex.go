package gc

import (
	"context"

	"github.com/grafhom/gh/differential"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/rank"
	"github.com/grafhom/gh/store"
	"github.com/grafhom/gh/sumvs"
)

// Complex is a graph complex: a sumvs.Sum of graph vector spaces together
// with the differentials acting on them. Its methods drive the
// basis -> matrix -> rank -> cohomology pipeline; every step is
// idempotent, reusing existing store entries unless told otherwise.
type Complex struct {
	VS            *sumvs.Sum
	Differentials []differential.Differential
}

// New returns a Complex over vs with the given differentials.
func New(vs *sumvs.Sum, differentials ...differential.Differential) *Complex {
	return &Complex{VS: vs, Differentials: differentials}
}

// BuildBasis builds (or reuses) the basis of every member of c.VS.
func (c *Complex) BuildBasis(s store.Store, ignoreExisting bool) error {
	for _, v := range c.VS.Members() {
		if err := gvs.BuildBasis(s, v, ignoreExisting); err != nil {
			return err
		}
	}
	return nil
}

// BuildMatrices builds (or reuses) the matrix of every operator across
// every differential.
func (c *Complex) BuildMatrices(ctx context.Context, s store.Store, opts operator.BuildOptions) error {
	for _, d := range c.Differentials {
		for _, m := range d.Maps {
			if err := operator.BuildMatrix(ctx, s, m, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

// SquareZeroTest runs differential.SquareZeroTest over every differential
// in the complex and returns one Outcome per differential in the same
// order.
func (c *Complex) SquareZeroTest(s store.Store, eps float64) ([]differential.Outcome, error) {
	out := make([]differential.Outcome, 0, len(c.Differentials))
	for _, d := range c.Differentials {
		o, err := differential.SquareZeroTest(s, d, eps)
		if err != nil {
			return out, err
		}
		out = append(out, o)
	}
	return out, nil
}

// ComputeRanksExact computes (or reuses) the exact rank of every operator
// across every differential.
func (c *Complex) ComputeRanksExact(s store.Store, e rank.Engine, ignoreExisting bool) error {
	for _, d := range c.Differentials {
		for _, m := range d.Maps {
			if _, err := e.Exact(s, m, ignoreExisting); err != nil {
				return err
			}
		}
	}
	return nil
}

// ComputeRanksModular computes (or reuses) the modular rank of every
// operator across every differential.
func (c *Complex) ComputeRanksModular(s store.Store, e rank.Engine, nPrimes int, ignoreExisting bool) error {
	for _, d := range c.Differentials {
		for _, m := range d.Maps {
			if _, err := e.Modular(s, m, nPrimes, ignoreExisting); err != nil {
				return err
			}
		}
	}
	return nil
}

// ComputeRanksEstimate computes (or reuses) the estimate rank of every
// operator across every differential.
func (c *Complex) ComputeRanksEstimate(s store.Store, e rank.Engine, ignoreExisting bool) error {
	for _, d := range c.Differentials {
		for _, m := range d.Maps {
			if _, err := e.Estimate(s, m, ignoreExisting); err != nil {
				return err
			}
		}
	}
	return nil
}

// CohomologyEntry is one member's cohomology dimension within a single
// differential, or the reason it is not known yet.
type CohomologyEntry struct {
	Key   string
	Dim   int
	Known bool
}

// Cohomology computes dim H(V) for every member of c.VS with respect to
// the single differential d: the outgoing map is the
// one (if any) in d whose domain is V, the incoming map is the one whose
// target is V. A side with no map, or with an invalid map, counts as a
// known rank 0; a member whose needed rank file is not yet cached is
// reported with Known = false rather than guessed, mirroring
// CohomologyDim's own "unknown" result.
func (c *Complex) Cohomology(s store.Store, d differential.Differential, mode rank.Mode) ([]CohomologyEntry, error) {
	out := make([]CohomologyEntry, 0, len(c.VS.Members()))
	for _, v := range c.VS.Members() {
		dimV, err := gvs.Dim(s, v)
		if err != nil {
			return out, err
		}

		var outMap, inMap operator.Map
		for _, m := range d.Maps {
			if m.Domain().Key() == v.Key() {
				outMap = m
			}
			if m.Target().Key() == v.Key() {
				inMap = m
			}
		}

		rankOut, haveOut, err := lookupRank(s, outMap, mode)
		if err != nil {
			return out, err
		}
		rankIn, haveIn, err := lookupRank(s, inMap, mode)
		if err != nil {
			return out, err
		}

		dim, ok, err := differential.CohomologyDim(dimV, rankOut, rankIn, haveOut, haveIn)
		if err != nil {
			return out, err
		}
		out = append(out, CohomologyEntry{Key: v.Key(), Dim: dim, Known: ok})
	}
	return out, nil
}

// lookupRank reads the cached rank file for m under the given mode. A
// missing map (the "no operator touches this space" case) or an invalid
// map is reported as a known rank 0 (true); a missing rank file is
// reported as (zero-value, false, nil).
func lookupRank(s store.Store, m operator.Map, mode rank.Mode) (rank.Result, bool, error) {
	if m == nil {
		zero := rank.Result{Mode: mode, Exact: 0}
		return zero, true, nil
	}
	if !operator.IsValid(m) {
		zero := rank.Result{Mode: mode, Exact: 0}
		return zero, true, nil
	}
	key := m.Domain().Key() + "--" + m.Target().Key() + ".rank"
	if !s.Exists(key) {
		return rank.Result{}, false, nil
	}
	data, err := s.Get(key)
	if err != nil {
		return rank.Result{}, false, err
	}
	r, err := rank.DecodeRank(data, mode, nil)
	if err != nil {
		return rank.Result{}, false, err
	}
	return r, true, nil
}
