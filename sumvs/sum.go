package sumvs

import (
	"sort"

	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/store"
)

// SortKey selects what Sum.Sort orders members by. Order only ever affects
// scheduling, never correctness.
type SortKey int

// Supported sort keys.
const (
	// ByWorkEstimate orders members by ascending VectorSpace.WorkEstimate.
	ByWorkEstimate SortKey = iota
	// ByDim orders members by ascending stored dimension (unbuilt members
	// sort last, via maxSortValue).
	ByDim
)

// Sum is an ordered collection of gvs.VectorSpace members forming a direct
// sum. Member order is part of Sum's identity: StartIndex depends on
// it, so Sort must only be used for scheduling copies, never on a Sum whose
// start indices are already in use by a built operator matrix.
type Sum struct {
	members []gvs.VectorSpace
}

// New returns a Sum over members, in the given order.
func New(members ...gvs.VectorSpace) *Sum {
	cp := make([]gvs.VectorSpace, len(members))
	copy(cp, members)
	return &Sum{members: cp}
}

// Members returns the members in their current order. The returned slice
// is owned by the caller.
func (s *Sum) Members() []gvs.VectorSpace {
	out := make([]gvs.VectorSpace, len(s.members))
	copy(out, s.members)
	return out
}

// Dim returns the sum of each member's dimension.
func (s *Sum) Dim(st store.Store) (int, error) {
	total := 0
	for _, m := range s.members {
		d, err := gvs.Dim(st, m)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// Contains reports whether v is (by Key) one of s's members.
func (s *Sum) Contains(v gvs.VectorSpace) bool {
	for _, m := range s.members {
		if m.Key() == v.Key() {
			return true
		}
	}
	return false
}

// StartIndex returns the offset of v's basis within the sum's combined
// index space, consistent with member order, or -1 if v is not a member.
func (s *Sum) StartIndex(st store.Store, v gvs.VectorSpace) (int, error) {
	offset := 0
	for _, m := range s.members {
		if m.Key() == v.Key() {
			return offset, nil
		}
		d, err := gvs.Dim(st, m)
		if err != nil {
			return 0, err
		}
		offset += d
	}
	return -1, nil
}

// Sort reorders members in place by key. Under ByDim it uses maxSortValue
// in place of a dimension that cannot be read, so a member whose basis is
// not yet built still sorts (last), instead of the sort failing; under
// ByWorkEstimate each member's WorkEstimate is used as-is.
func (s *Sum) Sort(st store.Store, key SortKey, maxSortValue float64) {
	score := make([]float64, len(s.members))
	for i, m := range s.members {
		switch key {
		case ByWorkEstimate:
			score[i] = m.WorkEstimate()
		case ByDim:
			if d, err := gvs.Dim(st, m); err == nil {
				score[i] = float64(d)
			} else {
				score[i] = maxSortValue
			}
		}
	}
	idx := make([]int, len(s.members))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return score[idx[i]] < score[idx[j]] })

	reordered := make([]gvs.VectorSpace, len(s.members))
	for i, j := range idx {
		reordered[i] = s.members[j]
	}
	s.members = reordered
}
