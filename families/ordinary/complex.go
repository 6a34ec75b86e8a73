package ordinary

import (
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
)

// VectorSpaces returns one GVS per (vertices, loops) pair in the given
// ranges, sharing evenEdges, mirroring OrdinaryGC.create_vs's Cartesian
// product of v_range x l_range.
func VectorSpaces(vRange, lRange []int, evenEdges bool) []gvs.VectorSpace {
	var out []gvs.VectorSpace
	for _, v := range vRange {
		for _, l := range lRange {
			out = append(out, New(v, l, evenEdges))
		}
	}
	return out
}

// ContractOperators returns the contraction operator domain -> target for
// every pair of vertex counts in vRange that are consecutive, mirroring
// OrdinaryGC.create_op / ContractGO.generate_operators.
func ContractOperators(vRange, lRange []int, evenEdges bool) []operator.Map {
	inRange := make(map[int]bool, len(vRange))
	for _, v := range vRange {
		inRange[v] = true
	}
	var out []operator.Map
	for _, v := range vRange {
		if !inRange[v-1] {
			continue
		}
		for _, l := range lRange {
			out = append(out, NewContractGO(v, l, evenEdges))
		}
	}
	return out
}
