package hairy

import (
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
)

// VectorSpaces returns one GVS per (vertices, loops) pair in the given
// ranges at the fixed hair count nHairs, mirroring ordinary.VectorSpaces
// extended with the hair dimension.
func VectorSpaces(vRange, lRange []int, nHairs int, evenEdges, evenHairs bool) []gvs.VectorSpace {
	var out []gvs.VectorSpace
	for _, v := range vRange {
		for _, l := range lRange {
			out = append(out, New(v, l, nHairs, evenEdges, evenHairs))
		}
	}
	return out
}

// ContractOperators returns the internal-edge contraction operator
// domain -> target for every pair of consecutive vertex counts in vRange,
// at the fixed hair count, mirroring ordinary.ContractOperators.
func ContractOperators(vRange, lRange []int, nHairs int, evenEdges, evenHairs bool) []operator.Map {
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
			out = append(out, NewContractGO(v, l, nHairs, evenEdges, evenHairs))
		}
	}
	return out
}

// EdgeToOneHairOperators returns the edge-to-one-hair operator
// domain -> target for every (vertices, loops) pair in the given ranges,
// provided the target loop count (l-1) is also present in lRange.
func EdgeToOneHairOperators(vRange, lRange []int, nHairs int, evenEdges, evenHairs bool) []operator.Map {
	inRange := make(map[int]bool, len(lRange))
	for _, l := range lRange {
		inRange[l] = true
	}
	var out []operator.Map
	for _, v := range vRange {
		for _, l := range lRange {
			if !inRange[l-1] {
				continue
			}
			out = append(out, NewEdgeToOneHairGO(v, l, nHairs, evenEdges, evenHairs))
		}
	}
	return out
}
