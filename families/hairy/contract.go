package hairy

import (
	"fmt"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
)

// ContractGO is the internal edge-contraction differential member,
// domain (v,l,h) -> target (v-1,l,h): it contracts an edge between two
// internal vertices, leaving the hairs and their attachment points
// otherwise undisturbed (relabelled to account for the vertex count
// dropping by one), generalising ordinary.ContractGO to the hair block.
type ContractGO struct {
	Domain_, Target_ GVS
}

// NewContractGO builds the hairy contraction operator.
func NewContractGO(nVertices, nLoops, nHairs int, evenEdges, evenHairs bool) ContractGO {
	return ContractGO{
		Domain_: New(nVertices, nLoops, nHairs, evenEdges, evenHairs),
		Target_: New(nVertices-1, nLoops, nHairs, evenEdges, evenHairs),
	}
}

// Domain implements operator.Map.
func (op ContractGO) Domain() gvs.VectorSpace { return op.Domain_ }

// Target implements operator.Map.
func (op ContractGO) Target() gvs.VectorSpace { return op.Target_ }

// WorkEstimate implements operator.Map.
func (op ContractGO) WorkEstimate() float64 {
	return float64(op.Domain_.NInternalEdges())
}

// String implements fmt.Stringer.
func (op ContractGO) String() string {
	return fmt.Sprintf("<Hairy contract edges: domain: %s>", op.Domain_)
}

// OperateOn implements operator.Map: for each edge (u,v) between two
// internal vertices, contract it exactly as ordinary.ContractGO does,
// then shift every vertex at or above the internal block's size down by
// one to account for the lost internal vertex, leaving hair-to-internal
// attachments intact under the relabelling.
func (op ContractGO) OperateOn(g graph.Graph, yield func(gPrime graph.Graph, coeff int) bool) {
	nVertices := op.Domain_.NVertices
	n := g.N()

	for _, e := range g.Edges() {
		u, v := e.U, e.V
		if u >= nVertices || v >= nVertices {
			continue // only internal-internal edges are contracted
		}

		p := make(graph.Perm, n)
		p[u] = 0
		p[v] = 1
		idx := 2
		for j := 0; j < n; j++ {
			if j == u || j == v {
				continue
			}
			p[j] = idx
			idx++
		}
		sgn := op.Domain_.PermSign(g, p)
		g1 := g.Apply(p)

		edges1 := g1.Edges()
		mapV := make([]int, n)
		mapV[0], mapV[1] = 0, 0
		for j := 2; j < n; j++ {
			mapV[j] = j - 1
		}

		var merged []labeledHairyEdge
		selfLoopSeen := false
		for i, ed := range edges1 {
			nu, nv := mapV[ed.U], mapV[ed.V]
			if nu == nv {
				selfLoopSeen = true
				continue
			}
			if nu > nv {
				nu, nv = nv, nu
			}
			merged = append(merged, labeledHairyEdge{nu, nv, i})
		}
		if !selfLoopSeen || len(merged) != len(edges1)-1 || hasDuplicateHairyPair(merged) {
			continue
		}

		if !op.Domain_.EvenEdges {
			sorted := make([]labeledHairyEdge, len(merged))
			copy(sorted, merged)
			sortLabeledHairyEdges(sorted)
			seq := make(graph.Perm, len(sorted))
			for i, le := range sorted {
				seq[i] = le.label - 1
			}
			sgn *= seq.Sign()
		}

		finalEdges := make([]graph.Edge, len(merged))
		for i, le := range merged {
			finalEdges[i] = graph.Edge{U: le.u, V: le.v}
		}
		g2, err := graph.New(n-1, finalEdges, false)
		if err != nil {
			continue
		}
		if !yield(g2, sgn) {
			return
		}
	}
}

type labeledHairyEdge struct{ u, v, label int }

func hasDuplicateHairyPair(edges []labeledHairyEdge) bool {
	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		key := [2]int{e.u, e.v}
		if seen[key] {
			return true
		}
		seen[key] = true
	}
	return false
}

func sortLabeledHairyEdges(s []labeledHairyEdge) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0; j-- {
			a, b := s[j-1], s[j]
			if a.u < b.u || (a.u == b.u && a.v <= b.v) {
				break
			}
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
