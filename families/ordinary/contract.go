package ordinary

import (
	"fmt"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
)

// ContractGO is the edge-contraction differential member from domain (n
// vertices) to target (n-1 vertices), at fixed loop number and edge
// convention.
type ContractGO struct {
	Domain_, Target_ GVS
}

// NewContractGO builds the contraction operator from (nVertices, nLoops,
// evenEdges) to (nVertices-1, nLoops, evenEdges).
func NewContractGO(nVertices, nLoops int, evenEdges bool) ContractGO {
	return ContractGO{
		Domain_: New(nVertices, nLoops, evenEdges),
		Target_: New(nVertices-1, nLoops, evenEdges),
	}
}

// Domain implements operator.Map.
func (op ContractGO) Domain() gvs.VectorSpace { return op.Domain_ }

// Target implements operator.Map.
func (op ContractGO) Target() gvs.VectorSpace { return op.Target_ }

// WorkEstimate implements operator.Map, per ContractGO.get_work_estimate:
// the number of edges to try contracting, i.e. the domain's edge count;
// the target's size does not enter.
func (op ContractGO) WorkEstimate() float64 {
	return float64(op.Domain_.NEdges())
}

// String implements fmt.Stringer for logging.
func (op ContractGO) String() string {
	return fmt.Sprintf("<Contract edges: domain: %s>", op.Domain_)
}

// OperateOn implements operator.Map: for each edge (u,v) of g, relabel so
// u,v become vertices 0,1, contract that edge, and reject images where
// the merge collapsed more than the contracted edge itself (a triangle
// would otherwise silently produce parallel edges that collapse in the
// simple-graph target; such images are skipped rather than folded in).
func (op ContractGO) OperateOn(g graph.Graph, yield func(gPrime graph.Graph, coeff int) bool) {
	n := g.N()
	for _, e := range g.Edges() {
		u, v := e.U, e.V
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

		edges1 := g1.Edges() // labels 0..E-1, label 0 is always the (0,1) edge
		mapV := make([]int, n)
		mapV[0], mapV[1] = 0, 0
		for j := 2; j < n; j++ {
			mapV[j] = j - 1
		}

		var merged []labeledEdge
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
			merged = append(merged, labeledEdge{nu, nv, i})
		}
		if !selfLoopSeen || len(merged) != len(edges1)-1 {
			continue
		}
		if hasDuplicatePair(merged) {
			// a triangle collapsed two edges onto one parallel pair;
			// skip the image rather than fold the duplicate into a
			// single edge.
			continue
		}

		if !op.Domain_.EvenEdges {
			sorted := make([]labeledEdge, len(merged))
			copy(sorted, merged)
			sortLabeledEdges(sorted)
			seq := make(graph.Perm, len(sorted))
			for i, le := range sorted {
				seq[i] = le.label - 1 // labels 1..E-1 -> 0-indexed permutation
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

func hasDuplicatePair(edges []labeledEdge) bool {
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
