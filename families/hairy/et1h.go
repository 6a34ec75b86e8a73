package hairy

import (
	"fmt"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
)

// EdgeToOneHairGO is the second hairy differential, domain (v,l,h) ->
// target (v,l-1,h+1): it replaces one internal edge by a single hair,
// once per endpoint of the edge. The vertex count is preserved while one
// independent cycle is traded for one hair, so the target's internal edge
// count is exactly one less than the domain's.
type EdgeToOneHairGO struct {
	Domain_, Target_ GVS
}

// NewEdgeToOneHairGO builds the edge-to-one-hair operator.
func NewEdgeToOneHairGO(nVertices, nLoops, nHairs int, evenEdges, evenHairs bool) EdgeToOneHairGO {
	return EdgeToOneHairGO{
		Domain_: New(nVertices, nLoops, nHairs, evenEdges, evenHairs),
		Target_: New(nVertices, nLoops-1, nHairs+1, evenEdges, evenHairs),
	}
}

// Domain implements operator.Map.
func (op EdgeToOneHairGO) Domain() gvs.VectorSpace { return op.Domain_ }

// Target implements operator.Map.
func (op EdgeToOneHairGO) Target() gvs.VectorSpace { return op.Target_ }

// WorkEstimate implements operator.Map.
func (op EdgeToOneHairGO) WorkEstimate() float64 {
	return float64(op.Domain_.NInternalEdges())
}

// String implements fmt.Stringer.
func (op EdgeToOneHairGO) String() string {
	return fmt.Sprintf("<Hairy edge-to-one-hair: domain: %s>", op.Domain_)
}

// OperateOn implements operator.Map: for each internal edge, in internal
// lex order, and each of the edge's two endpoints, delete the edge and
// attach a fresh hair to that endpoint. The new hair is appended after
// the existing hairs, so the hair block's sign is unaffected for either
// hair convention; when edges are odd the removed edge contributes
// (-1)^i for the i-th internal edge, and both endpoint images carry the
// same coefficient. Images whose endpoint drops below the target's
// degree constraints simply miss the target basis and are projected
// away.
func (op EdgeToOneHairGO) OperateOn(g graph.Graph, yield func(gPrime graph.Graph, coeff int) bool) {
	v := op.Domain_.NVertices
	n := g.N()
	newHair := n

	internalIdx := 0
	for _, e := range g.Edges() {
		if e.U >= v || e.V >= v {
			continue
		}
		sgn := 1
		if !op.Domain_.EvenEdges && internalIdx%2 == 1 {
			sgn = -1
		}
		for _, attach := range [2]int{e.U, e.V} {
			edges := make([]graph.Edge, 0, g.M())
			for _, e2 := range g.Edges() {
				if e2 == e {
					continue
				}
				edges = append(edges, e2)
			}
			edges = append(edges, graph.Edge{U: attach, V: newHair})
			g2, err := graph.New(n+1, edges, false)
			if err != nil {
				continue
			}
			if !yield(g2, sgn) {
				return
			}
		}
		internalIdx++
	}
}
