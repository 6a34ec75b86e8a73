package hairy

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/grafhom/gh/graph"
)

// GVS is the hairy graph vector space: NVertices internal vertices
// carrying NLoops independent cycles among themselves, plus NHairs
// degree-1 hair vertices each attached to one internal vertex. Internal
// vertices occupy partition block 0; hairs occupy block 1. EvenEdges and
// EvenHairs select independent sign conventions for the internal-edge and
// hair-permutation contributions respectively.
type GVS struct {
	NVertices int
	NLoops    int
	NHairs    int
	EvenEdges bool
	EvenHairs bool
}

// New returns the hairy GVS for the given parameters.
func New(nVertices, nLoops, nHairs int, evenEdges, evenHairs bool) GVS {
	return GVS{NVertices: nVertices, NLoops: nLoops, NHairs: nHairs, EvenEdges: evenEdges, EvenHairs: evenHairs}
}

// NInternalEdges returns the number of edges among internal vertices:
// loops + vertices - 1, same Betti-number convention as the ordinary
// family.
func (v GVS) NInternalEdges() int {
	return v.NLoops + v.NVertices - 1
}

// N returns the total vertex count (internal + hairs).
func (v GVS) N() int { return v.NVertices + v.NHairs }

func (v GVS) tag(flag bool) string {
	if flag {
		return "even"
	}
	return "odd"
}

// Key implements gvs.VectorSpace.
func (v GVS) Key() string {
	return fmt.Sprintf("hairy/e%s_h%s/v%d_l%d_h%d", v.tag(v.EvenEdges), v.tag(v.EvenHairs), v.NVertices, v.NLoops, v.NHairs)
}

// String implements gvs.VectorSpace.
func (v GVS) String() string {
	return fmt.Sprintf("<Hairy graphs: %d vertices, %d loops, %d hairs, %s edges, %s hairs>",
		v.NVertices, v.NLoops, v.NHairs, v.tag(v.EvenEdges), v.tag(v.EvenHairs))
}

// Valid implements gvs.VectorSpace: the internal-edge count must be
// non-negative and not exceed the complete graph on NVertices, there must
// be at least one internal vertex, and at least one hair (a hairy graph
// with no hairs degenerates to the ordinary family).
func (v GVS) Valid() bool {
	e := v.NInternalEdges()
	return v.NVertices > 0 && v.NLoops >= 0 && v.NHairs > 0 &&
		e >= 0 && e <= v.NVertices*(v.NVertices-1)/2
}

// Partition implements gvs.VectorSpace: block 0 is the internal vertices,
// block 1 is the hairs, matching this family's two-colour scheme.
func (v GVS) Partition() graph.Partition {
	internal := make([]int, v.NVertices)
	for i := range internal {
		internal[i] = i
	}
	hairs := make([]int, v.NHairs)
	for i := range hairs {
		hairs[i] = v.NVertices + i
	}
	return graph.NewPartition(internal, hairs)
}

// WorkEstimate implements gvs.VectorSpace: the internal edge-choice count
// scaled by the number of ways to attach the hairs, the ordinary family's
// estimate extended with a hair-attachment factor.
func (v GVS) WorkEstimate() float64 {
	total := v.NVertices * (v.NVertices - 1) / 2
	e := v.NInternalEdges()
	if e < 0 || e > total {
		return 0
	}
	base := float64(combin.Binomial(total, e))
	attach := 1.0
	for i := 0; i < v.NHairs; i++ {
		attach *= float64(v.NVertices)
	}
	return base * attach / factorial(v.NVertices)
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func internalEdgeUniverse(n int) []graph.Edge {
	var edges []graph.Edge
	for u := 0; u < n; u++ {
		for w := u + 1; w < n; w++ {
			edges = append(edges, graph.Edge{U: u, V: w})
		}
	}
	return edges
}

// GeneratingGraphs implements gvs.VectorSpace: candidates are built by
// choosing NInternalEdges edges among the internal vertices (connected)
// and then attaching each hair to some internal vertex, enumerating every
// assignment; a candidate in which some internal vertex has degree < 3
// once its hairs are attached is skipped. Feasible at the single-digit
// vertex/hair counts this module's reference scenarios use.
func (v GVS) GeneratingGraphs(yield func(graph.Graph) bool) {
	if !v.Valid() {
		return
	}
	universe := internalEdgeUniverse(v.NVertices)
	e := v.NInternalEdges()
	if e > len(universe) {
		return
	}
	combos := [][]int{nil}
	if e > 0 {
		combos = combin.Combinations(len(universe), e)
	}
	for _, idx := range combos {
		internalEdges := make([]graph.Edge, len(idx))
		for i, k := range idx {
			internalEdges[i] = universe[k]
		}
		if !internalConnected(v.NVertices, internalEdges) {
			continue
		}
		attachments := make([]int, v.NHairs)
		cont := attachHairs(attachments, 0, v.NVertices, func(att []int) bool {
			g, err := buildHairyGraph(v.NVertices, internalEdges, att)
			if err != nil {
				return true
			}
			if minInternalDegree(v.NVertices, internalEdges, att) < 3 {
				return true
			}
			return yield(g)
		})
		if !cont {
			return
		}
	}
}

// attachHairs enumerates every function from hair index to internal
// vertex, calling yield with each complete assignment; returning false
// from yield stops enumeration early, propagated back to the caller.
func attachHairs(att []int, i, nVertices int, yield func([]int) bool) bool {
	if i == len(att) {
		return yield(att)
	}
	for j := 0; j < nVertices; j++ {
		att[i] = j
		if !attachHairs(att, i+1, nVertices, yield) {
			return false
		}
	}
	return true
}

func buildHairyGraph(nVertices int, internalEdges []graph.Edge, attachments []int) (graph.Graph, error) {
	edges := make([]graph.Edge, 0, len(internalEdges)+len(attachments))
	edges = append(edges, internalEdges...)
	for h, target := range attachments {
		edges = append(edges, graph.Edge{U: target, V: nVertices + h})
	}
	return graph.New(nVertices+len(attachments), edges, false)
}

func minInternalDegree(nVertices int, internalEdges []graph.Edge, attachments []int) int {
	deg := make([]int, nVertices)
	for _, e := range internalEdges {
		deg[e.U]++
		deg[e.V]++
	}
	for _, target := range attachments {
		deg[target]++
	}
	if nVertices == 0 {
		return 0
	}
	min := deg[0]
	for _, d := range deg[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

func internalConnected(n int, edges []graph.Edge) bool {
	if n <= 1 {
		return true
	}
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	visited := make([]bool, n)
	queue := []int{0}
	visited[0] = true
	count := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range adj[u] {
			if !visited[w] {
				visited[w] = true
				count++
				queue = append(queue, w)
			}
		}
	}
	return count == n
}

// PermSign implements gvs.VectorSpace:
// the internal-edge sign (even- or odd-edge convention, restricted to
// edges with both endpoints internal) multiplied by the hair block's
// induced-permutation sign when EvenHairs is false.
func (v GVS) PermSign(g graph.Graph, p graph.Perm) int {
	sgn := internalEdgeSign(g, p, v.NVertices, v.EvenEdges)
	if !v.EvenHairs {
		sgn *= blockPermSign(p, v.NVertices, v.N())
	}
	return sgn
}

// internalEdgeSign computes the ordinary family's two sign recipes but
// restricted to edges with both endpoints < nVertices (i.e. excluding
// hair edges).
func internalEdgeSign(g graph.Graph, p graph.Perm, nVertices int, evenEdges bool) int {
	var internal []graph.Edge
	for _, e := range g.Edges() {
		if e.U < nVertices && e.V < nVertices {
			internal = append(internal, e)
		}
	}
	if evenEdges {
		sgn := blockPermSign(p, 0, nVertices)
		for _, e := range internal {
			if p[e.U] > p[e.V] {
				sgn = -sgn
			}
		}
		return sgn
	}
	type labeled struct{ u, v, label int }
	relabelled := make([]labeled, len(internal))
	for i, e := range internal {
		u, w := p[e.U], p[e.V]
		if u > w {
			u, w = w, u
		}
		relabelled[i] = labeled{u, w, i}
	}
	for i := 1; i < len(relabelled); i++ {
		for j := i; j > 0; j-- {
			a, b := relabelled[j-1], relabelled[j]
			if a.u < b.u || (a.u == b.u && a.v <= b.v) {
				break
			}
			relabelled[j-1], relabelled[j] = relabelled[j], relabelled[j-1]
		}
	}
	seq := make(graph.Perm, len(relabelled))
	for i, le := range relabelled {
		seq[i] = le.label
	}
	return seq.Sign()
}

// blockPermSign returns the sign of the permutation p induces on the
// contiguous index range [lo, hi), expressed as a standalone permutation
// of {0,...,hi-lo-1} by subtracting lo from every image.
func blockPermSign(p graph.Perm, lo, hi int) int {
	rel := make(graph.Perm, hi-lo)
	for i := lo; i < hi; i++ {
		rel[i-lo] = p[i] - lo
	}
	return rel.Sign()
}
