package ordinary

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/grafhom/gh/graph"
)

// GVS is the ordinary graph vector space: simple graphs on NVertices
// vertices with NLoops independent cycles (so NEdges = NLoops+NVertices-1
// edges, matching a connected graph's first Betti number), under one of
// two perm-sign conventions selected by EvenEdges.
type GVS struct {
	NVertices int
	NLoops    int
	EvenEdges bool
}

// New returns the ordinary GVS for the given parameters.
func New(nVertices, nLoops int, evenEdges bool) GVS {
	return GVS{NVertices: nVertices, NLoops: nLoops, EvenEdges: evenEdges}
}

// NEdges returns the number of edges a graph in this space has:
// loops + vertices - 1, the first Betti number of a connected graph.
func (v GVS) NEdges() int {
	return v.NLoops + v.NVertices - 1
}

func (v GVS) eoTag() string {
	if v.EvenEdges {
		return "even"
	}
	return "odd"
}

// Key implements gvs.VectorSpace.
func (v GVS) Key() string {
	return fmt.Sprintf("ordinary/%s/v%d_l%d", v.eoTag(), v.NVertices, v.NLoops)
}

// String implements gvs.VectorSpace.
func (v GVS) String() string {
	kind := "odd edges"
	if v.EvenEdges {
		kind = "even edges"
	}
	return fmt.Sprintf("<Ordinary graphs: %d vertices, %d loops, %s>", v.NVertices, v.NLoops, kind)
}

// Valid implements gvs.VectorSpace: the
// graph must admit minimum degree 3 (3V <= 2E), have at least one vertex,
// a non-negative loop number, and not exceed the complete graph's edge
// count.
func (v GVS) Valid() bool {
	e := v.NEdges()
	return 3*v.NVertices <= 2*e && v.NVertices > 0 && v.NLoops >= 0 && e <= v.NVertices*(v.NVertices-1)/2
}

// Partition implements gvs.VectorSpace: ordinary graphs carry no vertex
// colouring, so every vertex is in one block.
func (v GVS) Partition() graph.Partition {
	return graph.Trivial(v.NVertices)
}

// WorkEstimate implements gvs.VectorSpace: choosing NEdges edges out of
// the complete graph's edge set, scaled down by the vertex-labelling
// symmetry.
func (v GVS) WorkEstimate() float64 {
	totalPossible := v.NVertices * (v.NVertices - 1) / 2
	e := v.NEdges()
	if e < 0 || e > totalPossible {
		return 0
	}
	return float64(combin.Binomial(totalPossible, e)) / factorial(v.NVertices)
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// completeGraphEdges returns every possible edge (u,v), u<v, on n vertices
// in lexicographic order, the universe GeneratingGraphs samples from.
func completeGraphEdges(n int) []graph.Edge {
	var edges []graph.Edge
	for u := 0; u < n; u++ {
		for w := u + 1; w < n; w++ {
			edges = append(edges, graph.Edge{U: u, V: w})
		}
	}
	return edges
}

// GeneratingGraphs implements gvs.VectorSpace: every simple graph on
// NVertices vertices with exactly NEdges edges, connected, with minimum
// degree >= 3. Candidates are generated by choosing NEdges
// indices out of the complete graph's edge list; duplicates across
// isomorphism classes are expected and filtered later by BuildBasis.
func (v GVS) GeneratingGraphs(yield func(graph.Graph) bool) {
	if !v.Valid() {
		return
	}
	universe := completeGraphEdges(v.NVertices)
	e := v.NEdges()
	if e > len(universe) {
		return
	}
	for _, idx := range combin.Combinations(len(universe), e) {
		edges := make([]graph.Edge, e)
		for i, k := range idx {
			edges[i] = universe[k]
		}
		g, err := graph.New(v.NVertices, edges, false)
		if err != nil {
			continue
		}
		if !isConnected(g) || minDegree(g) < 3 {
			continue
		}
		if !yield(g) {
			return
		}
	}
}

// degrees returns the degree sequence of g.
func degrees(g graph.Graph) []int {
	d := make([]int, g.N())
	for _, e := range g.Edges() {
		d[e.U]++
		d[e.V]++
	}
	return d
}

// minDegree returns the smallest vertex degree in g.
func minDegree(g graph.Graph) int {
	d := degrees(g)
	if len(d) == 0 {
		return 0
	}
	min := d[0]
	for _, x := range d[1:] {
		if x < min {
			min = x
		}
	}
	return min
}

// isConnected reports whether g is connected, via a breadth-first walk
// over an adjacency list built from its edge list.
func isConnected(g graph.Graph) bool {
	n := g.N()
	if n == 0 {
		return true
	}
	adj := make([][]int, n)
	for _, e := range g.Edges() {
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

// PermSign implements gvs.VectorSpace's two perm-sign recipes, selected
// by EvenEdges. With even edges the sign is the vertex permutation's
// signature times a factor of -1 for every edge whose endpoints p swaps
// out of order; with odd edges it is the signature of the induced edge
// label permutation.
func (v GVS) PermSign(g graph.Graph, p graph.Perm) int {
	if v.EvenEdges {
		sgn := p.Sign()
		for _, e := range g.Edges() {
			if p[e.U] > p[e.V] {
				sgn = -sgn
			}
		}
		return sgn
	}
	return edgeLabelPermSign(g, p)
}

// labeledEdge is an edge tagged with its position in some reference lex
// order, used to recover induced edge-permutation signs.
type labeledEdge struct{ u, v, label int }

// edgeLabelPermSign implements the odd-edge/even-vertex convention: label
// g's edges 0..E-1 in its own lex order, relabel vertices by p, then read
// off the induced edge-label permutation in the relabelled graph's sorted
// order; the sign is that permutation's signature.
func edgeLabelPermSign(g graph.Graph, p graph.Perm) int {
	edges := g.Edges()
	relabelled := make([]labeledEdge, len(edges))
	for i, e := range edges {
		u, w := p[e.U], p[e.V]
		if u > w {
			u, w = w, u
		}
		relabelled[i] = labeledEdge{u, w, i}
	}
	sortLabeledEdges(relabelled)
	seq := make(graph.Perm, len(relabelled))
	for i, le := range relabelled {
		seq[i] = le.label
	}
	return seq.Sign()
}

func sortLabeledEdges(s []labeledEdge) {
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
