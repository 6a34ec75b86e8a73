package gvs

import "github.com/grafhom/gh/graph"

// VectorSpace is the capability every concrete graph family implements.
// It carries no state of its own beyond what a family needs to
// answer these questions; gvs never downcasts to a concrete type.
type VectorSpace interface {
	// Key returns a string uniquely identifying this instance among all
	// instances of its family, stable across process runs; it is used to
	// derive the store key for this space's basis file.
	Key() string
	// String returns a human-readable description, used in logs and the
	// info file.
	String() string
	// Valid reports whether this instance's parameters satisfy its
	// family's validity predicate. Invalid instances contribute dimension
	// 0 and never touch the store.
	Valid() bool
	// Partition returns the coloured partition basis construction and
	// automorphism search must respect.
	Partition() graph.Partition
	// WorkEstimate returns a scheduling-only scalar; it never affects
	// correctness.
	WorkEstimate() float64
	// GeneratingGraphs yields candidate graphs for the basis. The sequence
	// may contain duplicates and graphs with odd automorphisms; BuildBasis
	// filters both. It is consumed at most once per build.
	GeneratingGraphs(yield func(graph.Graph) bool)
	// PermSign returns the family-specific sign of p's action on g.
	PermSign(g graph.Graph, p graph.Perm) int
}
