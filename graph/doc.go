// Package graph implements the canonical-form machinery (component C1 of
// the graph cohomology engine): a small, immutable finite-graph type, a
// coloured-partition type, and the brute-force canonicalisation algorithm
// used to turn a labelled graph into the unique string identifier of its
// isomorphism class under a given partition.
//
// Graph is deliberately not the mutable, mutex-guarded, concurrently-edited
// type a general-purpose graph library would expose: basis construction
// builds a Graph once and never mutates it from more than one goroutine, so
// there is nothing to protect. Treat values of Graph as immutable after
// construction.
package graph
