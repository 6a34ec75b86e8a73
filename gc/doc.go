// Package gc implements component C7: the graph complex orchestrator that
// drives basis -> matrix -> rank -> cohomology over a sumvs.Sum of graph
// vector spaces and their differentials (Complex), plus the pairwise
// (anti-)commutativity test between two differential collections
// (TestCommutativity).
package gc
