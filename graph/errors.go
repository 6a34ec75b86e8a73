// errors.go: sentinel errors for the graph package.
//
// Error policy: only sentinel variables are exported; callers branch with
// errors.Is. Sentinels are never wrapped with formatted text at their
// definition site; wrapping happens at the call site via graphErrorf.
package graph

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfRange indicates an edge endpoint references a vertex index
// outside [0, n).
var ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

// ErrLoopNotAllowed indicates a self-loop was supplied to a graph that does
// not permit tadpoles at that vertex.
var ErrLoopNotAllowed = errors.New("graph: loop not allowed")

// ErrPartitionMismatch indicates a Partition's blocks do not exactly cover
// the graph's vertex set.
var ErrPartitionMismatch = errors.New("graph: partition does not cover vertex set")

// ErrPermutationShape indicates a Perm's length does not match the graph it
// is being applied to.
var ErrPermutationShape = errors.New("graph: permutation length mismatch")

// ErrFormat indicates a canonical string could not be parsed back into a
// Graph.
var ErrFormat = errors.New("graph: malformed canonical string")

func graphErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
