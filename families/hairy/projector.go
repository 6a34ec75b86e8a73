package hairy

import (
	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/projector"
	"github.com/grafhom/gh/store"
)

// SignProjector builds the sign-weighted hair projector for v on its
// stored basis: the hair block occupies vertex indices NVertices..N()-1.
// Pass projector.SymmetricGroup(v.NHairs) as cosetReps for the full
// symmetriser.
func SignProjector(s store.Store, v GVS, cosetReps []graph.Perm) (operator.SparseMatrix, error) {
	return projector.BuildProjector(s, v, projector.HairBlock{Offset: v.NVertices, Count: v.NHairs}, cosetReps)
}
