package hairy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafhom/gh/families/hairy"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/store"
)

// TestContractDomainTargetShape checks the (v,l,h) -> (v-1,l,h) grading
// shift ContractGO implements.
func TestContractDomainTargetShape(t *testing.T) {
	op := hairy.NewContractGO(4, 3, 2, true, true)
	domain := op.Domain().(hairy.GVS)
	target := op.Target().(hairy.GVS)
	require.Equal(t, 4, domain.NVertices)
	require.Equal(t, 3, target.NVertices)
	require.Equal(t, domain.NLoops, target.NLoops)
	require.Equal(t, domain.NHairs, target.NHairs)
}

// TestContractFromFullInternalK4LandsInInvalidTarget mirrors the ordinary
// family's K4 scenario: contracting an internal edge of the full internal
// K4 (v=4, l=3) lands at v=3, l=3, whose internal edge count (5) exceeds
// what 3 internal vertices can carry (3), so the target is invalid and the
// built matrix has zero columns regardless of the domain's dimension.
func TestContractFromFullInternalK4LandsInInvalidTarget(t *testing.T) {
	s := store.NewMemStore()
	domain := hairy.New(4, 3, 2, true, true)
	target := hairy.New(3, 3, 2, true, true)
	require.False(t, target.Valid())

	require.NoError(t, gvs.BuildBasis(s, domain, false))
	require.NoError(t, gvs.BuildBasis(s, target, false))

	op := hairy.NewContractGO(4, 3, 2, true, true)
	require.NoError(t, operator.BuildMatrix(context.Background(), s, op, operator.BuildOptions{}))

	mat, err := operator.LoadMatrix(s, op)
	require.NoError(t, err)
	require.Equal(t, 0, mat.Cols)
	require.True(t, mat.IsZero())
}
