package gc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafhom/gh/differential"
	"github.com/grafhom/gh/families/ordinary"
	"github.com/grafhom/gh/gc"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/rank"
	"github.com/grafhom/gh/store"
	"github.com/grafhom/gh/sumvs"
)

// TestComplexBuildPipelineOnK4Scenario drives the contracting-K4-lands-
// in-an-invalid-target scenario through the full pipeline: basis, matrix,
// exact rank, then cohomology at both ends.
func TestComplexBuildPipelineOnK4Scenario(t *testing.T) {
	s := store.NewMemStore()
	vK4 := ordinary.New(4, 3, true)
	vEmpty := ordinary.New(3, 3, true)
	sum := sumvs.New(vK4, vEmpty)

	op := ordinary.NewContractGO(4, 3, true)
	d := differential.NewDifferential([]operator.Map{op})
	complex := gc.New(sum, d)

	require.NoError(t, complex.BuildBasis(s, false))
	require.NoError(t, complex.BuildMatrices(context.Background(), s, operator.BuildOptions{}))

	engine := rank.Engine{}
	require.NoError(t, complex.ComputeRanksExact(s, engine, false))

	entries, err := complex.Cohomology(s, d, rank.ModeExact)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byKey := make(map[string]gc.CohomologyEntry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}

	k4Entry := byKey[vK4.Key()]
	require.True(t, k4Entry.Known)
	require.Equal(t, 1, k4Entry.Dim) // dim V=1, rank(d_out)=0 (0 columns)

	emptyEntry := byKey[vEmpty.Key()]
	require.True(t, emptyEntry.Known)
	require.Equal(t, 0, emptyEntry.Dim) // dim V=0
}

// TestComplexSquareZeroTestIsTrivialForASingleOperator checks that a
// differential with one operator reports no non-trivial pairs (there is
// no b with b.Domain() == a.Target() among a single-element collection
// unless the operator chains with itself, which it cannot here).
func TestComplexSquareZeroTestIsTrivialForASingleOperator(t *testing.T) {
	s := store.NewMemStore()
	op := ordinary.NewContractGO(4, 3, true)
	d := differential.NewDifferential([]operator.Map{op})
	complex := gc.New(sumvs.New(ordinary.New(4, 3, true), ordinary.New(3, 3, true)), d)

	outcomes, err := complex.SquareZeroTest(s, 1e-6)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, 0, outcomes[0].FailureCount)
}
