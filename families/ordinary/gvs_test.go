package ordinary_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafhom/gh/families/ordinary"
	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/store"
)

// TestVertices4Loops3IsTheWheelK4 checks the smallest nonempty space:
// v=4, l=3 (6 edges on 4 vertices) is valid and has dimension 1 -- the
// complete graph K4, the only connected min-degree-3 simple graph on 4
// vertices with 6 edges.
func TestVertices4Loops3IsTheWheelK4(t *testing.T) {
	v := ordinary.New(4, 3, true)
	require.True(t, v.Valid())
	require.Equal(t, 6, v.NEdges())

	s := store.NewMemStore()
	require.NoError(t, gvs.BuildBasis(s, v, false))
	dim, err := gvs.Dim(s, v)
	require.NoError(t, err)
	require.Equal(t, 1, dim)
}

// TestVertices3Loops3IsInvalid checks that the space at v=3, l=3 is
// empty: 5 edges exceeds the 3 edges a
// 3-vertex simple graph can have, so the space is invalid and contributes
// dimension 0 without touching the store.
func TestVertices3Loops3IsInvalid(t *testing.T) {
	v := ordinary.New(3, 3, true)
	require.False(t, v.Valid())

	s := store.NewMemStore()
	dim, err := gvs.Dim(s, v)
	require.NoError(t, err)
	require.Equal(t, 0, dim)
	require.False(t, s.Exists(v.Key()+".basis"))
}

// TestContractFromK4YieldsEmptyMatrix checks the 0-column edge case:
// contracting any edge of K4 (domain dim 1) lands in the
// v=3,l=3 space, which is invalid (target dim 0), so the built matrix has
// zero columns.
func TestContractFromK4YieldsEmptyMatrix(t *testing.T) {
	s := store.NewMemStore()
	domain := ordinary.New(4, 3, true)
	target := ordinary.New(3, 3, true)
	require.NoError(t, gvs.BuildBasis(s, domain, false))
	require.NoError(t, gvs.BuildBasis(s, target, false))

	op := ordinary.NewContractGO(4, 3, true)
	require.NoError(t, operator.BuildMatrix(context.Background(), s, op, operator.BuildOptions{}))

	mat, err := operator.LoadMatrix(s, op)
	require.NoError(t, err)
	require.Equal(t, 1, mat.Rows)
	require.Equal(t, 0, mat.Cols)
	require.True(t, mat.IsZero())
}

// TestPermSignEvenEdgesIsPlusOrMinusOne checks the even-edges perm-sign
// recipe always returns +-1 on a handful of permutations of a small
// graph, the basic well-formedness property every sign recipe must
// satisfy.
func TestPermSignEvenEdgesIsPlusOrMinusOne(t *testing.T) {
	v := ordinary.New(4, 3, true)
	g := makeK4(t)

	for _, p := range allPermsOf4() {
		sgn := v.PermSign(g, p)
		require.Contains(t, []int{1, -1}, sgn)
	}
}

// TestPermSignOddEdgesIsPlusOrMinusOne mirrors the even-edges check for
// the odd-edge/even-vertex convention.
func TestPermSignOddEdgesIsPlusOrMinusOne(t *testing.T) {
	v := ordinary.New(4, 3, false)
	g := makeK4(t)

	for _, p := range allPermsOf4() {
		sgn := v.PermSign(g, p)
		require.Contains(t, []int{1, -1}, sgn)
	}
}

// TestPermSignOddEdgesOnWheelW5 pins the odd-edge convention to two known
// values on the 6-vertex wheel (hub 0, rim 1-2-3-4-5-1): rotating the rim
// induces two 5-cycles on the edge labels (sign +1), while swapping rim
// vertices 3 and 4 induces a single transposition (sign -1).
func TestPermSignOddEdgesOnWheelW5(t *testing.T) {
	v := ordinary.New(6, 5, false)
	g, err := graph.New(6, []graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 1, V: 5},
	}, false)
	require.NoError(t, err)

	rot := graph.NewPerm([]int{0, 2, 3, 4, 5, 1})
	require.Equal(t, 1, v.PermSign(g, rot))

	swap := graph.NewPerm([]int{0, 1, 2, 4, 3, 5})
	require.Equal(t, -1, v.PermSign(g, swap))
}

func makeK4(t *testing.T) graph.Graph {
	t.Helper()
	g, err := graph.New(4, []graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3},
	}, false)
	require.NoError(t, err)
	return g
}

// allPermsOf4 returns every permutation of {0,1,2,3}, via a simple
// recursive generator local to this test.
func allPermsOf4() []graph.Perm {
	var out []graph.Perm
	base := []int{0, 1, 2, 3}
	var permute func(remaining, acc []int)
	permute = func(remaining, acc []int) {
		if len(remaining) == 0 {
			out = append(out, graph.NewPerm(acc))
			return
		}
		for i, x := range remaining {
			next := append(append([]int{}, remaining[:i]...), remaining[i+1:]...)
			permute(next, append(acc, x))
		}
	}
	permute(base, nil)
	return out
}
