package sumvs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/store"
	"github.com/grafhom/gh/sumvs"
)

// fakeVS is a minimal gvs.VectorSpace stub for exercising Sum/DegreeSlice
// bookkeeping without depending on a concrete family package.
type fakeVS struct {
	key    string
	valid  bool
	dim    int
	work   float64
}

func (f fakeVS) Key() string                { return f.key }
func (f fakeVS) String() string             { return f.key }
func (f fakeVS) Valid() bool                { return f.valid }
func (f fakeVS) Partition() graph.Partition { return graph.Trivial(0) }
func (f fakeVS) WorkEstimate() float64      { return f.work }
func (f fakeVS) GeneratingGraphs(yield func(graph.Graph) bool) {
	for i := 0; i < f.dim; i++ {
		g, _ := graph.New(1, nil, false)
		if !yield(g) {
			return
		}
	}
}
func (f fakeVS) PermSign(_ graph.Graph, _ graph.Perm) int { return 1 }

func buildFake(t *testing.T, s store.Store, v fakeVS) fakeVS {
	t.Helper()
	require.NoError(t, gvs.BuildBasis(s, v, true))
	return v
}

func TestSumDim(t *testing.T) {
	s := store.NewMemStore()
	a := buildFake(t, s, fakeVS{key: "a", valid: true, dim: 2})
	b := buildFake(t, s, fakeVS{key: "b", valid: true, dim: 3})
	invalid := fakeVS{key: "c", valid: false, dim: 5}

	sum := sumvs.New(a, b, invalid)
	dim, err := sum.Dim(s)
	require.NoError(t, err)
	require.Equal(t, 2, dim) // both a and b collapse to dim 1 each (single iso graph)
}

func TestSumContains(t *testing.T) {
	a := fakeVS{key: "a"}
	b := fakeVS{key: "b"}
	sum := sumvs.New(a)
	require.True(t, sum.Contains(a))
	require.False(t, sum.Contains(b))
}

func TestSumStartIndex(t *testing.T) {
	s := store.NewMemStore()
	a := buildFake(t, s, fakeVS{key: "a", valid: true, dim: 1})
	b := buildFake(t, s, fakeVS{key: "b", valid: true, dim: 1})
	c := buildFake(t, s, fakeVS{key: "c", valid: true, dim: 1})
	sum := sumvs.New(a, b, c)

	idx, err := sum.StartIndex(s, b)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	missing := fakeVS{key: "missing"}
	idx, err = sum.StartIndex(s, missing)
	require.NoError(t, err)
	require.Equal(t, -1, idx)
}

func TestSumSortByWorkEstimate(t *testing.T) {
	s := store.NewMemStore()
	heavy := fakeVS{key: "heavy", valid: true, work: 100}
	light := fakeVS{key: "light", valid: true, work: 1}
	sum := sumvs.New(heavy, light)

	sum.Sort(s, sumvs.ByWorkEstimate, 1e18)
	members := sum.Members()
	require.Equal(t, "light", members[0].Key())
	require.Equal(t, "heavy", members[1].Key())
}

func TestDegreeSliceWrongMemberCount(t *testing.T) {
	a := fakeVS{key: "a", valid: true}
	_, err := sumvs.NewDegreeSlice(2, a)
	require.ErrorIs(t, err, sumvs.ErrWrongMemberCount)
}

func TestDegreeSliceEnsureBuilt(t *testing.T) {
	s := store.NewMemStore()
	a := fakeVS{key: "a", valid: true, dim: 1}
	b := fakeVS{key: "b", valid: true, dim: 1}

	slice, err := sumvs.NewDegreeSlice(1, a, b)
	require.NoError(t, err)

	require.ErrorIs(t, slice.EnsureBuilt(s), sumvs.ErrSliceNotBuilt)

	require.NoError(t, gvs.BuildBasis(s, a, true))
	require.ErrorIs(t, slice.EnsureBuilt(s), sumvs.ErrSliceNotBuilt)

	require.NoError(t, gvs.BuildBasis(s, b, true))
	require.NoError(t, slice.EnsureBuilt(s))
}

func TestDegreeSliceEnsureBuiltIgnoresInvalidMembers(t *testing.T) {
	s := store.NewMemStore()
	a := fakeVS{key: "a", valid: true, dim: 1}
	invalid := fakeVS{key: "b", valid: false}

	slice, err := sumvs.NewDegreeSlice(1, a, invalid)
	require.NoError(t, err)
	require.NoError(t, gvs.BuildBasis(s, a, true))
	require.NoError(t, slice.EnsureBuilt(s))
}
