package rank_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/rank"
	"github.com/grafhom/gh/store"
)

type fakeVS struct {
	key   string
	valid bool
}

func (f fakeVS) Key() string                { return f.key }
func (f fakeVS) String() string             { return f.key }
func (f fakeVS) Valid() bool                { return f.valid }
func (f fakeVS) Partition() graph.Partition { return graph.Trivial(0) }
func (f fakeVS) WorkEstimate() float64      { return 0 }
func (f fakeVS) GeneratingGraphs(func(graph.Graph) bool) {}
func (f fakeVS) PermSign(graph.Graph, graph.Perm) int     { return 1 }

type fakeMap struct {
	domain, target gvs.VectorSpace
}

func (m fakeMap) Domain() gvs.VectorSpace { return m.domain }
func (m fakeMap) Target() gvs.VectorSpace { return m.target }
func (m fakeMap) WorkEstimate() float64   { return 1 }
func (m fakeMap) OperateOn(graph.Graph, func(graph.Graph, int) bool) {}

func TestEngineExactInvalidOperatorMaterializesZero(t *testing.T) {
	s := store.NewMemStore()
	invalid := fakeVS{key: "inv", valid: false}
	eng := rank.Engine{Primes: []uint64{3036995833}}
	r, err := eng.Exact(s, fakeMap{domain: invalid, target: invalid}, false)
	require.NoError(t, err)
	require.Equal(t, 0, r.Exact)
}

func TestEngineExactMissingMatrixIsInconclusive(t *testing.T) {
	s := store.NewMemStore()
	v := fakeVS{key: "v", valid: true}
	eng := rank.Engine{Primes: []uint64{3036995833}}
	_, err := eng.Exact(s, fakeMap{domain: v, target: v}, false)
	require.ErrorIs(t, err, rank.ErrInconclusive)
}

func TestEngineExactCachesResult(t *testing.T) {
	s := store.NewMemStore()
	domain := fakeVS{key: "d", valid: true}
	target := fakeVS{key: "t", valid: true}
	require.NoError(t, gvs.BuildBasis(s, domain, true))
	require.NoError(t, gvs.BuildBasis(s, target, true))

	m := fakeMap{domain: domain, target: target}
	mat := operator.NewSparseMatrix(0, 0, nil)
	require.NoError(t, s.Put(domain.Key()+"--"+target.Key()+".matrix", operator.EncodeMatrix(mat)))

	eng := rank.Engine{Primes: []uint64{3036995833}}
	r1, err := eng.Exact(s, m, false)
	require.NoError(t, err)
	require.Equal(t, 0, r1.Exact)

	r2, err := eng.Exact(s, m, false)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

func TestEngineEstimateIsCachedSeparatelyFromExact(t *testing.T) {
	s := store.NewMemStore()
	domain := fakeVS{key: "d", valid: true}
	target := fakeVS{key: "t", valid: true}
	require.NoError(t, gvs.BuildBasis(s, domain, true))
	require.NoError(t, gvs.BuildBasis(s, target, true))

	m := fakeMap{domain: domain, target: target}
	mat := operator.NewSparseMatrix(0, 0, nil)
	require.NoError(t, s.Put(domain.Key()+"--"+target.Key()+".matrix", operator.EncodeMatrix(mat)))

	eng := rank.Engine{Primes: []uint64{3036995833}}
	exact, err := eng.Exact(s, m, false)
	require.NoError(t, err)

	// Forcing a fresh estimate must not clobber the exact rank file.
	_, err = eng.Estimate(s, m, true)
	require.NoError(t, err)
	require.True(t, s.Exists(domain.Key()+"--"+target.Key()+".rank.est"))

	again, err := eng.Exact(s, m, false)
	require.NoError(t, err)
	require.Equal(t, exact, again)
}
