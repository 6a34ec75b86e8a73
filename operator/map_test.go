package operator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/store"
)

type fakeVS struct {
	key    string
	valid  bool
	graphs []graph.Graph
	part   graph.Partition
}

func (f fakeVS) Key() string                { return f.key }
func (f fakeVS) String() string             { return f.key }
func (f fakeVS) Valid() bool                { return f.valid }
func (f fakeVS) Partition() graph.Partition { return f.part }
func (f fakeVS) WorkEstimate() float64      { return float64(len(f.graphs)) }
func (f fakeVS) GeneratingGraphs(yield func(graph.Graph) bool) {
	for _, g := range f.graphs {
		if !yield(g) {
			return
		}
	}
}
func (f fakeVS) PermSign(_ graph.Graph, p graph.Perm) int { return p.Sign() }

// identityMap sends every domain basis graph to itself with coefficient 1.
type identityMap struct {
	domain, target gvs.VectorSpace
}

func (m identityMap) Domain() gvs.VectorSpace { return m.domain }
func (m identityMap) Target() gvs.VectorSpace { return m.target }
func (m identityMap) WorkEstimate() float64   { return 1 }
func (m identityMap) OperateOn(g graph.Graph, yield func(graph.Graph, int) bool) {
	yield(g, 1)
}

// vanishingMap always maps to a graph absent from the target basis,
// exercising the lookup-miss-ignored path.
type vanishingMap struct {
	domain, target gvs.VectorSpace
}

func (m vanishingMap) Domain() gvs.VectorSpace { return m.domain }
func (m vanishingMap) Target() gvs.VectorSpace { return m.target }
func (m vanishingMap) WorkEstimate() float64   { return 1 }
func (m vanishingMap) OperateOn(g graph.Graph, yield func(graph.Graph, int) bool) {
	g4, _ := graph.New(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}}, false)
	yield(g4, 1)
}

func buildSpace(t *testing.T, s store.Store, v fakeVS) {
	t.Helper()
	require.NoError(t, gvs.BuildBasis(s, v, true))
}

func TestBuildMatrixIdentityMap(t *testing.T) {
	s := store.NewMemStore()
	edge, err := graph.New(2, []graph.Edge{{U: 0, V: 1}}, false)
	require.NoError(t, err)
	v := fakeVS{key: "edge", valid: true, graphs: []graph.Graph{edge}, part: graph.NewPartition([]int{0}, []int{1})}
	buildSpace(t, s, v)

	m := identityMap{domain: v, target: v}
	require.NoError(t, operator.BuildMatrix(context.Background(), s, m, operator.BuildOptions{}))

	mat, err := operator.LoadMatrix(s, m)
	require.NoError(t, err)
	require.Equal(t, 1, mat.Rows)
	require.Equal(t, 1, mat.Cols)
	require.Equal(t, []operator.Triplet{{Row: 0, Col: 0, Value: 1}}, mat.Entries)
}

func TestBuildMatrixLookupMissIsSilentlyDropped(t *testing.T) {
	s := store.NewMemStore()
	edge, err := graph.New(2, []graph.Edge{{U: 0, V: 1}}, false)
	require.NoError(t, err)
	domain := fakeVS{key: "domain", valid: true, graphs: []graph.Graph{edge}, part: graph.Trivial(2)}
	target := fakeVS{key: "target", valid: true, graphs: []graph.Graph{edge}, part: graph.Trivial(2)}
	buildSpace(t, s, domain)
	buildSpace(t, s, target)

	m := vanishingMap{domain: domain, target: target}
	require.NoError(t, operator.BuildMatrix(context.Background(), s, m, operator.BuildOptions{}))

	mat, err := operator.LoadMatrix(s, m)
	require.NoError(t, err)
	require.Empty(t, mat.Entries)
}

func TestBuildMatrixInvalidIsNoOp(t *testing.T) {
	s := store.NewMemStore()
	invalid := fakeVS{key: "invalid", valid: false}
	m := identityMap{domain: invalid, target: invalid}
	require.NoError(t, operator.BuildMatrix(context.Background(), s, m, operator.BuildOptions{}))
	require.False(t, operator.MatrixExists(s, m))
}

func TestBuildMatrixMissingBasisSkips(t *testing.T) {
	s := store.NewMemStore()
	v := fakeVS{key: "unbuilt", valid: true, part: graph.Trivial(1)}
	m := identityMap{domain: v, target: v}

	err := operator.BuildMatrix(context.Background(), s, m, operator.BuildOptions{SkipIfNoBasis: true})
	require.NoError(t, err)
	require.False(t, operator.MatrixExists(s, m))

	err = operator.BuildMatrix(context.Background(), s, m, operator.BuildOptions{})
	require.ErrorIs(t, err, operator.ErrNoBasis)
}

func TestBuildMatrixEmptyDimensionWritesHeaderOnly(t *testing.T) {
	s := store.NewMemStore()
	empty := fakeVS{key: "empty", valid: true, part: graph.Trivial(0)}
	buildSpace(t, s, empty)

	m := identityMap{domain: empty, target: empty}
	require.NoError(t, operator.BuildMatrix(context.Background(), s, m, operator.BuildOptions{}))

	mat, err := operator.LoadMatrix(s, m)
	require.NoError(t, err)
	require.Equal(t, 0, mat.Rows)
	require.Equal(t, 0, mat.Cols)
	require.Empty(t, mat.Entries)
}
