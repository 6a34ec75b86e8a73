package differential_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafhom/gh/differential"
	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/rank"
	"github.com/grafhom/gh/store"
)

// fakeVS is a small GVS stub. When dim > 0 it generates `dim` pairwise
// non-isomorphic basis graphs on a fixed dim-vertex partition block: the
// first i edges of a Hamiltonian path, for i = 0..dim-1, which differ
// pairwise in edge count and so always canonicalise to distinct strings
// regardless of labelling. Otherwise, when hasDim is set, it generates
// exactly one graph on a single vertex. Either way PermSign is constant
// +1, so nothing is ever excluded as an odd automorphism and the basis
// size is exactly dim (or 1). This is just enough to exercise both 1x1
// and rectangular matrices in the square-zero tests below.
type fakeVS struct {
	key    string
	valid  bool
	hasDim bool
	dim    int
}

func (f fakeVS) Key() string    { return f.key }
func (f fakeVS) String() string { return f.key }
func (f fakeVS) Valid() bool    { return f.valid }
func (f fakeVS) Partition() graph.Partition {
	if f.dim > 0 {
		return graph.Trivial(f.dim)
	}
	return graph.Trivial(1)
}
func (f fakeVS) WorkEstimate() float64 { return 0 }
func (f fakeVS) GeneratingGraphs(yield func(graph.Graph) bool) {
	if f.dim > 0 {
		path := make([]graph.Edge, f.dim-1)
		for j := range path {
			path[j] = graph.Edge{U: j, V: j + 1}
		}
		for i := 0; i < f.dim; i++ {
			g, _ := graph.New(f.dim, path[:i], false)
			if !yield(g) {
				return
			}
		}
		return
	}
	if !f.hasDim {
		return
	}
	g, _ := graph.New(1, nil, false)
	yield(g)
}
func (f fakeVS) PermSign(graph.Graph, graph.Perm) int { return 1 }

type fakeMap struct {
	domain, target gvs.VectorSpace
	valid          bool
}

func (m fakeMap) Domain() gvs.VectorSpace { return m.domain }
func (m fakeMap) Target() gvs.VectorSpace { return m.target }
func (m fakeMap) WorkEstimate() float64   { return 1 }
func (m fakeMap) OperateOn(graph.Graph, func(graph.Graph, int) bool) {}

func mustMatrix(t *testing.T, s store.Store, m operator.Map, mat operator.SparseMatrix) {
	t.Helper()
	key := m.Domain().Key() + "--" + m.Target().Key() + ".matrix"
	require.NoError(t, s.Put(key, operator.EncodeMatrix(mat)))
}

func buildBasis(t *testing.T, s store.Store, v gvs.VectorSpace) {
	t.Helper()
	require.NoError(t, gvs.BuildBasis(s, v, true))
}

func TestSquareZeroTrivialOnInvalidOperator(t *testing.T) {
	s := store.NewMemStore()
	invalid := fakeVS{key: "inv", valid: false}
	valid := fakeVS{key: "v", valid: true}
	a := fakeMap{domain: valid, target: invalid}
	b := fakeMap{domain: invalid, target: valid}
	d := differential.NewDifferential([]operator.Map{a, b})

	out, err := differential.SquareZeroTest(s, d, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 2, out.TrivialCount)
	require.Equal(t, 0, out.FailureCount)
}

func TestSquareZeroInconclusiveOnMissingMatrix(t *testing.T) {
	s := store.NewMemStore()
	u := fakeVS{key: "u", valid: true}
	v := fakeVS{key: "v", valid: true}
	w := fakeVS{key: "w", valid: true}
	buildBasis(t, s, u)
	buildBasis(t, s, v)
	buildBasis(t, s, w)

	a := fakeMap{domain: u, target: v}
	b := fakeMap{domain: v, target: w}
	d := differential.NewDifferential([]operator.Map{a, b})

	out, err := differential.SquareZeroTest(s, d, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 1, out.InconclusiveCount)
}

func TestSquareZeroTrivialWhenOneMatrixIsZero(t *testing.T) {
	s := store.NewMemStore()
	u := fakeVS{key: "u2", valid: true, hasDim: true}
	v := fakeVS{key: "v2", valid: true, hasDim: true}
	w := fakeVS{key: "w2", valid: true, hasDim: true}
	buildBasis(t, s, u)
	buildBasis(t, s, v)
	buildBasis(t, s, w)

	a := fakeMap{domain: u, target: v}
	b := fakeMap{domain: v, target: w}

	matA := operator.NewSparseMatrix(1, 1, []operator.Triplet{{Row: 0, Col: 0, Value: 1}})
	matB := operator.NewSparseMatrix(1, 1, nil)
	mustMatrix(t, s, a, matA)
	mustMatrix(t, s, b, matB)

	d := differential.NewDifferential([]operator.Map{a, b})
	out, err := differential.SquareZeroTest(s, d, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 1, out.TrivialCount)
}

func TestSquareZeroFailureWhenProductNonzero(t *testing.T) {
	s := store.NewMemStore()
	u := fakeVS{key: "u3", valid: true, hasDim: true}
	v := fakeVS{key: "v3", valid: true, hasDim: true}
	w := fakeVS{key: "w3", valid: true, hasDim: true}
	buildBasis(t, s, u)
	buildBasis(t, s, v)
	buildBasis(t, s, w)

	a := fakeMap{domain: u, target: v}
	b := fakeMap{domain: v, target: w}

	matA := operator.NewSparseMatrix(1, 1, []operator.Triplet{{Row: 0, Col: 0, Value: 1}})
	matB := operator.NewSparseMatrix(1, 1, []operator.Triplet{{Row: 0, Col: 0, Value: 1}})
	mustMatrix(t, s, a, matA)
	mustMatrix(t, s, b, matB)

	d := differential.NewDifferential([]operator.Map{a, b})
	out, err := differential.SquareZeroTest(s, d, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 1, out.FailureCount)
	require.Len(t, out.Failing, 1)
}

// TestSquareZeroSucceedsWithRectangularMatrices exercises a real
// multi-space differential with pairwise-incompatible dimensions (2, 3, 5)
// so that a.M and b.M can only be multiplied in one order -- the wrong
// order (b.M*a.M) is dimensionally invalid (5 != 2) and would report
// Inconclusive with a non-nil error, masking the defect the square-zero
// test exists to catch. Both matrices are built with genuinely nonzero
// entries so the test exercises operator.MulBig's real arithmetic, not
// the IsZero short-circuit.
func TestSquareZeroSucceedsWithRectangularMatrices(t *testing.T) {
	s := store.NewMemStore()
	u := fakeVS{key: "rectU", valid: true, dim: 2}
	v := fakeVS{key: "rectV", valid: true, dim: 3}
	w := fakeVS{key: "rectW", valid: true, dim: 5}
	buildBasis(t, s, u)
	buildBasis(t, s, v)
	buildBasis(t, s, w)

	a := fakeMap{domain: u, target: v}
	b := fakeMap{domain: v, target: w}

	// a.M (2x3) * b.M (3x5) = 0 (2x5), by construction: row0 of a.M sums
	// b.M's row0 and row1 to zero; row1 of a.M sums the negation of
	// b.M's row1 and row2 to zero.
	matA := operator.NewSparseMatrix(2, 3, []operator.Triplet{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 1, Value: -1}, {Row: 1, Col: 2, Value: 1},
	})
	matB := operator.NewSparseMatrix(3, 5, []operator.Triplet{
		{Row: 0, Col: 0, Value: -1}, {Row: 0, Col: 1, Value: -1}, {Row: 0, Col: 2, Value: -1}, {Row: 0, Col: 3, Value: -1}, {Row: 0, Col: 4, Value: -1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}, {Row: 1, Col: 2, Value: 1}, {Row: 1, Col: 3, Value: 1}, {Row: 1, Col: 4, Value: 1},
		{Row: 2, Col: 0, Value: 1}, {Row: 2, Col: 1, Value: 1}, {Row: 2, Col: 2, Value: 1}, {Row: 2, Col: 3, Value: 1}, {Row: 2, Col: 4, Value: 1},
	})
	mustMatrix(t, s, a, matA)
	mustMatrix(t, s, b, matB)

	d := differential.NewDifferential([]operator.Map{a, b})
	out, err := differential.SquareZeroTest(s, d, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 0, out.InconclusiveCount)
	require.Equal(t, 0, out.FailureCount)
	require.Equal(t, 1, out.SuccessCount)
}

func TestCohomologyDimFormula(t *testing.T) {
	rOut := rank.Result{Mode: rank.ModeExact, Exact: 2}
	rIn := rank.Result{Mode: rank.ModeExact, Exact: 1}
	dim, ok, err := differential.CohomologyDim(5, rOut, rIn, true, true)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, dim)
}

func TestCohomologyDimUnknownWhenRankMissing(t *testing.T) {
	_, ok, err := differential.CohomologyDim(5, rank.Result{}, rank.Result{}, false, true)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCohomologyDimNegativeIsError(t *testing.T) {
	rOut := rank.Result{Mode: rank.ModeExact, Exact: 10}
	rIn := rank.Result{Mode: rank.ModeExact, Exact: 10}
	_, _, err := differential.CohomologyDim(5, rOut, rIn, true, true)
	require.ErrorIs(t, err, differential.ErrNegativeCohomology)
}
