package projector

import (
	"math/big"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/store"
)

// HairBlock locates a space's numbered-hair vertices within its graphs:
// Count hair vertices at indices [Offset, Offset+Count).
type HairBlock struct {
	Offset, Count int
}

// vertexPerm expands sigma, a permutation of the hair block, to a vertex
// permutation on n vertices: identity off the block, hair Offset+i mapped
// to Offset+sigma[i].
func (b HairBlock) vertexPerm(n int, sigma graph.Perm) graph.Perm {
	p := graph.Identity(n)
	for i, si := range sigma {
		p[b.Offset+i] = b.Offset + si
	}
	return p
}

// BuildProjector builds the sign-weighted projector P_rho on v's stored
// basis by summing sign(sigma) times the permutation-action matrix of
// sigma over cosetReps. Each basis graph is relabelled by sigma expanded
// to the hair block, canonicalised back into v's basis, and resolved
// through the family's PermSign, the same resolution step
// operator.BuildMatrix applies to operator images; images outside the
// basis are projected away. With cosetReps ranging over all of S_h the
// result is the integer-scaled symmetriser satisfying
// P*P = (h!/dim rho)*P.
func BuildProjector(s store.Store, v gvs.VectorSpace, hairs HairBlock, cosetReps []graph.Perm) (operator.SparseMatrix, error) {
	basis, err := gvs.GetBasis(s, v)
	if err != nil {
		return operator.SparseMatrix{}, err
	}
	index := gvs.G6ToIndex(basis)
	part := v.Partition()

	acc := make(map[[2]int]int64)
	for r, str := range basis {
		g, err := graph.ParseCanonicalString(str)
		if err != nil {
			return operator.SparseMatrix{}, err
		}
		for _, sigma := range cosetReps {
			if len(sigma) != hairs.Count {
				return operator.SparseMatrix{}, projectorErrorf("BuildProjector", ErrShapeMismatch,
					"coset representative on %d points, want %d hairs", len(sigma), hairs.Count)
			}
			gp := g.Apply(hairs.vertexPerm(g.N(), sigma))
			canon, tau := graph.CanonicalForm(gp, part)
			q, ok := index[canon]
			if !ok {
				continue
			}
			acc[[2]int{r, q}] += int64(sigma.Sign()) * int64(v.PermSign(gp, tau))
		}
	}

	entries := make([]operator.Triplet, 0, len(acc))
	for rc, val := range acc {
		if val == 0 {
			continue
		}
		entries = append(entries, operator.Triplet{Row: rc[0], Col: rc[1], Value: val})
	}
	return operator.NewSparseMatrix(len(basis), len(basis), entries), nil
}

// SymmetricGroup returns every permutation of {0,...,h-1} in
// lexicographic order, the full representative set for the total
// symmetriser.
func SymmetricGroup(h int) []graph.Perm {
	var out []graph.Perm
	elems := make([]int, h)
	for i := range elems {
		elems[i] = i
	}
	var permute func(remaining, acc []int)
	permute = func(remaining, acc []int) {
		if len(remaining) == 0 {
			out = append(out, graph.NewPerm(acc))
			return
		}
		for i, x := range remaining {
			next := make([]int, 0, len(remaining)-1)
			next = append(next, remaining[:i]...)
			next = append(next, remaining[i+1:]...)
			permute(next, append(acc, x))
		}
	}
	permute(elems, nil)
	return out
}

// YoungSubgroupIndex returns [S_h : S_partition], the number of cosets of
// the Young subgroup S_partition[0] x S_partition[1] x ... in S_h, i.e.
// the expected size of a proper coset-representative transversal passed
// to BuildProjector. Computed as a product of binomial coefficients
// choosing each part's block out of what remains, via
// gonum.org/v1/gonum/stat/combin.Binomial.
func YoungSubgroupIndex(h int, partition []int) int {
	remaining := h
	index := 1
	for _, part := range partition {
		index *= combin.Binomial(remaining, part)
		remaining -= part
	}
	return index
}

// HookLengthDim returns dim rho for the partition lambda of h via the hook
// length formula, dim rho = h! / prod(hooks). Computed with math/big
// since h! exceeds int64 once h passes 20.
func HookLengthDim(h int, partition []int) *big.Int {
	num := bigFactorial(h)
	den := big.NewInt(1)
	for _, hl := range hookLengths(partition) {
		den.Mul(den, big.NewInt(int64(hl)))
	}
	return new(big.Int).Div(num, den)
}

func bigFactorial(n int) *big.Int {
	f := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		f.Mul(f, big.NewInt(i))
	}
	return f
}

// hookLengths returns the hook length of every cell of the Young diagram
// for partition (rows given in non-increasing order).
func hookLengths(partition []int) []int {
	colCount := func(c int) int {
		cnt := 0
		for _, r := range partition {
			if r > c {
				cnt++
			}
		}
		return cnt
	}
	var hooks []int
	for i, r := range partition {
		for j := 0; j < r; j++ {
			armLen := r - j - 1
			legLen := colCount(j) - i - 1
			hooks = append(hooks, armLen+legLen+1)
		}
	}
	return hooks
}

// RestrictedOperator conjugates m's stored matrix by the domain/target
// projector matrices, producing the restriction d_rho. In the
// domain-by-target storage convention composition reads left to right
// (B after A is A.M*B.M), so applying the domain projector first and the
// target projector last gives pDomain * M(m) * pTarget. pDomain must be
// square on m's domain dimension and pTarget square on its target
// dimension, the shapes BuildProjector produces for those spaces.
func RestrictedOperator(s store.Store, m operator.Map, pDomain, pTarget operator.SparseMatrix) (Restricted, error) {
	domainDim, err := gvs.Dim(s, m.Domain())
	if err != nil {
		return Restricted{}, err
	}
	targetDim, err := gvs.Dim(s, m.Target())
	if err != nil {
		return Restricted{}, err
	}
	if pDomain.Rows != domainDim || pDomain.Cols != domainDim {
		return Restricted{}, projectorErrorf("RestrictedOperator", ErrShapeMismatch, "pDomain is %dx%d, want %dx%d", pDomain.Rows, pDomain.Cols, domainDim, domainDim)
	}
	if pTarget.Rows != targetDim || pTarget.Cols != targetDim {
		return Restricted{}, projectorErrorf("RestrictedOperator", ErrShapeMismatch, "pTarget is %dx%d, want %dx%d", pTarget.Rows, pTarget.Cols, targetDim, targetDim)
	}

	mat, err := operator.LoadMatrix(s, m)
	if err != nil {
		return Restricted{}, err
	}
	tmp, err := operator.MulBig(pDomain, mat)
	if err != nil {
		return Restricted{}, err
	}
	restricted, err := operator.MulBig(tmp, pTarget)
	if err != nil {
		return Restricted{}, err
	}
	return Restricted{M: m, Matrix: restricted}, nil
}

// Restricted is the operator.Map produced by RestrictedOperator. Its
// Matrix field already holds the restriction to the rho-isotypical image;
// the gc orchestrator reads Matrix directly (e.g. via rank.ExactRank)
// rather than rebuilding it through operator.BuildMatrix, since a
// projector mixes basis elements and so has no graph-by-graph OperateOn
// rule. OperateOn is implemented only to satisfy operator.Map and
// intentionally yields nothing.
type Restricted struct {
	M      operator.Map
	Matrix operator.SparseMatrix
}

// Domain implements operator.Map.
func (r Restricted) Domain() gvs.VectorSpace { return r.M.Domain() }

// Target implements operator.Map.
func (r Restricted) Target() gvs.VectorSpace { return r.M.Target() }

// WorkEstimate implements operator.Map.
func (r Restricted) WorkEstimate() float64 { return r.M.WorkEstimate() }

// OperateOn implements operator.Map; see the Restricted doc comment.
func (r Restricted) OperateOn(_ graph.Graph, _ func(graph.Graph, int) bool) {}
