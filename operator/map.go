package operator

import (
	"context"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/store"
)

// Map is a linear map between two graph vector spaces, defined on basis
// graphs by OperateOn: a family supplies the domain and
// target spaces plus the rule producing, for each domain basis graph, the
// (possibly empty) lazy sequence of (image graph, integer coefficient)
// pairs that graph maps to.
type Map interface {
	Domain() gvs.VectorSpace
	Target() gvs.VectorSpace
	// OperateOn streams the image of g as (g', coefficient) pairs, calling
	// yield until it returns false or the image is exhausted.
	OperateOn(g graph.Graph, yield func(gPrime graph.Graph, coeff int) bool)
	WorkEstimate() float64
}

// IsValid reports domain.Valid() && target.Valid().
func IsValid(m Map) bool {
	return m.Domain().Valid() && m.Target().Valid()
}

// matrixKey returns the store key for m's matrix file.
func matrixKey(m Map) string {
	return m.Domain().Key() + "--" + m.Target().Key() + ".matrix"
}

// BuildOptions configures BuildMatrix.
type BuildOptions struct {
	// IgnoreExisting forces a rebuild even if a matrix file already
	// exists.
	IgnoreExisting bool
	// SkipIfNoBasis turns a missing domain or target basis into a silent
	// no-op instead of an error.
	SkipIfNoBasis bool
	// Pool, if non-nil, parallelises step 5 across domain basis rows.
	// A nil Pool runs rows sequentially in the calling goroutine.
	Pool *ParallelRunner
}

// ParallelRunner is the narrow slice of parallel.Pool's API that
// BuildMatrix needs, kept here to avoid operator depending on parallel's
// generic instantiation directly; parallel.OperatorRunner adapts a
// *parallel.Pool[int, []Triplet] to this interface.
type ParallelRunner struct {
	Run func(ctx context.Context, rows []int, fn func(context.Context, int) ([]Triplet, error)) []RowResult
}

// RowResult is one row's worth of BuildMatrix output.
type RowResult struct {
	Triplets []Triplet
	Err      error
}

// BuildMatrix materialises m's sparse matrix: validity/idempotence
// short-circuit, basis loading with the SkipIfNoBasis distinction, the
// empty-matrix fast path, and per-row OperateOn + canonicalise + acc
// accumulation, writing the final lex-sorted triplet set to s under
// matrixKey(m).
func BuildMatrix(ctx context.Context, s store.Store, m Map, opts BuildOptions) error {
	if !IsValid(m) {
		return nil
	}
	key := matrixKey(m)
	if !opts.IgnoreExisting && s.Exists(key) {
		return nil
	}

	domainBasis, err := gvs.GetBasis(s, m.Domain())
	if err != nil {
		if opts.SkipIfNoBasis {
			return nil
		}
		return operatorErrorf("BuildMatrix", ErrNoBasis, "loading domain basis for %s", m.Domain())
	}
	targetBasis, err := gvs.GetBasis(s, m.Target())
	if err != nil {
		if opts.SkipIfNoBasis {
			return nil
		}
		return operatorErrorf("BuildMatrix", ErrNoBasis, "loading target basis for %s", m.Target())
	}

	domainDim, targetDim := len(domainBasis), len(targetBasis)
	if domainDim == 0 || targetDim == 0 {
		return s.Put(key, EncodeMatrix(NewSparseMatrix(domainDim, targetDim, nil)))
	}

	lookup := gvs.G6ToIndex(targetBasis)
	targetPart := m.Target().Partition()

	rowFn := func(_ context.Context, r int) ([]Triplet, error) {
		g, err := graph.ParseCanonicalString(domainBasis[r])
		if err != nil {
			return nil, err
		}
		return buildRow(m, g, r, targetPart, lookup), nil
	}

	var entries []Triplet
	if opts.Pool != nil && opts.Pool.Run != nil {
		rows := make([]int, domainDim)
		for i := range rows {
			rows[i] = i
		}
		for _, res := range opts.Pool.Run(ctx, rows, rowFn) {
			if res.Err != nil {
				return res.Err
			}
			entries = append(entries, res.Triplets...)
		}
	} else {
		for r := 0; r < domainDim; r++ {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			triplets, err := rowFn(ctx, r)
			if err != nil {
				return err
			}
			entries = append(entries, triplets...)
		}
	}

	return s.Put(key, EncodeMatrix(NewSparseMatrix(domainDim, targetDim, entries)))
}

// buildRow handles a single domain basis element g at row r: it
// accumulates coefficients over canonicalised images and emits one
// triplet per nonzero, resolved-in-target-basis entry.
func buildRow(m Map, g graph.Graph, r int, targetPart graph.Partition, lookup map[string]int) []Triplet {
	acc := make(map[string]int64)
	m.OperateOn(g, func(gPrime graph.Graph, coeff int) bool {
		canon, perm := graph.CanonicalForm(gPrime, targetPart)
		acc[canon] += int64(coeff) * int64(m.Target().PermSign(gPrime, perm))
		return true
	})

	triplets := make([]Triplet, 0, len(acc))
	for canon, v := range acc {
		if v == 0 {
			continue
		}
		q, ok := lookup[canon]
		if !ok {
			// lookup miss: the image lies outside the target basis and
			// is projected onto the valid subspace by dropping it.
			continue
		}
		triplets = append(triplets, Triplet{Row: r, Col: q, Value: v})
	}
	return triplets
}

// LoadMatrix reads m's matrix file from s, validating its header against
// the current domain/target dimensions. An invalid operator has no matrix
// file; for it LoadMatrix returns an all-zero matrix shaped by the current
// domain/target dimensions (an invalid space has dimension 0).
func LoadMatrix(s store.Store, m Map) (SparseMatrix, error) {
	if !IsValid(m) {
		rows, err := gvs.Dim(s, m.Domain())
		if err != nil {
			return SparseMatrix{}, err
		}
		cols, err := gvs.Dim(s, m.Target())
		if err != nil {
			return SparseMatrix{}, err
		}
		return NewSparseMatrix(rows, cols, nil), nil
	}
	data, err := s.Get(matrixKey(m))
	if err != nil {
		return SparseMatrix{}, err
	}
	mat, err := DecodeMatrix(data)
	if err != nil {
		return SparseMatrix{}, err
	}
	wantRows, err := gvs.Dim(s, m.Domain())
	if err != nil {
		return SparseMatrix{}, err
	}
	wantCols, err := gvs.Dim(s, m.Target())
	if err != nil {
		return SparseMatrix{}, err
	}
	if mat.Rows != wantRows || mat.Cols != wantCols {
		return SparseMatrix{}, operatorErrorf("LoadMatrix", ErrShapeMismatch,
			"header (%d,%d) disagrees with GVS dims (%d,%d)", mat.Rows, mat.Cols, wantRows, wantCols)
	}
	return mat, nil
}

// MatrixExists reports whether m's matrix file is present in s.
func MatrixExists(s store.Store, m Map) bool {
	return s.Exists(matrixKey(m))
}
