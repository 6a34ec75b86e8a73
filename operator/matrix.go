package operator

import "sort"

// Triplet is one nonzero entry of a sparse integer matrix, 0-based.
type Triplet struct {
	Row, Col int
	Value    int64
}

// SparseMatrix is a domain-by-target integer matrix in triplet form,
// lex-sorted by (Row, Col).
type SparseMatrix struct {
	Rows, Cols int
	Entries    []Triplet

	transposed bool
}

// NewSparseMatrix returns a matrix of the given shape with entries sorted
// lexicographically by (row, col). entries is not retained.
func NewSparseMatrix(rows, cols int, entries []Triplet) SparseMatrix {
	cp := make([]Triplet, len(entries))
	copy(cp, entries)
	sortTriplets(cp)
	return SparseMatrix{Rows: rows, Cols: cols, Entries: cp}
}

func sortTriplets(t []Triplet) {
	sort.Slice(t, func(i, j int) bool {
		if t[i].Row != t[j].Row {
			return t[i].Row < t[j].Row
		}
		return t[i].Col < t[j].Col
	})
}

// Transpose returns a view of m with rows and columns swapped. Entries
// are stored once and the transpose is a cheap view: nothing is copied or
// re-sorted, only a flag is flipped and the reported shape swapped.
// Iterate accounts for the flag.
func (m SparseMatrix) Transpose() SparseMatrix {
	m.Rows, m.Cols = m.Cols, m.Rows
	m.transposed = !m.transposed
	return m
}

// Iterate calls yield once per stored entry, translating (row, col) to
// account for any pending Transpose. Entries are visited in storage order,
// which is lex-(row,col) order of the *untransposed* matrix; callers that
// need lex order of the transposed view must re-sort.
func (m SparseMatrix) Iterate(yield func(row, col int, v int64) bool) {
	for _, e := range m.Entries {
		r, c := e.Row, e.Col
		if m.transposed {
			r, c = c, r
		}
		if !yield(r, c, e.Value) {
			return
		}
	}
}

// IsZero reports whether the matrix has no nonzero entries.
func (m SparseMatrix) IsZero() bool {
	return len(m.Entries) == 0
}

// MulBig multiplies two sparse matrices with exact integer arithmetic
// using the big.Int accumulator defined in bigmul.go, returning their
// product a*b. Required: a.Cols == b.Rows.
func MulBig(a, b SparseMatrix) (SparseMatrix, error) {
	return mulExact(a, b)
}
