// Package store implements component C2: a byte-level key/value store for
// basis, matrix, and rank files, with atomic writes (temp file + rename)
// and a NotFound error distinct from an empty-but-present value.
//
// Store is intentionally family-agnostic: it knows nothing about graph
// vector spaces, operators, or ranks. Callers (gvs, operator, rank) derive
// deterministic keys from their own parameter tuples and encode/decode the
// wire formats described in the data model; store only moves bytes.
package store
