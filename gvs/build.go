package gvs

import (
	"errors"
	"sort"

	"github.com/grafhom/gh/graph"
	"github.com/grafhom/gh/store"
)

// basisKey returns the store key for v's basis file.
func basisKey(v VectorSpace) string {
	return v.Key() + ".basis"
}

// BuildBasis materialises v's basis: it is a no-op for an invalid
// space, reuses an existing basis file unless ignoreExisting is set,
// otherwise enumerates GeneratingGraphs, discards candidates with an odd
// automorphism, canonicalises the rest, and writes the deduplicated,
// lexicographically sorted set. Sorting is what makes the written order
// stable across invocations even though Go map iteration is not;
// downstream matrices index into this order.
func BuildBasis(s store.Store, v VectorSpace, ignoreExisting bool) error {
	if !v.Valid() {
		return nil
	}
	key := basisKey(v)
	if !ignoreExisting && s.Exists(key) {
		return nil
	}

	part := v.Partition()
	seen := make(map[string]struct{})
	for g := range v.GeneratingGraphs {
		if graph.HasOddAutomorphism(g, part, v.PermSign) {
			continue
		}
		canon, _ := graph.CanonicalForm(g, part)
		seen[canon] = struct{}{}
	}

	list := make([]string, 0, len(seen))
	for c := range seen {
		list = append(list, c)
	}
	sort.Strings(list)

	return s.Put(key, EncodeBasis(list))
}

// GetBasis returns the canonical-string basis of v. An invalid space
// always has the empty basis, independent of the store.
func GetBasis(s store.Store, v VectorSpace) ([]string, error) {
	if !v.Valid() {
		return nil, nil
	}
	key := basisKey(v)
	data, err := s.Get(key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, gvsErrorf("GetBasis", ErrNotBuilt, "%s", v)
		}
		return nil, err
	}
	return DecodeBasis(data)
}

// Dim returns the dimension of v: 0 for an invalid space, otherwise the
// length of its basis.
func Dim(s store.Store, v VectorSpace) (int, error) {
	if !v.Valid() {
		return 0, nil
	}
	basis, err := GetBasis(s, v)
	if err != nil {
		return 0, err
	}
	return len(basis), nil
}

// G6ToIndex builds the canonical-string -> basis-position lookup used by
// operator matrix construction.
func G6ToIndex(basis []string) map[string]int {
	idx := make(map[string]int, len(basis))
	for i, s := range basis {
		idx[s] = i
	}
	return idx
}
