// Package sumvs implements component C4: a direct-sum vector space over an
// ordered collection of gvs.VectorSpace members, with start-index
// bookkeeping, and a DegreeSlice specialisation used to enforce the
// "all members built before any consumer reads" invariant within one
// homological degree.
package sumvs
