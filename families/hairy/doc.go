// Package hairy implements the hairy graph complex: ordinary graphs
// decorated with a fixed number of degree-1 "hair" vertices, with two
// differentials -- edge contraction (shared in spirit with the ordinary
// family) and edge-to-one-hair, which anti-commute pairwise. The
// perm-sign recipes generalise the ordinary family's two conventions to
// the coloured hair block: hair permutations multiply in the signature of
// the induced permutation on the hair block when hairs are odd.
package hairy
