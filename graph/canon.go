package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// CanonicalString renders a graph's edge list into the deterministic string
// identifier used as a basis element and as a lookup key into a target
// basis. The encoding is a compact, self-describing text form (vertex
// count, then each edge as "u-v", tadpole edges marked with a trailing
// "t") rather than DIMACS graph6, since no graph6 codec is needed anywhere
// else in this module and a textual form is trivially diffable in test
// failures; any total, injective encoding of the edge list serves equally
// well as an identifier.
func (g Graph) CanonicalString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", g.n)
	for i, e := range g.edges {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d-%d", e.U, e.V)
		if e.EpsilonTadpole {
			b.WriteByte('t')
		}
	}
	return b.String()
}

// ParseCanonicalString parses the format written by CanonicalString back
// into a Graph. It is the inverse needed to turn a domain basis (stored as
// canonical strings) back into labelled graphs that a family's OperateOn
// can run on.
func ParseCanonicalString(s string) (Graph, error) {
	head, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Graph{}, graphErrorf("ParseCanonicalString", ErrFormat, "missing ':' in %q", s)
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return Graph{}, graphErrorf("ParseCanonicalString", ErrFormat, "bad vertex count in %q", s)
	}

	var edges []Edge
	if rest != "" {
		for _, part := range strings.Split(rest, ",") {
			tadpole := false
			if strings.HasSuffix(part, "t") {
				tadpole = true
				part = part[:len(part)-1]
			}
			u, v, ok := strings.Cut(part, "-")
			if !ok {
				return Graph{}, graphErrorf("ParseCanonicalString", ErrFormat, "bad edge %q in %q", part, s)
			}
			ui, err1 := strconv.Atoi(u)
			vi, err2 := strconv.Atoi(v)
			if err1 != nil || err2 != nil {
				return Graph{}, graphErrorf("ParseCanonicalString", ErrFormat, "bad edge %q in %q", part, s)
			}
			edges = append(edges, Edge{U: ui, V: vi, EpsilonTadpole: tadpole})
		}
	}
	return New(n, edges, true)
}

// CanonicalForm returns the lexicographically smallest CanonicalString
// reachable from g by any permutation respecting part, together with one
// permutation achieving it. The search is brute force: every
// partition-respecting permutation is tried and scored by the string it
// produces. This is exponential in the largest
// partition block, which is acceptable at the vertex counts the reference
// families in this module use (single digits).
func CanonicalForm(g Graph, part Partition) (string, Perm) {
	best := ""
	var bestPerm Perm
	first := true
	partitionPerms(g.n, part, func(p Perm) bool {
		candidate := g.Apply(p).CanonicalString()
		if first || candidate < best {
			best = candidate
			bestPerm = append(Perm{}, p...)
			first = false
		}
		return true
	})
	return best, bestPerm
}

// AutomorphismGenerators returns every partition-respecting permutation
// that maps g onto itself. The brute-force search already visits every
// admissible permutation while computing CanonicalForm, so automorphisms
// fall out of the same enumeration; this function re-runs it directly
// against g's own string so it can be called independently of
// CanonicalForm.
func AutomorphismGenerators(g Graph, part Partition) []Perm {
	target := g.CanonicalString()
	var gens []Perm
	partitionPerms(g.n, part, func(p Perm) bool {
		if g.Apply(p).CanonicalString() == target {
			gens = append(gens, append(Perm{}, p...))
		}
		return true
	})
	return gens
}

// HasOddAutomorphism reports whether any generator returned by
// AutomorphismGenerators has permSign(g, generator) == -1, using the
// family-supplied sign function. A graph admitting an odd automorphism
// represents zero and must be excluded from the basis.
func HasOddAutomorphism(g Graph, part Partition, permSign func(Graph, Perm) int) bool {
	for _, gen := range AutomorphismGenerators(g, part) {
		if permSign(g, gen) == -1 {
			return true
		}
	}
	return false
}
