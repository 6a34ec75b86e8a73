// Package projector implements isotypical projectors for the symmetric
// group action permuting a space's numbered hairs: BuildProjector sums
// signed permutation-action matrices over coset representatives directly
// on a graph vector space's stored basis, and RestrictedOperator
// conjugates an operator matrix by the resulting domain/target projectors
// so the restriction's rank can be computed per component and summed by
// the gc orchestrator.
package projector
