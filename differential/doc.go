// Package differential implements component C6: an ordered collection of
// operator.Map values sharing a role, the differential specialisation
// whose Matches predicate chains target to domain, the square-zero test,
// and the cohomology dimension formula.
package differential
