// Package gvs implements component C3, the graph vector space: a
// capability interface every concrete family (ordinary, hairy, ...)
// implements, plus the family-agnostic basis-building algorithm, wire
// codec, and lookup helpers that operate purely in terms of that
// interface.
package gvs
