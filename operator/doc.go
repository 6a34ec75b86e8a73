// Package operator implements component C5: a graph operator is a linear
// map between two graph vector spaces, defined on basis graphs by a
// family-supplied operate_on rule, materialised into a sparse integer
// matrix and persisted through a store.Store.
package operator
