// Package ordinary implements the ordinary graph complex: simple
// connected graphs of minimum degree 3 on a fixed vertex/loop count, with
// the edge-contraction differential. It is the simplest concrete instance
// of the gvs.VectorSpace and operator.Map capability interfaces.
package ordinary
