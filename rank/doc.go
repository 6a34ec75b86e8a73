// Package rank implements component C8: three independently testable rank
// computation modes over the sparse integer matrices produced by package
// operator: exact (big.Int Bareiss elimination), modular (Gaussian
// elimination over a fixed set of large primes), and estimate (gonum SVD
// singular-value thresholding), plus the store-backed rank-file cache.
package rank
