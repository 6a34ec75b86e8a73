// Package config centralizes the global parameters that the graph
// cohomology engine would otherwise keep as package-level mutable state:
// directory locations, numeric thresholds, and the list of primes used by
// the modular rank engine.
//
// A Config is built once with Load (which layers environment variables over
// built-in defaults via viper) and threaded explicitly through constructors
// in every other package. No package outside config reads the environment
// directly.
package config
