// Package parallel implements component C9: a small generic worker pool
// used to fan row-level and job-level work out across goroutines, with a
// single-worker inline fallback that may report progress.
package parallel
