package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the parameters shared across the engine. Zero value is not
// meaningful; use Default or Load.
type Config struct {
	// DataDir is the root of the content-addressed store for bases,
	// matrices, and ranks.
	DataDir string
	// RefDataDir holds reference data used to cross-check builds.
	RefDataDir string
	// PlotsDir is where info/plot frontends would write output (unused by
	// the core; kept so CLI wiring has somewhere to point).
	PlotsDir string
	// LogDir is the default location for log files.
	LogDir string

	// SquareZeroEps is the tolerance used by numeric (non-exact) square-zero
	// and commutativity comparisons.
	SquareZeroEps float64
	// EstimateRankEps is the singular-value threshold below which a value is
	// treated as zero by the estimate-rank mode.
	EstimateRankEps float64

	// Primes is the fixed list of large primes used for modular rank
	// computation, in the order they are tried.
	Primes []uint64

	// MaxSortValue stands in for a dimension that cannot be read when
	// members are sorted by dimension (sumvs.Sum.Sort with ByDim), so
	// sorting never fails on incomplete data; it sorts such members last.
	MaxSortValue float64

	// NJobs is the default worker-pool width for build/rank steps.
	NJobs int
}

// Primes near 3e9, kept as a fixed list rather than generated so that
// modular rank results are reproducible across runs.
var defaultPrimes = []uint64{
	3036995833, 3036996247, 3036996491, 3036997217, 3036997631, 3036997933,
}

// Default returns a Config populated with the engine's built-in defaults,
// independent of the environment.
func Default() Config {
	primes := make([]uint64, len(defaultPrimes))
	copy(primes, defaultPrimes)
	return Config{
		DataDir:         "data",
		RefDataDir:      "data_ref",
		PlotsDir:        "plots",
		LogDir:          "log",
		SquareZeroEps:   1e-6,
		EstimateRankEps: 1e-4,
		Primes:          primes,
		MaxSortValue:    1e18,
		NJobs:           1,
	}
}

// Option customizes a Config produced by Load.
type Option func(*Config)

// WithDataDir overrides the data directory.
func WithDataDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.DataDir = dir
		}
	}
}

// WithNJobs overrides the default worker-pool width.
func WithNJobs(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.NJobs = n
		}
	}
}

// Load builds a Config starting from Default, then layers in environment
// variables prefixed GH_ (GH_DATA_DIR, GH_REF_DATA_DIR, GH_PLOTS_DIR,
// GH_LOG_DIR, GH_N_JOBS) via viper, then applies opts in order. Later
// sources win: environment over defaults, explicit Option over environment.
func Load(opts ...Option) Config {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("GH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if dir := v.GetString("DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if dir := v.GetString("REF_DATA_DIR"); dir != "" {
		cfg.RefDataDir = dir
	}
	if dir := v.GetString("PLOTS_DIR"); dir != "" {
		cfg.PlotsDir = dir
	}
	if dir := v.GetString("LOG_DIR"); dir != "" {
		cfg.LogDir = dir
	}
	if n := v.GetInt("N_JOBS"); n > 0 {
		cfg.NJobs = n
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
