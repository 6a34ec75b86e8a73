// Package cmd implements ghcli's cobra command tree: flag parsing, the
// logger/config bootstrap in PersistentPreRunE, and the exit-code
// translation in Execute.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grafhom/gh/config"
	"github.com/grafhom/gh/internal/logx"
)

var (
	verbose bool
	logger  logx.Logger
	cfg     config.Config
)

// rootCmd is ghcli's single command: the family tag is a required
// positional argument.
var rootCmd = &cobra.Command{
	Use:   "ghcli <family-tag>",
	Short: "Compute cohomology of a graph complex family",
	Long: `ghcli drives the graph-cohomology engine's build/rank/cohomology
pipeline over one family of graph complexes at a time.

It performs no algorithmic work itself: it parses flags, builds the
requested family's vector spaces and operators, and calls into the core
build/rank/cohomology packages.`,
	Example: `  ghcli o_ce --even-e --v 3,8 --l 3,7 --build
  ghcli h_etoh --even-e --odd-h --v 3,7 --l 3,6 --hairs 3,6 --square-zero
  ghcli o_ce --odd-e --v 6 --l 5 --coho --exact-rank`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return &missingArgError{msg: "ghcli: exactly one family tag argument is required"}
		}
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logx.LevelInfo
		if verbose {
			level = logx.LevelDebug
		}
		logger = logx.New(level, os.Stdout, os.Stderr)
		cfg = config.Load(config.WithNJobs(nJobs), config.WithDataDir(dataDir))
		return nil
	},
	RunE: runGhcli,
}

// Execute runs the root command, translating errors into exit codes:
// 0 success, 2 missing argument, 1 fatal invariant violation.
func Execute() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(*missingArgError); ok {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// missingArgError marks a required-flag violation, distinct from a fatal
// invariant violation, so Execute can choose exit code 2 over 1.
type missingArgError struct{ msg string }

func (e *missingArgError) Error() string { return e.msg }

var (
	evenE, oddE   bool
	evenH, oddH   bool
	vRange        string
	lRange        string
	hairsRange    string
	ignoreEx      bool
	nJobs         int
	exactRank     bool
	nPrimes       int
	noEstRank     bool
	dataDir       string
	doBuild       bool
	doBuildBasis  bool
	doBuildOp     bool
	doRank        bool
	doCoho        bool
	doSquareZero  bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose logging")

	f := rootCmd.Flags()
	f.BoolVar(&evenE, "even-e", false, "use the even-edges sign convention")
	f.BoolVar(&oddE, "odd-e", false, "use the odd-edges sign convention")
	f.BoolVar(&evenH, "even-h", false, "use the even-hairs sign convention (hairy families)")
	f.BoolVar(&oddH, "odd-h", false, "use the odd-hairs sign convention (hairy families)")
	f.StringVar(&vRange, "v", "", "vertex range min,max")
	f.StringVar(&lRange, "l", "", "loop range min,max")
	f.StringVar(&hairsRange, "hairs", "", "hair-count range min,max (hairy families)")
	f.BoolVar(&ignoreEx, "ignore-ex", false, "ignore existing store entries and rebuild")
	f.IntVar(&nJobs, "n-jobs", 1, "number of parallel workers")
	f.BoolVar(&exactRank, "exact-rank", false, "compute exact integer rank instead of modular")
	f.IntVar(&nPrimes, "n-primes", 6, "number of primes to use for modular rank")
	f.BoolVar(&noEstRank, "no-est-rank", false, "disable estimate-rank scheduling pass")
	f.StringVar(&dataDir, "data-dir", "", "override the store's data directory")
	f.BoolVar(&doBuild, "build", false, "run basis + matrix + rank + cohomology")
	f.BoolVar(&doBuildBasis, "build-b", false, "build bases only")
	f.BoolVar(&doBuildOp, "build-op", false, "build operator matrices only")
	f.BoolVar(&doRank, "rank", false, "compute ranks only")
	f.BoolVar(&doCoho, "coho", false, "compute cohomology only")
	f.BoolVar(&doSquareZero, "square-zero", false, "run the square-zero test only")
}
