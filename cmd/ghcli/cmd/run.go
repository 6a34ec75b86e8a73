package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grafhom/gh/differential"
	"github.com/grafhom/gh/families/hairy"
	"github.com/grafhom/gh/families/ordinary"
	"github.com/grafhom/gh/gc"
	"github.com/grafhom/gh/gvs"
	"github.com/grafhom/gh/operator"
	"github.com/grafhom/gh/parallel"
	"github.com/grafhom/gh/rank"
	"github.com/grafhom/gh/store"
	"github.com/grafhom/gh/sumvs"
)

// parseRange parses a "min,max" flag value into the inclusive integer
// range it names; a bare integer names the one-element range.
func parseRange(s, flagName string) ([]int, error) {
	if s == "" {
		return nil, &missingArgError{msg: fmt.Sprintf("missing required flag -%s", flagName)}
	}
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		parts = []string{parts[0], parts[0]}
	}
	if len(parts) != 2 {
		return nil, &missingArgError{msg: fmt.Sprintf("-%s wants \"min,max\", got %q", flagName, s)}
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || lo > hi {
		return nil, &missingArgError{msg: fmt.Sprintf("-%s has invalid range %q", flagName, s)}
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out, nil
}

// buildComplex assembles the gc.Complex named by tag, restricted to the
// two family instances this module ships (ordinary, hairy).
func buildComplex(tag string) (*gc.Complex, error) {
	vs, err := parseRange(vRange, "v")
	if err != nil {
		return nil, err
	}
	ls, err := parseRange(lRange, "l")
	if err != nil {
		return nil, err
	}
	if evenE == oddE {
		return nil, &missingArgError{msg: "exactly one of -even-e / -odd-e is required"}
	}
	evenEdges := evenE

	switch tag {
	case "o_ce":
		var members []gvs.VectorSpace
		members = append(members, ordinary.VectorSpaces(vs, ls, evenEdges)...)
		ops := ordinary.ContractOperators(vs, ls, evenEdges)
		d := differential.NewDifferential(ops)
		return gc.New(sumvs.New(members...), d), nil

	case "h_ce", "h_etoh":
		if evenH == oddH {
			return nil, &missingArgError{msg: "exactly one of -even-h / -odd-h is required for hairy families"}
		}
		evenHairs := evenH
		hs, err := parseRange(hairsRange, "hairs")
		if err != nil {
			return nil, err
		}

		var members []gvs.VectorSpace
		var contractOps, et1hOps []operator.Map
		for _, h := range hs {
			members = append(members, hairy.VectorSpaces(vs, ls, h, evenEdges, evenHairs)...)
			contractOps = append(contractOps, hairy.ContractOperators(vs, ls, h, evenEdges, evenHairs)...)
			if tag == "h_etoh" {
				et1hOps = append(et1hOps, hairy.EdgeToOneHairOperators(vs, ls, h, evenEdges, evenHairs)...)
			}
		}

		diffs := []differential.Differential{differential.NewDifferential(contractOps)}
		if tag == "h_etoh" {
			diffs = append(diffs, differential.NewDifferential(et1hOps))
		}
		return gc.New(sumvs.New(members...), diffs...), nil

	default:
		return nil, &missingArgError{msg: fmt.Sprintf("unknown or unsupported family tag %q", tag)}
	}
}

func runGhcli(_ *cobra.Command, args []string) error {
	tag := args[0]

	complex, err := buildComplex(tag)
	if err != nil {
		return err
	}
	if !doBuild && !doBuildBasis && !doBuildOp && !doRank && !doCoho && !doSquareZero {
		return &missingArgError{msg: "no step flag given (one of -build, -build-b, -build-op, -rank, -coho, -square-zero)"}
	}

	s := store.NewFileStore(cfg.DataDir)
	ctx := context.Background()

	buildOpts := operator.BuildOptions{IgnoreExisting: ignoreEx, SkipIfNoBasis: true}
	if cfg.NJobs > 1 {
		pool := parallel.New[int, []operator.Triplet](parallel.PoolConfig{MaxWorkers: cfg.NJobs})
		buildOpts.Pool = parallel.OperatorRunner(pool)
	}

	runAll := doBuild
	if runAll || doBuildBasis {
		if err := complex.BuildBasis(s, ignoreEx); err != nil {
			return err
		}
		logger.Infof("basis build complete")
	}
	if runAll || doBuildOp {
		if err := complex.BuildMatrices(ctx, s, buildOpts); err != nil {
			return err
		}
		logger.Infof("matrix build complete")
	}

	engine := rank.Engine{Primes: cfg.Primes, EstimateEps: cfg.EstimateRankEps}
	if runAll || doRank {
		if exactRank {
			if err := complex.ComputeRanksExact(s, engine, ignoreEx); err != nil {
				return err
			}
		} else if err := complex.ComputeRanksModular(s, engine, nPrimes, ignoreEx); err != nil {
			return err
		}
		if !noEstRank {
			if err := complex.ComputeRanksEstimate(s, engine, ignoreEx); err != nil {
				return err
			}
		}
		logger.Infof("rank computation complete")
	}

	if doSquareZero {
		outcomes, err := complex.SquareZeroTest(s, cfg.SquareZeroEps)
		if err != nil {
			return err
		}
		fail := 0
		for i, o := range outcomes {
			logger.Infof("differential %d: trivial=%d success=%d inconclusive=%d failure=%d",
				i, o.TrivialCount, o.SuccessCount, o.InconclusiveCount, o.FailureCount)
			fail += o.FailureCount
		}
		if fail > 0 {
			return fmt.Errorf("square-zero test failed: %d failing pairs", fail)
		}
	}

	if runAll || doCoho {
		mode := rank.ModeModular
		if exactRank {
			mode = rank.ModeExact
		}
		for i := range complex.Differentials {
			entries, err := complex.Cohomology(s, complex.Differentials[i], mode)
			if err != nil {
				return err
			}
			for _, e := range entries {
				if e.Known {
					logger.Infof("%s: dim H = %d", e.Key, e.Dim)
				} else {
					logger.Infof("%s: dim H = unknown", e.Key)
				}
			}
		}
		infoKey := "info/" + tag + ".txt"
		if err := complex.WriteInfo(s, infoKey, mode); err != nil {
			return err
		}
		logger.Infof("info file written to %s", infoKey)
	}

	return nil
}
