package differential

import "github.com/grafhom/gh/rank"

// CohomologyDim computes the cohomology dimension at a space V with
// d_out : V -> · and d_in : · -> V:
//
//	dim H(V) = dim V - rank(d_out) - rank(d_in)
//
// haveRankOut/haveRankIn being false means the corresponding rank is
// unknown (basis not built, or rank not computed); the function
// then returns ok=false ("unknown") rather than guessing. A negative
// result is an invariant violation and returns ErrNegativeCohomology.
func CohomologyDim(dimV int, rankOut, rankIn rank.Result, haveRankOut, haveRankIn bool) (dim int, ok bool, err error) {
	if !haveRankOut || !haveRankIn {
		return 0, false, nil
	}
	d := dimV - rankOut.Reported() - rankIn.Reported()
	if d < 0 {
		return 0, false, differentialErrorf("CohomologyDim", ErrNegativeCohomology, "dimV=%d rankOut=%d rankIn=%d", dimV, rankOut.Reported(), rankIn.Reported())
	}
	return d, true, nil
}
