package rank

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EncodeRank renders r in the rank-file wire format: a single integer line
// for exact or single-prime modular results, one "prime rank" pair per
// line for multi-prime modular results, and a leading "~" marker for
// estimates.
func EncodeRank(r Result) []byte {
	var buf bytes.Buffer
	switch r.Mode {
	case ModeExact:
		fmt.Fprintf(&buf, "%d\n", r.Exact)
	case ModeModular:
		if len(r.PerPrime) == 1 {
			for _, v := range r.PerPrime {
				fmt.Fprintf(&buf, "%d\n", v)
			}
			break
		}
		primes := make([]uint64, 0, len(r.PerPrime))
		for p := range r.PerPrime {
			primes = append(primes, p)
		}
		sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
		for _, p := range primes {
			fmt.Fprintf(&buf, "%d %d\n", p, r.PerPrime[p])
		}
	case ModeEstimate:
		fmt.Fprintf(&buf, "~%g\n", r.Estimate)
	}
	return buf.Bytes()
}

// DecodeRank parses the wire format EncodeRank writes. A bare single
// integer line is textually identical whether it came from an exact run
// or a single-prime modular run, so the caller's hint disambiguates:
// ModeExact reads it as the
// exact rank, anything else reads it as a one-prime modular result keyed
// by primes[0] (the caller must supply the prime it asked for).
func DecodeRank(data []byte, hint Mode, primes []uint64) (Result, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return Result{}, rankErrorf("DecodeRank", err, "scanning rank file")
	}
	if len(lines) == 0 {
		return Result{}, rankErrorf("DecodeRank", ErrFormat, "empty rank file")
	}

	if strings.HasPrefix(lines[0], "~") {
		v, err := strconv.ParseFloat(strings.TrimPrefix(lines[0], "~"), 64)
		if err != nil {
			return Result{}, rankErrorf("DecodeRank", ErrFormat, "bad estimate %q", lines[0])
		}
		return Result{Mode: ModeEstimate, Estimate: v}, nil
	}

	if len(lines) == 1 {
		fields := strings.Fields(lines[0])
		if len(fields) == 1 {
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return Result{}, rankErrorf("DecodeRank", ErrFormat, "bad rank %q", lines[0])
			}
			if hint == ModeExact {
				return Result{Mode: ModeExact, Exact: v}, nil
			}
			if len(primes) != 1 {
				return Result{}, rankErrorf("DecodeRank", ErrFormat, "single-integer modular file needs exactly one known prime")
			}
			return Result{Mode: ModeModular, PerPrime: map[uint64]int{primes[0]: v}}, nil
		}
	}

	perPrime := make(map[uint64]int, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return Result{}, rankErrorf("DecodeRank", ErrFormat, "bad prime/rank line %q", line)
		}
		p, err1 := strconv.ParseUint(fields[0], 10, 64)
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return Result{}, rankErrorf("DecodeRank", ErrFormat, "bad prime/rank line %q", line)
		}
		perPrime[p] = v
	}
	return Result{Mode: ModeModular, PerPrime: perPrime}, nil
}
