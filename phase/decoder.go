package phase

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Config holds parameters for a Decoder.
type Config struct {
	StepSize    float64 // gradient step κ (default 0.1)
	Epsilon     float64 // convergence threshold on |increment| (default 1e-4)
	MaxIter     int     // iteration budget (default 100)
	OutlierBase float64 // rejection numerator; iteration t rejects |r| > OutlierBase/t (default 1, +Inf disables rejection)
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() Config {
	return Config{StepSize: 0.1, Epsilon: 1e-4, MaxIter: 100, OutlierBase: 1}
}

// Result reports the outcome of one decode.
// A Converged=false result is best-effort, not an error: the caller decides
// whether the final residual is acceptable.
type Result struct {
	Estimate   float64 // final scalar estimate
	Converged  bool    // increment fell below Epsilon within the budget
	Iterations int     // iterations actually run
}

// Decoder estimates the scalar exponent that produced an observed
// spectrum, given couplings built from the unencoded reference.
// It is safe for concurrent use.
type Decoder struct {
	cfg    Config
	cpl    Couplings
	maxBin int
}

// NewDecoder creates a Decoder over the given coupling set.
// The couplings are copied. Panics if the coupling set is empty or
// malformed, or any Config field is not positive.
func NewDecoder(cpl Couplings, cfg Config) *Decoder {
	switch {
	case cpl.Len() == 0:
		panic("phase: couplings must be non-empty")
	case len(cpl.Deltas) != len(cpl.Pairs):
		panic("phase: couplings pairs/deltas length mismatch")
	case cfg.StepSize <= 0:
		panic("phase: Config.StepSize must be positive")
	case cfg.Epsilon <= 0:
		panic("phase: Config.Epsilon must be positive")
	case cfg.MaxIter <= 0:
		panic("phase: Config.MaxIter must be positive")
	case cfg.OutlierBase <= 0:
		panic("phase: Config.OutlierBase must be positive")
	}

	pairs := make([][2]int, len(cpl.Pairs))
	copy(pairs, cpl.Pairs)
	deltas := make([]float64, len(cpl.Deltas))
	copy(deltas, cpl.Deltas)

	maxBin := 0
	for _, p := range pairs {
		if p[0] < 0 || p[1] < 0 {
			panic("phase: negative coupling bin index")
		}
		if p[0] > maxBin {
			maxBin = p[0]
		}
		if p[1] > maxBin {
			maxBin = p[1]
		}
	}
	return &Decoder{cfg: cfg, cpl: Couplings{Pairs: pairs, Deltas: deltas}, maxBin: maxBin}
}

// Decode estimates the scalar x such that the observed spectrum is the
// reference raised to the power x.
//
// The observed phase difference of each coupling is the principal-branch
// angle of V[j]·conj(V[k]), wrapped to (-π, π]; couplings whose true
// scaled difference exceeds π in magnitude are aliased. Each iteration t
// zeroes residuals with |r| > OutlierBase/t before the gradient step, so
// rejection is lenient while the estimate is far off and increasingly
// strict as it converges, pruning exactly the couplings whose residual
// fails to shrink with the rest.
//
// Exhausting the budget returns the last estimate with Converged=false.
// Panics if spectrum does not cover the coupling bin range.
func (d *Decoder) Decode(spectrum []complex128) Result {
	if len(spectrum) <= d.maxBin {
		panic("phase: spectrum shorter than coupling bin range")
	}

	// Observed wrapped differences do not depend on the running estimate;
	// measure them once.
	observed := make([]float64, d.cpl.Len())
	for i, p := range d.cpl.Pairs {
		observed[i] = cmplx.Phase(spectrum[p[0]] * cmplx.Conj(spectrum[p[1]]))
	}

	residual := make([]float64, d.cpl.Len())
	x := 0.0
	for t := 1; t <= d.cfg.MaxIter; t++ {
		limit := d.cfg.OutlierBase / float64(t)
		for i, delta := range d.cpl.Deltas {
			r := observed[i] - delta*x
			if math.Abs(r) > limit {
				r = 0 // unreliable this iteration
			}
			residual[i] = r
		}

		inc := d.cfg.StepSize * floats.Dot(d.cpl.Deltas, residual)
		x += inc
		if math.Abs(inc) < d.cfg.Epsilon {
			return Result{Estimate: x, Converged: true, Iterations: t}
		}
	}
	return Result{Estimate: x, Converged: false, Iterations: d.cfg.MaxIter}
}
