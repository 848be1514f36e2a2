// Package phase recovers the scalar encoded in an SSP's phase spectrum.
//
// Encoding multiplies every Fourier phase by the scalar; decoding observes
// wrapped phase differences between coupled frequency bins and solves
// ΔΦ ≈ ΔA·x with an outlier-robust iterative estimator.
package phase

import "sort"

// Couplings is an ordered set of frequency-bin index pairs derived from a
// reference phase spectrum, together with the reference phase difference
// for each pair. A coupling set is built once per reference vector and
// reused across decodes.
type Couplings struct {
	Pairs  [][2]int  // (j, k) bin indices into the spectrum
	Deltas []float64 // reference phase[j] - phase[k], one per pair
}

// Len returns the number of couplings.
func (c Couplings) Len() int { return len(c.Pairs) }

// BuildCouplings derives couplings from a reference phase spectrum.
//
// Bin indices are stable-sorted by phase ascending (ties keep original
// index order); for each neighbor distance d every pair
// (sidx[i], sidx[i+d]) becomes one coupling, with distance blocks
// concatenated in the order given. With no distances the default is 1 and
// 2: immediate neighbors plus two-apart pairs for redundant equations.
//
// Pairing by phase proximity keeps |ΔA| small, which keeps the true scaled
// difference ΔA·x inside (-π, π] for a wide range of x — the wrap-around
// hazard the decoder must otherwise reject.
//
// Panics if phases is empty or a distance is outside [1, len(phases)).
func BuildCouplings(phases []float64, distances ...int) Couplings {
	if len(phases) == 0 {
		panic("phase: phases must be non-empty")
	}
	if len(distances) == 0 {
		distances = []int{1, 2}
	}

	n := len(phases)
	total := 0
	for _, d := range distances {
		if d < 1 || d >= n {
			panic("phase: coupling distance out of range")
		}
		total += n - d
	}

	sidx := make([]int, n)
	for i := range sidx {
		sidx[i] = i
	}
	sort.SliceStable(sidx, func(a, b int) bool {
		return phases[sidx[a]] < phases[sidx[b]]
	})

	pairs := make([][2]int, 0, total)
	deltas := make([]float64, 0, total)
	for _, d := range distances {
		for i := 0; i+d < n; i++ {
			j, k := sidx[i], sidx[i+d]
			pairs = append(pairs, [2]int{j, k})
			deltas = append(deltas, phases[j]-phases[k])
		}
	}
	return Couplings{Pairs: pairs, Deltas: deltas}
}
