package vsa

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// Random generates a deterministic pseudorandom unit-modulus Vector for
// the given seed. The same (dim, seed) pair always produces the same
// vector; vectors from different seeds are quasi-orthogonal with high
// probability.
func Random(dim int, seed uint64) Vector {
	return RandomFrom(rand.New(rand.NewSource(int64(seed))), dim) //nolint:gosec
}

// RandomFrom generates a unit-modulus Vector by sampling independent
// phases from r and conjugate-symmetrizing them so the time-domain
// samples are purely real.
func RandomFrom(r *rand.Rand, dim int) Vector {
	if dim <= 0 {
		panic("vsa: dim must be positive")
	}
	return FromPhases(randomPhases(r, dim))
}

// randomPhases samples a conjugate-symmetric phase spectrum:
// phase[0] = 0, phase[dim-k] = -phase[k] for 1 <= k < dim/2, and
// phase[dim/2] = 0 when dim is even. Free bins are uniform on (-π, π).
func randomPhases(r *rand.Rand, dim int) []float64 {
	phases := make([]float64, dim)
	for k := 1; k < (dim+1)/2; k++ {
		phi := (2*r.Float64() - 1) * math.Pi
		phases[k] = phi
		phases[dim-k] = -phi
	}
	return phases
}

// FromPhases constructs the Vector whose Fourier spectrum is exp(i·phase):
// unit modulus at every coefficient. The samples are the real part of the
// inverse transform; a phase slice that is not conjugate-symmetric leaves
// an imaginary residue, which is discarded.
func FromPhases(phases []float64) Vector {
	if len(phases) == 0 {
		panic("vsa: phases must be non-empty")
	}
	spec := make([]complex128, len(phases))
	for i, phi := range phases {
		spec[i] = cmplx.Rect(1, phi)
	}
	return fromSpectrum(spec)
}
