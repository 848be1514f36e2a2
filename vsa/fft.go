package vsa

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// ErrDegenerate reports a frequency-domain division by a (near) zero
// coefficient during Unbind.
var ErrDegenerate = errors.New("vsa: near-zero spectrum coefficient")

// degenerateEps is the divisor modulus below which Unbind refuses to
// divide rather than produce huge or non-finite samples.
const degenerateEps = 1e-12

// Spectrum returns the discrete Fourier transform of v's samples.
// The returned slice is freshly allocated and owned by the caller.
func (v Vector) Spectrum() []complex128 {
	p := poolFor(v.dim)
	src := p.getScratch()
	defer p.putScratch(src)
	for i, x := range v.values {
		src[i] = complex(x, 0)
	}
	out := make([]complex128, v.dim)
	p.forward(out, src)
	return out
}

// Phases returns the principal-branch angle, in (-π, π], of every Fourier
// coefficient. The phase spectrum is recomputed from the samples on each
// call, never cached.
func (v Vector) Phases() []float64 {
	spec := v.Spectrum()
	out := make([]float64, len(spec))
	for i, c := range spec {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// fromSpectrum inverse-transforms coeff and keeps the real part.
// The transform pair is unnormalized, so the inverse divides by dim.
// coeff is consumed as scratch and must not be reused by the caller.
func fromSpectrum(coeff []complex128) Vector {
	dim := len(coeff)
	p := poolFor(dim)
	dst := p.getScratch()
	defer p.putScratch(dst)
	p.inverse(dst, coeff)

	values := make([]float64, dim)
	inv := 1 / float64(dim)
	for i, c := range dst {
		values[i] = real(c) * inv
	}
	return Vector{dim: dim, values: values}
}

// Unitary projects v onto the unit-modulus manifold: every Fourier
// coefficient keeps its phase and has its modulus forced to 1.
// A zero-modulus coefficient has no phase and maps to 1.
// Idempotent up to floating-point error.
func (v Vector) Unitary() Vector {
	spec := v.Spectrum()
	for i, c := range spec {
		if m := cmplx.Abs(c); m > 0 {
			spec[i] = c / complex(m, 0)
		} else {
			spec[i] = 1
		}
	}
	return fromSpectrum(spec)
}

// Power raises every Fourier coefficient to the real power p: the phase of
// each coefficient is multiplied by p and the modulus raised to p.
// For a unit-modulus vector this is fractional binding — Power(x) encodes
// the scalar x into the phase spectrum, bin n moving to phase[n]·x mod 2π.
func (v Vector) Power(p float64) Vector {
	spec := v.Spectrum()
	for i, c := range spec {
		spec[i] = cmplx.Pow(c, complex(p, 0))
	}
	return fromSpectrum(spec)
}

// Bind composes a and b by circular convolution: the spectra are
// multiplied coefficient-wise. For unit-modulus operands the result is
// unit-modulus and Unbind recovers either operand.
func Bind(a, b Vector) Vector {
	requireSameDim(a, b)
	sa := a.Spectrum()
	sb := b.Spectrum()
	for i := range sa {
		sa[i] *= sb[i]
	}
	return fromSpectrum(sa)
}

// Unbind is the approximate inverse of Bind: a's spectrum is divided
// coefficient-wise by b's. b should be unitary or near-unitary; a divisor
// coefficient with modulus below 1e-12 returns an error wrapping
// ErrDegenerate instead of propagating non-finite samples.
func Unbind(a, b Vector) (Vector, error) {
	requireSameDim(a, b)
	sa := a.Spectrum()
	sb := b.Spectrum()
	for i := range sa {
		if cmplx.Abs(sb[i]) < degenerateEps {
			return Vector{}, fmt.Errorf("vsa: unbind coefficient %d: %w", i, ErrDegenerate)
		}
		sa[i] /= sb[i]
	}
	return fromSpectrum(sa), nil
}
