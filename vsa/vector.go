// Package vsa implements a Vector Symbolic Architecture over Spatial
// Semantic Pointers: fixed-dimension real vectors whose Fourier phase
// spectrum carries the encoded information. Binding, unbinding and
// fractional power are frequency-domain operations on unit-modulus spectra.
package vsa

import "gonum.org/v1/gonum/floats"

// Vector is an immutable real-valued SSP vector.
// Every algebra operation returns a new Vector.
type Vector struct {
	dim    int
	values []float64
}

// FromValues constructs a Vector from a raw sample slice.
// The slice is copied; the caller keeps ownership of values.
// The spectrum of an arbitrary sample slice is not unit-modulus; apply
// Unitary before binding or phase decoding if that matters.
func FromValues(values []float64) Vector {
	if len(values) == 0 {
		panic("vsa: values must be non-empty")
	}
	copied := make([]float64, len(values))
	copy(copied, values)
	return Vector{dim: len(values), values: copied}
}

func (v Vector) Dim() int { return v.dim }

// Values returns a copy of the time-domain samples.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	values := make([]float64, len(v.values))
	copy(values, v.values)
	return Vector{dim: v.dim, values: values}
}

// Scale returns v with every sample multiplied by s.
func (v Vector) Scale(s float64) Vector {
	out := v.Clone()
	floats.Scale(s, out.values)
	return out
}

// Bundle returns the element-wise sum of the given vectors, superposing
// them additively. The result is generally not unit-modulus; follow with
// Unitary before further binding or decoding.
// All vectors must have the same dimension.
func Bundle(vecs ...Vector) Vector {
	if len(vecs) == 0 {
		panic("vsa: Bundle requires at least one vector")
	}
	requireSameDim(vecs...)
	out := vecs[0].Clone()
	for _, v := range vecs[1:] {
		floats.Add(out.values, v.values)
	}
	return out
}

// Similarity returns the dot product of the two sample sequences.
// For unit-modulus vectors this acts as an unnormalized cosine similarity:
// ~1 for equal vectors, ~0 for unrelated random ones.
func Similarity(a, b Vector) float64 {
	requireSameDim(a, b)
	return floats.Dot(a.values, b.values)
}

func requireSameDim(vecs ...Vector) {
	d := vecs[0].dim
	for _, v := range vecs[1:] {
		if v.dim != d {
			panic("vsa: dimension mismatch")
		}
	}
}
