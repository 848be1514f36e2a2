// Package ssp encodes continuous scalars into Spatial Semantic Pointers
// and decodes them back. A Codec holds a fixed random unit-modulus
// reference symbol; Encode raises it to a fractional power, Decode
// recovers the exponent from the wrapped phase spectrum with an
// outlier-robust iterative estimator.
//
// Basic usage:
//
//	c := ssp.New(ssp.WithSeed(42))
//	enc := c.Encode(1.27)
//	x, ok, _ := c.Decode(enc) // x ≈ 1.27, ok == true
package ssp

import (
	"sync"

	"ssp/phase"
	"ssp/vsa"
)

// Stats is a point-in-time snapshot of Codec metrics.
type Stats struct {
	Encodes       uint64
	Decodes       uint64
	Converged     uint64
	ConvergeRate  float64
	AvgIterations float64
}

// Codec is a scalar encoder/decoder over one reference symbol.
// It is safe for concurrent use.
type Codec struct {
	ref vsa.Vector
	dec *phase.Decoder

	mu        sync.Mutex
	encodes   uint64
	decodes   uint64
	converged uint64
	iterSum   uint64
}

// Option configures a Codec.
type Option func(*codecOptions)

type codecOptions struct {
	dims        int
	seed        uint64
	step        float64
	epsilon     float64
	maxIter     int
	outlierBase float64
	distances   []int
}

func defaultOptions() codecOptions {
	cfg := phase.DefaultConfig()
	return codecOptions{
		dims:        128,
		step:        cfg.StepSize,
		epsilon:     cfg.Epsilon,
		maxIter:     cfg.MaxIter,
		outlierBase: cfg.OutlierBase,
	}
}

// WithDims sets the SSP dimension (default 128).
// Higher dimensions give more couplings and finer phase resolution but
// shrink the per-step contraction of the fixed-step decoder, so very large
// dimensions may also need a larger iteration budget.
func WithDims(n int) Option { return func(o *codecOptions) { o.dims = n } }

// WithSeed sets the reference-symbol seed (default 0).
// Codecs with different seeds produce incompatible encodings.
func WithSeed(s uint64) Option { return func(o *codecOptions) { o.seed = s } }

// WithStepSize sets the decoder gradient step κ (default 0.1).
func WithStepSize(k float64) Option { return func(o *codecOptions) { o.step = k } }

// WithEpsilon sets the decoder convergence threshold (default 1e-4).
func WithEpsilon(e float64) Option { return func(o *codecOptions) { o.epsilon = e } }

// WithMaxIter sets the decoder iteration budget (default 100).
func WithMaxIter(m int) Option { return func(o *codecOptions) { o.maxIter = m } }

// WithOutlierBase sets the rejection-threshold numerator (default 1).
// Iteration t rejects couplings whose residual exceeds base/t; pass +Inf
// to disable rejection entirely.
func WithOutlierBase(b float64) Option { return func(o *codecOptions) { o.outlierBase = b } }

// WithCouplingDistances sets the sorted-order neighbor distances used to
// build couplings (default 1, 2).
func WithCouplingDistances(d ...int) Option {
	return func(o *codecOptions) { o.distances = d }
}

// New creates a Codec with the given options.
// Panics if any option value is invalid (e.g. Dims <= 0).
func New(opts ...Option) *Codec {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.dims <= 0 {
		panic("ssp: dims must be positive")
	}

	ref := vsa.Random(o.dims, o.seed)
	cpl := phase.BuildCouplings(ref.Phases(), o.distances...)
	dec := phase.NewDecoder(cpl, phase.Config{
		StepSize:    o.step,
		Epsilon:     o.epsilon,
		MaxIter:     o.maxIter,
		OutlierBase: o.outlierBase,
	})
	return &Codec{ref: ref, dec: dec}
}

// Reference returns the unit-modulus reference symbol.
func (c *Codec) Reference() vsa.Vector { return c.ref }

// Encode binds x into the reference symbol by fractional power: the
// returned vector's phase spectrum is the reference's scaled by x.
func (c *Codec) Encode(x float64) vsa.Vector {
	c.mu.Lock()
	c.encodes++
	c.mu.Unlock()
	return c.ref.Power(x)
}

// Decode recovers the scalar encoded in v.
// Returns the estimate, whether the decoder converged within its budget,
// and the number of iterations used. A false converged flag is best-effort,
// not a failure; the caller applies its own acceptance criterion.
// Panics if v's dimension differs from the codec's.
func (c *Codec) Decode(v vsa.Vector) (estimate float64, converged bool, iterations int) {
	if v.Dim() != c.ref.Dim() {
		panic("ssp: dimension mismatch")
	}
	res := c.dec.Decode(v.Spectrum())

	c.mu.Lock()
	c.decodes++
	if res.Converged {
		c.converged++
	}
	c.iterSum += uint64(res.Iterations)
	c.mu.Unlock()

	return res.Estimate, res.Converged, res.Iterations
}

// Stats returns a point-in-time snapshot of Codec metrics.
func (c *Codec) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	rate := 0.0
	avgIter := 0.0
	if c.decodes > 0 {
		rate = float64(c.converged) / float64(c.decodes)
		avgIter = float64(c.iterSum) / float64(c.decodes)
	}
	return Stats{
		Encodes:       c.encodes,
		Decodes:       c.decodes,
		Converged:     c.converged,
		ConvergeRate:  rate,
		AvgIterations: avgIter,
	}
}
