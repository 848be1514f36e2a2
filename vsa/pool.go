package vsa

import (
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// fftPool recycles FFT plans and []complex128 scratch buffers for a single
// dimension, so algebra operations neither rebuild plans nor allocate
// scratch per call. Plans carry internal work storage and are not safe for
// concurrent use, which is why they are pooled instead of shared.
//
// Scratch buffers are not zeroed on get: every user overwrites the full
// buffer before reading it.
type fftPool struct {
	dim     int
	plans   sync.Pool // stores *fourier.CmplxFFT
	scratch sync.Pool // stores *[]complex128
}

func newFFTPool(dim int) *fftPool {
	return &fftPool{
		dim: dim,
		plans: sync.Pool{
			New: func() any { return fourier.NewCmplxFFT(dim) },
		},
		scratch: sync.Pool{
			New: func() any {
				buf := make([]complex128, dim)
				return &buf
			},
		},
	}
}

// getScratch returns a []complex128 slice of length dim.
func (p *fftPool) getScratch() []complex128 {
	bp := p.scratch.Get().(*[]complex128)
	return *bp
}

// putScratch returns a scratch buffer to the pool.
func (p *fftPool) putScratch(buf []complex128) {
	p.scratch.Put(&buf)
}

// forward computes the unnormalized DFT of src into dst.
func (p *fftPool) forward(dst, src []complex128) {
	plan := p.plans.Get().(*fourier.CmplxFFT)
	plan.Coefficients(dst, src)
	p.plans.Put(plan)
}

// inverse computes the unnormalized inverse DFT of coeff into dst.
// The caller is responsible for the 1/dim normalization.
func (p *fftPool) inverse(dst, coeff []complex128) {
	plan := p.plans.Get().(*fourier.CmplxFFT)
	plan.Sequence(dst, coeff)
	p.plans.Put(plan)
}

// pools is a lazy map from dimension to its fftPool so that a pool
// obtained for one dimension is never reused for another.
var pools = struct {
	mu sync.RWMutex
	m  map[int]*fftPool
}{m: make(map[int]*fftPool)}

func poolFor(dim int) *fftPool {
	pools.mu.RLock()
	p, ok := pools.m[dim]
	pools.mu.RUnlock()
	if ok {
		return p
	}

	pools.mu.Lock()
	defer pools.mu.Unlock()
	if p, ok = pools.m[dim]; ok {
		return p
	}
	p = newFFTPool(dim)
	pools.m[dim] = p
	return p
}
