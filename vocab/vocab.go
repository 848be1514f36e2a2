// Package vocab provides a fixed vocabulary of SSP symbols with
// nearest-neighbor cleanup: a noisy query vector maps to the most similar
// stored symbol.
package vocab

import "ssp/vsa"

// Vocabulary is a read-only, position-indexable collection of random
// unit-modulus symbols sharing one dimension.
type Vocabulary struct {
	dim     int
	symbols []vsa.Vector
}

// New creates a Vocabulary of n fresh random symbols of the given
// dimension. Symbol seeds are derived deterministically from seed, so the
// same (n, dim, seed) triple always produces the same vocabulary.
// Panics if n or dim is not positive.
func New(n, dim int, seed uint64) *Vocabulary {
	if n <= 0 {
		panic("vocab: n must be positive")
	}
	if dim <= 0 {
		panic("vocab: dim must be positive")
	}
	symbols := make([]vsa.Vector, n)
	for i := range symbols {
		// Knuth multiplicative hash mixed with the vocabulary seed so
		// neighboring indices land on unrelated symbols.
		symbols[i] = vsa.Random(dim, seed^uint64(i)*2654435761+1)
	}
	return &Vocabulary{dim: dim, symbols: symbols}
}

// Len returns the number of symbols.
func (v *Vocabulary) Len() int { return len(v.symbols) }

// Dim returns the shared symbol dimension.
func (v *Vocabulary) Dim() int { return v.dim }

// Get returns symbol i. Panics if i is out of range.
func (v *Vocabulary) Get(i int) vsa.Vector {
	if i < 0 || i >= len(v.symbols) {
		panic("vocab: index out of range")
	}
	return v.symbols[i]
}

// Cleanup maps a noisy query to the most similar stored symbol.
// It scans every symbol with no early termination and returns the best
// symbol, its index and the similarity; the first maximum in index order
// wins ties. Panics if query's dimension differs from the vocabulary's.
func (v *Vocabulary) Cleanup(query vsa.Vector) (vsa.Vector, int, float64) {
	bestIdx := 0
	bestSim := vsa.Similarity(query, v.symbols[0])
	for i := 1; i < len(v.symbols); i++ {
		if s := vsa.Similarity(query, v.symbols[i]); s > bestSim {
			bestSim = s
			bestIdx = i
		}
	}
	return v.symbols[bestIdx], bestIdx, bestSim
}
