package vocab_test

import (
	"math"
	"testing"

	"ssp/vocab"
	"ssp/vsa"
)

const (
	count = 16
	dim   = 128
)

// ── Construction ──────────────────────────────────────────────────────────────

func TestNew_Deterministic(t *testing.T) {
	a := vocab.New(count, dim, 42)
	b := vocab.New(count, dim, 42)
	for i := 0; i < count; i++ {
		if s := vsa.Similarity(a.Get(i), b.Get(i)); math.Abs(s-1) > 1e-9 {
			t.Fatalf("symbol %d differs across same-seed vocabularies (sim=%g)", i, s)
		}
	}
}

func TestNew_SymbolsDistinct(t *testing.T) {
	v := vocab.New(count, dim, 1)
	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			if s := vsa.Similarity(v.Get(i), v.Get(j)); math.Abs(s) > 0.5 {
				t.Fatalf("symbols %d and %d too similar: %g", i, j, s)
			}
		}
	}
}

func TestNew_Invalid_Panics(t *testing.T) {
	assertPanics(t, "zero count", func() { vocab.New(0, dim, 1) })
	assertPanics(t, "zero dim", func() { vocab.New(count, 0, 1) })
}

func TestLenDim(t *testing.T) {
	v := vocab.New(count, dim, 1)
	if v.Len() != count {
		t.Fatalf("Len() = %d, want %d", v.Len(), count)
	}
	if v.Dim() != dim {
		t.Fatalf("Dim() = %d, want %d", v.Dim(), dim)
	}
}

func TestGet_OutOfRange_Panics(t *testing.T) {
	v := vocab.New(count, dim, 1)
	assertPanics(t, "negative index", func() { v.Get(-1) })
	assertPanics(t, "index == len", func() { v.Get(count) })
}

// ── Cleanup ───────────────────────────────────────────────────────────────────

func TestCleanup_ExactMember(t *testing.T) {
	v := vocab.New(count, dim, 7)
	for k := 0; k < count; k++ {
		_, idx, sim := v.Cleanup(v.Get(k))
		if idx != k {
			t.Fatalf("query = member %d, cleanup returned %d", k, idx)
		}
		if math.Abs(sim-1) > 1e-9 {
			t.Fatalf("self-similarity = %g, want 1", sim)
		}
	}
}

func TestCleanup_NoisyMember(t *testing.T) {
	v := vocab.New(count, dim, 7)
	noise := vsa.Random(dim, 9999).Scale(0.1)
	for k := 0; k < count; k++ {
		query := vsa.Bundle(v.Get(k), noise)
		best, idx, sim := v.Cleanup(query)
		if idx != k {
			t.Fatalf("noisy query for member %d cleaned up to %d (sim=%g)", k, idx, sim)
		}
		if s := vsa.Similarity(best, v.Get(k)); math.Abs(s-1) > 1e-9 {
			t.Fatalf("returned vector is not member %d", k)
		}
	}
}

func TestCleanup_ReturnsArgmaxSimilarity(t *testing.T) {
	v := vocab.New(count, dim, 3)
	query := vsa.Random(dim, 555)
	_, idx, sim := v.Cleanup(query)
	for i := 0; i < count; i++ {
		if s := vsa.Similarity(query, v.Get(i)); s > sim {
			t.Fatalf("member %d has similarity %g > returned %g (idx %d)", i, s, sim, idx)
		}
	}
}

func TestCleanup_DimensionMismatch_Panics(t *testing.T) {
	v := vocab.New(count, dim, 1)
	assertPanics(t, "cleanup dim mismatch", func() {
		v.Cleanup(vsa.Random(dim*2, 1))
	})
}

// ── Benchmarks ────────────────────────────────────────────────────────────────

func BenchmarkCleanup(b *testing.B) {
	v := vocab.New(64, dim, 1)
	query := vsa.Bundle(v.Get(17), vsa.Random(dim, 9).Scale(0.1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Cleanup(query)
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func assertPanics(t *testing.T, label string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("%s: expected panic, got none", label)
		}
	}()
	fn()
}
