package nw_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nwalign/nw"
)

// benchmarkAlign runs Align on random DNA of lengths n and m.
// It resets the timer before entering the loop.
func benchmarkAlign(b *testing.B, n, m int) {
	r := rand.New(rand.NewSource(1))
	seq1 := randomSeq(r, "ACGT", n)
	seq2 := randomSeq(r, "ACGT", m)

	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		nw.Align(seq1, seq2, 2, -1, -1)
	}
}

// BenchmarkAlign_Small benchmarks 100×100 sequences.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 100, 100) }

// BenchmarkAlign_Medium benchmarks 1000×1000 sequences.
func BenchmarkAlign_Medium(b *testing.B) { benchmarkAlign(b, 1000, 1000) }

// BenchmarkAlign_Skewed benchmarks a long sequence against a short one.
func BenchmarkAlign_Skewed(b *testing.B) { benchmarkAlign(b, 2000, 50) }

// BenchmarkBuild_Medium isolates the matrix fill.
func BenchmarkBuild_Medium(b *testing.B) {
	r := rand.New(rand.NewSource(2))
	seq1 := randomSeq(r, "ACGT", 1000)
	seq2 := randomSeq(r, "ACGT", 1000)
	s := nw.DefaultScheme()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nw.Build(seq1, seq2, s)
	}
}
