// Package nw computes optimal global alignments of two character sequences
// with the Needleman–Wunsch dynamic program under a linear scoring scheme.
//
// 🚀 What is Needleman–Wunsch?
//
//	A global alignment accounts for both sequences end to end. Each column
//	of the result pairs two characters (match or mismatch) or a character
//	with a gap. The algorithm fills a score table over all prefix pairs and
//	walks a parallel move table back from the bottom-right corner.
//
// ✨ Key features:
//   - exact O(N·M) score and move matrices (flat row-major buffers)
//   - deterministic tie-break: DIAGONAL ≥ LEFT ≥ UP
//   - one optimal alignment per call, no co-optimal enumeration
//   - Aligner wrapper with input normalisation, slog logging and YAML schemes
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nwalign/nw"
//
//	a1, a2 := nw.Align("GATTACA", "GCATGCU", 1, -1, -1)
//	// a1 = "G-ATTACA"
//	// a2 = "GCA-TGCU"
//
//	al := nw.New(nw.WithGap(-2))
//	res := al.Align("gat taca", "GCATGCU")
//	fmt.Println(res.Seq1, res.Seq2, res.Score)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) for the two matrices; this is the natural scaling limit
//     of the full-matrix traceback.
//
// Concurrency:
//
//	Every call allocates its own matrices. Align, Build, Traceback and a
//	configured *Aligner are safe to use from many goroutines at once.
package nw
