package nw

import (
	"github.com/katalvlaran/nwalign/matrix"
)

// Matrices holds the filled dynamic-programming tables for one alignment.
//
// Both grids have shape (N+1)×(M+1) where M = len(seq1) and N = len(seq2).
// Row j ranges over prefixes of seq2, column i over prefixes of seq1:
// Scores(j,i) is the best score for aligning seq1[:i] with seq2[:j] and
// Moves(j,i) records which neighbour produced it.
type Matrices struct {
	Scores *matrix.Dense[int]
	Moves  *matrix.Dense[Move]

	seq1, seq2 string
}

// Build fills the score and move matrices for seq1 and seq2 under s.
//
// Algorithm Outline:
//  1. Let m = len(seq1), n = len(seq2). Allocate (n+1)x(m+1) Scores and Moves.
//  2. Initialize:
//     Scores[0][i] = i*gap, Moves[0][i] = LEFT  for i=1..m
//     Scores[j][0] = j*gap, Moves[j][0] = UP    for j=1..n
//     Moves[0][0]  = END
//  3. For j = 1..n, for i = 1..m:
//     diag = Scores[j-1][i-1] + (match if seq1[i-1]==seq2[j-1] else mismatch)
//     left = Scores[j][i-1] + gap
//     up   = Scores[j-1][i] + gap
//     Scores[j][i] = max(diag, left, up), ties resolved DIAGONAL, then LEFT, then UP.
//
// Empty sequences are valid: the matrices degenerate to one row or column.
// Allocation failure on huge inputs is fatal (runtime panic).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func Build(seq1, seq2 string, s Scheme) *Matrices {
	m, n := len(seq1), len(seq2)
	scores := mustDense[int](n+1, m+1)
	moves := mustDense[Move](n+1, m+1)

	// Boundary row: seq1 prefix against nothing but gaps.
	row0 := mustRow(scores, 0)
	mv0 := mustRow(moves, 0)
	for i := 1; i <= m; i++ {
		row0[i] = i * s.Gap
		mv0[i] = Left
	}
	mv0[0] = End

	prev := row0
	for j := 1; j <= n; j++ {
		cur := mustRow(scores, j)
		mv := mustRow(moves, j)

		// Boundary column: seq2 prefix against gaps.
		cur[0] = j * s.Gap
		mv[0] = Up

		c2 := seq2[j-1]
		for i := 1; i <= m; i++ {
			diag := prev[i-1] + s.pair(seq1[i-1], c2)
			left := cur[i-1] + s.Gap
			up := prev[i] + s.Gap

			// Order of the checks is the tie-break policy.
			switch {
			case diag >= left && diag >= up:
				cur[i], mv[i] = diag, Diagonal
			case left >= diag && left >= up:
				cur[i], mv[i] = left, Left
			default:
				cur[i], mv[i] = up, Up
			}
		}
		prev = cur
	}

	return &Matrices{Scores: scores, Moves: moves, seq1: seq1, seq2: seq2}
}

// Score returns the optimal global alignment score, Scores[N][M].
func (mx *Matrices) Score() int {
	r, c := mx.Scores.Shape()
	v, _ := mx.Scores.At(r-1, c-1) // bounds hold by construction

	return v
}

// Shape returns (N+1, M+1).
func (mx *Matrices) Shape() (rows, cols int) { return mx.Scores.Shape() }

// mustDense allocates a grid whose shape is known to be positive.
func mustDense[T any](rows, cols int) *matrix.Dense[T] {
	d, err := matrix.NewDense[T](rows, cols)
	if err != nil {
		panic(err) // rows, cols >= 1 here; only a programming error reaches this
	}

	return d
}

// mustRow returns row i of d; i is always within bounds at the call sites.
func mustRow[T any](d *matrix.Dense[T], i int) []T {
	row, err := d.Row(i)
	if err != nil {
		panic(err)
	}

	return row
}
