package nw

// Traceback reconstructs the alignment recorded in mx.Moves.
//
// Starting at (N, M) it follows the move tags until END:
//   - DIAGONAL: emit seq1[i-1] / seq2[j-1]; i--, j--.
//   - LEFT:     emit seq1[i-1] / GapChar;   i--.
//   - UP:       emit GapChar / seq2[j-1];   j--.
//
// Columns are appended in reverse order and both buffers are reversed once
// at the end. The result length lies between max(M,N) and M+N.
//
// Only Moves drives the walk; Scores is not consulted. A corrupted move
// matrix is not detected.
func Traceback(mx *Matrices) (aligned1, aligned2 string) {
	seq1, seq2 := mx.seq1, mx.seq2
	i, j := len(seq1), len(seq2)

	out1 := make([]byte, 0, i+j)
	out2 := make([]byte, 0, i+j)

	for {
		mv, _ := mx.Moves.At(j, i) // (j,i) stays inside the grid for a well-formed matrix
		if mv == End {
			break
		}
		switch mv {
		case Diagonal:
			out1 = append(out1, seq1[i-1])
			out2 = append(out2, seq2[j-1])
			i--
			j--
		case Left:
			out1 = append(out1, seq1[i-1])
			out2 = append(out2, GapChar)
			i--
		default: // Up
			out1 = append(out1, GapChar)
			out2 = append(out2, seq2[j-1])
			j--
		}
	}

	reverse(out1)
	reverse(out2)

	return string(out1), string(out2)
}

// reverse flips b in place.
func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
