package nw

import "fmt"

// ScoreAlignment sums the per-column scores of an alignment under s:
// a column holding GapChar on one side scores Gap, equal characters score
// Match and anything else scores Mismatch.
//
// For the output of Align or Traceback the sum equals Matrices.Score().
//
// Errors:
//   - ErrLengthMismatch if len(aligned1) != len(aligned2).
//   - ErrDoubleGap (wrapped with the column index) on a gap/gap column.
func ScoreAlignment(aligned1, aligned2 string, s Scheme) (int, error) {
	if len(aligned1) != len(aligned2) {
		return 0, fmt.Errorf("ScoreAlignment(%d,%d): %w", len(aligned1), len(aligned2), ErrLengthMismatch)
	}

	total := 0
	for k := 0; k < len(aligned1); k++ {
		c1, c2 := aligned1[k], aligned2[k]
		switch {
		case c1 == GapChar && c2 == GapChar:
			return 0, fmt.Errorf("ScoreAlignment: column %d: %w", k, ErrDoubleGap)
		case c1 == GapChar || c2 == GapChar:
			total += s.Gap
		default:
			total += s.pair(c1, c2)
		}
	}

	return total, nil
}

// PercentIdentity returns 100 * identical / columns for an alignment.
// Only equal non-gap characters count as identical. An empty alignment
// yields 0.
//
// Errors:
//   - ErrLengthMismatch if len(aligned1) != len(aligned2).
func PercentIdentity(aligned1, aligned2 string) (float64, error) {
	if len(aligned1) != len(aligned2) {
		return 0, fmt.Errorf("PercentIdentity(%d,%d): %w", len(aligned1), len(aligned2), ErrLengthMismatch)
	}
	if len(aligned1) == 0 {
		return 0, nil
	}

	same := 0
	for k := 0; k < len(aligned1); k++ {
		if aligned1[k] == aligned2[k] && aligned1[k] != GapChar {
			same++
		}
	}

	return float64(same) * 100.0 / float64(len(aligned1)), nil
}
