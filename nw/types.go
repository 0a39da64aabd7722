package nw

import (
	"errors"
	"strconv"
)

// GapChar is the placeholder written into an aligned sequence where the
// other sequence contributes a character and this one contributes nothing.
const GapChar byte = '-'

// Sentinel errors returned by the scoring helpers and option constructors.
var (
	// ErrLengthMismatch indicates that two aligned sequences differ in length.
	ErrLengthMismatch = errors.New("nw: aligned sequences differ in length")

	// ErrDoubleGap indicates a column where both aligned sequences hold GapChar.
	ErrDoubleGap = errors.New("nw: gap aligned against gap")

	// ErrNilLogger indicates that WithLogger was given a nil *slog.Logger.
	ErrNilLogger = errors.New("nw: logger is nil")
)

// Move tags one cell of the move matrix with the step that produced its score.
//
//   - End      — only at the origin (0,0); traceback stops here.
//   - Diagonal — consume one character from each sequence.
//   - Left     — consume one character from seq1, gap in seq2.
//   - Up       — consume one character from seq2, gap in seq1.
type Move uint8

const (
	// End marks the origin cell.
	End Move = iota

	// Diagonal pairs seq1[i-1] with seq2[j-1].
	Diagonal

	// Left pairs seq1[i-1] with a gap.
	Left

	// Up pairs a gap with seq2[j-1].
	Up
)

// String returns the upper-case tag name, or Move(n) for unknown values.
func (m Move) String() string {
	switch m {
	case End:
		return "END"
	case Diagonal:
		return "DIAGONAL"
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	default:
		return "Move(" + strconv.Itoa(int(m)) + ")"
	}
}

// Scheme is a linear scoring scheme.
//
// Fields:
//   - Match    — added when the paired characters are equal.
//   - Mismatch — added when they differ.
//   - Gap      — added for every gap in either sequence (no open/extend split).
//
// Values are not validated: a positive Gap or a Match below Mismatch is
// legal and simply yields alignments that look odd.
type Scheme struct {
	Match    int `json:"match" yaml:"match"`
	Mismatch int `json:"mismatch" yaml:"mismatch"`
	Gap      int `json:"gap" yaml:"gap"`
}

// Default scheme values.
const (
	DefaultMatch    = 2
	DefaultMismatch = -1
	DefaultGap      = -1
)

// DefaultScheme returns {Match: 2, Mismatch: -1, Gap: -1}.
func DefaultScheme() Scheme {
	return Scheme{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// pair returns the diagonal contribution for characters a and b.
func (s Scheme) pair(a, b byte) int {
	if a == b {
		return s.Match
	}

	return s.Mismatch
}

// Alignment is the result of an Aligner call.
//   - Seq1, Seq2 — equal-length gapped sequences.
//   - Score      — optimal score, i.e. the bottom-right cell of the score matrix.
type Alignment struct {
	Seq1  string
	Seq2  string
	Score int
}

// Len returns the number of alignment columns.
func (a Alignment) Len() int { return len(a.Seq1) }
