package nw

import (
	"io"
	"log/slog"
)

// Align returns one optimal global alignment of seq1 and seq2 under the
// linear scheme (match, mismatch, gap).
//
// The result pair has equal length; deleting GapChar from aligned1 yields
// seq1 and deleting it from aligned2 yields seq2. No column pairs two gaps.
// Repeated calls with the same arguments return identical strings.
//
// Sequences are compared byte by byte. Scheme values are used as given.
//
// Example:
//
//	a1, a2 := Align("GATTACA", "GCATGCU", 1, -1, -1)
//	// a1 == "G-ATTACA", a2 == "GCA-TGCU"
func Align(seq1, seq2 string, match, mismatch, gap int) (aligned1, aligned2 string) {
	mx := Build(seq1, seq2, Scheme{Match: match, Mismatch: mismatch, Gap: gap})

	return Traceback(mx)
}

// Options configures an Aligner.
//
//   - Scheme    — scoring scheme (default DefaultScheme()).
//   - Normalize — strip non-letters and upper-case input before aligning (default true).
//   - Logger    — destination for debug records (default discards everything).
type Options struct {
	Scheme    Scheme
	Normalize bool
	Logger    *slog.Logger
}

// Option represents a functional option for configuring an Aligner.
type Option func(*Options)

// DefaultOptions returns the Aligner defaults:
//   - Scheme:    {Match: 2, Mismatch: -1, Gap: -1}
//   - Normalize: true
//   - Logger:    discard
func DefaultOptions() Options {
	return Options{
		Scheme:    DefaultScheme(),
		Normalize: true,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithScheme replaces the whole scoring scheme.
func WithScheme(s Scheme) Option {
	return func(o *Options) {
		o.Scheme = s
	}
}

// WithMatch sets the match reward.
func WithMatch(v int) Option {
	return func(o *Options) {
		o.Scheme.Match = v
	}
}

// WithMismatch sets the mismatch score.
func WithMismatch(v int) Option {
	return func(o *Options) {
		o.Scheme.Mismatch = v
	}
}

// WithGap sets the per-position gap score.
func WithGap(v int) Option {
	return func(o *Options) {
		o.Scheme.Gap = v
	}
}

// WithNormalize toggles input normalisation (see Normalize).
func WithNormalize(on bool) Option {
	return func(o *Options) {
		o.Normalize = on
	}
}

// WithLogger routes debug records to l.
// A nil logger is a programming error and panics with ErrNilLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
	}
}

// Aligner aligns sequence pairs with a fixed configuration.
// It is immutable after New and safe for concurrent use.
type Aligner struct {
	opts Options
}

// New builds an Aligner from DefaultOptions overridden by opts, applied in order.
func New(opts ...Option) *Aligner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Aligner{opts: o}
}

// Scheme returns the effective scoring scheme.
func (a *Aligner) Scheme() Scheme { return a.opts.Scheme }

// Align normalises both inputs (when enabled) and aligns them.
func (a *Aligner) Align(seq1, seq2 string) Alignment {
	if a.opts.Normalize {
		seq1, seq2 = Normalize(seq1), Normalize(seq2)
	}

	return a.AlignRaw(seq1, seq2)
}

// AlignRaw aligns seq1 and seq2 exactly as given, skipping normalisation.
// Use it when inputs are already clean to save one pass over each sequence.
func (a *Aligner) AlignRaw(seq1, seq2 string) Alignment {
	mx := Build(seq1, seq2, a.opts.Scheme)
	a1, a2 := Traceback(mx)
	res := Alignment{Seq1: a1, Seq2: a2, Score: mx.Score()}

	a.opts.Logger.Debug("aligned sequences",
		"seq1_len", len(seq1),
		"seq2_len", len(seq2),
		"score", res.Score,
		"aligned_len", res.Len(),
	)

	return res
}

// PercentIdentity aligns seq1 and seq2 and returns the share of identical
// columns in percent. An empty alignment yields 0.
func (a *Aligner) PercentIdentity(seq1, seq2 string) float64 {
	res := a.Align(seq1, seq2)
	pct, _ := PercentIdentity(res.Seq1, res.Seq2) // lengths are equal by construction

	return pct
}
