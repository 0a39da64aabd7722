// Package nwalign is a small, dependency-light toolkit for optimal global
// alignment of two character sequences with the Needleman–Wunsch algorithm.
//
// 🚀 What is in nwalign?
//
//	• nw/     — matrix builder, traceback, Align entry point, Aligner wrapper
//	            (normalisation, slog logging), scoring and percent identity,
//	            YAML scoring schemes
//	• matrix/ — generic row-major Dense[T] grid backing the DP tables
//
// ✨ Guarantees:
//
//   - One optimal alignment per call, chosen by a fixed tie-break
//     (DIAGONAL, then LEFT, then UP).
//   - Deterministic: identical inputs give byte-identical output.
//   - No shared state: every call owns its matrices, so concurrent use is safe.
//
// Quick ASCII example:
//
//	G-ATTACA
//	| || | |
//	GCA-TGCU
//
//	go get github.com/katalvlaran/nwalign/nw
package nwalign
