// SPDX-License-Identifier: MIT

// Package matrix provides a generic, row-major dense grid used as the
// backing store for dynamic-programming tables.
//
// The matrix package provides:
//
//   - Dense[T] — a contiguous buffer of rows×cols cells with the explicit
//     offset formula i*cols + j.
//   - Safe accessors (At/Set) that return sentinel errors instead of panicking.
//   - No-copy Row views for hot loops that already know their bounds.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c).
//
// Dense is not safe for concurrent mutation. DP kernels allocate one grid
// per call and never share it.
package matrix
