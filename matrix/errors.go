// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All accessors MUST return these sentinels and tests MUST check them
// via errors.Is. Context is attached with %w so errors.Is keeps working.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
