// SPDX-License-Identifier: MIT

// Package scale error taxonomy.
//
// All failures returned by the public API wrap exactly one of the sentinel
// errors below, so callers can branch with errors.Is while still reading a
// message that names the operation, the target representation and the
// offending dimension:
//
//	err := scale.Left(f, t)
//	if errors.Is(err, scale.ErrDimensionMismatch) { … }
//
// NOTE ON NAMING & PREFIXING:
// each message carries the "scale:" prefix exactly once, on the sentinel.
// Wrapping sites prepend the operation tag ("Left"/"Right") and context via
// scaleErrorf, never a second prefix.
package scale

import "errors"

var (
	// ErrNilFactor reports a nil *factor.Triangular operand.
	ErrNilFactor = errors.New("scale: nil factor")

	// ErrNilTarget reports a nil target, either a nil Target interface or a
	// typed nil concrete pointer handed in through the interface.
	ErrNilTarget = errors.New("scale: nil target")

	// ErrUnsupportedTarget reports a Target implementation outside the four
	// representations the dispatch recognizes.
	ErrUnsupportedTarget = errors.New("scale: unsupported target type")

	// ErrDimensionMismatch reports a target whose relevant dimension is not
	// an exact multiple of the factor dimension (or, where the contract is
	// equality, not equal to it).
	ErrDimensionMismatch = errors.New("scale: dimension mismatch")

	// ErrPatternMismatch reports a CSC nonzero pattern that is not
	// block-structured the way the requested kernel needs: misaligned or
	// ragged l-runs on the left, diverging column patterns within a group
	// on the right.
	ErrPatternMismatch = errors.New("scale: sparse pattern mismatch")
)
