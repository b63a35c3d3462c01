// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers will still use errors.Is to match.

var (
	// ErrInvalidDimension is returned when a requested dimension (rows, cols,
	// block shape, block count, stride) is non-positive or inconsistent.
	// Constructors must validate before allocation or adoption.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrOutOfRange indicates that an index (row, column or block) is outside
	// valid bounds. Public indexers (At/Set/Block) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrStructuralZero signals a write into a position the representation
	// keeps identically zero (off-diagonal of Diagonal, off-block of
	// BlockDiag). Such entries read as 0 and reject writes.
	ErrStructuralZero = errors.New("matrix: entry is structurally zero")

	// ErrStorageSize indicates that an adopted backing slice does not match
	// the shape it is supposed to carry (too short, or wrong exact length).
	ErrStorageSize = errors.New("matrix: backing storage length mismatch")

	// ErrBadSparse signals a malformed compressed-sparse-column structure:
	// colptr not starting at 0 or not non-decreasing, row indices out of
	// range or not strictly increasing within a column, or value/index
	// slices whose lengths disagree with colptr.
	ErrBadSparse = errors.New("matrix: malformed sparse structure")

	// ErrNilTarget indicates that a nil target (or nil required slice) was
	// passed where a value is mandatory.
	ErrNilTarget = errors.New("matrix: nil target")
)
