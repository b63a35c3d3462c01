// SPDX-License-Identifier: MIT

// Package matrix: the representation tag and the Target interface. Errors
// live in errors.go, shared guards in validators.go, one file per
// representation otherwise.

package matrix

import "fmt"

// Kind tags a target representation. It exists for diagnostics and for
// auditing dispatch sites; consumers switch on the concrete pointer type,
// not on Kind, so adding a Kind without a type (or vice versa) cannot
// silently misroute an operation.
type Kind uint8

// The four supported representations. The zero Kind is deliberately invalid.
const (
	// KindDense tags *Dense: row-major, possibly strided, dense storage.
	KindDense Kind = iota + 1

	// KindDiagonal tags *Diagonal: a diagonal matrix stored as its diagonal.
	KindDiagonal

	// KindBlockDiag tags *BlockDiag: k equal r×s blocks along the diagonal.
	KindBlockDiag

	// KindCSC tags *CSC: compressed sparse column storage.
	KindCSC
)

// String returns the canonical name of the kind for error messages and logs.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "Dense"
	case KindDiagonal:
		return "Diagonal"
	case KindBlockDiag:
		return "BlockDiag"
	case KindCSC:
		return "CSC"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Target is the interface every representation in this package implements.
// It is intentionally minimal: shape queries only, no element access — the
// representations differ too much for a useful common indexer, and the
// scaling kernels work on raw storage views anyway.
type Target interface {
	// Kind reports the representation tag (stable, never zero).
	Kind() Kind

	// Dims returns the logical matrix dimensions (rows, cols).
	Dims() (rows, cols int)
}

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. All public entry points of the package funnel their failures
// through this helper so messages stay uniform and errors.Is keeps matching.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Compile-time checks: every representation satisfies Target.
var (
	_ Target = (*Dense)(nil)
	_ Target = (*Diagonal)(nil)
	_ Target = (*BlockDiag)(nil)
	_ Target = (*CSC)(nil)
)
