// SPDX-License-Identifier: MIT

// Package matrix defines the target representations a triangular factor can
// scale in place: one explicit type per shape, a shared Target interface for
// dispatch, and nothing else — no linear algebra lives here.
//
// The four representations:
//
//   - Dense — a row-major, possibly strided matrix or vector over a flat
//     []float64. NewStrided adopts a window of a larger buffer without
//     copying; RawGeneral exposes the blas64.General view.
//
//   - Diagonal — a diagonal matrix stored as its diagonal slice. Off-diagonal
//     entries are structural zeros: readable as 0, never writable.
//
//   - BlockDiag — a homogeneous block-diagonal matrix: k equal r×s blocks
//     along the diagonal, stored as one slice of k row-major blocks back to
//     back. The compact form of Z'Z-like quantities whose grouping factor
//     repeats one small block many times.
//
//   - CSC — compressed sparse column (colptr/rowind/values, strictly
//     increasing row indices per column). The constructor validates the
//     structure fully before adopting the slices.
//
// Each type implements Target (Kind + Dims); consumers dispatch on the
// concrete pointer type and use Kind for diagnostics, so there is no way to
// fall through to a wrong specialization silently.
//
// Ownership: constructors adopt caller slices (documented per constructor);
// a constructor error means nothing was adopted. Accessors named Data,
// Values, ColPtr, RowInd and Block share backing storage deliberately — the
// whole point of these types is in-place mutation by the scale package.
//
// All errors are package sentinels matched via errors.Is; indexers return
// ErrOutOfRange rather than panicking.
package matrix
