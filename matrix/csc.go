// SPDX-License-Identifier: MIT

// Package matrix: the CSC (compressed sparse column) representation.

package matrix

import (
	"fmt"
	"sort"
)

// Operation tags used to label wrapped sentinel errors from this file.
const (
	opNewCSC = "NewCSC"
	opCSCAt  = "CSC.At"
)

// CSC is a compressed-sparse-column matrix: column j's nonzeros occupy
// positions colptr[j] up to colptr[j+1] of rowind/values, with row indices
// strictly increasing within each column. Zero-based throughout.
//
// The constructor validates the whole structure before adopting the slices;
// after that, mutating values through Values() is the intended way to update
// the matrix in place (the pattern — colptr and rowind — is fixed).
type CSC struct {
	rows, cols int
	colptr     []int     // len cols+1, colptr[0] == 0, non-decreasing
	rowind     []int     // len nnz, strictly increasing within a column
	values     []float64 // len nnz, parallel to rowind
}

// NewCSC builds a rows×cols sparse target over the given structure.
// Implementation:
//   - Stage 1: validate rows/cols ≥ 1.
//   - Stage 2: full structural walk (validateCSC): colptr shape and
//     monotonicity, slice length agreement, per-column row-index order and
//     bounds.
//   - Stage 3: adopt all three slices (no copy).
//
// Behavior highlights:
//   - A constructor error means nothing was adopted.
//   - Every column may be empty; a fully empty matrix (nnz == 0) is valid.
//
// Inputs:
//   - rows, cols: logical shape.
//   - colptr: len cols+1 column pointers, colptr[0] == 0.
//   - rowind: row index per stored value, strictly increasing per column.
//   - values: stored values, parallel to rowind.
//
// Errors:
//   - ErrInvalidDimension on non-positive shape.
//   - ErrBadSparse (wrapped with the failing detail) on any structural flaw.
//
// Complexity:
//   - Time O(cols + nnz) validation, Space O(1).
//
// AI-Hints:
//   - Build the pattern once per model setup; per-iteration updates go
//     through Values() so the validated pattern is never re-checked.
func NewCSC(rows, cols int, colptr, rowind []int, values []float64) (*CSC, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewCSC, err)
	}
	if colptr == nil {
		return nil, matrixErrorf(opNewCSC, fmt.Errorf("nil colptr: %w", ErrNilTarget))
	}
	if err := validateCSC(rows, cols, colptr, rowind, len(values)); err != nil {
		return nil, matrixErrorf(opNewCSC, err)
	}

	return &CSC{rows: rows, cols: cols, colptr: colptr, rowind: rowind, values: values}, nil
}

// Kind reports KindCSC. Complexity: O(1).
func (c *CSC) Kind() Kind { return KindCSC }

// Dims returns the logical shape (rows, cols). Complexity: O(1).
func (c *CSC) Dims() (rows, cols int) { return c.rows, c.cols }

// NNZ returns the stored-value count colptr[cols]. Complexity: O(1).
func (c *CSC) NNZ() int { return c.colptr[c.cols] }

// ColPtr returns the column pointer slice (SHARED; treat as read-only —
// mutating the pattern invalidates the constructor's guarantees).
// Complexity: O(1).
func (c *CSC) ColPtr() []int { return c.colptr }

// RowInd returns the row index slice (SHARED; treat as read-only).
// Complexity: O(1).
func (c *CSC) RowInd() []int { return c.rowind }

// Values returns the stored values (SHARED, not a copy) — the in-place
// mutation surface of a sparse target. Complexity: O(1).
func (c *CSC) Values() []float64 { return c.values }

// At retrieves element (i,j): the stored value when (i,j) is in the pattern,
// 0 otherwise. Returns ErrOutOfRange outside the logical shape.
// Complexity: O(log nnz(j)) via binary search within the column.
func (c *CSC) At(i, j int) (float64, error) {
	if err := validateIndex(i, j, c.rows, c.cols); err != nil {
		return 0, matrixErrorf(opCSCAt, err)
	}

	lo, hi := c.colptr[j], c.colptr[j+1]
	// Binary search for i within the column's strictly increasing run.
	p := lo + sort.SearchInts(c.rowind[lo:hi], i)
	if p < hi && c.rowind[p] == i {
		return c.values[p], nil
	}

	return 0, nil
}

// Clone returns a deep copy (pattern and values). Complexity: O(cols + nnz).
func (c *CSC) Clone() *CSC {
	colptr := make([]int, len(c.colptr))
	copy(colptr, c.colptr)
	rowind := make([]int, len(c.rowind))
	copy(rowind, c.rowind)
	values := make([]float64, len(c.values))
	copy(values, c.values)

	return &CSC{rows: c.rows, cols: c.cols, colptr: colptr, rowind: rowind, values: values}
}
