// SPDX-License-Identifier: MIT
// Package matrix: shared validation guards.
//
// Purpose:
//   - Provide a single, canonical source of truth for common structural checks.
//   - Keep constructors minimal by delegating shape/index/CSC walks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - The CSC walk is O(cols + nnz), single pass, fixed column order.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateDims ensures rows ≥ 1 and cols ≥ 1.
// Complexity: O(1).
func validateDims(rows, cols int) error {
	if rows < 1 {
		return validatorErrorf("validateDims", fmt.Errorf("rows=%d: %w", rows, ErrInvalidDimension))
	}
	if cols < 1 {
		return validatorErrorf("validateDims", fmt.Errorf("cols=%d: %w", cols, ErrInvalidDimension))
	}

	return nil
}

// validateIndex ensures 0 ≤ i < rows and 0 ≤ j < cols.
// Complexity: O(1).
func validateIndex(i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return validatorErrorf("validateIndex",
			fmt.Errorf("(%d,%d) outside %dx%d: %w", i, j, rows, cols, ErrOutOfRange))
	}

	return nil
}

// validateCSC walks a compressed-sparse-column structure once and verifies:
//   - len(colptr) == cols+1, colptr[0] == 0, colptr non-decreasing;
//   - len(rowind) == len(values) == colptr[cols];
//   - within each column, row indices strictly increasing and in [0, rows).
//
// Returns ErrBadSparse (wrapped with the failing detail) on the first
// violation. Assumes rows/cols already validated via validateDims.
// Complexity: O(cols + nnz), Space O(1).
func validateCSC(rows, cols int, colptr, rowind []int, nvals int) error {
	const tag = "validateCSC"

	if len(colptr) != cols+1 {
		return validatorErrorf(tag, fmt.Errorf("len(colptr)=%d, want %d: %w", len(colptr), cols+1, ErrBadSparse))
	}
	if colptr[0] != 0 {
		return validatorErrorf(tag, fmt.Errorf("colptr[0]=%d: %w", colptr[0], ErrBadSparse))
	}

	var j, p int // column index, position within rowind
	for j = 0; j < cols; j++ {
		if colptr[j+1] < colptr[j] {
			return validatorErrorf(tag, fmt.Errorf("colptr decreasing at column %d: %w", j, ErrBadSparse))
		}
	}

	nnz := colptr[cols]
	if len(rowind) != nnz {
		return validatorErrorf(tag, fmt.Errorf("len(rowind)=%d, want %d: %w", len(rowind), nnz, ErrBadSparse))
	}
	if nvals != nnz {
		return validatorErrorf(tag, fmt.Errorf("len(values)=%d, want %d: %w", nvals, nnz, ErrBadSparse))
	}

	for j = 0; j < cols; j++ {
		prev := -1 // sentinel below any valid row index
		for p = colptr[j]; p < colptr[j+1]; p++ {
			r := rowind[p]
			if r < 0 || r >= rows {
				return validatorErrorf(tag, fmt.Errorf("rowind[%d]=%d outside [0,%d) in column %d: %w", p, r, rows, j, ErrBadSparse))
			}
			if r <= prev {
				return validatorErrorf(tag, fmt.Errorf("row indices not strictly increasing in column %d: %w", j, ErrBadSparse))
			}
			prev = r
		}
	}

	return nil
}
