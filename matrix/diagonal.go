// SPDX-License-Identifier: MIT

// Package matrix: the Diagonal representation.

package matrix

import (
	"fmt"
)

// Operation tags used to label wrapped sentinel errors from this file.
const (
	opNewDiagonal = "NewDiagonal"
	opDiagAt      = "Diagonal.At"
	opDiagSet     = "Diagonal.Set"
)

// Diagonal is an n×n diagonal matrix stored as its diagonal slice. Every
// off-diagonal entry is a structural zero: At reads it as 0, Set rejects it
// with ErrStructuralZero.
type Diagonal struct {
	data []float64 // the diagonal, len == n
}

// NewDiagonal adopts d as the diagonal of a len(d)×len(d) matrix (no copy).
// Errors: ErrInvalidDimension when d is empty or nil.
// Complexity: O(1).
//
// AI-Hints:
//   - Typical use: per-observation weights or a grouping factor's variance
//     profile; hand Values() to whoever produced d to keep mutating it.
func NewDiagonal(d []float64) (*Diagonal, error) {
	if len(d) < 1 {
		return nil, matrixErrorf(opNewDiagonal, fmt.Errorf("empty diagonal: %w", ErrInvalidDimension))
	}

	return &Diagonal{data: d}, nil
}

// Kind reports KindDiagonal. Complexity: O(1).
func (d *Diagonal) Kind() Kind { return KindDiagonal }

// Dims returns (n, n). Complexity: O(1).
func (d *Diagonal) Dims() (rows, cols int) { return len(d.data), len(d.data) }

// Order returns the matrix order n. Complexity: O(1).
func (d *Diagonal) Order() int { return len(d.data) }

// Values returns the diagonal slice (SHARED, not a copy). Complexity: O(1).
func (d *Diagonal) Values() []float64 { return d.data }

// At retrieves element (i,j); off-diagonal positions read the structural
// zero. Returns ErrOutOfRange outside n×n. Complexity: O(1).
func (d *Diagonal) At(i, j int) (float64, error) {
	n := len(d.data)
	if err := validateIndex(i, j, n, n); err != nil {
		return 0, matrixErrorf(opDiagAt, err)
	}
	if i != j {
		return 0, nil
	}

	return d.data[i], nil
}

// Set assigns element (i,i) = v. Off-diagonal writes fail with
// ErrStructuralZero; out-of-range indices with ErrOutOfRange.
// Complexity: O(1).
func (d *Diagonal) Set(i, j int, v float64) error {
	n := len(d.data)
	if err := validateIndex(i, j, n, n); err != nil {
		return matrixErrorf(opDiagSet, err)
	}
	if i != j {
		return matrixErrorf(opDiagSet, fmt.Errorf("(%d,%d): %w", i, j, ErrStructuralZero))
	}
	d.data[i] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(n).
func (d *Diagonal) Clone() *Diagonal {
	out := make([]float64, len(d.data))
	copy(out, d.data)

	return &Diagonal{data: out}
}
