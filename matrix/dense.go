// SPDX-License-Identifier: MIT

// Package matrix: the Dense representation — row-major, possibly strided
// storage for plain matrices and vectors.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
)

// Operation tags used to label wrapped sentinel errors from this file.
const (
	opNewDense   = "NewDense"
	opNewStrided = "NewStrided"
	opNewVector  = "NewVector"
	opDenseAt    = "Dense.At"
	opDenseSet   = "Dense.Set"
)

// Dense is a row-major matrix over a flat []float64, possibly a strided
// window of a larger buffer: element (i,j) lives at data[i*stride + j],
// with stride ≥ cols. A vector is simply rows×1 with stride 1.
//
// The layout matches blas64.General exactly, so RawGeneral is a zero-copy
// view. When stride > cols, the gap lanes between rows belong to the
// enclosing buffer and are never read or written by this package.
type Dense struct {
	rows, cols int       // logical shape
	stride     int       // row stride in the backing slice, ≥ cols
	data       []float64 // backing storage, len ≥ (rows−1)*stride + cols
}

// NewDense builds a rows×cols dense target.
// Implementation:
//   - Stage 1: validate rows/cols ≥ 1.
//   - Stage 2: nil data → allocate zeroed rows·cols storage; non-nil data →
//     adopt it (no copy), requiring len(data) == rows·cols exactly.
//
// Behavior highlights:
//   - Contiguous layout (stride == cols). Use NewStrided for windows.
//   - Adoption means the caller and the target SHARE storage afterwards.
//
// Inputs:
//   - rows, cols: logical shape.
//   - data: nil, or exactly rows·cols values in row-major order.
//
// Returns:
//   - *Dense: the target.
//
// Errors:
//   - ErrInvalidDimension on non-positive shape.
//   - ErrStorageSize when non-nil data has the wrong length.
//
// Complexity:
//   - Time O(rows·cols) for the nil-data zeroing, O(1) otherwise.
//
// AI-Hints:
//   - Pass the buffer you already own (e.g. a cached Z'Z panel) to scale it
//     in place; pass nil only for scratch targets you will fill later.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}
	if data == nil {
		data = make([]float64, rows*cols)
	} else if len(data) != rows*cols {
		return nil, matrixErrorf(opNewDense,
			fmt.Errorf("len(data)=%d, want %d: %w", len(data), rows*cols, ErrStorageSize))
	}

	return &Dense{rows: rows, cols: cols, stride: cols, data: data}, nil
}

// NewStrided adopts a strided row-major window over data: element (i,j) at
// data[i*stride + j]. No copy is made.
// Implementation:
//   - Stage 1: validate rows/cols ≥ 1 and stride ≥ cols.
//   - Stage 2: bounds-check the window against len(data):
//     (rows−1)*stride + cols ≤ len(data).
//
// Errors:
//   - ErrInvalidDimension on non-positive shape or stride < cols.
//   - ErrStorageSize when data is nil or too short for the window.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - This is the explicit "reshape without copy" construct: point it at a
//     sub-window of a bigger buffer to scale that window in place.
func NewStrided(rows, cols, stride int, data []float64) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNewStrided, err)
	}
	if stride < cols {
		return nil, matrixErrorf(opNewStrided,
			fmt.Errorf("stride=%d < cols=%d: %w", stride, cols, ErrInvalidDimension))
	}
	if need := (rows-1)*stride + cols; data == nil || len(data) < need {
		return nil, matrixErrorf(opNewStrided,
			fmt.Errorf("len(data)=%d, need >= %d: %w", len(data), need, ErrStorageSize))
	}

	return &Dense{rows: rows, cols: cols, stride: stride, data: data}, nil
}

// NewVector adopts data as a len(data)×1 column vector (stride 1, no copy).
// Errors: ErrInvalidDimension when data is empty or nil.
// Complexity: O(1).
func NewVector(data []float64) (*Dense, error) {
	if len(data) < 1 {
		return nil, matrixErrorf(opNewVector, fmt.Errorf("empty vector: %w", ErrInvalidDimension))
	}

	return &Dense{rows: len(data), cols: 1, stride: 1, data: data}, nil
}

// Kind reports KindDense. Complexity: O(1).
func (d *Dense) Kind() Kind { return KindDense }

// Dims returns the logical shape (rows, cols). Complexity: O(1).
func (d *Dense) Dims() (rows, cols int) { return d.rows, d.cols }

// Rows returns the row count. Complexity: O(1).
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count. Complexity: O(1).
func (d *Dense) Cols() int { return d.cols }

// Stride returns the row stride of the backing storage. Complexity: O(1).
func (d *Dense) Stride() int { return d.stride }

// Data returns the backing slice (SHARED, not a copy). For strided targets
// it includes the gap lanes between rows. Complexity: O(1).
func (d *Dense) Data() []float64 { return d.data }

// At retrieves element (i,j). Returns ErrOutOfRange outside the logical
// shape. Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if err := validateIndex(i, j, d.rows, d.cols); err != nil {
		return 0, matrixErrorf(opDenseAt, err)
	}

	return d.data[i*d.stride+j], nil
}

// Set assigns element (i,j) = v. Returns ErrOutOfRange outside the logical
// shape. No numeric policy applies here: targets carry caller data verbatim.
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if err := validateIndex(i, j, d.rows, d.cols); err != nil {
		return matrixErrorf(opDenseSet, err)
	}
	d.data[i*d.stride+j] = v

	return nil
}

// RawGeneral exposes the target as a blas64.General view (SHARED storage).
// Complexity: O(1), no allocation.
func (d *Dense) RawGeneral() blas64.General {
	return blas64.General{
		Rows:   d.rows,
		Cols:   d.cols,
		Stride: d.stride,
		Data:   d.data,
	}
}

// Clone returns a deep copy with compacted storage (stride == cols), leaving
// any enclosing buffer behind. Complexity: O(rows·cols).
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, stride: d.cols, data: make([]float64, d.rows*d.cols)}

	var i int
	for i = 0; i < d.rows; i++ { // row-by-row copy skips gap lanes
		copy(out.data[i*out.stride:(i+1)*out.stride], d.data[i*d.stride:i*d.stride+d.cols])
	}

	return out
}
