// SPDX-License-Identifier: MIT

// Package factor: zero-copy gonum interop views over a factor's storage.

package factor

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// RawTriangular exposes the factor as a blas64.Triangular view.
//
// The view SHARES the backing slice: writes through it are visible to the
// factor (including, if misused, writes above the diagonal — blas64 does not
// police Uplo on raw access). Intended for handing Λ to BLAS kernels.
//
// Fields: N = Dim(), Stride = Dim(), Uplo = blas.Lower, Diag = blas.NonUnit.
// Complexity: O(1), no allocation.
func (t *Triangular) RawTriangular() blas64.Triangular {
	return blas64.Triangular{
		N:      t.n,
		Stride: t.n,
		Data:   t.data,
		Uplo:   blas.Lower,
		Diag:   blas.NonUnit,
	}
}

// TriDense exposes the factor as a *mat.TriDense view over the SAME backing
// slice (no copy). Mutations through either object are visible to both;
// mat's own API keeps writes inside the lower triangle.
//
// Handy for printing (mat.Formatted), solving against Λ, or composing with
// other gonum/mat routines without marshaling.
// Complexity: O(1) plus mat's small header allocation.
func (t *Triangular) TriDense() *mat.TriDense {
	return mat.NewTriDense(t.n, mat.Lower, t.data)
}
