// SPDX-License-Identifier: MIT

// Left-multiplication kernels: T ← diag(Λ', …, Λ') · T for each target
// representation. Shared stage order: scalar fast path, dimension checks,
// structural checks, then the in-place Dtrmm sweep. No kernel writes until
// every check has passed.
package scale

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlmix/factor"
	"github.com/katalvlaran/lvlmix/matrix"
)

// leftDense scales a Dense target in place, Λ'-expansion on the left.
//
// The row dimension must be an exact multiple of l; row group g (rows
// g·l … g·l+l−1, all columns) is one W ← Λ'·W window. Contiguous vectors
// take a cheaper route: a q·l×1 column reinterpreted as a row-major q×l
// panel turns q tiny products into a single W ← W·Λ call, because the
// panel's row i is the transposed i-th l-run of the vector.
func leftDense(f *factor.Triangular, b *matrix.Dense) error {
	l := f.Dim()
	g := b.RawGeneral()
	// Scalar factor: the expansion is Λ[0,0]·I for any shape.
	if l == 1 {
		scaleGeneral(f.RawTriangular().Data[0], g)
		return nil
	}
	// Rows must tile into l-row groups.
	if g.Rows%l != 0 {
		return scaleErrorf(opLeft, fmt.Errorf("Dense rows=%d not a multiple of factor dim %d: %w", g.Rows, l, ErrDimensionMismatch))
	}
	q := g.Rows / l
	fr := f.RawTriangular()
	// Contiguous single column: one reshaped Dtrmm instead of q.
	if g.Cols == 1 && g.Stride == 1 {
		trmmRightNoTrans(fr, newView(g.Data, 0, q, l, l))
		return nil
	}
	// General path: one Dtrmm per row group, in place.
	var gi int
	for gi = 0; gi < q; gi++ {
		trmmLeftTrans(fr, newView(g.Data, gi*l*g.Stride, l, g.Cols, g.Stride))
	}
	return nil
}

// leftDiagonal scales a Diagonal target in place.
//
// Only the scalar factor is representable: for l > 1 the product
// Λ'-expansion·D has entries below the diagonal, which a Diagonal cannot
// store, so the call is rejected outright.
func leftDiagonal(f *factor.Triangular, b *matrix.Diagonal) error {
	l := f.Dim()
	if l != 1 {
		return scaleErrorf(opLeft, fmt.Errorf("Diagonal target needs a 1x1 factor, got %dx%d (result would leave the diagonal): %w", l, l, ErrDimensionMismatch))
	}
	// 1×1 expansion: scale the stored diagonal.
	floats.Scale(f.RawTriangular().Data[0], b.Values())
	return nil
}

// leftBlockDiag scales a homogeneous block-diagonal target in place.
//
// The expansion's Λ' tiles must line up with the stored blocks, so the
// block row count r must equal l exactly; each r×s block is then one
// W ← Λ'·W window over its contiguous row-major storage.
func leftBlockDiag(f *factor.Triangular, b *matrix.BlockDiag) error {
	l := f.Dim()
	r, s, k := b.BlockDims()
	data := b.Data()
	// Scalar factor: all blocks sit back to back, one contiguous pass.
	if l == 1 {
		floats.Scale(f.RawTriangular().Data[0], data)
		return nil
	}
	if r != l {
		return scaleErrorf(opLeft, fmt.Errorf("BlockDiag block rows r=%d must equal factor dim %d: %w", r, l, ErrDimensionMismatch))
	}
	fr := f.RawTriangular()
	// One in-place Dtrmm per block.
	var bi int
	for bi = 0; bi < k; bi++ {
		trmmLeftTrans(fr, newView(data, bi*r*s, r, s, s))
	}
	return nil
}

// leftCSC scales a CSC target's stored values in place.
//
// When every column's nonzeros form runs of l consecutive rows starting at
// multiples of l, the values slice is, run by run, a sequence of l-vectors
// each needing v ← Λ'·v. Laid out as a row-major (nnz/l)×l panel (run i is
// row i) that is a single W ← W·Λ call. The aligned-run walk verifies the
// premise; o.patternCheck can waive it for layouts proven upstream.
func leftCSC(f *factor.Triangular, b *matrix.CSC, o Options) error {
	l := f.Dim()
	vals := b.Values()
	// Scalar factor: scale the stored nonzeros, pattern untouched.
	if l == 1 {
		floats.Scale(f.RawTriangular().Data[0], vals)
		return nil
	}
	rows, _ := b.Dims()
	nnz := b.NNZ()
	if rows%l != 0 {
		return scaleErrorf(opLeft, fmt.Errorf("CSC rows=%d not a multiple of factor dim %d: %w", rows, l, ErrDimensionMismatch))
	}
	if nnz%l != 0 {
		return scaleErrorf(opLeft, fmt.Errorf("CSC nnz=%d not a multiple of factor dim %d: %w", nnz, l, ErrDimensionMismatch))
	}
	// Structural walk before any write (skippable, see options.go).
	if o.patternCheck {
		if err := verifyAlignedRuns(b, l); err != nil {
			return scaleErrorf(opLeft, err)
		}
	}
	if nnz == 0 {
		return nil
	}
	// One Dtrmm over the whole values slice, reshaped (nnz/l)×l.
	trmmRightNoTrans(f.RawTriangular(), newView(vals, 0, nnz/l, l, l))
	return nil
}

// verifyAlignedRuns walks the pattern and confirms the premise of leftCSC's
// reshape: per column, nonzeros come in runs of l consecutive row indices
// with each run starting at a multiple of l. Read-only.
func verifyAlignedRuns(b *matrix.CSC, l int) error {
	colptr, rowind := b.ColPtr(), b.RowInd()
	_, cols := b.Dims()
	var j, p, t int
	for j = 0; j < cols; j++ {
		lo, hi := colptr[j], colptr[j+1]
		// Each column must tile into whole runs.
		if (hi-lo)%l != 0 {
			return fmt.Errorf("CSC column %d holds %d nonzeros, not a multiple of %d: %w", j, hi-lo, l, ErrPatternMismatch)
		}
		for p = lo; p < hi; p += l {
			base := rowind[p]
			// Runs start on block boundaries…
			if base%l != 0 {
				return fmt.Errorf("CSC column %d: run starting at row %d is not aligned to %d-row blocks: %w", j, base, l, ErrPatternMismatch)
			}
			// …and cover the block without gaps.
			for t = 1; t < l; t++ {
				if rowind[p+t] != base+t {
					return fmt.Errorf("CSC column %d: run starting at row %d is not contiguous: %w", j, base, ErrPatternMismatch)
				}
			}
		}
	}
	return nil
}
