// SPDX-License-Identifier: MIT

// Right-multiplication kernels: T ← T · diag(Λ, …, Λ) for each target
// representation, plus the one factor-mutating variant (Diagonal). Stage
// order mirrors impl_left.go: scalar fast path, dimension checks,
// structural checks, then the in-place Dtrmm sweep.
package scale

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlmix/factor"
	"github.com/katalvlaran/lvlmix/matrix"
)

// rightDense scales a Dense target in place, Λ-expansion on the right.
//
// The column dimension must be an exact multiple of l; column group g
// (columns g·l … g·l+l−1, all rows) is one W ← W·Λ window carved directly
// out of the strided storage.
func rightDense(b *matrix.Dense, f *factor.Triangular) error {
	l := f.Dim()
	g := b.RawGeneral()
	// Scalar factor: the expansion is Λ[0,0]·I for any shape.
	if l == 1 {
		scaleGeneral(f.RawTriangular().Data[0], g)
		return nil
	}
	// Columns must tile into l-column groups.
	if g.Cols%l != 0 {
		return scaleErrorf(opRight, fmt.Errorf("Dense cols=%d not a multiple of factor dim %d: %w", g.Cols, l, ErrDimensionMismatch))
	}
	q := g.Cols / l
	fr := f.RawTriangular()
	// One Dtrmm per column group, in place.
	var gi int
	for gi = 0; gi < q; gi++ {
		trmmRightNoTrans(fr, newView(g.Data, gi*l, g.Rows, l, g.Stride))
	}
	return nil
}

// rightDiagonal folds a diagonal into the factor: Λ ← D·Λ.
//
// This is the one variant that mutates the factor. D·Λ scales Λ's row i by
// D[i], which is again lower-triangular, so the product lands in Λ's own
// storage; the Diagonal is read-only. Requires D's order to equal l — the
// implicit expansion never enters, because the factor itself is the
// product's home and has no room for a repeated-block result.
func rightDiagonal(b *matrix.Diagonal, f *factor.Triangular) error {
	l := f.Dim()
	d := b.Values()
	if len(d) != l {
		return scaleErrorf(opRight, fmt.Errorf("Diagonal order %d must equal factor dim %d: %w", len(d), l, ErrDimensionMismatch))
	}
	fr := f.RawTriangular()
	// Row i of the stored triangle: entries (i,0) … (i,i).
	var i int
	for i = 0; i < l; i++ {
		floats.Scale(d[i], fr.Data[i*fr.Stride:i*fr.Stride+i+1])
	}
	return nil
}

// rightBlockDiag scales a homogeneous block-diagonal target in place.
//
// The expansion's Λ tiles must line up with the stored blocks, so the
// block column count s must equal l exactly; each r×s block is then one
// W ← W·Λ window over its contiguous row-major storage.
func rightBlockDiag(b *matrix.BlockDiag, f *factor.Triangular) error {
	l := f.Dim()
	r, s, k := b.BlockDims()
	data := b.Data()
	// Scalar factor: all blocks sit back to back, one contiguous pass.
	if l == 1 {
		floats.Scale(f.RawTriangular().Data[0], data)
		return nil
	}
	if s != l {
		return scaleErrorf(opRight, fmt.Errorf("BlockDiag block cols s=%d must equal factor dim %d: %w", s, l, ErrDimensionMismatch))
	}
	fr := f.RawTriangular()
	// One in-place Dtrmm per block.
	var bi int
	for bi = 0; bi < k; bi++ {
		trmmRightNoTrans(fr, newView(data, bi*r*s, r, s, s))
	}
	return nil
}

// rightCSC scales a CSC target's stored values in place.
//
// Column group g covers logical columns g·l … g·l+l−1. When all l columns
// share one row pattern of length rl, their values sit contiguously as a
// column-major rl×l panel — equivalently a row-major l×rl window W needing
// W ← Λ'·W (the transpose of panel ← panel·Λ). The group check is
// unconditional: a divergent pattern would smear values across logical
// columns, and all groups are verified before the first write.
func rightCSC(b *matrix.CSC, f *factor.Triangular) error {
	l := f.Dim()
	vals := b.Values()
	// Scalar factor: scale the stored nonzeros, pattern untouched.
	if l == 1 {
		floats.Scale(f.RawTriangular().Data[0], vals)
		return nil
	}
	_, cols := b.Dims()
	nnz := b.NNZ()
	if cols%l != 0 {
		return scaleErrorf(opRight, fmt.Errorf("CSC cols=%d not a multiple of factor dim %d: %w", cols, l, ErrDimensionMismatch))
	}
	if nnz%l != 0 {
		return scaleErrorf(opRight, fmt.Errorf("CSC nnz=%d not a multiple of factor dim %d: %w", nnz, l, ErrDimensionMismatch))
	}
	// Pass 1: every group's columns must agree before anything is scaled.
	if err := verifyGroupPatterns(b, l); err != nil {
		return scaleErrorf(opRight, err)
	}
	// Pass 2: one Dtrmm per non-empty group.
	colptr := b.ColPtr()
	fr := f.RawTriangular()
	var g int
	for g = 0; g < cols/l; g++ {
		c0 := g * l
		rl := colptr[c0+1] - colptr[c0]
		if rl == 0 {
			continue // empty group, nothing stored
		}
		trmmLeftTrans(fr, newView(vals, colptr[c0], l, rl, rl))
	}
	return nil
}

// verifyGroupPatterns confirms the premise of rightCSC's reshape: within
// each group of l columns, every column holds the same number of nonzeros
// with identical row indices as the group's first column. Read-only.
func verifyGroupPatterns(b *matrix.CSC, l int) error {
	colptr, rowind := b.ColPtr(), b.RowInd()
	_, cols := b.Dims()
	var g, c, p int
	for g = 0; g < cols/l; g++ {
		c0 := g * l
		lo0 := colptr[c0]
		rl := colptr[c0+1] - lo0
		for c = c0 + 1; c < c0+l; c++ {
			lo, hi := colptr[c], colptr[c+1]
			// Same count…
			if hi-lo != rl {
				return fmt.Errorf("CSC column %d holds %d nonzeros but column %d holds %d: %w", c0, rl, c, hi-lo, ErrPatternMismatch)
			}
			// …and the same rows, entry by entry.
			for p = 0; p < rl; p++ {
				if rowind[lo+p] != rowind[lo0+p] {
					return fmt.Errorf("CSC column %d row pattern diverges from column %d at entry %d: %w", c, c0, p, ErrPatternMismatch)
				}
			}
		}
	}
	return nil
}
