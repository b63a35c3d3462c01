// SPDX-License-Identifier: MIT

// Explicit row-major window plumbing shared by the kernels.
//
// Every Dtrmm in this package operates on a view: a bounds-checked
// rows×cols window, with its own stride, over storage owned by the target.
// Carving the window is the only "pointer arithmetic" the kernels do, so it
// lives here, validated once, instead of being re-derived inline at each
// call site.
package scale

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// Panic messages for view construction. Kernels derive every offset from
// dimensions they have already validated, so a trip here is a bug in this
// package, not bad user input; public API calls never panic.
const (
	panicViewGeometry = "scale: newView: invalid window geometry"
	panicViewBounds   = "scale: newView: window exceeds backing storage"
)

// view is a rows×cols row-major window into a shared buffer. data[0] is the
// window's (0,0); element (i,j) lives at data[i*stride+j]. The window never
// owns its storage.
type view struct {
	rows, cols int
	stride     int
	data       []float64
}

// newView carves the window starting at data[off]. It panics rather than
// returning an error: see the constants above.
func newView(data []float64, off, rows, cols, stride int) view {
	// Shape first: positive extents, stride wide enough for a row.
	if off < 0 || rows < 1 || cols < 1 || stride < cols {
		panic(panicViewGeometry)
	}
	// Last addressable element must sit inside the buffer.
	if off+(rows-1)*stride+cols > len(data) {
		panic(panicViewBounds)
	}
	return view{rows: rows, cols: cols, stride: stride, data: data[off:]}
}

// trmmLeftTrans computes W ← A'·W on the window, one BLAS-3 call.
// A is the factor's raw triangle; W must have rows == A.N.
func trmmLeftTrans(a blas64.Triangular, w view) {
	blas64.Implementation().Dtrmm(
		blas.Left, a.Uplo, blas.Trans, a.Diag,
		w.rows, w.cols, 1, a.Data, a.Stride, w.data, w.stride,
	)
}

// trmmRightNoTrans computes W ← W·A on the window, one BLAS-3 call.
// W must have cols == A.N.
func trmmRightNoTrans(a blas64.Triangular, w view) {
	blas64.Implementation().Dtrmm(
		blas.Right, a.Uplo, blas.NoTrans, a.Diag,
		w.rows, w.cols, 1, a.Data, a.Stride, w.data, w.stride,
	)
}

// scaleGeneral multiplies every element of a dense window by alpha,
// collapsing to one contiguous pass when the stride allows it.
func scaleGeneral(alpha float64, g blas64.General) {
	if g.Rows == 0 || g.Cols == 0 {
		return
	}
	if g.Stride == g.Cols {
		floats.Scale(alpha, g.Data[:g.Rows*g.Cols])
		return
	}
	// Strided layout: one Dscal per row, skipping the gap lanes.
	bi := blas64.Implementation()
	var i int
	for i = 0; i < g.Rows; i++ {
		bi.Dscal(g.Cols, alpha, g.Data[i*g.Stride:], 1)
	}
}
