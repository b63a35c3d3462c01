// SPDX-License-Identifier: MIT

// Package scale multiplies structured targets by a lower-triangular factor
// Λ in place, using implicit block expansion — the block-diagonal matrix
// diag(Λ, …, Λ) that matches the target's dimension is never materialized.
//
// The two directions:
//
//	Left(f, t)  :  T ← diag(Λ', …, Λ') · T     (transposed factor, left)
//	Right(t, f) :  T ← T · diag(Λ, …, Λ)       (factor, right)
//
// With l = f.Dim(), the expansion repeats Λ until it matches the target's
// relevant dimension, so that dimension must be an exact multiple of l:
// rows for Left on Dense/CSC, cols for Right on Dense/CSC, and the block
// shape itself for BlockDiag (block rows == l on the left, block cols == l
// on the right). Violations fail with ErrDimensionMismatch before anything
// is written. When l == 1 the expansion is just Λ[0,0]·I, so every variant
// short-circuits to scalar scaling of the stored values, whatever the
// target's shape.
//
// This is the per-iteration workhorse of a mixed-model fitting loop: with a
// cached Z'Z-like quantity in one of the matrix package's representations,
// Left followed by Right rebuilds the Λ'Z'ZΛ-type quantity for the current
// θ without allocating.
//
// Dispatch is an explicit type switch over the four representations of the
// matrix package (Dense, Diagonal, BlockDiag, CSC); anything else fails
// with ErrUnsupportedTarget. Two combinations deserve a note:
//
//   - Left on a Diagonal target is only defined for l == 1 — for larger
//     factors the product would fill in below the diagonal and could not be
//     stored back into a Diagonal, so it fails with ErrDimensionMismatch.
//
//   - Right on a Diagonal is the one factor-mutating variant: D·Λ is again
//     lower-triangular, so the product is written into Λ (row i scaled by
//     D[i]) and the diagonal is read-only. It requires D's order == l.
//
// Sparse structure: the CSC kernels reshape the contiguous values slice and
// therefore depend on the nonzero pattern being genuinely block-structured.
// Right verifies, always, that every column in a group of l shares the
// group's row pattern (ErrPatternMismatch otherwise). Left verifies, by
// default, that every column's nonzeros form l-runs aligned to l-row blocks;
// WithNoPatternCheck skips that walk for callers that guarantee layout
// upstream — with the check off, a misaligned pattern yields the reshape
// semantics verbatim, i.e. silently wrong values, which is exactly what the
// guard exists to catch.
//
// Every kernel validates before it mutates: a call that returns an error
// leaves the target (and the factor) bit-identical to its state at entry.
// The sparse checks run to completion before the first multiply, per call,
// not per group.
//
// Under the hood every multiply is one blas64.Implementation().Dtrmm call
// per reshaped view — explicit, bounds-checked row-major windows over the
// target's own storage. Nothing target-sized is allocated; the kernels are
// synchronous and use no goroutines or locks. Calls on disjoint
// (factor, target) pairs are safe to run concurrently; sharing either
// operand across concurrent calls races.
package scale
