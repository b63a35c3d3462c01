// SPDX-License-Identifier: MIT

// Package factor implements the lower-triangular relative covariance factor
// Λ of a random-effects model term and its optimizer-facing parameter codec.
//
// What lives here:
//
//   - Triangular — a square lower-triangular matrix of fixed dimension n,
//     stored row-major with the strict upper triangle structurally zero.
//     New(n) yields the identity (the conventional starting factor for a
//     vector-valued term); Scalar() yields the 1×1 unit factor used by
//     scalar terms.
//
//   - The θ codec — Theta / AppendTheta read the lower triangle into a flat
//     vector of length n(n+1)/2 in column-major order (column j, rows j..n−1,
//     columns left to right); SetTheta is the exact inverse traversal. The
//     packing is a bijection: both round trips reproduce their input verbatim,
//     no arithmetic is applied to the values in either direction.
//
//   - LowerBounds / AppendLowerBounds — the box-constraint lower bounds
//     parallel to θ: 0 at every position that packs a diagonal entry of Λ
//     (variance-like parameters), −Inf at off-diagonal positions
//     (covariance-like parameters). Derived from n alone.
//
// A constrained optimizer drives the loop: it proposes θ within the bounds,
// the caller installs it with SetTheta, then rescales its cached structured
// quantities (see the scale package) to evaluate the objective.
//
// Interop: RawTriangular exposes the factor as a blas64.Triangular and
// TriDense as a *mat.TriDense, both zero-copy views over the same backing
// slice, so gonum routines can consume Λ directly.
//
// Numeric policy: by default Set and SetTheta reject NaN and ±Inf
// (ErrNaNInf); WithNoValidateNaNInf relaxes this at construction time.
//
// All errors are package sentinels (errors.Is-friendly), wrapped with the
// failing operation and indices at the call site. No operation here mutates
// on a failed validation.
package factor
