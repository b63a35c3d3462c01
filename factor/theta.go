// SPDX-License-Identifier: MIT

// Package factor: the θ codec — the bijection between a factor's lower
// triangle and the flat parameter vector a constrained optimizer works on,
// plus the box-constraint lower bounds for that packing.

package factor

import (
	"fmt"
	"math"
)

// Operation tags used to label wrapped sentinel errors from this file.
const (
	opSetTheta = "SetTheta"
)

// ParamCount returns n(n+1)/2 — the number of stored entries in the lower
// triangle of an n×n factor, i.e. the length of its θ vector. Non-positive
// n yields 0.
// Complexity: O(1).
func ParamCount(n int) int {
	if n < 1 {
		return 0
	}

	return n * (n + 1) / 2
}

// ParamCount returns the length of this factor's θ vector, n(n+1)/2.
// Complexity: O(1).
func (t *Triangular) ParamCount() int { return ParamCount(t.n) }

// Theta reads the factor's free parameters into a freshly allocated vector.
// Implementation:
//   - Stage 1: allocate exactly ParamCount() capacity.
//   - Stage 2: delegate to AppendTheta for the packing walk.
//
// Behavior highlights:
//   - Column-major packing of the lower triangle: for column j = 0..n−1
//     (ascending), rows i = j..n−1 (ascending). θ[0] is Λ[0,0]; θ ends
//     with Λ[n−1,n−1].
//   - Pure read; values are copied verbatim, no transformation.
//
// Returns:
//   - []float64: length ParamCount(), independent of the factor's storage.
//
// Determinism:
//   - Fixed j→i loop order; identical output for identical factors.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the result.
//
// AI-Hints:
//   - Hand this slice to the optimizer as its working point; pair with
//     LowerBounds for the search box. Use AppendTheta to reuse a buffer
//     across iterations.
func (t *Triangular) Theta() []float64 {
	return t.AppendTheta(make([]float64, 0, t.ParamCount()))
}

// AppendTheta appends the column-major packing of the lower triangle to dst
// and returns the extended slice (append idiom; dst may be nil).
// Complexity: Time O(n²), Space O(1) beyond dst's growth.
func (t *Triangular) AppendTheta(dst []float64) []float64 {
	var i, j int
	for j = 0; j < t.n; j++ { // columns left to right
		for i = j; i < t.n; i++ { // rows j..n−1, top to bottom
			dst = append(dst, t.data[i*t.n+j])
		}
	}

	return dst
}

// SetTheta installs a parameter vector into the factor's lower triangle.
// Implementation:
//   - Stage 1: length check — len(v) must equal ParamCount() exactly.
//   - Stage 2: numeric policy — scan v for NaN/±Inf when validation is on.
//   - Stage 3: inverse packing walk — column j = 0..n−1, rows i = j..n−1,
//     assigning successive elements of v with a running index.
//
// Behavior highlights:
//   - Exact inverse of Theta: SetTheta(Theta()) is the identity on Λ, and
//     Theta() right after SetTheta(v) returns a copy equal to v.
//   - Validation precedes the first write: a failed call leaves Λ unchanged.
//   - The strict upper triangle is never touched.
//
// Inputs:
//   - v: parameter vector of length ParamCount(), column-major lower-triangle
//     order.
//
// Errors:
//   - ErrThetaLength when len(v) ≠ ParamCount() (both lengths in the wrap).
//   - ErrNaNInf when the policy is on and v contains a non-finite element
//     (the offending index is in the wrap).
//
// Determinism:
//   - Fixed j→i loop order, single pass.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// AI-Hints:
//   - This is the per-iteration entry point of a fitting loop; keep the
//     finite-value policy on unless the θ producer is already guarded.
func (t *Triangular) SetTheta(v []float64) error {
	if want := t.ParamCount(); len(v) != want {
		return factorErrorf(opSetTheta, fmt.Errorf("len(theta)=%d, want %d: %w", len(v), want, ErrThetaLength))
	}
	if t.validateNaNInf {
		for k, x := range v { // full scan before any write
			if isNonFinite(x) {
				return factorErrorf(opSetTheta, fmt.Errorf("theta[%d]=%v: %w", k, x, ErrNaNInf))
			}
		}
	}

	var (
		i, j int // triangle walk
		k    int // running index into v
	)
	for j = 0; j < t.n; j++ { // columns left to right
		for i = j; i < t.n; i++ { // rows j..n−1, top to bottom
			t.data[i*t.n+j] = v[k]
			k++
		}
	}

	return nil
}

// LowerBounds returns the box-constraint lower bounds parallel to θ:
// 0 at every position that packs a diagonal entry of Λ, −Inf elsewhere.
// Implementation:
//   - Stage 1: allocate ParamCount() capacity.
//   - Stage 2: delegate to AppendLowerBounds.
//
// Behavior highlights:
//   - Diagonal entries are variance-like and constrained non-negative;
//     off-diagonal entries are covariance-like and unconstrained below.
//   - Depends on the dimension only, never on current entry values.
//
// Returns:
//   - []float64: length ParamCount(); for n=2 exactly [0, −Inf, 0].
//
// Complexity:
//   - Time O(n²), Space O(n²) for the result.
//
// AI-Hints:
//   - Compute once per model term at setup and hand to the optimizer as the
//     lower box; there is no upper box.
func (t *Triangular) LowerBounds() []float64 {
	return t.AppendLowerBounds(make([]float64, 0, t.ParamCount()))
}

// AppendLowerBounds appends the lower-bound vector to dst and returns the
// extended slice.
//
// The zeros land on the diagonal positions of the column-major packing.
// Column j contributes a run of n−j entries whose first element is the
// diagonal (j,j); walking the packing backwards, the diagonal positions sit
// at strides 2, 3, 4, … from the tail (the last run has length 1, the one
// before it 2, and so on). The walk below fills everything with −Inf first,
// then revisits exactly those positions.
//
// Complexity: Time O(n²), Space O(1) beyond dst's growth.
func (t *Triangular) AppendLowerBounds(dst []float64) []float64 {
	var (
		start = len(dst)       // dst may already carry other terms' bounds
		nl    = t.ParamCount() // entries this factor contributes
		ninf  = math.Inf(-1)   // off-diagonal bound
	)
	for k := 0; k < nl; k++ { // fill first: every position starts unconstrained
		dst = append(dst, ninf)
	}

	// Reverse stride walk over the diagonal positions: the last packed entry
	// is Λ[n−1,n−1]; each earlier diagonal sits one run-length further back,
	// and run lengths grow by one per column toward the front.
	k := start + nl - 1
	for step := 2; k >= start; step++ {
		dst[k] = 0
		k -= step
	}

	return dst
}
