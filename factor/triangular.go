// SPDX-License-Identifier: MIT

// Package factor: the Triangular type — construction, element access,
// cloning and equality. The θ codec lives in theta.go; gonum interop views
// live in interop.go.

package factor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Operation tags used to label wrapped sentinel errors from this file.
const (
	opNew = "New"
	opAt  = "At"
	opSet = "Set"
)

// factorErrorf wraps err with an operation tag, preserving the original error
// via %w. All public entry points of the package funnel their failures
// through this helper so messages stay uniform and errors.Is keeps matching.
func factorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf (numeric-policy guard).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Triangular is a square lower-triangular relative covariance factor Λ of
// fixed dimension n ≥ 1.
//
// Storage is a full row-major n×n slice with stride n; entries above the
// diagonal are structurally zero: no operation of this package ever writes
// them, and Set rejects attempts with ErrStructuralZero. The full-square
// layout is deliberate — it is exactly the layout blas64.Triangular and
// mat.TriDense consume, so RawTriangular/TriDense are zero-copy.
//
// The dimension is fixed at construction (a model term's number of
// random-effects columns) and never changes; the optimizer mutates the
// entries through SetTheta, not the shape.
//
// Not safe for concurrent mutation; see the scale package doc for the
// ownership rules during scaling calls.
type Triangular struct {
	n              int       // dimension (rows == cols), immutable after construction
	data           []float64 // row-major n×n backing storage, len == n*n
	validateNaNInf bool      // finite-value policy captured from Options
}

// New returns the n×n identity factor I_n — the conventional initial value
// for a vector-valued random-effects term.
// Implementation:
//   - Stage 1: validate n ≥ 1 (ErrInvalidDimension otherwise).
//   - Stage 2: allocate zeroed n×n storage, write 1.0 on the diagonal.
//
// Behavior highlights:
//   - Single allocation; deterministic diagonal loop.
//
// Inputs:
//   - n: factor dimension (number of random-effects columns of the term).
//   - opts: numeric policy options (see WithValidateNaNInf).
//
// Returns:
//   - *Triangular: freshly allocated identity factor.
//
// Errors:
//   - ErrInvalidDimension (wrapped with the "New" tag) when n < 1.
//
// Complexity:
//   - Time O(n²) zero-init, Space O(n²).
//
// AI-Hints:
//   - Follow with SetTheta to install optimizer-proposed parameters; the
//     identity is the θ = (1,0,…,0,1,…) starting point fitters expect.
func New(n int, opts ...Option) (*Triangular, error) {
	if n < 1 {
		return nil, factorErrorf(opNew, fmt.Errorf("n=%d: %w", n, ErrInvalidDimension))
	}

	o := gatherOptions(opts...)
	t := &Triangular{
		n:              n,
		data:           make([]float64, n*n),
		validateNaNInf: o.validateNaNInf,
	}
	for i := 0; i < n; i++ { // fixed i order; one write per diagonal cell
		t.data[i*n+i] = 1.0
	}

	return t, nil
}

// Scalar returns the 1×1 unit factor — the initial value for a scalar
// random-effects term. It cannot fail: dimension 1 is always valid.
func Scalar(opts ...Option) *Triangular {
	t, _ := New(1, opts...) // n==1 never trips the dimension guard
	return t
}

// Dim returns the factor dimension n. Complexity: O(1).
func (t *Triangular) Dim() int { return t.n }

// At retrieves Λ[i,j].
// Reads from the strict upper triangle return the structural zero (0, nil) —
// it is a legitimate matrix entry, just not a stored parameter.
// Returns ErrOutOfRange when i or j is outside [0, n).
// Complexity: O(1).
func (t *Triangular) At(i, j int) (float64, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, factorErrorf(opAt, fmt.Errorf("Triangular.At(%d,%d), dim %d: %w", i, j, t.n, ErrOutOfRange))
	}

	return t.data[i*t.n+j], nil
}

// Set assigns Λ[i,j] = v within the lower triangle (i ≥ j).
// Implementation:
//   - Stage 1: bounds check (ErrOutOfRange).
//   - Stage 2: structural check — i < j is never writable (ErrStructuralZero).
//   - Stage 3: numeric policy — reject NaN/±Inf when validation is enabled.
//   - Stage 4: single write into the backing slice.
//
// Behavior highlights:
//   - Validation precedes the write; a failed Set leaves Λ untouched.
//
// Errors:
//   - ErrOutOfRange, ErrStructuralZero, ErrNaNInf (all wrapped with indices).
//
// Complexity:
//   - Time O(1), Space O(1).
func (t *Triangular) Set(i, j int, v float64) error {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return factorErrorf(opSet, fmt.Errorf("Triangular.Set(%d,%d), dim %d: %w", i, j, t.n, ErrOutOfRange))
	}
	if i < j {
		return factorErrorf(opSet, fmt.Errorf("Triangular.Set(%d,%d): %w", i, j, ErrStructuralZero))
	}
	if t.validateNaNInf && isNonFinite(v) {
		return factorErrorf(opSet, fmt.Errorf("Triangular.Set(%d,%d) value %v: %w", i, j, v, ErrNaNInf))
	}
	t.data[i*t.n+j] = v

	return nil
}

// Clone returns a deep copy of the factor (same dimension, same numeric
// policy, independent storage). Complexity: O(n²).
func (t *Triangular) Clone() *Triangular {
	out := &Triangular{
		n:              t.n,
		data:           make([]float64, len(t.data)),
		validateNaNInf: t.validateNaNInf,
	}
	copy(out.data, t.data)

	return out
}

// Equal reports whether u has the same dimension and bitwise-equal entries.
// NaN entries compare unequal (IEEE semantics); numeric policy is ignored.
// Complexity: O(n²).
func (t *Triangular) Equal(u *Triangular) bool {
	if t == nil || u == nil {
		return t == u
	}
	if t.n != u.n {
		return false
	}
	for k := range t.data { // flat scan; upper zeros participate harmlessly
		if t.data[k] != u.data[k] {
			return false
		}
	}

	return true
}

// String renders the factor via gonum's formatter, one matrix row per line.
// Intended for debugging and examples, not for serialization.
func (t *Triangular) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.TriDense()))
}
