// SPDX-License-Identifier: MIT

// Public entry points: Left and Right. Both are thin, auditable facades —
// nil guards, option gathering, then one explicit type switch per call that
// hands off to the kernel for the target's representation.
package scale

import (
	"fmt"

	"github.com/katalvlaran/lvlmix/factor"
	"github.com/katalvlaran/lvlmix/matrix"
)

// Operation tags used in wrapped error messages.
const (
	opLeft  = "Left"
	opRight = "Right"
)

// scaleErrorf wraps err under the operation tag, preserving errors.Is/As.
func scaleErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Left - in-place transposed-factor scaling, T ← diag(Λ', …, Λ') · T.
//
// MAIN DESCRIPTION:
//
//	Multiplies the target from the left by the implicit block expansion of
//	the factor's transpose, writing the product back into the target's own
//	storage. The expansion repeats Λ' along the diagonal until it covers the
//	target's rows; Λ itself is never materialized at target size.
//
// Implementation Stages:
//  1. Guard both operands against nil (including typed nils behind the
//     Target interface).
//  2. Gather options (pattern check toggle; CSC only).
//  3. Dispatch on the concrete representation:
//     - *matrix.Dense:     rows % l == 0; per row-group Dtrmm, with a
//     single-Dtrmm reshape for contiguous vectors.
//     - *matrix.Diagonal:  l == 1 only (a wider factor would fill in
//     below the diagonal); scalar scaling.
//     - *matrix.BlockDiag: block rows r == l; per-block Dtrmm.
//     - *matrix.CSC:       rows % l == 0 and nnz % l == 0; optional
//     aligned-run pattern walk, then one Dtrmm over the reshaped
//     values slice.
//  4. l == 1 short-circuits every variant to scalar scaling before any
//     other dimension check.
//
// Inputs:
//   - f (*factor.Triangular): the l×l lower-triangular factor; read-only.
//   - t (matrix.Target): the matrix being scaled in place.
//   - opts (...Option): WithPatternCheck / WithNoPatternCheck.
//
// Returns:
//   - error: nil on success; otherwise a wrapped sentinel and the target is
//     untouched.
//
// Errors:
//   - ErrNilFactor / ErrNilTarget: missing operand.
//   - ErrUnsupportedTarget: a Target outside the four representations.
//   - ErrDimensionMismatch: rows (or block rows) incompatible with l.
//   - ErrPatternMismatch: CSC nonzeros not aligned in l-row runs.
//
// Determinism: deterministic; single-threaded BLAS-3 calls in a fixed
// group order.
//
// Complexity: O(l · nnz) for CSC, O(l · rows · cols) for dense shapes,
// with O(1) extra space.
//
// AI-Hints:
//   - Pair with Right to rebuild Λ'·M·Λ quantities in place each
//     iteration of an optimizer loop.
//   - The error value tells you which contract failed; the target is
//     always intact after a non-nil return.
func Left(f *factor.Triangular, t matrix.Target, opts ...Option) error {
	// Stage 1: operand guards.
	if f == nil {
		return scaleErrorf(opLeft, ErrNilFactor)
	}
	if t == nil {
		return scaleErrorf(opLeft, ErrNilTarget)
	}
	// Stage 2: configuration.
	o := gatherOptions(opts...)
	// Stage 3: explicit dispatch. Each arm re-checks for a typed nil so a
	// (*matrix.Dense)(nil) handed in as a Target fails cleanly.
	switch b := t.(type) {
	case *matrix.Dense:
		if b == nil {
			return scaleErrorf(opLeft, ErrNilTarget)
		}
		return leftDense(f, b)
	case *matrix.Diagonal:
		if b == nil {
			return scaleErrorf(opLeft, ErrNilTarget)
		}
		return leftDiagonal(f, b)
	case *matrix.BlockDiag:
		if b == nil {
			return scaleErrorf(opLeft, ErrNilTarget)
		}
		return leftBlockDiag(f, b)
	case *matrix.CSC:
		if b == nil {
			return scaleErrorf(opLeft, ErrNilTarget)
		}
		return leftCSC(f, b, o)
	default:
		return scaleErrorf(opLeft, fmt.Errorf("%T: %w", t, ErrUnsupportedTarget))
	}
}

// Right - in-place factor scaling, T ← T · diag(Λ, …, Λ).
//
// MAIN DESCRIPTION:
//
//	Multiplies the target from the right by the implicit block expansion of
//	the factor, writing the product back into the target's own storage. The
//	expansion repeats Λ along the diagonal until it covers the target's
//	columns.
//
// Implementation Stages:
//  1. Guard both operands against nil.
//  2. Dispatch on the concrete representation:
//     - *matrix.Dense:     cols % l == 0; per column-group Dtrmm.
//     - *matrix.Diagonal:  the factor-mutating variant, Λ ← D·Λ. Requires
//     D's order == l; D is read-only, Λ's row i is
//     scaled by D[i].
//     - *matrix.BlockDiag: block cols s == l; per-block Dtrmm.
//     - *matrix.CSC:       cols % l == 0 and nnz % l == 0; every group of
//     l columns must share one row pattern (checked
//     unconditionally, all groups before any write),
//     then one Dtrmm per group.
//  3. l == 1 short-circuits Dense/BlockDiag/CSC to scalar scaling; the
//     Diagonal variant keeps its order == l contract (both sides 1×1).
//
// Inputs:
//   - t (matrix.Target): the matrix being scaled in place — except for
//     Diagonal targets, where t is read-only and f mutates.
//   - f (*factor.Triangular): the l×l lower-triangular factor.
//   - opts (...Option): accepted for symmetry; no current option affects
//     Right (the group check has no off switch).
//
// Returns:
//   - error: nil on success; otherwise a wrapped sentinel and both operands
//     are untouched.
//
// Errors:
//   - ErrNilFactor / ErrNilTarget: missing operand.
//   - ErrUnsupportedTarget: a Target outside the four representations.
//   - ErrDimensionMismatch: cols (or block cols, or diagonal order)
//     incompatible with l.
//   - ErrPatternMismatch: CSC column group with a divergent row pattern.
//
// Determinism: deterministic; single-threaded BLAS-3 calls in a fixed
// group order.
//
// Complexity: O(l · nnz) for CSC, O(l · rows · cols) for dense shapes,
// with O(1) extra space.
//
// AI-Hints:
//   - Argument order mirrors the math: Right(t, f) is T·Λ-expansion, just
//     as Left(f, t) is Λ'-expansion·T.
//   - Right with a Diagonal target is how a weights matrix folds into the
//     factor itself; check which operand you expect to change.
func Right(t matrix.Target, f *factor.Triangular, opts ...Option) error {
	// Stage 1: operand guards.
	if t == nil {
		return scaleErrorf(opRight, ErrNilTarget)
	}
	if f == nil {
		return scaleErrorf(opRight, ErrNilFactor)
	}
	// Options gathered for interface symmetry; no Right kernel reads them
	// today, but the tail keeps call sites stable if one ever does.
	_ = gatherOptions(opts...)
	// Stage 2: explicit dispatch, typed-nil guarded like Left.
	switch b := t.(type) {
	case *matrix.Dense:
		if b == nil {
			return scaleErrorf(opRight, ErrNilTarget)
		}
		return rightDense(b, f)
	case *matrix.Diagonal:
		if b == nil {
			return scaleErrorf(opRight, ErrNilTarget)
		}
		return rightDiagonal(b, f)
	case *matrix.BlockDiag:
		if b == nil {
			return scaleErrorf(opRight, ErrNilTarget)
		}
		return rightBlockDiag(b, f)
	case *matrix.CSC:
		if b == nil {
			return scaleErrorf(opRight, ErrNilTarget)
		}
		return rightCSC(b, f)
	default:
		return scaleErrorf(opRight, fmt.Errorf("%T: %w", t, ErrUnsupportedTarget))
	}
}
