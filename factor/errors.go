// SPDX-License-Identifier: MIT
// Package factor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the factor
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package factor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "factor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers will still use errors.Is to match.

var (
	// ErrInvalidDimension is returned when a requested factor dimension is
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimension = errors.New("factor: dimension must be >= 1")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("factor: index out of range")

	// ErrStructuralZero signals a write into the strict upper triangle, which
	// is zero by representation and never writable.
	ErrStructuralZero = errors.New("factor: entry above the diagonal is structurally zero")

	// ErrThetaLength indicates a parameter vector whose length differs from
	// ParamCount(); the factor is left untouched on this failure.
	ErrThetaLength = errors.New("factor: theta length mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, SetTheta).
	ErrNaNInf = errors.New("factor: NaN or Inf encountered")
)
