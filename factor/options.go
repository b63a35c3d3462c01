// SPDX-License-Identifier: MIT

// Package factor: functional configuration for the numeric policy of a
// triangular factor. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package factor

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// SetTheta. Enabled by default: a covariance factor holding NaN/±Inf can
	// only poison every quantity derived from it downstream.
	DefaultValidateNaNInf = true
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation (the default).
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - Set and SetTheta reject NaN and ±Inf with ErrNaNInf before any write.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The policy is fixed at construction; existing factors keep theirs.
//
// AI-Hints:
//   - Keep this enabled when θ comes from an optimizer: line searches that
//     overstep can produce Inf and a rejected step is cheaper to debug than
//     a poisoned factor.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Set and SetTheta store values verbatim, finite or not.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Only worth it in hot fitting loops whose θ source already guarantees
//     finiteness; it removes one O(ParamCount) scan per SetTheta.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
