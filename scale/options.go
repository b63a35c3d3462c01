// SPDX-License-Identifier: MIT

// Package scale configuration via functional options.
//
// The only tunable is the structural pattern check on sparse left-multiply.
// Defaults are chosen for safety; the escape hatch exists because the check
// is an O(nnz) walk and fitting loops call Left on the same immutable
// pattern thousands of times.
package scale

// DefaultPatternCheck is the default for the CSC left-multiply structure
// check: on. Right-multiply's group check is unconditional and has no knob.
const DefaultPatternCheck = true

// Options carries the configuration gathered from functional options.
type Options struct {
	// patternCheck toggles the aligned-run walk in Left on CSC targets.
	patternCheck bool
}

// Option mutates Options; apply them via Left/Right's variadic tail.
type Option func(*Options)

// WithPatternCheck - verify the CSC nonzero pattern before Left reshapes it.
//
// MAIN DESCRIPTION:
//
//	Re-enables the default aligned-run walk: every column's nonzeros must
//	form runs of l consecutive row indices starting at multiples of l.
//	Useful to restore the default after a WithNoPatternCheck earlier in the
//	same option list.
//
// Behavior highlights:
//   - Scope: Left on *matrix.CSC only; every other kernel ignores it.
//   - Cost: one O(nnz) pass over colptr/rowind, no writes.
//
// Returns:
//   - Option: sets patternCheck = true.
//
// Complexity: O(1) to apply.
func WithPatternCheck() Option {
	return func(o *Options) {
		o.patternCheck = true // restore the default walk
	}
}

// WithNoPatternCheck - trust the caller's CSC layout and skip the walk.
//
// MAIN DESCRIPTION:
//
//	Disables the structural check in Left on CSC targets. The kernel then
//	reshapes the values slice unconditionally; if the pattern is not truly
//	aligned in l-row runs the result is silently wrong, so reserve this for
//	patterns built once and verified upstream (the usual fitting-loop case,
//	where the sparsity pattern never changes between iterations).
//
// Behavior highlights:
//   - Dimension checks (rows % l, nnz % l) still run; only the per-column
//     run walk is skipped.
//   - Right's group check is NOT affected: it stays on unconditionally,
//     because its reshape spans several logical columns at once and a
//     divergent pattern there corrupts values across column boundaries.
//
// Returns:
//   - Option: sets patternCheck = false.
//
// Complexity: O(1) to apply.
//
// AI-Hints:
//   - Benchmark before reaching for this: the walk is branch-predictable
//     and usually disappears next to the Dtrmm it guards.
func WithNoPatternCheck() Option {
	return func(o *Options) {
		o.patternCheck = false // caller vouches for the layout
	}
}

// gatherOptions folds defaults and user options into a ready Options value.
func gatherOptions(user ...Option) Options {
	// Seed with package defaults.
	o := Options{patternCheck: DefaultPatternCheck}
	// Apply user overrides in declaration order (last write wins).
	var opt Option
	for _, opt = range user {
		opt(&o)
	}
	return o
}
