// Package lvlmix is the numerical core for mixed-effects model fitting:
// relative covariance factors, their optimizer-facing parameter vectors,
// and implicit triangular scaling of the structured matrices the fit
// iterates over.
//
// 🚀 What is lvlmix?
//
//	A focused, BLAS-backed library that brings together:
//		• Triangular factors: lower-triangular Λ with a column-major θ codec
//		• Box constraints: lower-bound vectors for constrained optimizers
//		• Target shapes: dense/strided, diagonal, homogeneous block-diagonal,
//		  compressed-sparse-column — one explicit type per representation
//		• Implicit scaling: in-place Λ'·T and T·Λ without ever materializing
//		  the block-expanded factor
//
// ✨ Why choose lvlmix?
//
//   - Optimizer-friendly – θ in, scaled quantities out, nothing hidden
//   - Rock-solid guarantees – validation before mutation, sentinel errors
//   - gonum under the hood – every multiply is a single Dtrmm on an
//     explicit view, no copies on the hot path
//   - Predictable – deterministic loops, no internal goroutines or locks
//
// Under the hood, everything is organized under three subpackages:
//
//	factor/ — Triangular (Λ), Theta/SetTheta codec, LowerBounds
//	matrix/ — Dense, Diagonal, BlockDiag, CSC target representations
//	scale/  — Left (Λ'·T) and Right (T·Λ) in-place scaling family
//
// Quick sketch of the fitting loop this core serves:
//
//	θ ──SetTheta──▶ Λ ──scale.Left/Right──▶ Λ'(Z'Z)Λ ──▶ objective(θ)
//	▲                                                        │
//	└────────────────── optimizer proposes next θ ◀──────────┘
//
// Dive into examples/ for runnable scenarios and each package's doc.go for
// the full contracts.
//
//	go get github.com/katalvlaran/lvlmix
package lvlmix
