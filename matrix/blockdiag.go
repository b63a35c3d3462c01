// SPDX-License-Identifier: MIT

// Package matrix: the BlockDiag representation — homogeneous block-diagonal
// storage for grouped quantities.

package matrix

import (
	"fmt"
)

// Operation tags used to label wrapped sentinel errors from this file.
const (
	opNewBlockDiag = "NewBlockDiag"
	opBlock        = "BlockDiag.Block"
	opBlockAt      = "BlockDiag.At"
	opBlockSet     = "BlockDiag.Set"
)

// BlockDiag is a homogeneous block-diagonal matrix: k diagonal blocks, all
// of the same r×s shape. Logically it is (r·k)×(s·k); physically it stores
// only the blocks, as one flat slice of k row-major r×s panels back to back:
//
//	block b, local (i,j)  ↦  data[b·r·s + i·s + j]
//
// This is the compact form of quantities like Z'Z for a model term whose
// grouping factor repeats one small block once per group — k is the number
// of groups and r == s is the term's column count. Everything outside the
// diagonal blocks is a structural zero.
type BlockDiag struct {
	r, s, k int       // block rows, block cols, block count
	data    []float64 // k row-major r×s blocks, len == r*s*k
}

// NewBlockDiag builds a block-diagonal target of k r×s blocks.
// Implementation:
//   - Stage 1: validate r, s, k ≥ 1.
//   - Stage 2: nil data → allocate zeroed r·s·k storage; non-nil → adopt
//     (no copy), requiring len(data) == r·s·k exactly.
//
// Errors:
//   - ErrInvalidDimension on a non-positive block shape or count.
//   - ErrStorageSize when non-nil data has the wrong length.
//
// Complexity:
//   - Time O(r·s·k) for the nil-data zeroing, O(1) otherwise.
//
// AI-Hints:
//   - Keep blocks in the order of the grouping factor's levels; Block(b)
//     hands back block b's panel for direct filling.
func NewBlockDiag(r, s, k int, data []float64) (*BlockDiag, error) {
	if err := validateDims(r, s); err != nil {
		return nil, matrixErrorf(opNewBlockDiag, err)
	}
	if k < 1 {
		return nil, matrixErrorf(opNewBlockDiag, fmt.Errorf("k=%d: %w", k, ErrInvalidDimension))
	}
	if data == nil {
		data = make([]float64, r*s*k)
	} else if len(data) != r*s*k {
		return nil, matrixErrorf(opNewBlockDiag,
			fmt.Errorf("len(data)=%d, want %d: %w", len(data), r*s*k, ErrStorageSize))
	}

	return &BlockDiag{r: r, s: s, k: k, data: data}, nil
}

// Kind reports KindBlockDiag. Complexity: O(1).
func (b *BlockDiag) Kind() Kind { return KindBlockDiag }

// Dims returns the logical shape (r·k, s·k). Complexity: O(1).
func (b *BlockDiag) Dims() (rows, cols int) { return b.r * b.k, b.s * b.k }

// BlockDims returns the block shape and count (r, s, k). Complexity: O(1).
func (b *BlockDiag) BlockDims() (r, s, k int) { return b.r, b.s, b.k }

// Data returns the backing slice of all blocks (SHARED, not a copy).
// Complexity: O(1).
func (b *BlockDiag) Data() []float64 { return b.data }

// Block returns block i's row-major r×s panel as a sub-slice of the backing
// storage (SHARED). Returns ErrOutOfRange when i is outside [0, k).
// Complexity: O(1).
func (b *BlockDiag) Block(i int) ([]float64, error) {
	if i < 0 || i >= b.k {
		return nil, matrixErrorf(opBlock, fmt.Errorf("block %d outside [0,%d): %w", i, b.k, ErrOutOfRange))
	}
	base := i * b.r * b.s

	return b.data[base : base+b.r*b.s], nil
}

// At retrieves the logical element (i,j); positions outside the diagonal
// blocks read the structural zero. Returns ErrOutOfRange outside the logical
// shape. Complexity: O(1).
func (b *BlockDiag) At(i, j int) (float64, error) {
	rows, cols := b.Dims()
	if err := validateIndex(i, j, rows, cols); err != nil {
		return 0, matrixErrorf(opBlockAt, err)
	}
	bi, bj := i/b.r, j/b.s // enclosing block row/column
	if bi != bj {
		return 0, nil
	}

	return b.data[bi*b.r*b.s+(i%b.r)*b.s+(j%b.s)], nil
}

// Set assigns the logical element (i,j) = v inside a diagonal block.
// Off-block writes fail with ErrStructuralZero; out-of-range indices with
// ErrOutOfRange. Complexity: O(1).
func (b *BlockDiag) Set(i, j int, v float64) error {
	rows, cols := b.Dims()
	if err := validateIndex(i, j, rows, cols); err != nil {
		return matrixErrorf(opBlockSet, err)
	}
	bi, bj := i/b.r, j/b.s
	if bi != bj {
		return matrixErrorf(opBlockSet, fmt.Errorf("(%d,%d) outside diagonal blocks: %w", i, j, ErrStructuralZero))
	}
	b.data[bi*b.r*b.s+(i%b.r)*b.s+(j%b.s)] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(r·s·k).
func (b *BlockDiag) Clone() *BlockDiag {
	out := make([]float64, len(b.data))
	copy(out, b.data)

	return &BlockDiag{r: b.r, s: b.s, k: b.k, data: out}
}
