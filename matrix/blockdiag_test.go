// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the BlockDiag representation.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmix/matrix"
)

// TestNewBlockDiag_Validation covers shape/count/storage validation.
func TestNewBlockDiag_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, s, k int
		data    []float64
		wantErr error
	}{
		{"zero r", 0, 2, 1, nil, matrix.ErrInvalidDimension},
		{"zero s", 2, 0, 1, nil, matrix.ErrInvalidDimension},
		{"zero k", 2, 2, 0, nil, matrix.ErrInvalidDimension},
		{"alloc", 2, 2, 3, nil, nil},
		{"adopt exact", 2, 2, 1, []float64{1, 2, 3, 4}, nil},
		{"adopt wrong len", 2, 2, 2, []float64{1, 2, 3, 4}, matrix.ErrStorageSize},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b, err := matrix.NewBlockDiag(tc.r, tc.s, tc.k, tc.data)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, b)
				return
			}
			require.NoError(t, err)
			require.Equal(t, matrix.KindBlockDiag, b.Kind())
			r, s, k := b.BlockDims()
			require.Equal(t, [3]int{tc.r, tc.s, tc.k}, [3]int{r, s, k})
			rows, cols := b.Dims()
			require.Equal(t, tc.r*tc.k, rows)
			require.Equal(t, tc.s*tc.k, cols)
		})
	}
}

// TestBlockDiag_Layout pins the block-major layout: block b, local (i,j) at
// data[b·r·s + i·s + j], checked through the global At mapping.
func TestBlockDiag_Layout(t *testing.T) {
	t.Parallel()

	// Two 2×2 blocks: [1 2; 3 4] and [5 6; 7 8].
	b, err := matrix.NewBlockDiag(2, 2, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	// Block 0 occupies global rows/cols 0..1.
	v, err := b.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	// Block 1 occupies global rows/cols 2..3.
	v, err = b.At(2, 3)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	v, err = b.At(3, 2)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	// Off-block entries are structural zeros.
	v, err = b.At(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
	require.ErrorIs(t, b.Set(0, 3, 1), matrix.ErrStructuralZero)

	// Bounds on the logical (r·k)×(s·k) shape.
	_, err = b.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// In-block write lands in the flat storage.
	require.NoError(t, b.Set(3, 3, -8))
	require.Equal(t, -8.0, b.Data()[7])
}

// TestBlockDiag_Block covers the shared per-block panel accessor.
func TestBlockDiag_Block(t *testing.T) {
	t.Parallel()

	b, err := matrix.NewBlockDiag(1, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	_, err = b.Block(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = b.Block(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	p, err := b.Block(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, p)

	// The panel is a shared window into the backing slice.
	p[0] = 30
	v, err := b.At(1, 2) // block 1, local (0,0)
	require.NoError(t, err)
	require.Equal(t, 30.0, v)
}

// TestBlockDiag_Clone checks independence.
func TestBlockDiag_Clone(t *testing.T) {
	t.Parallel()

	b, err := matrix.NewBlockDiag(1, 1, 2, []float64{1, 2})
	require.NoError(t, err)

	c := b.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, err := b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
