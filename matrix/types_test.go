// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Kind tag and Target dispatch.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmix/matrix"
)

// TestKind_String pins the diagnostic names, including the invalid zero Kind.
func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind matrix.Kind
		want string
	}{
		{matrix.KindDense, "Dense"},
		{matrix.KindDiagonal, "Diagonal"},
		{matrix.KindBlockDiag, "BlockDiag"},
		{matrix.KindCSC, "CSC"},
		{matrix.Kind(0), "Kind(0)"},
		{matrix.Kind(99), "Kind(99)"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, tc.kind.String())
	}
}

// TestTarget_Dispatch checks each representation reports its own tag and
// a consistent logical shape through the interface.
func TestTarget_Dispatch(t *testing.T) {
	t.Parallel()

	dense, err := matrix.NewDense(2, 3, nil)
	require.NoError(t, err)
	diag, err := matrix.NewDiagonal([]float64{1, 2})
	require.NoError(t, err)
	blk, err := matrix.NewBlockDiag(2, 3, 4, nil)
	require.NoError(t, err)
	csc, err := matrix.NewCSC(2, 2, []int{0, 0, 0}, nil, nil)
	require.NoError(t, err)

	tests := []struct {
		target matrix.Target
		kind   matrix.Kind
		r, c   int
	}{
		{dense, matrix.KindDense, 2, 3},
		{diag, matrix.KindDiagonal, 2, 2},
		{blk, matrix.KindBlockDiag, 8, 12},
		{csc, matrix.KindCSC, 2, 2},
	}

	for _, tc := range tests {
		require.Equal(t, tc.kind, tc.target.Kind())
		r, c := tc.target.Dims()
		require.Equal(t, tc.r, r)
		require.Equal(t, tc.c, c)
	}
}
