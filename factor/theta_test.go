// SPDX-License-Identifier: MIT
// Package factor_test contains unit tests for the θ codec and the
// box-constraint lower bounds.
package factor_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmix/factor"
)

// TestParamCount pins the triangular numbers for representative dimensions.
func TestParamCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 3},
		{3, 6},
		{10, 55},
		{0, 0},
		{-1, 0},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, factor.ParamCount(tc.n), "ParamCount(%d)", tc.n)
	}

	f, err := factor.New(10)
	require.NoError(t, err)
	require.Equal(t, 55, f.ParamCount())
}

// TestTheta_PackingOrder pins the column-major order on a hand-built 3×3
// factor: θ = [Λ00, Λ10, Λ20, Λ11, Λ21, Λ22].
func TestTheta_PackingOrder(t *testing.T) {
	t.Parallel()

	f, err := factor.New(3)
	require.NoError(t, err)
	// Encode the (row, column) position into each entry: Λ[i,j] = 10i + j + 1.
	entries := [][2]int{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {2, 1}, {2, 2}}
	for _, ij := range entries {
		require.NoError(t, f.Set(ij[0], ij[1], float64(10*ij[0]+ij[1]+1)))
	}

	require.Equal(t, []float64{1, 11, 21, 12, 22, 23}, f.Theta())
}

// TestTheta_RoundTrip verifies both directions of the bijection exactly.
func TestTheta_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			f, err := factor.New(n)
			require.NoError(t, err)

			// Populate the lower triangle with distinct values.
			val := 0.5
			for j := 0; j < n; j++ {
				for i := j; i < n; i++ {
					require.NoError(t, f.Set(i, j, val))
					val += 1.25
				}
			}

			// Λ → θ → Λ reproduces the factor exactly.
			theta := f.Theta()
			g, err := factor.New(n)
			require.NoError(t, err)
			require.NoError(t, g.SetTheta(theta))
			require.True(t, f.Equal(g))

			// θ → Λ → θ reproduces the vector exactly.
			require.Equal(t, theta, g.Theta())
		})
	}
}

// TestSetTheta_LengthMismatch checks the error and that Λ stays untouched.
func TestSetTheta_LengthMismatch(t *testing.T) {
	t.Parallel()

	f, err := factor.New(3)
	require.NoError(t, err)
	require.NoError(t, f.Set(2, 0, 9))
	before := f.Theta()

	err = f.SetTheta([]float64{1, 2, 3, 4}) // want 6
	require.ErrorIs(t, err, factor.ErrThetaLength)
	require.Equal(t, before, f.Theta(), "failed SetTheta must not mutate")

	require.ErrorIs(t, f.SetTheta(nil), factor.ErrThetaLength)
}

// TestSetTheta_NumericPolicy checks the pre-write NaN/Inf scan.
func TestSetTheta_NumericPolicy(t *testing.T) {
	t.Parallel()

	f, err := factor.New(2)
	require.NoError(t, err)
	before := f.Theta()

	err = f.SetTheta([]float64{1, math.NaN(), 2})
	require.ErrorIs(t, err, factor.ErrNaNInf)
	require.Equal(t, before, f.Theta(), "failed SetTheta must not mutate")

	relaxed, err := factor.New(2, factor.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, relaxed.SetTheta([]float64{1, math.Inf(1), 2}))
	v, err := relaxed.At(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestAppendTheta_Reuse checks the append idiom against a prefilled buffer.
func TestAppendTheta_Reuse(t *testing.T) {
	t.Parallel()

	f, err := factor.New(2)
	require.NoError(t, err)
	require.NoError(t, f.SetTheta([]float64{2, 3, 4}))

	buf := []float64{-1}
	buf = f.AppendTheta(buf)
	require.Equal(t, []float64{-1, 2, 3, 4}, buf)
}

// TestLowerBounds pins the exact vectors for small dimensions.
func TestLowerBounds(t *testing.T) {
	t.Parallel()

	ninf := math.Inf(-1)

	t.Run("n=1", func(t *testing.T) {
		f, err := factor.New(1)
		require.NoError(t, err)
		require.Equal(t, []float64{0}, f.LowerBounds())
	})

	t.Run("n=2", func(t *testing.T) {
		// Packing order is [(0,0), (1,0), (1,1)]: bounds [0, −Inf, 0].
		f, err := factor.New(2)
		require.NoError(t, err)
		require.Equal(t, []float64{0, ninf, 0}, f.LowerBounds())
	})

	t.Run("n=3", func(t *testing.T) {
		f, err := factor.New(3)
		require.NoError(t, err)
		got := f.LowerBounds()
		require.Len(t, got, 6)
		// Diagonal positions of the packing are 0, 3 and 5.
		require.Equal(t, []float64{0, ninf, ninf, 0, ninf, 0}, got)
	})
}

// TestLowerBounds_MatchPacking cross-checks bounds against the packing for a
// larger dimension: position k is 0 iff θ[k] packs a diagonal entry.
func TestLowerBounds_MatchPacking(t *testing.T) {
	t.Parallel()

	const n = 6
	f, err := factor.New(n)
	require.NoError(t, err)

	// Mark diagonal entries with 1 (identity already does) and fill the
	// off-diagonal with a sentinel distinguishing them.
	for j := 0; j < n; j++ {
		for i := j + 1; i < n; i++ {
			require.NoError(t, f.Set(i, j, -1))
		}
	}

	theta := f.Theta()
	bounds := f.LowerBounds()
	require.Len(t, bounds, len(theta))
	for k := range theta {
		if theta[k] == 1 { // diagonal marker
			require.Equal(t, 0.0, bounds[k], "position %d", k)
		} else {
			require.True(t, math.IsInf(bounds[k], -1), "position %d", k)
		}
	}
}

// TestAppendLowerBounds_Reuse checks appending after existing content, the
// multi-term setup pattern.
func TestAppendLowerBounds_Reuse(t *testing.T) {
	t.Parallel()

	scalar := factor.Scalar()
	vector, err := factor.New(2)
	require.NoError(t, err)

	// One scalar term followed by one 2-column term, one shared buffer.
	bounds := scalar.AppendLowerBounds(nil)
	bounds = vector.AppendLowerBounds(bounds)
	require.Equal(t, []float64{0, 0, math.Inf(-1), 0}, bounds)
}
