// SPDX-License-Identifier: MIT

package scale_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlmix/factor"
	"github.com/katalvlaran/lvlmix/matrix"
)

// matTol is the comparison tolerance against explicitly materialized
// reference products.
const matTol = 1e-12

// newFactor builds an l-dimensional factor from packed parameters.
func newFactor(t *testing.T, l int, theta []float64) *factor.Triangular {
	t.Helper()
	f, err := factor.New(l)
	require.NoError(t, err)
	require.NoError(t, f.SetTheta(theta))
	return f
}

// randFactor builds an l-dimensional factor with seeded normal entries.
func randFactor(t *testing.T, rng *rand.Rand, l int) *factor.Triangular {
	t.Helper()
	return newFactor(t, l, randSlice(rng, factor.ParamCount(l)))
}

// randSlice returns n seeded normal draws.
func randSlice(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = rng.NormFloat64()
	}
	return out
}

// expansion materializes the n×n block-diagonal expansion diag(Λ, …, Λ)
// that the kernels keep implicit. n must be a multiple of f.Dim().
func expansion(t *testing.T, f *factor.Triangular, n int) *mat.Dense {
	t.Helper()
	l := f.Dim()
	require.Zero(t, n%l, "expansion size must tile the factor")
	out := mat.NewDense(n, n, nil)
	var b, i, j int
	for b = 0; b < n/l; b++ {
		for i = 0; i < l; i++ {
			for j = 0; j <= i; j++ {
				v, err := f.At(i, j)
				require.NoError(t, err)
				out.Set(b*l+i, b*l+j, v)
			}
		}
	}
	return out
}

// mulLeft returns the explicit reference product expansion(Λ)' · M.
func mulLeft(t *testing.T, f *factor.Triangular, m *mat.Dense) *mat.Dense {
	t.Helper()
	r, c := m.Dims()
	e := expansion(t, f, r)
	out := mat.NewDense(r, c, nil)
	out.Mul(e.T(), m)
	return out
}

// mulRight returns the explicit reference product M · expansion(Λ).
func mulRight(t *testing.T, m *mat.Dense, f *factor.Triangular) *mat.Dense {
	t.Helper()
	r, c := m.Dims()
	e := expansion(t, f, c)
	out := mat.NewDense(r, c, nil)
	out.Mul(m, e)
	return out
}

// denseAsMat copies a Dense target into a gonum matrix for reference math.
func denseAsMat(t *testing.T, d *matrix.Dense) *mat.Dense {
	t.Helper()
	rows, cols := d.Dims()
	out := mat.NewDense(rows, cols, nil)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			out.Set(i, j, v)
		}
	}
	return out
}

// blockAsMat copies a BlockDiag target into a gonum matrix, zeros included.
func blockAsMat(t *testing.T, b *matrix.BlockDiag) *mat.Dense {
	t.Helper()
	rows, cols := b.Dims()
	out := mat.NewDense(rows, cols, nil)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := b.At(i, j)
			require.NoError(t, err)
			out.Set(i, j, v)
		}
	}
	return out
}

// cscAsMat copies a CSC target into a gonum matrix, zeros included.
func cscAsMat(t *testing.T, c *matrix.CSC) *mat.Dense {
	t.Helper()
	rows, cols := c.Dims()
	out := mat.NewDense(rows, cols, nil)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := c.At(i, j)
			require.NoError(t, err)
			out.Set(i, j, v)
		}
	}
	return out
}

// requireMatClose asserts element-wise agreement within matTol.
func requireMatClose(t *testing.T, want, got mat.Matrix) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr, "row count")
	require.Equal(t, wc, gc, "col count")
	require.True(t, mat.EqualApprox(want, got, matTol),
		"matrices differ beyond %g:\nwant:\n%v\ngot:\n%v",
		matTol, mat.Formatted(want), mat.Formatted(got))
}
