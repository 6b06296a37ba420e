// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/householder/householder"
	"github.com/katalvlaran/householder/linsolve"
	"github.com/katalvlaran/householder/matrix"
)

func TestSolve_Known(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{2, 1}, {1, 3}})
	b, err := matrix.FromElements([]float64{3, 5})
	require.NoError(t, err)

	for name, opts := range map[string][]linsolve.Option{
		"inverse Q":   nil,
		"transpose Q": {linsolve.WithTransposeQ()},
	} {
		t.Run(name, func(t *testing.T) {
			x, err := linsolve.Solve(a, b, opts...)
			require.NoError(t, err)
			require.InDeltaSlice(t, []float64{0.8, 1.4}, x.Elements(), 1e-12)
		})
	}
}

// TestSolve_ResidualSmall: ‖A·x - b‖ stays tiny for a well-conditioned system,
// and both Q strategies agree.
func TestSolve_ResidualSmall(t *testing.T) {
	a := matrix.MustFromRows([][]float64{
		{4, -1, 0, 1},
		{-1, 4, -1, 0},
		{0, -1, 4, -1},
		{1, 0, -1, 4},
	})
	b := matrix.Ones(4)

	x, err := linsolve.Solve(a, b)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	r, err := ax.Sub(b)
	require.NoError(t, err)
	require.Less(t, r.Norm(), 1e-12)

	xt, err := linsolve.Solve(a, b, linsolve.WithTransposeQ())
	require.NoError(t, err)
	require.InDeltaSlice(t, x.Elements(), xt.Elements(), 1e-12)
}

func TestSolveDecomposition_Reuse(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{3, 1}, {1, 2}})
	d, err := householder.Decompose(a)
	require.NoError(t, err)

	for _, rhs := range [][]float64{{1, 0}, {0, 1}, {4, 3}} {
		b, err := matrix.FromElements(rhs)
		require.NoError(t, err)
		x, err := linsolve.SolveDecomposition(d, b)
		require.NoError(t, err)
		ax, err := matrix.MatVec(a, x)
		require.NoError(t, err)
		require.InDeltaSlice(t, rhs, ax.Elements(), 1e-12)
	}
}

// TestSolve_ExtremeScale: scaling A and b by the same s leaves x unchanged,
// including scales whose squares leave the float64 range.
func TestSolve_ExtremeScale(t *testing.T) {
	for _, s := range []float64{1e-160, 1e200} {
		a := matrix.MustFromRows([][]float64{{1 * s, 2 * s}, {3 * s, 4 * s}})
		b, err := matrix.FromElements([]float64{s, s})
		require.NoError(t, err)

		x, err := linsolve.Solve(a, b)
		require.NoError(t, err, "scale %g", s)
		require.InDeltaSlice(t, []float64{-1, 1}, x.Elements(), 1e-9, "scale %g", s)
	}
}

func TestSolve_Errors(t *testing.T) {
	a := matrix.MustFromRows([][]float64{{1, 2}, {2, 4}})

	_, err := linsolve.Solve(a, matrix.Ones(2))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = linsolve.Solve(a, matrix.Ones(3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = linsolve.Solve(matrix.MustFromRows([][]float64{{1, 2}}), matrix.Ones(1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = linsolve.SolveDecomposition(nil, matrix.Ones(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	ill := matrix.MustFromRows([][]float64{{1, 0}, {0, 1e-8}})
	_, err = linsolve.Solve(ill, matrix.Ones(2), linsolve.WithConditionLimit(1e4))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = linsolve.Solve(ill, matrix.Ones(2))
	require.NoError(t, err)
}

func TestWithConditionLimit_Panics(t *testing.T) {
	require.Panics(t, func() { linsolve.WithConditionLimit(0) })
}
