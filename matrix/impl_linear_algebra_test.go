// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the dense kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/householder/matrix"
)

func TestAddSub_Succeeds(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{0.5, -1}, {2, 2}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.5, 1}, {5, 6}}, sum.ToRows())

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5, 3}, {1, 2}}, diff.ToRows())

	// inputs untouched
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1}, {2}})

	_, err := matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Succeeds(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, c.ToRows())
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2, 3}})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	a := randDense(t, 5, 5, 1337)
	I, err := matrix.Identity(5)
	require.NoError(t, err)

	left, err := matrix.Mul(I, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, I)
	require.NoError(t, err)
	requireClose(t, a, left, 0)
	requireClose(t, a, right, 0)
}

func TestTranspose_Involution_NoMutation(t *testing.T) {
	a := randDense(t, 3, 5, 42)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 5, at.Rows())
	require.Equal(t, 3, at.Cols())

	v, _ := a.At(1, 4)
	w, _ := at.At(4, 1)
	require.Equal(t, v, w)

	att, err := matrix.Transpose(at)
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), att.ToRows())
}

func TestScale(t *testing.T) {
	a := mustRows(t, [][]float64{{1, -2}, {0, 4}})
	s, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-0.5, 1}, {0, -2}}, s.ToRows())

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, mustVec(t, 1, -1))
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y.Elements())

	_, err = matrix.MatVec(a, matrix.Ones(3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestOuter_MatchesColumnTimesRow(t *testing.T) {
	u := mustVec(t, 1, 2, 3)
	v := mustVec(t, 4, 5)

	got, err := matrix.Outer(u, v)
	require.NoError(t, err)

	col, err := u.AsColumn()
	require.NoError(t, err)
	row, err := v.AsRow()
	require.NoError(t, err)
	want, err := matrix.Mul(col, row)
	require.NoError(t, err)
	require.Equal(t, want.ToRows(), got.ToRows())

	_, err = matrix.Outer(matrix.Vector{}, v)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
