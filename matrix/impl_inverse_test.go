// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/householder/matrix"
)

func TestInverse_Known2x2(t *testing.T) {
	a := mustRows(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), inv, 1e-12)
}

func TestInverse_RoundTrip(t *testing.T) {
	a := randDense(t, 6, 6, 7)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	I, err := matrix.Identity(6)
	require.NoError(t, err)
	requireClose(t, I, prod, 1e-9)
}

func TestInverse_Singular(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	z, err := matrix.Zero(3)
	require.NoError(t, err)
	_, err = matrix.Inverse(z)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_ConditionLimit: a well-posed but ill-conditioned matrix passes the
// default limit and fails a tighter one.
func TestInverse_ConditionLimit(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 0}, {0, 1e-6}})

	cond, err := matrix.Cond(a)
	require.NoError(t, err)
	require.InDelta(t, 1e6, cond, 1)

	_, err = matrix.Inverse(a)
	require.NoError(t, err)

	_, err = matrix.Inverse(a, matrix.WithConditionLimit(1e3))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Validation(t *testing.T) {
	_, err := matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Cond(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestCond_Singular(t *testing.T) {
	cond, err := matrix.Cond(mustRows(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	require.True(t, math.IsInf(cond, 1) || cond > matrix.DefaultConditionLimit)
}
