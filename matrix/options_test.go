// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/householder/matrix"
)

// TestOptionConstructors_PanicOnNonsense verifies the programmer-error policy.
func TestOptionConstructors_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithConditionLimit(0.5) })
	require.Panics(t, func() { matrix.WithConditionLimit(math.Inf(1)) })

	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.NotPanics(t, func() { matrix.WithConditionLimit(1) })
}

// TestOptions_LastWins: later options override earlier ones; nil options are skipped.
func TestOptions_LastWins(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 0}, {0, 1e-6}})

	_, err := matrix.Inverse(a, matrix.WithConditionLimit(10), matrix.WithConditionLimit(1e8))
	require.NoError(t, err)

	_, err = matrix.Inverse(a, nil, matrix.WithConditionLimit(1e8), matrix.WithConditionLimit(10))
	require.ErrorIs(t, err, matrix.ErrSingular)
}
