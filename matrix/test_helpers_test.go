// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and assertions shared by the kernel tests.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/householder/matrix"
)

// tol is the absolute tolerance used for floating-point comparisons in tests.
const tol = 1e-12

// mustRows builds a *Dense from a literal or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustVec builds a Vector from values or fails the test.
func mustVec(t testing.TB, vals ...float64) matrix.Vector {
	t.Helper()
	v, err := matrix.FromElements(vals)
	require.NoError(t, err)

	return v
}

// randDense fills an r×c matrix with deterministic values in [-1, 1).
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return mustRows(t, rows)
}

// requireClose asserts AllClose(got, want) with absolute tolerance atol.
func requireClose(t testing.TB, want, got *matrix.Dense, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant:\n%s\ngot:\n%s", atol, want, got)
}
