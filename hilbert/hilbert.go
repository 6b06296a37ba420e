// SPDX-License-Identifier: MIT

// Package hilbert generates Hilbert matrices and runs the QR solve study on
// them: for each order n, solve H·x = 1 through Householder QR and record the
// decomposition and solution residuals.
//
// Hilbert matrices are the textbook ill-conditioned family (cond(H₁₀) ≈ 1e13),
// so residuals grow with n and, past roughly n = 12, the triangular factor can
// no longer be inverted within matrix.DefaultConditionLimit. Sweep treats that
// matrix.ErrSingular as an expected per-size outcome.
package hilbert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/householder/matrix"
)

// ErrInvalidRange is returned by Sweep for from < 1 or to < from.
var ErrInvalidRange = errors.New("hilbert: invalid range")

const (
	opGenerate = "hilbert.Generate"
	opSolve    = "hilbert.Solve"
	opSweep    = "hilbert.Sweep"
)

// Generate returns the n×n Hilbert matrix, H[i,j] = 1/(i+j+1).
// Errors: matrix.ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2).
func Generate(n int) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", opGenerate, n, matrix.ErrInvalidDimensions)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1 / float64(i+j+1)
		}
	}

	return matrix.FromRows(rows)
}
