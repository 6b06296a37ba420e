// SPDX-License-Identifier: MIT

// Package residual measures how far a decomposition and a solution are from
// their exact targets.
//
//   - Decomposition(A, Q, R): the smallest absolute row sum of Q·R - A.
//   - Solution(A, x, b): the Euclidean norm ‖A·x - b‖₂.
//
// Decomposition reports the minimum over rows, not a worst-case
// norm; it is the best-row residual.
package residual

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/householder/matrix"
)

const (
	opDecomposition = "residual.Decomposition"
	opSolution      = "residual.Solution"
)

// Decomposition returns min over rows i of Σ_j |(Q·R - A)[i,j]|.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3) for the product, Space O(n^2).
func Decomposition(a, q, r *matrix.Dense) (float64, error) {
	qr, err := matrix.Mul(q, r)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDecomposition, err)
	}
	diff, err := matrix.Sub(qr, a)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDecomposition, err)
	}

	sums := make([]float64, diff.Rows())
	diff.Do(func(i, _ int, v float64) bool {
		sums[i] += math.Abs(v)
		return true
	})

	return floats.Min(sums), nil
}

// Solution returns ‖A·x - b‖₂.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Solution(a *matrix.Dense, x, b matrix.Vector) (float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opSolution, err)
	}
	d, err := ax.Sub(b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opSolution, err)
	}

	return floats.Norm(d.Elements(), 2), nil
}
