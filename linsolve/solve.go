// SPDX-License-Identifier: MIT

// Package linsolve solves A·x = b through the Householder QR decomposition of A:
// x = R⁻¹·Q⁻¹·b.
//
// Errors from the matrix package pass through wrapped, so callers match
// matrix.ErrSingular and matrix.ErrDimensionMismatch with errors.Is.
package linsolve

import (
	"fmt"

	"github.com/katalvlaran/householder/householder"
	"github.com/katalvlaran/householder/matrix"
)

const (
	opSolve              = "Solve"
	opSolveDecomposition = "SolveDecomposition"
)

// Solve decomposes a and solves a·x = b.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (from the decomposition).
//   - matrix.ErrDimensionMismatch when b.Len() != a.Rows().
//   - matrix.ErrSingular when R (or Q) cannot be inverted.
func Solve(a *matrix.Dense, b matrix.Vector, opts ...Option) (matrix.Vector, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	d, err := householder.Decompose(a)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return SolveDecomposition(d, b, opts...)
}

// SolveDecomposition solves Q·R·x = b for an existing decomposition.
//
// Implementation:
//   - Stage 1: qInv = Q⁻¹ (or Qᵀ with WithTransposeQ); rInv = R⁻¹.
//   - Stage 2: x = (rInv·qInv)·b.
func SolveDecomposition(d *householder.Decomposition, b matrix.Vector, opts ...Option) (matrix.Vector, error) {
	o := gatherOptions(opts...)
	if d == nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolveDecomposition, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquareNonNil(d.R); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: R: %w", opSolveDecomposition, err)
	}
	if err := matrix.ValidateVecLen(b, d.R.Rows()); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolveDecomposition, err)
	}

	var (
		qInv, rInv *matrix.Dense
		err        error
	)
	if o.transposeQ {
		qInv, err = matrix.Transpose(d.Q)
	} else {
		qInv, err = matrix.Inverse(d.Q, o.inverse...)
	}
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: Q: %w", opSolveDecomposition, err)
	}
	if rInv, err = matrix.Inverse(d.R, o.inverse...); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: R: %w", opSolveDecomposition, err)
	}

	aInv, err := matrix.Mul(rInv, qInv)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolveDecomposition, err)
	}
	x, err := matrix.MatVec(aInv, b)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolveDecomposition, err)
	}

	return x, nil
}
