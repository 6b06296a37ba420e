// SPDX-License-Identifier: MIT

// Package matrix - inverse and condition estimate.
//
// Purpose:
//   - Inverse(a) via LU with partial pivoting (gonum mat.LU), refusing to hand
//     out an inverse whose condition estimate makes it meaningless.
//   - Cond(a): the LU-based 1-norm condition estimate.
//
// Contract:
//   - ErrSingular when the estimate is +Inf/NaN, exceeds the configured limit
//     (WithConditionLimit, default DefaultConditionLimit), or gonum reports a
//     mat.Condition error. Inverse never returns NaN entries.
package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// toGonum copies m into a gonum dense matrix. The copy keeps *Dense immutable
// even though gonum routines may write through their receivers.
func (m *Dense) toGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// fromGonum copies g into a fresh *Dense, rejecting non-finite entries.
func fromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = g.At(i, j)
			if isNonFinite(v) {
				return nil, denseErrorf(ctxAt, i, j, ErrNaNInf)
			}
			res.data[i*c+j] = v
		}
	}

	return res, nil
}

// factorize validates a and returns its LU factorization together with the
// 1-norm condition estimate.
func factorize(a *Dense, tag string) (*mat.LU, float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, 0, matrixErrorf(tag, err)
	}
	var lu mat.LU
	lu.Factorize(a.toGonum())

	return &lu, lu.Cond(), nil
}

// Cond returns the LU-based estimate of the 1-norm condition number of a.
// A singular matrix yields +Inf.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3).
func Cond(a *Dense) (float64, error) {
	_, cond, err := factorize(a, opCond)
	if err != nil {
		return 0, err
	}

	return cond, nil
}

// Inverse returns A⁻¹.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); factorize P·A = L·U once.
//   - Stage 2: reject when the condition estimate is not finite or exceeds the limit.
//   - Stage 3: solve A·X = I against the factorization; map mat.Condition to ErrSingular.
//   - Stage 4: copy back, rejecting any non-finite entry as ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(a *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	lu, cond, err := factorize(a, opInverse)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(cond) || math.IsInf(cond, 0) || cond > o.conditionLimit {
		return nil, matrixErrorf(opInverse, fmt.Errorf("condition estimate %g exceeds %g: %w", cond, o.conditionLimit, ErrSingular))
	}

	n := a.r
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1.0
	}
	var inv mat.Dense
	if err = lu.SolveTo(&inv, false, mat.NewDiagDense(n, ones)); err != nil {
		var c mat.Condition
		if errors.As(err, &c) {
			return nil, matrixErrorf(opInverse, fmt.Errorf("%v: %w", err, ErrSingular))
		}

		return nil, matrixErrorf(opInverse, err)
	}

	res, err := fromGonum(&inv)
	if err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	return res, nil
}
