// SPDX-License-Identifier: MIT
// Package matrix - constructors.
//
// Purpose:
//   - Provide intention-revealing factories (Zero, Identity, FromRows) on top of NewDense.
//
// Determinism & Policy:
//   - Factories validate shape before allocating.
//   - FromRows enforces the rectangular invariant (every row has identical length)
//     and the finite-value policy from options.go.

package matrix

import "fmt"

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// Zero returns the n×n zero matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func Zero(n int) (*Dense, error) {
	return NewDense(n, n)
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// FromRows builds a Dense from a row-major literal, copying the input.
//
// Implementation:
//   - Stage 1: reject empty input and empty first row (ErrInvalidDimensions).
//   - Stage 2: every row must have the length of row 0 (ErrBadShape).
//   - Stage 3: copy values, rejecting NaN/±Inf under the numeric policy (ErrNaNInf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromRows, denseErrorf("Set", i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// MustFromRows is FromRows that panics on error. Intended for literals in
// tests and examples where the shape is known to be valid.
func MustFromRows(rows [][]float64) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

