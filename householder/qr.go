// SPDX-License-Identifier: MIT

package householder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/householder/matrix"
)

// Decomposition is the result of Decompose.
type Decomposition struct {
	// Q is the product H₀·H₁·…·H_last of the embedded reflectors.
	Q *matrix.Dense
	// R is the matrix left after applying every reflector to A.
	R *matrix.Dense
	// Reflectors holds the full-size n×n reflectors in construction order.
	Reflectors []*matrix.Dense
	// Degenerate lists the columns whose sub-column was zero and whose
	// reflector was replaced by the identity.
	Degenerate []int
}

// Decompose computes A = Q·R by successive Householder reflections.
//
// Implementation:
//   - Stage 1: validate A (non-nil, square); current = A.
//   - Stage 2: for k = 0..n-1: v = SubColumn(current, k); stop once len(v) < 2.
//     Build Reflector(v) (identity on ErrDegenerateReflection), embed it at (k,k)
//     into I_n and left-multiply: current = H·current.
//   - Stage 3: Q = H₀·H₁·…·H_last (I_n when no reflector was built), R = current.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(n^4) with full-size embedding, Space O(n^3) for the kept reflectors.
func Decompose(a *matrix.Dense) (*Decomposition, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, householderErrorf(opDecompose, err)
	}
	n := a.Rows()

	var (
		current    = a
		reflectors = make([]*matrix.Dense, 0, n-1)
		degenerate []int
		v          matrix.Vector
		hSub, h    *matrix.Dense
		err        error
	)
	for k := 0; k < n; k++ {
		if v, err = matrix.SubColumn(current, k); err != nil {
			return nil, householderErrorf(opDecompose, err)
		}
		if v.Len() < 2 {
			break
		}

		hSub, err = Reflector(v)
		if errors.Is(err, ErrDegenerateReflection) {
			degenerate = append(degenerate, k)
			hSub, err = matrix.Identity(v.Len())
		}
		if err != nil {
			return nil, householderErrorf(opDecompose, fmt.Errorf("column %d: %w", k, err))
		}

		if h, err = matrix.Embed(hSub, n, k); err != nil {
			return nil, householderErrorf(opDecompose, err)
		}
		if current, err = matrix.Mul(h, current); err != nil {
			return nil, householderErrorf(opDecompose, err)
		}
		reflectors = append(reflectors, h)
	}

	q, err := product(n, reflectors)
	if err != nil {
		return nil, householderErrorf(opDecompose, err)
	}

	return &Decomposition{Q: q, R: current, Reflectors: reflectors, Degenerate: degenerate}, nil
}

// QR is Decompose returning only Q and R.
func QR(a *matrix.Dense) (q, r *matrix.Dense, err error) {
	d, err := Decompose(a)
	if err != nil {
		return nil, nil, err
	}

	return d.Q, d.R, nil
}

// product folds hs left to right; the empty product is I_n.
func product(n int, hs []*matrix.Dense) (*matrix.Dense, error) {
	if len(hs) == 0 {
		return matrix.Identity(n)
	}
	acc := hs[0]
	var err error
	for _, h := range hs[1:] {
		if acc, err = matrix.Mul(acc, h); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
