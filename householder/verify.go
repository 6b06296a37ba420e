// SPDX-License-Identifier: MIT

package householder

import "github.com/katalvlaran/householder/matrix"

const opVerify = "Verify"

// Check reports the structural properties of a decomposition.
type Check struct {
	UpperTriangular bool // entries of R below the diagonal within eps
	Orthogonal      bool // QᵀQ within eps of I
}

// Verify checks that R is upper-triangular and Q is orthogonal, both within
// the absolute tolerance eps (typically matrix.DefaultEpsilon).
// Panics when eps is negative or not finite (see matrix.WithEpsilon).
// Complexity: O(n^3) for QᵀQ.
func (d *Decomposition) Verify(eps float64) (Check, error) {
	var c Check
	withEps := matrix.WithEpsilon(eps)
	if d == nil {
		return c, householderErrorf(opVerify, matrix.ErrNilMatrix)
	}

	upper, err := matrix.IsUpperTriangular(d.R, withEps)
	if err != nil {
		return c, householderErrorf(opVerify, err)
	}
	c.UpperTriangular = upper

	qt, err := matrix.Transpose(d.Q)
	if err != nil {
		return c, householderErrorf(opVerify, err)
	}
	qtq, err := matrix.Mul(qt, d.Q)
	if err != nil {
		return c, householderErrorf(opVerify, err)
	}
	I, err := matrix.Identity(qtq.Rows())
	if err != nil {
		return c, householderErrorf(opVerify, err)
	}
	if c.Orthogonal, err = matrix.AllClose(qtq, I, 0, eps); err != nil {
		return c, householderErrorf(opVerify, err)
	}

	return c, nil
}
