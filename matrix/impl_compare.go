// SPDX-License-Identifier: MIT

// Package matrix - tolerance comparisons and structural checks.
//
// Purpose:
//   - AllClose: element-wise closeness for invariance checks (Q·R ≈ A, QᵀQ ≈ I).
//   - IsUpperTriangular / IsLowerTriangular: structural diagnostics on R.
package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var x, y float64
	for idx := range a.data {
		x, y = a.data[idx], b.data[idx]
		if x == y { // covers equal infinities
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}

// IsUpperTriangular reports whether every entry strictly below the diagonal
// has magnitude ≤ eps (DefaultEpsilon unless WithEpsilon is given).
// Rectangular input is allowed.
// Errors: ErrNilMatrix.
func IsUpperTriangular(m *Dense, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsUpperTriangular", err)
	}
	eps := gatherOptions(opts...).eps
	var i, j int
	for i = 1; i < m.r; i++ {
		for j = 0; j < i && j < m.c; j++ {
			if !(math.Abs(m.data[i*m.c+j]) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsLowerTriangular is the mirror of IsUpperTriangular for entries strictly
// above the diagonal.
func IsLowerTriangular(m *Dense, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsLowerTriangular", err)
	}
	eps := gatherOptions(opts...).eps
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if !(math.Abs(m.data[i*m.c+j]) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
