// SPDX-License-Identifier: MIT

package householder

import (
	"fmt"

	"github.com/katalvlaran/householder/matrix"
)

const (
	opReflector = "Reflector"
	opDecompose = "Decompose"
)

// reflectorScale is the 2 in H = I - 2·w·wᵀ.
const reflectorScale = 2.0

// Sign returns 1 for x > 0, -1 for x < 0 and 0 otherwise (including -0 and NaN).
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Reflector returns the len(v)×len(v) Householder matrix for v.
//
// Implementation:
//   - Stage 1: alpha = Sign(v[0])·‖v‖₂; u = v with u[0] += alpha.
//   - Stage 2: ‖u‖ exactly zero means v == 0 (ErrDegenerateReflection);
//     otherwise w = u/‖u‖.
//   - Stage 3: H = I - 2·w·wᵀ via Outer, Scale and Sub.
//
// Working with the unit vector w keeps H finite for any finite v: ‖u‖² is
// never formed, so entries near 1e-160 or 1e200 neither underflow nor overflow.
//
// Guarantees:
//   - H = Hᵀ and H·H = I up to round-off.
//   - v[0] ≠ 0: H·v = (-alpha, 0, …, 0).
//   - v[0] == 0, v ≠ 0: alpha = 0, u = v and H·v = -v; trailing entries are not zeroed.
//
// Errors:
//   - matrix.ErrInvalidDimensions for the empty vector.
//   - ErrDegenerateReflection for the zero vector.
//   - matrix.ErrNaNInf when ‖u‖ overflows (entries near math.MaxFloat64).
//
// Complexity:
//   - Time O(k^2), Space O(k^2) for k = len(v).
func Reflector(v matrix.Vector) (*matrix.Dense, error) {
	k := v.Len()
	if k == 0 {
		return nil, householderErrorf(opReflector, matrix.ErrInvalidDimensions)
	}

	// Stage 1: shift the leading entry away from zero (unless Sign(v[0]) == 0)
	a := v.Elements()
	alpha := Sign(a[0]) * v.Norm()
	a[0] += alpha
	u, err := matrix.FromElements(a, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, householderErrorf(opReflector, err)
	}

	// Stage 2: exact zero check; any non-zero v yields ‖u‖ > 0
	if u.Norm() == 0 {
		return nil, householderErrorf(opReflector, fmt.Errorf("‖u‖ = 0 for len %d: %w", k, ErrDegenerateReflection))
	}
	w, err := u.Normalize()
	if err != nil {
		return nil, householderErrorf(opReflector, err)
	}

	// Stage 3: H = I - 2·w·wᵀ
	wwt, err := matrix.Outer(w, w)
	if err != nil {
		return nil, householderErrorf(opReflector, err)
	}
	scaled, err := matrix.Scale(wwt, reflectorScale)
	if err != nil {
		return nil, householderErrorf(opReflector, err)
	}
	I, err := matrix.Identity(k)
	if err != nil {
		return nil, householderErrorf(opReflector, err)
	}
	H, err := matrix.Sub(I, scaled)
	if err != nil {
		return nil, householderErrorf(opReflector, err)
	}

	return H, nil
}
