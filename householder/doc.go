// Package householder builds Householder reflectors and uses them to compute
// the QR decomposition of a square matrix.
//
// Reflector(v) returns H = I - 2·u·uᵀ/‖u‖² with u = v + Sign(v[0])·‖v‖·e₁, the
// symmetric orthogonal matrix that maps v onto a multiple of e₁. Sign(0) is 0,
// so a vector with a zero leading entry is reflected to -v instead. H is
// formed as I - 2·w·wᵀ from the unit vector w = u/‖u‖, so it stays finite for
// very small or very large inputs.
//
// Decompose(A) applies one reflector per column, each embedded into an n×n
// identity, and returns Q (the product of the reflectors in construction
// order), R (the reduced matrix) and the reflectors themselves:
//
//	d, err := householder.Decompose(a)
//	if err != nil {
//		return err
//	}
//	// d.Q·d.R ≈ a, d.Qᵀ·d.Q ≈ I, d.R upper-triangular
//
// A zero sub-column has no reflector; Decompose substitutes the identity for
// that step and records the column in Decomposition.Degenerate.
package householder
