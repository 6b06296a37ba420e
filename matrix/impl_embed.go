// SPDX-License-Identifier: MIT

// Package matrix - block embedding and column extraction.
//
// Purpose:
//   - Embed places a k×k block into an n×n identity at a diagonal offset.
//   - Column/SubColumn extract (trailing parts of) a column as a Vector.
//
// Determinism:
//   - Direct index placement into a preallocated buffer; no padding passes.
package matrix

import "fmt"

// Embed returns the n×n identity with the k×k block starting at
// (offset, offset) replaced by h.
//
// Implementation:
//   - Stage 1: validate h (non-nil, square) and the placement window.
//   - Stage 2: allocate I_n and overwrite the window row by row.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (h), ErrInvalidDimensions (n <= 0),
//     ErrOutOfRange (offset < 0 or offset+k > n).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Embed(h *Dense, n, offset int) (*Dense, error) {
	if err := ValidateSquareNonNil(h); err != nil {
		return nil, matrixErrorf(opEmbed, err)
	}
	k := h.r
	if offset < 0 || offset+k > n {
		return nil, matrixErrorf(opEmbed, fmt.Errorf("block %dx%d at offset %d in %dx%d: %w", k, k, offset, n, n, ErrOutOfRange))
	}
	res, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opEmbed, err)
	}

	var i int
	for i = 0; i < k; i++ {
		dst := (offset+i)*n + offset
		copy(res.data[dst:dst+k], h.data[i*k:(i+1)*k])
	}

	return res, nil
}

// Column returns column j of m as a Vector.
// Errors: ErrNilMatrix, ErrOutOfRange.
func Column(m *Dense, j int) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return Vector{}, matrixErrorf(opColumn, err)
	}
	if j < 0 || j >= m.c {
		return Vector{}, matrixErrorf(opColumn, denseErrorf(opColumn, 0, j, ErrOutOfRange))
	}

	return vectorOf(m.column(j, 0)), nil
}

// SubColumn returns rows j..Rows()-1 of column j, the part of the column
// on and below the diagonal.
// Errors: ErrNilMatrix, ErrOutOfRange (j >= Rows() or j >= Cols()).
func SubColumn(m *Dense, j int) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return Vector{}, matrixErrorf(opSubColumn, err)
	}
	if j < 0 || j >= m.r || j >= m.c {
		return Vector{}, matrixErrorf(opSubColumn, denseErrorf(opSubColumn, j, j, ErrOutOfRange))
	}

	return vectorOf(m.column(j, j)), nil
}

// column copies m[from:, j]. Indices are assumed valid.
func (m *Dense) column(j, from int) []float64 {
	out := make([]float64, m.r-from)
	for i := from; i < m.r; i++ {
		out[i-from] = m.data[i*m.c+j]
	}

	return out
}
