// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vector is an immutable ordered sequence of float64 values.
// The zero value is the empty vector.
//
// A Vector has no orientation of its own: AsColumn and AsRow materialize it as
// an n×1 column or a 1×n covector when a matrix shape is needed (e.g. for the
// outer product u·uᵀ).
type Vector struct {
	data []float64
}

// FromElements copies vals into a new Vector.
// NaN/±Inf are rejected with ErrNaNInf unless WithNoValidateNaNInf is given.
func FromElements(vals []float64, opts ...Option) (Vector, error) {
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range vals {
			if isNonFinite(v) {
				return Vector{}, fmt.Errorf("FromElements: index %d: %w", i, ErrNaNInf)
			}
		}
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)

	return Vector{data: cp}, nil
}

// Ones returns the length-n vector of ones (n <= 0 yields the empty vector).
func Ones(n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = 1.0
	}

	return Vector{data: data}
}

// vectorOf adopts data without copying. The caller must not retain it.
func vectorOf(data []float64) Vector { return Vector{data: data} }

// Len returns the number of elements.
func (v Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Elements returns an independent copy of the values.
func (v Vector) Elements() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Norm returns the Euclidean norm ‖v‖₂ (0 for the empty vector).
func (v Vector) Norm() float64 {
	if len(v.data) == 0 {
		return 0
	}

	return floats.Norm(v.data, 2)
}

// Normalize returns v/‖v‖₂, dividing each entry by the norm so that tiny or
// huge inputs keep a finite, unit-length result.
// Errors: ErrInvalidDimensions for the empty vector, ErrSingular when ‖v‖ == 0,
// ErrNaNInf when ‖v‖ overflows.
func (v Vector) Normalize() (Vector, error) {
	if len(v.data) == 0 {
		return Vector{}, fmt.Errorf("Vector.Normalize: %w", ErrInvalidDimensions)
	}
	norm := v.Norm()
	switch {
	case norm == 0:
		return Vector{}, fmt.Errorf("Vector.Normalize: zero norm: %w", ErrSingular)
	case isNonFinite(norm):
		return Vector{}, fmt.Errorf("Vector.Normalize: norm %g: %w", norm, ErrNaNInf)
	}
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x / norm
	}

	return vectorOf(out), nil
}

// Sub returns v - w.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v.data) != len(w.data) {
		return Vector{}, fmt.Errorf("Vector.Sub: %w", ErrDimensionMismatch)
	}
	out := make([]float64, len(v.data))
	floats.SubTo(out, v.data, w.data)

	return vectorOf(out), nil
}

// AsColumn returns v as an n×1 matrix.
// Errors: ErrInvalidDimensions for the empty vector.
func (v Vector) AsColumn() (*Dense, error) {
	m, err := NewDense(len(v.data), 1)
	if err != nil {
		return nil, fmt.Errorf("Vector.AsColumn: %w", err)
	}
	copy(m.data, v.data)

	return m, nil
}

// AsRow returns v as a 1×n matrix (the covector form).
// Errors: ErrInvalidDimensions for the empty vector.
func (v Vector) AsRow() (*Dense, error) {
	m, err := NewDense(1, len(v.data))
	if err != nil {
		return nil, fmt.Errorf("Vector.AsRow: %w", err)
	}
	copy(m.data, v.data)

	return m, nil
}

// String formats the vector like a Go slice: "[a b c]".
func (v Vector) String() string {
	return fmt.Sprintf("%v", v.data)
}
